package tui

import (
	"github.com/mmcdole/easel/internal/domain"
	"github.com/mmcdole/easel/internal/service"
)

// Message types for the TUI

// ErrMsg represents a failed page fetch
type ErrMsg struct {
	Err     error
	Context string
	Page    int
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// PageLoadedMsg signals that a catalog page has been fetched
type PageLoadedMsg struct {
	Page domain.Page
}

// BulkSelectedMsg carries the outcome of a bulk range selection
type BulkSelectedMsg struct {
	Result service.BulkResult
}

// BulkCountSettledMsg fires after the bulk input stopped changing for the debounce delay
type BulkCountSettledMsg struct {
	Seq int
}

// TickMsg is a general tick message for animations
type TickMsg struct{}

// ClearStatusMsg clears the status bar message
type ClearStatusMsg struct{}
