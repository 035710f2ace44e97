package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/easel/internal/domain"
	"github.com/mmcdole/easel/internal/selection"
	"github.com/mmcdole/easel/internal/service"
)

// Command factories for async operations.
// Network calls carry no deadline of their own; the HTTP client timeout bounds them.

// FetchPageCmd loads one catalog page
func FetchPageCmd(svc *service.CatalogService, page int) tea.Cmd {
	return func() tea.Msg {
		result, err := svc.FetchPage(context.Background(), page)
		if err != nil {
			return ErrMsg{Err: err, Context: fmt.Sprintf("loading page %d", page), Page: page}
		}
		return PageLoadedMsg{Page: result}
	}
}

// BulkSelectCmd runs a bulk range selection. sel must be a snapshot the caller no longer mutates.
func BulkSelectCmd(svc *service.CatalogService, sel *selection.Set, current []domain.Artwork, startPage, count int) tea.Cmd {
	return func() tea.Msg {
		result := svc.BulkSelect(context.Background(), service.BulkRequest{
			Selection: sel,
			Current:   current,
			StartPage: startPage,
			Count:     count,
		})
		return BulkSelectedMsg{Result: result}
	}
}

// BulkDebounceCmd reports the input as settled after delay
func BulkDebounceCmd(seq int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return BulkCountSettledMsg{Seq: seq}
	})
}

// TickCmd returns a command that sends a tick after a delay
func TickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg{}
	})
}

// ClearStatusCmd returns a command that clears status after a delay
func ClearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
