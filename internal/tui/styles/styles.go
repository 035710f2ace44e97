package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Color palette
var (
	GalleryBlue = lipgloss.Color("#1976D2")
	AlertRed    = lipgloss.Color("#D32F2F")
	SlateDark   = lipgloss.Color("#1F2937")
	SlateLight  = lipgloss.Color("#374151")
	DimGray     = lipgloss.Color("#6B7280")
	LightGray   = lipgloss.Color("#9CA3AF")
	White       = lipgloss.Color("#F9FAFB")
)

// SpinnerFrames for loading animation
var SpinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Borders
var (
	ActiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(GalleryBlue)

	InactiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimGray)
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(GalleryBlue).
			Bold(true)

	CountStyle = lipgloss.NewStyle().
			Foreground(AlertRed).
			Bold(true)
)

// Table styles
var (
	HeaderCellStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Bold(true)

	CursorRowStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(SlateLight)

	CheckedRowStyle = lipgloss.NewStyle().
			Foreground(GalleryBlue)

	NormalRowStyle = lipgloss.NewStyle().
			Foreground(LightGray)
)

// Badge styles
var (
	BadgeStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(GalleryBlue).
			Bold(true).
			Padding(0, 1)

	RemoveStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(AlertRed).
			Padding(0, 1)
)

// Modal styles
var (
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(GalleryBlue).
			Padding(1, 2).
			Background(SlateDark)

	ButtonStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(GalleryBlue).
			Bold(true).
			Padding(0, 2)
)

// Help styles
var (
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(GalleryBlue)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(DimGray)
)

// Filter styles
var (
	FilterStyle = lipgloss.NewStyle().
			Foreground(GalleryBlue)

	FilterPromptStyle = lipgloss.NewStyle().
				Foreground(GalleryBlue).
				Bold(true)
)

// Helper functions

// Truncate shortens s to the given display width with an ellipsis.
// Line breaks and runs of whitespace collapse to single spaces.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = strings.Join(strings.Fields(s), " ")
	return runewidth.Truncate(s, width, "…")
}

// Pad truncates or right-pads s to exactly width display columns
func Pad(s string, width int) string {
	return runewidth.FillRight(Truncate(s, width), width)
}
