package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/mmcdole/easel/internal/domain"
	"github.com/mmcdole/easel/internal/tui/styles"
)

// Fixed column widths; the remaining width is shared by the text columns
const (
	checkboxWidth = 4
	yearWidth     = 10
	originWidth   = 16
	columnGap     = 1
)

// ArtworkTable renders one catalog page with a checkbox column.
// Checked state is not stored here; View asks the caller per row.
type ArtworkTable struct {
	rows   []domain.Artwork
	cursor int // index into visible rows

	width   int
	focused bool
	loading bool

	// Filter state
	filterActive bool
	filterInput  textinput.Model
	filteredIdx  []int // indices into rows
}

// NewArtworkTable creates an empty table
func NewArtworkTable() ArtworkTable {
	ti := textinput.New()
	ti.Placeholder = "type to filter titles..."
	ti.Prompt = "/ "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle

	return ArtworkTable{filterInput: ti, focused: true}
}

// SetRows replaces the displayed page. The cursor returns to the top and any filter is cleared.
func (t *ArtworkTable) SetRows(rows []domain.Artwork) {
	t.rows = rows
	t.cursor = 0
	t.ClearFilter()
}

// Rows returns the full page, ignoring any filter
func (t *ArtworkTable) Rows() []domain.Artwork {
	return t.rows
}

// SetWidth sets the rendering width
func (t *ArtworkTable) SetWidth(width int) {
	t.width = width
	t.filterInput.Width = max(width-6, 10)
}

// SetFocused sets whether the table receives navigation keys
func (t *ArtworkTable) SetFocused(focused bool) {
	t.focused = focused
}

// SetLoading toggles the loading placeholder for an empty table
func (t *ArtworkTable) SetLoading(loading bool) {
	t.loading = loading
}

// visible returns the row indices currently shown
func (t *ArtworkTable) visible() []int {
	if t.filteredIdx != nil {
		return t.filteredIdx
	}
	idx := make([]int, len(t.rows))
	for i := range idx {
		idx[i] = i
	}
	return idx
}

// Selected returns the artwork under the cursor
func (t *ArtworkTable) Selected() (domain.Artwork, bool) {
	vis := t.visible()
	if t.cursor < 0 || t.cursor >= len(vis) {
		return domain.Artwork{}, false
	}
	return t.rows[vis[t.cursor]], true
}

// Cursor returns the cursor position within the visible rows
func (t *ArtworkTable) Cursor() int {
	return t.cursor
}

// MoveUp moves the cursor up one row
func (t *ArtworkTable) MoveUp() {
	if t.cursor > 0 {
		t.cursor--
	}
}

// MoveDown moves the cursor down one row
func (t *ArtworkTable) MoveDown() {
	if t.cursor < len(t.visible())-1 {
		t.cursor++
	}
}

// IsFiltering returns true while a filter is applied
func (t *ArtworkTable) IsFiltering() bool {
	return t.filterActive
}

// IsTyping returns true while the filter input has focus
func (t *ArtworkTable) IsTyping() bool {
	return t.filterActive && t.filterInput.Focused()
}

// StartFilter opens the filter input
func (t *ArtworkTable) StartFilter() tea.Cmd {
	t.filterActive = true
	return t.filterInput.Focus()
}

// ClearFilter removes the filter and shows all rows
func (t *ArtworkTable) ClearFilter() {
	t.filterActive = false
	t.filteredIdx = nil
	t.filterInput.SetValue("")
	t.filterInput.Blur()
	t.cursor = min(t.cursor, max(len(t.rows)-1, 0))
}

// UpdateFilter routes a key to the filter input while typing
func (t *ArtworkTable) UpdateFilter(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, InputKeys.Cancel):
		t.ClearFilter()
		return nil
	case key.Matches(msg, InputKeys.Accept):
		// Keep the filter, hand keys back to navigation
		t.filterInput.Blur()
		return nil
	}

	var cmd tea.Cmd
	t.filterInput, cmd = t.filterInput.Update(msg)
	t.applyFilter()
	return cmd
}

func (t *ArtworkTable) applyFilter() {
	query := t.filterInput.Value()
	if query == "" {
		t.filteredIdx = nil
		return
	}

	lowerTitles := make([]string, len(t.rows))
	for i, a := range t.rows {
		lowerTitles[i] = strings.ToLower(a.DisplayTitle())
	}

	matches := fuzzy.Find(strings.ToLower(query), lowerTitles)
	t.filteredIdx = make([]int, len(matches))
	for i, match := range matches {
		t.filteredIdx[i] = match.Index
	}
	t.cursor = 0
}

// columnWidths splits the free width between title, artist and inscriptions
func (t *ArtworkTable) columnWidths() (title, artist, inscriptions int) {
	fixed := checkboxWidth + originWidth + 2*yearWidth + 6*columnGap
	free := max(t.width-fixed, 30)
	title = free * 35 / 100
	artist = free * 35 / 100
	inscriptions = free - title - artist
	return title, artist, inscriptions
}

// View renders the table. isChecked reports whether an artwork is selected.
func (t *ArtworkTable) View(isChecked func(id int) bool) string {
	titleW, artistW, inscW := t.columnWidths()
	gap := strings.Repeat(" ", columnGap)

	var b strings.Builder

	allChecked := len(t.rows) > 0
	for _, a := range t.rows {
		if !isChecked(a.ID) {
			allChecked = false
			break
		}
	}

	header := []string{
		styles.Pad(checkbox(allChecked), checkboxWidth),
		styles.Pad("Title", titleW),
		styles.Pad("Place of Origin", originWidth),
		styles.Pad("Artist", artistW),
		styles.Pad("Inscriptions", inscW),
		styles.Pad("Date Start", yearWidth),
		styles.Pad("Date End", yearWidth),
	}
	b.WriteString(styles.HeaderCellStyle.Render(strings.Join(header, gap)))
	b.WriteString("\n")

	if t.filterActive {
		b.WriteString(t.filterInput.View())
		b.WriteString("\n")
	}

	vis := t.visible()
	if len(vis) == 0 {
		switch {
		case t.loading:
			b.WriteString(styles.DimStyle.Render("Loading artworks..."))
		case t.filterActive:
			b.WriteString(styles.DimStyle.Render("No titles match the filter"))
		default:
			b.WriteString(styles.DimStyle.Render("No artworks"))
		}
		return b.String()
	}

	for i, idx := range vis {
		a := t.rows[idx]
		checked := isChecked(a.ID)
		cells := []string{
			styles.Pad(checkbox(checked), checkboxWidth),
			styles.Pad(a.DisplayTitle(), titleW),
			styles.Pad(a.PlaceOfOrigin, originWidth),
			styles.Pad(a.ArtistDisplay, artistW),
			styles.Pad(a.Inscriptions, inscW),
			styles.Pad(domain.FormatYear(a.DateStart), yearWidth),
			styles.Pad(domain.FormatYear(a.DateEnd), yearWidth),
		}
		line := strings.Join(cells, gap)

		style := styles.NormalRowStyle
		switch {
		case i == t.cursor && t.focused:
			style = styles.CursorRowStyle
		case checked:
			style = styles.CheckedRowStyle
		}
		b.WriteString(style.Render(line))
		if i < len(vis)-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// Summary renders "showing x of y" under a filtered table
func (t *ArtworkTable) Summary() string {
	if t.filteredIdx == nil {
		return ""
	}
	return lipgloss.NewStyle().Foreground(styles.DimGray).
		Render(fmt.Sprintf("%d of %d rows match", len(t.filteredIdx), len(t.rows)))
}

func checkbox(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}
