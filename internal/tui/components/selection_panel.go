package components

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/mmcdole/easel/internal/domain"
	"github.com/mmcdole/easel/internal/tui/styles"
)

// defaultPanelWidth applies until SetSize is called
const defaultPanelWidth = 40

// SelectionPanel lists every selected artwork across pages with a remove action
type SelectionPanel struct {
	items  []domain.Artwork
	cursor int
	offset int

	width      int
	maxVisible int
	focused    bool

	filterActive bool
	filterInput  textinput.Model
	filteredIdx  []int
}

// NewSelectionPanel creates an empty panel
func NewSelectionPanel() SelectionPanel {
	ti := textinput.New()
	ti.Placeholder = "filter selected..."
	ti.Prompt = "/ "
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle

	return SelectionPanel{filterInput: ti, width: defaultPanelWidth, maxVisible: 6}
}

// SetItems replaces the listed artworks, keeping the cursor in range
func (p *SelectionPanel) SetItems(items []domain.Artwork) {
	p.items = items
	if p.filterActive {
		p.applyFilter()
	}
	p.clampCursor()
}

// Len returns the number of listed artworks, ignoring any filter
func (p *SelectionPanel) Len() int {
	return len(p.items)
}

// SetSize sets the panel width and number of visible rows
func (p *SelectionPanel) SetSize(width, rows int) {
	p.width = width
	p.maxVisible = max(rows, 1)
	p.filterInput.Width = max(width-8, 10)
	p.clampCursor()
}

// SetFocused sets whether the panel receives navigation keys
func (p *SelectionPanel) SetFocused(focused bool) {
	p.focused = focused
}

// Focused reports whether the panel has focus
func (p *SelectionPanel) Focused() bool {
	return p.focused
}

func (p *SelectionPanel) visible() []int {
	if p.filteredIdx != nil {
		return p.filteredIdx
	}
	idx := make([]int, len(p.items))
	for i := range idx {
		idx[i] = i
	}
	return idx
}

// Selected returns the artwork under the cursor
func (p *SelectionPanel) Selected() (domain.Artwork, bool) {
	vis := p.visible()
	if p.cursor < 0 || p.cursor >= len(vis) {
		return domain.Artwork{}, false
	}
	return p.items[vis[p.cursor]], true
}

// MoveUp moves the cursor up one row
func (p *SelectionPanel) MoveUp() {
	if p.cursor > 0 {
		p.cursor--
	}
	p.ensureVisible()
}

// MoveDown moves the cursor down one row
func (p *SelectionPanel) MoveDown() {
	if p.cursor < len(p.visible())-1 {
		p.cursor++
	}
	p.ensureVisible()
}

func (p *SelectionPanel) clampCursor() {
	n := len(p.visible())
	if p.cursor >= n {
		p.cursor = max(n-1, 0)
	}
	p.ensureVisible()
}

func (p *SelectionPanel) ensureVisible() {
	if p.cursor < p.offset {
		p.offset = p.cursor
	}
	if p.cursor >= p.offset+p.maxVisible {
		p.offset = p.cursor - p.maxVisible + 1
	}
	if p.offset < 0 {
		p.offset = 0
	}
}

// IsTyping returns true while the filter input has focus
func (p *SelectionPanel) IsTyping() bool {
	return p.filterActive && p.filterInput.Focused()
}

// IsFiltering returns true while a filter is applied
func (p *SelectionPanel) IsFiltering() bool {
	return p.filterActive
}

// StartFilter opens the filter input
func (p *SelectionPanel) StartFilter() tea.Cmd {
	p.filterActive = true
	return p.filterInput.Focus()
}

// ClearFilter removes the filter
func (p *SelectionPanel) ClearFilter() {
	p.filterActive = false
	p.filteredIdx = nil
	p.filterInput.SetValue("")
	p.filterInput.Blur()
	p.clampCursor()
}

// UpdateFilter routes a key to the filter input while typing
func (p *SelectionPanel) UpdateFilter(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, InputKeys.Cancel):
		p.ClearFilter()
		return nil
	case key.Matches(msg, InputKeys.Accept):
		p.filterInput.Blur()
		return nil
	}

	var cmd tea.Cmd
	p.filterInput, cmd = p.filterInput.Update(msg)
	p.applyFilter()
	p.cursor = 0
	p.offset = 0
	return cmd
}

func (p *SelectionPanel) applyFilter() {
	query := p.filterInput.Value()
	if query == "" {
		p.filteredIdx = nil
		return
	}

	titles := make([]string, len(p.items))
	for i, a := range p.items {
		titles[i] = a.DisplayTitle()
	}

	ranks := fuzzy.RankFindNormalizedFold(query, titles)
	sort.Stable(ranks)

	p.filteredIdx = make([]int, len(ranks))
	for i, r := range ranks {
		p.filteredIdx[i] = r.OriginalIndex
	}
}

// View renders the panel; an empty selection renders nothing
func (p *SelectionPanel) View() string {
	if len(p.items) == 0 {
		return ""
	}

	var lines []string

	heading := styles.TitleStyle.Render("Selected Artworks (All Pages)") + " " +
		styles.BadgeStyle.Render(fmt.Sprintf("%d", len(p.items)))
	lines = append(lines, heading)

	if p.filterActive {
		lines = append(lines, p.filterInput.View())
	}

	vis := p.visible()
	if len(vis) == 0 {
		lines = append(lines, styles.DimStyle.Render("No selected titles match"))
	}

	innerWidth := max(p.width-4, 20)
	removeLabel := styles.RemoveStyle.Render("x Remove")

	end := min(p.offset+p.maxVisible, len(vis))
	for i := p.offset; i < end; i++ {
		a := p.items[vis[i]]

		if i == p.cursor && p.focused {
			rowWidth := innerWidth - lipgloss.Width(removeLabel) - 1
			lines = append(lines, styles.CursorRowStyle.Render(rowLabel(a, rowWidth))+" "+removeLabel)
		} else {
			lines = append(lines, styles.NormalRowStyle.Render(rowLabel(a, innerWidth)))
		}
	}

	if end < len(vis) {
		lines = append(lines, styles.DimStyle.Render(fmt.Sprintf("↓ %d more", len(vis)-end)))
	}

	border := styles.InactiveBorder
	if p.focused {
		border = styles.ActiveBorder
	}
	return border.Width(max(p.width-2, 20)).Render(strings.Join(lines, "\n"))
}

// rowLabel renders "Title (ID: n)" in width columns. Only the title is shortened.
func rowLabel(a domain.Artwork, width int) string {
	suffix := fmt.Sprintf(" (ID: %d)", a.ID)
	titleWidth := max(width-lipgloss.Width(suffix), 1)
	return styles.Pad(styles.Truncate(a.DisplayTitle(), titleWidth)+suffix, width)
}
