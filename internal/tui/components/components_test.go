package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/easel/internal/domain"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func sampleRows() []domain.Artwork {
	return []domain.Artwork{
		{ID: 10, Title: "Water Lilies", ArtistDisplay: "Claude Monet"},
		{ID: 11, Title: "The Bedroom", ArtistDisplay: "Vincent van Gogh"},
		{ID: 12, Title: "", ArtistDisplay: "Unknown"},
		{ID: 13, Title: "Nighthawks", ArtistDisplay: "Edward Hopper"},
	}
}

func TestParseCount(t *testing.T) {
	assert.Equal(t, 0, ParseCount("", 120))
	assert.Equal(t, 20, ParseCount("20", 120))
	assert.Equal(t, 120, ParseCount("999", 120))
	assert.Equal(t, 0, ParseCount("abc", 120))
}

func TestBulkModal_ChangeAndSubmit(t *testing.T) {
	m := NewBulkModal(120)
	m.Show()
	require.True(t, m.IsVisible())

	var changed, closed bool
	m, _, changed, closed = m.Update(runes("2"))
	assert.True(t, changed)
	assert.False(t, closed)

	m, _, changed, _ = m.Update(runes("x"))
	assert.False(t, changed, "letters are ignored")

	m, _, changed, _ = m.Update(runes("0"))
	assert.True(t, changed)
	assert.Equal(t, 20, m.Count())

	m, _, changed, closed = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, changed, "submit does not trigger a selection")
	assert.True(t, closed)
	assert.False(t, m.IsVisible())
}

func TestBulkModal_SetCountIsSilent(t *testing.T) {
	m := NewBulkModal(120)
	m.SetCount(7)
	assert.Equal(t, "7", m.Value())
	assert.Equal(t, 7, m.Count())
}

func TestArtworkTable_Navigation(t *testing.T) {
	table := NewArtworkTable()
	table.SetRows(sampleRows())

	a, ok := table.Selected()
	require.True(t, ok)
	assert.Equal(t, 10, a.ID)

	table.MoveUp()
	assert.Equal(t, 0, table.Cursor())

	for range 10 {
		table.MoveDown()
	}
	a, _ = table.Selected()
	assert.Equal(t, 13, a.ID)
}

func TestArtworkTable_Filter(t *testing.T) {
	table := NewArtworkTable()
	table.SetRows(sampleRows())
	table.StartFilter()
	require.True(t, table.IsTyping())

	for _, r := range "night" {
		table.UpdateFilter(runes(string(r)))
	}

	a, ok := table.Selected()
	require.True(t, ok)
	assert.Equal(t, 13, a.ID)
	assert.Len(t, table.Rows(), 4, "filter narrows display only")

	table.UpdateFilter(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, table.IsFiltering())
}

func TestArtworkTable_ViewMarksChecked(t *testing.T) {
	table := NewArtworkTable()
	table.SetWidth(140)
	table.SetRows(sampleRows())

	view := table.View(func(id int) bool { return id == 11 })
	assert.Contains(t, view, "[x]")
	assert.Contains(t, view, "Untitled")

	all := table.View(func(int) bool { return true })
	assert.Equal(t, 5, countOf(all, "[x]"), "header checkbox plus four rows")
}

func TestSelectionPanel_FilterAndCursor(t *testing.T) {
	p := NewSelectionPanel()
	p.SetSize(80, 5)
	p.SetItems(sampleRows())

	p.MoveDown()
	p.MoveDown()
	a, _ := p.Selected()
	assert.Equal(t, 12, a.ID)

	// Shrinking the list keeps the cursor in range
	p.SetItems(sampleRows()[:1])
	a, ok := p.Selected()
	require.True(t, ok)
	assert.Equal(t, 10, a.ID)

	p.SetItems(sampleRows())
	p.StartFilter()
	for _, r := range "hopper" {
		p.UpdateFilter(runes(string(r)))
	}
	_, ok = p.Selected()
	assert.False(t, ok, "filter matches titles, not artists")

	p.ClearFilter()
	p.StartFilter()
	for _, r := range "bedrm" {
		p.UpdateFilter(runes(string(r)))
	}
	a, ok = p.Selected()
	require.True(t, ok)
	assert.Equal(t, 11, a.ID)
}

func TestSelectionPanel_EmptyRendersNothing(t *testing.T) {
	p := NewSelectionPanel()
	assert.Equal(t, "", p.View())

	p.SetItems(sampleRows()[:1])
	assert.Contains(t, p.View(), "Water Lilies (ID: 10)")
}

func TestSelectionPanel_NarrowKeepsIDSuffix(t *testing.T) {
	item := domain.Artwork{ID: 27992, Title: "A Sunday on La Grande Jatte"}

	for _, width := range []int{28, 30, 36} {
		p := NewSelectionPanel()
		p.SetSize(width, 5)
		p.SetItems([]domain.Artwork{item})

		assert.Contains(t, p.View(), "(ID: 27992)", "width %d", width)

		p.SetFocused(true)
		view := p.View()
		assert.Contains(t, view, "(ID: 27992)", "focused, width %d", width)
		assert.Contains(t, view, "x Remove", "focused, width %d", width)
	}
}

func TestSelectionPanel_RemoveLabelOnlyOnCursorRow(t *testing.T) {
	p := NewSelectionPanel()
	p.SetSize(40, 5)
	p.SetItems(sampleRows())
	p.SetFocused(true)

	view := p.View()
	assert.Equal(t, 1, countOf(view, "x Remove"))
	assert.Contains(t, view, "The Bedroom (ID: 11)")
}

func countOf(s, sub string) int {
	n := 0
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			n++
		}
	}
	return n
}
