package components

import (
	"fmt"
	"strconv"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/easel/internal/tui/styles"
)

// BulkModal is the "select rows across pages" popover: a numeric input and a Submit button.
// Changing the value is what triggers a selection; Submit only closes the popover.
type BulkModal struct {
	visible bool
	max     int
	input   textinput.Model
}

// NewBulkModal creates a popover whose count is clamped to [0, maxCount]
func NewBulkModal(maxCount int) BulkModal {
	ti := textinput.New()
	ti.Placeholder = "Enter number of rows"
	ti.CharLimit = len(strconv.Itoa(max(maxCount, 0)))
	ti.Width = 24
	ti.Prompt = ""
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle

	return BulkModal{max: maxCount, input: ti}
}

func digitsOnly(runes []rune) bool {
	for _, r := range runes {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// Show opens the popover
func (m *BulkModal) Show() tea.Cmd {
	m.visible = true
	return m.input.Focus()
}

// Hide closes the popover
func (m *BulkModal) Hide() {
	m.visible = false
	m.input.Blur()
}

// IsVisible returns whether the popover is open
func (m BulkModal) IsVisible() bool {
	return m.visible
}

// SetCount writes a count into the input without signalling a change
func (m *BulkModal) SetCount(n int) {
	m.input.SetValue(strconv.Itoa(n))
	m.input.CursorEnd()
}

// Value returns the raw input text
func (m BulkModal) Value() string {
	return m.input.Value()
}

// Count parses the input and clamps it to [0, max]. Empty input counts as 0.
func (m BulkModal) Count() int {
	return ParseCount(m.input.Value(), m.max)
}

// ParseCount parses a count and clamps it to [0, maxCount]; empty or invalid text is 0
func ParseCount(raw string, maxCount int) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return max(0, min(n, maxCount))
}

// Update handles input events, returns (modal, cmd, changed, closed)
func (m BulkModal) Update(msg tea.Msg) (BulkModal, tea.Cmd, bool, bool) {
	if !m.visible {
		return m, nil, false, false
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, InputKeys.Accept, InputKeys.Cancel) {
			m.Hide()
			return m, nil, false, true
		}
		// Numeric input only
		if keyMsg.Type == tea.KeyRunes && !digitsOnly(keyMsg.Runes) {
			return m, nil, false, false
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd, m.input.Value() != before, false
}

// View renders the popover
func (m BulkModal) View() string {
	if !m.visible {
		return ""
	}

	const modalWidth = 32

	label := lipgloss.NewStyle().
		Foreground(styles.LightGray).
		Width(modalWidth).
		Render("Select rows (across pages)...")

	inputBox := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(styles.DimGray).
		Width(modalWidth - 2).
		Render(m.input.View())

	hint := styles.DimStyle.Render(fmt.Sprintf("0 – %d", m.max))

	button := lipgloss.PlaceHorizontal(modalWidth, lipgloss.Center,
		styles.ButtonStyle.Render("Submit"))

	content := lipgloss.JoinVertical(lipgloss.Left,
		label,
		inputBox,
		hint,
		"",
		button,
	)

	return styles.ModalStyle.Render(content)
}
