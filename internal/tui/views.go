package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/easel/internal/tui/styles"
)

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	if m.State == StateHelp {
		return m.renderHelp()
	}

	layout := m.calculateLayout()

	header := m.renderHeader()
	table := m.renderTable(layout.tableWidth)
	pager := lipgloss.PlaceHorizontal(layout.tableWidth, lipgloss.Center,
		styles.SubtitleStyle.Render(m.Paginator.View()))
	main := lipgloss.JoinVertical(lipgloss.Left, table, pager)

	var content string
	switch {
	case layout.panelWidth == 0:
		content = main
	case layout.stacked:
		content = lipgloss.JoinVertical(lipgloss.Left, main, m.Panel.View())
	default:
		content = lipgloss.JoinHorizontal(lipgloss.Top, main, m.Panel.View())
	}

	view := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		content,
		m.renderFooter(),
	)

	// Overlay bulk popover if visible
	if m.BulkModal.IsVisible() {
		view = lipgloss.Place(m.Width, m.Height,
			lipgloss.Center, lipgloss.Center,
			m.BulkModal.View())
	}

	return view
}

// renderHeader shows the page number and the selection total
func (m Model) renderHeader() string {
	title := styles.TitleStyle.Render("Artworks")
	stats := styles.SubtitleStyle.Render(fmt.Sprintf("Current Page: %d", m.CurrentPage)) +
		styles.DimStyle.Render("  ·  ") +
		styles.SubtitleStyle.Render("Total Selected: ") +
		styles.CountStyle.Render(fmt.Sprintf("%d", m.Selection.Len()))

	line := title + "  " + stats
	if m.Loading() {
		line += "  " + RenderSpinner(m.SpinnerFrame)
	}
	return line + "\n"
}

// renderTable draws the page table inside its border
func (m Model) renderTable(width int) string {
	body := m.Table.View(m.Selection.Has)
	if summary := m.Table.Summary(); summary != "" {
		body += "\n" + summary
	}

	border := styles.InactiveBorder
	if m.Focus == PaneTable {
		border = styles.ActiveBorder
	}
	return border.Width(max(width-2, 1)).Render(body)
}

// renderFooter renders a single-line minimal footer
func (m Model) renderFooter() string {
	var left string
	if m.Loading() {
		left = RenderSpinner(m.SpinnerFrame) + " " + styles.DimStyle.Render("Loading...")
	} else if m.StatusMsg != "" {
		left = styles.DimStyle.Render(m.StatusMsg)
	}

	// Center section: hints for the focused pane
	var center string
	if m.Focus == PaneSelection {
		center = hint("x", "Remove") + "  " + hint("tab", "Table")
	} else {
		center = hint("space", "Toggle") + "  " + hint("a", "All") + "  " + hint("n", "Select N")
	}

	right := hint("?", "help")

	leftWidth := lipgloss.Width(left)
	centerWidth := lipgloss.Width(center)
	rightWidth := lipgloss.Width(right)

	if leftWidth+centerWidth+rightWidth >= m.Width {
		gap := max(m.Width-leftWidth-rightWidth, 0)
		return left + strings.Repeat(" ", gap) + right
	}

	available := m.Width - leftWidth - rightWidth
	leftPad := (available - centerWidth) / 2
	rightPad := available - centerWidth - leftPad

	return left + strings.Repeat(" ", leftPad) + center + strings.Repeat(" ", rightPad) + right
}

func hint(k, desc string) string {
	return styles.HelpKeyStyle.Render(k) + styles.HelpDescStyle.Render(" "+desc)
}

type helpSection struct {
	title    string
	bindings []key.Binding
}

// helpSections groups the key map for the help screen
func helpSections() []helpSection {
	return []helpSection{
		{"TABLE", []key.Binding{Keys.Up, Keys.Down, Keys.PrevPage, Keys.NextPage, Keys.FirstPage, Keys.LastPage}},
		{"SELECTION", []key.Binding{Keys.Toggle, Keys.ToggleAll, Keys.BulkCount, Keys.SwitchFocus, Keys.Remove}},
		{"OTHER", []key.Binding{Keys.Filter, Keys.Refresh, Keys.Escape, Keys.Quit, Keys.Help}},
	}
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	var b strings.Builder
	for i, section := range helpSections() {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(styles.TitleStyle.Render(section.title))
		b.WriteString("\n")
		for _, binding := range section.bindings {
			h := binding.Help()
			b.WriteString("  ")
			b.WriteString(styles.HelpKeyStyle.Render(styles.Pad(h.Key, 8)))
			b.WriteString(" ")
			b.WriteString(styles.HelpDescStyle.Render(h.Desc))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(styles.DimStyle.Render("Press any key to return..."))

	return lipgloss.Place(m.Width, m.Height,
		lipgloss.Center, lipgloss.Center,
		styles.ModalStyle.Render(b.String()))
}

// RenderSpinner renders a loading spinner
func RenderSpinner(frame int) string {
	return styles.AccentStyle.Render(styles.SpinnerFrames[frame%len(styles.SpinnerFrames)])
}

func pluralize(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
