package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.State == StateHelp {
		m.State = StateBrowsing
		return m, nil
	}

	// Route to active modal or filter input if any
	if handled, newModel, cmd := m.routeToInput(msg); handled {
		return newModel, cmd
	}

	// Global keys
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.State = StateHelp
		return m, nil

	case key.Matches(msg, Keys.Escape):
		if m.Focus == PaneSelection {
			if m.Panel.IsFiltering() {
				m.Panel.ClearFilter()
			} else {
				m.setFocus(PaneTable)
			}
			return m, nil
		}
		if m.Table.IsFiltering() {
			m.Table.ClearFilter()
		}
		return m, nil

	case key.Matches(msg, Keys.SwitchFocus):
		if m.Focus == PaneTable && m.Panel.Len() > 0 {
			m.setFocus(PaneSelection)
		} else {
			m.setFocus(PaneTable)
		}
		return m, nil

	case key.Matches(msg, Keys.Filter):
		var cmd tea.Cmd
		if m.Focus == PaneSelection {
			cmd = m.Panel.StartFilter()
		} else {
			cmd = m.Table.StartFilter()
		}
		return m, cmd

	case key.Matches(msg, Keys.BulkCount):
		cmd := m.BulkModal.Show()
		return m, cmd

	case key.Matches(msg, Keys.Refresh):
		return m.goToPage(m.CurrentPage - 1)

	case key.Matches(msg, Keys.PrevPage):
		if m.Paginator.OnFirstPage() {
			return m, nil
		}
		return m.goToPage(m.Paginator.Page - 1)

	case key.Matches(msg, Keys.NextPage):
		if m.Paginator.OnLastPage() {
			return m, nil
		}
		return m.goToPage(m.Paginator.Page + 1)

	case key.Matches(msg, Keys.FirstPage):
		return m.goToPage(0)

	case key.Matches(msg, Keys.LastPage):
		return m.goToPage(max(m.Paginator.TotalPages-1, 0))
	}

	if m.Focus == PaneSelection {
		return m.handlePanelKey(msg)
	}
	return m.handleTableKey(msg)
}

// routeToInput sends keys to whichever text input currently owns the keyboard
func (m Model) routeToInput(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	if m.BulkModal.IsVisible() {
		var cmd tea.Cmd
		var changed bool
		m.BulkModal, cmd, changed, _ = m.BulkModal.Update(msg)
		if changed {
			m.bulkSeq++
			if m.BulkModal.Count() == 0 {
				m.clearCurrentPage()
				return true, m, cmd
			}
			return true, m, tea.Batch(cmd, BulkDebounceCmd(m.bulkSeq, m.debounce))
		}
		return true, m, cmd
	}

	if m.Focus == PaneSelection && m.Panel.IsTyping() {
		cmd := m.Panel.UpdateFilter(msg)
		return true, m, cmd
	}

	if m.Focus == PaneTable && m.Table.IsTyping() {
		cmd := m.Table.UpdateFilter(msg)
		return true, m, cmd
	}

	return false, m, nil
}

func (m Model) handleTableKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Up):
		m.Table.MoveUp()
	case key.Matches(msg, Keys.Down):
		m.Table.MoveDown()
	case key.Matches(msg, Keys.Toggle):
		if a, ok := m.Table.Selected(); ok {
			m.toggleRow(a)
		}
	case key.Matches(msg, Keys.ToggleAll):
		m.toggleAll()
	}
	return m, nil
}

func (m Model) handlePanelKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Up):
		m.Panel.MoveUp()
	case key.Matches(msg, Keys.Down):
		m.Panel.MoveDown()
	case key.Matches(msg, Keys.Remove):
		if a, ok := m.Panel.Selected(); ok {
			m.removeSelected(a.ID)
		}
	}
	return m, nil
}
