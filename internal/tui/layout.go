package tui

// Layout constants
const (
	ChromeHeight     = 6 // header (2) + paginator (1) + footer (1) + borders (2)
	MinTableWidth    = 60
	MinPanelWidth    = 28
	MaxPanelWidth    = 48
	PanelPercent     = 30
	SideBySideWidth  = MinTableWidth + MinPanelWidth
	StackedPanelRows = 6
)

// panelLayout holds calculated widths for the table and the selection panel
type panelLayout struct {
	tableWidth int
	panelWidth int // 0 if hidden
	panelRows  int
	stacked    bool // panel renders below the table instead of beside it
}

// calculateLayout splits the terminal between the table and the side panel
func (m Model) calculateLayout() panelLayout {
	layout := panelLayout{tableWidth: m.Width}
	if m.Panel.Len() == 0 {
		return layout
	}

	contentHeight := max(m.Height-ChromeHeight, 1)

	if m.Width < SideBySideWidth {
		layout.stacked = true
		layout.panelWidth = m.Width
		layout.panelRows = StackedPanelRows
		return layout
	}

	panelWidth := m.Width * PanelPercent / 100
	panelWidth = min(max(panelWidth, MinPanelWidth), MaxPanelWidth)

	layout.panelWidth = panelWidth
	layout.tableWidth = m.Width - panelWidth
	layout.panelRows = max(contentHeight-2, 1) // title + badge line
	return layout
}

// updateLayout pushes the current dimensions into the components
func (m *Model) updateLayout() {
	if !m.Ready {
		return
	}
	layout := m.calculateLayout()
	m.Table.SetWidth(layout.tableWidth - 2) // border
	if layout.panelWidth > 0 {
		m.Panel.SetSize(layout.panelWidth, layout.panelRows)
	}
}
