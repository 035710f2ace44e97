package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/easel/internal/domain"
	"github.com/mmcdole/easel/internal/selection"
	"github.com/mmcdole/easel/internal/service"
	"github.com/mmcdole/easel/internal/tui/components"
)

// ApplicationState represents the current state of the application
type ApplicationState int

const (
	StateBrowsing ApplicationState = iota
	StateHelp
)

// Pane identifies which panel receives navigation keys
type Pane int

const (
	PaneTable Pane = iota
	PaneSelection
)

// DefaultDebounce is how long the bulk input must sit still before a run starts
const DefaultDebounce = 300 * time.Millisecond

// Options configures a Model
type Options struct {
	StartPage int
	Debounce  time.Duration
	Logger    *slog.Logger
}

// Model is the main Bubble Tea model for the application.
// It owns the selection set and the displayed page; only Update mutates them.
type Model struct {
	// Application state
	State ApplicationState
	Ready bool

	// Services
	CatalogSvc *service.CatalogService
	logger     *slog.Logger

	// UI Components
	Table     components.ArtworkTable
	Panel     components.SelectionPanel
	BulkModal components.BulkModal
	Paginator paginator.Model
	Focus     Pane

	// Data
	Selection   *selection.Set // Global Selection Set
	Page        domain.Page    // Current Page View
	CurrentPage int            // 1-based number of the displayed page
	startPage   int

	// Dimensions
	Width  int
	Height int

	// UI state
	StatusMsg    string
	Inflight     int // Outstanding fetches; > 0 means Loading
	SpinnerFrame int

	// Bulk input debounce
	bulkSeq  int
	debounce time.Duration
}

// NewModel creates a new application model
func NewModel(catalogSvc *service.CatalogService, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	p := paginator.New()
	p.Type = paginator.Arabic
	p.PerPage = catalogSvc.PageSize()
	p.ArabicFormat = "Page %d of %d"

	// Init issues the first fetch, so the model starts out Loading
	table := components.NewArtworkTable()
	table.SetLoading(true)

	return Model{
		State:       StateBrowsing,
		CatalogSvc:  catalogSvc,
		logger:      logger,
		Table:       table,
		Panel:       components.NewSelectionPanel(),
		BulkModal:   components.NewBulkModal(catalogSvc.MaxBulk()),
		Paginator:   p,
		Focus:       PaneTable,
		Selection:   selection.NewSet(),
		CurrentPage: max(opts.StartPage, 1),
		startPage:   max(opts.StartPage, 1),
		debounce:    debounce,
		Inflight:    1,
	}
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		FetchPageCmd(m.CatalogSvc, m.startPage),
		TickCmd(100*time.Millisecond),
	)
}

// Loading reports whether any fetch is outstanding
func (m Model) Loading() bool {
	return m.Inflight > 0
}

// PageSelection returns the Current Page Selection: displayed artworks that are selected
func (m Model) PageSelection() []domain.Artwork {
	return m.Selection.PageSelection(m.Page.Artworks)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case TickMsg:
		m.SpinnerFrame++
		return m, TickCmd(100 * time.Millisecond)

	case PageLoadedMsg:
		m.finishFetch()
		m.applyPage(msg.Page)
		return m, nil

	case ErrMsg:
		// Prior page and selection stay as they were
		m.finishFetch()
		m.logger.Error("fetch failed", "context", msg.Context, "error", msg.Err)
		m.syncPaginator()
		return m, nil

	case BulkCountSettledMsg:
		if msg.Seq != m.bulkSeq {
			return m, nil // superseded by a later keystroke
		}
		return m.runBulkSelect()

	case BulkSelectedMsg:
		m.finishFetch()
		m.Selection = msg.Result.Selection
		m.refreshSelection()
		if msg.Result.Err != nil {
			m.logger.Warn("bulk select kept partial result",
				"selected", msg.Result.Selected, "requested", msg.Result.Requested, "error", msg.Result.Err)
		}
		m.StatusMsg = pluralize(msg.Result.Selected, "artwork") + " selected"
		return m, ClearStatusCmd(3 * time.Second)

	case ClearStatusMsg:
		m.StatusMsg = ""
		return m, nil
	}

	return m, nil
}

// startFetch marks a fetch as outstanding (Idle -> Loading)
func (m *Model) startFetch() {
	m.Inflight++
	m.Table.SetLoading(true)
}

// finishFetch settles one fetch (Loading -> Idle once none remain)
func (m *Model) finishFetch() {
	if m.Inflight > 0 {
		m.Inflight--
	}
	m.Table.SetLoading(m.Inflight > 0)
}

// applyPage replaces the Current Page View wholesale
func (m *Model) applyPage(page domain.Page) {
	m.Page = page
	m.CurrentPage = page.Number
	m.Table.SetRows(page.Artworks)
	m.syncPaginator()
	m.refreshSelection()
}

// syncPaginator points the paginator at the displayed page
func (m *Model) syncPaginator() {
	m.Paginator.SetTotalPages(m.Page.Total)
	m.Paginator.Page = max(m.CurrentPage-1, 0)
}

// refreshSelection pushes selection changes into the side panel
func (m *Model) refreshSelection() {
	m.Panel.SetItems(m.Selection.Items())
	if m.Panel.Len() == 0 && m.Focus == PaneSelection {
		m.setFocus(PaneTable)
	}
	m.updateLayout()
}

// goToPage turns the paginator to a zero-based position and fetches that page
func (m Model) goToPage(position int) (tea.Model, tea.Cmd) {
	m.Paginator.Page = position
	offset := m.Paginator.Page * m.Paginator.PerPage
	page := service.PageForOffset(offset, m.CatalogSvc.PageSize())

	m.startFetch()
	return m, FetchPageCmd(m.CatalogSvc, page)
}

// setCheckedOnPage reconciles the displayed page's contribution to exactly checked
func (m *Model) setCheckedOnPage(checked []domain.Artwork) {
	m.Selection.ReconcilePage(m.Page.Artworks, checked)
	m.BulkModal.SetCount(len(checked))
	m.refreshSelection()
}

// toggleRow flips one artwork on the displayed page
func (m *Model) toggleRow(target domain.Artwork) {
	var checked []domain.Artwork
	for _, a := range m.Page.Artworks {
		on := m.Selection.Has(a.ID)
		if a.ID == target.ID {
			on = !on
		}
		if on {
			checked = append(checked, a)
		}
	}
	m.setCheckedOnPage(checked)
}

// toggleAll is the header checkbox: clear the page when fully checked, else check every row
func (m *Model) toggleAll() {
	if len(m.Page.Artworks) == 0 {
		return
	}
	if len(m.PageSelection()) == len(m.Page.Artworks) {
		m.setCheckedOnPage(nil)
		return
	}
	m.setCheckedOnPage(m.Page.Artworks)
}

// removeSelected deletes one artwork from the selection, wherever it came from
func (m *Model) removeSelected(id int) {
	m.Selection.Remove(id)
	m.BulkModal.SetCount(len(m.PageSelection()))
	m.refreshSelection()
}

// runBulkSelect starts the Bulk Range Selector from the displayed page
func (m Model) runBulkSelect() (tea.Model, tea.Cmd) {
	count := m.BulkModal.Count()
	if count == 0 {
		m.clearCurrentPage()
		return m, nil
	}

	m.startFetch()
	snapshot := m.Selection.Clone()
	return m, BulkSelectCmd(m.CatalogSvc, snapshot, m.Page.Artworks, m.CurrentPage, count)
}

// clearCurrentPage drops the displayed page from the selection (bulk count 0)
func (m *Model) clearCurrentPage() {
	m.Selection.ClearPage(m.Page.Artworks)
	m.refreshSelection()
}

func (m *Model) setFocus(p Pane) {
	m.Focus = p
	m.Table.SetFocused(p == PaneTable)
	m.Panel.SetFocused(p == PaneSelection)
}
