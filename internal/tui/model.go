package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mbaranski/scrumline/internal/domain"
	"github.com/mbaranski/scrumline/internal/service"
)

// column indices for board navigation, one per item status.
const (
	colTodo       = 0
	colInProgress = 1
	colOnHold     = 2
	colDone       = 3
	numColumns    = 4
)

var columnStatuses = [numColumns]domain.ItemStatus{
	domain.StatusTodo,
	domain.StatusInProgress,
	domain.StatusOnHold,
	domain.StatusDone,
}

var columnLabels = [numColumns]string{
	"TODO",
	"IN PROGRESS",
	"ON HOLD",
	"DONE",
}

// Model is the top-level bubbletea model for the board.
type Model struct {
	items   service.WorkItemService
	project *domain.Project

	width  int
	height int

	// Board state.
	columns   [numColumns][]*domain.WorkItem
	cursorCol int
	cursorRow int

	// All items cache, filtered into columns on every refresh.
	all []*domain.WorkItem

	// Title filter.
	filterInput  textinput.Model
	filterActive bool

	// Detail panel toggle for the item under the cursor.
	showDetail bool

	statusMsg string
	quitting  bool
}

// New creates a board model for the given project.
func New(items service.WorkItemService, project *domain.Project) Model {
	fi := textinput.New()
	fi.Placeholder = "Filter by title..."
	fi.CharLimit = 80
	fi.Width = 30

	return Model{
		items:       items,
		project:     project,
		filterInput: fi,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.loadItems()
}

type itemsLoadedMsg struct {
	items []*domain.WorkItem
	err   error
}

func (m Model) loadItems() tea.Cmd {
	return func() tea.Msg {
		items, err := m.items.ListByProject(context.Background(), m.project.ID)
		return itemsLoadedMsg{items: items, err: err}
	}
}

type statusChangedMsg struct{ err error }

func (m Model) changeStatus(id string, status domain.ItemStatus) tea.Cmd {
	return func() tea.Msg {
		return statusChangedMsg{err: m.items.SetStatus(context.Background(), id, status)}
	}
}

// rebuildColumns refills the board columns from the cached items, applying
// the title filter, and clamps the cursor.
func (m *Model) rebuildColumns() {
	filter := strings.ToLower(m.filterInput.Value())
	for i := range m.columns {
		m.columns[i] = nil
	}
	for _, item := range m.all {
		if filter != "" && !strings.Contains(strings.ToLower(item.Title), filter) {
			continue
		}
		for i, status := range columnStatuses {
			if item.Status == status {
				m.columns[i] = append(m.columns[i], item)
				break
			}
		}
	}
	m.clampCursor()
}

func (m *Model) clampCursor() {
	if m.cursorCol < 0 {
		m.cursorCol = 0
	}
	if m.cursorCol >= numColumns {
		m.cursorCol = numColumns - 1
	}
	if n := len(m.columns[m.cursorCol]); m.cursorRow >= n {
		m.cursorRow = n - 1
	}
	if m.cursorRow < 0 {
		m.cursorRow = 0
	}
}

// selected returns the item under the cursor, or nil for an empty column.
func (m Model) selected() *domain.WorkItem {
	col := m.columns[m.cursorCol]
	if m.cursorRow < 0 || m.cursorRow >= len(col) {
		return nil
	}
	return col[m.cursorRow]
}
