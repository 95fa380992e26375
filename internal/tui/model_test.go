package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mbaranski/scrumline/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boardModel(items ...*domain.WorkItem) Model {
	m := New(nil, &domain.Project{ID: "p", Key: "TST", Name: "Test"})
	m.all = items
	m.rebuildColumns()
	return m
}

func item(title string, status domain.ItemStatus) *domain.WorkItem {
	return &domain.WorkItem{ID: title, Title: title, Type: domain.TypeTask, Status: status}
}

func TestRebuildColumns_GroupsByStatus(t *testing.T) {
	m := boardModel(
		item("a", domain.StatusTodo),
		item("b", domain.StatusInProgress),
		item("c", domain.StatusInProgress),
		item("d", domain.StatusDone),
	)

	assert.Len(t, m.columns[colTodo], 1)
	assert.Len(t, m.columns[colInProgress], 2)
	assert.Len(t, m.columns[colOnHold], 0)
	assert.Len(t, m.columns[colDone], 1)
}

func TestRebuildColumns_AppliesFilter(t *testing.T) {
	m := boardModel(
		item("payment gateway", domain.StatusTodo),
		item("login page", domain.StatusTodo),
	)

	m.filterInput.SetValue("PAY")
	m.rebuildColumns()

	require.Len(t, m.columns[colTodo], 1)
	assert.Equal(t, "payment gateway", m.columns[colTodo][0].Title)
}

func TestHandleKey_NavigationClamps(t *testing.T) {
	m := boardModel(
		item("a", domain.StatusTodo),
		item("b", domain.StatusTodo),
	)

	// Left from column zero stays put.
	next, _ := m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("h")})
	m = next.(Model)
	assert.Equal(t, colTodo, m.cursorCol)

	// Down moves within the column and clamps at the end.
	next, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	m = next.(Model)
	assert.Equal(t, 1, m.cursorRow)
	next, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	m = next.(Model)
	assert.Equal(t, 1, m.cursorRow)

	// Moving to an empty column resets the row.
	next, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("l")})
	m = next.(Model)
	assert.Equal(t, colInProgress, m.cursorCol)
	assert.Equal(t, 0, m.cursorRow)
}

func TestSelected_EmptyColumn(t *testing.T) {
	m := boardModel(item("a", domain.StatusDone))
	assert.Nil(t, m.selected(), "cursor starts on the empty todo column")

	m.cursorCol = colDone
	m.clampCursor()
	require.NotNil(t, m.selected())
	assert.Equal(t, "a", m.selected().Title)
}

func TestView_RendersColumnsAndFooter(t *testing.T) {
	m := boardModel(item("write docs", domain.StatusTodo))
	m.width = 120

	out := m.View()
	assert.Contains(t, out, "TST — Test")
	assert.Contains(t, out, "TODO (1)")
	assert.Contains(t, out, "write docs")
	assert.Contains(t, out, "quit")
}
