package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mbaranski/scrumline/internal/domain"
	"github.com/mbaranski/scrumline/internal/service"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.filterActive {
			return m.handleFilterKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case itemsLoadedMsg:
		if msg.err != nil {
			m.statusMsg = "Failed to load items: " + msg.err.Error()
			return m, nil
		}
		m.all = msg.items
		m.rebuildColumns()
		return m, nil

	case statusChangedMsg:
		if msg.err != nil {
			var blocked *service.CompletionBlockedError
			if errors.As(msg.err, &blocked) {
				m.statusMsg = fmt.Sprintf("Blocked: %d child item(s) still open", len(blocked.Blocking))
			} else {
				m.statusMsg = "Failed: " + msg.err.Error()
			}
			return m, nil
		}
		m.statusMsg = ""
		return m, m.loadItems()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "left", "h":
		m.cursorCol--
		m.clampCursor()
	case "right", "l":
		m.cursorCol++
		m.clampCursor()
	case "up", "k":
		m.cursorRow--
		m.clampCursor()
	case "down", "j":
		m.cursorRow++
		m.clampCursor()

	case "enter":
		m.showDetail = !m.showDetail

	case "/":
		m.filterActive = true
		m.filterInput.Focus()
		return m, nil

	case "r":
		m.statusMsg = ""
		return m, m.loadItems()

	case "s":
		if item := m.selected(); item != nil {
			return m, m.changeStatus(item.ID, domain.StatusInProgress)
		}
	case "p":
		if item := m.selected(); item != nil {
			return m, m.changeStatus(item.ID, domain.StatusOnHold)
		}
	case "d":
		if item := m.selected(); item != nil {
			return m, m.changeStatus(item.ID, domain.StatusDone)
		}
	}

	return m, nil
}

func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.filterActive = false
		m.filterInput.Blur()
		m.rebuildColumns()
		return m, nil
	case "esc":
		m.filterActive = false
		m.filterInput.Blur()
		m.filterInput.SetValue("")
		m.rebuildColumns()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.rebuildColumns()
	return m, cmd
}
