package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mbaranski/scrumline/internal/cli/formatter"
	"github.com/mbaranski/scrumline/internal/domain"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(formatter.ColorHeader)
	columnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(formatter.ColorDim).
			Padding(0, 1)
	columnActiveStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(formatter.ColorHeader).
				Padding(0, 1)
	cardStyle         = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	cardSelectedStyle = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	detailStyle       = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(formatter.ColorBlue).
				Padding(0, 1)
	errorStyle      = lipgloss.NewStyle().Foreground(formatter.ColorRed).Bold(true)
	footerKeyStyle  = lipgloss.NewStyle().Bold(true).Foreground(formatter.ColorHeader)
	footerDescStyle = lipgloss.NewStyle().Foreground(formatter.ColorDim)
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("%s — %s", m.project.Key, m.project.Name)))
	if m.filterActive || m.filterInput.Value() != "" {
		b.WriteString("   ")
		b.WriteString(m.filterInput.View())
	}
	b.WriteString("\n\n")

	colWidth := 24
	if m.width > 0 {
		if w := m.width/numColumns - 4; w > 16 {
			colWidth = w
		}
	}

	cols := make([]string, numColumns)
	for i := range m.columns {
		cols[i] = m.renderColumn(i, colWidth)
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cols...))
	b.WriteString("\n")

	if m.showDetail {
		if item := m.selected(); item != nil {
			b.WriteString(m.renderDetail(item))
			b.WriteString("\n")
		}
	}

	if m.statusMsg != "" {
		b.WriteString(errorStyle.Render(m.statusMsg))
		b.WriteString("\n")
	}

	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderColumn(idx, width int) string {
	var b strings.Builder

	label := fmt.Sprintf("%s (%d)", columnLabels[idx], len(m.columns[idx]))
	b.WriteString(formatter.StatusStyle(columnStatuses[idx]).Bold(true).Render(label))
	b.WriteString("\n")

	for row, item := range m.columns[idx] {
		title := truncate(item.Title, width-4)
		line := fmt.Sprintf("%s %s", typeGlyph(item.Type), title)
		if idx == m.cursorCol && row == m.cursorRow {
			line = cardSelectedStyle.Render("▸ " + line)
		} else {
			line = cardStyle.Render("  " + line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if len(m.columns[idx]) == 0 {
		b.WriteString(formatter.Dim("  —"))
		b.WriteString("\n")
	}

	style := columnStyle
	if idx == m.cursorCol {
		style = columnActiveStyle
	}
	return style.Width(width).Render(b.String())
}

func (m Model) renderDetail(item *domain.WorkItem) string {
	var b strings.Builder
	b.WriteString(formatter.Bold(item.Title))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s  %s  %s",
		formatter.TypeBadge(item.Type),
		formatter.StatusIndicator(item.Status),
		formatter.Dim(formatter.FormatEffort(item.Estimate, item.ActualHours))))
	if item.AssigneeID != "" {
		b.WriteString("\n")
		b.WriteString(formatter.Dim("assignee: " + item.AssigneeID))
	}
	if item.Description != "" {
		b.WriteString("\n")
		b.WriteString(item.Description)
	}
	return detailStyle.Render(b.String())
}

func (m Model) renderFooter() string {
	keys := []struct{ key, desc string }{
		{"←→↑↓", "navigate"},
		{"enter", "detail"},
		{"s", "start"},
		{"p", "hold"},
		{"d", "done"},
		{"/", "filter"},
		{"r", "refresh"},
		{"q", "quit"},
	}
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, footerKeyStyle.Render(k.key)+" "+footerDescStyle.Render(k.desc))
	}
	return strings.Join(parts, footerDescStyle.Render(" · "))
}

func typeGlyph(typ domain.ItemType) string {
	switch typ {
	case domain.TypeEpic:
		return "◆"
	case domain.TypeFeature:
		return "◇"
	case domain.TypeStory:
		return "▣"
	case domain.TypeBug:
		return "✗"
	default:
		return "·"
	}
}

func truncate(s string, max int) string {
	if max < 1 || len(s) <= max {
		return s
	}
	if max <= 1 {
		return "…"
	}
	return s[:max-1] + "…"
}
