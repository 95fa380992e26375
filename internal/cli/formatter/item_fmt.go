package formatter

import (
	"fmt"
	"strings"

	"github.com/mbaranski/scrumline/internal/domain"
)

// FormatItemInspect renders the full detail view for a single work item.
func FormatItemInspect(item *domain.WorkItem, children []*domain.WorkItem) string {
	var b strings.Builder

	b.WriteString(Header(item.Title))
	b.WriteString("\n\n")

	row := func(label, value string) {
		b.WriteString(fmt.Sprintf("%s %s\n", StyleDim.Render(fmt.Sprintf("%-12s", label)), value))
	}

	row("ID", Dim(item.ID))
	row("Type", TypeBadge(item.Type))
	row("Status", StatusIndicator(item.Status))
	if item.AssigneeID != "" {
		row("Assignee", item.AssigneeID)
	}

	effortLabel := "Effort"
	if item.IsAggregate() {
		effortLabel = "Rolled up"
	}
	row(effortLabel, FormatEffort(item.Estimate, item.ActualHours))
	if bar := ProgressBar(item.Estimate, item.ActualHours, 20); bar != "" {
		row("Progress", bar)
	}

	if item.CompletedAt != nil {
		row("Completed", item.CompletedAt.Format("2006-01-02 15:04"))
	}
	if item.Description != "" {
		b.WriteString("\n")
		b.WriteString(item.Description)
		b.WriteString("\n")
	}

	if len(children) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Children"))
		b.WriteString("\n\n")
		items := make([]TreeItem, 0, len(children))
		for i, c := range children {
			items = append(items, TreeItem{
				Title:  c.Title,
				Type:   c.Type,
				Status: c.Status,
				Level:  1,
				IsLast: i == len(children)-1,
				Detail: FormatEffort(c.Estimate, c.ActualHours),
			})
		}
		b.WriteString(RenderTree(items))
		b.WriteString("\n")
	}

	return b.String()
}

// FormatItemList renders a flat item listing, one line per item.
func FormatItemList(items []*domain.WorkItem) string {
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("%s  %s  %s  %s",
			Dim(shortID(item.ID)),
			TypeBadge(item.Type),
			item.Title,
			Dim(FormatEffort(item.Estimate, item.ActualHours)),
		))
	}
	return b.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
