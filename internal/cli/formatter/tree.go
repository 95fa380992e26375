package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mbaranski/scrumline/internal/domain"
)

// TreeItem represents one row in a backlog tree display.
type TreeItem struct {
	Title  string
	Type   domain.ItemType
	Status domain.ItemStatus
	Level  int
	IsLast bool
	Detail string // right-aligned badge, usually the effort pair
}

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
)

// RenderTree renders TreeItems as an indented tree with box-drawing
// connectors. Done items get a green ✔ and dimmed title, in-progress items a
// yellow ▶, on-hold items a purple ⏸. Detail badges are right-aligned past the
// widest row.
func RenderTree(items []TreeItem) string {
	if len(items) == 0 {
		return ""
	}

	type lineInfo struct {
		content string
		badge   string
	}

	lines := make([]lineInfo, len(items))
	maxContentWidth := 0

	for idx, item := range items {
		var prefix string
		if item.Level > 0 {
			for i := 1; i < item.Level; i++ {
				prefix += treePipe
			}
			if item.IsLast {
				prefix += treeCorner
			} else {
				prefix += treeBranch
			}
		}

		title := item.Title
		statusPrefix := ""
		switch item.Status {
		case domain.StatusDone:
			statusPrefix = StyleGreen.Render("✔ ")
			title = Dim(title)
		case domain.StatusInProgress:
			statusPrefix = StyleYellowBold.Render("▶ ")
			title = StyleYellowBold.Render(title)
		case domain.StatusOnHold:
			statusPrefix = StylePurple.Render("⏸ ")
			title = StylePurple.Render(title)
		}

		content := prefix + statusPrefix + title
		lines[idx].content = content

		if item.Detail != "" {
			lines[idx].badge = StyleBlue.Render(fmt.Sprintf("[ %s ]", item.Detail))
		}

		if w := lipgloss.Width(content); w > maxContentWidth {
			maxContentWidth = w
		}
	}

	var b strings.Builder
	for i, li := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(li.content)
		if li.badge != "" {
			pad := maxContentWidth - lipgloss.Width(li.content)
			b.WriteString(strings.Repeat(" ", pad+2))
			b.WriteString(li.badge)
		}
	}
	return b.String()
}

// BuildTreeItems flattens a backlog tree into TreeItems in display order.
// childMap maps a parent ID to its ordered children.
func BuildTreeItems(roots []*domain.WorkItem, childMap map[string][]*domain.WorkItem) []TreeItem {
	var items []TreeItem
	var walk func(nodes []*domain.WorkItem, level int)
	walk = func(nodes []*domain.WorkItem, level int) {
		for i, n := range nodes {
			items = append(items, TreeItem{
				Title:  n.Title,
				Type:   n.Type,
				Status: n.Status,
				Level:  level,
				IsLast: i == len(nodes)-1,
				Detail: FormatEffort(n.Estimate, n.ActualHours),
			})
			walk(childMap[n.ID], level+1)
		}
	}
	walk(roots, 0)
	return items
}
