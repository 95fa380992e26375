package formatter

import (
	"fmt"
	"strings"

	"github.com/mbaranski/scrumline/internal/domain"
)

// FormatProjectList renders a table-like listing of projects.
func FormatProjectList(projects []*domain.Project) string {
	var b strings.Builder
	for i, p := range projects {
		if i > 0 {
			b.WriteString("\n")
		}
		name := p.Name
		if p.Status == domain.ProjectArchived {
			name = Dim(name + " (archived)")
		}
		b.WriteString(fmt.Sprintf("%s  %s", Bold(fmt.Sprintf("%-8s", p.Key)), name))
	}
	return b.String()
}

// ProjectInspectData carries everything the project inspect view renders.
type ProjectInspectData struct {
	Project  *domain.Project
	Roots    []*domain.WorkItem
	ChildMap map[string][]*domain.WorkItem
}

// FormatProjectInspect renders a project header followed by its backlog tree.
func FormatProjectInspect(data ProjectInspectData) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("%s — %s", data.Project.Key, data.Project.Name)))
	b.WriteString("\n")

	if data.Project.Status == domain.ProjectArchived {
		b.WriteString(Dim("archived"))
		b.WriteString("\n")
	}

	if len(data.Roots) == 0 {
		b.WriteString("\n")
		b.WriteString(Dim("No work items yet."))
		return b.String()
	}

	var totalEst, totalAct float64
	for _, r := range data.Roots {
		totalEst += r.EstimateOrZero()
		totalAct += r.ActualOrZero()
	}
	b.WriteString(fmt.Sprintf("\n%s %s\n\n",
		StyleDim.Render("Total effort:"),
		Bold(FormatEffort(&totalEst, &totalAct))))

	b.WriteString(RenderTree(BuildTreeItems(data.Roots, data.ChildMap)))
	return b.String()
}
