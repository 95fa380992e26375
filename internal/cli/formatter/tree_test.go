package formatter

import (
	"strings"
	"testing"

	"github.com/mbaranski/scrumline/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTree_Empty(t *testing.T) {
	assert.Empty(t, RenderTree(nil))
}

func TestRenderTree_Connectors(t *testing.T) {
	out := RenderTree([]TreeItem{
		{Title: "Epic", Type: domain.TypeEpic, Status: domain.StatusTodo, Level: 0},
		{Title: "First", Type: domain.TypeStory, Status: domain.StatusTodo, Level: 1},
		{Title: "Last", Type: domain.TypeStory, Status: domain.StatusTodo, Level: 1, IsLast: true},
	})

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Epic", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "├─ "))
	assert.True(t, strings.HasPrefix(lines[2], "└─ "))
}

func TestRenderTree_StatusMarkers(t *testing.T) {
	out := RenderTree([]TreeItem{
		{Title: "Done item", Status: domain.StatusDone},
		{Title: "Active item", Status: domain.StatusInProgress},
		{Title: "Held item", Status: domain.StatusOnHold},
	})

	assert.Contains(t, out, "✔")
	assert.Contains(t, out, "▶")
	assert.Contains(t, out, "⏸")
}

func TestRenderTree_DetailBadge(t *testing.T) {
	out := RenderTree([]TreeItem{
		{Title: "Task", Status: domain.StatusTodo, Detail: "2h / 5h"},
	})
	assert.Contains(t, out, "[ 2h / 5h ]")
}

func TestBuildTreeItems_FlattensDepthFirst(t *testing.T) {
	epic := &domain.WorkItem{ID: "e", Title: "Epic", Type: domain.TypeEpic}
	feature := &domain.WorkItem{ID: "f", Title: "Feature", Type: domain.TypeFeature}
	story := &domain.WorkItem{ID: "s", Title: "Story", Type: domain.TypeStory}
	task := &domain.WorkItem{ID: "t", Title: "Task", Type: domain.TypeTask}

	items := BuildTreeItems(
		[]*domain.WorkItem{epic},
		map[string][]*domain.WorkItem{
			"e": {feature},
			"f": {story},
			"s": {task},
		},
	)

	require.Len(t, items, 4)
	titles := make([]string, len(items))
	levels := make([]int, len(items))
	for i, it := range items {
		titles[i] = it.Title
		levels[i] = it.Level
	}
	assert.Equal(t, []string{"Epic", "Feature", "Story", "Task"}, titles)
	assert.Equal(t, []int{0, 1, 2, 3}, levels)
	assert.True(t, items[3].IsLast)
}
