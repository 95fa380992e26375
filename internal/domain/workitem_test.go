package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func TestIsAggregate(t *testing.T) {
	cases := []struct {
		typ       ItemType
		aggregate bool
	}{
		{TypeEpic, true},
		{TypeFeature, true},
		{TypeStory, true},
		{TypeTask, false},
		{TypeBug, false},
	}
	for _, tc := range cases {
		w := &WorkItem{Type: tc.typ}
		assert.Equal(t, tc.aggregate, w.IsAggregate(), "type=%s", tc.typ)
		assert.Equal(t, !tc.aggregate, w.IsLeaf(), "type=%s", tc.typ)
	}
}

func TestCanParent(t *testing.T) {
	assert.True(t, TypeFeature.CanParent(TypeEpic))
	assert.True(t, TypeStory.CanParent(TypeFeature))
	assert.True(t, TypeTask.CanParent(TypeStory))
	assert.True(t, TypeBug.CanParent(TypeStory))

	assert.False(t, TypeTask.CanParent(TypeEpic))
	assert.False(t, TypeStory.CanParent(TypeStory))
	assert.False(t, TypeEpic.CanParent(TypeFeature), "epics are roots")
}

func TestEstimateOrZero(t *testing.T) {
	w := &WorkItem{}
	assert.Equal(t, 0.0, w.EstimateOrZero(), "nil estimate contributes 0")

	e := 3.5
	w.Estimate = &e
	assert.Equal(t, 3.5, w.EstimateOrZero())
}

func TestMarkDone_SetsCompletedAt(t *testing.T) {
	w := &WorkItem{Type: TypeTask, Status: StatusInProgress}
	w.MarkDone(testNow)
	assert.Equal(t, StatusDone, w.Status)
	require.NotNil(t, w.CompletedAt)
	assert.Equal(t, testNow, *w.CompletedAt)
	assert.Equal(t, testNow, w.UpdatedAt)
}

func TestMarkDone_AlreadyDone(t *testing.T) {
	earlier := testNow.Add(-time.Hour)
	w := &WorkItem{Type: TypeTask, Status: StatusDone, CompletedAt: &earlier}
	w.MarkDone(testNow)
	assert.Equal(t, earlier, *w.CompletedAt, "should not overwrite existing CompletedAt")
}

func TestReopen_FromDone(t *testing.T) {
	completed := testNow.Add(-time.Hour)
	w := &WorkItem{Type: TypeStory, Status: StatusDone, CompletedAt: &completed}
	require.NoError(t, w.Reopen(testNow))
	assert.Equal(t, StatusTodo, w.Status)
	assert.Nil(t, w.CompletedAt)
}

func TestReopen_NotDone(t *testing.T) {
	w := &WorkItem{Type: TypeTask, Status: StatusTodo}
	err := w.Reopen(testNow)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "todo")
}

func TestSetEstimate_LeafOnly(t *testing.T) {
	w := &WorkItem{Type: TypeTask}
	require.NoError(t, w.SetEstimate(4, testNow))
	require.NotNil(t, w.Estimate)
	assert.Equal(t, 4.0, *w.Estimate)

	agg := &WorkItem{Type: TypeFeature}
	err := agg.SetEstimate(4, testNow)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "derived")
}

func TestSetEstimate_Negative(t *testing.T) {
	w := &WorkItem{Type: TypeBug}
	err := w.SetEstimate(-1, testNow)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-negative")
}

func TestLogActualHours(t *testing.T) {
	w := &WorkItem{Type: TypeBug}
	require.NoError(t, w.LogActualHours(2.5, testNow))
	require.NotNil(t, w.ActualHours)
	assert.Equal(t, 2.5, *w.ActualHours)

	err := w.LogActualHours(-0.5, testNow)
	require.Error(t, err)

	epic := &WorkItem{Type: TypeEpic}
	require.Error(t, epic.LogActualHours(1, testNow))
}
