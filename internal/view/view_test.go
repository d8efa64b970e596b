package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todolist/internal/task"
)

func due(s string) *string { return &s }

func all() Filter {
	return Filter{Status: StatusAll, Category: CategoryAll}
}

func TestRows_SortOrder(t *testing.T) {
	today := time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC)
	tasks := []task.Task{
		{Title: "A", Category: "General", DueDate: due("2024-01-10")},
		{Title: "B", Category: "General", Completed: true, DueDate: due("2024-01-01")},
		{Title: "C", Category: "General"},
	}

	rows := Rows(tasks, all(), today)
	require.Len(t, rows, 3)
	assert.Equal(t, "A", rows[0].Title, "pending with a due date sorts first")
	assert.Equal(t, "C", rows[1].Title, "absent due date sorts after any present date")
	assert.Equal(t, "B", rows[2].Title, "completed sorts last")
}

func TestRows_SortTieBreakers(t *testing.T) {
	today := time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC)
	tasks := []task.Task{
		{Title: "zeta", Category: "work", DueDate: due("2024-02-01")},
		{Title: "Alpha", Category: "Work", DueDate: due("2024-02-01")},
		{Title: "mid", Category: "Personal", DueDate: due("2024-02-01")},
	}

	rows := Rows(tasks, all(), today)
	require.Len(t, rows, 3)
	assert.Equal(t, "mid", rows[0].Title, "category compares case-insensitively")
	assert.Equal(t, "Alpha", rows[1].Title, "title compares case-insensitively")
	assert.Equal(t, "zeta", rows[2].Title)
}

func TestRows_UrgencyAnnotation(t *testing.T) {
	today := time.Date(2024, 6, 10, 13, 30, 0, 0, time.UTC)

	cases := []struct {
		name     string
		due      string
		wantHint string
		wantTag  string
	}{
		{"overdue", "2024-06-09", "OVERDUE 1d", UrgencyOverdue},
		{"today", "2024-06-10", "TODAY", UrgencyDueSoon},
		{"soon", "2024-06-12", "in 2d", UrgencyDueSoon},
		{"far", "2024-06-20", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rows := Rows([]task.Task{{Title: "x", Category: "General", DueDate: due(tc.due)}}, all(), today)
			require.Len(t, rows, 1)
			assert.Equal(t, tc.wantHint, rows[0].Hint)
			assert.Equal(t, tc.wantTag, rows[0].Urgency)
		})
	}
}

func TestRows_CompletedAlwaysCompletedClass(t *testing.T) {
	today := time.Date(2024, 6, 10, 13, 30, 0, 0, time.UTC)
	tasks := []task.Task{
		{Title: "done late", Category: "General", Completed: true, DueDate: due("2024-06-01")},
	}

	rows := Rows(tasks, all(), today)
	require.Len(t, rows, 1)
	assert.Equal(t, UrgencyCompleted, rows[0].Urgency)
	assert.Equal(t, "", rows[0].Hint, "completed tasks never get an urgency hint")
	assert.Equal(t, "✓ Completed", rows[0].Status)
}

func TestRows_StatusFilter(t *testing.T) {
	today := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	tasks := []task.Task{
		{Title: "p1", Category: "General"},
		{Title: "p2", Category: "General"},
		{Title: "p3", Category: "General"},
		{Title: "d1", Category: "General", Completed: true},
		{Title: "d2", Category: "General", Completed: true},
	}

	rows := Rows(tasks, Filter{Status: StatusPending, Category: CategoryAll}, today)
	require.Len(t, rows, 3)
	for _, r := range rows {
		assert.Equal(t, "• Pending", r.Status)
	}

	rows = Rows(tasks, Filter{Status: StatusCompleted, Category: CategoryAll}, today)
	assert.Len(t, rows, 2)

	rows = Rows(tasks, all(), today)
	assert.Len(t, rows, 5)
}

func TestRows_CategoryFilterCaseInsensitive(t *testing.T) {
	today := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	tasks := []task.Task{
		{Title: "a", Category: "Work"},
		{Title: "b", Category: "Personal"},
	}

	rows := Rows(tasks, Filter{Status: StatusAll, Category: "work"}, today)
	require.Len(t, rows, 1)
	assert.Equal(t, "a", rows[0].Title)
}

func TestRows_IndexRefersToOwningSequence(t *testing.T) {
	today := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	tasks := []task.Task{
		{Title: "z-last", Category: "General"},
		{Title: "a-first", Category: "General"},
	}

	rows := Rows(tasks, all(), today)
	require.Len(t, rows, 2)
	assert.Equal(t, "a-first", rows[0].Title)
	assert.Equal(t, 1, rows[0].Index, "row keeps the task's position in the sequence, not its sort rank")
	assert.Equal(t, 0, rows[1].Index)
}

func TestRows_EmptyAndDueText(t *testing.T) {
	today := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	assert.Empty(t, Rows(nil, all(), today))

	rows := Rows([]task.Task{{Title: "x", Category: "General"}}, all(), today)
	require.Len(t, rows, 1)
	assert.Equal(t, "-", rows[0].Due)
}

func TestSummarize(t *testing.T) {
	today := time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)
	tasks := []task.Task{
		{Title: "late", DueDate: due("2024-06-01")},
		{Title: "today", DueDate: due("2024-06-10")},
		{Title: "no due"},
		{Title: "done", Completed: true, DueDate: due("2024-05-01")},
	}

	s := Summarize(tasks, today)
	assert.Equal(t, Summary{Total: 4, Pending: 3, Completed: 1, Overdue: 1}, s)
}
