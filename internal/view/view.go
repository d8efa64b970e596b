// Package view derives the display-ready projection of a task sequence:
// filtered, sorted, and annotated rows. It holds no state and takes the
// reference date as input so results are reproducible.
package view

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"todolist/internal/task"
)

// Status filter values.
const (
	StatusAll       = "All"
	StatusCompleted = "Completed"
	StatusPending   = "Pending"
)

// CategoryAll matches every category.
const CategoryAll = "All"

// Urgency classes carried by rows; at most one per row.
const (
	UrgencyOverdue   = "overdue"
	UrgencyDueSoon   = "due_soon"
	UrgencyCompleted = "completed"
)

// dueSoonDays is the window, in days, for the "in Nd" hint.
const dueSoonDays = 3

type Filter struct {
	Status   string // StatusAll, StatusCompleted, or StatusPending
	Category string // CategoryAll or an exact case-insensitive category
}

// Row is one display-ready task projection. Index is the task's current
// position in the owning sequence, so mutations can be issued against it;
// it is not a persistent identifier and shifts on delete.
type Row struct {
	Index       int
	Status      string
	Title       string
	Category    string
	Due         string // "-" when absent
	Hint        string // "" when none
	Description string
	Urgency     string // one urgency class or ""
}

// Rows filters, sorts, and annotates tasks for display. The order is total
// and stable: pending before completed, then due date ascending with absent
// dates last, then category, then title (both case-insensitive).
func Rows(tasks []task.Task, f Filter, today time.Time) []Row {
	type entry struct {
		idx int
		t   task.Task
	}

	kept := make([]entry, 0, len(tasks))
	for i, t := range tasks {
		if f.Status == StatusCompleted && !t.Completed {
			continue
		}
		if f.Status == StatusPending && t.Completed {
			continue
		}
		if f.Category != "" && f.Category != CategoryAll && !strings.EqualFold(t.Category, f.Category) {
			continue
		}
		kept = append(kept, entry{idx: i, t: t})
	}

	sort.SliceStable(kept, func(i, j int) bool {
		a, b := kept[i].t, kept[j].t
		if a.Completed != b.Completed {
			return !a.Completed
		}
		switch {
		case a.DueDate == nil && b.DueDate != nil:
			return false
		case a.DueDate != nil && b.DueDate == nil:
			return true
		case a.DueDate != nil && b.DueDate != nil && *a.DueDate != *b.DueDate:
			return *a.DueDate < *b.DueDate
		}
		ac, bc := strings.ToLower(a.Category), strings.ToLower(b.Category)
		if ac != bc {
			return ac < bc
		}
		return strings.ToLower(a.Title) < strings.ToLower(b.Title)
	})

	out := make([]Row, 0, len(kept))
	for _, e := range kept {
		out = append(out, buildRow(e.idx, e.t, today))
	}
	return out
}

func buildRow(idx int, t task.Task, today time.Time) Row {
	r := Row{
		Index:       idx,
		Title:       t.Title,
		Category:    t.Category,
		Due:         "-",
		Description: t.Description,
	}
	if t.DueDate != nil {
		r.Due = *t.DueDate
	}

	if t.Completed {
		r.Status = "✓ Completed"
		r.Urgency = UrgencyCompleted
		return r
	}

	r.Status = "• Pending"
	if t.DueDate != nil {
		if eta, ok := task.DaysUntil(*t.DueDate, today); ok {
			switch {
			case eta < 0:
				r.Hint = fmt.Sprintf("OVERDUE %dd", -eta)
				r.Urgency = UrgencyOverdue
			case eta == 0:
				r.Hint = "TODAY"
				r.Urgency = UrgencyDueSoon
			case eta <= dueSoonDays:
				r.Hint = fmt.Sprintf("in %dd", eta)
				r.Urgency = UrgencyDueSoon
			}
		}
	}
	return r
}
