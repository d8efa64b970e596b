package view

import (
	"time"

	"todolist/internal/task"
)

// Summary holds headline counts for a status line.
type Summary struct {
	Total     int
	Pending   int
	Completed int
	Overdue   int
}

// Summarize counts tasks by state against the given reference date.
func Summarize(tasks []task.Task, today time.Time) Summary {
	s := Summary{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			s.Completed++
			continue
		}
		s.Pending++
		if t.DueDate != nil {
			if eta, ok := task.DaysUntil(*t.DueDate, today); ok && eta < 0 {
				s.Overdue++
			}
		}
	}
	return s
}
