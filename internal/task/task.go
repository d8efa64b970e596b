package task

import (
	"fmt"
	"strings"
	"time"
)

// DateFormat is the only accepted due-date layout.
const DateFormat = "2006-01-02"

// DefaultCategory is assigned when a task is created or loaded without one.
const DefaultCategory = "General"

type Task struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Completed   bool    `json:"completed"`
	DueDate     *string `json:"due_date"` // nil means no due date; serialized as null
}

// ParseDate validates raw against DateFormat and returns the normalized form.
func ParseDate(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	d, err := time.Parse(DateFormat, raw)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: want YYYY-MM-DD", raw)
	}
	return d.Format(DateFormat), nil
}

// DaysUntil returns the whole-day delta from today's calendar date to due.
// Negative means overdue. ok is false when due does not parse.
func DaysUntil(due string, today time.Time) (int, bool) {
	d, err := time.Parse(DateFormat, due)
	if err != nil {
		return 0, false
	}
	base := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int(d.Sub(base).Hours() / 24), true
}

// Record is the raw persisted shape of a task, before defaulting.
type Record map[string]any

// FromRecord converts one persisted record into a Task, applying the
// per-field defaulting rules: textual fields are coerced to trimmed text,
// a missing or blank category falls back to DefaultCategory, a missing
// completed flag is false, and a blank due date means none.
func FromRecord(rec Record) Task {
	t := Task{
		Title:       textField(rec["title"]),
		Description: textField(rec["description"]),
		Category:    textField(rec["category"]),
		Completed:   boolField(rec["completed"]),
	}
	if t.Category == "" {
		t.Category = DefaultCategory
	}
	if due := textField(rec["due_date"]); due != "" {
		t.DueDate = &due
	}
	return t
}

func textField(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(s)
	default:
		return strings.TrimSpace(fmt.Sprint(s))
	}
}

func boolField(v any) bool {
	b, ok := v.(bool)
	return ok && b
}
