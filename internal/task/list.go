package task

import (
	"fmt"
	"sort"
	"strings"
)

// Saver persists the full task sequence, overwriting prior contents.
type Saver interface {
	Save(tasks []Task) error
}

// Patch represents a partial edit.
// nil pointer => "no change"
// Title/Category: blank values are ignored (a title is never blanked by edit).
// Description: applied as given, blank allowed.
// DueDate: empty string clears, anything else must parse as YYYY-MM-DD.
type Patch struct {
	Title       *string
	Description *string
	Category    *string
	DueDate     *string
}

// List owns the in-memory task sequence. It is built once by the entry point
// and passed into every query and mutation; every mutation persists through
// the Saver before returning. Tasks are addressed by their current position
// in the sequence — deletion shifts later positions.
type List struct {
	saver   Saver
	tasks   []Task
	presets []string
	extra   []string
}

func NewList(tasks []Task, presets []string, saver Saver) *List {
	if len(presets) == 0 {
		presets = []string{DefaultCategory}
	}
	return &List{
		saver:   saver,
		tasks:   tasks,
		presets: append([]string(nil), presets...),
	}
}

// Tasks returns a copy of the current sequence.
func (l *List) Tasks() []Task {
	out := make([]Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

func (l *List) Len() int {
	return len(l.tasks)
}

func (l *List) Get(pos int) (Task, error) {
	if pos < 0 || pos >= len(l.tasks) {
		return Task{}, ErrIndexOutOfRange
	}
	return l.tasks[pos], nil
}

func (l *List) defaultCategory() string {
	return l.presets[0]
}

// Add appends a new pending task and persists. The created task is returned
// even when the save fails; in-memory state stays authoritative.
func (l *List) Add(title, description, category, dueRaw string) (Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Task{}, &ValidationError{Field: "title", Reason: "required"}
	}

	t := Task{
		Title:       title,
		Description: strings.TrimSpace(description),
		Category:    strings.TrimSpace(category),
	}
	if t.Category == "" {
		t.Category = l.defaultCategory()
	}

	if dueRaw = strings.TrimSpace(dueRaw); dueRaw != "" {
		due, err := ParseDate(dueRaw)
		if err != nil {
			return Task{}, &ValidationError{Field: "due_date", Reason: err.Error()}
		}
		t.DueDate = &due
	}

	l.tasks = append(l.tasks, t)
	return t, l.save()
}

// Edit applies a patch to the task at pos and persists any accepted change.
// An invalid due date rejects that field only: the remaining fields still
// apply and persist, and the ValidationError is returned alongside the
// updated task.
func (l *List) Edit(pos int, p Patch) (Task, error) {
	if pos < 0 || pos >= len(l.tasks) {
		return Task{}, ErrIndexOutOfRange
	}
	t := &l.tasks[pos]

	changed := false
	var invalid error

	if p.Title != nil {
		if v := strings.TrimSpace(*p.Title); v != "" {
			t.Title = v
			changed = true
		}
	}
	if p.Description != nil {
		t.Description = strings.TrimSpace(*p.Description)
		changed = true
	}
	if p.Category != nil {
		if v := strings.TrimSpace(*p.Category); v != "" {
			t.Category = v
			changed = true
		}
	}
	if p.DueDate != nil {
		switch v := strings.TrimSpace(*p.DueDate); v {
		case "":
			t.DueDate = nil
			changed = true
		default:
			due, err := ParseDate(v)
			if err != nil {
				// Keep the existing due date; the rest of the patch stands.
				invalid = &ValidationError{Field: "due_date", Reason: err.Error()}
			} else {
				t.DueDate = &due
				changed = true
			}
		}
	}

	if changed {
		if err := l.save(); err != nil {
			return *t, err
		}
	}
	return *t, invalid
}

// Complete marks the task at pos completed and persists. Completion is
// terminal: a second call reports ErrAlreadyCompleted and changes nothing.
func (l *List) Complete(pos int) (Task, error) {
	if pos < 0 || pos >= len(l.tasks) {
		return Task{}, ErrIndexOutOfRange
	}
	t := &l.tasks[pos]
	if t.Completed {
		return *t, ErrAlreadyCompleted
	}
	t.Completed = true
	return *t, l.save()
}

// Delete removes the task at pos; later tasks shift down one position.
// Any confirmation step is owned by the caller.
func (l *List) Delete(pos int) error {
	if pos < 0 || pos >= len(l.tasks) {
		return ErrIndexOutOfRange
	}
	l.tasks = append(l.tasks[:pos], l.tasks[pos+1:]...)
	return l.save()
}

// Categories returns the derived category set: the preset list, then every
// distinct category seen among current tasks (sorted), then manual additions,
// deduplicated in that order. It is never persisted on its own.
func (l *List) Categories() []string {
	out := append([]string(nil), l.presets...)
	have := make(map[string]bool, len(out))
	for _, c := range out {
		have[c] = true
	}

	seen := make([]string, 0, len(l.tasks))
	for _, t := range l.tasks {
		if t.Category != "" && !have[t.Category] {
			have[t.Category] = true
			seen = append(seen, t.Category)
		}
	}
	sort.Strings(seen)
	out = append(out, seen...)

	for _, c := range l.extra {
		if !have[c] {
			have[c] = true
			out = append(out, c)
		}
	}
	return out
}

// AddCategory registers a manual category name for selection widgets.
// Reports whether the set changed.
func (l *List) AddCategory(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	for _, c := range l.Categories() {
		if c == name {
			return false
		}
	}
	l.extra = append(l.extra, name)
	return true
}

func (l *List) save() error {
	if err := l.saver.Save(l.tasks); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	return nil
}
