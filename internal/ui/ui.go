// Package ui is the terminal presentation layer. It owns all prompting,
// confirmation, and widget state; the task core only reports validation and
// index results.
package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"todolist/internal/task"
	"todolist/internal/view"
)

type mode int

const (
	modeBrowse mode = iota
	modeAdd
	modeEdit
	modeConfirmDelete
	modeAddCategory
)

const (
	fieldTitle = iota
	fieldDescription
	fieldCategory
	fieldDue
	fieldCount
)

var statusCycle = []string{view.StatusAll, view.StatusPending, view.StatusCompleted}

// Model is the bubbletea model for the task list screen.
type Model struct {
	list   *task.List
	filter view.Filter
	rows   []view.Row
	cursor int

	mode    mode
	inputs  [fieldCount]textinput.Model
	focus   int
	editPos int

	catInput textinput.Model
	notice   string
	isErr    bool
	width    int

	now func() time.Time
}

func New(list *task.List) Model {
	m := Model{
		list:   list,
		filter: view.Filter{Status: view.StatusAll, Category: view.CategoryAll},
		now:    time.Now,
	}

	labels := [fieldCount]string{"Title", "Description", "Category", "Due (YYYY-MM-DD)"}
	for i := range m.inputs {
		in := textinput.New()
		in.Placeholder = labels[i]
		in.CharLimit = 200
		in.Width = 40
		m.inputs[i] = in
	}
	m.inputs[fieldDue].CharLimit = 10

	m.catInput = textinput.New()
	m.catInput.Placeholder = "Category name"
	m.catInput.CharLimit = 40
	m.catInput.Width = 30

	m.refresh()
	return m
}

// Run starts the full-screen program.
func Run(list *task.List) error {
	_, err := tea.NewProgram(New(list), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) refresh() {
	m.rows = view.Rows(m.list.Tasks(), m.filter, m.now())
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) say(msg string) {
	m.notice = msg
	m.isErr = false
}

func (m *Model) oops(msg string) {
	m.notice = msg
	m.isErr = true
}

func (m *Model) selected() (view.Row, bool) {
	if len(m.rows) == 0 || m.cursor < 0 || m.cursor >= len(m.rows) {
		return view.Row{}, false
	}
	return m.rows[m.cursor], true
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeBrowse:
			return m.updateBrowse(msg)
		case modeAdd, modeEdit:
			return m.updateForm(msg)
		case modeConfirmDelete:
			return m.updateConfirm(msg)
		case modeAddCategory:
			return m.updateAddCategory(msg)
		}
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}

	case "a":
		m.mode = modeAdd
		m.startForm(task.Task{})

	case "e":
		row, ok := m.selected()
		if !ok {
			m.say("Select a task row first, then press e.")
			return m, nil
		}
		t, err := m.list.Get(row.Index)
		if err != nil {
			m.oops(err.Error())
			m.refresh()
			return m, nil
		}
		m.mode = modeEdit
		m.editPos = row.Index
		m.startForm(t)

	case "enter":
		row, ok := m.selected()
		if !ok {
			m.say("Select a task row first, then press enter.")
			return m, nil
		}
		_, err := m.list.Complete(row.Index)
		switch {
		case errors.Is(err, task.ErrAlreadyCompleted):
			m.say("This task is already completed.")
		case err != nil:
			m.oops(err.Error())
		default:
			m.say("Completed.")
		}
		m.refresh()

	case "d", "delete":
		if _, ok := m.selected(); !ok {
			m.say("Select a task row first, then press d.")
			return m, nil
		}
		m.mode = modeConfirmDelete

	case "s":
		m.filter.Status = nextIn(statusCycle, m.filter.Status)
		m.cursor = 0
		m.refresh()

	case "c":
		cats := append([]string{view.CategoryAll}, m.list.Categories()...)
		m.filter.Category = nextIn(cats, m.filter.Category)
		m.cursor = 0
		m.refresh()

	case "x":
		m.filter = view.Filter{Status: view.StatusAll, Category: view.CategoryAll}
		m.cursor = 0
		m.refresh()

	case "n":
		m.mode = modeAddCategory
		m.catInput.SetValue("")
		m.catInput.Focus()

	case "r":
		m.refresh()
	}
	return m, nil
}

func (m *Model) startForm(t task.Task) {
	m.inputs[fieldTitle].SetValue(t.Title)
	m.inputs[fieldDescription].SetValue(t.Description)
	m.inputs[fieldCategory].SetValue(t.Category)
	if t.DueDate != nil {
		m.inputs[fieldDue].SetValue(*t.DueDate)
	} else {
		m.inputs[fieldDue].SetValue("")
	}
	m.focus = fieldTitle
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.inputs[fieldTitle].Focus()
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		return m, nil

	case "tab", "down":
		m.setFocus((m.focus + 1) % fieldCount)
		return m, nil
	case "shift+tab", "up":
		m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		return m, nil

	case "enter":
		if m.focus < fieldCount-1 {
			m.setFocus(m.focus + 1)
			return m, nil
		}
		return m.submitForm()
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	title := m.inputs[fieldTitle].Value()
	desc := m.inputs[fieldDescription].Value()
	cat := m.inputs[fieldCategory].Value()
	due := m.inputs[fieldDue].Value()

	var err error
	if m.mode == modeAdd {
		_, err = m.list.Add(title, desc, cat, due)
		if err == nil {
			m.say("Task added.")
		}
	} else {
		_, err = m.list.Edit(m.editPos, task.Patch{
			Title:       &title,
			Description: &desc,
			Category:    &cat,
			DueDate:     &due,
		})
		if err == nil {
			m.say("Task updated.")
		}
	}

	var verr *task.ValidationError
	switch {
	case errors.As(err, &verr):
		m.oops(verr.Error())
		if m.mode == modeAdd {
			// Leave the form up so the offending field can be fixed.
			return m, nil
		}
	case err != nil:
		m.oops(err.Error())
	}

	m.mode = modeBrowse
	m.refresh()
	return m, nil
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		row, ok := m.selected()
		if !ok {
			m.mode = modeBrowse
			return m, nil
		}
		if err := m.list.Delete(row.Index); err != nil {
			m.oops(err.Error())
		} else {
			m.say("Task deleted.")
		}
		m.mode = modeBrowse
		m.refresh()
	case "n", "N", "esc":
		m.mode = modeBrowse
	}
	return m, nil
}

func (m Model) updateAddCategory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		return m, nil
	case "enter":
		name := m.catInput.Value()
		if m.list.AddCategory(name) {
			m.say("Category added: " + strings.TrimSpace(name))
		}
		m.mode = modeBrowse
		return m, nil
	}
	var cmd tea.Cmd
	m.catInput, cmd = m.catInput.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Personal To-Do List"))
	b.WriteString("\n\n")

	switch m.mode {
	case modeAdd, modeEdit:
		m.viewForm(&b)
	case modeAddCategory:
		b.WriteString(formLabelStyle.Render("Add Category"))
		b.WriteString("\n")
		b.WriteString(m.catInput.View())
		b.WriteString("\n\n")
		b.WriteString(mutedStyle.Render("enter save · esc cancel"))
	case modeConfirmDelete:
		m.viewTable(&b)
		if row, ok := m.selected(); ok {
			b.WriteString("\n")
			b.WriteString(errStyle.Render(fmt.Sprintf("Delete %q? (y/n)", row.Title)))
		}
	default:
		m.viewTable(&b)
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("a add · e edit · enter complete · d delete · s status · c category · x clear · n new category · q quit"))
	}

	if m.notice != "" {
		b.WriteString("\n")
		if m.isErr {
			b.WriteString(errStyle.Render(m.notice))
		} else {
			b.WriteString(mutedStyle.Render(m.notice))
		}
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewForm(b *strings.Builder) {
	heading := "Add Task"
	if m.mode == modeEdit {
		heading = "Edit Task"
	}
	b.WriteString(accentStyle.Render(heading))
	b.WriteString("\n\n")

	labels := [fieldCount]string{"Title", "Description", "Category", "Due (YYYY-MM-DD)"}
	for i := range m.inputs {
		b.WriteString(formLabelStyle.Render(labels[i]))
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("tab next field · enter save · esc cancel"))
}

func (m Model) viewTable(b *strings.Builder) {
	b.WriteString(mutedStyle.Render(fmt.Sprintf("Status: %s   Category: %s", m.filter.Status, m.filter.Category)))
	b.WriteString("\n\n")

	b.WriteString(headerStyle.Render(formatRow("Status", "Title", "Category", "Due", "Hint", "Description")))
	b.WriteString("\n")

	if len(m.rows) == 0 {
		b.WriteString(mutedStyle.Render("  (no tasks)"))
		b.WriteString("\n")
	}

	for i, row := range m.rows {
		line := formatRow(row.Status, row.Title, row.Category, row.Due, row.Hint, row.Description)
		style := rowStyle(row.Urgency)
		if i == m.cursor {
			style = selectedStyle
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	s := view.Summarize(m.list.Tasks(), m.now())
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%d tasks · %d pending · %d completed · %d overdue",
		s.Total, s.Pending, s.Completed, s.Overdue)))
}

func rowStyle(urgency string) lipgloss.Style {
	switch urgency {
	case view.UrgencyCompleted:
		return completedStyle
	case view.UrgencyDueSoon:
		return dueSoonStyle
	case view.UrgencyOverdue:
		return overdueStyle
	}
	return plainStyle
}

func formatRow(status, title, category, due, hint, desc string) string {
	return fmt.Sprintf(" %-12s %-30s %-12s %-11s %-11s %s",
		clip(status, 12), clip(title, 30), clip(category, 12), clip(due, 11), clip(hint, 11), clip(desc, 40))
}

func clip(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 1 {
		return string(r[:max])
	}
	return string(r[:max-1]) + "…"
}

func nextIn(values []string, current string) string {
	for i, v := range values {
		if v == current {
			return values[(i+1)%len(values)]
		}
	}
	if len(values) == 0 {
		return current
	}
	return values[0]
}
