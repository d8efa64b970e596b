package ui

import "github.com/charmbracelet/lipgloss"

// Row colors mirror the desktop theme: mint for completed, light yellow for
// due soon, soft red for overdue.
var (
	plainStyle = lipgloss.NewStyle()

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4c1d95")).
			Background(lipgloss.Color("#ede9fe")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4c1d95"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6b7280"))

	accentStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#a78bfa"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#111827")).
			Background(lipgloss.Color("#ddd6fe"))

	completedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#065f46")).
			Background(lipgloss.Color("#bbf7d0"))

	dueSoonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#374151")).
			Background(lipgloss.Color("#fef9c3"))

	overdueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7f1d1d")).
			Background(lipgloss.Color("#fecaca"))

	errStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#b91c1c"))

	formLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#374151"))
)
