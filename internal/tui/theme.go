package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the review UI.
type Theme struct {
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Normal      lipgloss.Style
	Muted       lipgloss.Style
	Income      lipgloss.Style
	Expense     lipgloss.Style
	FieldLabel  lipgloss.Style
	FieldValue  lipgloss.Style
	Focused     lipgloss.Style
	Card        lipgloss.Style
	SelectedBox lipgloss.Style
	Error       lipgloss.Style
	Help        lipgloss.Style
}

// DefaultTheme is the default theme.
var DefaultTheme = Theme{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fafafa")).
		MarginBottom(1),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a3a3a3")),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#fafafa")),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#737373")),
	Income: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#10b981")),
	Expense: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ef4444")),
	FieldLabel: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a78bfa")).
		Width(10),
	FieldValue: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#fafafa")),
	Focused: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#7c3aed")),
	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#404040")).
		Padding(0, 1),
	SelectedBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#7c3aed")).
		Padding(0, 1),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ef4444")),
	Help: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#737373")).
		MarginTop(1),
}
