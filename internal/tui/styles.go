package tui

import "github.com/charmbracelet/lipgloss"

// Dial cells are cellWidth columns by cellHeight rows including the border.
const (
	cellWidth  = 13
	cellHeight = 6
)

type styles struct {
	Title   lipgloss.Style
	Dial    lipgloss.Style
	Focused lipgloss.Style
	Active  lipgloss.Style
	Muted   lipgloss.Style
	Output  lipgloss.Style
	Error   lipgloss.Style
}

func defaultStyles() styles {
	dial := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(cellWidth - 2).
		Height(cellHeight - 2).
		Align(lipgloss.Center)
	return styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		Dial:    dial,
		Focused: dial.BorderForeground(lipgloss.Color("205")),
		Active:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Output:  lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}
