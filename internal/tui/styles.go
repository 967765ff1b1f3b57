package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles for the terminal UI.
type Styles struct {
	Title    lipgloss.Style
	Selected lipgloss.Style
	Option   lipgloss.Style
	Label    lipgloss.Style
	Focused  lipgloss.Style
	Error    lipgloss.Style
	Time     lipgloss.Style
	Help     lipgloss.Style
}

// DefaultStyles returns the default style configuration.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("111")),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("71")),
		Option: lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")),
		Label: lipgloss.NewStyle().
			Width(10),
		Focused: lipgloss.NewStyle().
			Width(10).
			Foreground(lipgloss.Color("111")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("167")),
		Time: lipgloss.NewStyle().
			Bold(true).
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("111")),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
	}
}
