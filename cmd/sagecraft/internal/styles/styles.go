// Package styles centralizes the CLI's lipgloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Title styles the program banner.
	Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))

	// Success styles the final generation message.
	Success = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))

	// Error styles fatal error output.
	Error = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))

	// Dim styles secondary/hint text.
	Dim = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)
