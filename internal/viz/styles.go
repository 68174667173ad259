package viz

import "github.com/charmbracelet/lipgloss"

var (
	Cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	White   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	Dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	Green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	Yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	Magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))

	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("255")).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(lipgloss.Color("240"))

	Formula = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	Value   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	KeyHint = lipgloss.NewStyle().Foreground(lipgloss.Color("242")).Italic(true)
)
