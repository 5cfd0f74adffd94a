package cli

import "github.com/charmbracelet/lipgloss"

// ------- table view styling (Lip Gloss) -------
var (
	titleStyle       = lipgloss.NewStyle().Bold(true)
	headerStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	localHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	localTagStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Faint(true)
	placeholderStyle = lipgloss.NewStyle().Faint(true)
	emptyStyle       = lipgloss.NewStyle().Faint(true).Italic(true)
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	helpStyle        = lipgloss.NewStyle().Faint(true)
	loadingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)
