package output

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles used by commands.
type Styles struct {
	Header1 lipgloss.Style
	Header2 lipgloss.Style
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style

	// Truth-table cells
	True    lipgloss.Style
	False   lipgloss.Style
	Invalid lipgloss.Style
}

// NewStyles builds the styles for a lipgloss renderer.
func NewStyles(lg *lipgloss.Renderer) Styles {
	return Styles{
		Header1: lg.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Header2: lg.NewStyle().Bold(true),
		Bold:    lg.NewStyle().Bold(true),
		Muted:   lg.NewStyle().Foreground(lipgloss.Color("8")),
		Success: lg.NewStyle().Foreground(lipgloss.Color("10")),
		Warning: lg.NewStyle().Foreground(lipgloss.Color("11")),
		Error:   lg.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		True:    lg.NewStyle().Foreground(lipgloss.Color("10")),
		False:   lg.NewStyle().Foreground(lipgloss.Color("9")),
		Invalid: lg.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	}
}
