package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle     = lipgloss.NewStyle().Padding(1, 2)
	titleStyle   = lipgloss.NewStyle().Bold(true)
	helpStyle    = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#d7263d"))
	labelStyle   = lipgloss.NewStyle().Faint(true).Width(14)
	cardBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)

// brandStyles derives the card styles from the tenant colours. Empty colours
// keep the terminal defaults.
func brandStyles(primary, accent string) (box, title, accentText lipgloss.Style) {
	box = cardBoxStyle
	title = titleStyle
	accentText = lipgloss.NewStyle()

	if primary != "" {
		box = box.BorderForeground(lipgloss.Color(primary))
		title = title.Foreground(lipgloss.Color(primary))
	}
	if accent != "" {
		accentText = accentText.Foreground(lipgloss.Color(accent))
	}

	return box, title, accentText
}
