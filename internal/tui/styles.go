package tui

import "github.com/charmbracelet/lipgloss"

// Layout constants.
const (
	maxNameDisplayLen = 40
	truncateSuffix    = "..."
	truncateOffset    = maxNameDisplayLen - len(truncateSuffix)

	defaultWidth  = 80
	defaultHeight = 24

	// imagePlaceholder stands in for a blank image reference. A bad image
	// never escalates beyond its own placeholder.
	imagePlaceholder = "[sem imagem]"
)

//nolint:gochecknoglobals // Shared lipgloss styles are conventionally package globals.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			MarginBottom(1)

	selectedRowStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("57"))

	lastViewedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9"))

	detailBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("12")).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			MarginTop(1)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))
)

// truncateName caps a display name at maxNameDisplayLen runes.
func truncateName(name string) string {
	runes := []rune(name)
	if len(runes) <= maxNameDisplayLen {
		return name
	}
	return string(runes[:truncateOffset]) + truncateSuffix
}
