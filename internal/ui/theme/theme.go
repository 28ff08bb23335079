package theme

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha subset.
var (
	Text     = lipgloss.Color("#cdd6f4")
	Subtext  = lipgloss.Color("#a6adc8")
	Surface  = lipgloss.Color("#45475a")
	Lavender = lipgloss.Color("#b4befe")
	Sapphire = lipgloss.Color("#74c7ec")
	Peach    = lipgloss.Color("#fab387")

	Title  = lipgloss.NewStyle().Foreground(Sapphire).Bold(true)
	Header = lipgloss.NewStyle().Foreground(Lavender).Bold(true)
	Muted  = lipgloss.NewStyle().Foreground(Subtext)
	Hot    = lipgloss.NewStyle().Foreground(Peach).Bold(true)

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface).
		Padding(0, 1)
)
