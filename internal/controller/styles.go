package controller

import "github.com/charmbracelet/lipgloss"

var (
	accentColor    = lipgloss.Color("#4682B4") // Steel blue
	highlightColor = lipgloss.Color("#FF8800") // Orange
	mutedColor     = lipgloss.Color("#888888") // Medium gray
	textColor      = lipgloss.Color("#CCCCCC") // Light gray
	goodColor      = lipgloss.Color("#228B22") // Forest green
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(accentColor).
			Padding(0, 1).
			Bold(true)

	countStyle  = lipgloss.NewStyle().Foreground(mutedColor)
	mutedStyle  = lipgloss.NewStyle().Foreground(mutedColor)
	textStyle   = lipgloss.NewStyle().Foreground(textColor)
	typeStyle   = lipgloss.NewStyle().Foreground(accentColor)
	cursorStyle = lipgloss.NewStyle().Foreground(highlightColor).Bold(true)

	highlightOnStyle  = lipgloss.NewStyle().Foreground(highlightColor).Bold(true)
	filterOnStyle     = lipgloss.NewStyle().Foreground(goodColor)
	filterOffStyle    = lipgloss.NewStyle().Foreground(mutedColor).Strikethrough(true)
	emptyStyle        = lipgloss.NewStyle().Foreground(mutedColor).Italic(true)
	previewTitleStyle = lipgloss.NewStyle().Foreground(mutedColor).Underline(true)
)

var (
	pulseBrightStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(highlightColor).
				Padding(0, 1)

	pulseDimStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1)

	// Hidden border keeps undecorated nodes the same size as pulsing
	// ones, so the layout stays put while highlights toggle.
	plainNodeStyle = lipgloss.NewStyle().
			Border(lipgloss.HiddenBorder()).
			Padding(0, 1)
)
