package tui

import "github.com/charmbracelet/lipgloss"

// Palette shared by the browse views.
const (
	ColorHeader    = lipgloss.Color("39")
	ColorLabel     = lipgloss.Color("245")
	ColorValue     = lipgloss.Color("252")
	ColorHighlight = lipgloss.Color("212")
	ColorMuted     = lipgloss.Color("240")
	ColorError     = lipgloss.Color("196")
)

//nolint:gochecknoglobals // Immutable style values.
var (
	titleStyle  = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	pageStyle   = lipgloss.NewStyle().Foreground(ColorValue)
	activeStyle = lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true)
	gapStyle    = lipgloss.NewStyle().Foreground(ColorMuted)
	itemStyle   = lipgloss.NewStyle().Foreground(ColorValue).PaddingLeft(2)
	statusStyle = lipgloss.NewStyle().Foreground(ColorLabel)
	errorStyle  = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
)
