package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent  = lipgloss.Color("#2563EB")
	colorSuccess = lipgloss.Color("#16A34A")
	colorDanger  = lipgloss.Color("#DC2626")
	colorMuted   = lipgloss.Color("#6B7280")

	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(colorDanger)
	successStyle    = lipgloss.NewStyle().Foreground(colorSuccess)
	mutedStyle      = lipgloss.NewStyle().Foreground(colorMuted)
	selectedStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	errorBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDanger).
			Foreground(colorDanger).Padding(0, 1)
	cardStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorAccent).
			Padding(0, 1).Width(24)
	cardLabelStyle = lipgloss.NewStyle().Foreground(colorMuted)
	cardValueStyle = lipgloss.NewStyle().Bold(true)
)
