package ui

import "github.com/charmbracelet/lipgloss"

var (
	borderColor = lipgloss.AdaptiveColor{Light: "#888888", Dark: "#666666"}
	labelColor  = lipgloss.AdaptiveColor{Light: "#333333", Dark: "#FFFFFF"}

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"})

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("1"))
)
