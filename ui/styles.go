package ui

import (
	"charm.land/lipgloss/v2"
)

var (
	textDark    = lipgloss.Color("#212529")
	accent      = lipgloss.Color("#0D6EFD")
	borderLight = lipgloss.Color("#DEE2E6")
	success     = lipgloss.Color("#198754")
	failure     = lipgloss.Color("#DC3545")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Faint(true)

	ruleStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderLight).
			Padding(0, 1)

	resultStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(success)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(failure)

	placeholderStyle = lipgloss.NewStyle().
				Foreground(textDark).
				Italic(true)
)
