package main

import "github.com/charmbracelet/lipgloss"

// All styles use ANSI colors 0–15 so they follow the terminal's theme.

var (
	// Header and status bar
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.ANSIColor(11)).
			Padding(0, 1)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(8))
	thinkingStyle = lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(3)).Italic(true)

	// Transcript roles
	userLabelStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(12)) // Bright blue
	assistantLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(10)) // Bright green

	// Display blocks
	blockLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(6)) // Cyan
	blockImageStyle = lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(5)) // Magenta
	blockFileStyle  = lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(3)) // Yellow
	metaStyle       = lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(8)) // Dark gray

	// Catalog selector overlay
	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.ANSIColor(3)).
			Padding(0, 1)
	breadcrumbStyle = lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(7))
	cursorStyle     = lipgloss.NewStyle().Reverse(true).Bold(true)
	optionStyle     = lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(7))
	groupStyle      = lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(12))
	needsInputStyle = lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(8)).Italic(true)

	// Input areas
	inputBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.ANSIColor(8))
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(3)).Bold(true)
)
