package main

import "github.com/charmbracelet/lipgloss"

// Layout constants
const (
	sphereRadius   = 9  // sphere radius in rows; columns are doubled
	sphereLabelPad = 3  // extra columns around the sphere for axis labels
	stateColumnW   = 38 // minimum width of the state readout panel
	controlsH      = 4  // height of the bottom help bar
)

// Lipgloss styles used across the TUI.
var (
	sphereStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7aa2f7")).
			Padding(0, 1)

	stateStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#bb9af7")).
			Padding(1)

	controlsStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#9ece6a")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff9e64"))

	activeGateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e0af68"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7dcfff"))

	gateStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#73daca"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#565f89"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f7768e"))

	menuBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#ff9e64")).
			Padding(0, 1)

	menuSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#ff9e64"))

	menuNormalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c0caf5"))

	// Sphere layers, back to front.
	sphereBackStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3b4261"))

	sphereFrontStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#565f89"))

	axisStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7dcfff"))

	vectorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e0af68"))

	vectorHeadStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff9e64"))
)
