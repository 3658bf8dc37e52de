package main

import "github.com/charmbracelet/lipgloss"

// Output styling for headers and listings.
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8BC34A"))

	topicStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#2196F3"))

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f2f2f2"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7a8699"))
)

// sectionHeader renders a section heading, honoring --no-color and the
// config color switch.
func sectionHeader(color bool) func(title string) string {
	return func(title string) string {
		line := "--- " + title + " ---"
		if !color || noColor {
			return line
		}
		return headerStyle.Render(line)
	}
}
