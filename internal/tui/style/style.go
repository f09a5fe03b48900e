// Package style defines lipgloss styles for the TUI.
package style

import "github.com/charmbracelet/lipgloss"

// UI styles using lipgloss.
// These are package-level for convenience; lipgloss styles are value types
// and safe for concurrent use.
//
// Variable names omit the "Style" suffix since they're accessed via the
// style package (e.g., style.Knob reads better than style.KnobStyle).
var (
	// Title is used for the slider title.
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205"))

	// Focused marks the title of the slider holding input focus.
	Focused = lipgloss.NewStyle().
		Bold(true).
		Underline(true).
		Foreground(lipgloss.Color("205"))

	// Value is used for the current value next to the title.
	Value = lipgloss.NewStyle().
		Foreground(lipgloss.Color("42"))

	// Track is the unfilled part of the track.
	Track = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	// Fill is the part of the track between the minimum and the knob.
	Fill = lipgloss.NewStyle().
		Foreground(lipgloss.Color("63"))

	// Knob is the knob at rest.
	Knob = lipgloss.NewStyle().
		Foreground(lipgloss.Color("255"))

	// KnobSliding is the knob while a drag is highlighted.
	KnobSliding = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	// Tick is used for tick marks.
	Tick = lipgloss.NewStyle().
		Foreground(lipgloss.Color("245"))

	// Label is used for value labels along the track.
	Label = lipgloss.NewStyle().
		Foreground(lipgloss.Color("250"))

	// Help is used for keyboard shortcut hints.
	Help = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	// Key is used for highlighting keyboard keys.
	Key = lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)

	// Muted is used for de-emphasized text such as the event log.
	Muted = lipgloss.NewStyle().
		Foreground(lipgloss.Color("245"))

	// Error is used for error messages.
	Error = lipgloss.NewStyle().
		Foreground(lipgloss.Color("196"))
)
