// Package styles defines the visual appearance of the nagbox dialog.
// Colors are a subset of the Catppuccin Mocha palette.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette
var (
	Mauve    = lipgloss.Color("#CBA6F7")
	Red      = lipgloss.Color("#F38BA8")
	Peach    = lipgloss.Color("#FAB387")
	Text     = lipgloss.Color("#CDD6F4")
	Subtext0 = lipgloss.Color("#A6ADC8")
	Overlay0 = lipgloss.Color("#6C7086")
	Surface1 = lipgloss.Color("#45475A")
)

// Semantic colors
var (
	Danger      = Red
	Warning     = Peach
	TextCol     = Text
	TextMuted   = Subtext0
	Border      = Surface1
	BorderFocus = Mauve
)

var (
	// ErrorMarker and WarningMarker style the severity symbol next to the
	// message.
	ErrorMarker = lipgloss.NewStyle().
			Bold(true).
			Foreground(Danger)

	WarningMarker = lipgloss.NewStyle().
			Bold(true).
			Foreground(Warning)

	// Message styles the dialog text.
	Message = lipgloss.NewStyle().
		Foreground(TextCol)

	// Button is an unfocused action button.
	Button = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Foreground(TextCol).
		Padding(0, 2)

	// ButtonFocused is the button the cursor is on.
	ButtonFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderFocus).
			Foreground(BorderFocus).
			Bold(true).
			Padding(0, 2)

	// Icon styles the icon name shown beside a button label.
	Icon = lipgloss.NewStyle().
		Foreground(Overlay0)

	// Help styles the key help line.
	Help = lipgloss.NewStyle().
		Foreground(TextMuted)
)
