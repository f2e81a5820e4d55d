package ui

import "charm.land/lipgloss/v2"

// Color palette - Purple + Cyan/Teal theme
var (
	ColorPrimary     = lipgloss.Color("#7C3AED") // Purple
	ColorSecondary   = lipgloss.Color("#06B6D4") // Cyan
	ColorMuted       = lipgloss.Color("#6B7280") // Gray
	ColorBorder      = lipgloss.Color("#374151") // Dark gray
	ColorBorderFocus = lipgloss.Color("#7C3AED") // Purple when focused
	ColorText        = lipgloss.Color("#F9FAFB") // Light text
	ColorTextMuted   = lipgloss.Color("#B0B8C4") // Muted text
	ColorTextInverse = lipgloss.Color("#1F2937") // Dark text for light backgrounds
	ColorWarning     = lipgloss.Color("#F59E0B") // Amber for warnings
	ColorError       = lipgloss.Color("#EF4444") // Red for errors
	ColorSuccess     = lipgloss.Color("#10B981") // Green for success
)

// Layout constants
const (
	HeaderHeight = 1
	FooterHeight = 1

	DialogWidth     = 60
	DialogMaxHeight = 20
	InputWidth      = 52
	InputCharLimit  = 256
)

// Header styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Background(ColorPrimary).
			Padding(0, 1)
)

// Footer styles
var (
	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	// LiveRegionStyle renders the assistive announcement line.
	LiveRegionStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Italic(true).
			Padding(0, 1)
)

// List styles
var (
	ItemStyle = lipgloss.NewStyle().
			Padding(0, 1)

	SelectedStyle = lipgloss.NewStyle().
			Background(ColorPrimary).
			Foreground(ColorText).
			Bold(true).
			Padding(0, 1)
)

// Dialog styles
var (
	DialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, 2).
			Width(DialogWidth)

	DialogTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary)

	DialogCloseStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted)

	DialogHelpStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			MarginTop(1)
)

// Widget styles
var (
	ButtonStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	ButtonFocusedStyle = lipgloss.NewStyle().
				Foreground(ColorText).
				Bold(true).
				Padding(0, 2).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderFocus)

	ButtonDisabledStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Padding(0, 2).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorder)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	FieldFocusedStyle = lipgloss.NewStyle().
				BorderLeft(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(ColorPrimary).
				PaddingLeft(1)

	FieldBlurredStyle = lipgloss.NewStyle().
				PaddingLeft(2)
)

// Status styles
var (
	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)
)
