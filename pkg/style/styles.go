package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Base styles
var (
	// Headers and titles
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	// Text styles
	NormalStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// Status styles
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	// Box and container styles
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(1, 2)

	// List styles
	ListItemStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	// Package name style for tables and plans
	PackageStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	// The "CX" badge printed before status lines
	BadgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(SecondaryColor).
			Bold(true).
			Padding(0, 1)
)

// Status indicators
var (
	SuccessIndicator = SuccessStyle.Render("✓")
	ErrorIndicator   = ErrorStyle.Render("✗")
	WarningIndicator = WarningStyle.Render("⚠")
	InfoIndicator    = InfoStyle.Render("ℹ")
	PendingIndicator = MutedStyle.Render("○")
	RunningIndicator = InfoStyle.Render("●")
	SkippedIndicator = MutedStyle.Render("◌")
)

// Helper functions
func Indent(s string, level int) string {
	return lipgloss.NewStyle().PaddingLeft(level * 2).Render(s)
}

func Bold(s string) string {
	return lipgloss.NewStyle().Bold(true).Render(s)
}
