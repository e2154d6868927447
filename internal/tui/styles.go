package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/muurk/findar/internal/content"
	"github.com/muurk/findar/internal/site"
	"github.com/muurk/findar/internal/version"
)

// Layout constants for responsive terminal width
const (
	MinTerminalWidth = 60  // Minimum supported terminal width
	MaxContentWidth  = 100 // Maximum content width before capping
	DefaultHeight    = 24
)

// Color palette
var (
	PrimaryColor = lipgloss.Color("#2563EB") // Findar blue
	TextColor    = lipgloss.Color("#FFFFFF")
	SubtleColor  = lipgloss.Color("#626262")
	DotColor     = lipgloss.Color("#D1D5DB") // Inactive indicator grey
	ErrorColor   = lipgloss.Color("#FF0000")
)

// Common styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	StatusStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	HelpStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Padding(1, 0, 0, 0)
)

// Indicator glyphs
const (
	ActiveDot   = "●"
	InactiveDot = "○"
)

// ThemeColors returns the start and end colour of a feature theme.
func ThemeColors(t content.Theme) (lipgloss.Color, lipgloss.Color) {
	style := site.ThemeOf(t)
	return lipgloss.Color(style.From), lipgloss.Color(style.To)
}

// FeatureBoxStyle returns the bordered box for the active feature, coloured by theme.
func FeatureBoxStyle(t content.Theme, width int) lipgloss.Style {
	from, _ := ThemeColors(t)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(from).
		Width(width-2). // Account for border characters
		Padding(1, 2)
}

// FeatureTitleStyle returns the title style for a feature theme.
func FeatureTitleStyle(t content.Theme) lipgloss.Style {
	_, to := ThemeColors(t)
	return lipgloss.NewStyle().
		Foreground(to).
		Bold(true).
		MarginBottom(1)
}

// BuildHeaderContent creates the brand line shown above the carousel.
func BuildHeaderContent(brand string) string {
	left := HeaderStyle.Render(brand + " feature preview")
	right := SubtitleStyle.Render("v" + version.Version)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
}

// ClampWidth bounds a terminal width to the supported range.
func ClampWidth(width int) int {
	if width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}

// GetTerminalSize returns the current terminal width and height
func GetTerminalSize() (int, int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return MinTerminalWidth, DefaultHeight
	}
	return ClampWidth(width), height
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
