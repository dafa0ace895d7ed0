package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

var (
	TitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	NameStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	SourceStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	DescStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	HeadingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	ErrorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	WarnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

var colorEnabled = detectColor()

func detectColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return false
	}
	return termenv.ColorProfile() != termenv.Ascii
}

// SetColor overrides color detection (for --no-color and tests).
func SetColor(enabled bool) {
	colorEnabled = enabled
}

// ColorEnabled reports whether styled output should be emitted.
func ColorEnabled() bool {
	return colorEnabled
}

// Styled renders s with the style when color is enabled, plain otherwise.
func Styled(style lipgloss.Style, s string) string {
	if !colorEnabled {
		return s
	}
	return style.Render(s)
}
