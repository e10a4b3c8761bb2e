package ui

import (
	"bytes"

	"github.com/alecthomas/chroma/quick"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// highlight colours content for the terminal's colour profile. It reports
// false when the terminal has no colour or the lexer fails.
func highlight(content, lexer, style string) (string, bool) {
	formatter := formatterFor(lipgloss.ColorProfile())
	if formatter == "" {
		return "", false
	}
	var buf bytes.Buffer
	if err := quick.Highlight(&buf, content, lexer, formatter, style); err != nil {
		return "", false
	}
	return buf.String(), true
}

func formatterFor(profile termenv.Profile) string {
	switch profile {
	case termenv.TrueColor:
		return "terminal16m"
	case termenv.ANSI256:
		return "terminal256"
	case termenv.ANSI:
		return "terminal16"
	default:
		return ""
	}
}
