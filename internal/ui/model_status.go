package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

func (m *Model) setStatus(text string, level statusLevel) {
	m.setStatusMessage(statusMsg{text: text, level: level})
}

func (m *Model) setStatusMessage(msg statusMsg) {
	msg.text = strings.TrimSpace(msg.text)
	m.statusMessage = msg
}

func (m Model) renderStatusLine(width int) string {
	msg := m.statusMessage
	if msg.text == "" || width <= 0 {
		return ""
	}
	text := ansi.Truncate(msg.text, width, "")
	switch msg.level {
	case statusWarn:
		return m.theme.StatusWarn.Render(text)
	case statusError:
		return m.theme.StatusError.Render(text)
	case statusSuccess:
		return m.theme.StatusSuccess.Render(text)
	default:
		return m.theme.StatusInfo.Render(text)
	}
}
