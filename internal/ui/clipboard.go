package ui

import "strings"

func (m *Model) copyResponse() {
	text, ok := m.responseText()
	if !ok || strings.TrimSpace(text) == "" {
		m.setStatus("No response to copy", statusWarn)
		return
	}
	if err := m.writeClipboard(text); err != nil {
		m.logger.Warn("clipboard write failed", "error", err.Error())
		m.setStatus("Clipboard unavailable", statusWarn)
		return
	}
	m.setStatus("Response copied to clipboard", statusInfo)
}
