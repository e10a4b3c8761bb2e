package ui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/aymanbagabas/go-udiff"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/unkn0wn-root/curseclient/internal/httpclient"
)

const (
	noResponseMessage = "No response yet"
	noDiffMessage     = "No previous response to compare"
	identicalMessage  = "Responses are identical"
)

func (m *Model) cycleResponseTab() {
	m.responseTab = (m.responseTab + 1) % tabCount
	m.response.GotoTop()
	m.refreshResponse()
}

// refreshResponse rebuilds the viewport content for the current outcome and
// tab.
func (m *Model) refreshResponse() {
	width := m.response.Width
	content := m.responseContent(width)
	if width > 0 {
		lines := strings.Split(content, "\n")
		for i, line := range lines {
			lines[i] = ansi.Truncate(line, width, "")
		}
		content = strings.Join(lines, "\n")
	}
	m.response.SetContent(content)
}

func (m Model) responseContent(width int) string {
	switch out := m.lastOutcome.(type) {
	case nil:
		if m.inFlight {
			return ""
		}
		return m.theme.Muted.Render(noResponseMessage)
	case httpclient.Failure:
		msg := out.Message
		if width > 0 {
			msg = lipgloss.NewStyle().Width(width).Render(msg)
		}
		return m.theme.StatusError.Render(msg)
	case httpclient.Success:
		switch m.responseTab {
		case tabHeaders:
			return formatHeaders(out.Headers)
		case tabDiff:
			return m.renderDiff()
		default:
			return m.theme.ResponseMeta.Render(responseSummary(out)) + "\n\n" + m.renderBody(out.Body)
		}
	}
	return ""
}

func responseSummary(s httpclient.Success) string {
	return fmt.Sprintf(
		"%d %s  %s  %s",
		s.StatusCode,
		s.Reason,
		formatDuration(s.Duration),
		s.Timestamp.Format(time.RFC3339),
	)
}

func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return d.String()
	}
	return d.Round(time.Millisecond).String()
}

func (m Model) renderBody(body httpclient.Body) string {
	text := body.String()
	if body.IsJSON() {
		if highlighted, ok := highlight(text, "json", m.highlightStyle); ok {
			return highlighted
		}
	}
	return text
}

func formatHeaders(headers map[string]string) string {
	if len(headers) == 0 {
		return "(no headers)"
	}
	names := make([]string, 0, len(headers))
	for name := range headers {
		names = append(names, name)
	}
	sort.Strings(names)
	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(headers[name])
	}
	return b.String()
}

func (m Model) renderDiff() string {
	latest, previous, ok := m.recent.LastTwoSuccesses()
	if !ok {
		return m.theme.Muted.Render(noDiffMessage)
	}
	diff := udiff.Unified(
		"previous "+previous.ID,
		"latest "+latest.ID,
		previous.Body.String()+"\n",
		latest.Body.String()+"\n",
	)
	if diff == "" {
		return m.theme.Muted.Render(identicalMessage)
	}
	lines := strings.Split(strings.TrimRight(diff, "\n"), "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			lines[i] = m.theme.ResponseMeta.Render(line)
		case strings.HasPrefix(line, "+"):
			lines[i] = m.theme.DiffAdded.Render(line)
		case strings.HasPrefix(line, "-"):
			lines[i] = m.theme.DiffRemoved.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// responseText is the plain text of the visible tab, used for copying.
func (m Model) responseText() (string, bool) {
	switch out := m.lastOutcome.(type) {
	case httpclient.Failure:
		return out.Message, true
	case httpclient.Success:
		if m.responseTab == tabHeaders {
			return formatHeaders(out.Headers), true
		}
		return out.Body.String(), true
	}
	return "", false
}
