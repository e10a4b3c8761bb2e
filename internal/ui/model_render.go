package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/unkn0wn-root/curseclient/internal/bindings"
	"github.com/unkn0wn-root/curseclient/internal/config"
	"github.com/unkn0wn-root/curseclient/internal/focus"
	"github.com/unkn0wn-root/curseclient/internal/request"
)

func (m Model) View() string {
	if !m.ready {
		return ""
	}
	if m.tooSmall() {
		return config.TooSmallMessage
	}

	l := computeLayout(m.width, m.height)
	panelsHeight := l.method + l.url + l.json + l.response

	var panels string
	if m.showHelp {
		panels = lipgloss.Place(l.inner, panelsHeight, lipgloss.Center, lipgloss.Center, m.renderHelp())
	} else {
		panels = lipgloss.JoinVertical(
			lipgloss.Left,
			m.renderMethodPanel(l),
			m.renderURLPanel(l),
			lipgloss.JoinHorizontal(lipgloss.Top, m.renderHeadersPanel(l), m.renderBodyPanel(l)),
			m.renderResponsePanel(l),
		)
	}

	lines := strings.Split(panels, "\n")
	if len(lines) > panelsHeight {
		lines = lines[:panelsHeight]
	}
	lines = append(lines, " "+m.renderStatusLine(l.inner-2), " "+m.renderHelpLine(l.inner-2))

	title := fmt.Sprintf("CurseClient - Terminal API Client (%s to quit)", firstKey(m.bindings, bindings.ActionQuit))
	return renderBox(m.theme.AppFrame, m.width, m.height, title, m.theme.Title, lines, 0, false)
}

func (m Model) renderMethodPanel(l layout) string {
	chips := make([]string, 0, len(request.Methods()))
	for _, method := range request.Methods() {
		style := m.theme.MethodChip
		if method == m.draft.Method {
			style = m.theme.MethodChipSelected
		}
		if m.focus == focus.Method {
			style = style.Bold(true)
		}
		chips = append(chips, style.Render(" "+string(method)+" "))
	}
	return renderBox(
		m.panelBorder(focus.Method), l.inner, l.method,
		focus.Method.Label(), m.theme.PanelLabel,
		[]string{strings.Join(chips, "")}, 1, false,
	)
}

func (m Model) renderURLPanel(l layout) string {
	var line string
	if m.editing && m.editField == focus.URL {
		line = m.urlInput.View()
	} else {
		line = clipURL(m.draft.URL, contentWidth(l.inner))
		if m.focus == focus.URL {
			line = m.theme.URLFocused.Render(line)
		}
	}
	return renderBox(
		m.panelBorder(focus.URL), l.inner, l.url,
		focus.URL.Label(), m.labelStyle(focus.URL),
		[]string{line}, 1, false,
	)
}

func (m Model) renderHeadersPanel(l layout) string {
	return m.renderJSONPanel(focus.Headers, l.leftWidth, l.json, m.draft.Headers.Pretty())
}

func (m Model) renderBodyPanel(l layout) string {
	return m.renderJSONPanel(focus.Body, l.rightWidth(), l.json, m.draft.Body)
}

func (m Model) renderJSONPanel(field focus.Field, width, height int, preview string) string {
	var lines []string
	if m.editing && m.editField == field {
		lines = strings.Split(m.jsonInput.View(), "\n")
	} else if preview != "" {
		lines = strings.Split(preview, "\n")
	}
	return renderBox(
		m.panelBorder(field), width, height,
		field.Label(), m.labelStyle(field),
		lines, 1, true,
	)
}

func (m Model) renderResponsePanel(l layout) string {
	lines := []string{m.renderTabs()}
	if m.inFlight {
		lines = append(lines, m.spinner.View()+m.theme.Loading.Render("Loading..."))
	} else {
		lines = append(lines, strings.Split(m.response.View(), "\n")...)
	}
	return renderBox(
		m.theme.PanelBorder, l.inner, l.response,
		"Response", m.theme.PanelLabel,
		lines, 1, false,
	)
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, int(tabCount))
	for tab := tabBody; tab < tabCount; tab++ {
		style := m.theme.TabInactive
		if tab == m.responseTab {
			style = m.theme.TabActive
		}
		tabs = append(tabs, style.Render(tab.String()))
	}
	return strings.Join(tabs, " ")
}

func (m Model) renderHelpLine(width int) string {
	var text string
	switch {
	case m.editing && m.editField == focus.URL:
		text = "Enter: Save | Esc: Cancel"
	case m.editing:
		text = "Ctrl+S: Save | Esc: Cancel | Enter: New line"
	default:
		text = fmt.Sprintf(
			"%s%s: Methods | %s%s: Fields | %s: Edit | %s: Send Request",
			firstKey(m.bindings, bindings.ActionFocusLeft),
			firstKey(m.bindings, bindings.ActionFocusRight),
			firstKey(m.bindings, bindings.ActionFocusUp),
			firstKey(m.bindings, bindings.ActionFocusDown),
			firstKey(m.bindings, bindings.ActionEdit),
			firstKey(m.bindings, bindings.ActionSend),
		)
	}
	style := m.theme.HelpLine
	if m.editing {
		style = m.theme.EditorHint
	}
	return style.Render(ansi.Truncate(text, maxInt(width, 0), ""))
}

func (m Model) panelBorder(field focus.Field) lipgloss.Style {
	if m.focus == field && field.Editable() {
		return m.theme.PanelBorderFocused
	}
	return m.theme.PanelBorder
}

func (m Model) labelStyle(field focus.Field) lipgloss.Style {
	if m.focus == field {
		return m.theme.PanelLabelFocused
	}
	return m.theme.PanelLabel
}

// renderBox draws a bordered box of the given outer size with label set into
// the top border. Lines are clipped to the content area; with ellipsis set an
// overflowing preview ends in "...".
func renderBox(
	box lipgloss.Style,
	width, height int,
	label string,
	labelStyle lipgloss.Style,
	lines []string,
	padding int,
	ellipsis bool,
) string {
	if width < panelChrome+1 || height < panelChrome {
		return ""
	}
	cw := maxInt(width-panelChrome-2*padding, 0)
	ch := contentHeight(height)
	body := fitLines(lines, cw, ch, ellipsis)

	rendered := box.
		BorderTop(false).
		BorderLeft(true).
		BorderRight(true).
		BorderBottom(true).
		Width(width-panelChrome).
		Height(ch).
		Padding(0, padding).
		Render(strings.Join(body, "\n"))
	return topBorder(box, width, label, labelStyle) + "\n" + rendered
}

func topBorder(box lipgloss.Style, width int, label string, labelStyle lipgloss.Style) string {
	b := box.GetBorderStyle()
	edge := lipgloss.NewStyle().Foreground(box.GetBorderTopForeground())

	labelText := ""
	if label != "" {
		labelText = labelStyle.Render(" " + label + " ")
	}
	fill := width - 3 - lipgloss.Width(labelText)
	if fill < 0 {
		labelText = ""
		fill = width - 3
	}
	return edge.Render(b.TopLeft+b.Top) + labelText + edge.Render(strings.Repeat(b.Top, fill)+b.TopRight)
}

func fitLines(lines []string, width, height int, ellipsis bool) []string {
	if height <= 0 {
		return nil
	}
	overflow := len(lines) > height
	if overflow {
		lines = lines[:height]
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = ansi.Truncate(line, width, "")
	}
	if overflow && ellipsis {
		out[len(out)-1] = "..."
	}
	return out
}

// clipURL keeps the URL within width cells, ending it in "..." when cut.
func clipURL(url string, width int) string {
	if runewidth.StringWidth(url) <= width {
		return url
	}
	return runewidth.Truncate(url, width, "...")
}

func firstKey(m *bindings.Map, action bindings.ActionID) string {
	keys := m.Keys(action)
	if len(keys) == 0 {
		return "unbound"
	}
	return keyDisplay(keys[:1])
}

var keyGlyphs = map[string]string{
	"left":   "←",
	"right":  "→",
	"up":     "↑",
	"down":   "↓",
	"enter":  "Enter",
	"tab":    "Tab",
	"esc":    "Esc",
	"pgup":   "PgUp",
	"pgdown": "PgDn",
	" ":      "Space",
}

// keyDisplay renders keys for help text: arrows as glyphs, function keys in
// upper case, everything else as bound.
func keyDisplay(keys []string) string {
	out := make([]string, 0, len(keys))
	for _, key := range keys {
		if glyph, ok := keyGlyphs[key]; ok {
			out = append(out, glyph)
			continue
		}
		if len(key) >= 2 && key[0] == 'f' && key[1] >= '0' && key[1] <= '9' {
			out = append(out, strings.ToUpper(key))
			continue
		}
		out = append(out, key)
	}
	return strings.Join(out, "/")
}
