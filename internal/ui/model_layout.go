package ui

import "github.com/unkn0wn-root/curseclient/internal/config"

// layout holds outer panel sizes, borders included. Content areas are two
// columns narrower on each side (border plus padding) and two rows shorter.
type layout struct {
	inner     int
	method    int
	url       int
	json      int
	response  int
	leftWidth int
}

const (
	frameChrome  = 2
	panelChrome  = 2
	panelPadding = 2
	chromeRows   = 2 // status and help lines
)

func computeLayout(width, height int) layout {
	inner := maxInt(width-frameChrome, 0)
	panels := maxInt(height-frameChrome-chromeRows, 0)

	l := layout{inner: inner, method: 3, url: 3, leftWidth: inner / 2}
	rest := maxInt(panels-l.method-l.url, 0)
	l.json = clampInt(rest*2/5, 5, 10)
	if l.json > rest {
		l.json = rest
	}
	l.response = maxInt(rest-l.json, 0)
	return l
}

func (l layout) rightWidth() int { return l.inner - l.leftWidth }

func contentWidth(outer int) int { return maxInt(outer-panelChrome-panelPadding, 0) }

func contentHeight(outer int) int { return maxInt(outer-panelChrome, 0) }

func (m Model) tooSmall() bool {
	return config.CheckGeometry(m.width, m.height) != nil
}

func (m *Model) applyLayout() {
	l := computeLayout(m.width, m.height)
	m.urlInput.Width = maxInt(contentWidth(l.inner)-1, 1)
	m.jsonInput.SetWidth(maxInt(contentWidth(l.leftWidth), 1))
	m.jsonInput.SetHeight(maxInt(contentHeight(l.json), 1))
	m.response.Width = maxInt(contentWidth(l.inner), 0)
	// one row is taken by the tab strip
	m.response.Height = maxInt(contentHeight(l.response)-1, 0)
	m.refreshResponse()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func clampInt(v, lo, hi int) int {
	return maxInt(lo, minInt(v, hi))
}
