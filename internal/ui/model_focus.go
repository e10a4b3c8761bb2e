package ui

import "github.com/unkn0wn-root/curseclient/internal/focus"

func (m *Model) focusNext() {
	m.focus = m.focus.Next()
}

func (m *Model) focusPrev() {
	m.focus = m.focus.Prev()
}

// cycleMethod only acts while the Method field has focus; left and right are
// inert everywhere else.
func (m *Model) cycleMethod(step int) {
	if m.focus != focus.Method {
		return
	}
	m.draft.CycleMethod(step)
}
