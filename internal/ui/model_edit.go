package ui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/unkn0wn-root/curseclient/internal/bindings"
	"github.com/unkn0wn-root/curseclient/internal/errdef"
	"github.com/unkn0wn-root/curseclient/internal/focus"
)

// openEditor starts a modal edit of the focused field, seeded with its
// current value. The Method field is cycled, not edited.
func (m *Model) openEditor() tea.Cmd {
	switch m.focus {
	case focus.URL:
		m.editing = true
		m.editField = focus.URL
		m.urlInput.SetValue(m.draft.URL)
		m.urlInput.CursorEnd()
		return m.urlInput.Focus()
	case focus.Headers, focus.Body:
		m.editing = true
		m.editField = m.focus
		if m.focus == focus.Headers {
			m.jsonInput.SetValue(m.draft.Headers.Pretty())
		} else {
			m.jsonInput.SetValue(m.draft.Body)
		}
		return m.jsonInput.Focus()
	default:
		keys := keyDisplay(m.bindings.Keys(bindings.ActionFocusLeft)) +
			keyDisplay(m.bindings.Keys(bindings.ActionFocusRight))
		m.setStatus(fmt.Sprintf("Use %s to change the method", keys), statusInfo)
		return nil
	}
}

func (m *Model) handleEditorKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.closeEditor()
		m.setStatus("Edit cancelled", statusInfo)
		return nil
	case "enter":
		if m.editField == focus.URL {
			m.commitEditor()
			return nil
		}
	case "ctrl+s":
		if m.editField != focus.URL {
			m.commitEditor()
			return nil
		}
	}
	return m.updateEditor(msg)
}

func (m *Model) updateEditor(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if m.editField == focus.URL {
		m.urlInput, cmd = m.urlInput.Update(msg)
	} else {
		m.jsonInput, cmd = m.jsonInput.Update(msg)
	}
	return cmd
}

// commitEditor validates and stores the edited text. A rejected edit keeps
// the previous value; the editor closes either way.
func (m *Model) commitEditor() {
	field := m.editField
	m.closeEditor()

	var err error
	switch field {
	case focus.URL:
		m.draft.EditURL(m.urlInput.Value())
	case focus.Headers:
		_, err = m.draft.EditHeaders(m.jsonInput.Value())
	case focus.Body:
		_, err = m.draft.EditBody(m.jsonInput.Value())
	}
	if err != nil {
		m.logger.Debug("edit rejected", "field", field.String(), "error", err.Error())
		m.setStatus("JSON Error: "+validationDetail(err), statusError)
		return
	}
	m.setStatus(field.Label()+" updated", statusInfo)
}

func (m *Model) closeEditor() {
	m.editing = false
	m.urlInput.Blur()
	m.jsonInput.Blur()
}

// validationDetail strips the "parse headers" style prefix so the user sees
// the parser's own description.
func validationDetail(err error) string {
	var e *errdef.Error
	if errors.As(err, &e) {
		if e.Err != nil {
			return e.Err.Error()
		}
		return e.Message
	}
	return err.Error()
}
