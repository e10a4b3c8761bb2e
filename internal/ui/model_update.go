package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/unkn0wn-root/curseclient/internal/bindings"
	"github.com/unkn0wn-root/curseclient/internal/config"
)

func pollCmd() tea.Cmd {
	return tea.Tick(config.PollInterval, func(t time.Time) tea.Msg {
		return pollMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return pollCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.height = typed.Height
		m.ready = true
		m.applyLayout()
	case pollMsg:
		m.drainResults()
		cmds = append(cmds, pollCmd())
	case spinner.TickMsg:
		if m.inFlight {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(typed)
			cmds = append(cmds, cmd)
		}
	case tea.KeyMsg:
		cmds = append(cmds, m.handleKey(typed))
	default:
		if m.editing {
			cmds = append(cmds, m.updateEditor(msg))
		}
	}

	return m, batchCommands(cmds...)
}

// handleKey dispatches one key press. A panic anywhere below is turned into
// a status message so the loop keeps running.
func (m *Model) handleKey(msg tea.KeyMsg) (cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Warn("recovered from panic in key handler", "key", msg.String(), "panic", fmt.Sprint(r))
			m.setStatus(fmt.Sprintf("Error: %v", r), statusError)
			cmd = nil
		}
	}()

	if msg.String() == "ctrl+c" {
		return tea.Quit
	}
	if m.editing {
		return m.handleEditorKey(msg)
	}

	action, ok := m.bindings.Match(msg.String())
	if m.showHelp {
		switch {
		case ok && action == bindings.ActionQuit:
			return tea.Quit
		case ok && action == bindings.ActionToggleHelp, msg.String() == "esc":
			m.showHelp = false
		}
		return nil
	}
	if !ok {
		return nil
	}

	switch action {
	case bindings.ActionQuit:
		return tea.Quit
	case bindings.ActionFocusUp:
		m.focusPrev()
	case bindings.ActionFocusDown:
		m.focusNext()
	case bindings.ActionFocusLeft:
		m.cycleMethod(-1)
	case bindings.ActionFocusRight:
		m.cycleMethod(1)
	case bindings.ActionEdit:
		return m.openEditor()
	case bindings.ActionSend:
		return m.sendRequest()
	case bindings.ActionCycleResponseTab:
		m.cycleResponseTab()
	case bindings.ActionScrollUp:
		m.response.PageUp()
	case bindings.ActionScrollDown:
		m.response.PageDown()
	case bindings.ActionCopyResponse:
		m.copyResponse()
	case bindings.ActionToggleHelp:
		m.showHelp = true
	}
	return nil
}

func batchCommands(cmds ...tea.Cmd) tea.Cmd {
	filtered := make([]tea.Cmd, 0, len(cmds))
	for _, cmd := range cmds {
		if cmd != nil {
			filtered = append(filtered, cmd)
		}
	}
	switch len(filtered) {
	case 0:
		return nil
	case 1:
		return filtered[0]
	default:
		return tea.Batch(filtered...)
	}
}
