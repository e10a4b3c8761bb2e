package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/unkn0wn-root/curseclient/internal/httpclient"
)

// sendRequest is the send transition. It refuses while a request is in
// flight or the URL is empty; otherwise it snapshots the draft and hands it
// to a new execution unit without waiting for it.
func (m *Model) sendRequest() tea.Cmd {
	if m.inFlight {
		m.logger.Warn("send rejected", "reason", "in flight", "request_id", m.pendingID)
		m.setStatus("Request already in progress, please wait...", statusWarn)
		return nil
	}
	if m.draft.URL == "" {
		m.logger.Warn("send rejected", "reason", "empty url")
		m.setStatus("URL cannot be empty", statusError)
		return nil
	}

	snap := m.draft.Snapshot()
	m.inFlight = true
	m.pendingID = snap.ID()
	m.lastOutcome = nil
	m.dispatcher.Spawn(snap)

	m.setStatus("Sending request...", statusSuccess)
	m.refreshResponse()
	return m.spinner.Tick
}

// drainResults takes at most one outcome off the channel. It never blocks.
func (m *Model) drainResults() {
	out, ok := m.results.Poll()
	if !ok {
		return
	}
	if out.RequestID() != m.pendingID {
		m.logger.Warn("outcome for unexpected request", "request_id", out.RequestID(), "pending", m.pendingID)
	}

	m.inFlight = false
	m.pendingID = ""
	m.lastOutcome = out
	m.recent.Add(out)

	switch typed := out.(type) {
	case httpclient.Success:
		level := statusSuccess
		if typed.StatusCode >= 400 {
			level = statusError
		}
		m.setStatus(fmt.Sprintf("%d %s", typed.StatusCode, typed.Reason), level)
		m.logger.Debug("outcome drained", "request_id", typed.ID, "status", typed.StatusCode)
	case httpclient.Failure:
		m.setStatus("Error: "+typed.Message, statusError)
		m.logger.Debug("outcome drained", "request_id", typed.ID, "error", typed.Message)
	}

	m.response.GotoTop()
	m.refreshResponse()
}
