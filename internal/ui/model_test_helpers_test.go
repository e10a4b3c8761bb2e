package ui

import (
	"context"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/unkn0wn-root/curseclient/internal/httpclient"
	"github.com/unkn0wn-root/curseclient/internal/request"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func plain(s string) string {
	return ansi.Strip(s)
}

type stubExecutor struct {
	mu    sync.Mutex
	calls int
	out   httpclient.Outcome
	block chan struct{}
}

func (s *stubExecutor) Execute(_ context.Context, snap request.Snapshot) httpclient.Outcome {
	s.mu.Lock()
	s.calls++
	out := s.out
	block := s.block
	s.mu.Unlock()

	if block != nil {
		<-block
	}
	switch typed := out.(type) {
	case httpclient.Success:
		typed.ID = snap.ID()
		return typed
	case httpclient.Failure:
		typed.ID = snap.ID()
		return typed
	}
	return httpclient.Failure{ID: snap.ID(), Message: "no stub outcome"}
}

func (s *stubExecutor) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func (s *stubExecutor) setOutcome(out httpclient.Outcome) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.out = out
}

func newTestModel(t *testing.T, exec Executor) Model {
	t.Helper()
	m := New(Config{Executor: exec})
	m.writeClipboard = func(string) error { return nil }
	return update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return model
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, key := range keys {
		m = update(t, m, key)
	}
	return m
}

func key(kind tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: kind}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

// sendAndDrain presses send, waits for the execution unit to publish, then
// delivers one poll tick.
func sendAndDrain(t *testing.T, m Model) Model {
	t.Helper()
	m = press(t, m, key(tea.KeyF5))
	if !m.inFlight {
		t.Fatalf("expected request to be in flight, status %q", m.statusMessage.text)
	}
	waitFor(t, "published outcome", func() bool { return m.results.Len() == 1 })
	return update(t, m, pollMsg(time.Now()))
}
