package ui

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/unkn0wn-root/curseclient/internal/httpclient"
	"github.com/unkn0wn-root/curseclient/internal/jsonval"
)

func TestSendRejectsEmptyURL(t *testing.T) {
	exec := &stubExecutor{}
	m := newTestModel(t, exec)
	m = press(t, m, key(tea.KeyF5))
	if m.inFlight {
		t.Fatalf("request started with empty URL")
	}
	if m.statusMessage.text != "URL cannot be empty" || m.statusMessage.level != statusError {
		t.Fatalf("unexpected status %+v", m.statusMessage)
	}
	if m.results.Len() != 0 {
		t.Fatalf("unexpected outcome published")
	}
}

func TestSendRejectedWhileInFlight(t *testing.T) {
	exec := &stubExecutor{
		out:   httpclient.Failure{Message: "late"},
		block: make(chan struct{}),
	}
	m := newTestModel(t, exec)
	m.draft.EditURL("http://x/ok")

	m = press(t, m, key(tea.KeyF5))
	if m.statusMessage.text != "Sending request..." {
		t.Fatalf("unexpected status %q", m.statusMessage.text)
	}
	waitFor(t, "execution start", func() bool { return exec.callCount() == 1 })

	m = press(t, m, key(tea.KeyF5))
	if m.statusMessage.text != "Request already in progress, please wait..." {
		t.Fatalf("unexpected status %q", m.statusMessage.text)
	}
	if m.statusMessage.level != statusWarn {
		t.Fatalf("expected warn level")
	}
	if !strings.Contains(m.View(), "Loading...") {
		t.Fatalf("expected loading indicator while in flight")
	}

	close(exec.block)
	waitFor(t, "published outcome", func() bool { return m.results.Len() == 1 })
	m = update(t, m, pollMsg(time.Now()))
	if m.inFlight {
		t.Fatalf("expected in-flight flag cleared")
	}
	if exec.callCount() != 1 {
		t.Fatalf("expected one execution, got %d", exec.callCount())
	}
}

func TestFailureOutcomeUpdatesStatus(t *testing.T) {
	exec := &stubExecutor{out: httpclient.Failure{Message: "boom"}}
	m := newTestModel(t, exec)
	m.draft.EditURL("http://x/ok")

	m = sendAndDrain(t, m)
	if m.inFlight {
		t.Fatalf("expected in-flight flag cleared")
	}
	failure, ok := m.lastOutcome.(httpclient.Failure)
	if !ok || failure.Message != "boom" {
		t.Fatalf("unexpected outcome %#v", m.lastOutcome)
	}
	if m.statusMessage.text != "Error: boom" || m.statusMessage.level != statusError {
		t.Fatalf("unexpected status %+v", m.statusMessage)
	}
	if m.recent.Len() != 1 {
		t.Fatalf("expected outcome recorded in recent list")
	}
}

func TestSuccessStatusLevels(t *testing.T) {
	cases := []struct {
		code   int
		reason string
		want   statusLevel
	}{
		{200, "OK", statusSuccess},
		{399, "Redirect", statusSuccess},
		{404, "Not Found", statusError},
		{500, "Internal Server Error", statusError},
	}
	for _, tc := range cases {
		exec := &stubExecutor{out: httpclient.Success{
			StatusCode: tc.code,
			Reason:     tc.reason,
			Headers:    map[string]string{},
			Body:       httpclient.TextBody("x"),
		}}
		m := newTestModel(t, exec)
		m.draft.EditURL("http://x/ok")
		m = sendAndDrain(t, m)

		wantText := fmt.Sprintf("%d %s", tc.code, tc.reason)
		if m.statusMessage.text != wantText {
			t.Fatalf("code %d: expected status %q, got %q", tc.code, wantText, m.statusMessage.text)
		}
		if m.statusMessage.level != tc.want {
			t.Fatalf("code %d: expected level %v, got %v", tc.code, tc.want, m.statusMessage.level)
		}
	}
}

func TestPollWithoutOutcomeKeepsState(t *testing.T) {
	m := newTestModel(t, &stubExecutor{})
	next, cmd := m.Update(pollMsg(time.Now()))
	if cmd == nil {
		t.Fatalf("expected the poll tick to be rescheduled")
	}
	if next.(Model).lastOutcome != nil {
		t.Fatalf("poll with empty channel produced an outcome")
	}
}

func TestResponseTabs(t *testing.T) {
	first, err := jsonval.ParseString(`{"n":1}`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	second, err := jsonval.ParseString(`{"n":2}`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	exec := &stubExecutor{out: httpclient.Success{
		StatusCode: 200,
		Reason:     "OK",
		Headers:    map[string]string{"Content-Type": "application/json", "X-A": "a, b"},
		Body:       httpclient.JSONBody(first),
	}}
	m := newTestModel(t, exec)
	m.draft.EditURL("http://x/ok")
	m = sendAndDrain(t, m)

	body := plain(m.responseContent(0))
	if !strings.HasPrefix(body, "200 OK") || !strings.Contains(body, `"n": 1`) {
		t.Fatalf("unexpected body tab %q", body)
	}

	m = press(t, m, key(tea.KeyTab))
	if m.responseTab != tabHeaders {
		t.Fatalf("expected headers tab, got %s", m.responseTab)
	}
	headers := plain(m.responseContent(0))
	if headers != "Content-Type: application/json\nX-A: a, b" {
		t.Fatalf("unexpected headers tab %q", headers)
	}

	m = press(t, m, key(tea.KeyTab))
	if got := plain(m.responseContent(0)); got != noDiffMessage {
		t.Fatalf("expected %q, got %q", noDiffMessage, got)
	}

	exec.setOutcome(httpclient.Success{
		StatusCode: 200,
		Reason:     "OK",
		Body:       httpclient.JSONBody(second),
	})
	m = sendAndDrain(t, m)
	diff := plain(m.responseContent(0))
	if !strings.Contains(diff, `-  "n": 1`) || !strings.Contains(diff, `+  "n": 2`) {
		t.Fatalf("unexpected diff %q", diff)
	}

	m = sendAndDrain(t, m)
	if got := plain(m.responseContent(0)); got != identicalMessage {
		t.Fatalf("expected %q, got %q", identicalMessage, got)
	}

	m = press(t, m, key(tea.KeyTab))
	if m.responseTab != tabBody {
		t.Fatalf("expected tabs to wrap to body")
	}
}
