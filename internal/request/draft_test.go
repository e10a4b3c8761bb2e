package request

import (
	"testing"

	"github.com/unkn0wn-root/curseclient/internal/errdef"
)

func TestMethodCycleIsOrderFive(t *testing.T) {
	for _, start := range Methods() {
		m := start
		for i := 0; i < 5; i++ {
			m = m.Next()
		}
		if m != start {
			t.Fatalf("expected five right cycles to return to %s, got %s", start, m)
		}
		if start.Next().Prev() != start || start.Prev().Next() != start {
			t.Fatalf("expected left cycle to invert right cycle for %s", start)
		}
	}
	if MethodGet.Prev() != MethodPatch {
		t.Fatalf("expected GET to wrap left to PATCH, got %s", MethodGet.Prev())
	}
	if MethodPatch.Next() != MethodGet {
		t.Fatalf("expected PATCH to wrap right to GET, got %s", MethodPatch.Next())
	}
}

func TestParseMethod(t *testing.T) {
	if m, ok := ParseMethod(" patch "); !ok || m != MethodPatch {
		t.Fatalf("expected PATCH, got %q (ok=%v)", m, ok)
	}
	if _, ok := ParseMethod("TRACE"); ok {
		t.Fatalf("expected TRACE to be unsupported")
	}
}

func TestEditURLTrims(t *testing.T) {
	d := NewDraft()
	if got := d.EditURL("  http://x/ok \n"); got != "http://x/ok" {
		t.Fatalf("unexpected url %q", got)
	}
	if got := d.EditURL("not a url"); got != "not a url" {
		t.Fatalf("expected malformed url to be accepted verbatim, got %q", got)
	}
}

func TestEditHeadersRejectsInvalidJSON(t *testing.T) {
	d := NewDraft()
	if _, err := d.EditHeaders(`{"a":"b"}`); err != nil {
		t.Fatalf("edit headers: %v", err)
	}
	_, err := d.EditHeaders("not json")
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !errdef.Is(err, errdef.CodeValidation) {
		t.Fatalf("expected validation code, got %s", errdef.CodeOf(err))
	}
	if v, ok := d.Headers.Get("a"); !ok || v != "b" || d.Headers.Len() != 1 {
		t.Fatalf("expected previous headers to be retained, got %+v", d.Headers.Entries())
	}
}

func TestEditHeadersReplacesWholesale(t *testing.T) {
	d := NewDraft()
	if _, err := d.EditHeaders(`{"a":"b","c":"d"}`); err != nil {
		t.Fatalf("edit headers: %v", err)
	}
	if _, err := d.EditHeaders(`{"x":"y"}`); err != nil {
		t.Fatalf("edit headers: %v", err)
	}
	entries := d.Headers.Entries()
	if len(entries) != 1 || entries[0] != (Header{Name: "x", Value: "y"}) {
		t.Fatalf("expected headers to be replaced, got %+v", entries)
	}
}

func TestEditHeadersValueKinds(t *testing.T) {
	d := NewDraft()
	if _, err := d.EditHeaders(`{"X-Retry":3,"X-Flag":true}`); err != nil {
		t.Fatalf("edit headers: %v", err)
	}
	if v, _ := d.Headers.Get("x-retry"); v != "3" {
		t.Fatalf("expected numeric literal, got %q", v)
	}
	if v, _ := d.Headers.Get("X-Flag"); v != "true" {
		t.Fatalf("expected bool literal, got %q", v)
	}
	for _, raw := range []string{`{"a":null}`, `{"a":[1]}`, `{"a":{"b":"c"}}`, `["a"]`, `"text"`} {
		if _, err := d.EditHeaders(raw); err == nil {
			t.Fatalf("expected %s to be rejected", raw)
		}
	}
	if d.Headers.Len() != 2 {
		t.Fatalf("expected rejected edits to keep headers, got %+v", d.Headers.Entries())
	}
}

func TestEditHeadersBlankIsRejected(t *testing.T) {
	d := NewDraft()
	if _, err := d.EditHeaders(`{"a":"b"}`); err != nil {
		t.Fatalf("seed headers: %v", err)
	}
	for _, raw := range []string{"", "   ", "\n\t"} {
		headers, err := d.EditHeaders(raw)
		if err == nil {
			t.Fatalf("expected blank input %q to be rejected", raw)
		}
		if !errdef.Is(err, errdef.CodeValidation) {
			t.Fatalf("expected validation code, got %s", errdef.CodeOf(err))
		}
		if got, ok := headers.Get("a"); !ok || got != "b" {
			t.Fatalf("expected prior headers kept, got %+v", headers.Entries())
		}
	}
	if got, ok := d.Headers.Get("a"); !ok || got != "b" {
		t.Fatalf("draft lost its headers: %+v", d.Headers.Entries())
	}
}

func TestEditHeadersEmptyObjectClears(t *testing.T) {
	d := NewDraft()
	_, _ = d.EditHeaders(`{"a":"b"}`)
	if _, err := d.EditHeaders("{}"); err != nil {
		t.Fatalf("expected {} to be accepted: %v", err)
	}
	if d.Headers.Len() != 0 {
		t.Fatalf("expected headers cleared")
	}
	if d.Headers.Pretty() != "{}" {
		t.Fatalf("expected {} as editor text for empty headers, got %q", d.Headers.Pretty())
	}
}

func TestEditBody(t *testing.T) {
	d := NewDraft()
	if got, err := d.EditBody(""); err != nil || got != "" {
		t.Fatalf("expected empty body without error, got %q (%v)", got, err)
	}
	got, err := d.EditBody(`{"x":1}`)
	if err != nil {
		t.Fatalf("edit body: %v", err)
	}
	if got != "{\n  \"x\": 1\n}" {
		t.Fatalf("expected canonical pretty body, got %q", got)
	}
	if _, err := d.EditBody("{bad"); err == nil {
		t.Fatalf("expected validation error")
	} else if !errdef.Is(err, errdef.CodeValidation) {
		t.Fatalf("expected validation code, got %s", errdef.CodeOf(err))
	}
	if d.Body != "{\n  \"x\": 1\n}" {
		t.Fatalf("expected previous body retained, got %q", d.Body)
	}
	if got, err := d.EditBody(" [1, 2] "); err != nil || got != "[\n  1,\n  2\n]" {
		t.Fatalf("expected array body, got %q (%v)", got, err)
	}
	if got, err := d.EditBody("42"); err != nil || got != "42" {
		t.Fatalf("expected scalar body, got %q (%v)", got, err)
	}
}

func TestSnapshotIsIndependentOfDraft(t *testing.T) {
	d := NewDraft()
	d.CycleMethod(1)
	d.EditURL("http://x/ok")
	_, _ = d.EditHeaders(`{"a":"b"}`)
	_, _ = d.EditBody(`{"x":1}`)

	snap := d.Snapshot()
	if snap.ID() == "" {
		t.Fatalf("expected snapshot id")
	}
	if other := d.Snapshot(); other.ID() == snap.ID() {
		t.Fatalf("expected distinct ids per snapshot")
	}

	d.CycleMethod(1)
	d.EditURL("http://y/changed")
	_, _ = d.EditHeaders(`{"z":"w"}`)
	_, _ = d.EditBody("")

	if snap.Method() != MethodPost || snap.URL() != "http://x/ok" || snap.Body() != "{\n  \"x\": 1\n}" {
		t.Fatalf("snapshot changed with draft: %s %s %q", snap.Method(), snap.URL(), snap.Body())
	}
	if v, ok := snap.Headers().Get("a"); !ok || v != "b" || snap.Headers().Len() != 1 {
		t.Fatalf("snapshot headers changed: %+v", snap.Headers().Entries())
	}
}
