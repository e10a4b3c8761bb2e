package request

import (
	"strings"

	"github.com/google/uuid"

	"github.com/unkn0wn-root/curseclient/internal/errdef"
	"github.com/unkn0wn-root/curseclient/internal/jsonval"
)

// Draft is the request being edited. Only the controller mutates it, and
// every edit is validated before it is stored.
type Draft struct {
	Method  Method
	URL     string
	Headers Headers
	Body    string
}

func NewDraft() *Draft {
	return &Draft{Method: MethodGet}
}

func (d *Draft) CycleMethod(step int) Method {
	d.Method = d.Method.Cycle(step)
	return d.Method
}

// EditURL stores the trimmed URL. No validation happens here; malformed URLs
// surface when the request is executed.
func (d *Draft) EditURL(raw string) string {
	d.URL = strings.TrimSpace(raw)
	return d.URL
}

// EditHeaders replaces the headers wholesale. On error the previous headers
// are kept.
func (d *Draft) EditHeaders(raw string) (Headers, error) {
	parsed, err := ParseHeaders(raw)
	if err != nil {
		return d.Headers, err
	}
	d.Headers = parsed
	return d.Headers, nil
}

// EditBody stores the canonical pretty form of a JSON document. Blank input is
// an empty body. On error the previous body is kept.
func (d *Draft) EditBody(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		d.Body = ""
		return d.Body, nil
	}
	value, err := jsonval.ParseString(raw)
	if err != nil {
		return d.Body, errdef.Wrap(errdef.CodeValidation, err, "parse body")
	}
	d.Body = value.Pretty()
	return d.Body, nil
}

// Snapshot copies the draft into an immutable request with a fresh id.
func (d *Draft) Snapshot() Snapshot {
	return Snapshot{
		id:      uuid.NewString(),
		method:  d.Method,
		url:     d.URL,
		headers: d.Headers.Entries(),
		body:    d.Body,
	}
}

// Snapshot is the request as it was when sent. All accessors return copies.
type Snapshot struct {
	id      string
	method  Method
	url     string
	headers []Header
	body    string
}

func (s Snapshot) ID() string { return s.id }

func (s Snapshot) Method() Method { return s.method }

func (s Snapshot) URL() string { return s.url }

func (s Snapshot) Headers() Headers { return NewHeaders(s.headers...) }

func (s Snapshot) Body() string { return s.body }
