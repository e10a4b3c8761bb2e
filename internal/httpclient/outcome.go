package httpclient

import (
	"time"

	"github.com/unkn0wn-root/curseclient/internal/jsonval"
)

// Outcome is the single result of one execution: either Success or Failure.
type Outcome interface {
	RequestID() string
	outcome()
}

type Success struct {
	ID         string
	Timestamp  time.Time
	StatusCode int
	Reason     string
	// Headers maps each response header to its values joined by ", ".
	Headers  map[string]string
	Body     Body
	Duration time.Duration
}

type Failure struct {
	ID      string
	Message string
}

func (s Success) RequestID() string { return s.ID }
func (f Failure) RequestID() string { return f.ID }

func (Success) outcome() {}
func (Failure) outcome() {}

// Body is a decoded response body: a JSON value when the server said
// application/json, raw text otherwise.
type Body struct {
	json   jsonval.Value
	text   string
	isJSON bool
}

func JSONBody(v jsonval.Value) Body { return Body{json: v, isJSON: true} }

func TextBody(s string) Body { return Body{text: s} }

func (b Body) IsJSON() bool { return b.isJSON }

func (b Body) JSON() jsonval.Value { return b.json }

// String renders JSON bodies in their pretty form.
func (b Body) String() string {
	if b.isJSON {
		return b.json.Pretty()
	}
	return b.text
}
