package request

import (
	"strings"

	"github.com/unkn0wn-root/curseclient/internal/errdef"
	"github.com/unkn0wn-root/curseclient/internal/jsonval"
)

type Header struct {
	Name  string
	Value string
}

// Headers is an ordered name to value mapping. Names are unique.
type Headers struct {
	entries []Header
}

func NewHeaders(entries ...Header) Headers {
	var h Headers
	for _, e := range entries {
		h = h.with(e.Name, e.Value)
	}
	return h
}

func (h Headers) with(name, value string) Headers {
	out := Headers{entries: make([]Header, 0, len(h.entries)+1)}
	replaced := false
	for _, e := range h.entries {
		if e.Name == name {
			out.entries = append(out.entries, Header{Name: name, Value: value})
			replaced = true
			continue
		}
		out.entries = append(out.entries, e)
	}
	if !replaced {
		out.entries = append(out.entries, Header{Name: name, Value: value})
	}
	return out
}

func (h Headers) Len() int { return len(h.entries) }

func (h Headers) Entries() []Header {
	out := make([]Header, len(h.entries))
	copy(out, h.entries)
	return out
}

// Get matches names case-insensitively, the way HTTP treats them.
func (h Headers) Get(name string) (string, bool) {
	for _, e := range h.entries {
		if strings.EqualFold(e.Name, name) {
			return e.Value, true
		}
	}
	return "", false
}

// JSON returns the headers as a JSON object of strings.
func (h Headers) JSON() jsonval.Value {
	members := make([]jsonval.Member, 0, len(h.entries))
	for _, e := range h.entries {
		members = append(members, jsonval.Member{Key: e.Name, Value: jsonval.String(e.Value)})
	}
	return jsonval.Object(members...)
}

// Pretty is the editable text form. Empty headers render as "{}".
func (h Headers) Pretty() string {
	if len(h.entries) == 0 {
		return "{}"
	}
	return h.JSON().Pretty()
}

// ParseHeaders parses a JSON object into headers. Blank input is not a JSON
// object and is rejected; "{}" clears the headers. String values are kept verbatim, numbers and booleans keep their
// JSON literal text; null, arrays and objects are rejected.
func ParseHeaders(raw string) (Headers, error) {
	value, err := jsonval.ParseString(raw)
	if err != nil {
		return Headers{}, errdef.Wrap(errdef.CodeValidation, err, "parse headers")
	}
	if value.Kind() != jsonval.KindObject {
		return Headers{}, errdef.New(errdef.CodeValidation, "headers must be a JSON object, got %s", value.Kind())
	}

	var out Headers
	for _, m := range value.Members() {
		name := strings.TrimSpace(m.Key)
		if name == "" {
			return Headers{}, errdef.New(errdef.CodeValidation, "header name cannot be empty")
		}
		switch m.Value.Kind() {
		case jsonval.KindString, jsonval.KindNumber:
			out = out.with(name, m.Value.Literal())
		case jsonval.KindBool:
			out = out.with(name, string(m.Value.Compact()))
		default:
			return Headers{}, errdef.New(errdef.CodeValidation, "header %q must be a string, got %s", name, m.Value.Kind())
		}
	}
	return out, nil
}
