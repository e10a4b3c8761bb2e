package request

import "strings"

type Method string

const (
	MethodGet    Method = "GET"
	MethodPost   Method = "POST"
	MethodPut    Method = "PUT"
	MethodDelete Method = "DELETE"
	MethodPatch  Method = "PATCH"
)

var methods = []Method{MethodGet, MethodPost, MethodPut, MethodDelete, MethodPatch}

// Methods returns the fixed cycling order.
func Methods() []Method {
	out := make([]Method, len(methods))
	copy(out, methods)
	return out
}

// ParseMethod accepts any casing of a supported method.
func ParseMethod(raw string) (Method, bool) {
	candidate := Method(strings.ToUpper(strings.TrimSpace(raw)))
	for _, m := range methods {
		if m == candidate {
			return m, true
		}
	}
	return "", false
}

func (m Method) index() int {
	for i, candidate := range methods {
		if candidate == m {
			return i
		}
	}
	return 0
}

// Cycle moves through the method list with wraparound in both directions.
func (m Method) Cycle(step int) Method {
	n := len(methods)
	idx := ((m.index()+step)%n + n) % n
	return methods[idx]
}

func (m Method) Next() Method { return m.Cycle(1) }

func (m Method) Prev() Method { return m.Cycle(-1) }
