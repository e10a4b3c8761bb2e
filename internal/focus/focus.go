// Package focus tracks which editable field receives keyboard input.
package focus

type Field int

const (
	Method Field = iota
	URL
	Headers
	Body
)

// Response is a display region only. It is never a valid focus target and is
// excluded from navigation bounds.
const Response Field = Body + 1

const (
	first = Method
	last  = Body
)

func (f Field) String() string {
	switch f {
	case Method:
		return "Method"
	case URL:
		return "URL"
	case Headers:
		return "Headers"
	case Body:
		return "Body"
	case Response:
		return "Response"
	default:
		return "unknown"
	}
}

// Label is the panel caption shown above the field.
func (f Field) Label() string {
	switch f {
	case Headers:
		return "Headers (JSON)"
	case Body:
		return "Body (JSON)"
	default:
		return f.String()
	}
}

func (f Field) Focusable() bool {
	return f >= first && f <= last
}

// Editable reports whether Activate opens an editor for the field.
func (f Field) Editable() bool {
	return f == URL || f == Headers || f == Body
}

// Next moves one field down, stopping at the last field.
func (f Field) Next() Field {
	return clamp(f + 1)
}

// Prev moves one field up, stopping at the first field.
func (f Field) Prev() Field {
	return clamp(f - 1)
}

func clamp(f Field) Field {
	if f < first {
		return first
	}
	if f > last {
		return last
	}
	return f
}

// Fields lists the focusable fields in navigation order.
func Fields() []Field {
	return []Field{Method, URL, Headers, Body}
}
