package jsonval

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Parse decodes exactly one JSON document. Trailing data after the value is
// an error.
func Parse(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	value, err := decodeValue(dec)
	if err != nil {
		return Value{}, err
	}
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			return Value{}, errors.New("unexpected trailing data after JSON value")
		}
		return Value{}, err
	}
	return value, nil
}

// ParseString is Parse for string input.
func ParseString(raw string) (Value, error) {
	return Parse([]byte(raw))
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return Value{}, errors.New("unexpected end of JSON input")
		}
		return Value{}, err
	}

	switch t := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case json.Number:
		return Number(t.String()), nil
	case string:
		return String(t), nil
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		}
		return Value{}, fmt.Errorf("unexpected delimiter %q", t)
	}
	return Value{}, fmt.Errorf("unexpected token %v", tok)
}

func decodeObject(dec *json.Decoder) (Value, error) {
	var members []Member
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return Value{}, fmt.Errorf("object key must be a string, got %v", keyTok)
		}
		value, err := decodeValue(dec)
		if err != nil {
			return Value{}, err
		}
		members = append(members, Member{Key: key, Value: value})
	}
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return Object(members...), nil
}

func decodeArray(dec *json.Decoder) (Value, error) {
	items := []Value{}
	for dec.More() {
		value, err := decodeValue(dec)
		if err != nil {
			return Value{}, err
		}
		items = append(items, value)
	}
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return Value{kind: KindArray, items: items}, nil
}

// Pretty renders the value with two space indentation, keeping member order.
func (v Value) Pretty() string {
	var buf strings.Builder
	writeValue(&buf, v, 0, true)
	return buf.String()
}

// Compact renders the value without insignificant whitespace. It is the wire
// form used for request bodies.
func (v Value) Compact() []byte {
	var buf strings.Builder
	writeValue(&buf, v, 0, false)
	return []byte(buf.String())
}

func writeValue(buf *strings.Builder, v Value, indent int, pretty bool) {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		if v.boolean {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case KindNumber:
		buf.WriteString(v.literal)
	case KindString:
		buf.WriteString(quote(v.literal))
	case KindArray:
		if len(v.items) == 0 {
			buf.WriteString("[]")
			return
		}
		buf.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			newline(buf, indent+1, pretty)
			writeValue(buf, item, indent+1, pretty)
		}
		newline(buf, indent, pretty)
		buf.WriteByte(']')
	case KindObject:
		if len(v.members) == 0 {
			buf.WriteString("{}")
			return
		}
		buf.WriteByte('{')
		for i, m := range v.members {
			if i > 0 {
				buf.WriteByte(',')
			}
			newline(buf, indent+1, pretty)
			buf.WriteString(quote(m.Key))
			buf.WriteByte(':')
			if pretty {
				buf.WriteByte(' ')
			}
			writeValue(buf, m.Value, indent+1, pretty)
		}
		newline(buf, indent, pretty)
		buf.WriteByte('}')
	}
}

func newline(buf *strings.Builder, indent int, pretty bool) {
	if !pretty {
		return
	}
	buf.WriteByte('\n')
	buf.WriteString(strings.Repeat("  ", indent))
}

func quote(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return `""`
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
