package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"
)

// SyntaxError reports a payload that cannot be decoded into a document.
type SyntaxError struct {
	// Path is the JSON pointer of the node being decoded.
	Path string
	Msg  string
	Err  error
}

func (e *SyntaxError) Error() string {
	var b strings.Builder
	b.WriteString("invalid document")
	if e.Path != "" {
		b.WriteString(" at ")
		b.WriteString(e.Path)
	}
	b.WriteString(": ")
	b.WriteString(e.Msg)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// Parse decodes a JSON payload into a document.
func Parse(b []byte) (Value, error) {
	return ParseReader(bytes.NewReader(b))
}

// ParseReader decodes a single JSON value from r into a document.
// Duplicate object keys and trailing data are rejected.
func ParseReader(r io.Reader) (Value, error) {
	d := json.NewDecoder(r)
	d.UseNumber()

	p := parser{d: d}
	v, err := p.value()
	if err != nil {
		return Value{}, err
	}

	t, err := d.Token()
	if !errors.Is(err, io.EOF) {
		if err != nil {
			return Value{}, &SyntaxError{Msg: "reading trailing data", Err: err}
		}
		return Value{}, &SyntaxError{Msg: fmt.Sprintf("unexpected trailing token %v", t)}
	}
	return v, nil
}

type parser struct {
	d    *json.Decoder
	path []string
}

func (p *parser) pointer() string {
	if len(p.path) == 0 {
		return ""
	}
	return "/" + strings.Join(p.path, "/")
}

func (p *parser) errorf(format string, args ...any) error {
	return &SyntaxError{Path: p.pointer(), Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) token() (json.Token, error) {
	t, err := p.d.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &SyntaxError{Path: p.pointer(), Msg: "unexpected end of input"}
		}
		return nil, &SyntaxError{Path: p.pointer(), Msg: "malformed json", Err: err}
	}
	return t, nil
}

func (p *parser) value() (Value, error) {
	t, err := p.token()
	if err != nil {
		return Value{}, err
	}
	return p.valueFrom(t)
}

func (p *parser) valueFrom(t json.Token) (Value, error) {
	switch t := t.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case json.Number:
		return NumberValue(Number(t)), nil
	case float64:
		return NumberValue(Number(fmt.Sprint(t))), nil
	case json.Delim:
		switch t {
		case '{':
			return p.object()
		case '[':
			return p.array()
		}
	}
	return Value{}, p.errorf("unexpected token %v", t)
}

func (p *parser) object() (Value, error) {
	var members []Member
	seen := map[string]struct{}{}

	for {
		t, err := p.token()
		if err != nil {
			return Value{}, err
		}
		if t == json.Delim('}') {
			break
		}
		key, ok := t.(string)
		if !ok {
			return Value{}, p.errorf("expected object key, got %v", t)
		}
		if _, dup := seen[key]; dup {
			return Value{}, p.errorf("duplicate key %q", key)
		}
		seen[key] = struct{}{}

		p.path = append(p.path, escapePointer(key))
		v, err := p.value()
		if err != nil {
			return Value{}, err
		}
		p.path = p.path[:len(p.path)-1]

		members = append(members, Member{Key: key, Value: v})
	}

	return Value{kind: KindObject, obj: newObject(members)}, nil
}

func (p *parser) array() (Value, error) {
	var elements []Value

	for i := 0; ; i++ {
		t, err := p.token()
		if err != nil {
			return Value{}, err
		}
		if t == json.Delim(']') {
			break
		}

		p.path = append(p.path, fmt.Sprint(i))
		v, err := p.valueFrom(t)
		if err != nil {
			return Value{}, err
		}
		p.path = p.path[:len(p.path)-1]

		elements = append(elements, v)
	}

	return Value{kind: KindArray, arr: elements}, nil
}

func escapePointer(key string) string {
	return strings.NewReplacer("~", "~0", "/", "~1").Replace(key)
}

// MarshalJSON encodes v as compact JSON. Object members keep their
// document order and number literals are written verbatim.
func (v Value) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	w := writer{buf: &b}
	w.enc = json.NewEncoder(&b)
	w.enc.SetEscapeHTML(false)

	if err := w.write(v); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// UnmarshalJSON replaces v with the document decoded from b.
func (v *Value) UnmarshalJSON(b []byte) error {
	parsed, err := Parse(b)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// String returns the compact JSON encoding of v.
func (v Value) String() string {
	b, err := v.MarshalJSON()
	if err != nil {
		return "null"
	}
	return string(b)
}

type writer struct {
	buf *bytes.Buffer
	enc *json.Encoder
}

func (w writer) write(v Value) error {
	switch v.kind {
	case KindNull:
		w.buf.WriteString("null")
	case KindBool:
		if v.b {
			w.buf.WriteString("true")
		} else {
			w.buf.WriteString("false")
		}
	case KindNumber:
		b, err := Number(v.s).MarshalJSON()
		if err != nil {
			return err
		}
		w.buf.Write(b)
	case KindString:
		return w.string(v.s)
	case KindArray:
		w.buf.WriteByte('[')
		for i, e := range v.arr {
			if i > 0 {
				w.buf.WriteByte(',')
			}
			if err := w.write(e); err != nil {
				return err
			}
		}
		w.buf.WriteByte(']')
	case KindObject:
		w.buf.WriteByte('{')
		for i, m := range v.obj.members {
			if i > 0 {
				w.buf.WriteByte(',')
			}
			if err := w.string(m.Key); err != nil {
				return err
			}
			w.buf.WriteByte(':')
			if err := w.write(m.Value); err != nil {
				return err
			}
		}
		w.buf.WriteByte('}')
	}
	return nil
}

func (w writer) string(s string) error {
	if err := w.enc.Encode(s); err != nil {
		return err
	}
	// Encode terminates every value with a newline.
	w.buf.Truncate(w.buf.Len() - 1)
	return nil
}
