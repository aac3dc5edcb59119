package view

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"

	"github.com/damedic/fhir-model-go/document"
)

// Decode parses a JSON payload, wraps it and validates the result.
func Decode[T Element](b []byte, wrap func(document.Value) T, opts ...ValidateOption) (T, error) {
	var zero T
	n, err := document.Parse(b)
	if err != nil {
		return zero, err
	}
	return check(n, wrap, opts)
}

// DecodeFormat is like Decode for any supported payload format.
func DecodeFormat[T Element](r io.Reader, format document.Format, wrap func(document.Value) T, opts ...ValidateOption) (T, error) {
	var zero T
	n, err := document.Decode(r, format)
	if err != nil {
		return zero, err
	}
	return check(n, wrap, opts)
}

func check[T Element](n document.Value, wrap func(document.Value) T, opts []ValidateOption) (T, error) {
	e := wrap(n)
	if err := e.Validate(opts...); err != nil {
		var zero T
		return zero, fmt.Errorf("decode %T: %w", e, err)
	}
	return e, nil
}

// ToStruct converts a view into its struct representation.
func ToStruct[S any](e Element) (S, error) {
	var s S
	b, err := e.Node().MarshalJSON()
	if err != nil {
		return s, err
	}
	if err := json.Unmarshal(b, &s); err != nil {
		return s, fmt.Errorf("convert %T to %T: %w", e, s, err)
	}
	return s, nil
}

// FromStruct converts a struct representation into a view over an
// equivalent document.
func FromStruct[T any](s any, wrap func(document.Value) T) (T, error) {
	var zero T
	b, err := json.Marshal(s)
	if err != nil {
		return zero, fmt.Errorf("convert %T: %w", s, err)
	}
	n, err := document.Parse(b)
	if err != nil {
		return zero, err
	}
	return wrap(n), nil
}
