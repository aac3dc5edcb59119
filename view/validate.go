package view

import (
	"github.com/damedic/fhir-model-go/document"
)

// ValidateOption tunes Validate.
type ValidateOption func(*Options)

// Options is the resolved set of validate options. Checks receive it and
// hand Forward() to nested elements.
type Options struct {
	strictChoice bool
	raw          []ValidateOption
}

// StrictChoice makes Validate reject choice fields with more than one
// alternative present. Without it the first declared alternative wins.
func StrictChoice() ValidateOption {
	return func(o *Options) { o.strictChoice = true }
}

func newOptions(opts []ValidateOption) Options {
	o := Options{raw: opts}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Forward returns the options to pass to nested Validate calls.
func (o Options) Forward() []ValidateOption { return o.raw }

// Check is a single validation step.
type Check func(o Options) error

// ValidateObject requires n to be an object and runs checks in order,
// returning the first error.
func ValidateObject(n document.Value, opts []ValidateOption, checks ...Check) error {
	if n.Kind() != document.KindObject {
		return &FieldError{Expected: ShapeObject, Found: n.Kind()}
	}
	o := newOptions(opts)
	for _, c := range checks {
		if err := c(o); err != nil {
			return err
		}
	}
	return nil
}

// Field checks a singular accessor.
func Field[T any](get func() (T, bool, error)) Check {
	return func(Options) error {
		_, _, err := get()
		return err
	}
}

// List checks a repeated accessor.
func List[T any](get func() ([]T, error)) Check {
	return func(Options) error {
		_, err := get()
		return err
	}
}

// Nested checks a singular element accessor and then the element itself.
func Nested[T Element](key string, get func() (T, bool, error)) Check {
	return func(o Options) error {
		e, ok, err := get()
		if err != nil || !ok {
			return err
		}
		return PrefixPath(e.Validate(o.Forward()...), key)
	}
}

// NestedList checks a repeated element accessor and then every element.
func NestedList[T Element](key string, get func() ([]T, error)) Check {
	return func(o Options) error {
		list, err := get()
		if err != nil {
			return err
		}
		for i, e := range list {
			if err := e.Validate(o.Forward()...); err != nil {
				return PrefixPath(err, indexSegment(key, i))
			}
		}
		return nil
	}
}

// NestedSparseList is NestedList for "_" siblings of repeated primitives.
func NestedSparseList[T Element](key string, get func() ([]*T, error)) Check {
	return func(o Options) error {
		list, err := get()
		if err != nil {
			return err
		}
		for i, e := range list {
			if e == nil {
				continue
			}
			if err := (*e).Validate(o.Forward()...); err != nil {
				return PrefixPath(err, indexSegment(key, i))
			}
		}
		return nil
	}
}

// Exclusive reports a conflict when more than one of keys is present in
// n. It only applies under StrictChoice.
func Exclusive(n document.Value, field string, keys ...string) Check {
	return func(o Options) error {
		if !o.strictChoice {
			return nil
		}
		if present := Present(n, keys...); len(present) > 1 {
			return &ChoiceConflictError{Path: field, Keys: present}
		}
		return nil
	}
}

// ResourceType requires n to carry resourceType want.
func ResourceType(n document.Value, want string) Check {
	return func(Options) error {
		v, ok := Lookup(n, "resourceType")
		if !ok {
			return &ResourceTypeError{Expected: want}
		}
		got, ok := v.AsString()
		if !ok {
			return &FieldError{Path: "resourceType", Expected: ShapeString, Found: v.Kind()}
		}
		if got != want {
			return &ResourceTypeError{Expected: want, Found: got}
		}
		return nil
	}
}
