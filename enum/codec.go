// Package enum maps closed sets of FHIR code literals to in-memory tags.
package enum

import (
	"errors"
	"fmt"
)

// ErrUnknownCode is returned, possibly wrapped, for literals outside a
// value set.
var ErrUnknownCode = errors.New("unknown code")

// Tag is the constraint on in-memory code tags. Tags are small integers
// so that undeclared values can be formatted without calling back into a
// String method defined on the tag type itself.
type Tag interface {
	~uint8 | ~uint16 | ~uint32 | ~int
}

// Entry binds a tag to its canonical code literal.
type Entry[T Tag] struct {
	Tag  T
	Code string
}

// Codec translates between the code literals of one value set and
// their tags. It is immutable after construction and safe for
// concurrent use.
type Codec[T Tag] struct {
	valueSet string
	entries  []Entry[T]
	byTag    map[T]string
	byCode   map[string]T
}

// NewCodec builds a codec for valueSet. Each tag and each code must
// appear exactly once; a malformed table panics.
func NewCodec[T Tag](valueSet string, entries ...Entry[T]) *Codec[T] {
	c := &Codec[T]{
		valueSet: valueSet,
		entries:  entries,
		byTag:    make(map[T]string, len(entries)),
		byCode:   make(map[string]T, len(entries)),
	}
	for _, e := range entries {
		if _, dup := c.byTag[e.Tag]; dup {
			panic(fmt.Sprintf("enum: value set %s declares tag %d twice", valueSet, int64(e.Tag)))
		}
		if _, dup := c.byCode[e.Code]; dup {
			panic(fmt.Sprintf("enum: value set %s declares code %q twice", valueSet, e.Code))
		}
		c.byTag[e.Tag] = e.Code
		c.byCode[e.Code] = e.Tag
	}
	return c
}

// ValueSet returns the name of the value set.
func (c *Codec[T]) ValueSet() string { return c.valueSet }

// Parse returns the tag for code, or false if code is not part of the
// value set. Matching is exact.
func (c *Codec[T]) Parse(code string) (T, bool) {
	t, ok := c.byCode[code]
	return t, ok
}

// Code returns the canonical literal of t, or false for a tag the
// value set does not declare.
func (c *Codec[T]) Code(t T) (string, bool) {
	code, ok := c.byTag[t]
	return code, ok
}

// Decode is like Parse but returns an error wrapping ErrUnknownCode.
func (c *Codec[T]) Decode(code string) (T, error) {
	t, ok := c.byCode[code]
	if !ok {
		return t, fmt.Errorf("%w %q for value set %s", ErrUnknownCode, code, c.valueSet)
	}
	return t, nil
}

// String returns the literal of t, or a placeholder naming the value set
// for undeclared tags.
func (c *Codec[T]) String(t T) string {
	if code, ok := c.byTag[t]; ok {
		return code
	}
	return c.undeclared(t)
}

func (c *Codec[T]) undeclared(t T) string {
	return fmt.Sprintf("%s(%d)", c.valueSet, int64(t))
}

// MarshalText encodes t for the TextMarshaler of a generated code type.
func (c *Codec[T]) MarshalText(t T) ([]byte, error) {
	code, ok := c.byTag[t]
	if !ok {
		return nil, fmt.Errorf("%s is not a member of value set %s", c.undeclared(t), c.valueSet)
	}
	return []byte(code), nil
}

// MustCode is like Code but panics for undeclared tags.
func (c *Codec[T]) MustCode(t T) string {
	code, ok := c.byTag[t]
	if !ok {
		panic(fmt.Sprintf("enum: %s is not a member of value set %s", c.undeclared(t), c.valueSet))
	}
	return code
}

// Values returns all tags in declaration order.
func (c *Codec[T]) Values() []T {
	values := make([]T, len(c.entries))
	for i, e := range c.entries {
		values[i] = e.Tag
	}
	return values
}

// Codes returns all code literals in declaration order.
func (c *Codec[T]) Codes() []string {
	codes := make([]string, len(c.entries))
	for i, e := range c.entries {
		codes[i] = e.Code
	}
	return codes
}
