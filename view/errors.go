package view

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/damedic/fhir-model-go/document"
	"github.com/damedic/fhir-model-go/enum"
)

// Shape names the declared shape of a field.
type Shape string

const (
	ShapeString      Shape = "string"
	ShapeBoolean     Shape = "boolean"
	ShapeInteger     Shape = "integer"
	ShapeUnsignedInt Shape = "unsignedInt"
	ShapePositiveInt Shape = "positiveInt"
	ShapeDecimal     Shape = "decimal"
	ShapeCode        Shape = "code"
	ShapeObject      Shape = "object"
	ShapeArray       Shape = "array"
)

// FieldError reports a present field whose encoded value does not have
// the declared shape.
type FieldError struct {
	// Path is the element path relative to the validated root,
	// e.g. "component[1].valueQuantity.value".
	Path     string
	Expected Shape
	Found    document.Kind
	// Detail is set when the kind matched but the value did not,
	// e.g. a fractional integer.
	Detail string
}

func (e *FieldError) Error() string {
	msg := fmt.Sprintf("field %s: expected %s, found %s", displayPath(e.Path), e.Expected, e.Found)
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

// UnknownCodeError reports a coded field holding a literal outside its
// value set.
type UnknownCodeError struct {
	Path     string
	ValueSet string
	Code     string
}

func (e *UnknownCodeError) Error() string {
	return fmt.Sprintf("field %s: unknown code %q for value set %s", displayPath(e.Path), e.Code, e.ValueSet)
}

// Is matches enum.ErrUnknownCode.
func (e *UnknownCodeError) Is(target error) bool { return target == enum.ErrUnknownCode }

// ChoiceConflictError reports more than one alternative of a choice field
// being present. Views only report it when validating with StrictChoice;
// decoding into release structs always does.
type ChoiceConflictError struct {
	Path string
	Keys []string
}

func (e *ChoiceConflictError) Error() string {
	return fmt.Sprintf("field %s: only one alternative may be present, found %s", displayPath(e.Path), strings.Join(e.Keys, ", "))
}

// UnknownFieldError reports a member that the declared type of its
// enclosing element does not have.
type UnknownFieldError struct {
	Path string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("field %s: not part of the declared type", displayPath(e.Path))
}

// MissingFieldError reports an absent or null field with a minimum
// cardinality of one.
type MissingFieldError struct {
	Path string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("field %s: required field missing", displayPath(e.Path))
}

// ResourceTypeError reports a resource document whose resourceType does
// not match the view it is read through.
type ResourceTypeError struct {
	Path     string
	Expected string
	Found    string
}

func (e *ResourceTypeError) Error() string {
	found := e.Found
	if found == "" {
		found = "none"
	}
	if e.Path == "" {
		return fmt.Sprintf("resourceType: expected %s, found %s", e.Expected, found)
	}
	return fmt.Sprintf("field %s.resourceType: expected %s, found %s", e.Path, e.Expected, found)
}

// Path returns the element path an error refers to, if it is one of the
// errors produced by this package.
func Path(err error) (string, bool) {
	var pe pathError
	if !errors.As(err, &pe) {
		return "", false
	}
	return pe.path(), true
}

type pathError interface {
	error
	path() string
	withPath(p string) error
}

func (e *FieldError) path() string          { return e.Path }
func (e *UnknownCodeError) path() string    { return e.Path }
func (e *ChoiceConflictError) path() string { return e.Path }
func (e *ResourceTypeError) path() string   { return e.Path }
func (e *UnknownFieldError) path() string   { return e.Path }
func (e *MissingFieldError) path() string   { return e.Path }

func (e *FieldError) withPath(p string) error {
	c := *e
	c.Path = p
	return &c
}

func (e *UnknownCodeError) withPath(p string) error {
	c := *e
	c.Path = p
	return &c
}

func (e *ChoiceConflictError) withPath(p string) error {
	c := *e
	c.Path = p
	return &c
}

func (e *ResourceTypeError) withPath(p string) error {
	c := *e
	c.Path = p
	return &c
}

func (e *UnknownFieldError) withPath(p string) error {
	c := *e
	c.Path = p
	return &c
}

func (e *MissingFieldError) withPath(p string) error {
	c := *e
	c.Path = p
	return &c
}

// PrefixPath returns err with segment prepended to its element path.
// Errors not produced by this package are returned unchanged.
func PrefixPath(err error, segment string) error {
	if err == nil {
		return nil
	}
	pe, ok := err.(pathError)
	if !ok {
		return err
	}
	return pe.withPath(joinPath(segment, pe.path()))
}

func joinPath(prefix, p string) string {
	switch {
	case p == "":
		return prefix
	case strings.HasPrefix(p, "["):
		return prefix + p
	default:
		return prefix + "." + p
	}
}

func indexSegment(key string, i int) string {
	return key + "[" + strconv.Itoa(i) + "]"
}

func displayPath(p string) string {
	if p == "" {
		return "(root)"
	}
	return p
}
