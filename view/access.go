package view

import (
	"math"
	"strconv"

	"github.com/cockroachdb/apd/v3"

	"github.com/damedic/fhir-model-go/document"
	"github.com/damedic/fhir-model-go/enum"
)

// Lookup returns the member key of n. Explicit nulls count as absent.
func Lookup(n document.Value, key string) (document.Value, bool) {
	v, ok := n.Get(key)
	if !ok || v.IsNull() {
		return document.Value{}, false
	}
	return v, true
}

// Projection converts one encoded value into its typed form. The error,
// if any, has an empty path; callers prefix the field key.
type Projection[T any] func(v document.Value) (T, error)

// Get reads the singular field key of n through project.
// A missing field yields the zero T and false without error.
func Get[T any](n document.Value, key string, project Projection[T]) (T, bool, error) {
	var zero T
	v, ok := Lookup(n, key)
	if !ok {
		return zero, false, nil
	}
	t, err := project(v)
	if err != nil {
		return zero, false, PrefixPath(err, key)
	}
	return t, true, nil
}

// GetList reads the repeated field key of n through project. A missing
// field yields a nil slice. Null entries are rejected.
func GetList[T any](n document.Value, key string, project Projection[T]) ([]T, error) {
	list, _, err := Get(n, key, ProjectList(project))
	return list, err
}

// GetSparseList is like GetList but keeps null entries as nil pointers.
// Repeated primitives and their "_" siblings use it so that positions
// stay aligned.
func GetSparseList[T any](n document.Value, key string, project Projection[T]) ([]*T, error) {
	list, _, err := Get(n, key, ProjectSparseList(project))
	return list, err
}

// ProjectList returns a projection accepting a JSON array whose entries
// all pass project.
func ProjectList[T any](project Projection[T]) Projection[[]T] {
	return func(v document.Value) ([]T, error) {
		if v.Kind() != document.KindArray {
			return nil, &FieldError{Expected: ShapeArray, Found: v.Kind()}
		}
		list := make([]T, 0, v.Len())
		for i, e := range v.Elements() {
			if e.IsNull() {
				return nil, &FieldError{Path: indexSegment("", i), Expected: ShapeObject, Found: document.KindNull}
			}
			t, err := project(e)
			if err != nil {
				return nil, PrefixPath(err, indexSegment("", i))
			}
			list = append(list, t)
		}
		return list, nil
	}
}

// ProjectSparseList is like ProjectList but keeps null entries as nil
// pointers.
func ProjectSparseList[T any](project Projection[T]) Projection[[]*T] {
	return func(v document.Value) ([]*T, error) {
		if v.Kind() != document.KindArray {
			return nil, &FieldError{Expected: ShapeArray, Found: v.Kind()}
		}
		list := make([]*T, 0, v.Len())
		for i, e := range v.Elements() {
			if e.IsNull() {
				list = append(list, nil)
				continue
			}
			t, err := project(e)
			if err != nil {
				return nil, PrefixPath(err, indexSegment("", i))
			}
			list = append(list, &t)
		}
		return list, nil
	}
}

// ProjectString accepts a JSON string.
func ProjectString(v document.Value) (string, error) {
	s, ok := v.AsString()
	if !ok {
		return "", &FieldError{Expected: ShapeString, Found: v.Kind()}
	}
	return s, nil
}

// ProjectBool accepts a JSON boolean.
func ProjectBool(v document.Value) (bool, error) {
	b, ok := v.AsBool()
	if !ok {
		return false, &FieldError{Expected: ShapeBoolean, Found: v.Kind()}
	}
	return b, nil
}

// ProjectInt32 accepts an integral number in the signed 32-bit range.
func ProjectInt32(v document.Value) (int32, error) {
	i, err := integer(v, ShapeInteger)
	if err != nil {
		return 0, err
	}
	if i < math.MinInt32 || i > math.MaxInt32 {
		return 0, &FieldError{Expected: ShapeInteger, Found: v.Kind(), Detail: "out of range"}
	}
	return int32(i), nil
}

// ProjectUnsignedInt accepts an integral number in [0, 2^31-1].
func ProjectUnsignedInt(v document.Value) (uint32, error) {
	i, err := integer(v, ShapeUnsignedInt)
	if err != nil {
		return 0, err
	}
	if i < 0 || i > math.MaxInt32 {
		return 0, &FieldError{Expected: ShapeUnsignedInt, Found: v.Kind(), Detail: "out of range"}
	}
	return uint32(i), nil
}

// ProjectPositiveInt accepts an integral number in [1, 2^31-1].
func ProjectPositiveInt(v document.Value) (uint32, error) {
	i, err := integer(v, ShapePositiveInt)
	if err != nil {
		return 0, err
	}
	if i < 1 || i > math.MaxInt32 {
		return 0, &FieldError{Expected: ShapePositiveInt, Found: v.Kind(), Detail: "out of range"}
	}
	return uint32(i), nil
}

func integer(v document.Value, shape Shape) (int64, error) {
	n, ok := v.AsNumber()
	if !ok {
		return 0, &FieldError{Expected: shape, Found: v.Kind()}
	}
	i, err := strconv.ParseInt(string(n), 10, 64)
	if err != nil {
		return 0, &FieldError{Expected: shape, Found: v.Kind(), Detail: "not an integer: " + string(n)}
	}
	return i, nil
}

// ProjectDecimal accepts any JSON number and keeps its full precision.
func ProjectDecimal(v document.Value) (*apd.Decimal, error) {
	n, ok := v.AsNumber()
	if !ok {
		return nil, &FieldError{Expected: ShapeDecimal, Found: v.Kind()}
	}
	d, err := n.Decimal()
	if err != nil {
		return nil, &FieldError{Expected: ShapeDecimal, Found: v.Kind(), Detail: err.Error()}
	}
	return d, nil
}

// ProjectNumber accepts any JSON number and keeps its literal.
func ProjectNumber(v document.Value) (document.Number, error) {
	n, ok := v.AsNumber()
	if !ok {
		return "", &FieldError{Expected: ShapeDecimal, Found: v.Kind()}
	}
	return n, nil
}

// ProjectCode returns a projection resolving code literals through c.
func ProjectCode[T enum.Tag](c *enum.Codec[T]) Projection[T] {
	return func(v document.Value) (T, error) {
		var zero T
		s, ok := v.AsString()
		if !ok {
			return zero, &FieldError{Expected: ShapeCode, Found: v.Kind()}
		}
		t, ok := c.Parse(s)
		if !ok {
			return zero, &UnknownCodeError{ValueSet: c.ValueSet(), Code: s}
		}
		return t, nil
	}
}

// ProjectStruct returns a projection accepting JSON objects and wrapping
// them as a view. Nested fields are not checked; that is left to
// Validate.
func ProjectStruct[T any](wrap func(document.Value) T) Projection[T] {
	return func(v document.Value) (T, error) {
		if v.Kind() != document.KindObject {
			var zero T
			return zero, &FieldError{Expected: ShapeObject, Found: v.Kind()}
		}
		return wrap(v), nil
	}
}

func String(n document.Value, key string) (string, bool, error) {
	return Get(n, key, ProjectString)
}

func Bool(n document.Value, key string) (bool, bool, error) {
	return Get(n, key, ProjectBool)
}

func Int32(n document.Value, key string) (int32, bool, error) {
	return Get(n, key, ProjectInt32)
}

func UnsignedInt(n document.Value, key string) (uint32, bool, error) {
	return Get(n, key, ProjectUnsignedInt)
}

func PositiveInt(n document.Value, key string) (uint32, bool, error) {
	return Get(n, key, ProjectPositiveInt)
}

func Decimal(n document.Value, key string) (*apd.Decimal, bool, error) {
	return Get(n, key, ProjectDecimal)
}

// Code reads a coded field. A literal outside the value set is reported
// as *UnknownCodeError.
func Code[T enum.Tag](n document.Value, key string, c *enum.Codec[T]) (T, bool, error) {
	return Get(n, key, ProjectCode(c))
}

// Struct reads a nested element or resource and wraps it with wrap.
func Struct[T any](n document.Value, key string, wrap func(document.Value) T) (T, bool, error) {
	return Get(n, key, ProjectStruct(wrap))
}

// Strings reads a repeated string-like primitive. Null entries, which
// carry only an extension in the "_" sibling, are nil.
func Strings(n document.Value, key string) ([]*string, error) {
	return GetSparseList(n, key, ProjectString)
}

// Structs reads a repeated nested element.
func Structs[T any](n document.Value, key string, wrap func(document.Value) T) ([]T, error) {
	return GetList(n, key, ProjectStruct(wrap))
}

// SparseStructs reads the "_" sibling of a repeated primitive.
func SparseStructs[T any](n document.Value, key string, wrap func(document.Value) T) ([]*T, error) {
	return GetSparseList(n, key, ProjectStruct(wrap))
}
