package document

import (
	"fmt"
	"iter"
	"slices"
	"strconv"

	"github.com/cockroachdb/apd/v3"
)

// Kind is the shape a Value currently holds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is an immutable node of a tagged document.
//
// Exactly one shape is active at a time. The zero Value is null.
// Values share their children, so copying a Value is cheap and
// inspecting a subtree never copies the whole document.
type Value struct {
	kind Kind
	b    bool
	// s holds the string value or the literal text of a number.
	s   string
	arr []Value
	obj *object
}

// Member is a single key/value pair of an object.
type Member struct {
	Key   string
	Value Value
}

type object struct {
	members []Member
	index   map[string]int
}

func newObject(members []Member) *object {
	o := &object{
		members: make([]Member, 0, len(members)),
		index:   make(map[string]int, len(members)),
	}
	for _, m := range members {
		if i, ok := o.index[m.Key]; ok {
			o.members[i].Value = m.Value
			continue
		}
		o.index[m.Key] = len(o.members)
		o.members = append(o.members, m)
	}
	return o
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// NumberValue returns a number value holding the literal n.
func NumberValue(n Number) Value { return Value{kind: KindNumber, s: string(n)} }

// Int returns a number value for i.
func Int(i int64) Value { return NumberValue(Number(strconv.FormatInt(i, 10))) }

// Decimal returns a number value for d. A nil decimal yields null.
func Decimal(d *apd.Decimal) Value {
	if d == nil {
		return Null()
	}
	return NumberValue(NumberFromDecimal(d))
}

// Array returns an array value holding the given elements.
func Array(elements ...Value) Value {
	return Value{kind: KindArray, arr: slices.Clone(elements)}
}

// Object returns an object value holding the given members.
// If a key is repeated, the later member replaces the earlier one
// but keeps its position.
func Object(members ...Member) Value {
	return Value{kind: KindObject, obj: newObject(members)}
}

// Kind returns the active shape of v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Get looks up key in an object. It returns false if v is not an object
// or the key is absent.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindObject {
		return Value{}, false
	}
	i, ok := v.obj.index[key]
	if !ok {
		return Value{}, false
	}
	return v.obj.members[i].Value, true
}

// Has reports whether v is an object containing key.
func (v Value) Has(key string) bool {
	_, ok := v.Get(key)
	return ok
}

// AsArray returns the elements of an array. The returned slice is a copy.
func (v Value) AsArray() ([]Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}
	return slices.Clone(v.arr), true
}

// AsString returns the string held by v.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

// AsNumber returns the number literal held by v.
func (v Value) AsNumber() (Number, bool) {
	if v.kind != KindNumber {
		return "", false
	}
	return Number(v.s), true
}

// AsBool returns the boolean held by v.
func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// Len returns the number of elements of an array or members of an object,
// and 0 for every other shape.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return len(v.obj.members)
	default:
		return 0
	}
}

// Index returns the i-th element of an array.
func (v Value) Index(i int) (Value, bool) {
	if v.kind != KindArray || i < 0 || i >= len(v.arr) {
		return Value{}, false
	}
	return v.arr[i], true
}

// Keys returns the member keys of an object in document order.
func (v Value) Keys() []string {
	if v.kind != KindObject {
		return nil
	}
	keys := make([]string, len(v.obj.members))
	for i, m := range v.obj.members {
		keys[i] = m.Key
	}
	return keys
}

// Members iterates the members of an object in document order.
func (v Value) Members() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if v.kind != KindObject {
			return
		}
		for _, m := range v.obj.members {
			if !yield(m.Key, m.Value) {
				return
			}
		}
	}
}

// Elements iterates the elements of an array.
func (v Value) Elements() iter.Seq2[int, Value] {
	return func(yield func(int, Value) bool) {
		if v.kind != KindArray {
			return
		}
		for i, e := range v.arr {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Equal reports whether v and other hold the same tree.
//
// Member order is not significant. Numbers are compared by value,
// so 1.0 and 1.00 are equal.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindString:
		return v.s == other.s
	case KindNumber:
		return Number(v.s).Equal(Number(other.s))
	case KindArray:
		return slices.EqualFunc(v.arr, other.arr, Value.Equal)
	case KindObject:
		if len(v.obj.members) != len(other.obj.members) {
			return false
		}
		for _, m := range v.obj.members {
			o, ok := other.Get(m.Key)
			if !ok || !m.Value.Equal(o) {
				return false
			}
		}
		return true
	default:
		panic(fmt.Sprintf("unexpected kind %v", v.kind))
	}
}
