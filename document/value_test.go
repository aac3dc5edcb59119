package document_test

import (
	"slices"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/damedic/fhir-model-go/document"
)

func TestProjections(t *testing.T) {
	doc := document.Object(
		document.Member{Key: "s", Value: document.String("x")},
		document.Member{Key: "n", Value: document.Int(5)},
		document.Member{Key: "b", Value: document.Bool(true)},
		document.Member{Key: "a", Value: document.Array(document.String("y"))},
		document.Member{Key: "z", Value: document.Null()},
	)

	tests := []struct {
		name  string
		key   string
		kind  document.Kind
		found bool
	}{
		{name: "string", key: "s", kind: document.KindString, found: true},
		{name: "number", key: "n", kind: document.KindNumber, found: true},
		{name: "bool", key: "b", kind: document.KindBool, found: true},
		{name: "array", key: "a", kind: document.KindArray, found: true},
		{name: "explicit null", key: "z", kind: document.KindNull, found: true},
		{name: "absent", key: "missing", kind: document.KindNull, found: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := doc.Get(tt.key)
			if ok != tt.found {
				t.Fatalf("Get(%q) found = %v, want %v", tt.key, ok, tt.found)
			}
			if v.Kind() != tt.kind {
				t.Errorf("Get(%q).Kind() = %v, want %v", tt.key, v.Kind(), tt.kind)
			}
		})
	}

	if s, ok := doc.Get("s"); ok {
		if _, isNum := s.AsNumber(); isNum {
			t.Errorf("AsNumber() on string succeeded")
		}
		if got, isStr := s.AsString(); !isStr || got != "x" {
			t.Errorf("AsString() = %q, %v", got, isStr)
		}
	}
	if _, ok := document.String("x").Get("s"); ok {
		t.Errorf("Get on non-object succeeded")
	}
	if _, ok := document.Null().AsArray(); ok {
		t.Errorf("AsArray on null succeeded")
	}
}

func TestArrayIsCopied(t *testing.T) {
	v := document.Array(document.Int(1), document.Int(2))

	elements, ok := v.AsArray()
	if !ok {
		t.Fatal("AsArray failed")
	}
	elements[0] = document.String("changed")

	first, _ := v.Index(0)
	if first.Kind() != document.KindNumber {
		t.Errorf("mutating the projected slice changed the document: %v", v)
	}
}

func TestObjectDuplicateKeyLaterWins(t *testing.T) {
	v := document.Object(
		document.Member{Key: "a", Value: document.Int(1)},
		document.Member{Key: "b", Value: document.Int(2)},
		document.Member{Key: "a", Value: document.Int(3)},
	)

	if got := v.Keys(); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("Keys() = %v", got)
	}
	a, _ := v.Get("a")
	if n, _ := a.AsNumber(); n != "3" {
		t.Errorf("a = %v, want 3", n)
	}
}

func TestEqual(t *testing.T) {
	a := document.Object(
		document.Member{Key: "x", Value: document.NumberValue("1.0")},
		document.Member{Key: "y", Value: document.Array(document.Bool(true), document.Null())},
	)
	b := document.Object(
		document.Member{Key: "y", Value: document.Array(document.Bool(true), document.Null())},
		document.Member{Key: "x", Value: document.NumberValue("1.00")},
	)
	c := document.Object(
		document.Member{Key: "x", Value: document.NumberValue("1.0")},
	)

	if !a.Equal(b) {
		t.Errorf("expected %v to equal %v", a, b)
	}
	if a.Equal(c) {
		t.Errorf("expected %v to differ from %v", a, c)
	}
	if document.String("1").Equal(document.Int(1)) {
		t.Errorf("string and number compared equal")
	}
}

func TestNumber(t *testing.T) {
	n := document.Number("42")
	if i, err := n.Int64(); err != nil || i != 42 {
		t.Errorf("Int64() = %v, %v", i, err)
	}
	if _, err := document.Number("4.5").Int64(); err == nil {
		t.Errorf("Int64() of 4.5 succeeded")
	}

	d, err := document.Number("1.50").Decimal()
	if err != nil {
		t.Fatal(err)
	}
	if d.Cmp(apd.New(15, -1)) != 0 {
		t.Errorf("Decimal() = %v", d)
	}
	if got := document.NumberFromDecimal(d); got != "1.50" {
		t.Errorf("NumberFromDecimal() = %v, want 1.50", got)
	}
	if document.Decimal(nil).Kind() != document.KindNull {
		t.Errorf("Decimal(nil) is not null")
	}
}

func TestObjectBuilder(t *testing.T) {
	var b document.ObjectBuilder
	b.Set("a", document.Int(1)).Set("b", document.Int(2)).Set("a", document.Int(3))

	first := b.Build()
	b.Delete("b").Set("c", document.String("x"))
	second := b.Build()

	if got := first.Keys(); !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("first.Keys() = %v", got)
	}
	if got := second.Keys(); !slices.Equal(got, []string{"a", "c"}) {
		t.Errorf("second.Keys() = %v", got)
	}
	if !b.Has("c") || b.Has("b") {
		t.Errorf("Has() reports stale members")
	}
}

func TestMembersIteration(t *testing.T) {
	v := document.Object(
		document.Member{Key: "a", Value: document.Int(1)},
		document.Member{Key: "b", Value: document.Int(2)},
		document.Member{Key: "c", Value: document.Int(3)},
	)

	var keys []string
	for k := range v.Members() {
		keys = append(keys, k)
		if k == "b" {
			break
		}
	}
	if !slices.Equal(keys, []string{"a", "b"}) {
		t.Errorf("keys = %v", keys)
	}
}
