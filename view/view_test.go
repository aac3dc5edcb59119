package view_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/damedic/fhir-model-go/document"
	"github.com/damedic/fhir-model-go/enum"
	"github.com/damedic/fhir-model-go/utils/ptr"
	"github.com/damedic/fhir-model-go/view"
)

type color uint8

const (
	colorRed color = iota + 1
	colorGreen
)

var colorCodec = enum.NewCodec("Color",
	enum.Entry[color]{Tag: colorRed, Code: "red"},
	enum.Entry[color]{Tag: colorGreen, Code: "green"},
)

// leaf and box are minimal hand-written views in the shape the generator
// emits.
type leaf struct{ node document.Value }

func wrapLeaf(n document.Value) leaf { return leaf{node: n} }

func (l leaf) Node() document.Value { return l.node }

func (l leaf) Count() (uint32, bool, error) { return view.PositiveInt(l.node, "count") }

func (l leaf) Validate(opts ...view.ValidateOption) error {
	return view.ValidateObject(l.node, opts, view.Field(l.Count))
}

type box struct{ node document.Value }

func wrapBox(n document.Value) box { return box{node: n} }

func (b box) Node() document.Value { return b.node }

func (b box) Color() (color, bool, error) { return view.Code(b.node, "color", colorCodec) }

func (b box) Leaf() (leaf, bool, error) { return view.Struct(b.node, "leaf", wrapLeaf) }

func (b box) Leaves() ([]leaf, error) { return view.Structs(b.node, "leaves", wrapLeaf) }

func (b box) Labels() ([]*string, error) { return view.Strings(b.node, "label") }

func (b box) LabelsElement() ([]*leaf, error) { return view.SparseStructs(b.node, "_label", wrapLeaf) }

func (b box) Validate(opts ...view.ValidateOption) error {
	return view.ValidateObject(b.node, opts,
		view.ResourceType(b.node, "Box"),
		view.Field(b.Color),
		view.Nested("leaf", b.Leaf),
		view.NestedList("leaves", b.Leaves),
		view.List(b.Labels),
		view.NestedSparseList("_label", b.LabelsElement),
		view.Exclusive(b.node, "size[x]", "sizeInteger", "sizeString"),
	)
}

func mustParse(t *testing.T, s string) document.Value {
	t.Helper()
	v, err := document.Parse([]byte(s))
	if err != nil {
		t.Fatalf("Parse(%s) error = %v", s, err)
	}
	return v
}

func TestPrimitiveAccessors(t *testing.T) {
	n := mustParse(t, `{"s":"x","b":true,"i":-3,"u":0,"p":2,"d":1.50,"big":3000000000,"frac":1.5,"null":null}`)

	if s, ok, err := view.String(n, "s"); s != "x" || !ok || err != nil {
		t.Errorf("String() = %q, %v, %v", s, ok, err)
	}
	if b, ok, err := view.Bool(n, "b"); !b || !ok || err != nil {
		t.Errorf("Bool() = %v, %v, %v", b, ok, err)
	}
	if i, ok, err := view.Int32(n, "i"); i != -3 || !ok || err != nil {
		t.Errorf("Int32() = %v, %v, %v", i, ok, err)
	}
	if u, ok, err := view.UnsignedInt(n, "u"); u != 0 || !ok || err != nil {
		t.Errorf("UnsignedInt() = %v, %v, %v", u, ok, err)
	}
	if p, ok, err := view.PositiveInt(n, "p"); p != 2 || !ok || err != nil {
		t.Errorf("PositiveInt() = %v, %v, %v", p, ok, err)
	}
	if d, ok, err := view.Decimal(n, "d"); !ok || err != nil || d.String() != "1.50" {
		t.Errorf("Decimal() = %v, %v, %v", d, ok, err)
	}

	for _, key := range []string{"null", "missing"} {
		if _, ok, err := view.String(n, key); ok || err != nil {
			t.Errorf("String(%s) = _, %v, %v, want absent", key, ok, err)
		}
	}

	errorCases := []struct {
		name string
		get  func() error
	}{
		{"string as bool", func() error { _, _, err := view.Bool(n, "s"); return err }},
		{"fraction as integer", func() error { _, _, err := view.Int32(n, "frac"); return err }},
		{"int32 overflow", func() error { _, _, err := view.Int32(n, "big"); return err }},
		{"zero positiveInt", func() error { _, _, err := view.PositiveInt(n, "u"); return err }},
		{"negative unsignedInt", func() error { _, _, err := view.UnsignedInt(n, "i"); return err }},
		{"number as string", func() error { _, _, err := view.String(n, "i"); return err }},
	}
	for _, tt := range errorCases {
		t.Run(tt.name, func(t *testing.T) {
			var fieldErr *view.FieldError
			if err := tt.get(); !errors.As(err, &fieldErr) {
				t.Errorf("error = %v, want *FieldError", err)
			}
		})
	}
}

func TestCodeAccessor(t *testing.T) {
	n := mustParse(t, `{"good":"green","bad":"purple","num":1}`)

	if c, ok, err := view.Code(n, "good", colorCodec); c != colorGreen || !ok || err != nil {
		t.Errorf("Code(good) = %v, %v, %v", c, ok, err)
	}

	_, _, err := view.Code(n, "bad", colorCodec)
	var unknown *view.UnknownCodeError
	if !errors.As(err, &unknown) {
		t.Fatalf("Code(bad) error = %v, want *UnknownCodeError", err)
	}
	if !errors.Is(err, enum.ErrUnknownCode) {
		t.Errorf("Code(bad) error does not match enum.ErrUnknownCode")
	}
	want := view.UnknownCodeError{Path: "bad", ValueSet: "Color", Code: "purple"}
	if diff := cmp.Diff(want, *unknown); diff != "" {
		t.Errorf("UnknownCodeError mismatch (-want +got):\n%s", diff)
	}

	_, _, err = view.Code(n, "num", colorCodec)
	var fieldErr *view.FieldError
	if !errors.As(err, &fieldErr) || fieldErr.Expected != view.ShapeCode {
		t.Errorf("Code(num) error = %v, want *FieldError expecting code", err)
	}
}

func TestSparseLists(t *testing.T) {
	n := mustParse(t, `{"label":["a",null,"c"],"_label":[null,{"count":1},null]}`)
	b := wrapBox(n)

	labels, err := b.Labels()
	if err != nil {
		t.Fatal(err)
	}
	if len(labels) != 3 || labels[1] != nil || *labels[0] != "a" || *labels[2] != "c" {
		t.Errorf("Labels() = %v", labels)
	}

	elems, err := b.LabelsElement()
	if err != nil {
		t.Fatal(err)
	}
	if len(elems) != 3 || elems[0] != nil || elems[1] == nil || elems[2] != nil {
		t.Fatalf("LabelsElement() = %v", elems)
	}
	if c, _, _ := elems[1].Count(); c != 1 {
		t.Errorf("LabelsElement()[1].Count() = %v", c)
	}
}

func TestValidatePaths(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		opts     []view.ValidateOption
		wantPath string
		wantErr  any
	}{
		{
			name: "valid",
			in:   `{"resourceType":"Box","color":"red","leaf":{"count":1},"leaves":[{"count":2}]}`,
		},
		{
			name:     "nested list element",
			in:       `{"resourceType":"Box","leaves":[{"count":2},{"count":"3"}]}`,
			wantPath: "leaves[1].count",
			wantErr:  &view.FieldError{},
		},
		{
			name:     "nested object",
			in:       `{"resourceType":"Box","leaf":{"count":0}}`,
			wantPath: "leaf.count",
			wantErr:  &view.FieldError{},
		},
		{
			name:     "leaf not an object",
			in:       `{"resourceType":"Box","leaf":[]}`,
			wantPath: "leaf",
			wantErr:  &view.FieldError{},
		},
		{
			name:     "sibling element",
			in:       `{"resourceType":"Box","label":["a"],"_label":[{"count":true}]}`,
			wantPath: "_label[0].count",
			wantErr:  &view.FieldError{},
		},
		{
			name:     "unknown code",
			in:       `{"resourceType":"Box","color":"blue"}`,
			wantPath: "color",
			wantErr:  &view.UnknownCodeError{},
		},
		{
			name:    "wrong resource type",
			in:      `{"resourceType":"Crate"}`,
			wantErr: &view.ResourceTypeError{},
		},
		{
			name: "two alternatives lenient",
			in:   `{"resourceType":"Box","sizeInteger":1,"sizeString":"big"}`,
		},
		{
			name:     "two alternatives strict",
			in:       `{"resourceType":"Box","sizeInteger":1,"sizeString":"big"}`,
			opts:     []view.ValidateOption{view.StrictChoice()},
			wantPath: "size[x]",
			wantErr:  &view.ChoiceConflictError{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := wrapBox(mustParse(t, tt.in)).Validate(tt.opts...)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() succeeded, want %T", tt.wantErr)
			}
			if got, want := typeName(err), typeName(tt.wantErr); got != want {
				t.Errorf("Validate() error type = %s, want %s (%v)", got, want, err)
			}
			if path, _ := view.Path(err); path != tt.wantPath {
				t.Errorf("Validate() error path = %q, want %q", path, tt.wantPath)
			}
		})
	}
}

func typeName(v any) string {
	switch v.(type) {
	case *view.FieldError:
		return "FieldError"
	case *view.UnknownCodeError:
		return "UnknownCodeError"
	case *view.ChoiceConflictError:
		return "ChoiceConflictError"
	case *view.ResourceTypeError:
		return "ResourceTypeError"
	default:
		return "other"
	}
}

func TestValidateRoot(t *testing.T) {
	err := wrapLeaf(document.String("x")).Validate()
	var fieldErr *view.FieldError
	if !errors.As(err, &fieldErr) || fieldErr.Expected != view.ShapeObject {
		t.Errorf("Validate() error = %v, want object expected", err)
	}
	if !view.Valid(wrapLeaf(document.Object())) {
		t.Errorf("empty object is not valid")
	}
}

func TestProbe(t *testing.T) {
	n := mustParse(t, `{"valueString":"x","valueBoolean":false,"valueInteger":null}`)

	key, ok := view.Probe(n, "value", "Integer", "Boolean", "String")
	if !ok || key != "valueBoolean" {
		t.Errorf("Probe() = %q, %v, want valueBoolean", key, ok)
	}
	if _, ok := view.Probe(n, "value", "Quantity"); ok {
		t.Errorf("Probe() found an absent alternative")
	}
	want := []string{"valueString", "valueBoolean"}
	if diff := cmp.Diff(want, view.Present(n, "valueString", "valueInteger", "valueBoolean")); diff != "" {
		t.Errorf("Present() mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve(t *testing.T) {
	type choice interface{}
	n := mustParse(t, `{"leaf":{"count":2}}`)
	b := wrapBox(n)

	got, ok, err := view.Resolve(b.Leaf, func(l leaf) choice { return l })
	if !ok || err != nil {
		t.Fatalf("Resolve() = _, %v, %v", ok, err)
	}
	if _, isLeaf := got.(leaf); !isLeaf {
		t.Errorf("Resolve() = %T, want leaf", got)
	}

	_, ok, err = view.Resolve(b.Color, func(c color) choice { return c })
	if ok || err != nil {
		t.Errorf("Resolve() of absent field = _, %v, %v", ok, err)
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{
			err:  view.PrefixPath(view.PrefixPath(&view.FieldError{Path: "value", Expected: view.ShapeDecimal, Found: document.KindString}, "valueQuantity"), "component[1]"),
			want: "field component[1].valueQuantity.value: expected decimal, found string",
		},
		{
			err:  view.PrefixPath(&view.FieldError{Path: "[2]", Expected: view.ShapeObject, Found: document.KindNull}, "note"),
			want: "field note[2]: expected object, found null",
		},
		{
			err:  &view.ResourceTypeError{Expected: "Flag", Found: "Account"},
			want: "resourceType: expected Flag, found Account",
		},
		{
			err:  &view.ChoiceConflictError{Path: "value[x]", Keys: []string{"valueString", "valueBoolean"}},
			want: "field value[x]: only one alternative may be present, found valueString, valueBoolean",
		},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestBuilderValues(t *testing.T) {
	var b document.ObjectBuilder
	b.Set("color", view.CodeValue(colorCodec, colorRed)).
		Set("label", view.StringsValue([]*string{ptr.To("a"), nil, ptr.To("b")})).
		Set("leaves", view.ListValue([]leaf{wrapLeaf(document.Object(document.Member{Key: "count", Value: view.Uint32Value(4)}))}))

	got := wrapBox(b.Build())
	if c, _, _ := got.Color(); c != colorRed {
		t.Errorf("Color() = %v", c)
	}
	want := mustParse(t, `{"color":"red","label":["a",null,"b"],"leaves":[{"count":4}]}`)
	if !got.Node().Equal(want) {
		t.Errorf("built document = %v, want %v", got.Node(), want)
	}
}

func TestDecode(t *testing.T) {
	if _, err := view.Decode([]byte(`{"resourceType":"Box","color":"red"}`), wrapBox); err != nil {
		t.Errorf("Decode() error = %v", err)
	}

	_, err := view.Decode([]byte(`{"resourceType":"Box","color":7}`), wrapBox)
	var fieldErr *view.FieldError
	if !errors.As(err, &fieldErr) || fieldErr.Path != "color" {
		t.Errorf("Decode() error = %v, want FieldError at color", err)
	}

	_, err = view.Decode([]byte(`{"resourceType":`), wrapBox)
	var syntaxErr *document.SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Errorf("Decode() error = %v, want *document.SyntaxError", err)
	}
}

func TestStructConversion(t *testing.T) {
	type leafStruct struct {
		Count *uint32 `json:"count,omitempty"`
	}
	type boxStruct struct {
		ResourceType string       `json:"resourceType"`
		Color        string       `json:"color,omitempty"`
		Leaves       []leafStruct `json:"leaves,omitempty"`
	}

	in := wrapBox(mustParse(t, `{"resourceType":"Box","color":"green","leaves":[{"count":3}]}`))
	s, err := view.ToStruct[boxStruct](in)
	if err != nil {
		t.Fatalf("ToStruct() error = %v", err)
	}
	if s.Color != "green" || len(s.Leaves) != 1 || *s.Leaves[0].Count != 3 {
		t.Errorf("ToStruct() = %+v", s)
	}

	back, err := view.FromStruct(s, wrapBox)
	if err != nil {
		t.Fatalf("FromStruct() error = %v", err)
	}
	if !back.Node().Equal(in.Node()) {
		t.Errorf("FromStruct() = %v, want %v", back.Node(), in.Node())
	}
}
