package r4view_test

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/go-cmp/cmp"

	"github.com/damedic/fhir-model-go/document"
	"github.com/damedic/fhir-model-go/enum"
	"github.com/damedic/fhir-model-go/model/gen/r4"
	"github.com/damedic/fhir-model-go/model/gen/r4view"
	"github.com/damedic/fhir-model-go/testdata"
	"github.com/damedic/fhir-model-go/testdata/assert"
	"github.com/damedic/fhir-model-go/view"
)

const minimalFlag = `{"resourceType":"Flag","status":"active","code":{"text":"fall risk"},"subject":{"reference":"Patient/1"}}`

func decodeFlag(t *testing.T, payload string) r4view.Flag {
	t.Helper()
	f, err := view.Decode([]byte(payload), r4view.WrapFlag)
	if err != nil {
		t.Fatalf("decode flag: %v", err)
	}
	return f
}

func component(t *testing.T, members string) r4view.ObservationComponent {
	t.Helper()
	c, err := view.Decode([]byte(`{"code":{"text":"c"}`+members+`}`), r4view.WrapObservationComponent)
	if err != nil {
		t.Fatalf("decode component: %v", err)
	}
	return c
}

func TestMinimalFlag(t *testing.T) {
	f := decodeFlag(t, minimalFlag)

	status, ok, err := f.Status()
	if err != nil || !ok || status != r4.FlagStatusActive {
		t.Errorf("Status() = %v, %v, %v", status, ok, err)
	}

	code, ok, err := f.Code()
	if err != nil || !ok {
		t.Fatalf("Code() = %v, %v", ok, err)
	}
	if text, ok, err := code.Text(); text != "fall risk" || !ok || err != nil {
		t.Errorf("Code().Text() = %q, %v, %v", text, ok, err)
	}

	subject, _, _ := f.Subject()
	if ref, _, _ := subject.Reference(); ref != "Patient/1" {
		t.Errorf("Subject().Reference() = %q", ref)
	}

	if _, ok, err := f.Encounter(); ok || err != nil {
		t.Errorf("Encounter() = %v, %v, want absent", ok, err)
	}
	if id, ok := f.ResourceId(); ok {
		t.Errorf("ResourceId() = %q, want none", id)
	}
}

// presence reports whether one alternative of component.value[x] is
// present through its dedicated accessor.
var presence = map[string]func(c r4view.ObservationComponent) (bool, error){
	"valueQuantity": func(c r4view.ObservationComponent) (bool, error) {
		_, ok, err := c.ValueQuantity()
		return ok, err
	},
	"valueCodeableConcept": func(c r4view.ObservationComponent) (bool, error) {
		_, ok, err := c.ValueCodeableConcept()
		return ok, err
	},
	"valueString": func(c r4view.ObservationComponent) (bool, error) {
		_, ok, err := c.ValueString()
		return ok, err
	},
	"valueBoolean": func(c r4view.ObservationComponent) (bool, error) {
		_, ok, err := c.ValueBoolean()
		return ok, err
	},
	"valueInteger": func(c r4view.ObservationComponent) (bool, error) {
		_, ok, err := c.ValueInteger()
		return ok, err
	},
	"valueRange": func(c r4view.ObservationComponent) (bool, error) {
		_, ok, err := c.ValueRange()
		return ok, err
	},
	"valueTime": func(c r4view.ObservationComponent) (bool, error) {
		_, ok, err := c.ValueTime()
		return ok, err
	},
	"valueDateTime": func(c r4view.ObservationComponent) (bool, error) {
		_, ok, err := c.ValueDateTime()
		return ok, err
	},
	"valuePeriod": func(c r4view.ObservationComponent) (bool, error) {
		_, ok, err := c.ValuePeriod()
		return ok, err
	},
}

func TestChoiceExclusivity(t *testing.T) {
	tests := []struct {
		key      string
		payload  string
		wantType string
	}{
		{"valueQuantity", `{"value":5}`, "r4view.Quantity"},
		{"valueCodeableConcept", `{"text":"high"}`, "r4view.CodeableConcept"},
		{"valueString", `"x"`, "r4view.String"},
		{"valueBoolean", `false`, "r4view.Boolean"},
		{"valueInteger", `3`, "r4view.Integer"},
		{"valueRange", `{"low":{"value":1}}`, "r4view.Range"},
		{"valueTime", `"10:00:00"`, "r4view.Time"},
		{"valueDateTime", `"2024-01-01"`, "r4view.DateTime"},
		{"valuePeriod", `{"start":"2024-01-01"}`, "r4view.Period"},
	}
	if len(tests) != len(presence) {
		t.Fatalf("%d alternatives tested, %d declared", len(tests), len(presence))
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			c := component(t, fmt.Sprintf(`,%q:%s`, tt.key, tt.payload))

			for key, present := range presence {
				ok, err := present(c)
				if err != nil {
					t.Fatalf("%s accessor: %v", key, err)
				}
				if ok != (key == tt.key) {
					t.Errorf("%s present = %v", key, ok)
				}
			}

			v, ok, err := c.Value()
			if err != nil || !ok {
				t.Fatalf("Value() = %v, %v", ok, err)
			}
			if got := fmt.Sprintf("%T", v); got != tt.wantType {
				t.Errorf("Value() type = %s, want %s", got, tt.wantType)
			}
		})
	}
}

func TestChoiceQuantity(t *testing.T) {
	c := component(t, `,"valueQuantity":{"value":5}`)

	q, ok, err := c.ValueQuantity()
	if err != nil || !ok {
		t.Fatalf("ValueQuantity() = %v, %v", ok, err)
	}
	value, ok, err := q.Value()
	if err != nil || !ok {
		t.Fatalf("Value() = %v, %v", ok, err)
	}
	if value.Cmp(apd.New(5, 0)) != 0 {
		t.Errorf("value = %s, want 5", value)
	}
	if _, ok, _ := c.ValueBoolean(); ok {
		t.Error("ValueBoolean() present")
	}
}

func TestChoiceFirstDeclaredWins(t *testing.T) {
	c := component(t, `,"valueBoolean":true,"valueString":"a"`)

	v, ok, err := c.Value()
	if err != nil || !ok {
		t.Fatalf("Value() = %v, %v", ok, err)
	}
	if v != r4view.String("a") {
		t.Errorf("Value() = %#v, want String(\"a\")", v)
	}

	err = c.Validate(view.StrictChoice())
	var conflict *view.ChoiceConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("Validate(StrictChoice) = %v, want ChoiceConflictError", err)
	}
	if diff := cmp.Diff(&view.ChoiceConflictError{Path: "value[x]", Keys: []string{"valueString", "valueBoolean"}}, conflict); diff != "" {
		t.Errorf("conflict mismatch (-want +got):\n%s", diff)
	}
}

func TestChoicePrimitiveWrappers(t *testing.T) {
	ext, err := view.Decode([]byte(`{"url":"http://example.org/x","valueDecimal":0.950}`), r4view.WrapExtension)
	if err != nil {
		t.Fatalf("decode extension: %v", err)
	}
	v, ok, err := ext.Value()
	if err != nil || !ok {
		t.Fatalf("Value() = %v, %v", ok, err)
	}
	d, isDecimal := v.(r4view.Decimal)
	if !isDecimal {
		t.Fatalf("Value() = %T, want Decimal", v)
	}
	if d.String() != "0.950" {
		t.Errorf("decimal = %s, want 0.950", d)
	}
}

func TestChoiceElementSibling(t *testing.T) {
	c := component(t, `,"valueString":"x","_valueString":{"id":"v1"}`)

	el, ok, err := c.ValueStringElement()
	if err != nil || !ok {
		t.Fatalf("ValueStringElement() = %v, %v", ok, err)
	}
	if id, _, _ := el.Id(); id != "v1" {
		t.Errorf("element id = %q", id)
	}
}

func TestAbsence(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"missing", `{"resourceType":"Observation"}`},
		{"null", `{"resourceType":"Observation","status":null,"code":null,"valueString":null,"effectivePeriod":null,"component":null,"identifier":null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := view.Decode([]byte(tt.payload), r4view.WrapObservation)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}

			checks := map[string]func() (bool, error){
				"status": func() (bool, error) {
					_, ok, err := o.Status()
					return ok, err
				},
				"code": func() (bool, error) {
					_, ok, err := o.Code()
					return ok, err
				},
				"value": func() (bool, error) {
					_, ok, err := o.Value()
					return ok, err
				},
				"valueString": func() (bool, error) {
					_, ok, err := o.ValueString()
					return ok, err
				},
				"effective": func() (bool, error) {
					_, ok, err := o.Effective()
					return ok, err
				},
				"component": func() (bool, error) {
					c, err := o.Component()
					return c != nil, err
				},
				"identifier": func() (bool, error) {
					i, err := o.Identifier()
					return i != nil, err
				},
			}
			for name, check := range checks {
				if ok, err := check(); ok || err != nil {
					t.Errorf("%s = %v, %v, want absent", name, ok, err)
				}
			}
		})
	}
}

func TestEmptyStringIsPresent(t *testing.T) {
	c := component(t, `,"valueString":""`)
	if s, ok, err := c.ValueString(); s != "" || !ok || err != nil {
		t.Errorf("ValueString() = %q, %v, %v", s, ok, err)
	}
}

func TestValidateFailFast(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		wantPath string
		check    func(t *testing.T, err error)
	}{
		{
			name: "nested depth two",
			payload: `{"resourceType":"Observation","status":"final","code":{"text":"bp"},"component":[
				{"code":{"text":"a"},"valueQuantity":{"value":1}},
				{"code":{"text":"b"},"valueQuantity":{"value":"5"}}]}`,
			wantPath: "component[1].valueQuantity.value",
			check: func(t *testing.T, err error) {
				var fe *view.FieldError
				if !errors.As(err, &fe) || fe.Expected != view.ShapeDecimal || fe.Found != document.KindString {
					t.Errorf("err = %v, want decimal/string FieldError", err)
				}
			},
		},
		{
			name:     "first error wins",
			payload:  `{"resourceType":"Observation","status":"paused","code":1}`,
			wantPath: "status",
			check: func(t *testing.T, err error) {
				if !errors.Is(err, enum.ErrUnknownCode) {
					t.Errorf("err = %v, want ErrUnknownCode", err)
				}
			},
		},
		{
			name:     "element sibling",
			payload:  `{"resourceType":"Observation","status":"final","_status":{"id":7}}`,
			wantPath: "_status.id",
		},
		{
			name:     "contained",
			payload:  `{"resourceType":"Observation","contained":[{"resourceType":"Flag","status":"active","code":{"text":3}}]}`,
			wantPath: "contained[0].code.text",
		},
		{
			name:     "extension value",
			payload:  `{"resourceType":"Observation","extension":[{"url":"u","valueBoolean":"yes"}]}`,
			wantPath: "extension[0].valueBoolean",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r4view.Decode([]byte(tt.payload))
			if err == nil {
				t.Fatal("expected error")
			}
			if path, _ := view.Path(err); path != tt.wantPath {
				t.Errorf("path = %q, want %q (%v)", path, tt.wantPath, err)
			}
			if !strings.HasPrefix(err.Error(), "decode Observation: ") {
				t.Errorf("error = %q", err)
			}
			if tt.check != nil {
				tt.check(t, err)
			}
		})
	}
}

func TestValidateAcceptsExamples(t *testing.T) {
	for name, b := range testdata.GetExamples("json") {
		t.Run(name, func(t *testing.T) {
			r, err := r4view.Decode(b, view.StrictChoice())
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if !view.Valid(r, view.StrictChoice()) {
				t.Error("Valid() = false")
			}
		})
	}
}

func TestWrapResource(t *testing.T) {
	tests := []struct {
		payload string
		want    string
		wantErr *view.ResourceTypeError
	}{
		{payload: minimalFlag, want: "r4view.Flag"},
		{payload: `{"resourceType":"Observation"}`, want: "r4view.Observation"},
		{payload: `{"resourceType":"Account","status":"active"}`, want: "r4view.Account"},
		{payload: `{"resourceType":"OperationOutcome"}`, want: "r4view.OperationOutcome"},
		{
			payload: `{"resourceType":"Patient"}`,
			wantErr: &view.ResourceTypeError{Expected: "one of Flag, Observation, Account, OperationOutcome", Found: "Patient"},
		},
		{
			payload: `{"id":"x"}`,
			wantErr: &view.ResourceTypeError{Expected: "one of Flag, Observation, Account, OperationOutcome"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.payload, func(t *testing.T) {
			n, err := document.Parse([]byte(tt.payload))
			if err != nil {
				t.Fatal(err)
			}
			r, err := r4view.WrapResource(n)
			if tt.wantErr != nil {
				var rte *view.ResourceTypeError
				if !errors.As(err, &rte) {
					t.Fatalf("err = %v, want ResourceTypeError", err)
				}
				if diff := cmp.Diff(tt.wantErr, rte); diff != "" {
					t.Errorf("error mismatch (-want +got):\n%s", diff)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got := fmt.Sprintf("%T", r); got != tt.want {
				t.Errorf("WrapResource() = %s, want %s", got, tt.want)
			}
		})
	}

	if _, err := r4view.WrapResource(document.String("Flag")); err == nil {
		t.Error("WrapResource(string) succeeded")
	}
}

func TestResourceTypeMismatch(t *testing.T) {
	_, err := view.Decode([]byte(`{"resourceType":"Observation"}`), r4view.WrapFlag)
	var rte *view.ResourceTypeError
	if !errors.As(err, &rte) || rte.Expected != "Flag" || rte.Found != "Observation" {
		t.Errorf("err = %v, want ResourceTypeError", err)
	}
}

func TestContainedResources(t *testing.T) {
	o, err := view.Decode(testdata.GetExample("observation-contained.json"), r4view.WrapObservation)
	if err != nil {
		t.Fatal(err)
	}
	contained, err := o.Contained()
	if err != nil || len(contained) != 1 {
		t.Fatalf("Contained() = %v, %v", contained, err)
	}
	f, ok := contained[0].(r4view.Flag)
	if !ok {
		t.Fatalf("contained[0] = %T, want Flag", contained[0])
	}
	if id, _ := f.ResourceId(); id != "f1" {
		t.Errorf("contained id = %q", id)
	}
}

func TestDecodeYAML(t *testing.T) {
	payload := `
resourceType: Flag
status: inactive
code:
  text: fall risk
subject:
  reference: Patient/1
`
	r, err := r4view.DecodeFormat(strings.NewReader(payload), document.FormatYAML)
	if err != nil {
		t.Fatal(err)
	}
	f, ok := r.(r4view.Flag)
	if !ok {
		t.Fatalf("DecodeFormat() = %T, want Flag", r)
	}
	if status, _, _ := f.Status(); status != r4.FlagStatusInactive {
		t.Errorf("Status() = %v", status)
	}
}

func TestDecodeXML(t *testing.T) {
	payload := `<Flag xmlns="http://hl7.org/fhir">
  <status value="inactive"/>
  <code>
    <text value="fall risk"/>
  </code>
  <subject>
    <reference value="Patient/1"/>
  </subject>
</Flag>`
	r, err := r4view.DecodeFormat(strings.NewReader(payload), document.FormatXML)
	if err != nil {
		t.Fatal(err)
	}
	f, ok := r.(r4view.Flag)
	if !ok {
		t.Fatalf("DecodeFormat() = %T, want Flag", r)
	}
	if status, _, _ := f.Status(); status != r4.FlagStatusInactive {
		t.Errorf("Status() = %v", status)
	}
	assert.JSONEqual(t, strings.Replace(minimalFlag, "active", "inactive", 1), f.Node().String())

	_, err = r4view.DecodeFormat(strings.NewReader(`<Flag xmlns="http://hl7.org/fhir"><code/><subject/></Flag>`), document.FormatXML)
	var missing *view.MissingFieldError
	if !errors.As(err, &missing) || missing.Path != "status" {
		t.Errorf("DecodeFormat() error = %v, want a missing status", err)
	}
}

func TestBuilderRequiredFields(t *testing.T) {
	code := r4view.NewCodeableConceptBuilder().SetText("fall risk").Build()
	subject := r4view.NewReferenceBuilder().SetReference("Patient/1").Build()

	built := r4view.NewFlagBuilder(r4.FlagStatusActive, code, subject).Build()

	b, err := built.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	assert.JSONEqual(t, minimalFlag, string(b))

	f := decodeFlag(t, string(b))
	if diff := cmp.Diff([]string{"resourceType", "status", "code", "subject"}, f.Node().Keys()); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
	if status, _, _ := f.Status(); status != r4.FlagStatusActive {
		t.Errorf("Status() = %v", status)
	}
	for name, present := range map[string]func() bool{
		"period":    func() bool { _, ok, _ := f.Period(); return ok },
		"encounter": func() bool { _, ok, _ := f.Encounter(); return ok },
		"author":    func() bool { _, ok, _ := f.Author(); return ok },
	} {
		if present() {
			t.Errorf("%s present", name)
		}
	}
}

func TestBuilderSnapshot(t *testing.T) {
	b := r4view.NewObservationBuilder(r4.ObservationStatusFinal, r4view.NewCodeableConceptBuilder().SetText("bp").Build())
	first := b.Build()
	b.SetId("later")

	if _, ok, _ := first.Id(); ok {
		t.Error("earlier snapshot changed by later Set")
	}
	if id, _, _ := b.Build().Id(); id != "later" {
		t.Errorf("Id() = %q", id)
	}
}

func TestBuilderClearsOtherAlternatives(t *testing.T) {
	code := r4view.NewCodeableConceptBuilder().SetText("bp").Build()
	el := r4view.NewPrimitiveElementBuilder().SetId("v1").Build()

	b := r4view.NewObservationBuilder(r4.ObservationStatusFinal, code).
		SetValueString("a").
		SetValueStringElement(el)
	if keys := b.Build().Node().Keys(); !slices.Contains(keys, "_valueString") {
		t.Fatalf("keys = %v, want _valueString kept with valueString", keys)
	}

	o := b.SetValueBoolean(true).Build()
	keys := o.Node().Keys()
	for _, k := range []string{"valueString", "_valueString"} {
		if slices.Contains(keys, k) {
			t.Errorf("%s not cleared: %v", k, keys)
		}
	}
	if v, _, _ := o.Value(); v != r4view.Boolean(true) {
		t.Errorf("Value() = %#v", v)
	}

	quantity := r4view.NewQuantityBuilder().SetValue(apd.New(120, 0)).SetUnit("mmHg").Build()
	o = b.SetValueQuantity(quantity).Build()
	if present := view.Present(o.Node(), "valueBoolean", "valueQuantity"); !slices.Equal(present, []string{"valueQuantity"}) {
		t.Errorf("present = %v", present)
	}
	if err := o.Validate(view.StrictChoice()); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestBuilderNested(t *testing.T) {
	code := r4view.NewCodeableConceptBuilder().
		SetCoding(r4view.NewCodingBuilder().SetSystem("http://loinc.org").SetCode("85354-9").Build()).
		Build()
	systolic := r4view.NewObservationComponentBuilder(r4view.NewCodeableConceptBuilder().SetText("systolic").Build()).
		SetValueQuantity(r4view.NewQuantityBuilder().SetValue(apd.New(107, 0)).Build()).
		Build()
	diastolic := r4view.NewObservationComponentBuilder(r4view.NewCodeableConceptBuilder().SetText("diastolic").Build()).
		SetValueQuantity(r4view.NewQuantityBuilder().SetValue(apd.New(6050, -2)).SetComparator(r4.QuantityComparatorLessThanOrEqualTo).Build()).
		Build()

	o := r4view.NewObservationBuilder(r4.ObservationStatusFinal, code).
		SetComponent(systolic, diastolic).
		Build()
	if err := o.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}

	components, err := o.Component()
	if err != nil || len(components) != 2 {
		t.Fatalf("Component() = %v, %v", components, err)
	}
	q, _, _ := components[1].ValueQuantity()
	if c, ok, err := q.Comparator(); c != r4.QuantityComparatorLessThanOrEqualTo || !ok || err != nil {
		t.Errorf("Comparator() = %v, %v, %v", c, ok, err)
	}
	if v, _, _ := q.Value(); v.String() != "60.50" {
		t.Errorf("Value() = %s, want 60.50", v)
	}
}

func TestBuilderSparseStrings(t *testing.T) {
	second := "http://example.org/fhir/StructureDefinition/b"
	element := r4view.NewPrimitiveElementBuilder().SetId("p1").Build()
	m := r4view.NewMetaBuilder().
		SetProfile(nil, &second).
		SetProfileElement(&element, nil).
		Build()

	assert.JSONEqual(t, `{"profile":[null,"http://example.org/fhir/StructureDefinition/b"],"_profile":[{"id":"p1"},null]}`, m.Node().String())

	profile, err := m.Profile()
	if err != nil {
		t.Fatal(err)
	}
	if len(profile) != 2 || profile[0] != nil || *profile[1] != second {
		t.Errorf("Profile() = %v", profile)
	}
}
