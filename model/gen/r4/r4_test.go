package r4_test

import (
	"bytes"
	"encoding"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"

	"github.com/damedic/fhir-model-go/document"
	"github.com/damedic/fhir-model-go/enum"
	"github.com/damedic/fhir-model-go/model"
	"github.com/damedic/fhir-model-go/model/gen/r4"
	"github.com/damedic/fhir-model-go/testdata/assert"
	"github.com/damedic/fhir-model-go/utils/ptr"
	"github.com/damedic/fhir-model-go/view"
)

type code interface {
	enum.Tag
	fmt.Stringer
	encoding.TextMarshaler
}

func checkCodec[T code](t *testing.T, c *enum.Codec[T], parse func(string) (T, bool)) {
	t.Helper()

	seen := map[string]bool{}
	for _, tag := range c.Values() {
		literal, ok := c.Code(tag)
		if !ok {
			t.Errorf("Code(%v) undeclared", tag)
			continue
		}
		if seen[literal] {
			t.Errorf("code %q declared twice", literal)
		}
		seen[literal] = true

		if got, ok := parse(literal); !ok || got != tag {
			t.Errorf("parse(%q) = %v, %v, want %v", literal, got, ok, tag)
		}
		if tag.String() != literal {
			t.Errorf("String() = %q, want %q", tag.String(), literal)
		}
		if b, err := tag.MarshalText(); err != nil || string(b) != literal {
			t.Errorf("MarshalText() = %q, %v", b, err)
		}
	}

	var zero T
	if _, err := zero.MarshalText(); err == nil {
		t.Errorf("MarshalText() of the zero tag succeeded")
	}
	if _, ok := parse("no-such-code"); ok {
		t.Errorf("parse of an unknown code succeeded")
	}
}

func TestValueSets(t *testing.T) {
	t.Run("FlagStatus", func(t *testing.T) { checkCodec(t, r4.FlagStatusCodec, r4.ParseFlagStatus) })
	t.Run("ObservationStatus", func(t *testing.T) { checkCodec(t, r4.ObservationStatusCodec, r4.ParseObservationStatus) })
	t.Run("AccountStatus", func(t *testing.T) { checkCodec(t, r4.AccountStatusCodec, r4.ParseAccountStatus) })
	t.Run("IdentifierUse", func(t *testing.T) { checkCodec(t, r4.IdentifierUseCodec, r4.ParseIdentifierUse) })
	t.Run("QuantityComparator", func(t *testing.T) { checkCodec(t, r4.QuantityComparatorCodec, r4.ParseQuantityComparator) })
	t.Run("IssueSeverity", func(t *testing.T) { checkCodec(t, r4.IssueSeverityCodec, r4.ParseIssueSeverity) })
	t.Run("IssueType", func(t *testing.T) { checkCodec(t, r4.IssueTypeCodec, r4.ParseIssueType) })
}

func TestValueSetLiterals(t *testing.T) {
	if got := r4.QuantityComparatorLessThanOrEqualTo.String(); got != "<=" {
		t.Errorf("String() = %q, want <=", got)
	}
	if got := r4.IssueTypeCodeInvalid.String(); got != "code-invalid" {
		t.Errorf("String() = %q, want code-invalid", got)
	}
	if got := r4.FlagStatus(0).String(); got != "FlagStatus(0)" {
		t.Errorf("String() = %q", got)
	}
	if got := fmt.Sprint(r4.FlagStatus(0)); got != "FlagStatus(0)" {
		t.Errorf("Sprint() = %q", got)
	}
	if got := fmt.Sprintf("%v/%v", r4.FlagStatusActive, r4.IssueSeverity(99)); got != "active/IssueSeverity(99)" {
		t.Errorf("Sprintf() = %q", got)
	}
}

func TestUnmarshalFlag(t *testing.T) {
	var f r4.Flag
	err := json.Unmarshal([]byte(`{"resourceType":"Flag","id":"f1","status":"inactive","code":{"text":"fall risk"},"subject":{"reference":"Patient/1"}}`), &f)
	if err != nil {
		t.Fatal(err)
	}

	want := r4.Flag{
		Id:      ptr.To("f1"),
		Status:  r4.FlagStatusInactive,
		Code:    r4.CodeableConcept{Text: ptr.To("fall risk")},
		Subject: r4.Reference{Reference: ptr.To("Patient/1")},
	}
	if diff := cmp.Diff(want, f); diff != "" {
		t.Errorf("flag mismatch (-want +got):\n%s", diff)
	}
	if id, ok := f.ResourceId(); id != "f1" || !ok {
		t.Errorf("ResourceId() = %q, %v", id, ok)
	}
}

func TestUnmarshalErrors(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		into    any
		want    string
	}{
		{
			"unknown code",
			`{"resourceType":"Flag","status":"paused","code":{},"subject":{}}`,
			&r4.Flag{},
			`field status: unknown code "paused"`,
		},
		{
			"wrong resourceType",
			`{"resourceType":"Observation","status":"final"}`,
			&r4.Flag{},
			"resourceType: expected Flag, found Observation",
		},
		{
			"unknown field",
			`{"resourceType":"Flag","status":"active","code":{},"subject":{},"colour":"red"}`,
			&r4.Flag{},
			"field colour: not part of the declared type",
		},
		{
			"unknown nested field",
			`{"resourceType":"Flag","status":"active","code":{"colour":"red"},"subject":{}}`,
			&r4.Flag{},
			"field code.colour: not part of the declared type",
		},
		{
			"missing required field",
			`{"resourceType":"Flag","code":{},"subject":{}}`,
			&r4.Flag{},
			"field status: required field missing",
		},
		{
			"null required field",
			`{"resourceType":"Flag","status":null,"code":{},"subject":{}}`,
			&r4.Flag{},
			"field status: required field missing",
		},
		{
			"missing required nested field",
			`{"url":"http://example.org/x","extension":[{"valueString":"a"}]}`,
			&r4.Extension{},
			"field extension[0].url: required field missing",
		},
		{
			"object expected",
			`{"resourceType":"Flag","status":"active","code":"fall risk","subject":{}}`,
			&r4.Flag{},
			"field code: expected object, found string",
		},
		{
			"array expected",
			`{"resourceType":"Flag","status":"active","code":{},"subject":{},"category":{}}`,
			&r4.Flag{},
			"field category: expected array, found object",
		},
		{
			"string expected",
			`{"resourceType":"Flag","id":7,"status":"active","code":{},"subject":{}}`,
			&r4.Flag{},
			"field id: expected string, found number",
		},
		{
			"fractional integer",
			`{"resourceType":"Observation","status":"final","code":{},"valueInteger":5.5}`,
			&r4.Observation{},
			"field valueInteger: expected integer, found number (not an integer: 5.5)",
		},
		{
			"choice conflict",
			`{"resourceType":"Observation","status":"final","code":{},"valueString":"a","valueBoolean":true}`,
			&r4.Observation{},
			"field value[x]: only one alternative may be present, found valueString, valueBoolean",
		},
		{
			"unknown contained type",
			`{"resourceType":"Patient"}`,
			&r4.ContainedResource{},
			"resourceType: expected one of Flag, Observation, Account, OperationOutcome, found Patient",
		},
		{
			"missing contained type",
			`{"id":"x"}`,
			&r4.ContainedResource{},
			"found none",
		},
		{
			"invalid contained resource",
			`{"resourceType":"Observation","status":"final","code":{},"contained":[{"resourceType":"Account"}]}`,
			&r4.Observation{},
			"field contained[0].status: required field missing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := json.Unmarshal([]byte(tt.payload), tt.into)
			if err == nil {
				t.Fatalf("Unmarshal(%s) succeeded", tt.payload)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Unmarshal(%s) = %q, want %q", tt.payload, err.Error(), tt.want)
			}
		})
	}
}

func TestUnmarshalErrorPath(t *testing.T) {
	var o r4.Observation
	err := json.Unmarshal([]byte(`{"resourceType":"Observation","status":"final","code":{},
		"component":[{"code":{}},{"code":{},"valueQuantity":{"value":"60"}}]}`), &o)

	var fe *view.FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("Unmarshal() = %v, want a FieldError", err)
	}
	want := &view.FieldError{Path: "component[1].valueQuantity.value", Expected: view.ShapeDecimal, Found: document.KindString}
	if diff := cmp.Diff(want, fe); diff != "" {
		t.Errorf("error mismatch (-want +got):\n%s", diff)
	}
}

func TestMarshalResourceTypeFirst(t *testing.T) {
	f := r4.Flag{
		Status:  r4.FlagStatusActive,
		Code:    r4.CodeableConcept{Text: ptr.To("fall risk")},
		Subject: r4.Reference{Reference: ptr.To("Patient/1")},
	}
	b, err := json.Marshal(f)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"resourceType":"Flag","status":"active","code":{"text":"fall risk"},"subject":{"reference":"Patient/1"}}`
	if string(b) != want {
		t.Errorf("Marshal() = %s, want %s", b, want)
	}

	_, err = json.Marshal(r4.Flag{})
	if err == nil || !strings.Contains(err.Error(), "FlagStatus(0) is not a member") {
		t.Errorf("Marshal of a flag without status = %v", err)
	}
}

func TestContainedResource(t *testing.T) {
	var o r4.Observation
	err := json.Unmarshal([]byte(`{"resourceType":"Observation","status":"final","code":{"text":"c"},
		"contained":[{"resourceType":"Flag","status":"active","code":{},"subject":{}},{"resourceType":"Account","status":"active"}]}`), &o)
	if err != nil {
		t.Fatal(err)
	}

	var types []string
	for _, c := range o.Contained {
		types = append(types, c.ResourceType())
	}
	if diff := cmp.Diff([]string{"Flag", "Account"}, types); diff != "" {
		t.Errorf("contained types mismatch (-want +got):\n%s", diff)
	}
	if _, ok := o.Contained[0].Resource.(r4.Flag); !ok {
		t.Errorf("contained[0] = %T, want Flag", o.Contained[0].Resource)
	}
}

func TestDecimalLiteral(t *testing.T) {
	var q r4.Quantity
	if err := json.Unmarshal([]byte(`{"value":60.50,"comparator":"<="}`), &q); err != nil {
		t.Fatal(err)
	}
	if q.Value == nil || *q.Value != document.Number("60.50") {
		t.Errorf("Value = %v, want 60.50", q.Value)
	}

	b, err := json.Marshal(q)
	if err != nil {
		t.Fatal(err)
	}
	assert.JSONEqual(t, `{"value":60.50,"comparator":"<="}`, string(b))
}

func TestOperationOutcomeError(t *testing.T) {
	tests := []struct {
		name string
		oo   r4.OperationOutcome
		want string
	}{
		{"no issues", r4.OperationOutcome{}, "operation outcome without issues"},
		{
			"issues",
			r4.OperationOutcome{Issue: []r4.OperationOutcomeIssue{
				{Severity: r4.IssueSeverityError, Code: r4.IssueTypeStructure, Diagnostics: ptr.To("bad")},
				{Severity: r4.IssueSeverityWarning, Code: r4.IssueTypeNotFound},
			}},
			"error: structure: bad; warning: not-found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err model.OperationOutcome = tt.oo
			if err.Error() != tt.want {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	f := r4.Flag{
		Status:  r4.FlagStatusActive,
		Code:    r4.CodeableConcept{Text: ptr.To("fall risk")},
		Subject: r4.Reference{Reference: ptr.To("Patient/1")},
	}
	s := f.String()
	if !strings.Contains(s, `"resourceType": "Flag"`) || !strings.Contains(s, "\n") {
		t.Errorf("String() = %s", s)
	}
	if got := (r4.Flag{}).String(); got != "null" {
		t.Errorf("String() of an invalid flag = %q, want null", got)
	}
}

func TestChoiceFields(t *testing.T) {
	o := r4.Observation{
		Status:    r4.ObservationStatusFinal,
		Code:      r4.CodeableConcept{Text: ptr.To("heart rate")},
		Effective: r4.DateTime{Value: ptr.To("2024-03-01T10:00:00Z")},
		Value: r4.Quantity{
			Value: ptr.To(document.Number("60.50")),
			Unit:  ptr.To("beats/min"),
		},
		Component: []r4.ObservationComponent{
			{Code: r4.CodeableConcept{Text: ptr.To("note")}, Value: r4.String{Element: &r4.PrimitiveElement{Id: ptr.To("n1")}}},
			{Code: r4.CodeableConcept{Text: ptr.To("flag")}, Value: r4.Boolean{Value: ptr.To(true)}},
		},
	}

	b, err := json.Marshal(o)
	if err != nil {
		t.Fatal(err)
	}
	assert.JSONEqual(t, `{
		"resourceType": "Observation",
		"status": "final",
		"code": {"text": "heart rate"},
		"effectiveDateTime": "2024-03-01T10:00:00Z",
		"valueQuantity": {"value": 60.50, "unit": "beats/min"},
		"component": [
			{"code": {"text": "note"}, "_valueString": {"id": "n1"}},
			{"code": {"text": "flag"}, "valueBoolean": true}
		]
	}`, string(b))

	var got r4.Observation
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(o, got); diff != "" {
		t.Errorf("observation mismatch (-want +got):\n%s", diff)
	}
	if _, ok := got.Value.(r4.Quantity); !ok {
		t.Errorf("Value = %T, want Quantity", got.Value)
	}
}

func TestChoiceFieldAbsent(t *testing.T) {
	var o r4.Observation
	if err := json.Unmarshal([]byte(`{"resourceType":"Observation","status":"final","code":{}}`), &o); err != nil {
		t.Fatal(err)
	}
	if o.Value != nil || o.Effective != nil {
		t.Errorf("choices = %v, %v, want nil", o.Value, o.Effective)
	}
}

const flagXML = `<Flag xmlns="http://hl7.org/fhir">
  <id value="f1"/>
  <contained>
    <Account>
      <status value="active"/>
    </Account>
  </contained>
  <extension url="http://example.org/fhir/StructureDefinition/priority">
    <valueCode value="high"/>
  </extension>
  <status value="active">
    <extension url="http://example.org/fhir/StructureDefinition/reason">
      <valueString value="reviewed"/>
    </extension>
  </status>
  <code>
    <text value="fall risk"/>
  </code>
  <subject>
    <reference value="Patient/1"/>
  </subject>
</Flag>`

func TestDecodeXML(t *testing.T) {
	res, err := r4.DecodeResource(strings.NewReader(flagXML), document.FormatXML)
	if err != nil {
		t.Fatal(err)
	}

	want := r4.Flag{
		Id: ptr.To("f1"),
		Contained: []r4.ContainedResource{
			{Resource: r4.Account{Status: r4.AccountStatusActive}},
		},
		Extension: []r4.Extension{{
			Url:   "http://example.org/fhir/StructureDefinition/priority",
			Value: r4.Code{Value: ptr.To("high")},
		}},
		Status: r4.FlagStatusActive,
		StatusElement: &r4.PrimitiveElement{Extension: []r4.Extension{{
			Url:   "http://example.org/fhir/StructureDefinition/reason",
			Value: r4.String{Value: ptr.To("reviewed")},
		}}},
		Code:    r4.CodeableConcept{Text: ptr.To("fall risk")},
		Subject: r4.Reference{Reference: ptr.To("Patient/1")},
	}
	if diff := cmp.Diff(want, res); diff != "" {
		t.Errorf("flag mismatch (-want +got):\n%s", diff)
	}
}

func TestRoundtripXML(t *testing.T) {
	resources := []model.Resource{
		r4.Flag{
			Id:      ptr.To("f1"),
			Status:  r4.FlagStatusInactive,
			Code:    r4.CodeableConcept{Coding: []r4.Coding{{System: ptr.To("http://snomed.info/sct"), Code: ptr.To("129839007")}}},
			Subject: r4.Reference{Reference: ptr.To("Patient/1")},
			Contained: []r4.ContainedResource{
				{Resource: r4.Account{Status: r4.AccountStatusActive, Name: ptr.To("main")}},
			},
		},
		r4.Observation{
			Status:    r4.ObservationStatusFinal,
			Code:      r4.CodeableConcept{Text: ptr.To("heart rate")},
			Effective: r4.Period{Start: ptr.To("2024-03-01")},
			Value:     r4.Quantity{Value: ptr.To(document.Number("60.50")), Comparator: ptr.To(r4.QuantityComparatorLessThan)},
			Component: []r4.ObservationComponent{
				{Code: r4.CodeableConcept{Text: ptr.To("count")}, Value: r4.Integer{Value: ptr.To(int32(3)), Element: &r4.PrimitiveElement{Id: ptr.To("c1")}}},
			},
		},
	}

	for _, res := range resources {
		t.Run(res.ResourceType(), func(t *testing.T) {
			var buf bytes.Buffer
			if err := r4.EncodeResource(&buf, res, document.FormatXML); err != nil {
				t.Fatalf("Failed to encode XML: %v", err)
			}
			if !strings.HasPrefix(buf.String(), "<"+res.ResourceType()+` xmlns="http://hl7.org/fhir">`) {
				t.Errorf("EncodeResource() = %s", buf.String())
			}

			got, err := r4.DecodeResource(&buf, document.FormatXML)
			if err != nil {
				t.Fatalf("Failed to decode XML: %v", err)
			}
			if diff := cmp.Diff(res, got); diff != "" {
				t.Errorf("resource mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEncodeXMLPrimitive(t *testing.T) {
	f := r4.Flag{
		Status:  r4.FlagStatusActive,
		Code:    r4.CodeableConcept{Text: ptr.To("fall risk")},
		Subject: r4.Reference{Reference: ptr.To("Patient/1")},
	}
	var buf bytes.Buffer
	if err := r4.EncodeResource(&buf, f, document.FormatXML); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`<status value="active"></status>`, `<text value="fall risk"></text>`} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("EncodeResource() = %s, want it to contain %s", buf.String(), want)
		}
	}

	if err := r4.EncodeResource(&bytes.Buffer{}, r4.Flag{}, document.FormatXML); err == nil {
		t.Error("EncodeResource of a flag without status succeeded")
	}
}

func TestDecodeXMLErrors(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    string
	}{
		{
			"unknown element",
			`<Flag xmlns="http://hl7.org/fhir"><colour value="red"/><status value="active"/><code/><subject/></Flag>`,
			"field colour: not part of the declared type",
		},
		{
			"unknown attribute",
			`<Flag xmlns="http://hl7.org/fhir"><status value="active"/><code colour="red"/><subject/></Flag>`,
			"field code.@colour: not part of the declared type",
		},
		{
			"missing required field",
			`<Flag xmlns="http://hl7.org/fhir"><code/><subject/></Flag>`,
			"field status: required field missing",
		},
		{
			"missing value",
			`<Flag xmlns="http://hl7.org/fhir"><status/><code/><subject/></Flag>`,
			"field status: required field missing",
		},
		{
			"unknown code",
			`<Flag xmlns="http://hl7.org/fhir"><status value="paused"/><code/><subject/></Flag>`,
			`field status: unknown code "paused"`,
		},
		{
			"bad namespace",
			`<Flag xmlns="urn:example"><status value="active"/><code/><subject/></Flag>`,
			`invalid namespace: "urn:example"`,
		},
		{
			"unknown resource",
			`<Patient xmlns="http://hl7.org/fhir"/>`,
			"resourceType: expected one of Flag, Observation, Account, OperationOutcome, found Patient",
		},
		{
			"choice conflict",
			`<Observation xmlns="http://hl7.org/fhir"><status value="final"/><code/><valueString value="a"/><valueBoolean value="true"/></Observation>`,
			"field value[x]: only one alternative may be present, found valueString, valueBoolean",
		},
		{
			"bad boolean",
			`<Observation xmlns="http://hl7.org/fhir"><status value="final"/><code/><valueBoolean value="yes"/></Observation>`,
			"field valueBoolean: expected boolean",
		},
		{
			"non-finite decimal",
			`<Observation xmlns="http://hl7.org/fhir"><status value="final"/><code/><valueQuantity><value value="NaN"/></valueQuantity></Observation>`,
			"field valueQuantity.value: expected decimal",
		},
		{
			"missing extension url",
			`<Flag xmlns="http://hl7.org/fhir"><extension><valueCode value="high"/></extension><status value="active"/><code/><subject/></Flag>`,
			"field extension.url: required field missing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r4.DecodeResource(strings.NewReader(tt.payload), document.FormatXML)
			if err == nil {
				t.Fatalf("DecodeResource(%s) succeeded", tt.payload)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("DecodeResource(%s) = %q, want %q", tt.payload, err.Error(), tt.want)
			}
		})
	}
}

func TestEncodeResourceYAML(t *testing.T) {
	f := r4.Flag{
		Status:  r4.FlagStatusActive,
		Code:    r4.CodeableConcept{Text: ptr.To("fall risk")},
		Subject: r4.Reference{Reference: ptr.To("Patient/1")},
	}
	var buf bytes.Buffer
	if err := r4.EncodeResource(&buf, f, document.FormatYAML); err != nil {
		t.Fatal(err)
	}
	got, err := r4.DecodeResource(&buf, document.FormatYAML)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(model.Resource(f), got); diff != "" {
		t.Errorf("flag mismatch (-want +got):\n%s", diff)
	}
}
