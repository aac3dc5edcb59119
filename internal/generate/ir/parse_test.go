package ir_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/damedic/fhir-model-go/internal/generate/catalog"
	"github.com/damedic/fhir-model-go/internal/generate/ir"
)

const testCatalog = `
release: R4
valueSets:
  - name: WidgetStatus
    url: http://example.org/ValueSet/widget-status
    codes:
      - {code: "on", display: "On"}
      - {code: "off", display: "Off"}
types:
  - name: Widget
    kind: resource
    doc: A widget.
    elements:
      - {name: status, type: code, min: 1, binding: WidgetStatus}
      - {name: "reading[x]", types: [Quantity, string, boolean]}
      - name: part
        max: "*"
        elements:
          - {name: label, type: string, min: 1}
          - {name: part, contentReference: Widget.part, max: "*"}
  - name: Quantity
    kind: datatype
    elements:
      - {name: value, type: decimal}
`

func parse(t *testing.T) []ir.ResourceOrType {
	t.Helper()
	c, err := catalog.Parse([]byte(testCatalog))
	if err != nil {
		t.Fatal(err)
	}
	return ir.Parse(c)
}

func fieldNames(s ir.Struct) []string {
	var names []string
	for _, f := range s.Fields {
		names = append(names, f.MarshalName)
	}
	return names
}

func TestParseStructs(t *testing.T) {
	rt := parse(t)
	if len(rt) != 2 {
		t.Fatalf("got %d types", len(rt))
	}

	widget := rt[0]
	if widget.FileName != "widget" || !widget.IsResource {
		t.Errorf("widget = %+v", widget)
	}

	var structs []string
	for _, s := range widget.Structs {
		structs = append(structs, s.Name+"="+s.MarshalName)
	}
	if diff := cmp.Diff([]string{"Widget=Widget", "WidgetPart=Widget.part"}, structs); diff != "" {
		t.Errorf("structs mismatch (-want +got):\n%s", diff)
	}

	tests := []struct {
		name string
		s    ir.Struct
		want []string
	}{
		{"resource", widget.Structs[0], []string{"id", "meta", "contained", "extension", "modifierExtension", "status", "reading", "part"}},
		{"backbone", widget.Structs[1], []string{"id", "extension", "modifierExtension", "label", "part"}},
		{"datatype", rt[1].Structs[0], []string{"id", "extension", "value"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, fieldNames(tt.s)); diff != "" {
				t.Errorf("fields mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseFields(t *testing.T) {
	rt := parse(t)
	widget := rt[0].Structs[0]
	part := rt[0].Structs[1]

	status := widget.Fields[5]
	if status.Optional || status.Multiple {
		t.Errorf("status = %+v", status)
	}
	if vs, ok := status.RequiredValueSet(); !ok || vs != "WidgetStatus" {
		t.Errorf("RequiredValueSet() = %q, %v", vs, ok)
	}

	reading := widget.Fields[6]
	if !reading.Polymorph || reading.Name != "Reading" {
		t.Errorf("reading = %+v", reading)
	}
	wantKeys := []string{"readingQuantity", "readingString", "_readingString", "readingBoolean", "_readingBoolean"}
	if diff := cmp.Diff(wantKeys, reading.ChoiceKeys()); diff != "" {
		t.Errorf("ChoiceKeys() mismatch (-want +got):\n%s", diff)
	}

	if got := widget.Fields[7].PossibleTypes[0].Name; got != "WidgetPart" {
		t.Errorf("part type = %s", got)
	}
	if got := part.Fields[4].PossibleTypes[0].Name; got != "WidgetPart" {
		t.Errorf("content reference type = %s", got)
	}

	id := part.Fields[0].PossibleTypes[0]
	if !id.IsPrimitive || !id.IsSystem || id.HasElement() {
		t.Errorf("element id type = %+v", id)
	}
	contained := widget.Fields[2]
	if !contained.Multiple || !contained.PossibleTypes[0].IsNestedResource {
		t.Errorf("contained = %+v", contained)
	}
}

func TestPolymorphs(t *testing.T) {
	rt := parse(t)

	choices := ir.Polymorphs(rt)
	if len(choices) != 1 || choices[0].InterfaceName() != "WidgetReading" {
		t.Fatalf("Polymorphs() = %+v", choices)
	}
	if diff := cmp.Diff([]string{"boolean", "string"}, ir.PrimitiveAlternatives(rt)); diff != "" {
		t.Errorf("PrimitiveAlternatives() mismatch (-want +got):\n%s", diff)
	}
	if got := len(ir.FilterResources(rt)); got != 1 {
		t.Errorf("FilterResources() = %d resources", got)
	}
}

func TestValueSets(t *testing.T) {
	c, err := catalog.Parse([]byte(testCatalog))
	if err != nil {
		t.Fatal(err)
	}
	want := []ir.ValueSet{{
		Name: "WidgetStatus",
		URL:  "http://example.org/ValueSet/widget-status",
		Concepts: []ir.Concept{
			{Code: "on", Display: "On"},
			{Code: "off", Display: "Off"},
		},
	}}
	if diff := cmp.Diff(want, ir.ValueSets(c)); diff != "" {
		t.Errorf("ValueSets() mismatch (-want +got):\n%s", diff)
	}
}

func TestR4Catalog(t *testing.T) {
	c, err := catalog.R4()
	if err != nil {
		t.Fatal(err)
	}
	rt := ir.Parse(c)

	var interfaces []string
	for _, ch := range ir.Polymorphs(rt) {
		interfaces = append(interfaces, ch.InterfaceName())
	}
	want := []string{"ExtensionValue", "AnnotationAuthor", "ObservationEffective", "ObservationValue", "ObservationComponentValue"}
	if diff := cmp.Diff(want, interfaces); diff != "" {
		t.Errorf("choice interfaces mismatch (-want +got):\n%s", diff)
	}
}
