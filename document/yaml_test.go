package document_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/damedic/fhir-model-go/document"
)

func TestParseYAMLMatchesJSON(t *testing.T) {
	yamlIn := `
resourceType: Observation
status: final
code:
  text: Blood pressure
component:
  - code: {text: systolic}
    valueQuantity:
      value: 120.50
      unit: mmHg
  - code: {text: flag}
    valueBoolean: true
note: ~
`
	jsonIn := `{
		"resourceType": "Observation",
		"status": "final",
		"code": {"text": "Blood pressure"},
		"component": [
			{"code": {"text": "systolic"}, "valueQuantity": {"value": 120.50, "unit": "mmHg"}},
			{"code": {"text": "flag"}, "valueBoolean": true}
		],
		"note": null
	}`

	fromYAML, err := document.ParseYAML([]byte(yamlIn))
	if err != nil {
		t.Fatalf("ParseYAML() error = %v", err)
	}
	fromJSON, err := document.Parse([]byte(jsonIn))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !fromYAML.Equal(fromJSON) {
		t.Errorf("documents differ\nyaml: %v\njson: %v", fromYAML, fromJSON)
	}

	c, _ := fromYAML.Get("component")
	first, _ := c.Index(0)
	q, _ := first.Get("valueQuantity")
	v, _ := q.Get("value")
	if n, _ := v.AsNumber(); n != "120.50" {
		t.Errorf("decimal literal = %q, want 120.50", n)
	}
}

func TestParseYAMLScalars(t *testing.T) {
	v, err := document.ParseYAML([]byte(`
quoted: "true"
number: 7
text: plain
date: 2024-01-02
`))
	if err != nil {
		t.Fatal(err)
	}
	tests := map[string]document.Kind{
		"quoted": document.KindString,
		"number": document.KindNumber,
		"text":   document.KindString,
		"date":   document.KindString,
	}
	for key, want := range tests {
		got, _ := v.Get(key)
		if got.Kind() != want {
			t.Errorf("%s: kind = %v, want %v", key, got.Kind(), want)
		}
	}
}

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "duplicate key", in: "a: 1\na: 2\n"},
		{name: "complex key", in: "? [a, b]\n: 1\n"},
		{name: "infinity", in: "a: .inf\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := document.ParseYAML([]byte(tt.in))
			var syntaxErr *document.SyntaxError
			if !errors.As(err, &syntaxErr) {
				t.Errorf("ParseYAML() error = %v, want *SyntaxError", err)
			}
		})
	}
}

func TestEncodeYAMLRoundtrip(t *testing.T) {
	in, err := document.Parse([]byte(`{"status":"true","count":3,"ratio":0.25,"items":["a",null],"nested":{"flag":false}}`))
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := document.Encode(&buf, in, document.FormatYAML); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if !strings.Contains(buf.String(), `status: "true"`) {
		t.Errorf("string that looks like a bool is not quoted:\n%s", buf.String())
	}

	out, err := document.Decode(&buf, document.FormatYAML)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if !out.Equal(in) {
		t.Errorf("roundtrip mismatch\n got: %v\nwant: %v", out, in)
	}
}
