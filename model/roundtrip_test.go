package model_test

import (
	"bytes"
	"testing"

	"github.com/goccy/go-json"

	"github.com/damedic/fhir-model-go/document"
	"github.com/damedic/fhir-model-go/model/gen/r4"
	"github.com/damedic/fhir-model-go/model/gen/r4view"
	"github.com/damedic/fhir-model-go/testdata"
	"github.com/damedic/fhir-model-go/testdata/assert"
	"github.com/damedic/fhir-model-go/view"
)

func TestRoundtripJSON(t *testing.T) {
	for name, jsonIn := range testdata.GetExamples("json") {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var r r4.ContainedResource
			if err := json.Unmarshal(jsonIn, &r); err != nil {
				t.Fatalf("Failed to unmarshal JSON: %v", err)
			}

			jsonOut, err := json.Marshal(r)
			if err != nil {
				t.Fatalf("Failed to marshal JSON: %v", err)
			}

			assert.JSONEqual(t, string(jsonIn), string(jsonOut))
		})
	}
}

func TestRoundtripView(t *testing.T) {
	for name, jsonIn := range testdata.GetExamples("json") {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			r, err := r4view.Decode(jsonIn)
			if err != nil {
				t.Fatalf("Failed to decode: %v", err)
			}

			jsonOut, err := json.Marshal(r)
			if err != nil {
				t.Fatalf("Failed to marshal JSON: %v", err)
			}

			assert.JSONEqual(t, string(jsonIn), string(jsonOut))
		})
	}
}

func TestRoundtripYAML(t *testing.T) {
	for name, jsonIn := range testdata.GetExamples("json") {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			n, err := document.Parse(jsonIn)
			if err != nil {
				t.Fatalf("Failed to parse: %v", err)
			}

			var yamlOut bytes.Buffer
			if err := document.Encode(&yamlOut, n, document.FormatYAML); err != nil {
				t.Fatalf("Failed to encode YAML: %v", err)
			}

			r, err := r4view.DecodeFormat(&yamlOut, document.FormatYAML)
			if err != nil {
				t.Fatalf("Failed to decode YAML: %v", err)
			}

			jsonOut, err := json.Marshal(r)
			if err != nil {
				t.Fatalf("Failed to marshal JSON: %v", err)
			}

			assert.JSONEqual(t, string(jsonIn), string(jsonOut))
		})
	}
}

func TestRoundtripXML(t *testing.T) {
	for name, jsonIn := range testdata.GetExamples("json") {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			res, err := r4.DecodeResource(bytes.NewReader(jsonIn), document.FormatJSON)
			if err != nil {
				t.Fatalf("Failed to decode JSON: %v", err)
			}

			var xmlOut bytes.Buffer
			if err := r4.EncodeResource(&xmlOut, res, document.FormatXML); err != nil {
				t.Fatalf("Failed to encode XML: %v", err)
			}

			back, err := r4.DecodeResource(&xmlOut, document.FormatXML)
			if err != nil {
				t.Fatalf("Failed to decode XML: %v", err)
			}

			jsonOut, err := json.Marshal(back)
			if err != nil {
				t.Fatalf("Failed to marshal JSON: %v", err)
			}

			assert.JSONEqual(t, string(jsonIn), string(jsonOut))
		})
	}
}

func TestViewStructConversion(t *testing.T) {
	for name, jsonIn := range testdata.GetExamples("json") {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			v, err := r4view.Decode(jsonIn)
			if err != nil {
				t.Fatalf("Failed to decode: %v", err)
			}

			s, err := view.ToStruct[r4.ContainedResource](v)
			if err != nil {
				t.Fatalf("Failed to convert to struct: %v", err)
			}
			if s.ResourceType() != v.ResourceType() {
				t.Errorf("struct resourceType = %s, want %s", s.ResourceType(), v.ResourceType())
			}

			back, err := view.FromStruct(s, func(n document.Value) document.Value { return n })
			if err != nil {
				t.Fatalf("Failed to convert from struct: %v", err)
			}
			if !back.Equal(v.Node()) {
				t.Errorf("document changed by struct conversion:\n%s", back)
			}
		})
	}
}
