package catalog_test

import (
	"strings"
	"testing"

	"github.com/damedic/fhir-model-go/internal/generate/catalog"
)

func TestR4(t *testing.T) {
	c, err := catalog.R4()
	if err != nil {
		t.Fatal(err)
	}
	if c.Release != "R4" {
		t.Errorf("Release = %q", c.Release)
	}

	var resources []string
	for _, typ := range c.Types {
		if typ.Kind == catalog.KindResource {
			resources = append(resources, typ.Name)
		}
	}
	if got := strings.Join(resources, ","); got != "Flag,Observation,Account,OperationOutcome" {
		t.Errorf("resources = %s", got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"syntax", "release: [", "parse catalog"},
		{"no release", "types: []", "release missing"},
		{
			"empty value set",
			"release: R4\nvalueSets:\n  - name: Empty\n",
			"value set Empty: no codes",
		},
		{
			"unknown kind",
			"release: R4\ntypes:\n  - name: Foo\n    kind: profile\n",
			`type Foo: unknown kind "profile"`,
		},
		{
			"no type",
			"release: R4\ntypes:\n  - name: Foo\n    kind: datatype\n    elements:\n      - name: bar\n",
			"element Foo.bar: exactly one of",
		},
		{
			"two types",
			"release: R4\ntypes:\n  - name: Foo\n    kind: datatype\n    elements:\n      - {name: bar, type: string, contentReference: Foo.baz}\n",
			"element Foo.bar: exactly one of",
		},
		{
			"unknown binding",
			"release: R4\ntypes:\n  - name: Foo\n    kind: datatype\n    elements:\n      - {name: status, type: code, binding: Missing}\n",
			"element Foo.status: unknown value set Missing",
		},
		{
			"bad max",
			"release: R4\ntypes:\n  - name: Foo\n    kind: datatype\n    elements:\n      - {name: bar, type: string, max: \"2\"}\n",
			"element Foo.bar: max must be 1 or *",
		},
		{
			"nested",
			"release: R4\ntypes:\n  - name: Foo\n    kind: resource\n    elements:\n      - name: part\n        elements:\n          - {name: bar}\n",
			"element Foo.part.bar",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := catalog.Load("testdata/does-not-exist.yaml"); err == nil {
		t.Error("Load of a missing file succeeded")
	}
}
