package document_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/damedic/fhir-model-go/document"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    document.Format
		wantErr bool
	}{
		{in: "application/fhir+json", want: document.FormatJSON},
		{in: "application/fhir+json; charset=utf-8", want: document.FormatJSON},
		{in: "application/json", want: document.FormatJSON},
		{in: "json", want: document.FormatJSON},
		{in: "application/fhir+xml", want: document.FormatXML},
		{in: "yaml", want: document.FormatYAML},
		{in: "text/csv", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := document.ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDecodeEncodeJSON(t *testing.T) {
	in := `{"resourceType":"Flag","status":"active"}`
	v, err := document.Decode(strings.NewReader(in), document.FormatJSON)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := document.Encode(&buf, v, document.FormatJSON); err != nil {
		t.Fatal(err)
	}
	if buf.String() != in {
		t.Errorf("Encode() = %s, want %s", buf.String(), in)
	}
}

func TestXMLUnsupported(t *testing.T) {
	_, err := document.Decode(strings.NewReader("<Flag/>"), document.FormatXML)
	if !errors.Is(err, document.ErrUnsupportedFormat) {
		t.Errorf("Decode(xml) error = %v, want ErrUnsupportedFormat", err)
	}
	err = document.Encode(&bytes.Buffer{}, document.Null(), document.FormatXML)
	if !errors.Is(err, document.ErrUnsupportedFormat) {
		t.Errorf("Encode(xml) error = %v, want ErrUnsupportedFormat", err)
	}
}
