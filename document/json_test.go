package document_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/damedic/fhir-model-go/document"
)

func TestParseRoundtrip(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "flag", in: `{"resourceType":"Flag","status":"active","code":{"text":"fall risk"},"subject":{"reference":"Patient/1"}}`},
		{name: "member order", in: `{"z":1,"a":2,"m":3}`},
		{name: "number literals", in: `{"a":1.50,"b":-0.0,"c":1e-17,"d":12345678901234567890}`},
		{name: "primitive extension sibling", in: `{"status":"final","_status":{"extension":[{"url":"http://example.com","valueString":"x"}]}}`},
		{name: "null in array", in: `{"given":["a",null,"b"],"_given":[null,{"id":"1"},null]}`},
		{name: "no html escaping", in: `{"div":"<div>a & b</div>"}`},
		{name: "unicode", in: `{"text":"Blutdruck über 140 – ✓"}`},
		{name: "escapes", in: `{"text":"line\nbreak \"quoted\" \\ tab\t"}`},
		{name: "scalar root", in: `"x"`},
		{name: "empty containers", in: `{"a":[],"b":{}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := document.Parse([]byte(tt.in))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			out, err := v.MarshalJSON()
			if err != nil {
				t.Fatalf("MarshalJSON() error = %v", err)
			}
			if string(out) != tt.in {
				t.Errorf("roundtrip mismatch\n got: %s\nwant: %s", out, tt.in)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantMsg string
	}{
		{name: "duplicate key", in: `{"a":1,"b":{"c":1,"c":2}}`, wantMsg: `at /b: duplicate key "c"`},
		{name: "trailing data", in: `{"a":1} {"b":2}`, wantMsg: "trailing"},
		{name: "truncated", in: `{"a":[1,2`, wantMsg: "invalid document"},
		{name: "empty", in: ``, wantMsg: "invalid document"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := document.Parse([]byte(tt.in))
			if err == nil {
				t.Fatal("Parse() succeeded, want error")
			}
			var syntaxErr *document.SyntaxError
			if !errors.As(err, &syntaxErr) {
				t.Errorf("error %T is not a *SyntaxError", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not contain %q", err, tt.wantMsg)
			}
		})
	}
}

func TestValueUnmarshalJSON(t *testing.T) {
	var holder struct {
		Payload document.Value `json:"payload"`
	}
	err := jsonUnmarshal([]byte(`{"payload":{"x":[true,null]}}`), &holder)
	if err != nil {
		t.Fatal(err)
	}
	x, ok := holder.Payload.Get("x")
	if !ok || x.Len() != 2 {
		t.Errorf("payload = %v", holder.Payload)
	}
}

func TestNumberJSON(t *testing.T) {
	var holder struct {
		Value *document.Number `json:"value,omitempty"`
	}
	if err := jsonUnmarshal([]byte(`{"value":0.10}`), &holder); err != nil {
		t.Fatal(err)
	}
	if holder.Value == nil || *holder.Value != "0.10" {
		t.Fatalf("value = %v", holder.Value)
	}
	out, err := jsonMarshal(holder)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `{"value":0.10}` {
		t.Errorf("marshal = %s", out)
	}
	if err := jsonUnmarshal([]byte(`{"value":"0.10"}`), &holder); err == nil {
		t.Errorf("string accepted as number")
	}
}
