package enum_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/damedic/fhir-model-go/enum"
	"github.com/google/go-cmp/cmp"
)

type status uint8

const (
	statusActive status = iota + 1
	statusInactive
	statusEnteredInError
)

var statusCodec = enum.NewCodec("FlagStatus",
	enum.Entry[status]{Tag: statusActive, Code: "active"},
	enum.Entry[status]{Tag: statusInactive, Code: "inactive"},
	enum.Entry[status]{Tag: statusEnteredInError, Code: "entered-in-error"},
)

func TestCodecRoundtrip(t *testing.T) {
	for _, tag := range statusCodec.Values() {
		code := statusCodec.MustCode(tag)
		parsed, ok := statusCodec.Parse(code)
		if !ok {
			t.Fatalf("Parse(%q) failed", code)
		}
		if got := statusCodec.MustCode(parsed); got != code {
			t.Errorf("MustCode(Parse(%q)) = %q", code, got)
		}
	}
}

func TestCodecParse(t *testing.T) {
	tests := []struct {
		code   string
		want   status
		wantOk bool
	}{
		{code: "active", want: statusActive, wantOk: true},
		{code: "entered-in-error", want: statusEnteredInError, wantOk: true},
		{code: "Active", wantOk: false},
		{code: "", wantOk: false},
		{code: "suspended", wantOk: false},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, ok := statusCodec.Parse(tt.code)
			if ok != tt.wantOk || got != tt.want {
				t.Errorf("Parse(%q) = %v, %v, want %v, %v", tt.code, got, ok, tt.want, tt.wantOk)
			}
		})
	}
}

func TestCodecUndeclaredTag(t *testing.T) {
	if _, ok := statusCodec.Code(status(0)); ok {
		t.Errorf("Code() of the zero tag succeeded")
	}
	defer func() {
		if recover() == nil {
			t.Errorf("MustCode() of undeclared tag did not panic")
		}
	}()
	statusCodec.MustCode(status(42))
}

func TestCodecOrder(t *testing.T) {
	want := []string{"active", "inactive", "entered-in-error"}
	if diff := cmp.Diff(want, statusCodec.Codes()); diff != "" {
		t.Errorf("Codes() mismatch (-want +got):\n%s", diff)
	}
	if statusCodec.ValueSet() != "FlagStatus" {
		t.Errorf("ValueSet() = %q", statusCodec.ValueSet())
	}
}

func TestNewCodecRejectsDuplicates(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("NewCodec() with duplicate code did not panic")
		}
	}()
	enum.NewCodec("Broken",
		enum.Entry[status]{Tag: statusActive, Code: "active"},
		enum.Entry[status]{Tag: statusInactive, Code: "active"},
	)
}

func TestCodecDecode(t *testing.T) {
	if got, err := statusCodec.Decode("inactive"); err != nil || got != statusInactive {
		t.Errorf("Decode(inactive) = %v, %v", got, err)
	}
	_, err := statusCodec.Decode("bogus")
	if !errors.Is(err, enum.ErrUnknownCode) {
		t.Errorf("Decode(bogus) error = %v, want ErrUnknownCode", err)
	}
}

func TestCodecText(t *testing.T) {
	if got := statusCodec.String(statusEnteredInError); got != "entered-in-error" {
		t.Errorf("String() = %q", got)
	}
	if got := statusCodec.String(status(9)); got != "FlagStatus(9)" {
		t.Errorf("String() of undeclared tag = %q", got)
	}
	b, err := statusCodec.MarshalText(statusActive)
	if err != nil || string(b) != "active" {
		t.Errorf("MarshalText() = %s, %v", b, err)
	}
	if _, err := statusCodec.MarshalText(status(0)); err == nil {
		t.Errorf("MarshalText() of the zero tag succeeded")
	}
}

// priority formats itself through its codec, the way generated code
// types do.
type priority uint16

const (
	priorityLow priority = iota + 1
	priorityHigh
)

var priorityCodec = enum.NewCodec("Priority",
	enum.Entry[priority]{Tag: priorityLow, Code: "low"},
	enum.Entry[priority]{Tag: priorityHigh, Code: "high"},
)

func (p priority) String() string { return priorityCodec.String(p) }

func (p priority) MarshalText() ([]byte, error) { return priorityCodec.MarshalText(p) }

func TestCodecSelfFormattingTag(t *testing.T) {
	tests := []struct {
		name string
		tag  priority
		want string
	}{
		{name: "declared", tag: priorityHigh, want: "high"},
		{name: "zero", tag: priority(0), want: "Priority(0)"},
		{name: "undeclared", tag: priority(300), want: "Priority(300)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tag.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			if got := fmt.Sprint(tt.tag); got != tt.want {
				t.Errorf("Sprint() = %q, want %q", got, tt.want)
			}
		})
	}

	_, err := priority(0).MarshalText()
	if err == nil || err.Error() != "Priority(0) is not a member of value set Priority" {
		t.Errorf("MarshalText() of the zero tag error = %v", err)
	}
	defer func() {
		r := recover()
		if r != "enum: Priority(7) is not a member of value set Priority" {
			t.Errorf("MustCode() panic = %v", r)
		}
	}()
	priorityCodec.MustCode(priority(7))
}
