package ptr_test

import (
	"testing"

	"github.com/damedic/fhir-model-go/utils/ptr"
)

func TestTo(t *testing.T) {
	v := 3
	p := ptr.To(v)
	v = 4
	if *p != 3 {
		t.Errorf("To() aliases its argument")
	}
}

func TestDeref(t *testing.T) {
	if got := ptr.Deref[string](nil, "def"); got != "def" {
		t.Errorf("Deref(nil) = %q", got)
	}
	if got := ptr.Deref(ptr.To("x"), "def"); got != "x" {
		t.Errorf("Deref() = %q", got)
	}
}
