// Package assert holds test assertions shared across packages.
package assert

import (
	"bytes"
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
)

// JSONEqual reports an error if expected and actual are not the same JSON
// value. Member order is ignored; number literals must match exactly.
func JSONEqual(t *testing.T, expected, actual string) {
	t.Helper()
	if diff := cmp.Diff(jsonValue(t, expected), jsonValue(t, actual)); diff != "" {
		t.Errorf("JSON mismatch (-expected +actual):\n%s", diff)
	}
}

func jsonValue(t *testing.T, input string) any {
	t.Helper()
	d := json.NewDecoder(bytes.NewReader([]byte(input)))
	d.UseNumber()

	var v any
	if err := d.Decode(&v); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, input)
	}
	return v
}
