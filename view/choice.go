package view

import "github.com/damedic/fhir-model-go/document"

// Probe returns the first key base+suffix present in n, trying suffixes
// in their declared order.
func Probe(n document.Value, base string, suffixes ...string) (string, bool) {
	for _, s := range suffixes {
		if _, ok := Lookup(n, base+s); ok {
			return base + s, true
		}
	}
	return "", false
}

// Present returns the subset of keys present in n, in the given order.
func Present(n document.Value, keys ...string) []string {
	var present []string
	for _, k := range keys {
		if _, ok := Lookup(n, k); ok {
			present = append(present, k)
		}
	}
	return present
}

// Resolve reads one alternative through get and converts it to the
// choice type I. Generated unified choice accessors call it after Probe.
func Resolve[I, T any](get func() (T, bool, error), conv func(T) I) (I, bool, error) {
	var zero I
	v, ok, err := get()
	if err != nil || !ok {
		return zero, false, err
	}
	return conv(v), true, nil
}
