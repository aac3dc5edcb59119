package view

import "github.com/damedic/fhir-model-go/document"

// Element is a typed view over an encoded element, datatype or resource.
type Element interface {
	// Node returns the document the view reads from.
	Node() document.Value
	// Validate checks that every present field, recursively, has its
	// declared shape. It stops at the first failure.
	Validate(opts ...ValidateOption) error
}

// Resource is a view over an encoded resource.
type Resource interface {
	Element
	ResourceType() string
	ResourceId() (string, bool)
}

// Valid reports whether e validates without error.
func Valid(e Element, opts ...ValidateOption) bool {
	return e.Validate(opts...) == nil
}
