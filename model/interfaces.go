// Package model declares what every generated release has in common, so
// that code can handle resources without importing a release package.
package model

import "fmt"

// Element is a resource, datatype or backbone element. Its String form
// is the indented JSON encoding.
type Element interface {
	fmt.Stringer
}

// Resource is implemented by every resource struct. ResourceId reports
// false when the resource carries no id.
type Resource interface {
	Element
	ResourceType() string
	ResourceId() (string, bool)
}

// OperationOutcome is implemented by the OperationOutcome struct of each
// release. Its error message summarises the issues.
type OperationOutcome interface {
	Resource
	error
}
