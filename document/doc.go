// Package document implements the tagged document: an immutable,
// dynamically shaped tree (null, boolean, number, string, array, object)
// that every resource instance is stored in.
//
// Documents are created by parsing a payload (JSON or YAML) or with an
// ObjectBuilder, and are inspected through shape-checked projections
// that report absence instead of failing:
//
//	doc, err := document.Parse(payload)
//	if err != nil {
//		return err
//	}
//	status, ok := doc.Get("status")
//	if s, isString := status.AsString(); ok && isString {
//		fmt.Println(s)
//	}
//
// Values are never modified after construction, so they may be shared
// between goroutines without synchronization.
package document
