/*
Package view holds the runtime shared by generated typed views.

A view wraps a [document.Value] and projects fields lazily on access.
Accessors never panic: a missing field yields ok == false, a field with
the wrong shape yields a *FieldError naming its path.

	status, ok, err := view.Code(node, "status", r4.FlagStatusCodec)

Validate on a generated view walks every present field once and stops at
the first error. Builders assemble documents with the XValue helpers.
*/
package view
