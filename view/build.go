package view

import (
	"github.com/cockroachdb/apd/v3"

	"github.com/damedic/fhir-model-go/document"
	"github.com/damedic/fhir-model-go/enum"
)

// Encoders used by generated builders to turn typed values back into
// document values.

func StringValue(s string) document.Value { return document.String(s) }

func BoolValue(b bool) document.Value { return document.Bool(b) }

func Int32Value(i int32) document.Value { return document.Int(int64(i)) }

func Uint32Value(u uint32) document.Value { return document.Int(int64(u)) }

// DecimalValue keeps the exponent of d, so 1.50 stays 1.50.
func DecimalValue(d *apd.Decimal) document.Value { return document.Decimal(d) }

// CodeValue encodes t through c. It panics for tags c does not declare.
func CodeValue[T enum.Tag](c *enum.Codec[T], t T) document.Value {
	return document.String(c.MustCode(t))
}

func NodeValue[T Element](e T) document.Value { return e.Node() }

func ListValue[T Element](list []T) document.Value {
	values := make([]document.Value, len(list))
	for i, e := range list {
		values[i] = e.Node()
	}
	return document.Array(values...)
}

// SparseListValue encodes nil entries as null.
func SparseListValue[T Element](list []*T) document.Value {
	values := make([]document.Value, len(list))
	for i, e := range list {
		if e != nil {
			values[i] = (*e).Node()
		}
	}
	return document.Array(values...)
}

// StringsValue encodes a repeated string-like primitive. Nil entries
// become null so that they line up with a "_" sibling.
func StringsValue(list []*string) document.Value {
	values := make([]document.Value, len(list))
	for i, s := range list {
		if s != nil {
			values[i] = document.String(*s)
		}
	}
	return document.Array(values...)
}
