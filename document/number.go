package document

import (
	"fmt"
	"strconv"

	"github.com/cockroachdb/apd/v3"
)

// Number is the literal text of a JSON number.
//
// The literal is kept as written so that decimals such as 1.50 keep their
// precision through a decode/encode round trip.
type Number string

// NumberFromDecimal returns the literal for d.
func NumberFromDecimal(d *apd.Decimal) Number {
	return Number(d.Text('G'))
}

func (n Number) String() string { return string(n) }

// Int64 returns the number as an integer. It fails if the number
// has a fractional part or does not fit.
func (n Number) Int64() (int64, error) {
	if i, err := strconv.ParseInt(string(n), 10, 64); err == nil {
		return i, nil
	}
	d, err := n.Decimal()
	if err != nil {
		return 0, err
	}
	i, err := d.Int64()
	if err != nil {
		return 0, fmt.Errorf("number %s is not an integer: %w", n, err)
	}
	return i, nil
}

// Float64 returns the number as a float.
func (n Number) Float64() (float64, error) {
	return strconv.ParseFloat(string(n), 64)
}

// Decimal returns the number as an arbitrary precision decimal.
func (n Number) Decimal() (*apd.Decimal, error) {
	d, _, err := apd.NewFromString(string(n))
	if err != nil {
		return nil, fmt.Errorf("invalid number %q: %w", string(n), err)
	}
	return d, nil
}

// Equal compares two numbers by value.
func (n Number) Equal(other Number) bool {
	if n == other {
		return true
	}
	a, err := n.Decimal()
	if err != nil {
		return false
	}
	b, err := other.Decimal()
	if err != nil {
		return false
	}
	return a.Cmp(b) == 0
}

// MarshalJSON writes the literal verbatim.
func (n Number) MarshalJSON() ([]byte, error) {
	if n == "" {
		return []byte("null"), nil
	}
	if _, err := n.Decimal(); err != nil {
		return nil, err
	}
	return []byte(n), nil
}

// UnmarshalJSON accepts a JSON number and keeps its literal.
func (n *Number) UnmarshalJSON(b []byte) error {
	v, err := Parse(b)
	if err != nil {
		return err
	}
	switch v.Kind() {
	case KindNull:
		*n = ""
		return nil
	case KindNumber:
		*n, _ = v.AsNumber()
		return nil
	default:
		return fmt.Errorf("cannot unmarshal %s into number", v.Kind())
	}
}
