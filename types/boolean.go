package types

import "strconv"

var _ Value = NewBooleanValue(false)

type BooleanValue bool

// NewBooleanValue returns a Gremlin Boolean value.
func NewBooleanValue(x bool) BooleanValue {
	return BooleanValue(x)
}

func (v BooleanValue) V() any {
	return bool(v)
}

func (v BooleanValue) Type() Type {
	return TypeBoolean
}

func (v BooleanValue) String() string {
	return strconv.FormatBool(bool(v))
}
