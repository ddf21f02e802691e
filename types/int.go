package types

import "strconv"

var _ Value = NewIntValue(0)

type IntValue int32

// NewIntValue returns a Gremlin Int32 value.
func NewIntValue(x int32) IntValue {
	return IntValue(x)
}

func (v IntValue) V() any {
	return int32(v)
}

func (v IntValue) Type() Type {
	return TypeInt
}

func (v IntValue) String() string {
	return strconv.FormatInt(int64(v), 10)
}
