package types

import "strconv"

var _ Value = NewLongValue(0)

type LongValue int64

// NewLongValue returns a Gremlin Int64 value.
func NewLongValue(x int64) LongValue {
	return LongValue(x)
}

func (v LongValue) V() any {
	return int64(v)
}

func (v LongValue) Type() Type {
	return TypeLong
}

func (v LongValue) String() string {
	return strconv.FormatInt(int64(v), 10)
}
