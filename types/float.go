package types

import "strconv"

var _ Value = NewFloatValue(0)

type FloatValue float32

// NewFloatValue returns a Gremlin Float value.
func NewFloatValue(x float32) FloatValue {
	return FloatValue(x)
}

func (v FloatValue) V() any {
	return float32(v)
}

func (v FloatValue) Type() Type {
	return TypeFloat
}

func (v FloatValue) String() string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}
