package types

import "strconv"

var _ Value = NewDoubleValue(0)

type DoubleValue float64

// NewDoubleValue returns a Gremlin Double value.
func NewDoubleValue(x float64) DoubleValue {
	return DoubleValue(x)
}

func (v DoubleValue) V() any {
	return float64(v)
}

func (v DoubleValue) Type() Type {
	return TypeDouble
}

func (v DoubleValue) String() string {
	return strconv.FormatFloat(float64(v), 'g', -1, 64)
}
