package types

import "math/big"

var _ Value = NewBigIntegerValue(nil)

type BigIntegerValue struct {
	i *big.Int
}

// NewBigIntegerValue returns a Gremlin BigInteger value. The input is
// copied; a nil input means zero.
func NewBigIntegerValue(x *big.Int) BigIntegerValue {
	i := new(big.Int)
	if x != nil {
		i.Set(x)
	}
	return BigIntegerValue{i: i}
}

// NewBigIntegerFromInt64 returns a BigInteger holding x.
func NewBigIntegerFromInt64(x int64) BigIntegerValue {
	return BigIntegerValue{i: big.NewInt(x)}
}

// ParseBigIntegerValue parses a signed decimal digit string.
func ParseBigIntegerValue(s string) (BigIntegerValue, bool) {
	i, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return BigIntegerValue{}, false
	}
	return BigIntegerValue{i: i}, true
}

func (v BigIntegerValue) V() any {
	return v.Int()
}

func (v BigIntegerValue) Type() Type {
	return TypeBigInteger
}

// Int returns a copy of the underlying integer.
func (v BigIntegerValue) Int() *big.Int {
	i := new(big.Int)
	if v.i != nil {
		i.Set(v.i)
	}
	return i
}

func (v BigIntegerValue) String() string {
	if v.i == nil {
		return "0"
	}
	return v.i.String()
}

func (v BigIntegerValue) int() *big.Int {
	if v.i == nil {
		return new(big.Int)
	}
	return v.i
}
