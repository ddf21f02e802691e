package types

import (
	"math"
	"math/big"

	"github.com/cockroachdb/errors"
)

// Numeric adapter: lossless bridging between the fixed-width numeric
// variants and the arbitrary-precision representations. Codecs rely on
// it to never silently truncate a wide value.

// ToBigInt widens an integer variant to an arbitrary-precision
// integer. Only Int32, Int64 and BigInteger qualify; everything else
// is ErrTypeMismatch.
func ToBigInt(v Value) (*big.Int, error) {
	switch v.Type() {
	case TypeInt:
		return big.NewInt(int64(AsInt32(v))), nil
	case TypeLong:
		return big.NewInt(AsInt64(v)), nil
	case TypeBigInteger:
		return v.(BigIntegerValue).Int(), nil
	}

	return nil, errors.Wrapf(ErrTypeMismatch, "cannot widen %s to a big integer", v.Type())
}

// NarrowBigInt narrows x to an int64 if it fits without loss.
// ok is false on overflow; the caller must keep the wide form.
func NarrowBigInt(x *big.Int) (int64, bool) {
	if !x.IsInt64() {
		return 0, false
	}
	return x.Int64(), true
}

// NarrowValue returns the smallest integer variant holding x without
// loss: Int32, then Int64, then BigInteger.
func NarrowValue(x *big.Int) Value {
	n, ok := NarrowBigInt(x)
	if !ok {
		return NewBigIntegerValue(x)
	}
	if n >= math.MinInt32 && n <= math.MaxInt32 {
		return NewIntValue(int32(n))
	}
	return NewLongValue(n)
}

// ToBigDecimal widens a value to its exact unscaled/scale
// representation. Integer variants widen with scale zero.
func ToBigDecimal(v Value) (*big.Int, int32, error) {
	if v.Type() == TypeBigDecimal {
		d := v.(BigDecimalValue)
		return d.Unscaled(), d.Scale(), nil
	}

	i, err := ToBigInt(v)
	if err != nil {
		return nil, 0, errors.Wrapf(ErrTypeMismatch, "cannot widen %s to a big decimal", v.Type())
	}
	return i, 0, nil
}
