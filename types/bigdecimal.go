package types

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

var _ Value = NewBigDecimalValue(nil, 0)

// BigDecimalValue is an arbitrary-precision signed scaled decimal:
// its numeric value is unscaled * 10^-scale. Unscaled value and scale
// are preserved exactly through every encode/decode round trip.
type BigDecimalValue struct {
	unscaled *big.Int
	scale    int32
}

// NewBigDecimalValue returns a Gremlin BigDecimal value. The unscaled
// input is copied; a nil input means zero.
func NewBigDecimalValue(unscaled *big.Int, scale int32) BigDecimalValue {
	i := new(big.Int)
	if unscaled != nil {
		i.Set(unscaled)
	}
	return BigDecimalValue{unscaled: i, scale: scale}
}

// ParseBigDecimalValue parses a plain decimal text form, with an
// optional fraction and exponent: [+-]digits[.digits][(e|E)[+-]digits].
func ParseBigDecimalValue(s string) (BigDecimalValue, error) {
	mant := s
	var exp int64

	if i := strings.IndexAny(s, "eE"); i >= 0 {
		var err error
		exp, err = strconv.ParseInt(s[i+1:], 10, 32)
		if err != nil {
			return BigDecimalValue{}, errors.Errorf("invalid decimal exponent %q", s)
		}
		mant = s[:i]
	}

	var scale int64
	if i := strings.IndexByte(mant, '.'); i >= 0 {
		scale = int64(len(mant) - i - 1)
		mant = mant[:i] + mant[i+1:]
	}
	scale -= exp

	if mant == "" || mant == "+" || mant == "-" {
		return BigDecimalValue{}, errors.Errorf("invalid decimal %q", s)
	}

	unscaled, ok := new(big.Int).SetString(mant, 10)
	if !ok {
		return BigDecimalValue{}, errors.Errorf("invalid decimal %q", s)
	}
	if scale > 1<<31-1 || scale < -(1<<31) {
		return BigDecimalValue{}, errors.Errorf("decimal scale out of range in %q", s)
	}

	return BigDecimalValue{unscaled: unscaled, scale: int32(scale)}, nil
}

func (v BigDecimalValue) V() any {
	return v
}

func (v BigDecimalValue) Type() Type {
	return TypeBigDecimal
}

// Unscaled returns a copy of the unscaled integer.
func (v BigDecimalValue) Unscaled() *big.Int {
	i := new(big.Int)
	if v.unscaled != nil {
		i.Set(v.unscaled)
	}
	return i
}

func (v BigDecimalValue) Scale() int32 {
	return v.scale
}

// String renders the decimal text form: plain notation for
// non-negative scales, exponent notation for negative scales (5E+2,
// like Java's BigDecimal) so the scale survives a text round trip.
func (v BigDecimalValue) String() string {
	u := v.unscaled
	if u == nil {
		u = new(big.Int)
	}

	digits := u.String()
	var sign string
	if strings.HasPrefix(digits, "-") {
		sign = "-"
		digits = digits[1:]
	}

	switch {
	case v.scale == 0:
		return sign + digits
	case v.scale < 0:
		return sign + digits + "E+" + strconv.FormatInt(-int64(v.scale), 10)
	case int(v.scale) >= len(digits):
		return sign + "0." + strings.Repeat("0", int(v.scale)-len(digits)) + digits
	default:
		p := len(digits) - int(v.scale)
		return sign + digits[:p] + "." + digits[p:]
	}
}

func (v BigDecimalValue) unscaledInt() *big.Int {
	if v.unscaled == nil {
		return new(big.Int)
	}
	return v.unscaled
}
