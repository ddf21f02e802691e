package types

import (
	"bytes"
	"math/big"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

// Equal reports deep structural equality. Values of different variants
// are never equal; the comparison recurses into containers. This is
// the relation used for set membership and map keys.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return IsNull(a) && IsNull(b)
	}
	if a.Type() != b.Type() {
		return false
	}

	switch a.Type() {
	case TypeNull:
		return true
	case TypeBoolean:
		return AsBool(a) == AsBool(b)
	case TypeInt:
		return AsInt32(a) == AsInt32(b)
	case TypeLong:
		return AsInt64(a) == AsInt64(b)
	case TypeFloat:
		return AsFloat32(a) == AsFloat32(b)
	case TypeDouble:
		return AsFloat64(a) == AsFloat64(b)
	case TypeString:
		return AsString(a) == AsString(b)
	case TypeByteBuffer:
		return bytes.Equal(a.(ByteBufferValue).b, b.(ByteBufferValue).b)
	case TypeUUID:
		return AsUUID(a) == AsUUID(b)
	case TypeBigInteger:
		return a.(BigIntegerValue).int().Cmp(b.(BigIntegerValue).int()) == 0
	case TypeBigDecimal:
		// exact equality: same unscaled value and same scale,
		// so 1.0 and 1.00 are distinct keys
		da, db := a.(BigDecimalValue), b.(BigDecimalValue)
		return da.scale == db.scale && da.unscaledInt().Cmp(db.unscaledInt()) == 0
	case TypeTimestamp:
		return time.Time(a.(TimestampValue)).Equal(time.Time(b.(TimestampValue)))
	case TypeList:
		la, lb := a.(ListValue), b.(ListValue)
		if len(la.elems) != len(lb.elems) {
			return false
		}
		for i := range la.elems {
			if !Equal(la.elems[i], lb.elems[i]) {
				return false
			}
		}
		return true
	case TypeSet:
		sa, sb := a.(SetValue), b.(SetValue)
		if len(sa.elems) != len(sb.elems) {
			return false
		}
		for i := range sa.elems {
			if !Equal(sa.elems[i], sb.elems[i]) {
				return false
			}
		}
		return true
	case TypeMap:
		ma, mb := a.(MapValue), b.(MapValue)
		if len(ma.pairs) != len(mb.pairs) {
			return false
		}
		for i := range ma.pairs {
			if !Equal(ma.pairs[i].Key, mb.pairs[i].Key) ||
				!Equal(ma.pairs[i].Value, mb.pairs[i].Value) {
				return false
			}
		}
		return true
	case TypeExtension:
		ea, eb := a.(ExtensionValue), b.(ExtensionValue)
		return ea.name == eb.name && Equal(ea.payload, eb.payload)
	}

	return false
}

// Compare returns a total order between two values of the same
// variant. Cross-variant ordering is undefined and fails fast with
// ErrTypeMismatch.
func Compare(a, b Value) (int, error) {
	if a == nil {
		a = NewNullValue()
	}
	if b == nil {
		b = NewNullValue()
	}
	if a.Type() != b.Type() {
		return 0, errors.Wrapf(ErrTypeMismatch, "cannot order %s against %s", a.Type(), b.Type())
	}

	switch a.Type() {
	case TypeNull:
		return 0, nil
	case TypeBoolean:
		return cmpBool(AsBool(a), AsBool(b)), nil
	case TypeInt:
		return cmpOrdered(AsInt32(a), AsInt32(b)), nil
	case TypeLong:
		return cmpOrdered(AsInt64(a), AsInt64(b)), nil
	case TypeFloat:
		return cmpOrdered(AsFloat32(a), AsFloat32(b)), nil
	case TypeDouble:
		return cmpOrdered(AsFloat64(a), AsFloat64(b)), nil
	case TypeString:
		return strings.Compare(AsString(a), AsString(b)), nil
	case TypeByteBuffer:
		return bytes.Compare(a.(ByteBufferValue).b, b.(ByteBufferValue).b), nil
	case TypeUUID:
		ua, ub := uuid.UUID(AsUUID(a)), uuid.UUID(AsUUID(b))
		return bytes.Compare(ua[:], ub[:]), nil
	case TypeBigInteger:
		return a.(BigIntegerValue).int().Cmp(b.(BigIntegerValue).int()), nil
	case TypeBigDecimal:
		return cmpBigDecimal(a.(BigDecimalValue), b.(BigDecimalValue)), nil
	case TypeTimestamp:
		return time.Time(a.(TimestampValue)).Compare(time.Time(b.(TimestampValue))), nil
	case TypeList:
		return cmpElems(a.(ListValue).elems, b.(ListValue).elems)
	case TypeSet:
		return cmpElems(a.(SetValue).elems, b.(SetValue).elems)
	case TypeMap:
		ma, mb := a.(MapValue), b.(MapValue)
		n := len(ma.pairs)
		if len(mb.pairs) < n {
			n = len(mb.pairs)
		}
		for i := 0; i < n; i++ {
			c, err := Compare(ma.pairs[i].Key, mb.pairs[i].Key)
			if err != nil || c != 0 {
				return c, err
			}
			c, err = Compare(ma.pairs[i].Value, mb.pairs[i].Value)
			if err != nil || c != 0 {
				return c, err
			}
		}
		return cmpOrdered(len(ma.pairs), len(mb.pairs)), nil
	case TypeExtension:
		ea, eb := a.(ExtensionValue), b.(ExtensionValue)
		if c := strings.Compare(ea.name, eb.name); c != 0 {
			return c, nil
		}
		return Compare(ea.payload, eb.payload)
	}

	return 0, errors.Wrapf(ErrTypeMismatch, "cannot order %s", a.Type())
}

// Clone returns a deep copy of v, traversing nested containers.
func Clone(v Value) Value {
	if v == nil {
		return NewNullValue()
	}

	switch v.Type() {
	case TypeByteBuffer:
		return NewByteBufferValue(v.(ByteBufferValue).b)
	case TypeBigInteger:
		return NewBigIntegerValue(v.(BigIntegerValue).int())
	case TypeBigDecimal:
		d := v.(BigDecimalValue)
		return NewBigDecimalValue(d.unscaledInt(), d.scale)
	case TypeList:
		l := v.(ListValue)
		elems := make([]Value, len(l.elems))
		for i, e := range l.elems {
			elems[i] = Clone(e)
		}
		return ListValue{elems: elems}
	case TypeSet:
		s := v.(SetValue)
		elems := make([]Value, len(s.elems))
		for i, e := range s.elems {
			elems[i] = Clone(e)
		}
		return SetValue{elems: elems}
	case TypeMap:
		m := v.(MapValue)
		pairs := make([]Pair, len(m.pairs))
		for i, p := range m.pairs {
			pairs[i] = Pair{Key: Clone(p.Key), Value: Clone(p.Value)}
		}
		return MapValue{pairs: pairs}
	case TypeExtension:
		e := v.(ExtensionValue)
		return ExtensionValue{name: e.name, payload: Clone(e.payload)}
	default:
		// scalar variants are immutable by construction
		return v
	}
}

func cmpBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	default:
		return -1
	}
}

func cmpOrdered[T int | int32 | int64 | float32 | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpElems(a, b []Value) (int, error) {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		c, err := Compare(a[i], b[i])
		if err != nil || c != 0 {
			return c, err
		}
	}
	return cmpOrdered(len(a), len(b)), nil
}

// cmpBigDecimal orders by numeric value: the unscaled values are
// brought to a common scale before comparing.
func cmpBigDecimal(a, b BigDecimalValue) int {
	ua, ub := a.unscaledInt(), b.unscaledInt()
	if a.scale == b.scale {
		return ua.Cmp(ub)
	}

	if a.scale < b.scale {
		ua = new(big.Int).Mul(ua, pow10(int64(b.scale)-int64(a.scale)))
	} else {
		ub = new(big.Int).Mul(ub, pow10(int64(a.scale)-int64(b.scale)))
	}
	return ua.Cmp(ub)
}

func pow10(n int64) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(n), nil)
}
