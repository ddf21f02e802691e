package graphbin

import (
	"math"
	"math/big"

	"github.com/cockroachdb/errors"
	"github.com/sharkspear94/gremwire/codec"
	"github.com/sharkspear94/gremwire/types"
)

// Encode returns the fully-qualified GraphBinary form of v.
func Encode(v types.Value) ([]byte, error) {
	return EncodeValue(nil, v)
}

// EncodeValue appends the fully-qualified form of v to dst:
// [type code][value flag][payload].
func EncodeValue(dst []byte, v types.Value) ([]byte, error) {
	if types.IsNull(v) {
		return append(dst, NullValue, ValueFlagNull), nil
	}

	switch v.Type() {
	case types.TypeBoolean:
		dst = append(dst, BooleanValue, ValueFlagSet)
		if types.AsBool(v) {
			return append(dst, 0x01), nil
		}
		return append(dst, 0x00), nil
	case types.TypeInt:
		dst = append(dst, IntValue, ValueFlagSet)
		return EncodeInt32(dst, types.AsInt32(v)), nil
	case types.TypeLong:
		dst = append(dst, LongValue, ValueFlagSet)
		return EncodeInt64(dst, types.AsInt64(v)), nil
	case types.TypeFloat:
		dst = append(dst, FloatValue, ValueFlagSet)
		return EncodeInt32(dst, int32(math.Float32bits(types.AsFloat32(v)))), nil
	case types.TypeDouble:
		dst = append(dst, DoubleValue, ValueFlagSet)
		return EncodeInt64(dst, int64(math.Float64bits(types.AsFloat64(v)))), nil
	case types.TypeString:
		dst = append(dst, StringValue, ValueFlagSet)
		return EncodeString(dst, types.AsString(v))
	case types.TypeByteBuffer:
		dst = append(dst, ByteBufferValue, ValueFlagSet)
		return EncodeBytes(dst, types.AsByteSlice(v))
	case types.TypeUUID:
		dst = append(dst, UUIDValue, ValueFlagSet)
		u := types.AsUUID(v)
		return append(dst, u[:]...), nil
	case types.TypeBigInteger:
		dst = append(dst, BigIntegerValue, ValueFlagSet)
		return EncodeBigInt(dst, v.(types.BigIntegerValue).Int())
	case types.TypeBigDecimal:
		d := v.(types.BigDecimalValue)
		dst = append(dst, BigDecimalValue, ValueFlagSet)
		dst = EncodeInt32(dst, d.Scale())
		return EncodeBigInt(dst, d.Unscaled())
	case types.TypeList:
		dst = append(dst, ListValue, ValueFlagSet)
		return encodeElements(dst, v.(types.ListValue).Values())
	case types.TypeSet:
		dst = append(dst, SetValue, ValueFlagSet)
		return encodeElements(dst, v.(types.SetValue).Values())
	case types.TypeMap:
		dst = append(dst, MapValue, ValueFlagSet)
		return encodeMap(dst, v.(types.MapValue))
	case types.TypeTimestamp:
		e, ok := codec.ByName(InstantName)
		if !ok {
			return nil, errors.Wrap(codec.ErrEncode, "timestamps need extended temporal support enabled")
		}
		dst = append(dst, e.Code, ValueFlagSet)
		return e.Binary.Encode(dst, v)
	case types.TypeExtension:
		x := v.(types.ExtensionValue)
		e, ok := codec.ByName(x.Name())
		if !ok {
			return nil, errors.Wrapf(codec.ErrUnknownType, "extension %q is not registered", x.Name())
		}
		dst = append(dst, e.Code, ValueFlagSet)
		return e.Binary.Encode(dst, v)
	}

	return nil, errors.Wrapf(codec.ErrEncode, "unsupported value type %s", v.Type())
}

// EncodeInt32 appends a 4-byte big-endian signed int.
func EncodeInt32(dst []byte, x int32) []byte {
	n := uint32(x)
	return append(dst, byte(n>>24), byte(n>>16), byte(n>>8), byte(n))
}

// EncodeInt64 appends an 8-byte big-endian signed int.
func EncodeInt64(dst []byte, x int64) []byte {
	n := uint64(x)
	return append(dst,
		byte(n>>56), byte(n>>48), byte(n>>40), byte(n>>32),
		byte(n>>24), byte(n>>16), byte(n>>8), byte(n))
}

// EncodeString appends [length: int32][UTF-8 bytes].
func EncodeString(dst []byte, s string) ([]byte, error) {
	if len(s) > math.MaxInt32 {
		return nil, errors.Wrap(codec.ErrEncode, "string exceeds int32 length")
	}
	dst = EncodeInt32(dst, int32(len(s)))
	return append(dst, s...), nil
}

// EncodeBytes appends [length: int32][bytes].
func EncodeBytes(dst []byte, b []byte) ([]byte, error) {
	if len(b) > math.MaxInt32 {
		return nil, errors.Wrap(codec.ErrEncode, "byte buffer exceeds int32 length")
	}
	dst = EncodeInt32(dst, int32(len(b)))
	return append(dst, b...), nil
}

// EncodeBigInt appends [length: int32][minimal two's-complement
// big-endian bytes]. Zero encodes as a single zero byte, never as a
// zero-length payload.
func EncodeBigInt(dst []byte, x *big.Int) ([]byte, error) {
	var b []byte
	if x.Sign() >= 0 {
		b = x.Bytes()
		if len(b) == 0 {
			b = []byte{0x00}
		} else if b[0]&0x80 != 0 {
			// keep the sign bit clear for non-negative values
			b = append([]byte{0x00}, b...)
		}
	} else {
		// minimal length L: the smallest byte count such that
		// x >= -(2^(8L-1)), derived from |x|-1
		t := new(big.Int).Neg(x)
		t.Sub(t, big.NewInt(1))
		l := t.BitLen()/8 + 1

		tc := new(big.Int).Lsh(big.NewInt(1), uint(8*l))
		tc.Add(tc, x)
		b = tc.Bytes()
	}

	if len(b) > math.MaxInt32 {
		return nil, errors.Wrap(codec.ErrEncode, "big integer exceeds int32 length")
	}
	dst = EncodeInt32(dst, int32(len(b)))
	return append(dst, b...), nil
}

func encodeElements(dst []byte, elems []types.Value) ([]byte, error) {
	if len(elems) > math.MaxInt32 {
		return nil, errors.Wrap(codec.ErrEncode, "collection exceeds int32 length")
	}
	dst = EncodeInt32(dst, int32(len(elems)))

	var err error
	for _, e := range elems {
		dst, err = EncodeValue(dst, e)
		if err != nil {
			return nil, err
		}
	}
	return dst, nil
}

func encodeMap(dst []byte, m types.MapValue) ([]byte, error) {
	pairs := m.Pairs()
	if len(pairs) > math.MaxInt32 {
		return nil, errors.Wrap(codec.ErrEncode, "map exceeds int32 length")
	}
	dst = EncodeInt32(dst, int32(len(pairs)))

	var err error
	for _, p := range pairs {
		if types.IsNull(p.Key) {
			return nil, errors.Wrap(codec.ErrEncode, "map key cannot be null")
		}
		dst, err = EncodeValue(dst, p.Key)
		if err != nil {
			return nil, err
		}
		dst, err = EncodeValue(dst, p.Value)
		if err != nil {
			return nil, err
		}
	}
	return dst, nil
}
