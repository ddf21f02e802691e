package graphbin

import (
	"math"
	"math/big"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/sharkspear94/gremwire/codec"
	"github.com/sharkspear94/gremwire/types"
)

// Decode reads one fully-qualified value from the start of buf and
// returns it along with the number of bytes consumed. Trailing bytes
// are the caller's concern.
func Decode(buf []byte) (types.Value, int, error) {
	d := NewDecoder(buf)
	v, err := d.DecodeValue()
	if err != nil {
		return nil, 0, err
	}
	return v, d.pos, nil
}

// Decoder is a cursor over a borrowed buffer. It implements
// codec.Reader so registered extensions can decode their payloads.
type Decoder struct {
	buf []byte
	pos int
}

var _ codec.Reader = (*Decoder)(nil)

func NewDecoder(buf []byte) *Decoder {
	return &Decoder{buf: buf}
}

// Pos returns the absolute offset of the cursor.
func (d *Decoder) Pos() int {
	return d.pos
}

// DecodeValue reads one fully-qualified value at the cursor.
func (d *Decoder) DecodeValue() (types.Value, error) {
	start := d.pos

	hdr, err := d.Bytes(2)
	if err != nil {
		return nil, err
	}
	code, flag := hdr[0], hdr[1]

	switch flag {
	case ValueFlagNull:
		// the code must be known even when the payload is absent
		if !knownCode(code) {
			return nil, errors.Wrapf(codec.ErrUnknownType, "offset %d: type code 0x%02x", start, code)
		}
		return types.NewNullValue(), nil
	case ValueFlagSet:
	default:
		return nil, errors.Wrapf(codec.ErrMalformedPayload, "offset %d: invalid value flag 0x%02x", start+1, flag)
	}

	switch code {
	case NullValue:
		return nil, errors.Wrapf(codec.ErrMalformedPayload, "offset %d: null type with present flag", start)
	case BooleanValue:
		b, err := d.Bytes(1)
		if err != nil {
			return nil, err
		}
		switch b[0] {
		case 0x00:
			return types.NewBooleanValue(false), nil
		case 0x01:
			return types.NewBooleanValue(true), nil
		}
		return nil, errors.Wrapf(codec.ErrMalformedPayload, "offset %d: invalid boolean 0x%02x", d.pos-1, b[0])
	case IntValue:
		x, err := d.Int32()
		if err != nil {
			return nil, err
		}
		return types.NewIntValue(x), nil
	case LongValue:
		x, err := d.Int64()
		if err != nil {
			return nil, err
		}
		return types.NewLongValue(x), nil
	case FloatValue:
		x, err := d.Int32()
		if err != nil {
			return nil, err
		}
		return types.NewFloatValue(math.Float32frombits(uint32(x))), nil
	case DoubleValue:
		x, err := d.Int64()
		if err != nil {
			return nil, err
		}
		return types.NewDoubleValue(math.Float64frombits(uint64(x))), nil
	case StringValue:
		s, err := d.String()
		if err != nil {
			return nil, err
		}
		return types.NewStringValue(s), nil
	case ByteBufferValue:
		n, err := d.length()
		if err != nil {
			return nil, err
		}
		b, err := d.Bytes(n)
		if err != nil {
			return nil, err
		}
		return types.NewByteBufferValue(b), nil
	case UUIDValue:
		b, err := d.Bytes(16)
		if err != nil {
			return nil, err
		}
		var u uuid.UUID
		copy(u[:], b)
		return types.NewUUIDValue(u), nil
	case BigIntegerValue:
		x, err := d.bigInt()
		if err != nil {
			return nil, err
		}
		return types.NewBigIntegerValue(x), nil
	case BigDecimalValue:
		scale, err := d.Int32()
		if err != nil {
			return nil, err
		}
		x, err := d.bigInt()
		if err != nil {
			return nil, err
		}
		return types.NewBigDecimalValue(x, scale), nil
	case ListValue:
		elems, err := d.elements()
		if err != nil {
			return nil, err
		}
		return types.NewListValue(elems...), nil
	case SetValue:
		// uniqueness is re-enforced on insert
		elems, err := d.elements()
		if err != nil {
			return nil, err
		}
		return types.NewSetValue(elems...), nil
	case MapValue:
		return d.mapValue()
	}

	e, ok := codec.ByCode(code)
	if !ok {
		return nil, errors.Wrapf(codec.ErrUnknownType, "offset %d: type code 0x%02x", start, code)
	}
	return e.Binary.Decode(d)
}

// Value implements codec.Reader.
func (d *Decoder) Value() (types.Value, error) {
	return d.DecodeValue()
}

// knownCode reports whether code is natively modeled or registered.
func knownCode(code byte) bool {
	switch code {
	case IntValue, LongValue, StringValue, DoubleValue, FloatValue,
		ListValue, MapValue, SetValue, UUIDValue,
		BigDecimalValue, BigIntegerValue, ByteBufferValue,
		BooleanValue, NullValue:
		return true
	}
	_, ok := codec.ByCode(code)
	return ok
}

// Bytes reads exactly n raw bytes at the cursor.
func (d *Decoder) Bytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, errors.Wrapf(codec.ErrMalformedPayload, "offset %d: negative read of %d bytes", d.pos, n)
	}
	if n > len(d.buf)-d.pos {
		return nil, errors.Wrapf(codec.ErrTruncatedInput, "offset %d: need %d bytes, %d remain", d.pos, n, len(d.buf)-d.pos)
	}
	b := d.buf[d.pos : d.pos+n]
	d.pos += n
	return b, nil
}

// Int32 reads a 4-byte big-endian signed int.
func (d *Decoder) Int32() (int32, error) {
	b, err := d.Bytes(4)
	if err != nil {
		return 0, err
	}
	return int32(uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])), nil
}

// Int64 reads an 8-byte big-endian signed int.
func (d *Decoder) Int64() (int64, error) {
	b, err := d.Bytes(8)
	if err != nil {
		return 0, err
	}
	return int64(uint64(b[0])<<56 | uint64(b[1])<<48 | uint64(b[2])<<40 | uint64(b[3])<<32 |
		uint64(b[4])<<24 | uint64(b[5])<<16 | uint64(b[6])<<8 | uint64(b[7])), nil
}

// String reads [length: int32][UTF-8 bytes].
func (d *Decoder) String() (string, error) {
	n, err := d.length()
	if err != nil {
		return "", err
	}
	b, err := d.Bytes(n)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// length reads a declared int32 length and validates it against the
// remaining buffer.
func (d *Decoder) length() (int, error) {
	at := d.pos
	n, err := d.Int32()
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, errors.Wrapf(codec.ErrMalformedPayload, "offset %d: negative length %d", at, n)
	}
	if int(n) > len(d.buf)-d.pos {
		return 0, errors.Wrapf(codec.ErrTruncatedInput, "offset %d: declared length %d exceeds %d remaining bytes", at, n, len(d.buf)-d.pos)
	}
	return int(n), nil
}

func (d *Decoder) bigInt() (*big.Int, error) {
	at := d.pos
	n, err := d.length()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, errors.Wrapf(codec.ErrMalformedPayload, "offset %d: zero-length big integer", at)
	}
	b, err := d.Bytes(n)
	if err != nil {
		return nil, err
	}

	x := new(big.Int).SetBytes(b)
	if b[0]&0x80 != 0 {
		x.Sub(x, new(big.Int).Lsh(big.NewInt(1), uint(8*n)))
	}
	return x, nil
}

func (d *Decoder) count() (int, error) {
	at := d.pos
	n, err := d.Int32()
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, errors.Wrapf(codec.ErrMalformedPayload, "offset %d: negative element count %d", at, n)
	}
	// every element is at least a two-byte header
	if int(n)*2 > len(d.buf)-d.pos {
		return 0, errors.Wrapf(codec.ErrTruncatedInput, "offset %d: %d elements exceed %d remaining bytes", at, n, len(d.buf)-d.pos)
	}
	return int(n), nil
}

func (d *Decoder) elements() ([]types.Value, error) {
	n, err := d.count()
	if err != nil {
		return nil, err
	}

	elems := make([]types.Value, 0, n)
	for i := 0; i < n; i++ {
		v, err := d.DecodeValue()
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
	}
	return elems, nil
}

func (d *Decoder) mapValue() (types.Value, error) {
	n, err := d.count()
	if err != nil {
		return nil, err
	}

	pairs := make([]types.Pair, 0, n)
	for i := 0; i < n; i++ {
		at := d.pos
		k, err := d.DecodeValue()
		if err != nil {
			return nil, err
		}
		if types.IsNull(k) {
			return nil, errors.Wrapf(codec.ErrStructural, "offset %d: null map key", at)
		}
		v, err := d.DecodeValue()
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, types.Pair{Key: k, Value: v})
	}

	m := types.NewMapValue(pairs...)
	if m.Len() != n {
		return nil, errors.Wrap(codec.ErrMalformedPayload, "map contains duplicate keys")
	}
	return m, nil
}
