// Package graphson implements the GraphSON v3 text format. Scalars
// with no native JSON representation are wrapped in a tagged envelope
// {"@type":"<identifier>","@value":<payload>}; only booleans, UTF-8
// strings and null stay native. Both directions are stateless pure
// functions over the value model.
package graphson

import (
	"encoding/base64"
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"github.com/sharkspear94/gremwire/codec"
	"github.com/sharkspear94/gremwire/types"
)

// GraphSON type identifiers for the natively modeled variants.
const (
	TypeInt32      = "g:Int32"
	TypeInt64      = "g:Int64"
	TypeFloat      = "g:Float"
	TypeDouble     = "g:Double"
	TypeUUID       = "g:UUID"
	TypeList       = "g:List"
	TypeSet        = "g:Set"
	TypeMap        = "g:Map"
	TypeBigInteger = "gx:BigInteger"
	TypeBigDecimal = "gx:BigDecimal"
	TypeByteBuffer = "gx:ByteBuffer"
	TypeInstant    = "gx:Instant"
)

// Encode returns the compact GraphSON document for v.
func Encode(v types.Value) ([]byte, error) {
	return AppendValue(nil, v)
}

// AppendValue appends the GraphSON form of v to dst.
func AppendValue(dst []byte, v types.Value) ([]byte, error) {
	if types.IsNull(v) {
		return append(dst, "null"...), nil
	}

	switch v.Type() {
	case types.TypeBoolean:
		return strconv.AppendBool(dst, types.AsBool(v)), nil
	case types.TypeString:
		s := types.AsString(v)
		if !utf8.ValidString(s) {
			return nil, errors.Wrap(codec.ErrEncode, "string is not valid UTF-8")
		}
		return appendString(dst, s), nil
	case types.TypeInt:
		dst = appendEnvelope(dst, TypeInt32)
		dst = strconv.AppendInt(dst, int64(types.AsInt32(v)), 10)
		return append(dst, '}'), nil
	case types.TypeLong:
		dst = appendEnvelope(dst, TypeInt64)
		dst = strconv.AppendInt(dst, types.AsInt64(v), 10)
		return append(dst, '}'), nil
	case types.TypeFloat:
		dst = appendEnvelope(dst, TypeFloat)
		dst = appendFloat(dst, float64(types.AsFloat32(v)), 32)
		return append(dst, '}'), nil
	case types.TypeDouble:
		dst = appendEnvelope(dst, TypeDouble)
		dst = appendFloat(dst, types.AsFloat64(v), 64)
		return append(dst, '}'), nil
	case types.TypeUUID:
		dst = appendEnvelope(dst, TypeUUID)
		dst = appendString(dst, v.String())
		return append(dst, '}'), nil
	case types.TypeBigInteger:
		// full decimal text, kept as a string so generic parsers
		// cannot lose precision
		dst = appendEnvelope(dst, TypeBigInteger)
		dst = appendString(dst, v.String())
		return append(dst, '}'), nil
	case types.TypeBigDecimal:
		dst = appendEnvelope(dst, TypeBigDecimal)
		dst = appendString(dst, v.String())
		return append(dst, '}'), nil
	case types.TypeByteBuffer:
		dst = appendEnvelope(dst, TypeByteBuffer)
		dst = appendString(dst, base64.StdEncoding.EncodeToString(types.AsByteSlice(v)))
		return append(dst, '}'), nil
	case types.TypeList:
		dst = appendEnvelope(dst, TypeList)
		dst, err := appendElements(dst, v.(types.ListValue).Values())
		if err != nil {
			return nil, err
		}
		return append(dst, '}'), nil
	case types.TypeSet:
		dst = appendEnvelope(dst, TypeSet)
		dst, err := appendElements(dst, v.(types.SetValue).Values())
		if err != nil {
			return nil, err
		}
		return append(dst, '}'), nil
	case types.TypeMap:
		dst = appendEnvelope(dst, TypeMap)
		dst, err := appendMap(dst, v.(types.MapValue))
		if err != nil {
			return nil, err
		}
		return append(dst, '}'), nil
	case types.TypeTimestamp:
		e, ok := codec.ByName(TypeInstant)
		if !ok {
			return nil, errors.Wrap(codec.ErrEncode, "timestamps need extended temporal support enabled")
		}
		dst = appendEnvelope(dst, e.Name)
		dst, err := e.JSON.Encode(dst, v)
		if err != nil {
			return nil, err
		}
		return append(dst, '}'), nil
	case types.TypeExtension:
		x := v.(types.ExtensionValue)
		e, ok := codec.ByName(x.Name())
		if !ok {
			return nil, errors.Wrapf(codec.ErrUnknownType, "extension %q is not registered", x.Name())
		}
		dst = appendEnvelope(dst, e.Name)
		dst, err := e.JSON.Encode(dst, v)
		if err != nil {
			return nil, err
		}
		return append(dst, '}'), nil
	}

	return nil, errors.Wrapf(codec.ErrEncode, "unsupported value type %s", v.Type())
}

// appendEnvelope opens the tagged envelope; the caller appends the
// @value payload and the closing brace.
func appendEnvelope(dst []byte, name string) []byte {
	dst = append(dst, `{"@type":`...)
	dst = appendString(dst, name)
	return append(dst, `,"@value":`...)
}

func appendElements(dst []byte, elems []types.Value) ([]byte, error) {
	dst = append(dst, '[')
	var err error
	for i, e := range elems {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst, err = AppendValue(dst, e)
		if err != nil {
			return nil, err
		}
	}
	return append(dst, ']'), nil
}

// appendMap writes a flat array of alternating tagged key/value
// elements, never a JSON object, since map keys need not be strings.
func appendMap(dst []byte, m types.MapValue) ([]byte, error) {
	dst = append(dst, '[')
	var err error
	for i, p := range m.Pairs() {
		if types.IsNull(p.Key) {
			return nil, errors.Wrap(codec.ErrEncode, "map key cannot be null")
		}
		if i > 0 {
			dst = append(dst, ',')
		}
		dst, err = AppendValue(dst, p.Key)
		if err != nil {
			return nil, err
		}
		dst = append(dst, ',')
		dst, err = AppendValue(dst, p.Value)
		if err != nil {
			return nil, err
		}
	}
	return append(dst, ']'), nil
}

// appendFloat writes a JSON number, or the string forms Java GraphSON
// uses for the values JSON numbers cannot carry.
func appendFloat(dst []byte, f float64, bits int) []byte {
	switch {
	case math.IsNaN(f):
		return appendString(dst, "NaN")
	case math.IsInf(f, 1):
		return appendString(dst, "Infinity")
	case math.IsInf(f, -1):
		return appendString(dst, "-Infinity")
	}
	return strconv.AppendFloat(dst, f, 'g', -1, bits)
}

const hexdigits = "0123456789abcdef"

// appendString writes a JSON string literal, escaping quotes,
// backslashes and control characters.
func appendString(dst []byte, s string) []byte {
	dst = append(dst, '"')
	for _, r := range s {
		switch r {
		case '"':
			dst = append(dst, '\\', '"')
		case '\\':
			dst = append(dst, '\\', '\\')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '\t':
			dst = append(dst, '\\', 't')
		default:
			if r < 0x20 {
				dst = append(dst, '\\', 'u', '0', '0', hexdigits[r>>4], hexdigits[r&0xf])
			} else {
				dst = utf8.AppendRune(dst, r)
			}
		}
	}
	return append(dst, '"')
}
