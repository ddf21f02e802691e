package graphson

import (
	"encoding/base64"
	"fmt"
	"math"
	"strconv"

	"github.com/buger/jsonparser"
	"github.com/cockroachdb/errors"
	"github.com/sharkspear94/gremwire/codec"
	"github.com/sharkspear94/gremwire/types"
)

// Decode parses a GraphSON document into a value. It either fully
// succeeds or fails; errors carry the path of the offending node.
func Decode(doc []byte) (types.Value, error) {
	data, dt, _, err := jsonparser.Get(doc)
	if err != nil {
		return nil, errors.Wrap(codec.ErrMalformedPayload, "$: invalid document")
	}
	return decodeValue(data, dt, "$")
}

// DecodeValue parses one GraphSON node as produced by jsonparser.
// Registered extensions use it to decode nested values inside their
// payloads.
func DecodeValue(data []byte, dt jsonparser.ValueType) (types.Value, error) {
	return decodeValue(data, dt, "$")
}

func decodeValue(data []byte, dt jsonparser.ValueType, path string) (types.Value, error) {
	switch dt {
	case jsonparser.Null:
		return types.NewNullValue(), nil
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(data)
		if err != nil {
			return nil, errors.Wrapf(codec.ErrMalformedPayload, "%s: invalid boolean", path)
		}
		return types.NewBooleanValue(b), nil
	case jsonparser.String:
		s, err := jsonparser.ParseString(data)
		if err != nil {
			return nil, errors.Wrapf(codec.ErrMalformedPayload, "%s: invalid string", path)
		}
		return types.NewStringValue(s), nil
	case jsonparser.Number:
		// a bare number carries no type tag; pick the smallest
		// variant that holds it, the way lenient readers do
		i, err := jsonparser.ParseInt(data)
		if err == nil {
			if i >= math.MinInt32 && i <= math.MaxInt32 {
				return types.NewIntValue(int32(i)), nil
			}
			return types.NewLongValue(i), nil
		}
		f, err := jsonparser.ParseFloat(data)
		if err != nil {
			return nil, errors.Wrapf(codec.ErrMalformedPayload, "%s: invalid number %q", path, data)
		}
		return types.NewDoubleValue(f), nil
	case jsonparser.Object:
		return decodeEnvelope(data, path)
	case jsonparser.Array:
		return nil, errors.Wrapf(codec.ErrMalformedPayload, "%s: array without a type tag", path)
	}

	return nil, errors.Wrapf(codec.ErrMalformedPayload, "%s: unsupported node", path)
}

func decodeEnvelope(data []byte, path string) (types.Value, error) {
	name, err := jsonparser.GetString(data, "@type")
	if err != nil {
		return nil, errors.Wrapf(codec.ErrMalformedPayload, "%s: object without @type tag", path)
	}

	val, dt, _, err := jsonparser.Get(data, "@value")
	if err != nil {
		return nil, errors.Wrapf(codec.ErrMalformedPayload, "%s: @type %q without @value", path, name)
	}
	path = path + ".@value"

	switch name {
	case TypeInt32:
		i, err := parseClaimedInt(val, dt)
		if err != nil || i < math.MinInt32 || i > math.MaxInt32 {
			return nil, errors.Wrapf(codec.ErrMalformedPayload, "%s: %q is not an int32", path, val)
		}
		return types.NewIntValue(int32(i)), nil
	case TypeInt64:
		i, err := parseClaimedInt(val, dt)
		if err != nil {
			return nil, errors.Wrapf(codec.ErrMalformedPayload, "%s: %q is not an int64", path, val)
		}
		return types.NewLongValue(i), nil
	case TypeFloat:
		f, err := parseClaimedFloat(val, dt)
		if err != nil {
			return nil, errors.Wrapf(codec.ErrMalformedPayload, "%s: %q is not a float", path, val)
		}
		return types.NewFloatValue(float32(f)), nil
	case TypeDouble:
		f, err := parseClaimedFloat(val, dt)
		if err != nil {
			return nil, errors.Wrapf(codec.ErrMalformedPayload, "%s: %q is not a double", path, val)
		}
		return types.NewDoubleValue(f), nil
	case TypeUUID:
		if dt != jsonparser.String {
			return nil, errors.Wrapf(codec.ErrMalformedPayload, "%s: uuid must be a string", path)
		}
		s, _ := jsonparser.ParseString(val)
		u, err := types.ParseUUIDValue(s)
		if err != nil {
			return nil, errors.Wrapf(codec.ErrMalformedPayload, "%s: %q is not a uuid", path, s)
		}
		return u, nil
	case TypeBigInteger:
		s, err := claimedText(val, dt)
		if err != nil {
			return nil, errors.Wrapf(codec.ErrMalformedPayload, "%s: big integer must be a string or number", path)
		}
		b, ok := types.ParseBigIntegerValue(s)
		if !ok {
			return nil, errors.Wrapf(codec.ErrMalformedPayload, "%s: %q is not a big integer", path, s)
		}
		return b, nil
	case TypeBigDecimal:
		s, err := claimedText(val, dt)
		if err != nil {
			return nil, errors.Wrapf(codec.ErrMalformedPayload, "%s: big decimal must be a string or number", path)
		}
		d, err := types.ParseBigDecimalValue(s)
		if err != nil {
			return nil, errors.Wrapf(codec.ErrMalformedPayload, "%s: %q is not a big decimal", path, s)
		}
		return d, nil
	case TypeByteBuffer:
		if dt != jsonparser.String {
			return nil, errors.Wrapf(codec.ErrMalformedPayload, "%s: byte buffer must be a string", path)
		}
		s, _ := jsonparser.ParseString(val)
		b, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return nil, errors.Wrapf(codec.ErrMalformedPayload, "%s: invalid base64", path)
		}
		return types.NewByteBufferValue(b), nil
	case TypeList:
		elems, err := decodeElements(val, dt, path)
		if err != nil {
			return nil, err
		}
		return types.NewListValue(elems...), nil
	case TypeSet:
		elems, err := decodeElements(val, dt, path)
		if err != nil {
			return nil, err
		}
		return types.NewSetValue(elems...), nil
	case TypeMap:
		return decodeMap(val, dt, path)
	}

	e, ok := codec.ByName(name)
	if !ok {
		return nil, errors.Wrapf(codec.ErrUnknownType, "%s: type identifier %q is not registered", path, name)
	}
	return e.JSON.Decode(val, dt)
}

func decodeElements(data []byte, dt jsonparser.ValueType, path string) ([]types.Value, error) {
	if dt != jsonparser.Array {
		return nil, errors.Wrapf(codec.ErrMalformedPayload, "%s: collection payload must be an array", path)
	}

	var elems []types.Value
	var elemErr error
	i := 0
	_, err := jsonparser.ArrayEach(data, func(el []byte, elDT jsonparser.ValueType, _ int, cbErr error) {
		if elemErr != nil {
			return
		}
		p := fmt.Sprintf("%s[%d]", path, i)
		i++
		if cbErr != nil {
			elemErr = errors.Wrapf(codec.ErrMalformedPayload, "%s: invalid element", p)
			return
		}
		v, err := decodeValue(el, elDT, p)
		if err != nil {
			elemErr = err
			return
		}
		elems = append(elems, v)
	})
	if elemErr != nil {
		return nil, elemErr
	}
	if err != nil {
		return nil, errors.Wrapf(codec.ErrMalformedPayload, "%s: invalid array", path)
	}
	return elems, nil
}

// decodeMap reads the flat array of alternating tagged key/value
// elements.
func decodeMap(data []byte, dt jsonparser.ValueType, path string) (types.Value, error) {
	flat, err := decodeElements(data, dt, path)
	if err != nil {
		return nil, err
	}
	if len(flat)%2 != 0 {
		return nil, errors.Wrapf(codec.ErrMalformedPayload, "%s: map payload has %d elements, want key/value pairs", path, len(flat))
	}

	pairs := make([]types.Pair, 0, len(flat)/2)
	for i := 0; i < len(flat); i += 2 {
		if types.IsNull(flat[i]) {
			return nil, errors.Wrapf(codec.ErrStructural, "%s[%d]: null map key", path, i)
		}
		pairs = append(pairs, types.Pair{Key: flat[i], Value: flat[i+1]})
	}

	m := types.NewMapValue(pairs...)
	if m.Len() != len(pairs) {
		return nil, errors.Wrapf(codec.ErrMalformedPayload, "%s: map contains duplicate keys", path)
	}
	return m, nil
}

// parseClaimedInt accepts the claimed numeric payload as a JSON number
// or its string form.
func parseClaimedInt(val []byte, dt jsonparser.ValueType) (int64, error) {
	switch dt {
	case jsonparser.Number:
		return jsonparser.ParseInt(val)
	case jsonparser.String:
		s, err := jsonparser.ParseString(val)
		if err != nil {
			return 0, err
		}
		return strconv.ParseInt(s, 10, 64)
	}
	return 0, errors.New("not a number")
}

func parseClaimedFloat(val []byte, dt jsonparser.ValueType) (float64, error) {
	switch dt {
	case jsonparser.Number:
		return jsonparser.ParseFloat(val)
	case jsonparser.String:
		s, err := jsonparser.ParseString(val)
		if err != nil {
			return 0, err
		}
		return strconv.ParseFloat(s, 64)
	}
	return 0, errors.New("not a number")
}

// claimedText returns the payload text of a number that may be carried
// as either a JSON string (our encoder) or a raw number (other
// writers).
func claimedText(val []byte, dt jsonparser.ValueType) (string, error) {
	switch dt {
	case jsonparser.String:
		return jsonparser.ParseString(val)
	case jsonparser.Number:
		return string(val), nil
	}
	return "", errors.New("not a number or string")
}
