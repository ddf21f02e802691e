package graphbin_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/google/uuid"
	"github.com/sharkspear94/gremwire/codec"
	"github.com/sharkspear94/gremwire/graphbin"
	"github.com/sharkspear94/gremwire/types"
	"github.com/stretchr/testify/require"
)

func TestEncodeExactBytes(t *testing.T) {
	tests := []struct {
		name  string
		input types.Value
		want  []byte
	}{
		{
			"string",
			types.NewStringValue("airports"),
			[]byte{0x03, 0x00, 0x00, 0x00, 0x00, 0x08, 'a', 'i', 'r', 'p', 'o', 'r', 't', 's'},
		},
		{"null", types.NewNullValue(), []byte{0xfe, 0x01}},
		{"true", types.NewBooleanValue(true), []byte{0x27, 0x00, 0x01}},
		{"false", types.NewBooleanValue(false), []byte{0x27, 0x00, 0x00}},
		{"int", types.NewIntValue(-1), []byte{0x01, 0x00, 0xff, 0xff, 0xff, 0xff}},
		{"long", types.NewLongValue(1), []byte{0x02, 0x00, 0, 0, 0, 0, 0, 0, 0, 0x01}},
		{
			"double",
			types.NewDoubleValue(1.0),
			[]byte{0x07, 0x00, 0x3f, 0xf0, 0, 0, 0, 0, 0, 0},
		},
		{
			"empty list",
			types.NewListValue(),
			[]byte{0x09, 0x00, 0, 0, 0, 0},
		},
		{
			"list of ints",
			types.NewListValue(types.NewIntValue(3), types.NewIntValue(1)),
			[]byte{0x09, 0x00, 0, 0, 0, 0x02, 0x01, 0x00, 0, 0, 0, 0x03, 0x01, 0x00, 0, 0, 0, 0x01},
		},
		{
			"uuid raw bytes",
			types.NewUUIDValue(uuid.MustParse("41d2e28a-20a4-4ab0-b379-d810dede3786")),
			[]byte{0x0c, 0x00,
				0x41, 0xd2, 0xe2, 0x8a, 0x20, 0xa4, 0x4a, 0xb0,
				0xb3, 0x79, 0xd8, 0x10, 0xde, 0xde, 0x37, 0x86},
		},
		{
			"bigdecimal scale then unscaled",
			types.NewBigDecimalValue(big.NewInt(1234), 2),
			[]byte{0x22, 0x00, 0, 0, 0, 0x02, 0, 0, 0, 0x02, 0x04, 0xd2},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := graphbin.Encode(test.input)
			require.NoError(t, err)
			require.Equal(t, test.want, got)
		})
	}
}

func TestBigIntegerMinimalEncoding(t *testing.T) {
	tests := []struct {
		input string
		want  []byte // payload after the type header and length prefix
	}{
		{"0", []byte{0x00}},
		{"1", []byte{0x01}},
		{"127", []byte{0x7f}},
		{"128", []byte{0x00, 0x80}}, // sign bit must stay clear
		{"255", []byte{0x00, 0xff}},
		{"256", []byte{0x01, 0x00}},
		{"-1", []byte{0xff}},
		{"-128", []byte{0x80}},
		{"-129", []byte{0xff, 0x7f}},
		{"-256", []byte{0xff, 0x00}},
		{"-32768", []byte{0x80, 0x00}},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			x, ok := new(big.Int).SetString(test.input, 10)
			require.True(t, ok)

			got, err := graphbin.Encode(types.NewBigIntegerValue(x))
			require.NoError(t, err)

			want := append([]byte{0x23, 0x00, 0, 0, 0, byte(len(test.want))}, test.want...)
			require.Equal(t, want, got)

			back, n, err := graphbin.Decode(got)
			require.NoError(t, err)
			require.Equal(t, len(got), n)
			require.Equal(t, test.input, back.(types.BigIntegerValue).Int().String())
		})
	}
}

func TestRoundTrip(t *testing.T) {
	wide, ok := types.ParseBigIntegerValue("1234567890123456789012345678901234567890")
	require.True(t, ok)

	tests := []struct {
		name  string
		input types.Value
	}{
		{"null", types.NewNullValue()},
		{"bool", types.NewBooleanValue(true)},
		{"int min", types.NewIntValue(math.MinInt32)},
		{"long max", types.NewLongValue(math.MaxInt64)},
		{"float", types.NewFloatValue(3.5)},
		{"double", types.NewDoubleValue(-2.25)},
		{"double negative infinity", types.NewDoubleValue(math.Inf(-1))},
		{"string", types.NewStringValue("héllo, wörld")},
		{"empty string", types.NewStringValue("")},
		{"bytes", types.NewByteBufferValue([]byte{0x00, 0xff, 0x10})},
		{"uuid", types.NewUUIDValue(uuid.MustParse("41d2e28a-20a4-4ab0-b379-d810dede3786"))},
		{"40-digit biginteger", wide},
		{"negative bigdecimal", types.NewBigDecimalValue(big.NewInt(-1234567), 5)},
		{
			"list keeps order",
			types.NewListValue(types.NewIntValue(3), types.NewIntValue(1), types.NewIntValue(2)),
		},
		{
			"nested list",
			types.NewListValue(
				types.NewListValue(types.NewStringValue("a")),
				types.NewNullValue(),
			),
		},
		{
			"set",
			types.NewSetValue(types.NewStringValue("x"), types.NewStringValue("y")),
		},
		{
			"map with mixed keys",
			types.NewMapValue(
				types.Pair{Key: types.NewStringValue("k"), Value: types.NewIntValue(1)},
				types.Pair{Key: types.NewIntValue(7), Value: types.NewNullValue()},
				types.Pair{
					Key:   types.NewUUIDValue(uuid.MustParse("41d2e28a-20a4-4ab0-b379-d810dede3786")),
					Value: types.NewListValue(types.NewLongValue(9)),
				},
			),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			buf, err := graphbin.Encode(test.input)
			require.NoError(t, err)

			got, n, err := graphbin.Decode(buf)
			require.NoError(t, err)
			require.Equal(t, len(buf), n)
			require.True(t, types.Equal(test.input, got), "got %s", got)
		})
	}
}

func TestDecodeConsumedCount(t *testing.T) {
	buf, err := graphbin.Encode(types.NewIntValue(5))
	require.NoError(t, err)

	// trailing bytes are the caller's concern
	buf = append(buf, 0xde, 0xad)
	v, n, err := graphbin.Decode(buf)
	require.NoError(t, err)
	require.Equal(t, 6, n)
	require.Equal(t, types.NewIntValue(5), v)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  error
	}{
		{"empty", nil, codec.ErrTruncatedInput},
		{"header only", []byte{0x01, 0x00}, codec.ErrTruncatedInput},
		{"short int payload", []byte{0x01, 0x00, 0x00, 0x00}, codec.ErrTruncatedInput},
		{
			"string length exceeds input",
			[]byte{0x03, 0x00, 0x00, 0x00, 0x00, 0x20, 'a'},
			codec.ErrTruncatedInput,
		},
		{
			"negative string length",
			[]byte{0x03, 0x00, 0xff, 0xff, 0xff, 0xff},
			codec.ErrMalformedPayload,
		},
		{"invalid value flag", []byte{0x01, 0x07, 0, 0, 0, 0}, codec.ErrMalformedPayload},
		{"unknown code with null flag", []byte{0x9c, 0x01}, codec.ErrUnknownType},
		{"invalid boolean byte", []byte{0x27, 0x00, 0x02}, codec.ErrMalformedPayload},
		{"null code with present flag", []byte{0xfe, 0x00}, codec.ErrMalformedPayload},
		{"unknown type code", []byte{0x9c, 0x00, 0x00}, codec.ErrUnknownType},
		{
			"zero-length big integer",
			[]byte{0x23, 0x00, 0x00, 0x00, 0x00, 0x00},
			codec.ErrMalformedPayload,
		},
		{
			"negative element count",
			[]byte{0x09, 0x00, 0x80, 0x00, 0x00, 0x00},
			codec.ErrMalformedPayload,
		},
		{
			"element count exceeds input",
			[]byte{0x09, 0x00, 0x00, 0x00, 0x00, 0x05, 0xfe, 0x01},
			codec.ErrTruncatedInput,
		},
		{
			// {null: 1} — structurally invalid, not merely malformed
			"null map key",
			[]byte{0x0a, 0x00, 0x00, 0x00, 0x00, 0x01, 0xfe, 0x01, 0x01, 0x00, 0, 0, 0, 0x01},
			codec.ErrStructural,
		},
		{
			// {1: 2, 1: 3}
			"duplicate map keys",
			[]byte{0x0a, 0x00, 0x00, 0x00, 0x00, 0x02,
				0x01, 0x00, 0, 0, 0, 0x01, 0x01, 0x00, 0, 0, 0, 0x02,
				0x01, 0x00, 0, 0, 0, 0x01, 0x01, 0x00, 0, 0, 0, 0x03},
			codec.ErrMalformedPayload,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, _, err := graphbin.Decode(test.input)
			require.ErrorIs(t, err, test.want)
		})
	}
}

func TestDecodeErrorReportsOffset(t *testing.T) {
	// the unknown code sits at offset 6, nested inside a list
	buf := []byte{0x09, 0x00, 0x00, 0x00, 0x00, 0x01, 0x9c, 0x00}
	_, _, err := graphbin.Decode(buf)
	require.ErrorIs(t, err, codec.ErrUnknownType)
	require.Contains(t, err.Error(), "offset 6")
	require.Contains(t, err.Error(), "0x9c")
}

func TestReaderRejectsNegativeRead(t *testing.T) {
	d := graphbin.NewDecoder([]byte{0x01, 0x02, 0x03})
	_, err := d.Bytes(-1)
	require.ErrorIs(t, err, codec.ErrMalformedPayload)
}

func TestEncodeRefusesNullMapKey(t *testing.T) {
	m := types.NewMapValue(types.Pair{Key: types.NewNullValue(), Value: types.NewIntValue(1)})
	_, err := graphbin.Encode(m)
	require.ErrorIs(t, err, codec.ErrEncode)
}

func TestEncodeTimestampNeedsExtended(t *testing.T) {
	// nothing in this package registers gx:Instant
	_, err := graphbin.Encode(types.NewTimestampFromUnix(1000, 0))
	require.ErrorIs(t, err, codec.ErrEncode)
}

func TestEncodeUnknownExtension(t *testing.T) {
	_, err := graphbin.Encode(types.NewExtensionValue("test:Nowhere", types.NewIntValue(1)))
	require.ErrorIs(t, err, codec.ErrUnknownType)
}
