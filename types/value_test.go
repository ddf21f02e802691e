package types_test

import (
	"math/big"
	"testing"

	"github.com/google/uuid"
	"github.com/sharkspear94/gremwire/types"
	"github.com/stretchr/testify/require"
)

func TestByteBufferImmutable(t *testing.T) {
	src := []byte{1, 2, 3}
	v := types.NewByteBufferValue(src)

	src[0] = 42
	require.Equal(t, []byte{1, 2, 3}, v.Bytes())

	out := v.Bytes()
	out[1] = 42
	require.Equal(t, []byte{1, 2, 3}, v.Bytes())
}

func TestBigIntegerImmutable(t *testing.T) {
	x := big.NewInt(100)
	v := types.NewBigIntegerValue(x)

	x.SetInt64(-1)
	require.Equal(t, "100", v.String())

	v.Int().SetInt64(-1)
	require.Equal(t, "100", v.String())
}

func TestSetDedupe(t *testing.T) {
	s := types.NewSetValue(
		types.NewIntValue(3),
		types.NewIntValue(1),
		types.NewIntValue(3),
		types.NewStringValue("a"),
		types.NewIntValue(1),
	)

	require.Equal(t, 3, s.Len())
	require.Equal(t, types.NewIntValue(3), s.Get(0))
	require.Equal(t, types.NewIntValue(1), s.Get(1))
	require.Equal(t, types.NewStringValue("a"), s.Get(2))
	require.True(t, s.Contains(types.NewIntValue(3)))
	require.False(t, s.Contains(types.NewLongValue(3)))
}

func TestMapKeys(t *testing.T) {
	u := uuid.MustParse("41d2e28a-20a4-4ab0-b379-d810dede3786")
	m := types.NewMapValue(
		types.Pair{Key: types.NewUUIDValue(u), Value: types.NewStringValue("by uuid")},
		types.Pair{Key: types.NewIntValue(7), Value: types.NewStringValue("by int")},
	)

	require.Equal(t, 2, m.Len())

	got, ok := m.Get(types.NewUUIDValue(u))
	require.True(t, ok)
	require.Equal(t, types.NewStringValue("by uuid"), got)

	// an equal key replaces the entry in place
	m2 := m.With(types.NewIntValue(7), types.NewStringValue("replaced"))
	require.Equal(t, 2, m2.Len())
	got, ok = m2.Get(types.NewIntValue(7))
	require.True(t, ok)
	require.Equal(t, types.NewStringValue("replaced"), got)

	// the original map is untouched
	got, _ = m.Get(types.NewIntValue(7))
	require.Equal(t, types.NewStringValue("by int"), got)

	// Int32 and Int64 keys never collide
	m3 := m.With(types.NewLongValue(7), types.NewStringValue("by long"))
	require.Equal(t, 3, m3.Len())
}

func TestBigDecimalString(t *testing.T) {
	tests := []struct {
		unscaled string
		scale    int32
		want     string
	}{
		{"0", 0, "0"},
		{"1234", 0, "1234"},
		{"1234", 2, "12.34"},
		{"1234", 4, "0.1234"},
		{"1234", 6, "0.001234"},
		{"-1234", 2, "-12.34"},
		{"-1", 3, "-0.001"},
		{"12", -3, "12E+3"},
		{"-5", -2, "-5E+2"},
		{"0", -2, "0E+2"},
	}

	for _, test := range tests {
		t.Run(test.want, func(t *testing.T) {
			u, ok := new(big.Int).SetString(test.unscaled, 10)
			require.True(t, ok)
			require.Equal(t, test.want, types.NewBigDecimalValue(u, test.scale).String())
		})
	}
}

func TestParseBigDecimal(t *testing.T) {
	tests := []struct {
		input        string
		wantUnscaled string
		wantScale    int32
		fails        bool
	}{
		{input: "12.34", wantUnscaled: "1234", wantScale: 2},
		{input: "-0.001", wantUnscaled: "-1", wantScale: 3},
		{input: "1234", wantUnscaled: "1234", wantScale: 0},
		{input: "1.2e2", wantUnscaled: "12", wantScale: -1},
		{input: "1.2E-2", wantUnscaled: "12", wantScale: 3},
		{input: "5E+2", wantUnscaled: "5", wantScale: -2},
		{input: "", fails: true},
		{input: "abc", fails: true},
		{input: "1.2.3", fails: true},
		{input: "1e", fails: true},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			d, err := types.ParseBigDecimalValue(test.input)
			if test.fails {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, test.wantUnscaled, d.Unscaled().String())
			require.Equal(t, test.wantScale, d.Scale())
		})
	}
}

func TestTypeString(t *testing.T) {
	require.Equal(t, "biginteger", types.TypeBigInteger.String())
	require.Equal(t, "map", types.TypeMap.String())
	require.True(t, types.TypeBigDecimal.IsNumber())
	require.True(t, types.TypeBigInteger.IsInteger())
	require.False(t, types.TypeDouble.IsInteger())
}
