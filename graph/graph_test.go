package graph_test

import (
	"os"
	"testing"

	"github.com/sharkspear94/gremwire/codec"
	"github.com/sharkspear94/gremwire/graph"
	"github.com/sharkspear94/gremwire/graphbin"
	"github.com/sharkspear94/gremwire/graphson"
	"github.com/sharkspear94/gremwire/types"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	if err := graph.Register(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestRegisterTwice(t *testing.T) {
	require.ErrorIs(t, graph.Register(), codec.ErrRegistered)
}

func TestVertexPayload(t *testing.T) {
	v := graph.NewVertex(types.NewLongValue(1), "airport")
	require.Equal(t, types.TypeExtension, v.Type())
	require.Equal(t, graph.NameVertex, v.Name())

	m := v.Payload().(types.MapValue)
	id, ok := m.Get(types.NewStringValue("id"))
	require.True(t, ok)
	require.Equal(t, types.NewLongValue(1), id)

	// no trailing properties means a null slot
	props, ok := m.Get(types.NewStringValue("properties"))
	require.True(t, ok)
	require.True(t, types.IsNull(props))
}

func roundTripBinary(t *testing.T, v types.Value) types.Value {
	t.Helper()
	buf, err := graphbin.Encode(v)
	require.NoError(t, err)
	got, n, err := graphbin.Decode(buf)
	require.NoError(t, err)
	require.Equal(t, len(buf), n)
	return got
}

func roundTripJSON(t *testing.T, v types.Value) types.Value {
	t.Helper()
	doc, err := graphson.Encode(v)
	require.NoError(t, err)
	got, err := graphson.Decode(doc)
	require.NoError(t, err)
	return got
}

func TestCompositeRoundTrips(t *testing.T) {
	vertex := graph.NewVertex(types.NewLongValue(1), "airport",
		graph.NewVertexProperty(types.NewLongValue(10), "code", types.NewStringValue("AUS")),
	)
	edge := graph.NewEdge(
		types.NewLongValue(2), "route",
		types.NewLongValue(1), "airport",
		types.NewLongValue(3), "airport",
		graph.NewProperty("dist", types.NewIntValue(763)),
	)
	path := graph.NewPath(
		types.NewListValue(
			types.NewSetValue(types.NewStringValue("a")),
			types.NewSetValue(),
		),
		types.NewListValue(vertex, types.NewStringValue("AUS")),
	)

	tests := []struct {
		name  string
		input types.Value
	}{
		{"vertex", vertex},
		{"bare vertex", graph.NewVertex(types.NewStringValue("v1"), "city")},
		{"edge", edge},
		{"vertex property", graph.NewVertexProperty(types.NewIntValue(5), "code", types.NewStringValue("LHR"))},
		{"property", graph.NewProperty("runways", types.NewIntValue(3))},
		{"path", path},
		{"empty path", graph.NewPath(types.NewListValue(), types.NewListValue())},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := roundTripBinary(t, test.input)
			require.True(t, types.Equal(test.input, got), "binary: got %s", got)

			got = roundTripJSON(t, test.input)
			require.True(t, types.Equal(test.input, got), "graphson: got %s", got)
		})
	}
}

func TestVertexGraphSONShape(t *testing.T) {
	doc, err := graphson.Encode(graph.NewVertex(types.NewLongValue(1), "airport"))
	require.NoError(t, err)
	require.Equal(t,
		`{"@type":"g:Vertex","@value":{"id":{"@type":"g:Int64","@value":1},"label":"airport","properties":null}}`,
		string(doc))
}

func TestVertexBinaryShape(t *testing.T) {
	buf, err := graphbin.Encode(graph.NewVertex(types.NewLongValue(1), "a"))
	require.NoError(t, err)
	require.Equal(t, []byte{
		0x11, 0x00, // vertex header
		0x02, 0x00, 0, 0, 0, 0, 0, 0, 0, 0x01, // id
		0x00, 0x00, 0x00, 0x01, 'a', // label, no type header
		0xfe, 0x01, // null properties
	}, buf)
}

func TestEncodeFieldValidation(t *testing.T) {
	// label must be a string
	bad := types.NewExtensionValue(graph.NameVertex, types.NewMapValue(
		types.Pair{Key: types.NewStringValue("id"), Value: types.NewLongValue(1)},
		types.Pair{Key: types.NewStringValue("label"), Value: types.NewIntValue(7)},
	))
	_, err := graphbin.Encode(bad)
	require.ErrorIs(t, err, codec.ErrEncode)
	_, err = graphson.Encode(bad)
	require.ErrorIs(t, err, codec.ErrEncode)

	// properties must be a list or null
	bad = types.NewExtensionValue(graph.NameVertex, types.NewMapValue(
		types.Pair{Key: types.NewStringValue("label"), Value: types.NewStringValue("x")},
		types.Pair{Key: types.NewStringValue("properties"), Value: types.NewIntValue(1)},
	))
	_, err = graphbin.Encode(bad)
	require.ErrorIs(t, err, codec.ErrEncode)

	// payload must be a map
	bad = types.NewExtensionValue(graph.NameVertex, types.NewIntValue(1))
	_, err = graphbin.Encode(bad)
	require.ErrorIs(t, err, codec.ErrEncode)
}

func TestPathValidation(t *testing.T) {
	// lists of different lengths never encode
	p := graph.NewPath(
		types.NewListValue(types.NewSetValue()),
		types.NewListValue(),
	)
	_, err := graphbin.Encode(p)
	require.ErrorIs(t, err, codec.ErrEncode)
	_, err = graphson.Encode(p)
	require.ErrorIs(t, err, codec.ErrEncode)

	// label elements must be sets, on encode as well as decode
	p = graph.NewPath(
		types.NewListValue(types.NewStringValue("a")),
		types.NewListValue(types.NewIntValue(1)),
	)
	_, err = graphbin.Encode(p)
	require.ErrorIs(t, err, codec.ErrEncode)
	_, err = graphson.Encode(p)
	require.ErrorIs(t, err, codec.ErrEncode)
}

func TestDecodeValidation(t *testing.T) {
	// labels elements must be sets
	doc := `{"@type":"g:Path","@value":{"labels":{"@type":"g:List","@value":["a"]},"objects":{"@type":"g:List","@value":[1]}}}`
	_, err := graphson.Decode([]byte(doc))
	require.ErrorIs(t, err, codec.ErrMalformedPayload)

	// vertex label must be a string
	doc = `{"@type":"g:Vertex","@value":{"id":1,"label":2,"properties":null}}`
	_, err = graphson.Decode([]byte(doc))
	require.ErrorIs(t, err, codec.ErrMalformedPayload)

	// vertex payload must be an object
	doc = `{"@type":"g:Vertex","@value":[1]}`
	_, err = graphson.Decode([]byte(doc))
	require.ErrorIs(t, err, codec.ErrMalformedPayload)
}

func TestEdgeParentSlot(t *testing.T) {
	edge := graph.NewEdge(
		types.NewIntValue(9), "route",
		types.NewIntValue(1), "airport",
		types.NewIntValue(2), "airport",
	)
	buf, err := graphbin.Encode(edge)
	require.NoError(t, err)

	// the parent slot sits right before the trailing null properties;
	// flip it to a present int and the decode must fail
	require.Equal(t, []byte{0xfe, 0x01, 0xfe, 0x01}, buf[len(buf)-4:])
	buf = append(buf[:len(buf)-4], 0x01, 0x00, 0, 0, 0, 0x05, 0xfe, 0x01)
	_, _, err = graphbin.Decode(buf)
	require.ErrorIs(t, err, codec.ErrMalformedPayload)
}
