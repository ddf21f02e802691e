// Package graph registers the graph-native composite types — Vertex,
// Edge, VertexProperty, Property and Path — as extensions. They are
// modeled as extension values with a fixed, versioned field layout:
// the payload is a map with string keys, one entry per wire field.
package graph

import (
	"github.com/buger/jsonparser"
	"github.com/cockroachdb/errors"
	"github.com/sharkspear94/gremwire/codec"
	"github.com/sharkspear94/gremwire/graphson"
	"github.com/sharkspear94/gremwire/types"
)

// GraphBinary type codes of the composites.
const (
	CodeEdge           = 0x0d
	CodePath           = 0x0e
	CodeProperty       = 0x0f
	CodeVertex         = 0x11
	CodeVertexProperty = 0x12
)

// GraphSON identifiers of the composites.
const (
	NameEdge           = "g:Edge"
	NamePath           = "g:Path"
	NameProperty       = "g:Property"
	NameVertex         = "g:Vertex"
	NameVertexProperty = "g:VertexProperty"
)

// Register adds the five composite codec pairs to the registry. It
// must complete before concurrent encode/decode begins.
func Register() error {
	entries := []codec.Entry{
		{Code: CodeVertex, Name: NameVertex, Binary: vertexBinary{}, JSON: vertexJSON{}},
		{Code: CodeEdge, Name: NameEdge, Binary: edgeBinary{}, JSON: edgeJSON{}},
		{Code: CodeVertexProperty, Name: NameVertexProperty, Binary: vertexPropertyBinary{}, JSON: vertexPropertyJSON{}},
		{Code: CodeProperty, Name: NameProperty, Binary: propertyBinary{}, JSON: propertyJSON{}},
		{Code: CodePath, Name: NamePath, Binary: pathBinary{}, JSON: pathJSON{}},
	}

	for _, e := range entries {
		if err := codec.Register(e); err != nil {
			return err
		}
	}
	return nil
}

// payload unwraps an extension value registered under name and returns
// its map payload.
func payload(v types.Value, name string) (types.MapValue, error) {
	x, ok := v.(types.ExtensionValue)
	if !ok || x.Name() != name {
		return types.MapValue{}, errors.Wrapf(codec.ErrEncode, "%s cannot encode %s", name, v.Type())
	}
	m, ok := x.Payload().(types.MapValue)
	if !ok {
		return types.MapValue{}, errors.Wrapf(codec.ErrEncode, "%s payload must be a map", name)
	}
	return m, nil
}

// field returns the payload entry under a string key, null if absent.
func field(m types.MapValue, name string) types.Value {
	v, ok := m.Get(types.NewStringValue(name))
	if !ok {
		return types.NewNullValue()
	}
	return v
}

// stringField returns the payload entry under name, which must be a
// string.
func stringField(m types.MapValue, owner, name string) (string, error) {
	v := field(m, name)
	if v.Type() != types.TypeString {
		return "", errors.Wrapf(codec.ErrEncode, "%s field %q must be a string", owner, name)
	}
	return types.AsString(v), nil
}

// listField returns the payload entry under name, which must be a list
// or null.
func listField(m types.MapValue, owner, name string) (types.Value, error) {
	v := field(m, name)
	if v.Type() != types.TypeList && v.Type() != types.TypeNull {
		return nil, errors.Wrapf(codec.ErrEncode, "%s field %q must be a list or null", owner, name)
	}
	return v, nil
}

func pair(key string, v types.Value) types.Pair {
	return types.Pair{Key: types.NewStringValue(key), Value: v}
}

// propertyList folds optional trailing properties into a list value,
// null when empty.
func propertyList(props []types.Value) types.Value {
	if len(props) == 0 {
		return types.NewNullValue()
	}
	return types.NewListValue(props...)
}

// decodeParent reads the composite's parent slot, which this layout
// keeps null on the wire.
func decodeParent(r codec.Reader) error {
	at := r.Pos()
	parent, err := r.Value()
	if err != nil {
		return err
	}
	if !types.IsNull(parent) {
		return errors.Wrapf(codec.ErrMalformedPayload, "offset %d: parent element must be null", at)
	}
	return nil
}

// jsonField appends `,"name":<value>` (or the opening brace on the
// first field).
func jsonField(dst []byte, first bool, name string, v types.Value) ([]byte, error) {
	if first {
		dst = append(dst, '{')
	} else {
		dst = append(dst, ',')
	}
	dst, err := graphson.AppendValue(dst, types.NewStringValue(name))
	if err != nil {
		return nil, err
	}
	dst = append(dst, ':')
	return graphson.AppendValue(dst, v)
}

// jsonGet decodes the tagged value under key; missing keys decode to
// null.
func jsonGet(data []byte, key string) (types.Value, error) {
	val, dt, _, err := jsonparser.Get(data, key)
	if err != nil {
		if errors.Is(err, jsonparser.KeyPathNotFoundError) {
			return types.NewNullValue(), nil
		}
		return nil, errors.Wrapf(codec.ErrMalformedPayload, "invalid field %q", key)
	}
	return graphson.DecodeValue(val, dt)
}

// jsonGetString decodes the native string under key.
func jsonGetString(data []byte, owner, key string) (string, error) {
	s, err := jsonparser.GetString(data, key)
	if err != nil {
		return "", errors.Wrapf(codec.ErrMalformedPayload, "%s field %q must be a string", owner, key)
	}
	return s, nil
}
