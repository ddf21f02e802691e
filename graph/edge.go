package graph

import (
	"github.com/buger/jsonparser"
	"github.com/cockroachdb/errors"
	"github.com/sharkspear94/gremwire/codec"
	"github.com/sharkspear94/gremwire/graphbin"
	"github.com/sharkspear94/gremwire/types"
)

// NewEdge returns a g:Edge extension value connecting outV to inV.
// Properties are optional g:Property values.
func NewEdge(id types.Value, label string, outVID types.Value, outVLabel string, inVID types.Value, inVLabel string, properties ...types.Value) types.ExtensionValue {
	return types.NewExtensionValue(NameEdge, types.NewMapValue(
		pair("id", id),
		pair("label", types.NewStringValue(label)),
		pair("inVId", inVID),
		pair("inVLabel", types.NewStringValue(inVLabel)),
		pair("outVId", outVID),
		pair("outVLabel", types.NewStringValue(outVLabel)),
		pair("properties", propertyList(properties)),
	))
}

// edgeBinary frames an edge as [id][label][inVId][inVLabel][outVId]
// [outVLabel][parent: always null][properties].
type edgeBinary struct{}

func (edgeBinary) Encode(dst []byte, v types.Value) ([]byte, error) {
	m, err := payload(v, NameEdge)
	if err != nil {
		return nil, err
	}
	label, err := stringField(m, NameEdge, "label")
	if err != nil {
		return nil, err
	}
	inVLabel, err := stringField(m, NameEdge, "inVLabel")
	if err != nil {
		return nil, err
	}
	outVLabel, err := stringField(m, NameEdge, "outVLabel")
	if err != nil {
		return nil, err
	}
	props, err := listField(m, NameEdge, "properties")
	if err != nil {
		return nil, err
	}

	dst, err = graphbin.EncodeValue(dst, field(m, "id"))
	if err != nil {
		return nil, err
	}
	dst, err = graphbin.EncodeString(dst, label)
	if err != nil {
		return nil, err
	}
	dst, err = graphbin.EncodeValue(dst, field(m, "inVId"))
	if err != nil {
		return nil, err
	}
	dst, err = graphbin.EncodeString(dst, inVLabel)
	if err != nil {
		return nil, err
	}
	dst, err = graphbin.EncodeValue(dst, field(m, "outVId"))
	if err != nil {
		return nil, err
	}
	dst, err = graphbin.EncodeString(dst, outVLabel)
	if err != nil {
		return nil, err
	}
	dst, err = graphbin.EncodeValue(dst, types.NewNullValue())
	if err != nil {
		return nil, err
	}
	return graphbin.EncodeValue(dst, props)
}

func (edgeBinary) Decode(r codec.Reader) (types.Value, error) {
	id, err := r.Value()
	if err != nil {
		return nil, err
	}
	label, err := r.String()
	if err != nil {
		return nil, err
	}
	inVID, err := r.Value()
	if err != nil {
		return nil, err
	}
	inVLabel, err := r.String()
	if err != nil {
		return nil, err
	}
	outVID, err := r.Value()
	if err != nil {
		return nil, err
	}
	outVLabel, err := r.String()
	if err != nil {
		return nil, err
	}
	if err := decodeParent(r); err != nil {
		return nil, err
	}
	props, err := r.Value()
	if err != nil {
		return nil, err
	}

	return newEdgeFromFields(id, label, inVID, inVLabel, outVID, outVLabel, props)
}

func newEdgeFromFields(id types.Value, label string, inVID types.Value, inVLabel string, outVID types.Value, outVLabel string, props types.Value) (types.Value, error) {
	if props.Type() != types.TypeList && props.Type() != types.TypeNull {
		return nil, errors.Wrap(codec.ErrMalformedPayload, "edge properties must be a list or null")
	}
	return types.NewExtensionValue(NameEdge, types.NewMapValue(
		pair("id", id),
		pair("label", types.NewStringValue(label)),
		pair("inVId", inVID),
		pair("inVLabel", types.NewStringValue(inVLabel)),
		pair("outVId", outVID),
		pair("outVLabel", types.NewStringValue(outVLabel)),
		pair("properties", props),
	)), nil
}

type edgeJSON struct{}

func (edgeJSON) Encode(dst []byte, v types.Value) ([]byte, error) {
	m, err := payload(v, NameEdge)
	if err != nil {
		return nil, err
	}
	for _, f := range []string{"label", "inVLabel", "outVLabel"} {
		if _, err := stringField(m, NameEdge, f); err != nil {
			return nil, err
		}
	}

	first := true
	for _, f := range []string{"id", "label", "inVId", "inVLabel", "outVId", "outVLabel", "properties"} {
		dst, err = jsonField(dst, first, f, field(m, f))
		if err != nil {
			return nil, err
		}
		first = false
	}
	return append(dst, '}'), nil
}

func (edgeJSON) Decode(data []byte, kind jsonparser.ValueType) (types.Value, error) {
	if kind != jsonparser.Object {
		return nil, errors.Wrap(codec.ErrMalformedPayload, "g:Edge payload must be an object")
	}

	id, err := jsonGet(data, "id")
	if err != nil {
		return nil, err
	}
	label, err := jsonGetString(data, NameEdge, "label")
	if err != nil {
		return nil, err
	}
	inVID, err := jsonGet(data, "inVId")
	if err != nil {
		return nil, err
	}
	inVLabel, err := jsonGetString(data, NameEdge, "inVLabel")
	if err != nil {
		return nil, err
	}
	outVID, err := jsonGet(data, "outVId")
	if err != nil {
		return nil, err
	}
	outVLabel, err := jsonGetString(data, NameEdge, "outVLabel")
	if err != nil {
		return nil, err
	}
	props, err := jsonGet(data, "properties")
	if err != nil {
		return nil, err
	}

	return newEdgeFromFields(id, label, inVID, inVLabel, outVID, outVLabel, props)
}
