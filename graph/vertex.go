package graph

import (
	"github.com/buger/jsonparser"
	"github.com/cockroachdb/errors"
	"github.com/sharkspear94/gremwire/codec"
	"github.com/sharkspear94/gremwire/graphbin"
	"github.com/sharkspear94/gremwire/types"
)

// NewVertex returns a g:Vertex extension value. The id may be any
// value variant; properties are optional g:VertexProperty values.
func NewVertex(id types.Value, label string, properties ...types.Value) types.ExtensionValue {
	return types.NewExtensionValue(NameVertex, types.NewMapValue(
		pair("id", id),
		pair("label", types.NewStringValue(label)),
		pair("properties", propertyList(properties)),
	))
}

// vertexBinary frames a vertex as
// [id: value][label: string payload][properties: value].
type vertexBinary struct{}

func (vertexBinary) Encode(dst []byte, v types.Value) ([]byte, error) {
	m, err := payload(v, NameVertex)
	if err != nil {
		return nil, err
	}
	label, err := stringField(m, NameVertex, "label")
	if err != nil {
		return nil, err
	}
	props, err := listField(m, NameVertex, "properties")
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
	return graphbin.EncodeValue(dst, props)
}

func (vertexBinary) Decode(r codec.Reader) (types.Value, error) {
	id, err := r.Value()
	if err != nil {
		return nil, err
	}
	label, err := r.String()
	if err != nil {
		return nil, err
	}
	props, err := r.Value()
	if err != nil {
		return nil, err
	}

	return NewVertexFromFields(id, label, props)
}

// NewVertexFromFields rebuilds a vertex from decoded wire fields,
// validating the properties slot.
func NewVertexFromFields(id types.Value, label string, props types.Value) (types.Value, error) {
	if props.Type() != types.TypeList && props.Type() != types.TypeNull {
		return nil, errors.Wrap(codec.ErrMalformedPayload, "vertex properties must be a list or null")
	}
	return types.NewExtensionValue(NameVertex, types.NewMapValue(
		pair("id", id),
		pair("label", types.NewStringValue(label)),
		pair("properties", props),
	)), nil
}

// vertexJSON wraps {"id":<tagged>,"label":"...","properties":<tagged>}.
type vertexJSON struct{}

func (vertexJSON) Encode(dst []byte, v types.Value) ([]byte, error) {
	m, err := payload(v, NameVertex)
	if err != nil {
		return nil, err
	}
	if _, err := stringField(m, NameVertex, "label"); err != nil {
		return nil, err
	}

	dst, err = jsonField(dst, true, "id", field(m, "id"))
	if err != nil {
		return nil, err
	}
	dst, err = jsonField(dst, false, "label", field(m, "label"))
	if err != nil {
		return nil, err
	}
	dst, err = jsonField(dst, false, "properties", field(m, "properties"))
	if err != nil {
		return nil, err
	}
	return append(dst, '}'), nil
}

func (vertexJSON) Decode(data []byte, kind jsonparser.ValueType) (types.Value, error) {
	if kind != jsonparser.Object {
		return nil, errors.Wrap(codec.ErrMalformedPayload, "g:Vertex payload must be an object")
	}

	id, err := jsonGet(data, "id")
	if err != nil {
		return nil, err
	}
	label, err := jsonGetString(data, NameVertex, "label")
	if err != nil {
		return nil, err
	}
	props, err := jsonGet(data, "properties")
	if err != nil {
		return nil, err
	}

	return NewVertexFromFields(id, label, props)
}
