package graph

import (
	"github.com/buger/jsonparser"
	"github.com/cockroachdb/errors"
	"github.com/sharkspear94/gremwire/codec"
	"github.com/sharkspear94/gremwire/graphbin"
	"github.com/sharkspear94/gremwire/types"
)

// NewProperty returns a g:Property extension value.
func NewProperty(key string, value types.Value) types.ExtensionValue {
	return types.NewExtensionValue(NameProperty, types.NewMapValue(
		pair("key", types.NewStringValue(key)),
		pair("value", value),
	))
}

// NewVertexProperty returns a g:VertexProperty extension value.
// Meta-properties are optional g:Property values.
func NewVertexProperty(id types.Value, label string, value types.Value, properties ...types.Value) types.ExtensionValue {
	return types.NewExtensionValue(NameVertexProperty, types.NewMapValue(
		pair("id", id),
		pair("label", types.NewStringValue(label)),
		pair("value", value),
		pair("properties", propertyList(properties)),
	))
}

// propertyBinary frames a property as
// [key: string payload][value][parent: always null].
type propertyBinary struct{}

func (propertyBinary) Encode(dst []byte, v types.Value) ([]byte, error) {
	m, err := payload(v, NameProperty)
	if err != nil {
		return nil, err
	}
	key, err := stringField(m, NameProperty, "key")
	if err != nil {
		return nil, err
	}

	dst, err = graphbin.EncodeString(dst, key)
	if err != nil {
		return nil, err
	}
	dst, err = graphbin.EncodeValue(dst, field(m, "value"))
	if err != nil {
		return nil, err
	}
	return graphbin.EncodeValue(dst, types.NewNullValue())
}

func (propertyBinary) Decode(r codec.Reader) (types.Value, error) {
	key, err := r.String()
	if err != nil {
		return nil, err
	}
	value, err := r.Value()
	if err != nil {
		return nil, err
	}
	if err := decodeParent(r); err != nil {
		return nil, err
	}

	return NewProperty(key, value), nil
}

type propertyJSON struct{}

func (propertyJSON) Encode(dst []byte, v types.Value) ([]byte, error) {
	m, err := payload(v, NameProperty)
	if err != nil {
		return nil, err
	}
	if _, err := stringField(m, NameProperty, "key"); err != nil {
		return nil, err
	}

	dst, err = jsonField(dst, true, "key", field(m, "key"))
	if err != nil {
		return nil, err
	}
	dst, err = jsonField(dst, false, "value", field(m, "value"))
	if err != nil {
		return nil, err
	}
	return append(dst, '}'), nil
}

func (propertyJSON) Decode(data []byte, kind jsonparser.ValueType) (types.Value, error) {
	if kind != jsonparser.Object {
		return nil, errors.Wrap(codec.ErrMalformedPayload, "g:Property payload must be an object")
	}

	key, err := jsonGetString(data, NameProperty, "key")
	if err != nil {
		return nil, err
	}
	value, err := jsonGet(data, "value")
	if err != nil {
		return nil, err
	}

	return NewProperty(key, value), nil
}

// vertexPropertyBinary frames a vertex property as
// [id][label: string payload][value][parent: always null][properties].
type vertexPropertyBinary struct{}

func (vertexPropertyBinary) Encode(dst []byte, v types.Value) ([]byte, error) {
	m, err := payload(v, NameVertexProperty)
	if err != nil {
		return nil, err
	}
	label, err := stringField(m, NameVertexProperty, "label")
	if err != nil {
		return nil, err
	}
	props, err := listField(m, NameVertexProperty, "properties")
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
	dst, err = graphbin.EncodeValue(dst, field(m, "value"))
	if err != nil {
		return nil, err
	}
	dst, err = graphbin.EncodeValue(dst, types.NewNullValue())
	if err != nil {
		return nil, err
	}
	return graphbin.EncodeValue(dst, props)
}

func (vertexPropertyBinary) Decode(r codec.Reader) (types.Value, error) {
	id, err := r.Value()
	if err != nil {
		return nil, err
	}
	label, err := r.String()
	if err != nil {
		return nil, err
	}
	value, err := r.Value()
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

	return newVertexPropertyFromFields(id, label, value, props)
}

func newVertexPropertyFromFields(id types.Value, label string, value, props types.Value) (types.Value, error) {
	if props.Type() != types.TypeList && props.Type() != types.TypeNull {
		return nil, errors.Wrap(codec.ErrMalformedPayload, "vertex property meta-properties must be a list or null")
	}
	return types.NewExtensionValue(NameVertexProperty, types.NewMapValue(
		pair("id", id),
		pair("label", types.NewStringValue(label)),
		pair("value", value),
		pair("properties", props),
	)), nil
}

type vertexPropertyJSON struct{}

func (vertexPropertyJSON) Encode(dst []byte, v types.Value) ([]byte, error) {
	m, err := payload(v, NameVertexProperty)
	if err != nil {
		return nil, err
	}
	if _, err := stringField(m, NameVertexProperty, "label"); err != nil {
		return nil, err
	}

	first := true
	for _, f := range []string{"id", "label", "value", "properties"} {
		dst, err = jsonField(dst, first, f, field(m, f))
		if err != nil {
			return nil, err
		}
		first = false
	}
	return append(dst, '}'), nil
}

func (vertexPropertyJSON) Decode(data []byte, kind jsonparser.ValueType) (types.Value, error) {
	if kind != jsonparser.Object {
		return nil, errors.Wrap(codec.ErrMalformedPayload, "g:VertexProperty payload must be an object")
	}

	id, err := jsonGet(data, "id")
	if err != nil {
		return nil, err
	}
	label, err := jsonGetString(data, NameVertexProperty, "label")
	if err != nil {
		return nil, err
	}
	value, err := jsonGet(data, "value")
	if err != nil {
		return nil, err
	}
	props, err := jsonGet(data, "properties")
	if err != nil {
		return nil, err
	}

	return newVertexPropertyFromFields(id, label, value, props)
}
