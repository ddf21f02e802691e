package graph

import (
	"github.com/buger/jsonparser"
	"github.com/cockroachdb/errors"
	"github.com/sharkspear94/gremwire/codec"
	"github.com/sharkspear94/gremwire/graphbin"
	"github.com/sharkspear94/gremwire/types"
)

// NewPath returns a g:Path extension value. labels holds one set of
// step labels per traversed object; the two lists must be the same
// length.
func NewPath(labels types.ListValue, objects types.ListValue) types.ExtensionValue {
	return types.NewExtensionValue(NamePath, types.NewMapValue(
		pair("labels", labels),
		pair("objects", objects),
	))
}

// pathBinary frames a path as [labels: value][objects: value].
type pathBinary struct{}

func (pathBinary) Encode(dst []byte, v types.Value) ([]byte, error) {
	m, err := payload(v, NamePath)
	if err != nil {
		return nil, err
	}
	labels, objects, err := pathFields(m)
	if err != nil {
		return nil, err
	}

	dst, err = graphbin.EncodeValue(dst, labels)
	if err != nil {
		return nil, err
	}
	return graphbin.EncodeValue(dst, objects)
}

func (pathBinary) Decode(r codec.Reader) (types.Value, error) {
	at := r.Pos()
	labels, err := r.Value()
	if err != nil {
		return nil, err
	}
	objects, err := r.Value()
	if err != nil {
		return nil, err
	}

	p, err := newPathFromFields(labels, objects)
	if err != nil {
		return nil, errors.Wrapf(err, "offset %d", at)
	}
	return p, nil
}

func pathFields(m types.MapValue) (labels, objects types.Value, err error) {
	labels = field(m, "labels")
	objects = field(m, "objects")
	if labels.Type() != types.TypeList || objects.Type() != types.TypeList {
		return nil, nil, errors.Wrap(codec.ErrEncode, "path labels and objects must be lists")
	}
	ll := labels.(types.ListValue)
	if ll.Len() != objects.(types.ListValue).Len() {
		return nil, nil, errors.Wrap(codec.ErrEncode, "path labels and objects must have the same length")
	}
	for i := 0; i < ll.Len(); i++ {
		if ll.Get(i).Type() != types.TypeSet {
			return nil, nil, errors.Wrap(codec.ErrEncode, "path labels must be sets of strings")
		}
	}
	return labels, objects, nil
}

func newPathFromFields(labels, objects types.Value) (types.Value, error) {
	ll, ok := labels.(types.ListValue)
	if !ok {
		return nil, errors.Wrap(codec.ErrMalformedPayload, "path labels must be a list")
	}
	ol, ok := objects.(types.ListValue)
	if !ok {
		return nil, errors.Wrap(codec.ErrMalformedPayload, "path objects must be a list")
	}
	if ll.Len() != ol.Len() {
		return nil, errors.Wrap(codec.ErrMalformedPayload, "path labels and objects must have the same length")
	}
	for i := 0; i < ll.Len(); i++ {
		if ll.Get(i).Type() != types.TypeSet {
			return nil, errors.Wrap(codec.ErrMalformedPayload, "path labels must be sets of strings")
		}
	}

	return NewPath(ll, ol), nil
}

type pathJSON struct{}

func (pathJSON) Encode(dst []byte, v types.Value) ([]byte, error) {
	m, err := payload(v, NamePath)
	if err != nil {
		return nil, err
	}
	labels, objects, err := pathFields(m)
	if err != nil {
		return nil, err
	}

	dst, err = jsonField(dst, true, "labels", labels)
	if err != nil {
		return nil, err
	}
	dst, err = jsonField(dst, false, "objects", objects)
	if err != nil {
		return nil, err
	}
	return append(dst, '}'), nil
}

func (pathJSON) Decode(data []byte, kind jsonparser.ValueType) (types.Value, error) {
	if kind != jsonparser.Object {
		return nil, errors.Wrap(codec.ErrMalformedPayload, "g:Path payload must be an object")
	}

	labels, err := jsonGet(data, "labels")
	if err != nil {
		return nil, err
	}
	objects, err := jsonGet(data, "objects")
	if err != nil {
		return nil, err
	}

	return newPathFromFields(labels, objects)
}
