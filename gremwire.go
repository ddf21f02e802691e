// Package gremwire serializes Gremlin values across the two TinkerPop
// wire formats: GraphBinary (compact, type code + length-prefixed
// payloads) and GraphSON v3 (@type/@value tagged text). Values are
// built with the types package; graph-native composites (vertices,
// edges, paths, properties) come from the graph package and are
// registered here as built-in extensions.
//
// Both codecs are stateless pure functions and safe for concurrent
// use once registration has completed.
package gremwire

import (
	"sync"

	"github.com/sharkspear94/gremwire/codec"
	"github.com/sharkspear94/gremwire/extended"
	"github.com/sharkspear94/gremwire/graph"
	"github.com/sharkspear94/gremwire/graphbin"
	"github.com/sharkspear94/gremwire/graphson"
	"github.com/sharkspear94/gremwire/types"
)

func init() {
	if err := graph.Register(); err != nil {
		panic(err)
	}
}

// EncodeBinary returns the fully-qualified GraphBinary form of v.
func EncodeBinary(v types.Value) ([]byte, error) {
	return graphbin.Encode(v)
}

// DecodeBinary reads one value from the start of buf and returns it
// along with the number of bytes consumed.
func DecodeBinary(buf []byte) (types.Value, int, error) {
	return graphbin.Decode(buf)
}

// EncodeGraphSON returns the compact GraphSON v3 document for v.
func EncodeGraphSON(v types.Value) ([]byte, error) {
	return graphson.Encode(v)
}

// DecodeGraphSON parses a GraphSON v3 document into a value.
func DecodeGraphSON(doc []byte) (types.Value, error) {
	return graphson.Decode(doc)
}

// RegisterExtension adds a codec pair for a user type. Registration
// must complete before concurrent encode/decode begins; registering a
// type code or identifier twice fails with codec.ErrRegistered.
func RegisterExtension(e codec.Entry) error {
	return codec.Register(e)
}

var (
	extendedOnce sync.Once
	extendedErr  error
)

// EnableExtendedTypes registers the extended temporal types
// (gx:Instant), making timestamps encodable. Safe to call more than
// once.
func EnableExtendedTypes() error {
	extendedOnce.Do(func() {
		extendedErr = extended.Register()
	})
	return extendedErr
}
