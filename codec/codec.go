// Package codec holds the process-wide type registry mapping type
// identifiers to encode/decode strategies, and the error taxonomy
// shared by the GraphBinary and GraphSON codecs.
//
// The registry is populated once at initialization and is effectively
// immutable afterwards: registration is serialized, lookups are safe
// for unsynchronized concurrent use.
package codec

import (
	"sync"

	"github.com/buger/jsonparser"
	"github.com/cockroachdb/errors"
	"github.com/sharkspear94/gremwire/types"
)

// Reader is the binary payload cursor handed to a registered decoder.
// It reads from the value's payload, after the type code and value
// flag; Pos reports the absolute offset for diagnostics.
type Reader interface {
	// Value decodes a nested fully-qualified value.
	Value() (types.Value, error)
	// Int32 reads a 4-byte big-endian signed int.
	Int32() (int32, error)
	// Int64 reads an 8-byte big-endian signed int.
	Int64() (int64, error)
	// String reads a length-prefixed UTF-8 string.
	String() (string, error)
	// Bytes reads exactly n raw bytes.
	Bytes(n int) ([]byte, error)
	Pos() int
}

// Binary encodes and decodes a registered type's GraphBinary payload.
// The two-byte [type code][value flag] header is owned by the codec,
// not the entry.
type Binary interface {
	Encode(dst []byte, v types.Value) ([]byte, error)
	Decode(r Reader) (types.Value, error)
}

// JSON encodes and decodes a registered type's GraphSON @value
// payload. The @type envelope is owned by the codec, not the entry.
type JSON interface {
	Encode(dst []byte, v types.Value) ([]byte, error)
	Decode(data []byte, kind jsonparser.ValueType) (types.Value, error)
}

// Entry is a codec pair for one registered type identifier.
type Entry struct {
	// Code is the GraphBinary type code.
	Code byte
	// Name is the GraphSON type identifier, e.g. "g:Vertex".
	Name string

	Binary Binary
	JSON   JSON
}

var registry = struct {
	sync.RWMutex
	byCode map[byte]*Entry
	byName map[string]*Entry
}{
	byCode: make(map[byte]*Entry),
	byName: make(map[string]*Entry),
}

// Register adds a codec pair to the process-wide registry. Registering
// a code or identifier twice fails with ErrRegistered; registration
// must complete before concurrent encode/decode begins.
func Register(e Entry) error {
	if e.Name == "" {
		return errors.Wrap(ErrRegistered, "empty type identifier")
	}
	if e.Binary == nil || e.JSON == nil {
		return errors.Wrapf(ErrRegistered, "%q: missing codec pair", e.Name)
	}

	registry.Lock()
	defer registry.Unlock()

	if _, ok := registry.byCode[e.Code]; ok {
		return errors.Wrapf(ErrRegistered, "type code 0x%02x", e.Code)
	}
	if _, ok := registry.byName[e.Name]; ok {
		return errors.Wrapf(ErrRegistered, "type identifier %q", e.Name)
	}

	registry.byCode[e.Code] = &e
	registry.byName[e.Name] = &e
	return nil
}

// ByCode returns the entry registered under a GraphBinary type code.
func ByCode(code byte) (*Entry, bool) {
	registry.RLock()
	defer registry.RUnlock()

	e, ok := registry.byCode[code]
	return e, ok
}

// ByName returns the entry registered under a GraphSON identifier.
func ByName(name string) (*Entry, bool) {
	registry.RLock()
	defer registry.RUnlock()

	e, ok := registry.byName[name]
	return e, ok
}
