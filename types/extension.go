package types

import "fmt"

var _ Value = NewExtensionValue("", nil)

// ExtensionValue carries a type not natively modeled by the core: a
// stable type identifier plus a structured payload whose shape is
// owned by the registry entry for that identifier, not by the codecs.
type ExtensionValue struct {
	name    string
	payload Value
}

// NewExtensionValue returns an extension value. A nil payload is
// normalized to null.
func NewExtensionValue(name string, payload Value) ExtensionValue {
	if payload == nil {
		payload = NewNullValue()
	}
	return ExtensionValue{name: name, payload: payload}
}

func (v ExtensionValue) V() any {
	return v.payload
}

func (v ExtensionValue) Type() Type {
	return TypeExtension
}

// Name returns the registered type identifier, e.g. "g:Vertex".
func (v ExtensionValue) Name() string {
	return v.name
}

// Payload returns the structured payload.
func (v ExtensionValue) Payload() Value {
	return v.payload
}

func (v ExtensionValue) String() string {
	return fmt.Sprintf("%s(%s)", v.name, v.payload)
}
