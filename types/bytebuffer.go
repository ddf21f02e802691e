package types

import "fmt"

var _ Value = NewByteBufferValue(nil)

type ByteBufferValue struct {
	b []byte
}

// NewByteBufferValue returns a Gremlin ByteBuffer value. The input
// slice is copied so the value stays immutable.
func NewByteBufferValue(x []byte) ByteBufferValue {
	b := make([]byte, len(x))
	copy(b, x)
	return ByteBufferValue{b: b}
}

func (v ByteBufferValue) V() any {
	return v.Bytes()
}

func (v ByteBufferValue) Type() Type {
	return TypeByteBuffer
}

// Bytes returns a copy of the underlying bytes.
func (v ByteBufferValue) Bytes() []byte {
	b := make([]byte, len(v.b))
	copy(b, v.b)
	return b
}

func (v ByteBufferValue) Len() int {
	return len(v.b)
}

func (v ByteBufferValue) String() string {
	return fmt.Sprintf("%x", v.b)
}
