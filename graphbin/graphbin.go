// Package graphbin implements the GraphBinary wire format: every value
// is framed as [type code: 1 byte][value flag: 1 byte][payload], where
// the value flag distinguishes null (payload omitted) from present.
// Both directions are stateless pure functions over the value model.
package graphbin

// GraphBinary type codes for the natively modeled variants. Codes for
// registered extensions (graph composites, extended temporal types)
// live in the registry.
const (
	IntValue        = 0x01
	LongValue       = 0x02
	StringValue     = 0x03
	DoubleValue     = 0x07
	FloatValue      = 0x08
	ListValue       = 0x09
	MapValue        = 0x0a
	SetValue        = 0x0b
	UUIDValue       = 0x0c
	BigDecimalValue = 0x22
	BigIntegerValue = 0x23
	ByteBufferValue = 0x25
	BooleanValue    = 0x27
	NullValue       = 0xfe
)

// Value flags.
const (
	ValueFlagSet  = 0x00
	ValueFlagNull = 0x01
)

// InstantName is the registry identifier the codec dispatches
// timestamps through once extended temporal support is registered.
const InstantName = "gx:Instant"
