package codec

import "github.com/cockroachdb/errors"

// Error taxonomy shared by both codecs. All failures are fatal to the
// single call that raised them; a decode either returns a complete
// value or nothing usable. Binary errors are wrapped with the byte
// offset of the fault, GraphSON errors with a path.
var (
	// ErrRegistered is raised at registration time when a type code or
	// identifier is already taken. It is never raised at codec-use time.
	ErrRegistered = errors.New("type already registered")

	// ErrEncode reports a value that fails an invariant at encode time.
	ErrEncode = errors.New("encode error")

	// ErrUnknownType reports a type code or identifier absent from the
	// registry.
	ErrUnknownType = errors.New("unknown type")

	// ErrTruncatedInput reports a declared length that exceeds the
	// remaining input.
	ErrTruncatedInput = errors.New("truncated input")

	// ErrMalformedPayload reports payload bytes or text that cannot be
	// parsed as the claimed kind.
	ErrMalformedPayload = errors.New("malformed payload")

	// ErrStructural reports a null in a grammatical position that
	// cannot be null.
	ErrStructural = errors.New("unexpected null value")
)
