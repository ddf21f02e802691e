// Package extended registers the extended temporal types. Until
// Register is called, timestamps cannot be encoded and the gx:Instant
// identifier is unknown to both codecs.
package extended

import (
	"time"

	"github.com/buger/jsonparser"
	"github.com/cockroachdb/errors"
	"github.com/sharkspear94/gremwire/codec"
	"github.com/sharkspear94/gremwire/graphbin"
	"github.com/sharkspear94/gremwire/graphson"
	"github.com/sharkspear94/gremwire/types"
)

// InstantCode is the GraphBinary type code for gx:Instant.
const InstantCode = 0x83

// Register adds the extended temporal codec pair to the registry.
// It must complete before concurrent encode/decode begins.
func Register() error {
	return codec.Register(codec.Entry{
		Code:   InstantCode,
		Name:   graphson.TypeInstant,
		Binary: instantBinary{},
		JSON:   instantJSON{},
	})
}

// instantBinary frames an instant as [seconds: int64][nanos: int32].
type instantBinary struct{}

func (instantBinary) Encode(dst []byte, v types.Value) ([]byte, error) {
	if v.Type() != types.TypeTimestamp {
		return nil, errors.Wrapf(codec.ErrEncode, "gx:Instant cannot encode %s", v.Type())
	}

	t := types.AsTime(v)
	dst = graphbin.EncodeInt64(dst, t.Unix())
	return graphbin.EncodeInt32(dst, int32(t.Nanosecond())), nil
}

func (instantBinary) Decode(r codec.Reader) (types.Value, error) {
	sec, err := r.Int64()
	if err != nil {
		return nil, err
	}
	at := r.Pos()
	nsec, err := r.Int32()
	if err != nil {
		return nil, err
	}
	if nsec < 0 || nsec > 999_999_999 {
		return nil, errors.Wrapf(codec.ErrMalformedPayload, "offset %d: nanos %d out of range", at, nsec)
	}

	return types.NewTimestampFromUnix(sec, nsec), nil
}

// instantJSON wraps the ISO-8601 UTC text form.
type instantJSON struct{}

func (instantJSON) Encode(dst []byte, v types.Value) ([]byte, error) {
	if v.Type() != types.TypeTimestamp {
		return nil, errors.Wrapf(codec.ErrEncode, "gx:Instant cannot encode %s", v.Type())
	}

	s := types.AsTime(v).UTC().Format(time.RFC3339Nano)
	return graphson.AppendValue(dst, types.NewStringValue(s))
}

func (instantJSON) Decode(data []byte, kind jsonparser.ValueType) (types.Value, error) {
	if kind != jsonparser.String {
		return nil, errors.Wrap(codec.ErrMalformedPayload, "gx:Instant payload must be a string")
	}

	s, err := jsonparser.ParseString(data)
	if err != nil {
		return nil, errors.Wrap(codec.ErrMalformedPayload, "gx:Instant payload must be a string")
	}
	t, err := types.ParseTimestamp(s)
	if err != nil {
		return nil, errors.Wrapf(codec.ErrMalformedPayload, "%q is not an instant", s)
	}
	return types.NewTimestampValue(t), nil
}
