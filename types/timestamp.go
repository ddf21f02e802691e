package types

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/golang-module/carbon/v2"
)

var _ Value = NewTimestampValue(time.Time{})

// TimestampValue is a UTC instant with nanosecond precision. It is only
// encodable once extended temporal support has been registered.
type TimestampValue time.Time

// NewTimestampValue returns a Gremlin Instant value, normalized to UTC.
func NewTimestampValue(x time.Time) TimestampValue {
	return TimestampValue(x.UTC())
}

// NewTimestampFromUnix returns the instant at sec seconds and nsec
// nanoseconds since the Unix epoch.
func NewTimestampFromUnix(sec int64, nsec int32) TimestampValue {
	return TimestampValue(time.Unix(sec, int64(nsec)).UTC())
}

func (v TimestampValue) V() any {
	return time.Time(v)
}

func (v TimestampValue) Type() Type {
	return TypeTimestamp
}

func (v TimestampValue) String() string {
	return time.Time(v).Format(time.RFC3339Nano)
}

// ParseTimestamp parses an ISO-8601 instant, normalizing to UTC.
func ParseTimestamp(s string) (time.Time, error) {
	c := carbon.Parse(s, "UTC")
	if c.Error != nil {
		return time.Time{}, errors.New("invalid timestamp")
	}

	return c.ToStdTime().UTC(), nil
}
