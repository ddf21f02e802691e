package types

import "github.com/google/uuid"

var _ Value = NewUUIDValue(uuid.UUID{})

type UUIDValue uuid.UUID

// NewUUIDValue returns a Gremlin UUID value (RFC 4122, 128 bits).
func NewUUIDValue(x uuid.UUID) UUIDValue {
	return UUIDValue(x)
}

// ParseUUIDValue parses the canonical hyphenated hex form.
func ParseUUIDValue(s string) (UUIDValue, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return UUIDValue{}, err
	}
	return UUIDValue(u), nil
}

func (v UUIDValue) V() any {
	return uuid.UUID(v)
}

func (v UUIDValue) Type() Type {
	return TypeUUID
}

func (v UUIDValue) String() string {
	return uuid.UUID(v).String()
}
