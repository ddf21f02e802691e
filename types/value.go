package types

import (
	"time"

	"github.com/google/uuid"
)

func AsBool(v Value) bool {
	return v.V().(bool)
}

func AsInt32(v Value) int32 {
	iv, ok := v.(IntValue)
	if ok {
		return int32(iv)
	}

	return v.V().(int32)
}

func AsInt64(v Value) int64 {
	lv, ok := v.(LongValue)
	if ok {
		return int64(lv)
	}

	if iv, ok := v.(IntValue); ok {
		return int64(iv)
	}

	return v.V().(int64)
}

func AsFloat32(v Value) float32 {
	fv, ok := v.(FloatValue)
	if !ok {
		return v.V().(float32)
	}

	return float32(fv)
}

func AsFloat64(v Value) float64 {
	dv, ok := v.(DoubleValue)
	if !ok {
		return v.V().(float64)
	}

	return float64(dv)
}

func AsString(v Value) string {
	sv, ok := v.(StringValue)
	if !ok {
		return v.V().(string)
	}

	return string(sv)
}

func AsByteSlice(v Value) []byte {
	bv, ok := v.(ByteBufferValue)
	if !ok {
		return v.V().([]byte)
	}

	return bv.Bytes()
}

func AsUUID(v Value) uuid.UUID {
	uv, ok := v.(UUIDValue)
	if !ok {
		return v.V().(uuid.UUID)
	}

	return uuid.UUID(uv)
}

func AsTime(v Value) time.Time {
	tv, ok := v.(TimestampValue)
	if !ok {
		return v.V().(time.Time)
	}

	return time.Time(tv)
}

func IsNull(v Value) bool {
	return v == nil || v.Type() == TypeNull
}
