// Package types defines the value model shared by the GraphBinary and
// GraphSON codecs: a closed set of variants covering every encodable
// Gremlin value, plus structural equality, ordering and deep copy.
package types

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrTypeMismatch is returned when an operation receives a value
	// of an incompatible variant, e.g. ordering an Int32 against a String
	// or narrowing a List to a big integer.
	ErrTypeMismatch = errors.New("type mismatch")
)

// Type represents a value variant supported by the wire formats.
type Type uint8

// List of supported variants.
const (
	// TypeAny denotes the absence of type
	TypeAny Type = iota
	TypeNull
	TypeBoolean
	TypeInt
	TypeLong
	TypeFloat
	TypeDouble
	TypeString
	TypeByteBuffer
	TypeList
	TypeSet
	TypeMap
	TypeUUID
	TypeBigInteger
	TypeBigDecimal
	TypeTimestamp
	TypeExtension
)

func (t Type) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeBoolean:
		return "boolean"
	case TypeInt:
		return "int"
	case TypeLong:
		return "long"
	case TypeFloat:
		return "float"
	case TypeDouble:
		return "double"
	case TypeString:
		return "string"
	case TypeByteBuffer:
		return "bytebuffer"
	case TypeList:
		return "list"
	case TypeSet:
		return "set"
	case TypeMap:
		return "map"
	case TypeUUID:
		return "uuid"
	case TypeBigInteger:
		return "biginteger"
	case TypeBigDecimal:
		return "bigdecimal"
	case TypeTimestamp:
		return "timestamp"
	case TypeExtension:
		return "extension"
	}

	panic(fmt.Sprintf("unsupported type %#v", uint8(t)))
}

// IsNumber returns true if t is one of the numeric variants.
func (t Type) IsNumber() bool {
	switch t {
	case TypeInt, TypeLong, TypeFloat, TypeDouble, TypeBigInteger, TypeBigDecimal:
		return true
	}
	return false
}

// IsInteger returns true if t is a fixed-width or arbitrary-precision integer.
func (t Type) IsInteger() bool {
	return t == TypeInt || t == TypeLong || t == TypeBigInteger
}

// IsAny returns whether this type is Any or a real type.
func (t Type) IsAny() bool {
	return t == TypeAny
}

// Value is one immutable case of the variant set. Transformations
// produce new Values; a Value and its nested children form a
// single-owner tree.
type Value interface {
	Type() Type
	V() any
	String() string
}
