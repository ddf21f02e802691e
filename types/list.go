package types

import "strings"

var _ Value = NewListValue()

// ListValue is an ordered, possibly heterogeneous collection.
type ListValue struct {
	elems []Value
}

// NewListValue returns a Gremlin List holding the given elements in
// order. The slice is copied.
func NewListValue(elems ...Value) ListValue {
	e := make([]Value, len(elems))
	copy(e, elems)
	return ListValue{elems: e}
}

func (v ListValue) V() any {
	return v.Values()
}

func (v ListValue) Type() Type {
	return TypeList
}

func (v ListValue) Len() int {
	return len(v.elems)
}

// Get returns the element at index i.
func (v ListValue) Get(i int) Value {
	return v.elems[i]
}

// Values returns a copy of the element slice.
func (v ListValue) Values() []Value {
	e := make([]Value, len(v.elems))
	copy(e, v.elems)
	return e
}

func (v ListValue) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, e := range v.elems {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
