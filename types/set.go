package types

import "strings"

var _ Value = NewSetValue()

// SetValue is an insertion-ordered collection with uniqueness enforced
// on insert. Membership uses the same equality relation as map keys.
type SetValue struct {
	elems []Value
}

// NewSetValue returns a Gremlin Set holding the given elements,
// keeping the first occurrence of equal elements.
func NewSetValue(elems ...Value) SetValue {
	var s SetValue
	for _, e := range elems {
		if !s.Contains(e) {
			s.elems = append(s.elems, e)
		}
	}
	return s
}

func (v SetValue) V() any {
	return v.Values()
}

func (v SetValue) Type() Type {
	return TypeSet
}

func (v SetValue) Len() int {
	return len(v.elems)
}

// Get returns the element at insertion index i.
func (v SetValue) Get(i int) Value {
	return v.elems[i]
}

// Contains reports whether an element equal to x is already a member.
func (v SetValue) Contains(x Value) bool {
	for _, e := range v.elems {
		if Equal(e, x) {
			return true
		}
	}
	return false
}

// Values returns a copy of the element slice in insertion order.
func (v SetValue) Values() []Value {
	e := make([]Value, len(v.elems))
	copy(e, v.elems)
	return e
}

func (v SetValue) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, e := range v.elems {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.String())
	}
	sb.WriteByte('}')
	return sb.String()
}
