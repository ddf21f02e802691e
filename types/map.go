package types

import "strings"

var _ Value = NewMapValue()

// Pair is a single map entry. Keys may be any Value, not only strings.
type Pair struct {
	Key   Value
	Value Value
}

// MapValue holds entries in insertion order. It never contains two
// entries whose keys compare equal.
type MapValue struct {
	pairs []Pair
}

// NewMapValue returns a Gremlin Map holding the given pairs. A pair
// whose key equals an earlier key replaces that entry in place.
func NewMapValue(pairs ...Pair) MapValue {
	var m MapValue
	for _, p := range pairs {
		m.set(p.Key, p.Value)
	}
	return m
}

func (v MapValue) V() any {
	return v.Pairs()
}

func (v MapValue) Type() Type {
	return TypeMap
}

func (v MapValue) Len() int {
	return len(v.pairs)
}

// Get returns the value stored under a key equal to key.
func (v MapValue) Get(key Value) (Value, bool) {
	for _, p := range v.pairs {
		if Equal(p.Key, key) {
			return p.Value, true
		}
	}
	return nil, false
}

// GetAt returns the entry at insertion index i.
func (v MapValue) GetAt(i int) Pair {
	return v.pairs[i]
}

// Pairs returns a copy of the entries in insertion order.
func (v MapValue) Pairs() []Pair {
	p := make([]Pair, len(v.pairs))
	copy(p, v.pairs)
	return p
}

// With returns a new map with key bound to val, replacing an existing
// equal key in place.
func (v MapValue) With(key, val Value) MapValue {
	m := MapValue{pairs: v.Pairs()}
	m.set(key, val)
	return m
}

func (v *MapValue) set(key, val Value) {
	for i, p := range v.pairs {
		if Equal(p.Key, key) {
			v.pairs[i].Value = val
			return
		}
	}
	v.pairs = append(v.pairs, Pair{Key: key, Value: val})
}

func (v MapValue) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, p := range v.pairs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.Key.String())
		sb.WriteString(": ")
		sb.WriteString(p.Value.String())
	}
	sb.WriteByte('}')
	return sb.String()
}
