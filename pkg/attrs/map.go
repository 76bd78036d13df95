package attrs

import (
	"iter"
	"strconv"

	"github.com/elliotchance/orderedmap/v3"
)

// Key identifies an entry of a Map. Positional keys come from list-style
// input and never collide with named keys.
type Key struct {
	Name       string
	Index      int
	Positional bool
}

// Named returns the key for an attribute name.
func Named(name string) Key { return Key{Name: name} }

// Index returns the positional key i.
func Index(i int) Key { return Key{Index: i, Positional: true} }

func (k Key) String() string {
	if k.Positional {
		return strconv.Itoa(k.Index)
	}
	return k.Name
}

// Map is an insertion-ordered mapping from keys to values.
type Map struct {
	entries *orderedmap.OrderedMap[Key, Value]
	next    int
}

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{entries: orderedmap.NewOrderedMap[Key, Value]()}
}

// PreserveInTemplate keeps the key order when a Map is passed as template data.
func (*Map) PreserveInTemplate() {}

// Len returns the number of entries. A nil Map is empty.
func (m *Map) Len() int {
	if m == nil || m.entries == nil {
		return 0
	}
	return m.entries.Len()
}

// Get returns the value stored under the attribute name.
func (m *Map) Get(name string) (Value, bool) {
	return m.Lookup(Named(name))
}

// Lookup returns the value stored under k.
func (m *Map) Lookup(k Key) (Value, bool) {
	if m.Len() == 0 {
		return Value{}, false
	}
	return m.entries.Get(k)
}

// Has reports whether k is present.
func (m *Map) Has(k Key) bool {
	return m.Len() > 0 && m.entries.Has(k)
}

// Set stores v under the attribute name, keeping the position of an existing key.
func (m *Map) Set(name string, v Value) {
	m.Put(Named(name), v)
}

// Put stores v under k, keeping the position of an existing key.
func (m *Map) Put(k Key, v Value) {
	m.ensure()
	if k.Positional && k.Index >= m.next {
		m.next = k.Index + 1
	}
	m.entries.Set(k, v)
}

// Append stores v under the next free positional key and returns that key.
func (m *Map) Append(v Value) Key {
	m.ensure()
	k := Index(m.next)
	m.Put(k, v)
	return k
}

// Delete removes k.
func (m *Map) Delete(k Key) {
	if m.Len() == 0 {
		return
	}
	m.entries.Delete(k)
}

// All iterates over the entries in insertion order.
func (m *Map) All() iter.Seq2[Key, Value] {
	return func(yield func(Key, Value) bool) {
		if m.Len() == 0 {
			return
		}
		for k, v := range m.entries.AllFromFront() {
			if !yield(k, v) {
				return
			}
		}
	}
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []Key {
	keys := make([]Key, 0, m.Len())
	for k := range m.All() {
		keys = append(keys, k)
	}
	return keys
}

// Clone returns a shallow copy of m.
func (m *Map) Clone() *Map {
	out := NewMap()
	for k, v := range m.All() {
		out.Put(k, v)
	}
	return out
}

// isList reports whether every key is positional and the indexes run from 0
// without gaps, which is how a list round-trips through a Map.
func (m *Map) isList() bool {
	i := 0
	for k := range m.All() {
		if !k.Positional || k.Index != i {
			return false
		}
		i++
	}
	return true
}

func (m *Map) ensure() {
	if m.entries == nil {
		m.entries = orderedmap.NewOrderedMap[Key, Value]()
	}
}

// Pair is one named entry of an ordered attribute literal.
type Pair struct {
	Name  string
	Value any
}

// Pairs is an ordered attribute literal. Unlike a Go map it keeps the order in
// which the attributes are written:
//
//	attrs.Pairs{{"id", "main"}, {"class", "wide"}}
type Pairs []Pair

// PreserveInTemplate keeps the order when Pairs are passed as template data.
func (Pairs) PreserveInTemplate() {}
