package enumap

import (
	"fmt"
	"iter"
	"strings"

	"github.com/Dav1dde/enumap/internal/invariants"
)

type slot[V any] struct {
	val V
	ok  bool
}

// Map is an associative container keyed by the Enum domain E. It stores
// at most one value per domain value in a fixed block of Len() slots, so
// every point operation is a single index away and none of them allocate.
//
// The zero Map is an empty map ready for use; the first mutation
// materializes its storage. Copying a Map value shares that storage, use
// Clone for an independent copy. A Map is not safe for concurrent use
// with writers, see the package documentation.
type Map[E Enum[E], V any] struct {
	slots []slot[V]
}

// New returns an empty map with storage for every value of E.
func New[E Enum[E], V any]() *Map[E, V] {
	m := &Map[E, V]{}
	m.grow()
	return m
}

// Of returns a map holding the given pairs. Later pairs overwrite earlier
// ones with the same key.
func Of[E Enum[E], V any](pairs ...KV[E, V]) *Map[E, V] {
	m := New[E, V]()
	for _, p := range pairs {
		m.Set(p.Key, p.Value)
	}
	return m
}

// Collect returns a map holding all pairs of seq, inserted in sequence
// order. Later pairs overwrite earlier ones with the same key.
func Collect[E Enum[E], V any](seq iter.Seq2[E, V]) *Map[E, V] {
	m := New[E, V]()
	m.Insert(seq)
	return m
}

// grow materializes the backing slots. The zero Map defers this to the
// first mutation so that decoding into a zero value works.
func (m *Map[E, V]) grow() {
	if m.slots != nil {
		return
	}
	if invariants.Enabled {
		if err := Verify[E](); err != nil {
			panic(err)
		}
	}
	m.slots = make([]slot[V], enumLen[E]())
}

// slotAt reads position i, treating missing storage as empty.
func (m *Map[E, V]) slotAt(i int) slot[V] {
	if m == nil || i >= len(m.slots) {
		return slot[V]{}
	}
	return m.slots[i]
}

// Get returns the value stored for key.
// Returns (value, true) when present and (zero, false) otherwise.
func (m *Map[E, V]) Get(key E) (V, bool) {
	if m.slots == nil {
		var zero V
		return zero, false
	}
	s := m.slots[key.Index()]
	if !s.ok {
		var zero V
		return zero, false
	}
	return s.val, true
}

// GetPtr returns a pointer to the value stored for key, or nil when the
// key is absent. Writing through the pointer updates the entry in place.
// The pointer stays valid until the entry is deleted or the map cleared,
// after which it points at a zeroed slot.
func (m *Map[E, V]) GetPtr(key E) *V {
	if m.slots == nil {
		return nil
	}
	s := &m.slots[key.Index()]
	if !s.ok {
		return nil
	}
	return &s.val
}

// MustGet returns the value stored for key, panicking when the key is
// absent. Use Get when absence is an expected outcome.
func (m *Map[E, V]) MustGet(key E) V {
	v, ok := m.Get(key)
	if !ok {
		panic("no entry found for key")
	}
	return v
}

// Set stores value for key and returns the value that was stored before,
// if any.
func (m *Map[E, V]) Set(key E, value V) (prev V, replaced bool) {
	m.grow()
	s := &m.slots[key.Index()]
	prev, replaced = s.val, s.ok
	s.val, s.ok = value, true
	return prev, replaced
}

// Insert stores every pair of seq, later pairs overwriting earlier ones
// with the same key.
func (m *Map[E, V]) Insert(seq iter.Seq2[E, V]) {
	for k, v := range seq {
		m.Set(k, v)
	}
}

// Delete removes key and returns the value that was stored, if any.
func (m *Map[E, V]) Delete(key E) (V, bool) {
	if m.slots == nil {
		var zero V
		return zero, false
	}
	s := &m.slots[key.Index()]
	if !s.ok {
		var zero V
		return zero, false
	}
	v := s.val
	*s = slot[V]{}
	return v, true
}

// Contains reports whether key has a stored value.
func (m *Map[E, V]) Contains(key E) bool {
	if m.slots == nil {
		return false
	}
	return m.slots[key.Index()].ok
}

// Len returns the number of stored entries. It scans the whole domain,
// so it is O(Len) of E rather than O(1).
func (m *Map[E, V]) Len() int {
	n := 0
	for i := range m.slots {
		if m.slots[i].ok {
			n++
		}
	}
	return n
}

// IsEmpty reports whether the map holds no entries.
func (m *Map[E, V]) IsEmpty() bool {
	for i := range m.slots {
		if m.slots[i].ok {
			return false
		}
	}
	return true
}

// Clear removes all entries, keeping the storage.
func (m *Map[E, V]) Clear() {
	clear(m.slots)
}

// Clone returns a copy of the map. Values are copied by assignment; when
// V contains pointers, both maps share what they point at.
func (m *Map[E, V]) Clone() *Map[E, V] {
	c := &Map[E, V]{}
	if m.slots != nil {
		c.slots = make([]slot[V], len(m.slots))
		copy(c.slots, m.slots)
	}
	return c
}

// KeySet returns the set of keys that currently have entries.
func (m *Map[E, V]) KeySet() *Set[E] {
	s := NewSet[E]()
	for k := range m.Keys() {
		s.Add(k)
	}
	return s
}

// Equal reports whether a and b hold the same keys with equal values.
// A nil map equals an empty one.
func Equal[E Enum[E], V comparable](a, b *Map[E, V]) bool {
	return EqualFunc(a, b, func(x, y V) bool { return x == y })
}

// EqualFunc is like Equal but compares values with eq, allowing maps with
// different value types.
func EqualFunc[E Enum[E], V1, V2 any](a *Map[E, V1], b *Map[E, V2], eq func(V1, V2) bool) bool {
	n := enumLen[E]()
	for i := 0; i < n; i++ {
		sa, sb := a.slotAt(i), b.slotAt(i)
		if sa.ok != sb.ok {
			return false
		}
		if sa.ok && !eq(sa.val, sb.val) {
			return false
		}
	}
	return true
}

// String renders the map like a Go map literal, keys in ascending
// position order.
func (m Map[E, V]) String() string {
	var sb strings.Builder
	sb.WriteString("map[")
	first := true
	for k, v := range m.All() {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&sb, "%v:%v", k, v)
	}
	sb.WriteByte(']')
	return sb.String()
}
