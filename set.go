package enumap

import (
	"fmt"
	"iter"
	"strings"
)

// Set tracks membership per value of the Enum domain E. It is a Map with
// empty values and shares its storage model: one fixed slot per domain
// value, no per-operation allocation, ascending iteration order.
//
// The zero Set is an empty set ready for use. Copying a Set value shares
// storage, use Clone for an independent copy.
type Set[E Enum[E]] struct {
	m Map[E, struct{}]
}

// NewSet returns an empty set with storage for every value of E.
func NewSet[E Enum[E]]() *Set[E] {
	return &Set[E]{m: *New[E, struct{}]()}
}

// SetOf returns a set holding the given values.
func SetOf[E Enum[E]](values ...E) *Set[E] {
	s := NewSet[E]()
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// CollectSet returns a set holding every value of seq.
func CollectSet[E Enum[E]](seq iter.Seq[E]) *Set[E] {
	s := NewSet[E]()
	s.Insert(seq)
	return s
}

// Add inserts v and reports whether it was newly added.
func (s *Set[E]) Add(v E) bool {
	_, replaced := s.m.Set(v, struct{}{})
	return !replaced
}

// Remove deletes v and reports whether it was present.
func (s *Set[E]) Remove(v E) bool {
	_, ok := s.m.Delete(v)
	return ok
}

// Contains reports whether v is in the set.
func (s *Set[E]) Contains(v E) bool {
	return s.m.Contains(v)
}

// Insert adds every value of seq.
func (s *Set[E]) Insert(seq iter.Seq[E]) {
	for v := range seq {
		s.Add(v)
	}
}

// Len returns the number of values in the set. Like Map.Len it scans the
// whole domain.
func (s *Set[E]) Len() int {
	return s.m.Len()
}

// IsEmpty reports whether the set holds no values.
func (s *Set[E]) IsEmpty() bool {
	return s.m.IsEmpty()
}

// Clear removes all values, keeping the storage.
func (s *Set[E]) Clear() {
	s.m.Clear()
}

// All returns an iterator over the values in ascending position order.
func (s *Set[E]) All() iter.Seq[E] {
	return s.m.Keys()
}

// Drain returns an iterator that removes each value as it yields it, in
// ascending position order. Stopping early leaves the values not yet
// yielded in place.
func (s *Set[E]) Drain() iter.Seq[E] {
	return func(yield func(E) bool) {
		for v := range s.m.Drain() {
			if !yield(v) {
				return
			}
		}
	}
}

// Clone returns a copy of the set.
func (s *Set[E]) Clone() *Set[E] {
	return &Set[E]{m: *s.m.Clone()}
}

// Equal reports whether s and o hold the same values. A nil set equals
// an empty one.
func (s *Set[E]) Equal(o *Set[E]) bool {
	var a, b *Map[E, struct{}]
	if s != nil {
		a = &s.m
	}
	if o != nil {
		b = &o.m
	}
	return EqualFunc(a, b, func(struct{}, struct{}) bool { return true })
}

// has reads membership by position, treating missing storage as empty.
func (s *Set[E]) has(i int) bool {
	return s.m.slotAt(i).ok
}

// String renders the set like a slice literal in ascending order.
func (s Set[E]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	first := true
	for v := range s.All() {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&sb, "%v", v)
	}
	sb.WriteByte(']')
	return sb.String()
}
