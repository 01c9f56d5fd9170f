package enumap

import "iter"

// All returns an iterator over key-value pairs in ascending key position
// order. Each call starts a fresh pass; a stopped range does not affect
// later ones.
//
// Mutating values with Set or deleting entries during the pass is safe:
// occupancy is re-checked at every position, so entries deleted ahead of
// the cursor are skipped and entries added ahead of it are visited.
func (m *Map[E, V]) All() iter.Seq2[E, V] {
	return func(yield func(E, V) bool) {
		for i := range m.slots {
			if !m.slots[i].ok {
				continue
			}
			k, ok := fromIndex[E](i)
			if !ok {
				return
			}
			if !yield(k, m.slots[i].val) {
				return
			}
		}
	}
}

// Keys returns an iterator over the stored keys in ascending position
// order.
func (m *Map[E, V]) Keys() iter.Seq[E] {
	return func(yield func(E) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns an iterator over the stored values in ascending key
// position order.
func (m *Map[E, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Ptrs returns an iterator over keys and pointers to their stored values
// in ascending position order. Writing through a pointer updates the
// entry in place, making this the in-place counterpart of All:
//
//	for _, price := range m.Ptrs() {
//		*price *= 2
//	}
func (m *Map[E, V]) Ptrs() iter.Seq2[E, *V] {
	return func(yield func(E, *V) bool) {
		for i := range m.slots {
			if !m.slots[i].ok {
				continue
			}
			k, ok := fromIndex[E](i)
			if !ok {
				return
			}
			if !yield(k, &m.slots[i].val) {
				return
			}
		}
	}
}

// Drain returns an iterator that removes each entry as it yields it, in
// ascending key position order. Once the pass completes the map is
// empty; stopping early leaves the entries not yet yielded in place.
func (m *Map[E, V]) Drain() iter.Seq2[E, V] {
	return func(yield func(E, V) bool) {
		for i := range m.slots {
			s := &m.slots[i]
			if !s.ok {
				continue
			}
			k, ok := fromIndex[E](i)
			if !ok {
				return
			}
			v := s.val
			*s = slot[V]{}
			if !yield(k, v) {
				return
			}
		}
	}
}

// DrainValues returns an iterator over the values of Drain.
func (m *Map[E, V]) DrainValues() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.Drain() {
			if !yield(v) {
				return
			}
		}
	}
}
