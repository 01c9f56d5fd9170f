package enumap

import "iter"

// Difference returns an iterator over the values in s that are not in o,
// in ascending position order. The operation is asymmetric; see
// SymmetricDifference for the two-sided variant.
func (s *Set[E]) Difference(o *Set[E]) iter.Seq[E] {
	return func(yield func(E) bool) {
		for v := range s.All() {
			if o.Contains(v) {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Intersection returns an iterator over the values present in both s and
// o, in ascending position order.
func (s *Set[E]) Intersection(o *Set[E]) iter.Seq[E] {
	return func(yield func(E) bool) {
		for v := range s.All() {
			if !o.Contains(v) {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Union returns an iterator over the values present in s, o, or both, in
// ascending position order. Values present in both sets are yielded once.
func (s *Set[E]) Union(o *Set[E]) iter.Seq[E] {
	return func(yield func(E) bool) {
		n := enumLen[E]()
		for i := 0; i < n; i++ {
			if !s.has(i) && !o.has(i) {
				continue
			}
			v, ok := fromIndex[E](i)
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// SymmetricDifference returns an iterator over the values present in
// exactly one of s and o, in ascending position order.
func (s *Set[E]) SymmetricDifference(o *Set[E]) iter.Seq[E] {
	return func(yield func(E) bool) {
		n := enumLen[E]()
		for i := 0; i < n; i++ {
			if s.has(i) == o.has(i) {
				continue
			}
			v, ok := fromIndex[E](i)
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// IsSubset reports whether every value of s is in o. It asks Difference
// for a first element rather than scanning membership separately.
func (s *Set[E]) IsSubset(o *Set[E]) bool {
	for range s.Difference(o) {
		return false
	}
	return true
}

// IsSuperset reports whether every value of o is in s.
func (s *Set[E]) IsSuperset(o *Set[E]) bool {
	return o.IsSubset(s)
}

// IsDisjoint reports whether s and o share no values.
func (s *Set[E]) IsDisjoint(o *Set[E]) bool {
	for range s.Intersection(o) {
		return false
	}
	return true
}

// And returns a new set holding the intersection of s and o.
func (s *Set[E]) And(o *Set[E]) *Set[E] {
	return CollectSet(s.Intersection(o))
}

// Or returns a new set holding the union of s and o.
func (s *Set[E]) Or(o *Set[E]) *Set[E] {
	return CollectSet(s.Union(o))
}

// Xor returns a new set holding the symmetric difference of s and o.
func (s *Set[E]) Xor(o *Set[E]) *Set[E] {
	return CollectSet(s.SymmetricDifference(o))
}

// AndNot returns a new set holding the values of s that are not in o.
func (s *Set[E]) AndNot(o *Set[E]) *Set[E] {
	return CollectSet(s.Difference(o))
}

// With returns a copy of s with v added.
func (s *Set[E]) With(v E) *Set[E] {
	c := s.Clone()
	c.Add(v)
	return c
}

// Retain returns a set holding v when s contains it and nothing
// otherwise.
func (s *Set[E]) Retain(v E) *Set[E] {
	c := NewSet[E]()
	if s.Contains(v) {
		c.Add(v)
	}
	return c
}

// Toggle returns a copy of s with v's membership flipped.
func (s *Set[E]) Toggle(v E) *Set[E] {
	c := s.Clone()
	if !c.Remove(v) {
		c.Add(v)
	}
	return c
}
