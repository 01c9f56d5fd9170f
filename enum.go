package enumap

import "golang.org/x/exp/constraints"

// Enum is the contract between a key type and the containers in this
// package. A type E satisfies it by mapping every one of its values to a
// unique position in [0, Len()) and back:
//
//   - Index returns the position of the receiver.
//   - FromIndex returns the value at position i, or (zero, false) when i
//     is outside [0, Len()).
//   - Len returns the number of values in the domain.
//
// FromIndex and Len must not depend on the receiver; the containers call
// them on the zero value. The two directions must agree: for every i in
// [0, Len()), FromIndex(i) must succeed and the result's Index must be i.
//
// The containers trust this contract. A violation never corrupts memory,
// but it yields wrong results or panics: an out-of-range Index fails the
// slot bounds check, and a gap in FromIndex silently ends iteration early.
// Verify checks an implementation explicitly, and builds with the
// "invariants" tag check it on every map construction.
type Enum[E any] interface {
	Index() int
	FromIndex(i int) (E, bool)
	Len() int
}

// FromIndex is the canonical Enum.FromIndex implementation for
// integer-backed domains whose values are their own positions: it returns
// E(i) for i in [0, n) and (zero, false) otherwise.
func FromIndex[E constraints.Integer](i, n int) (E, bool) {
	if i < 0 || i >= n {
		return 0, false
	}
	return E(i), true
}

// KV pairs a key with a value for variadic map construction.
type KV[E Enum[E], V any] struct {
	Key   E
	Value V
}

func enumLen[E Enum[E]]() int {
	var zero E
	return zero.Len()
}

func fromIndex[E Enum[E]](i int) (E, bool) {
	var zero E
	return zero.FromIndex(i)
}
