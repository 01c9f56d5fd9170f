package enumap

import "fmt"

// Verify checks that E's Index, FromIndex and Len agree with each other:
// every position in [0, Len()) must construct a value, each constructed
// value must report its own position, and no position at or past Len()
// may construct one.
//
// The containers trust this contract and do not check it on the hot
// path. Call Verify from a test of a hand-written Enum implementation;
// builds with the "invariants" tag additionally run it on every map
// construction and panic with the returned message.
func Verify[E Enum[E]]() error {
	var zero E
	n := zero.Len()
	for i := 0; i < n; i++ {
		v, ok := zero.FromIndex(i)
		if !ok {
			return fmt.Errorf("enum %T with Len %d constructs no value at index %d", zero, n, i)
		}
		if got := v.Index(); got != i {
			return fmt.Errorf("enum %T: value constructed at index %d reports Index %d", zero, i, got)
		}
	}
	if _, ok := zero.FromIndex(n); ok {
		return fmt.Errorf("enum %T constructs more values than its Len %d", zero, n)
	}
	return nil
}
