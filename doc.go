// Package enumap provides a map and a set keyed by enum-like types:
// finite domains whose values map one-to-one onto the positions
// 0..Len()-1.
//
// # Overview
//
// A Map[E, V] stores at most one value per domain value in a fixed block
// of Len() slots allocated once. Lookup, insert and delete are a single
// index operation and never allocate, and every iterator visits entries
// in ascending position order, deterministically. Set[E] is the
// companion membership set with lazy set algebra on top of the same
// storage.
//
// This buys its guarantees by giving up generality: the key domain is
// fixed at compile time, Len and IsEmpty scan the whole domain instead
// of tracking a counter, and there is no hashing and no resizing.
//
// # The Enum Contract
//
// Key types carry their own indexing via the Enum constraint:
//
//	type Weekday int
//
//	const (
//		Monday Weekday = iota
//		Tuesday
//		Wednesday
//		Thursday
//		Friday
//		Saturday
//		Sunday
//	)
//
//	func (d Weekday) Index() int                    { return int(d) }
//	func (Weekday) FromIndex(i int) (Weekday, bool) { return enumap.FromIndex[Weekday](i, 7) }
//	func (Weekday) Len() int                        { return 7 }
//
// Index and FromIndex must be inverses over [0, Len()). The containers
// trust this and do not check it at runtime; use Verify in a test, or
// build with -tags invariants to check it on every map construction.
// The enumgen tool (cmd/enumgen) generates conforming types from a YAML
// variant list.
//
// # Basic Usage
//
//	gym := enumap.New[Weekday, string]()
//	gym.Set(Monday, "upper body")
//	gym.Set(Thursday, "legs")
//
//	for day, plan := range gym.All() {
//		fmt.Println(day, plan)
//	}
//
//	rest := enumap.SetOf(Saturday, Sunday)
//	short := rest.Toggle(Sunday) // flips Sunday out: [Saturday]
//
// The zero values of Map and Set are empty and ready for use; the first
// mutation materializes their storage. This makes them usable directly
// as struct fields, including fields filled by encoding/json or yaml.
//
// # Iteration
//
// All, Keys, Values, Ptrs and Drain return Go 1.23 iterators. Every view
// is lazy, yields entries in ascending position order, and starts fresh
// on each call. Ptrs yields pointers to the stored values for in-place
// updates. Drain removes each entry as it yields it, leaving the map
// empty after a full pass.
//
// # Sets
//
// Difference, Intersection, Union and SymmetricDifference are lazy
// iterators in ascending order. IsSubset, IsSuperset and IsDisjoint are
// derived from them and stop at the first witness. And, Or, Xor and
// AndNot are their eager counterparts returning new sets, and With,
// Retain and Toggle combine a set with a single value.
//
// # Serialization
//
// Map and Set implement the json and yaml (un)marshaler interfaces. Maps
// encode as objects/mappings and sets as arrays/sequences, entries in
// ascending position order, so encoding is deterministic. How a key is
// spelled is the domain type's business: implement
// encoding.TextMarshaler/TextUnmarshaler (enumgen emits both), or leave
// integer-backed domains to their decimal form. Decoding inserts in
// document order, so duplicate keys resolve to the last occurrence.
//
// # Thread Safety
//
// Containers are not synchronized. Any number of goroutines may read a
// container that no goroutine is mutating; all other sharing needs
// caller-side locking.
//
// # Contract Violations
//
// A broken Enum implementation never corrupts memory, but results are
// unspecified: an out-of-range Index panics on the slot bounds check and
// a FromIndex gap ends iteration early. MustGet panics on absent keys;
// every other absence is a comma-ok return.
package enumap
