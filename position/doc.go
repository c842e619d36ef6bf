// Package position defines the sequence-position capability used by the
// sorting algorithms in this module.
//
// A Position marks one slot of a sequence, or the slot one past the last
// element. A pair of positions denotes a half-open range [first, last).
// Positions behave like values: Next returns a new position and never
// modifies the receiver, so a caller may keep a position while walking ahead
// with a copy.
//
// Key features:
//   - Forward walking with Next and element access with Get and Set
//   - Optional RandomAccess upgrade for constant-time Advance and Distance
//   - Linear fallbacks for linked containers that only walk one step at a time
//   - Range helpers returning iter.Seq for use with range-over-func
//
// Basic usage:
//
//	s := position.NewSlice(5, 3, 1)
//	first, last := s.Begin(), s.End()
//
//	n := position.Distance(first, last) // 3
//	mid := position.Advance(first, n/2)
//	fmt.Println(mid.Get()) // 3
//
//	for v := range position.All(first, last) {
//	    fmt.Println(v)
//	}
package position
