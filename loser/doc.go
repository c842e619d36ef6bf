// Package loser implements a tournament tree (also known as a loser tree) for
// merging multiple sorted sequences. This implementation is based on the work
// by Bryan Boreham (https://github.com/bboreham/go-loser).
//
// A loser tree is a binary tree where each internal node holds the "loser" of
// a comparison between its children, and the root holds the overall winner.
// Emitting one element costs O(log k) comparisons for k sequences.
//
// Key features:
//   - Generic over the element type with a caller supplied less function
//   - Stable: equal elements come out in the order of their sequences
//   - No sentinel maximum value is needed; exhausted sequences lose every game
//   - Iterator-based interface using Go's iter.Seq
//
// Basic usage:
//
//	a := list.New(1, 3, 5)
//	b := list.New(2, 4, 6)
//
//	tree := loser.New(
//	    []loser.Sequence[int]{a, b},
//	    func(a, b int) bool { return a < b },
//	)
//
//	for v := range tree.All() {
//	    fmt.Println(v) // 1, 2, 3, 4, 5, 6
//	}
//
// Plain iterators can be merged with Merge:
//
//	for v := range loser.Merge(cmp.Less[int], slices.Values(x), slices.Values(y)) {
//	    fmt.Println(v)
//	}
//
// Implementation Details:
// The tree is laid out in an array where:
//   - For node N, its children are at positions 2N and 2N+1
//   - Leaf nodes are stored in positions M to 2M-1 (where M is the number of sequences)
//   - Internal nodes are stored in positions 1 to M-1
//   - Node 0 is special, containing the current winner
//
// Leaves hold the current head of their sequence; internal nodes only record
// which leaf lost the game played there.
package loser
