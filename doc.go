// Package mergesort implements a stable, comparator-parameterized merge sort
// over ranges of positions. It only needs positions that walk forward one
// element at a time, so it sorts linked lists as well as slices.
//
// Key features:
//   - Generic over the element type with a caller supplied less function
//   - Works on any position.Position, random access or not
//   - Stable: equal elements keep their original relative order
//   - Recursive and bottom-up variants with identical results
//   - Optional Tracer to observe every sort and merge step
//
// Basic usage:
//
//	l := list.New(2, 5, 1, 7, 9)
//
//	// Ascending, using the natural order of the element type.
//	mergesort.Sort(l.Begin(), l.End())
//
//	// Descending, using a custom comparator.
//	mergesort.SortFunc(l.Begin(), l.End(), func(a, b int) bool {
//	    return a > b
//	})
//
// Range sizes are computed with position.Distance and halves are found with
// position.Advance. For linked sequences both are linear, so every recursion
// level pays an extra walk over its range on top of the O(n log n)
// comparisons.
//
// Each Merge call allocates two buffers, one per half, that are released when
// it returns. The sort is not safe for concurrent use on the same sequence and
// cannot be interrupted. A panic raised by the comparator propagates to the
// caller and leaves the range partially merged.
package mergesort
