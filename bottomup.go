package mergesort

import (
	"cmp"

	"github.com/ikorason/merge-sort/position"
)

// SortBottomUp is the iterative counterpart of Sort.
func SortBottomUp[T cmp.Ordered](first, last position.Position[T], opts ...Option[T]) {
	SortBottomUpFunc(first, last, cmp.Less[T], opts...)
}

// SortBottomUpFunc sorts [first, last) by merging adjacent runs of width 1,
// 2, 4 and so on until a single run covers the range. It produces the same
// order as SortFunc for every input. The tracer sees one Sorting call for the
// whole range followed by the merges.
func SortBottomUpFunc[T any](first, last position.Position[T], less func(a, b T) bool, opts ...Option[T]) {
	o := newOptions(opts)
	o.tracer.Sorting(first, last)

	size := position.Distance(first, last)
	for width := 1; width < size; width *= 2 {
		lo := first
		for start := 0; start+width < size; start += 2 * width {
			middle := position.Advance(lo, width)
			hi := last
			if start+2*width < size {
				hi = position.Advance(middle, width)
			}

			o.tracer.Merging(lo, middle, hi)
			Merge(lo, middle, hi, less)
			o.tracer.Merged(lo, hi)

			lo = hi
		}
	}
}
