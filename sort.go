package mergesort

import (
	"cmp"

	"github.com/ikorason/merge-sort/position"
)

// Sort sorts [first, last) in ascending order using cmp.Less.
func Sort[T cmp.Ordered](first, last position.Position[T], opts ...Option[T]) {
	SortFunc(first, last, cmp.Less[T], opts...)
}

// SortFunc sorts [first, last) in place so that less(b, a) is false for every
// adjacent pair a, b. less must be a strict weak ordering. The sort is stable.
func SortFunc[T any](first, last position.Position[T], less func(a, b T) bool, opts ...Option[T]) {
	o := newOptions(opts)
	mergeSort(first, last, less, o.tracer)
}

func mergeSort[T any](first, last position.Position[T], less func(a, b T) bool, tr Tracer[T]) {
	tr.Sorting(first, last)

	size := position.Distance(first, last)
	if size <= 1 {
		return
	}

	middle := position.Advance(first, size/2)
	mergeSort(first, middle, less, tr)
	mergeSort(middle, last, less, tr)

	tr.Merging(first, middle, last)
	Merge(first, middle, last, less)
	tr.Merged(first, last)
}
