package mergesort

import "github.com/ikorason/merge-sort/position"

// Tracer observes a sort as it runs. Implementations must not modify the
// range they are shown.
type Tracer[T any] interface {
	// Sorting is called on entry to every sort of [first, last), including
	// ranges of zero or one element.
	Sorting(first, last position.Position[T])
	// Merging is called before [first, middle) and [middle, last) are merged.
	Merging(first, middle, last position.Position[T])
	// Merged is called once [first, last) has been merged.
	Merged(first, last position.Position[T])
}

// TracerFuncs adapts plain functions to a Tracer. Nil fields are skipped.
type TracerFuncs[T any] struct {
	OnSorting func(first, last position.Position[T])
	OnMerging func(first, middle, last position.Position[T])
	OnMerged  func(first, last position.Position[T])
}

// Sorting calls OnSorting.
func (f TracerFuncs[T]) Sorting(first, last position.Position[T]) {
	if f.OnSorting != nil {
		f.OnSorting(first, last)
	}
}

// Merging calls OnMerging.
func (f TracerFuncs[T]) Merging(first, middle, last position.Position[T]) {
	if f.OnMerging != nil {
		f.OnMerging(first, middle, last)
	}
}

// Merged calls OnMerged.
func (f TracerFuncs[T]) Merged(first, last position.Position[T]) {
	if f.OnMerged != nil {
		f.OnMerged(first, last)
	}
}

type nopTracer[T any] struct{}

func (nopTracer[T]) Sorting(_, _ position.Position[T]) {}
func (nopTracer[T]) Merging(_, _, _ position.Position[T]) {}
func (nopTracer[T]) Merged(_, _ position.Position[T]) {}
