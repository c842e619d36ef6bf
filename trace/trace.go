// Package trace prints ranges and narrates a merge sort step by step.
package trace

import (
	"fmt"
	"io"

	"github.com/ikorason/merge-sort/position"
)

// Print writes every element of [first, last) followed by a space, then a
// newline if newline is true.
func Print[T any](w io.Writer, first, last position.Position[T], newline bool) {
	for v := range position.All(first, last) {
		fmt.Fprint(w, v, " ")
	}
	if newline {
		fmt.Fprintln(w)
	}
}

// Printer is a mergesort.Tracer that writes each step to w:
//
//	sort  2 5 1
//	merge 5 ↔ 1
//	 ⇒    1 5
type Printer[T any] struct {
	w io.Writer
}

// NewPrinter returns a Printer writing to w.
func NewPrinter[T any](w io.Writer) *Printer[T] {
	return &Printer[T]{w: w}
}

// Sorting prints the range about to be sorted.
func (p *Printer[T]) Sorting(first, last position.Position[T]) {
	fmt.Fprint(p.w, "sort  ")
	Print(p.w, first, last, true)
}

// Merging prints both halves about to be merged.
func (p *Printer[T]) Merging(first, middle, last position.Position[T]) {
	fmt.Fprint(p.w, "merge ")
	Print(p.w, first, middle, false)
	fmt.Fprint(p.w, "↔ ")
	Print(p.w, middle, last, true)
}

// Merged prints the merged range.
func (p *Printer[T]) Merged(first, last position.Position[T]) {
	fmt.Fprint(p.w, " ⇒    ")
	Print(p.w, first, last, true)
}
