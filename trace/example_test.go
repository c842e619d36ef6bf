package trace_test

import (
	"os"

	mergesort "github.com/ikorason/merge-sort"
	"github.com/ikorason/merge-sort/list"
	"github.com/ikorason/merge-sort/trace"
)

// ExamplePrint shows a list before and after sorting.
func ExamplePrint() {
	l := list.New(3, 1, 2)

	trace.Print(os.Stdout, l.Begin(), l.End(), false)
	mergesort.Sort(l.Begin(), l.End())
	trace.Print(os.Stdout, l.Begin(), l.End(), false)

	// Output: 3 1 2 1 2 3
}
