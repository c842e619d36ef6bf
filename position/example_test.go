package position_test

import (
	"fmt"

	"github.com/ikorason/merge-sort/list"
	"github.com/ikorason/merge-sort/position"
)

// ExampleDistance shows that the same helpers work on random-access and
// linked sequences.
func ExampleDistance() {
	s := position.NewSlice(5, 3, 1, 4)
	l := list.New(5, 3, 1, 4)

	fmt.Println(position.Distance(s.Begin(), s.End()))
	fmt.Println(position.Distance(l.Begin(), l.End()))

	// Output:
	// 4
	// 4
}

// ExampleAll walks the second half of a list.
func ExampleAll() {
	l := list.New("a", "b", "c", "d")
	first, last := l.Begin(), l.End()
	middle := position.Advance(first, position.Distance(first, last)/2)

	for v := range position.All(middle, last) {
		fmt.Printf("%s ", v)
	}

	// Output: c d
}
