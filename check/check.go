// Package check provides correctness oracles for sorted ranges: ordering,
// multiset equality under a comparator, and comparison counting.
package check

import (
	"github.com/google/btree"

	"github.com/ikorason/merge-sort/position"
)

// Sorted reports whether less(b, a) is false for every adjacent pair a, b in
// [first, last).
func Sorted[T any](first, last position.Position[T], less func(a, b T) bool) bool {
	if first.Equal(last) {
		return true
	}
	prev := first.Get()
	for p := first.Next(); !p.Equal(last); p = p.Next() {
		cur := p.Get()
		if less(cur, prev) {
			return false
		}
		prev = cur
	}
	return true
}

type entry[T any] struct {
	value T
	count int
}

// Permutation reports whether before and after hold the same multiset of
// elements. Elements are told apart only through less, so two elements that
// are mutually not less count as the same one. T does not need to be
// comparable.
func Permutation[T any](before, after []T, less func(a, b T) bool) bool {
	if len(before) != len(after) {
		return false
	}

	counts := btree.NewG[*entry[T]](2, func(a, b *entry[T]) bool {
		return less(a.value, b.value)
	})
	for _, v := range before {
		if e, ok := counts.Get(&entry[T]{value: v}); ok {
			e.count++
			continue
		}
		counts.ReplaceOrInsert(&entry[T]{value: v, count: 1})
	}

	for _, v := range after {
		key := &entry[T]{value: v}
		e, ok := counts.Get(key)
		if !ok {
			return false
		}
		if e.count--; e.count == 0 {
			counts.Delete(key)
		}
	}
	return counts.Len() == 0
}

// Counter wraps a comparator and counts how many times it is called. It is
// not safe for concurrent use.
type Counter[T any] struct {
	less  func(a, b T) bool
	count int
}

// NewCounter returns a Counter around less.
func NewCounter[T any](less func(a, b T) bool) *Counter[T] {
	return &Counter[T]{less: less}
}

// Less calls the wrapped comparator and records the call.
func (c *Counter[T]) Less(a, b T) bool {
	c.count++
	return c.less(a, b)
}

// Count returns the number of comparisons made since creation or the last
// Reset.
func (c *Counter[T]) Count() int {
	return c.count
}

// Reset sets the count back to zero.
func (c *Counter[T]) Reset() {
	c.count = 0
}
