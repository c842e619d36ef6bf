// Package list implements a generic doubly linked list whose positions walk
// one element at a time, like a bidirectional iterator. Positions are not
// random access, so measuring or skipping across a range is linear.
package list

import (
	"iter"

	"github.com/ikorason/merge-sort/position"
)

type node[T any] struct {
	value      T
	prev, next *node[T]
}

// List is a doubly linked list of T. The zero value is an empty list ready
// to use.
type List[T any] struct {
	// root is a sentinel: root.next is the front, root.prev the back, and
	// &root marks the end position.
	root node[T]
	len  int
}

// New returns a list holding values in order.
func New[T any](values ...T) *List[T] {
	l := &List[T]{}
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

func (l *List[T]) lazyInit() {
	if l.root.next == nil {
		l.root.next = &l.root
		l.root.prev = &l.root
	}
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return l.len
}

// PushBack appends v and returns the list for chaining.
func (l *List[T]) PushBack(v T) *List[T] {
	l.lazyInit()
	l.insert(v, l.root.prev)
	return l
}

// PushFront prepends v and returns the list for chaining.
func (l *List[T]) PushFront(v T) *List[T] {
	l.lazyInit()
	l.insert(v, &l.root)
	return l
}

func (l *List[T]) insert(v T, at *node[T]) {
	n := &node[T]{value: v, prev: at, next: at.next}
	at.next.prev = n
	at.next = n
	l.len++
}

// Begin returns the position of the first element, or End for an empty list.
// List positions implement position.Bidirectional.
func (l *List[T]) Begin() position.Position[T] {
	l.lazyInit()
	return cursor[T]{n: l.root.next}
}

// End returns the position one past the last element.
func (l *List[T]) End() position.Position[T] {
	l.lazyInit()
	return cursor[T]{n: &l.root}
}

// All returns an iterator over the elements from front to back.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l.root.next == nil {
			return
		}
		for n := l.root.next; n != &l.root; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Backward returns an iterator over the elements from back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l.root.prev == nil {
			return
		}
		for n := l.root.prev; n != &l.root; n = n.prev {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Values copies the elements into a new slice.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.len)
	for v := range l.All() {
		out = append(out, v)
	}
	return out
}

// cursor marks a node of a List, or the sentinel for the end position.
type cursor[T any] struct {
	n *node[T]
}

var _ position.Bidirectional[int] = cursor[int]{}

// Next returns the position after p. Calling Next on End is not allowed.
func (p cursor[T]) Next() position.Position[T] {
	return cursor[T]{n: p.n.next}
}

// Prev returns the position before p. Calling Prev on Begin is not allowed.
func (p cursor[T]) Prev() position.Position[T] {
	return cursor[T]{n: p.n.prev}
}

// Equal reports whether other marks the same node of the same list.
func (p cursor[T]) Equal(other position.Position[T]) bool {
	o, ok := other.(cursor[T])
	return ok && o.n == p.n
}

// Get returns the element at p.
func (p cursor[T]) Get() T {
	return p.n.value
}

// Set replaces the element at p.
func (p cursor[T]) Set(v T) {
	p.n.value = v
}
