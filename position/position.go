package position

import "iter"

// Position marks a slot in a sequence of T.
type Position[T any] interface {
	// Next returns the position one step ahead.
	Next() Position[T]
	// Equal reports whether both positions mark the same slot of the same sequence.
	Equal(other Position[T]) bool
	// Get returns the element at the position.
	Get() T
	// Set replaces the element at the position.
	Set(v T)
}

// Bidirectional is implemented by positions that can also step backwards.
type Bidirectional[T any] interface {
	Position[T]
	// Prev returns the position one step behind.
	Prev() Position[T]
}

// RandomAccess is implemented by positions that can jump ahead and measure
// distances in constant time.
type RandomAccess[T any] interface {
	Position[T]
	// Advance returns the position n steps ahead.
	Advance(n int) Position[T]
	// Offset returns the index of the slot from the start of the sequence.
	Offset() int
}

// Advance returns the position n steps after p. It is linear in n unless p is
// RandomAccess.
func Advance[T any](p Position[T], n int) Position[T] {
	if ra, ok := p.(RandomAccess[T]); ok {
		return ra.Advance(n)
	}
	for ; n > 0; n-- {
		p = p.Next()
	}
	return p
}

// Distance returns the number of steps from first to last. last must be
// reachable from first. It is linear in the result unless both ends are
// RandomAccess.
func Distance[T any](first, last Position[T]) int {
	if a, ok := first.(RandomAccess[T]); ok {
		if b, ok := last.(RandomAccess[T]); ok {
			return b.Offset() - a.Offset()
		}
	}
	n := 0
	for p := first; !p.Equal(last); p = p.Next() {
		n++
	}
	return n
}

// All returns an iterator over the elements of [first, last).
func All[T any](first, last Position[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for p := first; !p.Equal(last); p = p.Next() {
			if !yield(p.Get()) {
				return
			}
		}
	}
}

// Collect copies the elements of [first, last) into a new slice.
func Collect[T any](first, last Position[T]) []T {
	var out []T
	for v := range All(first, last) {
		out = append(out, v)
	}
	return out
}

// Fill assigns values to consecutive slots starting at first and returns the
// position after the last assignment. The caller guarantees the range is long
// enough.
func Fill[T any](first Position[T], values ...T) Position[T] {
	for _, v := range values {
		first.Set(v)
		first = first.Next()
	}
	return first
}
