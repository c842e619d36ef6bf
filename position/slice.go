package position

// Slice is a random-access sequence backed by a Go slice.
type Slice[T any] struct {
	items []T
}

// NewSlice returns a sequence holding items. The slice is used directly, so
// sorting the sequence reorders items.
func NewSlice[T any](items ...T) *Slice[T] {
	return &Slice[T]{items: items}
}

// Len returns the number of elements.
func (s *Slice[T]) Len() int {
	return len(s.items)
}

// Values returns the backing slice.
func (s *Slice[T]) Values() []T {
	return s.items
}

// Begin returns the position of the first element.
func (s *Slice[T]) Begin() Position[T] {
	return slicePosition[T]{s: s, i: 0}
}

// End returns the position one past the last element.
func (s *Slice[T]) End() Position[T] {
	return slicePosition[T]{s: s, i: len(s.items)}
}

type slicePosition[T any] struct {
	s *Slice[T]
	i int
}

func (p slicePosition[T]) Next() Position[T] {
	return slicePosition[T]{s: p.s, i: p.i + 1}
}

func (p slicePosition[T]) Advance(n int) Position[T] {
	return slicePosition[T]{s: p.s, i: p.i + n}
}

func (p slicePosition[T]) Offset() int {
	return p.i
}

func (p slicePosition[T]) Equal(other Position[T]) bool {
	o, ok := other.(slicePosition[T])
	return ok && o.s == p.s && o.i == p.i
}

func (p slicePosition[T]) Get() T {
	return p.s.items[p.i]
}

func (p slicePosition[T]) Set(v T) {
	p.s.items[p.i] = v
}
