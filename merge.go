package mergesort

import "github.com/ikorason/merge-sort/position"

// Merge combines the sorted ranges [first, middle) and [middle, last) into a
// single sorted range [first, last). When neither of two elements is less
// than the other, the one from the left range is written first.
func Merge[T any](first, middle, last position.Position[T], less func(a, b T) bool) {
	left := take(first, middle)
	right := take(middle, last)

	out := first
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if less(right[j], left[i]) {
			out.Set(right[j])
			j++
		} else {
			out.Set(left[i])
			i++
		}
		out = out.Next()
	}

	out = position.Fill(out, left[i:]...)
	position.Fill(out, right[j:]...)
}

// take moves [first, last) into a buffer sized exactly to the range.
func take[T any](first, last position.Position[T]) []T {
	buf := make([]T, 0, position.Distance(first, last))
	for p := first; !p.Equal(last); p = p.Next() {
		buf = append(buf, p.Get())
	}
	return buf
}
