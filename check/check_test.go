package check_test

import (
	"cmp"
	"testing"

	"github.com/ikorason/merge-sort/check"
	"github.com/ikorason/merge-sort/list"
	"github.com/ikorason/merge-sort/position"
	"github.com/stretchr/testify/assert"
)

func TestSorted(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   bool
	}{
		{name: "empty", values: []int{}, want: true},
		{name: "single", values: []int{1}, want: true},
		{name: "ascending", values: []int{1, 2, 3}, want: true},
		{name: "with duplicates", values: []int{1, 2, 2, 3}, want: true},
		{name: "out of order", values: []int{1, 3, 2}, want: false},
		{name: "descending", values: []int{3, 2, 1}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := list.New(tt.values...)
			assert.Equal(t, tt.want, check.Sorted(l.Begin(), l.End(), cmp.Less[int]))

			s := position.NewSlice(tt.values...)
			assert.Equal(t, tt.want, check.Sorted(s.Begin(), s.End(), cmp.Less[int]))
		})
	}
}

type item struct {
	key   int
	label []string
}

func byKey(a, b item) bool { return a.key < b.key }

func TestPermutation(t *testing.T) {
	tests := []struct {
		name   string
		before []int
		after  []int
		want   bool
	}{
		{name: "both empty", before: nil, after: []int{}, want: true},
		{name: "same order", before: []int{1, 2, 3}, after: []int{1, 2, 3}, want: true},
		{name: "reordered", before: []int{3, 1, 2, 1}, after: []int{1, 1, 2, 3}, want: true},
		{name: "different length", before: []int{1, 2}, after: []int{1, 2, 2}, want: false},
		{name: "duplicate swapped for other", before: []int{1, 1, 2}, after: []int{1, 2, 2}, want: false},
		{name: "missing element", before: []int{1, 2, 3}, after: []int{1, 2, 4}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, check.Permutation(tt.before, tt.after, cmp.Less[int]))
		})
	}
}

func TestPermutationNonComparable(t *testing.T) {
	before := []item{{key: 2, label: []string{"a"}}, {key: 1, label: []string{"b"}}}
	after := []item{{key: 1, label: []string{"b"}}, {key: 2, label: []string{"a"}}}

	assert.True(t, check.Permutation(before, after, byKey))
	assert.False(t, check.Permutation(before, []item{{key: 1}, {key: 1}}, byKey))
}

func TestCounter(t *testing.T) {
	c := check.NewCounter(cmp.Less[int])

	assert.True(t, c.Less(1, 2))
	assert.False(t, c.Less(2, 1))
	assert.False(t, c.Less(2, 2))
	assert.Equal(t, 3, c.Count())

	c.Reset()
	assert.Equal(t, 0, c.Count())
}
