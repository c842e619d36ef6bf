package loser_test

import (
	"cmp"
	"iter"
	"slices"
	"testing"

	"github.com/ikorason/merge-sort/list"
	"github.com/ikorason/merge-sort/loser"
	"github.com/stretchr/testify/assert"
)

func collect[E any](seq iter.Seq[E]) []E {
	out := []E{}
	for v := range seq {
		out = append(out, v)
	}
	return out
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name string
		args []loser.Sequence[int]
		want []int
	}{
		{
			name: "empty input",
			want: []int{},
		},
		{
			name: "one list",
			args: []loser.Sequence[int]{list.New(1, 2, 3, 4)},
			want: []int{1, 2, 3, 4},
		},
		{
			name: "two lists",
			args: []loser.Sequence[int]{list.New(3, 4, 5), list.New(1, 2)},
			want: []int{1, 2, 3, 4, 5},
		},
		{
			name: "two lists, first empty",
			args: []loser.Sequence[int]{list.New[int](), list.New(1, 2)},
			want: []int{1, 2},
		},
		{
			name: "two lists, second empty",
			args: []loser.Sequence[int]{list.New(1, 2), list.New[int]()},
			want: []int{1, 2},
		},
		{
			name: "two lists c",
			args: []loser.Sequence[int]{list.New(1, 3), list.New(2, 4, 5)},
			want: []int{1, 2, 3, 4, 5},
		},
		{
			name: "three lists",
			args: []loser.Sequence[int]{list.New(1, 3), list.New(2, 4), list.New(5)},
			want: []int{1, 2, 3, 4, 5},
		},
		{
			name: "all empty",
			args: []loser.Sequence[int]{list.New[int](), list.New[int](), list.New[int]()},
			want: []int{},
		},
		{
			name: "duplicates across lists",
			args: []loser.Sequence[int]{list.New(1, 2, 2), list.New(2, 3), list.New(0, 2)},
			want: []int{0, 1, 2, 2, 2, 2, 3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lt := loser.New(tt.args, cmp.Less[int])
			assert.Equal(t, tt.want, collect(lt.All()))
		})
	}
}

type tagged struct {
	key int
	seq int
}

func TestMergeStable(t *testing.T) {
	byKey := func(a, b tagged) bool { return a.key < b.key }
	var sequences []loser.Sequence[tagged]
	for s := 0; s < 5; s++ {
		l := list.New[tagged]()
		for k := 0; k < 4; k++ {
			l.PushBack(tagged{key: k, seq: s})
		}
		sequences = append(sequences, l)
	}

	got := collect(loser.New(sequences, byKey).All())

	assert.Len(t, got, 20)
	for i, v := range got {
		assert.Equal(t, tagged{key: i / 5, seq: i % 5}, v)
	}
}

func TestMergeIterators(t *testing.T) {
	got := collect(loser.Merge(cmp.Less[string],
		slices.Values([]string{"apple", "dog", "zebra"}),
		slices.Values([]string{"banana", "elephant"}),
		slices.Values([]string{"cat", "fish"}),
	))
	assert.Equal(t, []string{"apple", "banana", "cat", "dog", "elephant", "fish", "zebra"}, got)
}

func TestAllStopsEarly(t *testing.T) {
	lt := loser.New([]loser.Sequence[int]{list.New(1, 4), list.New(2, 3)}, cmp.Less[int])

	var got []int
	for v := range lt.All() {
		got = append(got, v)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, got)

	// A second pass starts over.
	assert.Equal(t, []int{1, 2, 3, 4}, collect(lt.All()))
}
