// Package loser Taken from talk: https://github.com/bboreham/go-loser/blob/iter/tree.go.
// Thank you Bryan
package loser

import (
	"iter"
)

type Sequence[E any] interface {
	All() iter.Seq[E]
}

// Seq adapts a plain iterator to a Sequence.
type Seq[E any] iter.Seq[E]

func (s Seq[E]) All() iter.Seq[E] {
	return iter.Seq[E](s)
}

func New[E any](sequences []Sequence[E], less func(E, E) bool) *Tree[E] {
	t := Tree[E]{
		nodes:     make([]node[E], len(sequences)*2),
		sequences: sequences,
		less:      less,
	}
	return &t
}

// Merge returns the stable merge of the given sorted iterators.
func Merge[E any](less func(E, E) bool, seqs ...iter.Seq[E]) iter.Seq[E] {
	sequences := make([]Sequence[E], len(seqs))
	for i, s := range seqs {
		sequences[i] = Seq[E](s)
	}
	return New(sequences, less).All()
}

// A loser tree is a binary tree laid out such that nodes N and N+1 have parent N/2.
// We store M leaf nodes in positions M...2M-1, and M-1 internal nodes in positions 1..M-1.
// Node 0 is a special node, containing the winner of the contest.
type Tree[E any] struct {
	nodes     []node[E]
	sequences []Sequence[E]
	less      func(E, E) bool
}

type node[E any] struct {
	index int              // Leaf position of the loser for internal nodes, of the winner for node 0.
	value E                // Current head of the sequence. Only populated for leaf nodes.
	done  bool             // Sequence is exhausted. Only populated for leaf nodes.
	next  func() (E, bool) // Only populated for leaf nodes.
}

func (t *Tree[E]) moveNext(leaf int) {
	n := &t.nodes[leaf]
	v, ok := n.next()
	n.value, n.done = v, !ok
}

// beats reports whether leaf a is emitted before leaf b. Exhausted leaves lose
// to everything, and equal heads go to the lower sequence index so that
// merging is stable.
func (t *Tree[E]) beats(a, b int) bool {
	na, nb := &t.nodes[a], &t.nodes[b]
	switch {
	case na.done:
		return false
	case nb.done:
		return true
	case t.less(na.value, nb.value):
		return true
	case t.less(nb.value, na.value):
		return false
	default:
		return a < b
	}
}

// All yields the merged elements. Each call restarts every sequence.
func (t *Tree[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		if len(t.nodes) == 0 {
			return
		}
		m := len(t.sequences)
		for i, s := range t.sequences {
			next, stop := iter.Pull(s.All())
			t.nodes[i+m].next = next
			//nolint:gocritic // is not a leak.
			defer stop()
			t.moveNext(i + m) // Call next() on each item to get the first value.
		}
		t.nodes[0].index = t.playGame(1)
		for {
			winner := t.nodes[0].index
			if t.nodes[winner].done || !yield(t.nodes[winner].value) {
				return
			}
			t.moveNext(winner)
			t.replayGames(winner)
		}
	}
}

// Find the winner at position pos; if it is a non-leaf node, store the loser.
// pos must be >= 1 and < len(t.nodes).
func (t *Tree[E]) playGame(pos int) int {
	if pos >= len(t.nodes)/2 {
		return pos
	}
	left := t.playGame(pos * 2)
	right := t.playGame(pos*2 + 1)
	winner, loser := right, left
	if t.beats(left, right) {
		winner, loser = left, right
	}
	t.nodes[pos].index = loser
	return winner
}

// Starting at leaf pos, which is a winner, re-consider all games up to the root.
func (t *Tree[E]) replayGames(pos int) {
	winner := pos
	for n := parent(pos); n != 0; n = parent(n) {
		node := &t.nodes[n]
		if t.beats(node.index, winner) {
			// Record the old winner as the loser here, and the old loser is the new winner.
			node.index, winner = winner, node.index
		}
	}
	t.nodes[0].index = winner
}

func parent(i int) int { return i >> 1 }
