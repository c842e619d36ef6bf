package experiment

import "math/rand"

// Fill produces n input values. r is seeded per experiment so runs are
// reproducible.
type Fill func(n int, r *rand.Rand) []int

// Experiment is a named input distribution.
type Experiment struct {
	Name string
	Fill Fill
}

// Ascending fills 0, 1, ..., n-1.
func Ascending(n int, _ *rand.Rand) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// Descending fills n-1, n-2, ..., 0.
func Descending(n int, _ *rand.Rand) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = n - 1 - i
	}
	return out
}

// Random fills uniformly distributed values in [0, n).
func Random(n int, r *rand.Rand) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = r.Intn(n)
	}
	return out
}

// Duplicates fills n copies of the same value.
func Duplicates(n int, _ *rand.Rand) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = 1
	}
	return out
}

// Defaults returns the ascending, descending, random and duplicates
// experiments in that order.
func Defaults() []Experiment {
	return []Experiment{
		{Name: "ascending", Fill: Ascending},
		{Name: "descending", Fill: Descending},
		{Name: "random", Fill: Random},
		{Name: "duplicates", Fill: Duplicates},
	}
}
