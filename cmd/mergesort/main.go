// Command mergesort demonstrates the merge sort on linked lists and times it
// against several input distributions.
package main

import (
	"cmp"
	"fmt"
	"io"
	"os"

	"github.com/convox/logger"
	"github.com/fatih/color"

	mergesort "github.com/ikorason/merge-sort"
	"github.com/ikorason/merge-sort/experiment"
	"github.com/ikorason/merge-sort/list"
	"github.com/ikorason/merge-sort/loser"
	"github.com/ikorason/merge-sort/metrics"
	"github.com/ikorason/merge-sort/trace"
)

var (
	log     = logger.New("ns=mergesort")
	section = color.New(color.FgYellow, color.Bold).SprintFunc()
)

func main() {
	// The experiment runner has already logged any error it returns.
	if err := run(os.Stdout); err != nil {
		os.Exit(1)
	}
}

func run(w io.Writer, opts ...experiment.Option) error {
	fmt.Fprintln(w, section("trace"))
	l := list.New(2, 5, 1, 7, 9, 2, 4, 3, 8, 11)
	mergesort.SortFunc(l.Begin(), l.End(), cmp.Less[int], mergesort.WithTracer[int](trace.NewPrinter[int](w)))
	fmt.Fprint(w, "done  ")
	trace.Print(w, l.Begin(), l.End(), true)

	fmt.Fprintln(w, section("descending"))
	l = list.New(2, 5, 1, 7, 9, 2, 4, 3, 8, 11)
	mergesort.SortFunc(l.Begin(), l.End(), func(a, b int) bool { return a > b })
	trace.Print(w, l.Begin(), l.End(), true)

	fmt.Fprintln(w, section("default"))
	l = list.New(38, 27, 43, 3, 9, 82, 10)
	mergesort.Sort(l.Begin(), l.End())
	trace.Print(w, l.Begin(), l.End(), true)

	fmt.Fprintln(w, section("k-way"))
	tree := loser.New([]loser.Sequence[int]{list.New(1, 4, 7), list.New(2, 5, 8), list.New(3, 6, 9)}, cmp.Less[int])
	for v := range tree.All() {
		fmt.Fprint(w, v, " ")
	}
	fmt.Fprintln(w)

	registry := metrics.NewRegistry()
	opts = append([]experiment.Option{
		experiment.WithLogger(log.Namespace("component=experiment")),
		experiment.WithRegistry(registry),
	}, opts...)

	r, err := experiment.New(opts...)
	if err != nil {
		return err
	}
	results, err := r.Run()
	if err != nil {
		return err
	}
	experiment.Report(w, results)
	experiment.Totals(w, registry)

	return nil
}
