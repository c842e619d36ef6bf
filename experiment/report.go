package experiment

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/ikorason/merge-sort/metrics"
)

var (
	heading = color.New(color.FgCyan, color.Bold).SprintFunc()
	column  = color.New(color.FgGreen).SprintfFunc()
)

// Report writes one line per result: name, element count, elapsed
// milliseconds and comparisons.
func Report(w io.Writer, results []Result) {
	fmt.Fprintln(w, heading("experiments"))
	for _, r := range results {
		fmt.Fprintf(w, "%s %8s elements %10.3f ms %12s comparisons\n",
			column("%-12s", r.Name),
			humanize.Comma(int64(r.Size)),
			r.Milliseconds(),
			humanize.Comma(int64(r.Comparisons)),
		)
	}
}

// Totals writes the sum over all experiments of each run metric recorded in
// r, with its type and description. Metrics not registered in r are skipped.
func Totals(w io.Writer, r *metrics.Registry) {
	fmt.Fprintln(w, heading("totals"))
	for _, name := range []string{MetricElements, MetricComparisons, MetricDuration} {
		m, ok := r.Lookup(name)
		if !ok {
			continue
		}
		fmt.Fprintf(w, "%s %-9s %14s  %s\n",
			column("%-22s", m.Name),
			m.Type,
			humanize.CommafWithDigits(r.Sum(name, nil), 3),
			m.Description,
		)
	}
}
