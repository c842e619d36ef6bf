package experiment

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"

	mergesort "github.com/ikorason/merge-sort"
	"github.com/ikorason/merge-sort/check"
	"github.com/ikorason/merge-sort/list"
	"github.com/ikorason/merge-sort/metrics"
	"github.com/ikorason/merge-sort/position"
)

// Errors returned by Runner.
var (
	ErrInvalidSize    = errors.New("experiment: size must not be negative")
	ErrNotSorted      = errors.New("experiment: output is not sorted")
	ErrNotPermutation = errors.New("experiment: output is not a permutation of the input")
)

// Metric names recorded for each experiment, labeled with experiment=<name>.
const (
	MetricDuration    = "sort_duration_ms"
	MetricComparisons = "sort_comparisons_total"
	MetricElements    = "sort_elements"
)

// Sorter sorts [first, last) under less. mergesort.SortFunc[int] and
// mergesort.SortBottomUpFunc[int] are Sorters.
type Sorter func(first, last position.Position[int], less func(a, b int) bool, opts ...mergesort.Option[int])

// Result is the outcome of one experiment.
type Result struct {
	Name        string
	Size        int
	Elapsed     time.Duration
	Comparisons int
}

// Milliseconds returns Elapsed as fractional milliseconds.
func (r Result) Milliseconds() float64 {
	return float64(r.Elapsed.Nanoseconds()) / 1000000
}

// Runner executes experiments one after another.
type Runner struct {
	opts options
}

// New creates a Runner with the given options. A returned error has already
// been logged.
func New(opts ...Option) (*Runner, error) {
	// Apply default options
	o := defaultOptions()

	// Apply user options
	for _, opt := range opts {
		opt(&o)
	}

	if o.size < 0 {
		return nil, o.logger.Error(errors.Wrapf(ErrInvalidSize, "size=%d", o.size))
	}

	o.registry.Register(metrics.Metric{
		Name:        MetricDuration,
		Type:        metrics.Histogram,
		Description: "Wall-clock sort time in milliseconds",
	})
	o.registry.Register(metrics.Metric{
		Name:        MetricComparisons,
		Type:        metrics.Counter,
		Description: "Comparator calls made by the sort",
	})
	o.registry.Register(metrics.Metric{
		Name:        MetricElements,
		Type:        metrics.Gauge,
		Description: "Number of elements sorted",
	})

	return &Runner{opts: o}, nil
}

// Run executes every experiment in order and returns their results. It stops
// at the first verification failure and returns the results gathered so far.
// Returned errors have already been logged.
func (r *Runner) Run() ([]Result, error) {
	results := make([]Result, 0, len(r.opts.experiments))
	for _, e := range r.opts.experiments {
		res, err := r.run(e)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

func (r *Runner) run(e Experiment) (Result, error) {
	log := r.opts.logger.At(e.Name)

	input := e.Fill(r.opts.size, rand.New(rand.NewSource(r.opts.seed)))
	l := list.New(input...)
	counter := check.NewCounter(r.opts.less)

	start := time.Now()
	r.opts.sorter(l.Begin(), l.End(), counter.Less)
	elapsed := time.Since(start)

	if r.opts.verify {
		if !check.Sorted(l.Begin(), l.End(), r.opts.less) {
			return Result{}, log.Error(errors.Wrapf(ErrNotSorted, "experiment=%s", e.Name))
		}
		if !check.Permutation(input, position.Collect(l.Begin(), l.End()), r.opts.less) {
			return Result{}, log.Error(errors.Wrapf(ErrNotPermutation, "experiment=%s", e.Name))
		}
	}

	res := Result{
		Name:        e.Name,
		Size:        l.Len(),
		Elapsed:     elapsed,
		Comparisons: counter.Count(),
	}

	labels := map[string]string{"experiment": e.Name}
	r.opts.registry.RecordHistogram(MetricDuration, res.Milliseconds(), labels)
	r.opts.registry.RecordCounter(MetricComparisons, float64(res.Comparisons), labels)
	r.opts.registry.RecordGauge(MetricElements, float64(res.Size), labels)

	log.Successf("size=%d comparisons=%d elapsed=%0.3f", res.Size, res.Comparisons, res.Milliseconds())
	return res, nil
}
