package experiment

import (
	"cmp"

	"github.com/convox/logger"

	mergesort "github.com/ikorason/merge-sort"
	"github.com/ikorason/merge-sort/metrics"
)

// options defines all configuration options for a Runner.
type options struct {
	size        int                 // Number of elements per experiment
	seed        int64               // Seed for the random distribution
	verify      bool                // Check sortedness and permutation after each sort
	sorter      Sorter              // Sort under measurement
	less        func(a, b int) bool // Comparator handed to the sort
	experiments []Experiment
	logger      *logger.Logger
	registry    *metrics.Registry
}

// Option is a function that configures the runner options.
type Option func(*options)

// WithSize sets the number of elements sorted by each experiment.
func WithSize(n int) Option {
	return func(o *options) {
		o.size = n
	}
}

// WithSeed sets the seed used by random distributions.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithVerify enables or disables output verification.
func WithVerify(verify bool) Option {
	return func(o *options) {
		o.verify = verify
	}
}

// WithSorter sets the sort under measurement, for example
// mergesort.SortBottomUpFunc[int].
func WithSorter(s Sorter) Option {
	return func(o *options) {
		o.sorter = s
	}
}

// WithLess sets the comparator. Verification checks the output against the
// same comparator.
func WithLess(less func(a, b int) bool) Option {
	return func(o *options) {
		o.less = less
	}
}

// WithExperiments replaces the default experiments.
func WithExperiments(experiments ...Experiment) Option {
	return func(o *options) {
		o.experiments = experiments
	}
}

// WithLogger sets the logger. Each experiment logs under at=<name>.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithRegistry sets the registry that receives the run metrics.
func WithRegistry(r *metrics.Registry) Option {
	return func(o *options) {
		o.registry = r
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		size:        10000,
		seed:        1,
		verify:      true,
		sorter:      mergesort.SortFunc[int],
		less:        cmp.Less[int],
		experiments: Defaults(),
		logger:      logger.New("ns=experiment"),
		registry:    metrics.NewRegistry(),
	}
}
