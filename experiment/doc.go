// Package experiment times the merge sort against fixed input distributions.
//
// Each Experiment fills a fresh linked list, sorts it with a counting
// comparator and reports the wall-clock time in milliseconds together with
// the number of comparisons. Results are logged through a
// github.com/convox/logger Logger, recorded in a metrics.Registry and can be
// printed with Report.
//
// Basic usage:
//
//	r, err := experiment.New(experiment.WithSize(10000))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	results, err := r.Run()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	experiment.Report(os.Stdout, results)
//
// The default set covers ascending, descending, uniformly random and
// all-duplicate input. By default the output of every run is verified to be
// sorted and to be a permutation of the input; a failure stops the run with
// ErrNotSorted or ErrNotPermutation.
package experiment
