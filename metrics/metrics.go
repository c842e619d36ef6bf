// Package metrics keeps named counters, gauges and histograms in memory so
// a benchmark run can be inspected after the fact.
package metrics

import (
	"sync"
	"time"
)

// MetricType represents different types of metrics
type MetricType int

const (
	Counter MetricType = iota
	Gauge
	Histogram
)

func (t MetricType) String() string {
	switch t {
	case Counter:
		return "counter"
	case Gauge:
		return "gauge"
	case Histogram:
		return "histogram"
	default:
		return "unknown"
	}
}

// Metric describes a registered metric.
type Metric struct {
	Name        string
	Type        MetricType
	Description string
}

// MetricValue is one recorded observation.
type MetricValue struct {
	Value     float64
	Timestamp time.Time
	Labels    map[string]string
}

// Registry stores and manages metrics. It is safe for concurrent use.
type Registry struct {
	metrics map[string]Metric
	values  map[string][]MetricValue
	mu      sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		metrics: make(map[string]Metric),
		values:  make(map[string][]MetricValue),
	}
}

// Register adds a metric. Registering a name again replaces its description
// and type but keeps recorded values.
func (r *Registry) Register(metric Metric) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.metrics[metric.Name] = metric
}

// Lookup returns the registered metric with the given name.
func (r *Registry) Lookup(name string) (Metric, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.metrics[name]
	return m, ok
}

// RecordCounter adds value to the counter for labels.
func (r *Registry) RecordCounter(name string, value float64, labels map[string]string) {
	r.record(name, Counter, value, labels, false)
}

// RecordGauge sets the gauge for labels to value, dropping the earlier
// reading with the same labels.
func (r *Registry) RecordGauge(name string, value float64, labels map[string]string) {
	r.record(name, Gauge, value, labels, true)
}

// RecordHistogram appends an observation.
func (r *Registry) RecordHistogram(name string, value float64, labels map[string]string) {
	r.record(name, Histogram, value, labels, false)
}

// record ignores names that are not registered with type t.
func (r *Registry) record(name string, t MetricType, value float64, labels map[string]string, replace bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	metric, ok := r.metrics[name]
	if !ok || metric.Type != t {
		return
	}

	v := MetricValue{
		Value:     value,
		Timestamp: time.Now(),
		Labels:    copyLabels(labels),
	}
	if !replace {
		r.values[name] = append(r.values[name], v)
		return
	}

	var kept []MetricValue
	for _, old := range r.values[name] {
		if !sameLabels(old.Labels, labels) {
			kept = append(kept, old)
		}
	}
	r.values[name] = append(kept, v)
}

// Sum adds up recorded values of name whose labels include every pair in
// match. A nil match selects all values.
func (r *Registry) Sum(name string, match map[string]string) float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var total float64
	for _, v := range r.values[name] {
		if matches(v.Labels, match) {
			total += v.Value
		}
	}
	return total
}

// Metrics returns a copy of every recorded value keyed by metric name.
func (r *Registry) Metrics() map[string][]MetricValue {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string][]MetricValue)
	for name, values := range r.values {
		result[name] = append([]MetricValue{}, values...)
	}
	return result
}

func matches(labels, match map[string]string) bool {
	for k, want := range match {
		if labels[k] != want {
			return false
		}
	}
	return true
}

func sameLabels(a, b map[string]string) bool {
	return len(a) == len(b) && matches(a, b)
}

func copyLabels(labels map[string]string) map[string]string {
	if labels == nil {
		return nil
	}
	out := make(map[string]string, len(labels))
	for k, v := range labels {
		out[k] = v
	}
	return out
}
