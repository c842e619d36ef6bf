package mergesort

// options defines all configuration options for a sort call.
type options[T any] struct {
	tracer Tracer[T] // Observer of sort and merge steps
}

// Option is a function that configures a sort call.
type Option[T any] func(*options[T])

// WithTracer installs a Tracer that is notified of every sort and merge step.
// A nil tracer is ignored.
func WithTracer[T any](t Tracer[T]) Option[T] {
	return func(o *options[T]) {
		if t != nil {
			o.tracer = t
		}
	}
}

// defaultOptions returns the default configuration.
func defaultOptions[T any]() options[T] {
	return options[T]{
		tracer: nopTracer[T]{},
	}
}

func newOptions[T any](opts []Option[T]) options[T] {
	o := defaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
