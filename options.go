package buildkit

// Option configures the ambient behavior of a builder: logging, metrics and
// the label both report under. Options never affect the rendered product.
type Option func(*options)

type options struct {
	name    string
	logger  StructuredLogger
	metrics Metrics
}

func defaultOptions() options {
	return options{
		name:   "builder",
		logger: NopLogger{},
	}
}

// WithName sets the label the builder uses in log entries and metric names.
// Domain packages default it to their product kind ("query", "pizza", ...).
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// WithLogger sets a structured logger for step tracing.
//
// Example:
//
//	b, _ := query.New("users",
//	    buildkit.WithLogger(buildkit.NewSlogAdapter(slog.Default())),
//	)
func WithLogger(logger StructuredLogger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMetrics sets a metrics sink for step and finalize counters.
func WithMetrics(metrics Metrics) Option {
	return func(o *options) {
		o.metrics = metrics
	}
}
