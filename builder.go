package buildkit

import (
	"time"
)

// State is the lifecycle position of a builder.
type State int

const (
	// StateUnconfigured means no step has been applied yet.
	StateUnconfigured State = iota
	// StateConfiguring means at least one step has been applied since
	// construction or since the last finalize.
	StateConfiguring
	// StateFinalized means the product was rendered and no step has been
	// applied since. Finalizing again is allowed and renders the same value.
	StateFinalized
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUnconfigured:
		return "unconfigured"
	case StateConfiguring:
		return "configuring"
	case StateFinalized:
		return "finalized"
	default:
		return "unknown"
	}
}

// Builder is the chaining core shared by the domain builders. It owns exactly
// one product, applies configuration steps to it and records the first step
// that failed validation.
//
// Domain builders keep a Builder as an unexported field and return themselves
// from every configuration method, as package query does:
//
//	func (b *Builder) Where(cond string) *Builder {
//	    b.core.Step("where", buildkit.ValidateNotBlank("condition", cond), func(q *Query) {
//	        q.conditions = append(q.conditions, cond)
//	    })
//	    return b
//	}
//
// A Builder must be confined to one goroutine for its whole lifetime.
type Builder[P any] struct {
	product *P
	err     error
	state   State
	steps   int
	opts    options
}

// NewBuilder creates a Builder owning product.
func NewBuilder[P any](product *P, opts ...Option) Builder[P] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return Builder[P]{
		product: product,
		opts:    o,
	}
}

// Step applies one configuration step. check is the step's validation
// result: when it is non-nil, apply is not called, the product is left
// untouched and check becomes the builder's error. Once a step has failed,
// later steps are skipped so a chain halts at the offending call.
//
// Step returns true if apply ran.
func (b *Builder[P]) Step(name string, check error, apply func(*P)) bool {
	if b.err != nil {
		b.opts.logger.Debug("buildkit: step skipped",
			"builder", b.opts.name,
			"step", name,
			"cause", b.err,
		)
		b.count(MetricStepsSkipped)
		return false
	}
	if check != nil {
		b.err = check
		b.opts.logger.Warn("buildkit: step rejected",
			"builder", b.opts.name,
			"step", name,
			"error", check,
		)
		b.count(MetricStepsRejected)
		return false
	}

	apply(b.product)
	b.steps++
	b.state = StateConfiguring
	b.opts.logger.Debug("buildkit: step applied",
		"builder", b.opts.name,
		"step", name,
		"steps", b.steps,
	)
	b.count(MetricStepsApplied)
	return true
}

// Err returns the first step failure, or nil.
func (b *Builder[P]) Err() error {
	return b.err
}

// State returns the current lifecycle state.
func (b *Builder[P]) State() State {
	return b.state
}

// Steps returns the number of applied steps.
func (b *Builder[P]) Steps() int {
	return b.steps
}

// Name returns the label used in logs and metrics.
func (b *Builder[P]) Name() string {
	return b.opts.name
}

// Product returns the owned product. Domain packages use it to render and
// snapshot; it must not be handed to callers.
func (b *Builder[P]) Product() *P {
	return b.product
}

func (b *Builder[P]) count(metric string) {
	if b.opts.metrics != nil {
		b.opts.metrics.IncrementCounter(MetricName(b.opts.name, metric), 1)
	}
}

// Finalize renders the product of b. If a step failed, the recorded error is
// returned and render is not called; Finalize never fails on its own.
// Calling it repeatedly without intervening steps yields equal values as long
// as render is deterministic.
func Finalize[P, T any](b *Builder[P], render func(*P) T) BuildResult[T] {
	if b.err != nil {
		b.opts.logger.Debug("buildkit: finalize refused",
			"builder", b.opts.name,
			"error", b.err,
		)
		return BuildResultError[T](b.err)
	}

	start := time.Now()
	value := render(b.product)
	b.state = StateFinalized

	b.opts.logger.Debug("buildkit: finalized",
		"builder", b.opts.name,
		"steps", b.steps,
	)
	if b.opts.metrics != nil {
		b.opts.metrics.IncrementCounter(MetricName(b.opts.name, MetricFinalize), 1)
		b.opts.metrics.RecordDuration(MetricName(b.opts.name, MetricFinalizeTime), time.Since(start))
		b.opts.metrics.SetGauge(MetricName(b.opts.name, MetricSteps), float64(b.steps))
	}
	return BuildResultOk(value)
}
