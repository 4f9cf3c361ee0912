package buildkit

import "time"

// Metrics is an optional interface for builder telemetry.
type Metrics interface {
	// IncrementCounter increments a counter metric.
	IncrementCounter(name string, value int64)
	// RecordDuration records a duration metric.
	RecordDuration(name string, duration time.Duration)
	// SetGauge sets a gauge metric.
	SetGauge(name string, value float64)
}

// Metric names, prefixed with the builder name: "<name>.steps.applied".
// MetricSteps is a gauge holding the applied step count at the last finalize.
const (
	MetricStepsApplied  = "steps.applied"
	MetricStepsRejected = "steps.rejected"
	MetricStepsSkipped  = "steps.skipped"
	MetricFinalize      = "finalize"
	MetricFinalizeTime  = "finalize.duration"
	MetricSteps         = "steps"
)

// MetricName joins a builder name and a metric suffix.
func MetricName(builder, metric string) string {
	return builder + "." + metric
}
