// Package buildkittest provides testing utilities for code that configures
// buildkit builders with a logger or metrics sink.
//
// # Mock Logger
//
// Use MockLogger to assert on builder tracing:
//
//	logger := buildkittest.NewMockLogger()
//	b, _ := query.New("users", buildkit.WithLogger(logger))
//	b.Where("")
//
//	if len(logger.EntriesAt("warn")) != 1 {
//	    t.Error("expected the rejected step to be logged")
//	}
//
// # Mock Metrics
//
// Use MockMetrics to verify counters are recorded correctly:
//
//	metrics := buildkittest.NewMockMetrics()
//	b := computer.New(buildkit.WithMetrics(metrics))
//	b.CPU("i7").Build()
//
//	if metrics.GetCounter("computer.steps.applied") != 1 {
//	    t.Error("expected one applied step")
//	}
package buildkittest
