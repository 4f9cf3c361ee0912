package buildkit_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jdziat/buildkit"
	"github.com/jdziat/buildkit/buildkittest"
	"github.com/jdziat/buildkit/query"
)

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	adapter := buildkit.NewSlogAdapter(logger).With("component", "test")

	adapter.Warn("step rejected", "step", "limit")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid JSON log line %q: %v", buf.String(), err)
	}
	if entry["level"] != "WARN" || entry["msg"] != "step rejected" {
		t.Errorf("entry = %v", entry)
	}
	if entry["step"] != "limit" || entry["component"] != "test" {
		t.Errorf("entry attributes = %v", entry)
	}
}

func TestSlogAdapter_NilUsesDefault(t *testing.T) {
	adapter := buildkit.NewSlogAdapter(nil)
	// Must not panic.
	adapter.Debug("ok")
}

func TestZapAdapter(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	b, err := query.New("users", buildkit.WithLogger(buildkit.NewZapAdapter(zap.New(core))))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	b.Where("age > 18").Limit(0)

	applied := logs.FilterMessage("buildkit: step applied").All()
	if len(applied) != 1 {
		t.Fatalf("applied entries = %d, want 1", len(applied))
	}
	if got := applied[0].ContextMap()["step"]; got != "where" {
		t.Errorf("step = %v, want where", got)
	}

	rejected := logs.FilterLevelExact(zapcore.WarnLevel).All()
	if len(rejected) != 1 {
		t.Fatalf("warn entries = %d, want 1", len(rejected))
	}
	if got := rejected[0].ContextMap()["builder"]; got != "query" {
		t.Errorf("builder = %v, want query", got)
	}
}

func TestZapAdapter_Nil(t *testing.T) {
	adapter := buildkit.NewZapAdapter(nil)
	adapter.Info("discarded")
	adapter.Error("discarded")
}

func TestBuilderTelemetry(t *testing.T) {
	logger := buildkittest.NewMockLogger()
	metrics := buildkittest.NewMockMetrics()

	b, err := query.New("orders",
		buildkit.WithLogger(logger),
		buildkit.WithMetrics(metrics),
		buildkit.WithName("orders"),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	b.Select("id").Where("").Limit(5)
	if _, err := b.Execute(); err == nil {
		t.Fatal("Execute() should fail after a rejected step")
	}

	if got := metrics.GetCounter("orders.steps.applied"); got != 1 {
		t.Errorf("applied = %d, want 1", got)
	}
	if got := metrics.GetCounter("orders.steps.rejected"); got != 1 {
		t.Errorf("rejected = %d, want 1", got)
	}
	if got := metrics.GetCounter("orders.steps.skipped"); got != 1 {
		t.Errorf("skipped = %d, want 1", got)
	}
	if got := metrics.GetCounter("orders.finalize"); got != 0 {
		t.Errorf("finalize = %d, want 0", got)
	}

	warns := logger.EntriesAt("warn")
	if len(warns) != 1 {
		t.Fatalf("warn entries = %d, want 1", len(warns))
	}
	if step, _ := warns[0].Attr("step"); step != "where" {
		t.Errorf("rejected step = %v, want where", step)
	}
}

func TestBuilderTelemetry_Finalize(t *testing.T) {
	metrics := buildkittest.NewMockMetrics()
	b := query.Must("users", buildkit.WithMetrics(metrics))

	for i := 0; i < 2; i++ {
		if _, err := b.Execute(); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
	}

	if got := metrics.GetCounter(buildkit.MetricName("query", buildkit.MetricFinalize)); got != 2 {
		t.Errorf("finalize = %d, want 2", got)
	}
	if got := len(metrics.GetTimings("query.finalize.duration")); got != 2 {
		t.Errorf("finalize timings = %d, want 2", got)
	}
}

func TestBuilderTelemetry_StepsGauge(t *testing.T) {
	metrics := buildkittest.NewMockMetrics()
	b := query.Must("users", buildkit.WithMetrics(metrics)).Select("id").Where("age > 18")

	if _, err := b.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got := metrics.GetGauge("query.steps"); got != 2 {
		t.Errorf("steps gauge = %v, want 2", got)
	}

	b.Limit(10)
	if _, err := b.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got := metrics.GetGauge("query.steps"); got != 3 {
		t.Errorf("steps gauge = %v, want 3", got)
	}
}
