package buildkittest

import (
	"sync"
	"time"

	"github.com/jdziat/buildkit"
)

// Compile-time interface assertions to catch drift between mock implementations
// and the actual interfaces they're supposed to implement.
var (
	_ buildkit.Metrics          = (*MockMetrics)(nil)
	_ buildkit.StructuredLogger = (*MockLogger)(nil)
)

// MockMetrics is a mock implementation of the Metrics interface for testing.
// It records all metrics operations for later verification.
type MockMetrics struct {
	mu       sync.Mutex
	Counters map[string]int64
	Gauges   map[string]float64
	Timings  map[string][]time.Duration
}

// NewMockMetrics creates a new mock metrics collector.
func NewMockMetrics() *MockMetrics {
	return &MockMetrics{
		Counters: make(map[string]int64),
		Gauges:   make(map[string]float64),
		Timings:  make(map[string][]time.Duration),
	}
}

// IncrementCounter implements Metrics.IncrementCounter.
func (m *MockMetrics) IncrementCounter(name string, value int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Counters[name] += value
}

// RecordDuration implements Metrics.RecordDuration.
func (m *MockMetrics) RecordDuration(name string, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Timings[name] = append(m.Timings[name], duration)
}

// SetGauge implements Metrics.SetGauge.
func (m *MockMetrics) SetGauge(name string, value float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Gauges[name] = value
}

// GetCounter returns the value of a counter.
func (m *MockMetrics) GetCounter(name string) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Counters[name]
}

// GetGauge returns the value of a gauge.
func (m *MockMetrics) GetGauge(name string) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Gauges[name]
}

// GetTimings returns all recorded timings for a metric.
func (m *MockMetrics) GetTimings(name string) []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]time.Duration{}, m.Timings[name]...)
}

// Reset clears all recorded metrics.
func (m *MockMetrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Counters = make(map[string]int64)
	m.Gauges = make(map[string]float64)
	m.Timings = make(map[string][]time.Duration)
}

// Entry is one captured log call.
type Entry struct {
	Level   string
	Message string
	Args    []any
}

// Attr returns the value logged under key, and whether it was present.
func (e Entry) Attr(key string) (any, bool) {
	for i := 0; i+1 < len(e.Args); i += 2 {
		if k, ok := e.Args[i].(string); ok && k == key {
			return e.Args[i+1], true
		}
	}
	return nil, false
}

// MockLogger is a mock implementation of the StructuredLogger interface for
// testing. It captures all log entries for later verification.
type MockLogger struct {
	mu      sync.Mutex
	Entries []Entry
}

// NewMockLogger creates a new mock logger.
func NewMockLogger() *MockLogger {
	return &MockLogger{
		Entries: make([]Entry, 0),
	}
}

func (l *MockLogger) record(level, msg string, args []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Entries = append(l.Entries, Entry{Level: level, Message: msg, Args: append([]any{}, args...)})
}

// Debug implements StructuredLogger.Debug.
func (l *MockLogger) Debug(msg string, args ...any) { l.record("debug", msg, args) }

// Info implements StructuredLogger.Info.
func (l *MockLogger) Info(msg string, args ...any) { l.record("info", msg, args) }

// Warn implements StructuredLogger.Warn.
func (l *MockLogger) Warn(msg string, args ...any) { l.record("warn", msg, args) }

// Error implements StructuredLogger.Error.
func (l *MockLogger) Error(msg string, args ...any) { l.record("error", msg, args) }

// GetEntries returns all captured entries.
func (l *MockLogger) GetEntries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Entry{}, l.Entries...)
}

// EntriesAt returns the captured entries logged at level.
func (l *MockLogger) EntriesAt(level string) []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []Entry
	for _, e := range l.Entries {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

// Messages returns the captured messages in order.
func (l *MockLogger) Messages() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.Entries))
	for i, e := range l.Entries {
		out[i] = e.Message
	}
	return out
}

// EntryCount returns the number of captured entries.
func (l *MockLogger) EntryCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.Entries)
}

// Reset clears all captured entries.
func (l *MockLogger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Entries = make([]Entry, 0)
}
