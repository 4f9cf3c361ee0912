package buildkit

import (
	"log/slog"

	"go.uber.org/zap"
)

// StructuredLogger provides structured logging support for builders.
// It is compatible with log/slog and similar structured logging libraries.
//
// Use WithLogger() to configure:
//
//	b := computer.New(buildkit.WithLogger(buildkit.NewSlogAdapter(slog.Default())))
type StructuredLogger interface {
	// Debug logs a debug-level message with optional key-value pairs.
	Debug(msg string, args ...any)
	// Info logs an info-level message with optional key-value pairs.
	Info(msg string, args ...any)
	// Warn logs a warning-level message with optional key-value pairs.
	Warn(msg string, args ...any)
	// Error logs an error-level message with optional key-value pairs.
	Error(msg string, args ...any)
}

// NopLogger is a logger that discards all log messages.
// It is the default when no logger is configured.
type NopLogger struct{}

// Debug implements StructuredLogger.Debug.
func (NopLogger) Debug(msg string, args ...any) {}

// Info implements StructuredLogger.Info.
func (NopLogger) Info(msg string, args ...any) {}

// Warn implements StructuredLogger.Warn.
func (NopLogger) Warn(msg string, args ...any) {}

// Error implements StructuredLogger.Error.
func (NopLogger) Error(msg string, args ...any) {}

var _ StructuredLogger = NopLogger{}

// ============================================================================
// Slog Adapter
// ============================================================================

// SlogAdapter adapts a slog.Logger to the StructuredLogger interface.
//
// Example:
//
//	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
//	b, _ := pizza.New("Medium", "Whole wheat",
//	    buildkit.WithLogger(buildkit.NewSlogAdapter(logger)),
//	)
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter wrapping the given slog.Logger.
// If logger is nil, slog.Default() is used.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{logger: logger}
}

// Debug implements StructuredLogger.Debug.
func (a *SlogAdapter) Debug(msg string, args ...any) {
	a.logger.Debug(msg, args...)
}

// Info implements StructuredLogger.Info.
func (a *SlogAdapter) Info(msg string, args ...any) {
	a.logger.Info(msg, args...)
}

// Warn implements StructuredLogger.Warn.
func (a *SlogAdapter) Warn(msg string, args ...any) {
	a.logger.Warn(msg, args...)
}

// Error implements StructuredLogger.Error.
func (a *SlogAdapter) Error(msg string, args ...any) {
	a.logger.Error(msg, args...)
}

// With returns a new SlogAdapter with the given attributes added.
func (a *SlogAdapter) With(args ...any) *SlogAdapter {
	return &SlogAdapter{
		logger: a.logger.With(args...),
	}
}

var _ StructuredLogger = (*SlogAdapter)(nil)

// ============================================================================
// Zap Adapter
// ============================================================================

// ZapAdapter adapts a zap.Logger to the StructuredLogger interface.
// Key-value pairs are passed through zap's sugared "w" methods.
type ZapAdapter struct {
	logger *zap.SugaredLogger
}

// NewZapAdapter creates a new ZapAdapter wrapping the given zap.Logger.
// If logger is nil, zap.NewNop() is used.
func NewZapAdapter(logger *zap.Logger) *ZapAdapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapAdapter{logger: logger.Sugar()}
}

// Debug implements StructuredLogger.Debug.
func (a *ZapAdapter) Debug(msg string, args ...any) {
	a.logger.Debugw(msg, args...)
}

// Info implements StructuredLogger.Info.
func (a *ZapAdapter) Info(msg string, args ...any) {
	a.logger.Infow(msg, args...)
}

// Warn implements StructuredLogger.Warn.
func (a *ZapAdapter) Warn(msg string, args ...any) {
	a.logger.Warnw(msg, args...)
}

// Error implements StructuredLogger.Error.
func (a *ZapAdapter) Error(msg string, args ...any) {
	a.logger.Errorw(msg, args...)
}

var _ StructuredLogger = (*ZapAdapter)(nil)
