// Package obslog provides structured logging for the ECVRF engine's
// construction and prove/verify/proof-to-hash calls, adapted from the
// teacher repo's infrastructure/logging package. The core never performs
// I/O or aborts the process (spec §5/§7), so the teacher's HTTP, database,
// blockchain-tx, and Fatal/Panic helpers have no home here and are
// dropped; only the trace-context and crypto-operation logging survive.
package obslog

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ContextKey is the type for context keys carried alongside a Prove/Verify
// call, for correlating engine logs with a caller's request trace.
type ContextKey string

// TraceIDKey is the context key for a caller-supplied trace ID.
const TraceIDKey ContextKey = "trace_id"

// component tags every log line this package emits, distinguishing the
// engine's own logs from a host application's, regardless of the service
// name the caller passes to New.
const component = "ecvrf"

// Logger wraps logrus.Logger with the VRF engine's service name and
// context-aware field injection.
type Logger struct {
	*logrus.Logger
	service string
}

// New builds a Logger at the given level ("debug", "info", ...) and format
// ("json" or "text"), falling back to info on an unrecognized level and to
// text on any format other than "json".
func New(service, level, format string) *Logger {
	logger := logrus.New()
	logger.SetLevel(parseLevel(level))
	logger.SetFormatter(newFormatter(format))
	logger.SetOutput(os.Stdout)
	return &Logger{Logger: logger, service: service}
}

// NewFromEnv constructs a logger using LOG_LEVEL and LOG_FORMAT environment
// variables, defaulting to info/json when unset — the host application's
// choice of verbosity, not a per-call setting.
func NewFromEnv(service string) *Logger {
	return New(service, envOrDefault("LOG_LEVEL", "info"), envOrDefault("LOG_FORMAT", "json"))
}

func envOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return logrus.InfoLevel
	}
	return parsed
}

func newFormatter(format string) logrus.Formatter {
	if format == "json" {
		return &logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		}
	}
	return &logrus.TextFormatter{TimestampFormat: time.RFC3339, FullTimestamp: true}
}

// WithContext returns a logger entry tagged with this package's component,
// the caller's service name, and, if present, a trace ID carried on ctx.
func (l *Logger) WithContext(ctx context.Context) *logrus.Entry {
	entry := l.Logger.WithFields(logrus.Fields{"component": component, "service": l.service})
	if traceID := ctx.Value(TraceIDKey); traceID != nil {
		entry = entry.WithField("trace_id", traceID)
	}
	return entry
}

// NewTraceID generates a new trace ID for correlating a Prove/Verify call
// across log lines.
func NewTraceID() string {
	return uuid.New().String()
}

// WithTraceID adds a trace ID to the context.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDKey, traceID)
}

// LogCryptoOperation logs a cryptographic operation's outcome at debug
// level on success, error level on failure — this is the engine's primary
// logging call, invoked around Prove, Verify, and ProofToHash.
func (l *Logger) LogCryptoOperation(ctx context.Context, operation string, success bool, err error) {
	entry := l.WithContext(ctx).WithFields(logrus.Fields{
		"operation": operation,
		"success":   success,
	})

	if err != nil {
		entry.WithError(err).Error("cryptographic operation failed")
	} else {
		entry.Debug("cryptographic operation completed")
	}
}

// Debug logs a debug message with the given fields.
func (l *Logger) Debug(ctx context.Context, message string, fields map[string]interface{}) {
	l.WithContext(ctx).WithFields(fields).Debug(message)
}

// Error logs an error message with the given fields.
func (l *Logger) Error(ctx context.Context, message string, err error, fields map[string]interface{}) {
	entry := l.WithContext(ctx)
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.WithFields(fields).Error(message)
}
