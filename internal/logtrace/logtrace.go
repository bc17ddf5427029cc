// Package logtrace is a small structured logging facade over zap.
package logtrace

import (
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKey string

const correlationIDKey ctxKey = FieldCorrelationID

var (
	mu     sync.RWMutex
	logger = zap.NewNop()
)

// Setup installs a console logger writing to stderr at the given level ("debug", "info", "warn", "error").
func Setup(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = true
	cfg.DisableCaller = true
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	l, err := cfg.Build()
	if err != nil {
		return err
	}
	SetLogger(l)
	return nil
}

// SetLogger replaces the package logger; a nil logger discards everything.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	mu.Lock()
	logger = l
	mu.Unlock()
}

// Enabled reports whether entries at level are currently written.
func Enabled(level zapcore.Level) bool {
	mu.RLock()
	defer mu.RUnlock()
	return logger.Core().Enabled(level)
}

// Sync flushes any buffered log entries.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	_ = logger.Sync()
}

// CtxWithCorrelationID returns a context carrying the correlation ID attached to every entry logged with it.
func CtxWithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

func extractCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(correlationIDKey).(string); ok {
		return id
	}
	return ""
}

func Debug(ctx context.Context, msg string, fields Fields) { write(ctx, zapcore.DebugLevel, msg, fields) }

func Info(ctx context.Context, msg string, fields Fields) { write(ctx, zapcore.InfoLevel, msg, fields) }

func Warn(ctx context.Context, msg string, fields Fields) { write(ctx, zapcore.WarnLevel, msg, fields) }

func Error(ctx context.Context, msg string, fields Fields) { write(ctx, zapcore.ErrorLevel, msg, fields) }

func write(ctx context.Context, level zapcore.Level, msg string, fields Fields) {
	mu.RLock()
	l := logger
	mu.RUnlock()

	ce := l.Check(level, msg)
	if ce == nil {
		return
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	zf := make([]zap.Field, 0, len(keys)+1)
	if id := extractCorrelationID(ctx); id != "" {
		zf = append(zf, zap.String(FieldCorrelationID, id))
	}
	for _, k := range keys {
		zf = append(zf, zap.Any(k, fields[k]))
	}
	ce.Write(zf...)
}
