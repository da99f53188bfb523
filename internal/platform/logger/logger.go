package logger

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.RWMutex
	global = zap.NewNop()
)

// Init replaces the global logger. level is a zap level name
// ("debug", "info", "warn", "error"); asJSON switches the encoder
// between JSON and console output.
func Init(level string, asJSON bool) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("logger.Init: parse level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	if asJSON {
		cfg.Encoding = "json"
	} else {
		cfg.Encoding = "console"
		cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return fmt.Errorf("logger.Init: build: %w", err)
	}

	mu.Lock()
	global = l
	mu.Unlock()
	return nil
}

func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// SetNopLogger silences the global logger. Used in tests.
func SetNopLogger() {
	mu.Lock()
	global = zap.NewNop()
	mu.Unlock()
}

func Debug(ctx context.Context, msg string, fields ...Field) {
	L().Debug(msg, fields...)
}

func Info(ctx context.Context, msg string, fields ...Field) {
	L().Info(msg, fields...)
}

func Warn(ctx context.Context, msg string, fields ...Field) {
	L().Warn(msg, fields...)
}

func Error(ctx context.Context, msg string, fields ...Field) {
	L().Error(msg, fields...)
}

// Logger is a scoped logger carrying a preset field set.
type Logger struct {
	l *zap.Logger
}

func With(fields ...Field) *Logger {
	return &Logger{l: L().With(fields...)}
}

func (s *Logger) Debug(ctx context.Context, msg string, fields ...Field) {
	s.l.Debug(msg, fields...)
}

func (s *Logger) Info(ctx context.Context, msg string, fields ...Field) {
	s.l.Info(msg, fields...)
}

func (s *Logger) Warn(ctx context.Context, msg string, fields ...Field) {
	s.l.Warn(msg, fields...)
}

func (s *Logger) Error(ctx context.Context, msg string, fields ...Field) {
	s.l.Error(msg, fields...)
}

// NoopLogger satisfies log consumers that want a do-nothing sink.
type NoopLogger struct{}

func (NoopLogger) Info(ctx context.Context, msg string, fields ...zap.Field)  {}
func (NoopLogger) Error(ctx context.Context, msg string, fields ...zap.Field) {}
