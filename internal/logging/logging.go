package logging

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Field = zapcore.Field

type LoggerCtxKey struct{}

// Logger is a thin wrapper over a zap logger. The zero value discards
// everything.
type Logger struct {
	log *zap.Logger
}

var nop = &Logger{log: zap.NewNop()}

// New wraps logger. A nil logger yields a no-op Logger.
func New(logger *zap.Logger) *Logger {
	if logger == nil {
		return nop
	}
	return &Logger{log: logger}
}

// Nop returns a Logger that discards everything. Libraries in this module
// never log unless the caller supplied a logger through the context.
func Nop() *Logger {
	return nop
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return New(logger).GetContext(ctx)
}

func FromContext(ctx context.Context) *Logger {
	if ctx == nil {
		return nop
	}

	if l, ok := ctx.Value(LoggerCtxKey{}).(*Logger); ok {
		return l
	}

	return nop
}

func (l *Logger) logger() *zap.Logger {
	if l == nil || l.log == nil {
		return nop.log
	}
	return l.log
}

func (l *Logger) Debug(msg string, fields ...Field) {
	l.logger().Debug(msg, fields...)
}

func (l *Logger) Info(msg string, fields ...Field) {
	l.logger().Info(msg, fields...)
}

func (l *Logger) Warn(msg string, fields ...Field) {
	l.logger().Warn(msg, fields...)
}

func (l *Logger) Error(msg string, fields ...Field) {
	l.logger().Error(msg, fields...)
}

func (l *Logger) With(fields ...Field) *Logger {
	return &Logger{log: l.logger().With(fields...)}
}

func (l *Logger) GetContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, LoggerCtxKey{}, l)
}
