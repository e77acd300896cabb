package logging

import (
	"context"

	"go.uber.org/zap"
)

// ZapLogger adapts a sugared zap logger to Logger. The context is accepted
// for interface symmetry; zap does not read values from it.
type ZapLogger struct {
	s *zap.SugaredLogger
}

func NewZapLogger(l *zap.Logger) *ZapLogger {
	return &ZapLogger{s: l.Sugar()}
}

func (z *ZapLogger) Debug(_ context.Context, msg string, args ...any) {
	z.s.Debugw(msg, args...)
}

func (z *ZapLogger) Info(_ context.Context, msg string, args ...any) {
	z.s.Infow(msg, args...)
}

func (z *ZapLogger) Warn(_ context.Context, msg string, args ...any) {
	z.s.Warnw(msg, args...)
}

func (z *ZapLogger) Error(_ context.Context, msg string, args ...any) {
	z.s.Errorw(msg, args...)
}

func (z *ZapLogger) With(args ...any) Logger {
	return &ZapLogger{s: z.s.With(args...)}
}

// Sync flushes any buffered log entries.
func (z *ZapLogger) Sync() error {
	return z.s.Sync()
}
