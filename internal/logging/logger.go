// Package logging is the structured logger shared by the client packages.
//
// Pick the backend with the log_format setting:
//
//	text  slog text handler, the default, for an interactive terminal
//	json  slog JSON handler, when stderr is collected by another tool
//	zap   zap production JSON encoder, buffered; call the flush func from New
//
// Session code only sees the Logger interface and passes context plus
// key/value pairs, e.g. "attempts", n or "session_id", id.
package logging

import "context"

// Logger is implemented by SlogLogger and ZapLogger. Args are key/value
// pairs; Debug is off unless log_level is "debug".
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
	// With returns a child logger that adds args to every record.
	With(args ...any) Logger
}
