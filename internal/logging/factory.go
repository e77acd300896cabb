package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Supported output formats for New.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatZap  = "zap"
)

// New builds a Logger writing to w in the given format ("text", "json" or
// "zap") at the given level ("debug", "info", "warn", "error"). The returned
// flush function must be called before exit; it is a no-op for slog.
func New(format, level string, w io.Writer) (Logger, func() error, error) {
	noop := func() error { return nil }

	switch strings.ToLower(format) {
	case FormatText, "":
		lvl, err := parseSlogLevel(level)
		if err != nil {
			return nil, noop, err
		}
		h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})
		return NewSlogLogger(slog.New(h)), noop, nil

	case FormatJSON:
		lvl, err := parseSlogLevel(level)
		if err != nil {
			return nil, noop, err
		}
		h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})
		return NewSlogLogger(slog.New(h)), noop, nil

	case FormatZap:
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, noop, fmt.Errorf("invalid log level %q: %w", level, err)
		}
		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(w),
			lvl,
		)
		zl := NewZapLogger(zap.New(core))
		return zl, zl.Sync, nil
	}

	return nil, noop, fmt.Errorf("unknown log format %q", format)
}

func parseSlogLevel(level string) (slog.Level, error) {
	var lvl slog.Level
	if level == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return lvl, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return lvl, nil
}
