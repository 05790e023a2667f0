package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync/atomic"
)

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
}

// Init installs the JSON logger on stdout.
func Init() {
	SetOutput(os.Stdout)
	Info("logger initialized", nil)
}

// SetOutput redirects all log lines to w.
func SetOutput(w io.Writer) {
	current.Store(slog.New(slog.NewJSONHandler(w, nil)))
}

func Info(msg string, fields map[string]any) {
	emit(slog.LevelInfo, msg, fields)
}

func Warn(msg string, fields map[string]any) {
	emit(slog.LevelWarn, msg, fields)
}

func Error(msg string, fields map[string]any) {
	emit(slog.LevelError, msg, fields)
}

func Fatal(msg string, fields map[string]any) {
	emit(slog.LevelError, msg, withField(fields, "fatal", true))
	os.Exit(1)
}

func emit(level slog.Level, msg string, fields map[string]any) {
	attrs := make([]slog.Attr, 0, len(fields))
	for k, v := range fields {
		attrs = append(attrs, slog.Any(k, v))
	}
	current.Load().LogAttrs(context.Background(), level, msg, attrs...)
}

func withField(fields map[string]any, key string, value any) map[string]any {
	out := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		out[k] = v
	}
	out[key] = value
	return out
}
