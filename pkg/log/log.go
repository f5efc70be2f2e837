// Package log is the process-wide leveled logger. Messages carry key/value
// pairs and go to stderr; user-facing output belongs to pkg/printers.
package log

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

var (
	mu     sync.Mutex
	level  = new(slog.LevelVar)
	logger *slog.Logger
)

func init() {
	level.Set(slog.LevelWarn)
	if v := os.Getenv("MATCHDAY_LOG_LEVEL"); v != "" {
		SetLevel(Level(strings.ToUpper(v)))
	}
	SetOutput(os.Stderr)
}

// SetLevel changes the minimum level that is written.
func SetLevel(l Level) {
	switch l {
	case LevelDebug:
		level.Set(slog.LevelDebug)
	case LevelInfo:
		level.Set(slog.LevelInfo)
	case LevelWarn:
		level.Set(slog.LevelWarn)
	case LevelError:
		level.Set(slog.LevelError)
	}
}

// SetOutput redirects log lines, e.g. away from the terminal while the
// interactive board owns the screen.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func Debug(msg string, kv ...any) {
	current().Debug(msg, kv...)
}

func Info(msg string, kv ...any) {
	current().Info(msg, kv...)
}

func Warn(msg string, kv ...any) {
	current().Warn(msg, kv...)
}

func Error(msg string, err error, kv ...any) {
	// Prepend error into key-value list.
	extended := append([]any{"err", err}, kv...)
	current().Error(msg, extended...)
}

func current() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}
