package logger

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

type LogLevel string

const (
	DEBUG LogLevel = "debug"
	INFO  LogLevel = "info"
	WARN  LogLevel = "warn"
	ERROR LogLevel = "error"
)

// Logger is a thin facade over zerolog so call sites log snake_case events
// with flat key-value pairs.
type Logger struct {
	zl zerolog.Logger
}

var (
	mu     sync.Mutex
	global *Logger
)

// Init configures the process-wide logger. Pass nil to silence output
// (used by tests).
func Init(level LogLevel, jsonFormat bool, out io.Writer) {
	if out == nil {
		out = io.Discard
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(string(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	var w io.Writer = out
	if !jsonFormat {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}

	zl := zerolog.New(w).Level(lvl).With().Timestamp().Logger()

	mu.Lock()
	global = &Logger{zl: zl}
	mu.Unlock()
}

func GetLogger() *Logger {
	mu.Lock()
	defer mu.Unlock()
	if global == nil {
		global = &Logger{zl: zerolog.New(os.Stdout).With().Timestamp().Logger()}
	}
	return global
}

// WithContext returns a child logger with a fixed key-value pair attached
// to every event.
func (l *Logger) WithContext(key, value string) *Logger {
	return &Logger{zl: l.zl.With().Str(key, value).Logger()}
}

func (l *Logger) Debug(event string, kv ...string) { l.emit(l.zl.Debug(), event, kv) }
func (l *Logger) Info(event string, kv ...string)  { l.emit(l.zl.Info(), event, kv) }
func (l *Logger) Warn(event string, kv ...string)  { l.emit(l.zl.Warn(), event, kv) }
func (l *Logger) Error(event string, kv ...string) { l.emit(l.zl.Error(), event, kv) }

func (l *Logger) emit(e *zerolog.Event, event string, kv []string) {
	for i := 0; i+1 < len(kv); i += 2 {
		e = e.Str(kv[i], kv[i+1])
	}
	e.Msg(event)
}
