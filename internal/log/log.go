// Package log is a small leveled logger, in the same shape as the
// upstream saferwall/pe/log package this module is derived from: a
// minimal Logger interface plus a Helper that adds level-prefixed
// convenience methods, so callers can pass their own Logger or fall
// back to a filtered stdout logger.
package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// Level is a log severity.
type Level int

// Severity levels, lowest first.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger writes one already-rendered log line at the given level.
type Logger interface {
	Log(level Level, msg string)
}

// stdLogger renders to an *log.Logger, guarded by a mutex since
// multiple goroutines may hold the same process.Ref.
type stdLogger struct {
	mu  sync.Mutex
	std *log.Logger
}

// NewStdLogger returns a Logger that writes timestamped lines to w.
func NewStdLogger(w io.Writer) Logger {
	return &stdLogger{std: log.New(w, "", log.LstdFlags)}
}

func (l *stdLogger) Log(level Level, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.std.Printf("[%s] %s", level, msg)
}

// filterLogger drops anything below its configured minimum level.
type filterLogger struct {
	next Logger
	min  Level
}

// FilterOption configures a filterLogger.
type FilterOption func(*filterLogger)

// FilterLevel sets the minimum level that passes through the filter.
func FilterLevel(min Level) FilterOption {
	return func(f *filterLogger) { f.min = min }
}

// NewFilter wraps next so that only messages at or above the configured
// level (LevelInfo by default) reach it.
func NewFilter(next Logger, opts ...FilterOption) Logger {
	f := &filterLogger{next: next, min: LevelInfo}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *filterLogger) Log(level Level, msg string) {
	if level < f.min {
		return
	}
	f.next.Log(level, msg)
}

// Helper adds printf-style convenience methods on top of a Logger.
type Helper struct {
	logger Logger
}

// NewHelper wraps logger, falling back to a filtered stdout logger
// at LevelError when logger is nil.
func NewHelper(logger Logger) *Helper {
	if logger == nil {
		logger = NewFilter(NewStdLogger(os.Stdout), FilterLevel(LevelError))
	}
	return &Helper{logger: logger}
}

func (h *Helper) Debugf(format string, args ...any) { h.logger.Log(LevelDebug, fmt.Sprintf(format, args...)) }
func (h *Helper) Infof(format string, args ...any)  { h.logger.Log(LevelInfo, fmt.Sprintf(format, args...)) }
func (h *Helper) Warnf(format string, args ...any)  { h.logger.Log(LevelWarn, fmt.Sprintf(format, args...)) }
func (h *Helper) Errorf(format string, args ...any) { h.logger.Log(LevelError, fmt.Sprintf(format, args...)) }
