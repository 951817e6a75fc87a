package cmdio

import (
	"fmt"
	"strings"
	"time"
)

// LogLevel represents the severity level of a log message
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelSuccess
	LevelWarning
	LevelError
)

// String returns the string representation of the log level
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelSuccess:
		return "SUCCESS"
	case LevelWarning:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger provides leveled, optionally colored logging bound to an IOManager.
// Errors and warnings go to the error stream; everything else to stdout.
type Logger struct {
	io         *IOManager
	minLevel   LogLevel
	withTime   bool
	timeFormat string
}

// NewLogger creates a logger bound to the given IOManager
func NewLogger(io *IOManager) *Logger {
	return &Logger{
		io:         io,
		minLevel:   LevelInfo,
		timeFormat: "15:04:05",
	}
}

// WithMinLevel suppresses messages below level and returns the logger
func (l *Logger) WithMinLevel(level LogLevel) *Logger {
	l.minLevel = level
	return l
}

// WithTime prepends a timestamp to each message and returns the logger
func (l *Logger) WithTime() *Logger {
	l.withTime = true
	return l
}

// prefix returns the bracketed tag for level, colored when supported
func (l *Logger) prefix(level LogLevel) string {
	tag := "[" + level.String() + "]"
	switch level {
	case LevelSuccess:
		return l.io.Green(tag)
	case LevelWarning:
		return l.io.Yellow(tag)
	case LevelError:
		return l.io.Red(tag)
	case LevelDebug:
		return l.io.Faint(tag)
	default:
		return tag
	}
}

func (l *Logger) log(level LogLevel, format string, args ...any) {
	if level < l.minLevel {
		return
	}

	var b strings.Builder
	if l.withTime {
		b.WriteString(time.Now().Format(l.timeFormat))
		b.WriteByte(' ')
	}
	b.WriteString(l.prefix(level))
	b.WriteByte(' ')
	fmt.Fprintf(&b, format, args...)
	b.WriteByte('\n')

	w := l.io.Out()
	if level >= LevelWarning {
		w = l.io.Err()
	}
	fmt.Fprint(w, b.String())
}

// Debug logs a debug-level message
func (l *Logger) Debug(format string, args ...any) { l.log(LevelDebug, format, args...) }

// Info logs an info-level message
func (l *Logger) Info(format string, args ...any) { l.log(LevelInfo, format, args...) }

// Success logs a success-level message
func (l *Logger) Success(format string, args ...any) { l.log(LevelSuccess, format, args...) }

// Warning logs a warning-level message to the error stream
func (l *Logger) Warning(format string, args ...any) { l.log(LevelWarning, format, args...) }

// Error logs an error-level message to the error stream
func (l *Logger) Error(format string, args ...any) { l.log(LevelError, format, args...) }
