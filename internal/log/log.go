// Package log provides structured file logging for monkeyreg.
// Logging is off unless Init is called (via --debug or MONKEYREG_DEBUG),
// so the TUI never writes to the terminal it is drawing on.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Level represents log severity.
type Level int

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

// Category groups related log messages.
type Category string

const (
	CatAPI        Category = "api"        // Registry HTTP calls
	CatConfig     Category = "config"     // Configuration loading/saving
	CatUI         Category = "ui"         // UI component updates
	CatController Category = "controller" // Reducer transitions and effects
	CatCache      Category = "cache"      // Cache operations
	CatTrace      Category = "trace"      // Tracing provider lifecycle
)

// Logger provides structured logging.
type Logger struct {
	mu       sync.Mutex
	closer   io.Closer
	writer   io.Writer
	enabled  bool
	minLevel Level
	now      func() time.Time
}

var (
	defaultMu     sync.RWMutex
	defaultLogger *Logger
)

// Init opens path through tea.LogToFile and installs it as the global logger.
// Returns a cleanup function that closes the file.
func Init(path string) (func(), error) {
	f, err := tea.LogToFile(path, "monkeyreg")
	if err != nil {
		return nil, fmt.Errorf("opening debug log %s: %w", path, err)
	}
	install(&Logger{closer: f, writer: f, enabled: true, minLevel: LevelDebug, now: time.Now})
	return func() {
		install(nil)
		_ = f.Close()
	}, nil
}

// InitWriter installs a logger writing to w. Used by tests and by callers that
// already own an output stream.
func InitWriter(w io.Writer, minLevel Level) func() {
	install(&Logger{writer: w, enabled: true, minLevel: minLevel, now: time.Now})
	return func() { install(nil) }
}

func install(l *Logger) {
	defaultMu.Lock()
	defaultLogger = l
	defaultMu.Unlock()
}

func current() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetEnabled toggles logging on/off.
func SetEnabled(enabled bool) {
	if l := current(); l != nil {
		l.mu.Lock()
		l.enabled = enabled
		l.mu.Unlock()
	}
}

// SetMinLevel sets the minimum log level.
func SetMinLevel(level Level) {
	if l := current(); l != nil {
		l.mu.Lock()
		l.minLevel = level
		l.mu.Unlock()
	}
}

// Debug logs at debug level.
func Debug(cat Category, msg string, fields ...any) {
	write(LevelDebug, cat, msg, fields...)
}

// Info logs at info level.
func Info(cat Category, msg string, fields ...any) {
	write(LevelInfo, cat, msg, fields...)
}

// Warn logs at warning level.
func Warn(cat Category, msg string, fields ...any) {
	write(LevelWarn, cat, msg, fields...)
}

// Error logs at error level.
func Error(cat Category, msg string, fields ...any) {
	write(LevelError, cat, msg, fields...)
}

// ErrorErr logs an error with the error value.
func ErrorErr(cat Category, msg string, err error, fields ...any) {
	if err != nil {
		fields = append(fields, "error", err.Error())
	} else {
		fields = append(fields, "error", "<nil>")
	}
	write(LevelError, cat, msg, fields...)
}

func write(level Level, cat Category, msg string, fields ...any) {
	l := current()
	if l == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.enabled || level < l.minLevel || l.writer == nil {
		return
	}

	// Format: 2026-01-06T10:45:00 [ERROR] [api] message key=value key2=value2
	var b strings.Builder
	b.WriteString(l.now().Format("2006-01-02T15:04:05"))
	fmt.Fprintf(&b, " [%s] [%s] %s", level, cat, msg)
	for i := 0; i+1 < len(fields); i += 2 {
		fmt.Fprintf(&b, " %v=%v", fields[i], fields[i+1])
	}
	if len(fields)%2 != 0 {
		fmt.Fprintf(&b, " %v=<missing>", fields[len(fields)-1])
	}
	b.WriteByte('\n')

	_, _ = io.WriteString(l.writer, b.String())
}

// Enabled reports whether a global logger is installed and active.
func Enabled() bool {
	l := current()
	if l == nil {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.enabled
}

// DefaultPath is where the TUI writes its debug log when enabled.
func DefaultPath() string {
	if p := os.Getenv("MONKEYREG_LOG"); p != "" {
		return p
	}
	return "debug.log"
}
