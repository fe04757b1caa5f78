package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// LogFilePath is the default log file, relative to the working directory (project root when run via go run ./cmd/lab).
const LogFilePath = "logs/lab.txt"

// DefaultCapacity is how many lines the in-memory buffer keeps for the console.
const DefaultCapacity = 256

// Level orders log lines by severity.
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
	}
	return "LEVEL(" + fmt.Sprint(int(l)) + ")"
}

// ParseLevel maps debug, info, warn and error (any case) to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// Logger keeps recent lines in memory (for the in-window console) and appends every line to a file on disk.
// An empty path keeps lines in memory only.
type Logger struct {
	mu    sync.Mutex
	path  string
	min   Level
	limit int
	lines []string
	now   func() time.Time
}

// NewWithPath returns a Logger writing to path. The directory is created if needed.
func NewWithPath(path string) *Logger {
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
	}
	return &Logger{
		path:  path,
		min:   LevelInfo,
		limit: DefaultCapacity,
		lines: make([]string, 0),
		now:   time.Now,
	}
}

// SetLevel drops lines below min from now on.
func (l *Logger) SetLevel(min Level) {
	l.mu.Lock()
	l.min = min
	l.mu.Unlock()
}

// SetCapacity changes how many lines Lines can return. Values below 1 are ignored.
func (l *Logger) SetCapacity(n int) {
	if n < 1 {
		return
	}
	l.mu.Lock()
	l.limit = n
	l.trim()
	l.mu.Unlock()
}

func (l *Logger) Debug(format string, args ...any) { l.logf(LevelDebug, format, args...) }
func (l *Logger) Info(format string, args ...any)  { l.logf(LevelInfo, format, args...) }
func (l *Logger) Warn(format string, args ...any)  { l.logf(LevelWarn, format, args...) }
func (l *Logger) Error(format string, args ...any) { l.logf(LevelError, format, args...) }

// Log records a line at info level as is. Console input is echoed through here.
func (l *Logger) Log(line string) {
	l.write(LevelInfo, line)
}

func (l *Logger) logf(level Level, format string, args ...any) {
	l.write(level, fmt.Sprintf(format, args...))
}

// write prefixes line with [timestamp] LEVEL using computer time.
func (l *Logger) write(level Level, line string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level < l.min {
		return
	}
	ts := l.now().Format("2006-01-02 15:04:05")
	stamped := "[" + ts + "] " + level.String() + " " + line

	l.lines = append(l.lines, stamped)
	l.trim()

	if l.path == "" {
		return
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// trim drops the oldest lines over capacity. Caller holds mu.
func (l *Logger) trim() {
	if over := len(l.lines) - l.limit; over > 0 {
		l.lines = append(l.lines[:0], l.lines[over:]...)
	}
}

// Lines returns a copy of the stored lines, oldest first.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}
