// Package logger writes roamly's debug log. Everything goes to one file under
// /tmp so the alternate screen stays clean; the printf helpers serve the app
// layer and the slog loggers from ComponentLogger and WithSheet serve the
// engine and UI components.
package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// DefaultLogPath is the default log file for the TUI process
const DefaultLogPath = "/tmp/roamly-debug.log"

// logGlob matches every file this package may have written.
const logGlob = "/tmp/roamly-*.log"

var (
	mu       sync.Mutex
	base     *slog.Logger
	file     *os.File
	path     string
	opened   bool
	level    = new(slog.LevelVar) // info until SetLevel
	fallback sync.Once
)

// SetLevel sets the minimum level written.
func SetLevel(l slog.Level) {
	level.Set(l)
}

// SetDebug switches between debug and info level.
func SetDebug(enabled bool) {
	if enabled {
		SetLevel(slog.LevelDebug)
		return
	}
	SetLevel(slog.LevelInfo)
}

// Init opens the log at p. Only the first successful call has an effect;
// logging before Init opens DefaultLogPath.
func Init(p string) error {
	mu.Lock()
	defer mu.Unlock()

	if opened {
		return nil
	}
	return open(p)
}

// open points the base logger at p. Callers hold mu.
func open(p string) error {
	f, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", p, err)
	}

	file, path, opened = f, p, true
	base = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	base.Info("Logger initialized", "path", p, "pid", os.Getpid())
	return nil
}

// current returns the base logger, opening DefaultLogPath on first use.
// Callers hold mu.
func current() *slog.Logger {
	if !opened {
		fallback.Do(func() {
			if err := open(DefaultLogPath); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			}
		})
	}
	return base
}

func logf(l slog.Level, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	lg := current()
	if lg == nil || !lg.Enabled(context.Background(), l) {
		return
	}
	lg.Log(context.Background(), l, fmt.Sprintf(format, args...))
}

// Debug writes a debug message to the log file (only at debug level)
func Debug(format string, args ...any) { logf(slog.LevelDebug, format, args...) }

// Info writes an info message to the log file
func Info(format string, args ...any) { logf(slog.LevelInfo, format, args...) }

// Warn writes a warning message to the log file
func Warn(format string, args ...any) { logf(slog.LevelWarn, format, args...) }

// Error writes an error message to the log file
func Error(format string, args ...any) { logf(slog.LevelError, format, args...) }

// with returns the base logger carrying attrs, or slog.Default when no log
// file could be opened.
func with(attrs ...any) *slog.Logger {
	mu.Lock()
	defer mu.Unlock()

	lg := current()
	if lg == nil {
		return slog.Default()
	}
	return lg.With(attrs...)
}

// ComponentLogger returns a slog.Logger with the component attribute pre-attached.
//
//	log := logger.ComponentLogger("ui")
//	log.Debug("Terminal size updated", "width", w, "height", h)
func ComponentLogger(component string) *slog.Logger {
	return with(slog.String("component", component))
}

// WithSheet returns a slog.Logger for one sheet instance. Every engine
// transition of that sheet carries the same sheetID.
func WithSheet(sheetID string) *slog.Logger {
	return with(slog.String("component", "sheet"), slog.String("sheetID", sheetID))
}

// Path returns the path of the active log file, or "" before it is opened.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return path
}

// Close closes the log file. Later log calls are dropped.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if file != nil {
		file.Close()
		file = nil
	}
	base = nil
}

// Reset closes the log and forgets it so Init can run again. For tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()

	if file != nil {
		file.Close()
	}
	file, base, path, opened = nil, nil, "", false
	fallback = sync.Once{}
	level.Set(slog.LevelInfo)
}

// LogFiles lists the roamly log files in /tmp
func LogFiles() ([]string, error) {
	return filepath.Glob(logGlob)
}

// ClearLogs removes roamly log files from /tmp and returns how many went.
func ClearLogs() (int, error) {
	logs, err := LogFiles()
	if err != nil {
		return 0, err
	}

	count := 0
	for _, p := range logs {
		if err := os.Remove(p); err == nil {
			count++
		} else if !os.IsNotExist(err) {
			return count, err
		}
	}
	return count, nil
}
