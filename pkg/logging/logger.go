package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Logger provides structured diagnostic logging for demo components.
// Entries carry a timestamp, component name, and level. Output goes to
// a session-specific file under ~/.memento/logs by default, or to any
// writer the caller supplies.
//
// All log methods write unconditionally; there is no level filtering.
type Logger struct {
	sessionID string
	component string
	logger    *log.Logger
	mu        sync.Mutex
	closer    io.Closer
}

var (
	// Global session ID for the current execution
	sessionID     string
	sessionIDOnce sync.Once
)

// getSessionID returns or creates the session ID for this execution
func getSessionID() string {
	sessionIDOnce.Do(func() {
		sessionID = uuid.New().String()
	})
	return sessionID
}

// NewWriterLogger creates a logger for a component that writes to w.
func NewWriterLogger(component string, w io.Writer) *Logger {
	return &Logger{
		sessionID: getSessionID(),
		component: component,
		logger:    log.New(w, "", 0),
	}
}

// NewFileLogger creates a logger that appends to a session-specific
// file under dir. When dir is empty it defaults to ~/.memento/logs.
//
// If the directory or file cannot be created, it returns a fallback
// logger writing to stderr along with the error so callers can still
// log while surfacing the failure.
func NewFileLogger(component, dir string) (*Logger, error) {
	if dir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return NewWriterLogger(component, os.Stderr), fmt.Errorf("logging: resolve home directory: %w", err)
		}
		dir = filepath.Join(homeDir, ".memento", "logs")
	}

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return NewWriterLogger(component, os.Stderr), fmt.Errorf("logging: create log directory: %w", err)
	}

	logPath := filepath.Join(dir, fmt.Sprintf("%s-memento.log", getSessionID()))

	// Append mode: multiple components share the session file.
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return NewWriterLogger(component, os.Stderr), fmt.Errorf("logging: open log file: %w", err)
	}

	return &Logger{
		sessionID: getSessionID(),
		component: component,
		logger:    log.New(file, "", 0),
		closer:    file,
	}, nil
}

func (l *Logger) logf(level, format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	l.logger.Printf("[%s] [%s] [%s] %s", timestamp, l.component, level, fmt.Sprintf(format, v...))
}

// Debugf logs a debug-level message
func (l *Logger) Debugf(format string, v ...interface{}) {
	l.logf("DEBUG", format, v...)
}

// Infof logs an info-level message
func (l *Logger) Infof(format string, v ...interface{}) {
	l.logf("INFO", format, v...)
}

// Warnf logs a warning-level message
func (l *Logger) Warnf(format string, v ...interface{}) {
	l.logf("WARN", format, v...)
}

// Errorf logs an error-level message
func (l *Logger) Errorf(format string, v ...interface{}) {
	l.logf("ERROR", format, v...)
}

// SessionID returns the session ID shared by all loggers in this execution.
func (l *Logger) SessionID() string {
	return l.sessionID
}

// Close closes the underlying log file, if any. Safe on writer-backed loggers.
func (l *Logger) Close() error {
	if l.closer != nil {
		return l.closer.Close()
	}
	return nil
}
