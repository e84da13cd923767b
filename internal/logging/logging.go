// Package logging holds the process-wide charmbracelet/log logger used by the
// mdpo packages and commands.
package logging

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

const (
	prefix       = "mdpo"
	debugLogFile = "mdpo.log"
)

type AppLogger struct {
	logger *log.Logger
	debug  bool
}

var (
	defaultLogger *AppLogger
	mu            sync.Mutex
)

// GetDefault returns the default logger, building it from the environment on
// first use.
func GetDefault() *AppLogger {
	mu.Lock()
	defer mu.Unlock()
	if defaultLogger == nil {
		defaultLogger = NewAppLogger()
	}
	return defaultLogger
}

// SetDefault replaces the logger used by the package-level functions.
// Passing nil resets it so the next call builds a fresh one from the environment.
func SetDefault(l *AppLogger) {
	mu.Lock()
	defer mu.Unlock()
	defaultLogger = l
}

func Info(msg string, keyvals ...interface{}) {
	GetDefault().Info(msg, keyvals...)
}

func Warn(msg string, keyvals ...interface{}) {
	GetDefault().Warn(msg, keyvals...)
}

func Error(msg string, keyvals ...interface{}) {
	GetDefault().Error(msg, keyvals...)
}

func Debug(msg string, keyvals ...interface{}) {
	GetDefault().Debug(msg, keyvals...)
}

func LogPerformance(operation string, start time.Time) {
	GetDefault().LogPerformance(operation, start)
}

// NewAppLogger picks the logger from the environment. With DEBUG set, every
// level goes to mdpo.log in the working directory, truncated on each run.
// Otherwise only warnings and errors reach stderr.
func NewAppLogger() *AppLogger {
	if os.Getenv("DEBUG") == "" {
		return NewWriterLogger(os.Stderr, log.WarnLevel)
	}

	f, err := openDebugLog()
	if err != nil {
		l := NewWriterLogger(os.Stderr, log.DebugLevel)
		l.Warn("Cannot open debug log, logging to stderr", "err", err)
		return l
	}

	l := newAppLogger(f, log.DebugLevel, log.Options{
		ReportCaller: true,
		TimeFormat:   time.Kitchen,
	})
	l.Info("Debug logging enabled", "log_file", f.Name())
	return l
}

func openDebugLog() (*os.File, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(cwd, debugLogFile), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
}

// NewWriterLogger creates a logger writing to w at the given level.
func NewWriterLogger(w io.Writer, level log.Level) *AppLogger {
	return newAppLogger(w, level, log.Options{TimeFormat: time.RFC3339})
}

func newAppLogger(w io.Writer, level log.Level, opts log.Options) *AppLogger {
	opts.Level = level
	opts.Prefix = prefix
	opts.ReportTimestamp = true

	return &AppLogger{
		logger: log.NewWithOptions(w, opts),
		debug:  level <= log.DebugLevel,
	}
}

func (al *AppLogger) Info(msg string, keyvals ...interface{}) {
	al.logger.Info(msg, keyvals...)
}

func (al *AppLogger) Warn(msg string, keyvals ...interface{}) {
	al.logger.Warn(msg, keyvals...)
}

func (al *AppLogger) Error(msg string, keyvals ...interface{}) {
	al.logger.Error(msg, keyvals...)
}

func (al *AppLogger) Debug(msg string, keyvals ...interface{}) {
	if al.debug {
		al.logger.Debug(msg, keyvals...)
	}
}

// LogPerformance records how long operation has been running since start.
func (al *AppLogger) LogPerformance(operation string, start time.Time) {
	if al.debug {
		al.logger.Debug("Performance", "operation", operation, "duration", time.Since(start))
	}
}

// NewTestLogger returns a debug-level logger without timestamps that writes
// into the returned buffer.
func NewTestLogger() (*AppLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	return &AppLogger{
		logger: log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel, Prefix: "test"}),
		debug:  true,
	}, &buf
}
