// Package logger provides structured logging for PipSeed.
//
// Logs never go to stdout: stdout belongs to the shell and to generated data.
// They go to stderr, or to a size-rotated file when one is configured.
package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures a Logger.
type Options struct {
	Level  string
	Output io.Writer // ignored when File is set

	File       string
	MaxSizeMB  int
	MaxBackups int
}

// Logger wraps logrus logger
type Logger struct {
	log *logrus.Logger
}

// Entry wraps logrus entry for method chaining
type Entry struct {
	entry *logrus.Entry
	level logrus.Level
}

// New creates a logger writing to output (stderr when nil)
func New(level string, output io.Writer) *Logger {
	return NewWithOptions(Options{Level: level, Output: output})
}

// NewWithOptions creates a logger from options. When a log file is requested but
// its directory cannot be created, the logger falls back to stderr.
func NewWithOptions(opts Options) *Logger {
	output := opts.Output
	toFile := false
	if opts.File != "" {
		if w, err := RotatingFile(opts.File, opts.MaxSizeMB, opts.MaxBackups); err == nil {
			output = w
			toFile = true
		}
	}
	if output == nil {
		output = os.Stderr
	}

	log := logrus.New()
	log.SetOutput(output)
	log.SetLevel(parseLevel(opts.Level))
	log.SetFormatter(&logrus.TextFormatter{
		ForceColors:      !toFile,
		DisableColors:    toFile,
		DisableTimestamp: !toFile,
		FullTimestamp:    toFile,
		PadLevelText:     true,
	})

	return &Logger{log: log}
}

// RotatingFile returns a writer appending to path, rotated once it reaches maxSizeMB.
func RotatingFile(path string, maxSizeMB, maxBackups int) (io.Writer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, err
	}
	if maxSizeMB <= 0 {
		maxSizeMB = 10
	}
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
	}, nil
}

// Discard returns a logger that drops everything. Handy in tests.
func Discard() *Logger {
	return New("panic", io.Discard)
}

func parseLevel(level string) logrus.Level {
	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// Enabled reports whether messages at the given level would be written
func (l *Logger) Enabled(level string) bool {
	return l.log.IsLevelEnabled(parseLevel(level))
}

// Debug logs a debug message
func (l *Logger) Debug() *Entry {
	return &Entry{entry: logrus.NewEntry(l.log), level: logrus.DebugLevel}
}

// Info logs an info message
func (l *Logger) Info() *Entry {
	return &Entry{entry: logrus.NewEntry(l.log), level: logrus.InfoLevel}
}

// Warn logs a warning message
func (l *Logger) Warn() *Entry {
	return &Entry{entry: logrus.NewEntry(l.log), level: logrus.WarnLevel}
}

// Error logs an error message
func (l *Logger) Error() *Entry {
	return &Entry{entry: logrus.NewEntry(l.log), level: logrus.ErrorLevel}
}

// Str adds a string field
func (e *Entry) Str(key, value string) *Entry {
	e.entry = e.entry.WithField(key, value)
	return e
}

// Strs adds a string slice field
func (e *Entry) Strs(key string, values []string) *Entry {
	e.entry = e.entry.WithField(key, strings.Join(values, ","))
	return e
}

// Int adds an int field
func (e *Entry) Int(key string, value int) *Entry {
	e.entry = e.entry.WithField(key, value)
	return e
}

// Bool adds a bool field
func (e *Entry) Bool(key string, value bool) *Entry {
	e.entry = e.entry.WithField(key, value)
	return e
}

// Err adds an error field
func (e *Entry) Err(err error) *Entry {
	if err != nil {
		e.entry = e.entry.WithError(err)
	}
	return e
}

// Dur adds a duration field, in milliseconds
func (e *Entry) Dur(key string, duration time.Duration) *Entry {
	ms := float64(duration.Microseconds()) / 1000.0
	e.entry = e.entry.WithField(key, ms)
	return e
}

// Msg logs the message with accumulated fields
func (e *Entry) Msg(msg string) {
	e.entry.Log(e.level, msg)
}
