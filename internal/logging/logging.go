// Package logging wires logrus for subline.
//
// The terminal belongs to the overlay while it runs, so log output always
// goes to a file. Every entry carries the component that produced it and the
// session id generated at startup.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Logger and Entry alias logrus so callers don't import it directly.
type (
	Logger = logrus.Logger
	Entry  = logrus.Entry
)

// Options controls Setup.
type Options struct {
	Path      string
	Level     string
	SessionID string
}

// Setup opens the log file (creating parent directories) and returns a logger
// writing to it. The returned closer releases the file.
func Setup(opts Options) (*Entry, io.Closer, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}
	f, err := openLogFile(opts.Path)
	if err != nil {
		return nil, nil, err
	}

	l := New(f, level)
	session := opts.SessionID
	if session == "" {
		session = NewSessionID()
	}
	return l.WithField("session", session), f, nil
}

// New builds a logger with the plain formatter on w.
func New(w io.Writer, level logrus.Level) *Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(level)
	l.SetReportCaller(true)
	l.SetFormatter(PlainFormatter{})
	return l
}

// Discard returns an entry that drops everything. Used by tests and when no
// logger was supplied.
func Discard() *Entry {
	return logrus.NewEntry(New(io.Discard, logrus.PanicLevel))
}

// Named tags an entry with a component name.
func Named(base *Entry, component string) *Entry {
	if base == nil {
		base = Discard()
	}
	if component == "" {
		return base
	}
	return base.WithField("component", component)
}

// NewSessionID returns a random identifier for one process lifetime.
func NewSessionID() string {
	return uuid.NewString()
}

// ParseLevel maps config names to logrus levels. Empty means info.
func ParseLevel(name string) (logrus.Level, error) {
	trimmed := strings.ToLower(strings.TrimSpace(name))
	if trimmed == "" {
		return logrus.InfoLevel, nil
	}
	level, err := logrus.ParseLevel(trimmed)
	if err != nil {
		return logrus.InfoLevel, fmt.Errorf("log level: %w", err)
	}
	return level, nil
}

// PlainFormatter writes one line per entry:
// caller [timestamp] [LEVEL] [component] message key=value...
type PlainFormatter struct{}

// Format implements logrus.Formatter.
func (PlainFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	if entry == nil {
		return []byte{}, nil
	}

	parts := make([]string, 0, 6)
	if caller := formatCaller(entry); caller != "" {
		parts = append(parts, caller)
	}
	parts = append(parts, "["+entry.Time.UTC().Format(time.RFC3339Nano)+"]")
	parts = append(parts, "["+strings.ToUpper(entry.Level.String())+"]")
	if component, ok := entry.Data["component"].(string); ok && component != "" {
		parts = append(parts, "["+component+"]")
	}
	parts = append(parts, entry.Message)
	if fields := formatFields(entry.Data); fields != "" {
		parts = append(parts, fields)
	}
	return []byte(strings.Join(parts, " ") + "\n"), nil
}

func formatCaller(entry *logrus.Entry) string {
	if entry.HasCaller() && entry.Caller != nil {
		return fmt.Sprintf("%s:%d", shortenFilePath(entry.Caller.File), entry.Caller.Line)
	}
	if caller, ok := entry.Data["caller"].(string); ok {
		return caller
	}
	return ""
}

func formatFields(fields logrus.Fields) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		if k == "component" || k == "caller" {
			continue
		}
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return ""
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, fields[k]))
	}
	return strings.Join(parts, " ")
}

func shortenFilePath(file string) string {
	file = filepath.ToSlash(file)
	for _, marker := range []string{"/internal/", "/cmd/"} {
		if idx := strings.Index(file, marker); idx != -1 {
			return file[idx+1:]
		}
	}
	return filepath.Base(file)
}

func openLogFile(path string) (*os.File, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("log path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}
