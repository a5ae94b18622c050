package logger

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging
type Logger struct {
	*log.Logger
}

// New creates a new logger with the given output
func New(w io.Writer) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	return &Logger{Logger: l}
}

// NewWithLevel creates a logger with a specific level
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})
	return &Logger{Logger: l}
}

// NewFileLogger creates a logger that writes to a file
func NewFileLogger(path string) (*Logger, func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}

	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})

	cleanup := func() {
		f.Close()
	}

	return &Logger{Logger: l}, cleanup, nil
}

// NewMultiLogger creates a logger that writes to multiple outputs
func NewMultiLogger(writers ...io.Writer) *Logger {
	w := io.MultiWriter(writers...)
	return New(w)
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// CatalogLoaded logs a loaded post catalog
func (l *Logger) CatalogLoaded(posts int, source string) {
	l.Info("catalog loaded",
		"posts", posts,
		"source", source)
}

// PostOpened logs a post being displayed
func (l *Logger) PostOpened(id, category string, markup bool) {
	l.Info("post opened",
		"id", id,
		"category", category,
		"markup", markup)
}

// ViewChanged logs a view transition
func (l *Logger) ViewChanged(from, to, filter string) {
	l.Debug("view changed",
		"from", from,
		"to", to,
		"filter", filter)
}

// ThemeChanged logs a theme switch
func (l *Logger) ThemeChanged(theme string) {
	l.Info("theme changed", "theme", theme)
}

// CodeCopied logs a code snippet copied to the clipboard
func (l *Logger) CodeCopied(index, bytes int) {
	l.Info("code copied",
		"block", index,
		"bytes", bytes)
}

// CopyFailed logs a failed clipboard write
func (l *Logger) CopyFailed(index int, err error) {
	l.Warn("copy failed",
		"block", index,
		"error", err)
}

// PrefsError logs a preference store error
func (l *Logger) PrefsError(operation string, err error) {
	l.Error("prefs error",
		"operation", operation,
		"error", err)
}

// ConfigLoaded logs successful config loading
func (l *Logger) ConfigLoaded(catalogDir string, markupCategories []string) {
	if catalogDir == "" {
		catalogDir = "embedded"
	}
	l.Debug("config loaded",
		"catalog_dir", catalogDir,
		"markup_categories", markupCategories)
}
