// SPDX-License-Identifier: MPL-2.0

// Package logsink provides the durable run log: a single sink that
// duplicates everything written to it into a persistent log file and the
// console. The sink is the one piece of infrastructure whose failure is
// fatal to a run; there is no fallback destination.
package logsink

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Sink is the log destination for one provisioning run. It exposes a raw
// writer for passing through external command output and a structured
// logger for the sequencer's own INFO/ERROR entries. Both end up in the
// same file and on the same console, in write order.
//
// Execution is single-threaded, so writes are naturally serialized; the
// sink does no locking of its own.
type Sink struct {
	file    *os.File
	console io.Writer
	tee     io.Writer
	logger  *log.Logger
	path    string
}

// New opens (or creates, append-mode) the log file at path and returns a
// sink teeing to console. An error here aborts the run: logging has no
// fallback.
func New(path string, console io.Writer) (*Sink, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
		}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	tee := io.MultiWriter(file, console)

	logger := log.NewWithOptions(tee, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})

	// Full level words so the file is grep-able for "ERROR" markers. No
	// colors: the same byte stream goes to the file and the console.
	styles := log.DefaultStyles()
	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().SetString("INFO")
	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().SetString("WARN")
	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().SetString("ERROR")
	logger.SetStyles(styles)

	return &Sink{
		file:    file,
		console: console,
		tee:     tee,
		logger:  logger,
		path:    path,
	}, nil
}

// Writer returns the raw passthrough writer for external command output.
func (s *Sink) Writer() io.Writer {
	return s.tee
}

// Logger returns the structured logger for the sequencer's own entries.
func (s *Sink) Logger() *log.Logger {
	return s.logger
}

// Path returns the log file path.
func (s *Sink) Path() string {
	return s.path
}

// Close flushes and closes the underlying log file.
func (s *Sink) Close() error {
	return s.file.Close()
}
