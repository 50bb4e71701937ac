// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package logging builds the run logger on log/slog, writing to the
// console and to a log file under the configured directory.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// FileName is the log file created under the log directory.
const FileName = "application.log"

// Options control where and how log output is written.
type Options struct {
	// Level is one of "debug", "info", "warn", "error" (default: "info").
	Level string

	// Dir is the log directory. Empty disables the file sink.
	Dir string
}

// New builds a logger that writes text lines to console and, when a log
// directory is configured, to <dir>/application.log as well. The returned
// closer owns the log file and may be nil.
func New(console io.Writer, opts Options) (*slog.Logger, io.Closer, error) {
	w := console
	var closer io.Closer

	if opts.Dir != "" {
		if err := os.MkdirAll(opts.Dir, 0o750); err != nil {
			return nil, nil, err
		}
		path := filepath.Join(opts.Dir, FileName)
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600) //nolint:gosec // path is derived from configuration
		if err != nil {
			return nil, nil, err
		}
		w = io.MultiWriter(console, f)
		closer = f
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: parseLevel(opts.Level),
	})
	return slog.New(handler), closer, nil
}

// parseLevel converts a string log level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
