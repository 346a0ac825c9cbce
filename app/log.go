package app

import (
	"bytes"
	"log/slog"

	"gldemo/hal"
)

// lineWriter adapts a hal.Logger to io.Writer, one log line per call.
type lineWriter struct {
	l hal.Logger
}

func (w lineWriter) Write(p []byte) (int, error) {
	for _, line := range bytes.Split(bytes.TrimRight(p, "\n"), []byte{'\n'}) {
		w.l.WriteLineBytes(line)
	}
	return len(p), nil
}

func newLogger(l hal.Logger, verbose bool) *slog.Logger {
	if l == nil {
		return slog.Default()
	}
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(lineWriter{l: l}, &slog.HandlerOptions{Level: level}))
}
