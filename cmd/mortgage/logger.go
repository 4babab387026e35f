package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/rpgo/mortgage-calculator/internal/calculation"
)

// slogLogger adapts slog to the engine's printf-style Logger.
type slogLogger struct {
	*slog.Logger
}

var _ calculation.Logger = slogLogger{}

func newLogger(w io.Writer, verbose bool) slogLogger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slogLogger{slog.New(handler).With("component", "mortgage")}
}

func (l slogLogger) Debugf(format string, args ...any) {
	l.Debug(fmt.Sprintf(format, args...))
}

func (l slogLogger) Infof(format string, args ...any) {
	l.Info(fmt.Sprintf(format, args...))
}

func (l slogLogger) Warnf(format string, args ...any) {
	l.Warn(fmt.Sprintf(format, args...))
}

func (l slogLogger) Errorf(format string, args ...any) {
	l.Error(fmt.Sprintf(format, args...))
}
