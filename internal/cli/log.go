// Package cli implements the complabel command-line interface.
//
// The root command generates a random binary image, labels two independent
// copies of it depth-first and breadth-first, and prints the image before and
// after each run. Settings come from defaults, an optional TOML file, flags,
// and an optional interactive prompt, in that order of precedence.
//
// # Logging
//
// Progress and diagnostics go to the logger (charmbracelet/log) on stderr;
// grids and summaries go to the command's output stream. --verbose (-v)
// enables debug logging, which includes one line per component seed.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns the logger shared by every command: text lines with a
// wall-clock prefix at hundredths of a second.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// stopwatch times one labeling pass.
type stopwatch struct {
	logger *log.Logger
	start  time.Time
}

func startStopwatch(l *log.Logger) *stopwatch {
	return &stopwatch{logger: l, start: time.Now()}
}

// stop logs msg at info level with keyvals, the elapsed time and, for a
// pass that labeled cells, its throughput in cells per millisecond.
func (s *stopwatch) stop(msg string, cells int, keyvals ...interface{}) time.Duration {
	elapsed := time.Since(s.start)
	keyvals = append(keyvals, "cells", cells, "elapsed", elapsed.Round(time.Microsecond))
	if ms := float64(elapsed) / float64(time.Millisecond); cells > 0 && ms > 0 {
		keyvals = append(keyvals, "cells_per_ms", int(float64(cells)/ms))
	}
	s.logger.Info(msg, keyvals...)

	return elapsed
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger attaches the run logger to ctx for the labeling pipeline.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext is the inverse of withLogger. A bare context yields
// log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
