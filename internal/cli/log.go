// Package cli implements the heatmapctl command-line interface.
//
// heatmapctl generates, inspects, converts and renders heatmap files. Files are
// either saved heatmaps (a binary header followed by a possibly compressed
// run-length JSON document) or raw JSON documents, selected with --raw.
//
// # Commands
//
//   - gen: Generate a random heatmap of a given kind and save it
//   - inspect: Print the header and summary statistics of a heatmap file
//   - convert: Rewrite a heatmap file with different compression or endianness, or as raw JSON
//   - render: Draw a heatmap, or one layer of a 3D heatmap, as a shaded terminal grid
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
//
// # Configuration
//
// Defaults may be supplied in a TOML file passed with --config. Flags given on
// the command line always win over file values.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger writing to w that filters messages below level.
// Timestamps are formatted as "HH:MM:SS.ms".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs the elapsed time of a single operation.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time, e.g. "Saved 42 cells (1.234s)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const (
	loggerKey ctxKey = iota
	configKey
)

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, falling back to log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}

	return log.Default()
}
