package logging

import (
	"context"

	"github.com/charmbracelet/log"
)

// loggerKey carries the command's logger through a context.Context. Commands
// attach it once during setup so the parser and scaffolder log with the
// level and writer chosen on the command line.
type loggerKey struct{}

// FromContext returns the logger attached by WithLogger. Without one it
// falls back to Default, which the CLI points at the same logger.
func FromContext(ctx context.Context) *log.Logger {
	if ctx != nil {
		if logger, _ := ctx.Value(loggerKey{}).(*log.Logger); logger != nil {
			return logger
		}
	}
	return Default()
}

// WithLogger attaches logger to ctx. A nil ctx starts from Background.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey{}, logger)
}
