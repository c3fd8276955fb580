// Package logging wires up a context-scoped zap logger for cmd/intervalcover
// and bench. Output always goes to stdout/stderr, with no rotating-file
// sink; the core covering package stays entirely logging-free.
package logging

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	LogFormatJSON    = "json"
	LogFormatConsole = "console"
)

// Option configures the zap.Config Init builds its logger from.
type Option func(*zap.Config)

// WithLogLevel sets the minimum level; an unrecognized level falls back to
// debug, matching zapcore.Level.Set's own behavior.
func WithLogLevel(level string) Option {
	return func(c *zap.Config) {
		ll := zapcore.DebugLevel
		_ = ll.Set(level)
		c.Level.SetLevel(ll)
	}
}

// WithLogFormat selects "json" or "console" encoding; anything else is
// treated as "json".
func WithLogFormat(format string) Option {
	return func(c *zap.Config) {
		switch format {
		case LogFormatConsole:
			c.Encoding = LogFormatConsole
		default:
			c.Encoding = LogFormatJSON
		}
	}
}

// Init builds a zap logger, replaces the global logger with it, and
// attaches it to ctx via ctxzap so downstream code retrieves it with
// ctxzap.Extract(ctx) instead of threading a *zap.Logger through every
// call.
func Init(ctx context.Context, opts ...Option) (context.Context, error) {
	zc := zap.NewProductionConfig()
	zc.Sampling = nil
	zc.DisableStacktrace = true

	for _, opt := range opts {
		opt(&zc)
	}

	l, err := zc.Build()
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(l)

	l.Debug("logger initialized", zap.String("log_level", zc.Level.String()))
	return ctxzap.ToContext(ctx, l), nil
}
