package logging

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// KeyRequestID is the attribute every request-scoped log line carries.
const KeyRequestID = "request_id"

type loggerKey struct{}

// fallback is the process logger, used outside a request.
var fallback atomic.Pointer[slog.Logger]

func init() {
	fallback.Store(slog.Default())
}

// FromContext returns the request logger in ctx, or the process logger.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
			return logger
		}
	}
	return fallback.Load()
}

func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// WithRequestID tags every later log line of the request with its ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return WithContext(ctx, FromContext(ctx).With(slog.String(KeyRequestID, requestID)))
}

// SetDefault replaces the process logger, including slog's default.
func SetDefault(logger *slog.Logger) {
	fallback.Store(logger)
	slog.SetDefault(logger)
}
