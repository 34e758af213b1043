package middleware

import (
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/dtroode/contactbook/internal/logger"
)

// Logging puts a request-scoped logger in the context and logs the request
// once it has been served.
func Logging(parent *logger.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		l := parent
		if id, ok := RequestIDFromContext(ctx.Context()); ok {
			l = l.With("request_id", id)
		}
		op := ctx.Operation()

		start := time.Now()
		next(huma.WithContext(ctx, logger.WithContext(ctx.Context(), l.With("operation", op.OperationID))))

		l.Info("HTTP request served",
			"method", op.Method,
			"path", op.Path,
			"proto", ctx.Version().Proto,
			"from", ctx.RemoteAddr(),
			"status", ctx.Status(),
			"duration_ms", time.Since(start).Milliseconds())
	}
}
