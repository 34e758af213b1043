package middleware

import (
	"context"
	"log/slog"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"

	"github.com/dtroode/contactbook/internal/logger"
)

// InterceptorLogger adapts the request-scoped logger, or fallback, to the
// go-grpc-middleware logging interceptors.
func InterceptorLogger(fallback *logger.Logger) logging.Logger {
	return logging.LoggerFunc(func(ctx context.Context, lvl logging.Level, msg string, fields ...any) {
		logger.FromContext(ctx, fallback).Log(ctx, slog.Level(lvl), msg, fields...)
	})
}

// LoggingOptions logs one record per finished call.
func LoggingOptions() []logging.Option {
	return []logging.Option{
		logging.WithLogOnEvents(logging.FinishCall),
	}
}

// SkipReflection matches every call except server reflection.
func SkipReflection(_ context.Context, c interceptors.CallMeta) bool {
	return c.Service != "grpc.reflection.v1.ServerReflection" &&
		c.Service != "grpc.reflection.v1alpha.ServerReflection"
}
