package middleware

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	grpcctx "github.com/dtroode/contactbook/internal/api/grpc/context"
	"github.com/dtroode/contactbook/internal/logger"
	"github.com/dtroode/contactbook/internal/model"
)

// RequestID is a unary interceptor that gives every call a request id and a
// logger scoped to it.
type RequestID struct {
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewRequestID creates a new RequestID middleware.
func NewRequestID(contextManager model.ContextManager, logger *logger.Logger) *RequestID {
	return &RequestID{contextManager: contextManager, logger: logger}
}

// HandleGRPC reads the x-request-id metadata, generating one when absent,
// echoes it in the response header and stores it in the context.
func (m *RequestID) HandleGRPC(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	id, ok := m.contextManager.GetRequestIDFromContext(ctx)
	if !ok {
		id = uuid.NewString()
		ctx = m.contextManager.SetRequestIDToContext(ctx, id)
	}

	if err := grpc.SetHeader(ctx, metadata.Pairs(grpcctx.RequestIDKey, id)); err != nil {
		m.logger.Debug("failed to set request id header", "method", info.FullMethod, "error", err.Error())
	}

	ctx = logger.WithContext(ctx, m.logger.With("request_id", id))
	return handler(ctx, req)
}
