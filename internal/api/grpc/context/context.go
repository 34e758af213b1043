package context

import (
	"context"

	"google.golang.org/grpc/metadata"
)

// RequestIDKey is the metadata key carrying the request id, both in incoming
// metadata and in response headers.
const RequestIDKey = "x-request-id"

// Manager represents a gRPC context manager for request id operations.
// It keeps the request id in incoming metadata so that handlers and
// interceptors read it the same way whether the client sent it or not.
type Manager struct{}

// NewManager creates a new gRPC context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetRequestIDToContext sets the request id in the incoming metadata of ctx.
func (m *Manager) SetRequestIDToContext(ctx context.Context, requestID string) context.Context {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		md = metadata.New(map[string]string{RequestIDKey: requestID})
	} else {
		md = md.Copy()
		md.Set(RequestIDKey, requestID)
	}

	return metadata.NewIncomingContext(ctx, md)
}

// GetRequestIDFromContext retrieves the request id from incoming metadata.
func (m *Manager) GetRequestIDFromContext(ctx context.Context) (string, bool) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", false
	}
	return first(md)
}

// GetRequestIDFromResponseMetadata retrieves the request id from response
// header metadata, as received by a client.
func (m *Manager) GetRequestIDFromResponseMetadata(md metadata.MD) (string, bool) {
	return first(md)
}

func first(md metadata.MD) (string, bool) {
	ids := md.Get(RequestIDKey)
	if len(ids) == 0 || ids[0] == "" {
		return "", false
	}
	return ids[0], true
}
