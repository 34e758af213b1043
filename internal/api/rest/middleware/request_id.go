// Package middleware holds the huma middlewares applied to every REST operation.
package middleware

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
)

// HeaderRequestID is read from requests and echoed on responses.
const HeaderRequestID = "X-Request-Id"

type requestIDKey struct{}

// RequestID makes sure every request has an id, generating one when the
// client did not send it.
func RequestID() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		id := ctx.Header(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		ctx.SetHeader(HeaderRequestID, id)
		next(huma.WithValue(ctx, requestIDKey{}, id))
	}
}

// RequestIDFromContext returns the id set by RequestID.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok
}
