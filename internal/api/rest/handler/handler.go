// Package handler registers the REST operations on a huma API.
package handler

import (
	"context"
	"net/http"

	"github.com/dtroode/contactbook/internal/logger"
)

type handler[I, O any] = func(context.Context, *I) (*O, error)

// withErrors translates service errors into response errors and logs them
// with the request-scoped logger.
func withErrors[I, O any](fallback *logger.Logger, h handler[I, O]) handler[I, O] {
	return func(ctx context.Context, i *I) (*O, error) {
		o, err := h(ctx, i)
		if err == nil {
			return o, nil
		}

		respErr := handleError(err)
		l := logger.FromContext(ctx, fallback)
		if respErr.Status >= http.StatusInternalServerError {
			l.Error("request failed", "status", respErr.Status, "error", err.Error())
		} else {
			l.Warn("request rejected", "status", respErr.Status, "error", err.Error())
		}
		return nil, respErr
	}
}
