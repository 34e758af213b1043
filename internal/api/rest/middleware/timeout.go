package middleware

import (
	"context"
	"time"

	"github.com/danielgtaylor/huma/v2"
)

// Timeout bounds the context of every operation. A zero d disables it.
func Timeout(d time.Duration) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if d <= 0 {
			next(ctx)
			return
		}
		c, cancel := context.WithTimeout(ctx.Context(), d)
		defer cancel()
		next(huma.WithContext(ctx, c))
	}
}
