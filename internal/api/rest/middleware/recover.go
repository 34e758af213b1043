package middleware

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/dtroode/contactbook/internal/logger"
)

const panicBody = `{"message":"internal server error"}`

// Recover turns a panicking operation into a 500 response.
func Recover(fallback *logger.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			l := logger.FromContext(ctx.Context(), fallback)
			l.Error("panic occurred", "recovered", v, "path", ctx.Operation().Path)

			ctx.SetHeader("Content-Type", "application/json")
			ctx.SetStatus(http.StatusInternalServerError)
			_, _ = ctx.BodyWriter().Write([]byte(panicBody))
		}()
		next(ctx)
	}
}
