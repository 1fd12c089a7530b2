package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/render"
	"go.uber.org/zap"

	partsv1 "github.com/Bryan-Quispe/Computer-Parts/pkg/api/parts/v1"
)

type ErrorLogger interface {
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

// Recovery turns a handler panic into a 500 with the standard error body.
func Recovery(logger ErrorLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logger.Error(r.Context(), "recovered from panic in http handler",
					zap.Any("error", rec),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
				)

				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, partsv1.ErrorResponse{Detail: "internal error"})
			}()

			next.ServeHTTP(w, r)
		})
	}
}
