package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"

	"github.com/Bryan-Quispe/Computer-Parts/internal/transport/http/health"
	tmw "github.com/Bryan-Quispe/Computer-Parts/internal/transport/http/middleware"
	"github.com/Bryan-Quispe/Computer-Parts/platform/logger"
	partsv1 "github.com/Bryan-Quispe/Computer-Parts/pkg/api/parts/v1"
)

var corsMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

type RoutesRegistrar interface {
	Routes(r chi.Router)
}

// NewRouter builds the HTTP handler tree. Only allowedOrigin may call the
// API from a browser.
func NewRouter(parts RoutesRegistrar, allowedOrigin string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		tmw.Logging(logger.L()),
		tmw.RequestFields,
		tmw.Recovery(logger.L()),
		cors.Handler(cors.Options{
			AllowedOrigins:   []string{allowedOrigin},
			AllowedMethods:   corsMethods,
			AllowedHeaders:   []string{"*"},
			AllowCredentials: true,
			MaxAge:           300,
		}),
	)

	r.Get("/health", health.HealthCheck)
	parts.Routes(r)

	r.NotFound(detailHandler(http.StatusNotFound, "Not Found"))
	r.MethodNotAllowed(detailHandler(http.StatusMethodNotAllowed, "Method Not Allowed"))

	return r
}

func detailHandler(status int, detail string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.Status(r, status)
		render.JSON(w, r, partsv1.ErrorResponse{Detail: detail})
	}
}
