package app

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

type stubRoutes struct{}

func (stubRoutes) Routes(r chi.Router) {
	r.Get("/parts", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("[]"))
	})
	r.Get("/boom", func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})
}

const origin = "http://localhost:5173"

func TestRouterCORS(t *testing.T) {
	t.Parallel()

	r := NewRouter(stubRoutes{}, origin)

	tests := []struct {
		name       string
		origin     string
		wantOrigin string
	}{
		{name: "allowed origin", origin: origin, wantOrigin: origin},
		{name: "foreign origin", origin: "http://evil.example", wantOrigin: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodOptions, "/parts", nil)
			req.Header.Set("Origin", tt.origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodPut)
			req.Header.Set("Access-Control-Request-Headers", "Content-Type, X-Custom")

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
			if tt.wantOrigin != "" {
				assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
				assert.Equal(t, http.MethodPut, rec.Header().Get("Access-Control-Allow-Methods"))
			}
		})
	}
}

func TestRouterFallbacks(t *testing.T) {
	t.Parallel()

	r := NewRouter(stubRoutes{}, origin)

	tests := []struct {
		name     string
		method   string
		target   string
		wantCode int
		wantBody string
	}{
		{name: "health", method: http.MethodGet, target: "/health", wantCode: http.StatusOK, wantBody: "SERVING"},
		{name: "unknown path", method: http.MethodGet, target: "/nope", wantCode: http.StatusNotFound, wantBody: `{"detail":"Not Found"}`},
		{name: "wrong method", method: http.MethodPost, target: "/health", wantCode: http.StatusMethodNotAllowed, wantBody: `{"detail":"Method Not Allowed"}`},
		{name: "panic is recovered", method: http.MethodGet, target: "/boom", wantCode: http.StatusInternalServerError, wantBody: `{"detail":"internal error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode == http.StatusOK {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			} else {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}
