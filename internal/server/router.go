package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/iudanet/recordsync/internal/server/handlers"
	"github.com/iudanet/recordsync/internal/server/middleware"
	"github.com/iudanet/recordsync/pkg/api"
)

// RecordsPrefix префикс REST API записей
const RecordsPrefix = "/api/rest/v1"

// Handlers набор handlers для NewRouter
type Handlers struct {
	Health  *handlers.HealthHandler
	OAuth   *handlers.OAuthHandler
	Records *handlers.RecordHandler
}

// NewRouter собирает chi router эмулятора.
//
// Маршруты:
//
//	GET    /health
//	GET    /oauth/client
//	POST   /auth/token
//	GET    /api/rest/v1/{identifier}/        (OAuth)
//	POST   /api/rest/v1/{identifier}/new     (OAuth)
//	GET    /api/rest/v1/{identifier}/{key}   (OAuth)
//	PUT    /api/rest/v1/{identifier}/{key}   (OAuth)
//	DELETE /api/rest/v1/{identifier}/{key}   (OAuth)
//
// limiter может быть nil.
func NewRouter(h Handlers, tokens handlers.TokenConfig, limiter *middleware.RateLimiter, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.LoggingWithSkip(logger, []string{"/health"}))
	r.Use(middleware.RecoveryMiddleware(logger))
	if limiter != nil {
		r.Use(limiter.Middleware)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, "route not found", http.StatusNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, "method not allowed", http.StatusMethodNotAllowed)
	})

	r.Get("/health", h.Health.Health)
	r.Get("/oauth/client", h.OAuth.Client)
	r.Post("/auth/token", h.OAuth.Token)

	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(logger, tokens))

		r.Route(RecordsPrefix+"/{identifier}", func(r chi.Router) {
			r.Get("/", h.Records.List)
			r.Post("/new", h.Records.Create)
			r.Get("/{key}", h.Records.Get)
			r.Put("/{key}", h.Records.Update)
			r.Delete("/{key}", h.Records.Delete)
		})
	})

	return r
}

func writeJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.ErrorResponse{Error: http.StatusText(statusCode), Message: message})
}
