package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recordRouter маршруты записей без middleware
func recordRouter(h *RecordHandler) http.Handler {
	r := chi.NewRouter()
	r.Route("/api/rest/v1/{identifier}", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/new", h.Create)
		r.Get("/{key}", h.Get)
		r.Put("/{key}", h.Update)
		r.Delete("/{key}", h.Delete)
	})
	return r
}

func serve(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(w.Body).Decode(&v))
	return v
}
