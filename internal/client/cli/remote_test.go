package cli

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"slices"
	"sync"
	"sync/atomic"
	"testing"

	pkgapi "github.com/iudanet/recordsync/pkg/api"
)

// fakeRemote минимальный сервер записей для тестов команд
type fakeRemote struct {
	records    map[string]map[string]string
	order      []string
	tokenCalls atomic.Int32
	mu         sync.Mutex
	next       int
}

func newFakeRemote(t *testing.T) (*fakeRemote, *httptest.Server) {
	t.Helper()
	f := &fakeRemote{records: make(map[string]map[string]string)}
	f.put(map[string]string{"io_uuid": "u1", "first_name": "Ann", "last_name": "Lee", "io_lead_number": "1"})
	f.put(map[string]string{"io_uuid": "u2", "first_name": "Bob", "last_name": "Ray", "io_lead_number": "2"})

	mux := http.NewServeMux()
	mux.HandleFunc("GET /oauth/client", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(pkgapi.HeaderClientID, "client-1")
		w.Header().Set(pkgapi.HeaderAuthHost, "//"+r.Host)
	})
	mux.HandleFunc("POST /auth/token", func(w http.ResponseWriter, r *http.Request) {
		f.tokenCalls.Add(1)
		if r.FormValue("password") != "secret" || r.FormValue("client_id") != "client-1" {
			writeJSON(w, http.StatusUnauthorized, pkgapi.ErrorResponse{Error: "invalid credentials"})
			return
		}
		writeJSON(w, http.StatusOK, pkgapi.TokenResponse{AccessToken: "tok", ExpiresIn: 3600})
	})

	authorized := func(h http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get(pkgapi.HeaderAccessToken) != "tok" {
				writeJSON(w, http.StatusUnauthorized, pkgapi.ErrorResponse{Error: "unauthorized"})
				return
			}
			f.mu.Lock()
			defer f.mu.Unlock()
			h(w, r)
		}
	}
	mux.HandleFunc("GET /api/rest/v1/io_lead", authorized(func(w http.ResponseWriter, r *http.Request) {
		out := make([]map[string]any, 0, len(f.order))
		for _, id := range f.order {
			out = append(out, wrap(f.records[id]))
		}
		writeJSON(w, http.StatusOK, out)
	}))
	mux.HandleFunc("GET /api/rest/v1/io_lead/{key}", authorized(func(w http.ResponseWriter, r *http.Request) {
		rec, ok := f.records[r.PathValue("key")]
		if !ok {
			writeJSON(w, http.StatusNotFound, pkgapi.ErrorResponse{Error: "record not found"})
			return
		}
		writeJSON(w, http.StatusOK, wrap(rec))
	}))
	mux.HandleFunc("POST /api/rest/v1/io_lead/new", authorized(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, pkgapi.ErrorResponse{Error: err.Error()})
			return
		}
		delete(body, "io_uuid")
		writeJSON(w, http.StatusOK, wrap(f.put(body)))
	}))
	mux.HandleFunc("PUT /api/rest/v1/io_lead/{key}", authorized(func(w http.ResponseWriter, r *http.Request) {
		rec, ok := f.records[r.PathValue("key")]
		if !ok {
			writeJSON(w, http.StatusNotFound, pkgapi.ErrorResponse{Error: "record not found"})
			return
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, pkgapi.ErrorResponse{Error: err.Error()})
			return
		}
		for k, v := range body {
			if k != "io_uuid" && k != "io_lead_number" {
				rec[k] = v
			}
		}
		writeJSON(w, http.StatusOK, wrap(rec))
	}))
	mux.HandleFunc("DELETE /api/rest/v1/io_lead/{key}", authorized(func(w http.ResponseWriter, r *http.Request) {
		key := r.PathValue("key")
		if _, ok := f.records[key]; !ok {
			writeJSON(w, http.StatusNotFound, pkgapi.ErrorResponse{Error: "record not found"})
			return
		}
		f.drop(key)
		w.WriteHeader(http.StatusOK)
	}))

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return f, srv
}

func (f *fakeRemote) put(rec map[string]string) map[string]string {
	f.next++
	if rec["io_uuid"] == "" {
		rec["io_uuid"] = fmt.Sprintf("new-%d", f.next)
		rec["io_lead_number"] = fmt.Sprintf("%d", f.next)
	}
	f.records[rec["io_uuid"]] = rec
	f.order = append(f.order, rec["io_uuid"])
	return rec
}

func (f *fakeRemote) drop(key string) {
	delete(f.records, key)
	f.order = slices.DeleteFunc(f.order, func(id string) bool { return id == key })
}

// snapshot копия записей для проверок
func (f *fakeRemote) snapshot() map[string]map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]map[string]string, len(f.records))
	for k, v := range f.records {
		rec := make(map[string]string, len(v))
		for field, value := range v {
			rec[field] = value
		}
		out[k] = rec
	}
	return out
}

func wrap(rec map[string]string) map[string]any {
	out := make(map[string]any, len(rec))
	for k, v := range rec {
		out[k] = map[string]string{"raw": v}
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
