package records

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/recordsync/internal/client/api"
	"github.com/iudanet/recordsync/internal/client/auth"
	pkgapi "github.com/iudanet/recordsync/pkg/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// readyAuth возвращает готовый mock авторизации
func readyAuth() *AuthenticatorMock {
	return &AuthenticatorMock{
		PrepareFunc: func(ctx context.Context) error { return nil },
		HeadersFunc: func() (http.Header, error) {
			h := http.Header{}
			h.Set("Authorization", "OAuth")
			h.Set("user", "john@example.com")
			h.Set("access-token", "token-1")
			return h, nil
		},
	}
}

// recordedRequest запрос, полученный тестовым сервером
type recordedRequest struct {
	Header http.Header
	Method string
	URI    string
	Body   string
}

// newRecordingServer отвечает response на любой запрос и запоминает последний запрос
func newRecordingServer(t *testing.T, status int, response string) (*httptest.Server, *recordedRequest) {
	t.Helper()
	last := &recordedRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		*last = recordedRequest{Method: r.Method, URI: r.URL.RequestURI(), Header: r.Header.Clone(), Body: string(body)}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(server.Close)
	return server, last
}

func TestService_RequestShapes(t *testing.T) {
	tests := []struct {
		name       string
		call       func(s *Service) error
		response   string
		wantMethod string
		wantURI    string
		wantBody   string
	}{
		{
			name: "read all without fields",
			call: func(s *Service) error {
				var out []pkgapi.Record
				return s.ReadAll(context.Background(), "io_lead", nil, &out)
			},
			response:   `[{"io_uuid":"k-1"}]`,
			wantMethod: http.MethodGet,
			wantURI:    "/api/rest/v1/io_lead",
		},
		{
			name: "read all with fields",
			call: func(s *Service) error {
				var out []pkgapi.Record
				return s.ReadAll(context.Background(), "io_lead", []string{"io_uuid", "io_first_name"}, &out)
			},
			response:   `[{"io_uuid":"k-1"}]`,
			wantMethod: http.MethodGet,
			wantURI:    "/api/rest/v1/io_lead?fields=io_uuid,io_first_name",
		},
		{
			name: "read one without fields",
			call: func(s *Service) error {
				var out pkgapi.Record
				return s.ReadOne(context.Background(), "io_lead", []string{}, "k-1", &out)
			},
			wantMethod: http.MethodGet,
			wantURI:    "/api/rest/v1/io_lead/k-1",
		},
		{
			name: "read one with fields",
			call: func(s *Service) error {
				var out pkgapi.Record
				return s.ReadOne(context.Background(), "io_lead", []string{"io_email"}, "k-1", &out)
			},
			wantMethod: http.MethodGet,
			wantURI:    "/api/rest/v1/io_lead/k-1?fields=io_email",
		},
		{
			name: "create",
			call: func(s *Service) error {
				var out pkgapi.Record
				return s.Create(context.Background(), "io_lead", map[string]string{"io_first_name": "Unit"}, &out)
			},
			wantMethod: http.MethodPost,
			wantURI:    "/api/rest/v1/io_lead/new",
			wantBody:   `{"io_first_name":"Unit"}`,
		},
		{
			name: "update",
			call: func(s *Service) error {
				var out pkgapi.Record
				return s.Update(context.Background(), "io_lead", map[string]string{"io_last_name": "Test"}, "k-1", &out)
			},
			wantMethod: http.MethodPut,
			wantURI:    "/api/rest/v1/io_lead/k-1",
			wantBody:   `{"io_last_name":"Test"}`,
		},
		{
			name: "delete",
			call: func(s *Service) error {
				return s.Delete(context.Background(), "io_lead", "k-1")
			},
			wantMethod: http.MethodDelete,
			wantURI:    "/api/rest/v1/io_lead/k-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response := tt.response
			if response == "" {
				response = `{"io_uuid":"k-1"}`
			}
			server, last := newRecordingServer(t, http.StatusOK, response)

			authMock := readyAuth()
			service := NewService(api.NewClient(server.URL), authMock, testLogger())

			require.NoError(t, tt.call(service))

			assert.Equal(t, tt.wantMethod, last.Method)
			assert.Equal(t, tt.wantURI, last.URI)
			assert.Equal(t, "OAuth", last.Header.Get("Authorization"))
			assert.Equal(t, "john@example.com", last.Header.Get("user"))
			assert.Equal(t, "token-1", last.Header.Get("access-token"))
			assert.Equal(t, "application/json", last.Header.Get("Content-Type"))
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, last.Body)
			} else {
				assert.Empty(t, last.Body)
			}

			// каждая операция готовит сессию, включая Delete
			assert.Len(t, authMock.PrepareCalls(), 1)
		})
	}
}

func TestService_Delete_IgnoresBody(t *testing.T) {
	server, _ := newRecordingServer(t, http.StatusOK, "not json at all")
	service := NewService(api.NewClient(server.URL), readyAuth(), testLogger())

	require.NoError(t, service.Delete(context.Background(), "io_lead", "k-1"))
}

func TestService_Errors(t *testing.T) {
	t.Run("non-2xx is transport error", func(t *testing.T) {
		server, _ := newRecordingServer(t, http.StatusNotFound, `{"error":"Not Found","message":"record not found"}`)
		service := NewService(api.NewClient(server.URL), readyAuth(), testLogger())

		var out pkgapi.Record
		err := service.ReadOne(context.Background(), "io_lead", nil, "missing", &out)

		require.Error(t, err)
		assert.ErrorIs(t, err, api.ErrTransport)
		var statusErr *api.StatusError
		require.True(t, errors.As(err, &statusErr))
		assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	})

	t.Run("delete of missing record", func(t *testing.T) {
		server, _ := newRecordingServer(t, http.StatusNotFound, `{}`)
		service := NewService(api.NewClient(server.URL), readyAuth(), testLogger())

		err := service.Delete(context.Background(), "io_lead", "missing")
		assert.ErrorIs(t, err, api.ErrTransport)
	})

	t.Run("undecodable body is decode error", func(t *testing.T) {
		server, _ := newRecordingServer(t, http.StatusOK, `<html>`)
		service := NewService(api.NewClient(server.URL), readyAuth(), testLogger())

		var out []pkgapi.Record
		err := service.ReadAll(context.Background(), "io_lead", nil, &out)
		assert.ErrorIs(t, err, api.ErrDecode)
	})

	t.Run("prepare failure stops request", func(t *testing.T) {
		var hits atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
		}))
		defer server.Close()

		authMock := readyAuth()
		authMock.PrepareFunc = func(ctx context.Context) error { return auth.ErrAuthDiscovery }
		service := NewService(api.NewClient(server.URL), authMock, testLogger())

		err := service.Delete(context.Background(), "io_lead", "k-1")
		assert.ErrorIs(t, err, auth.ErrAuthDiscovery)
		assert.Zero(t, hits.Load())
		assert.Empty(t, authMock.HeadersCalls())
	})
}

// TestService_LazyHandshake проверяет, что handshake выполняется один раз на несколько операций
func TestService_LazyHandshake(t *testing.T) {
	var tokenCalls atomic.Int32

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("GET /oauth/client", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(pkgapi.HeaderClientID, "client-42")
		w.Header().Set(pkgapi.HeaderAuthHost, server.URL)
	})
	mux.HandleFunc("POST /auth/token", func(w http.ResponseWriter, r *http.Request) {
		tokenCalls.Add(1)
		_ = json.NewEncoder(w).Encode(pkgapi.TokenResponse{AccessToken: "jwt-1"})
	})
	mux.HandleFunc("GET /api/rest/v1/io_lead", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "jwt-1", r.Header.Get("access-token"))
		_, _ = w.Write([]byte(`[]`))
	})

	client := api.NewClient(server.URL)
	session := auth.NewSession(client, "john", "secret", testLogger())
	service := NewService(client, session, testLogger())

	for range 3 {
		var out []pkgapi.Record
		require.NoError(t, service.ReadAll(context.Background(), "io_lead", nil, &out))
	}

	assert.Equal(t, int32(1), tokenCalls.Load())
}

func TestFieldsQuery(t *testing.T) {
	assert.Equal(t, "", fieldsQuery(nil))
	assert.Equal(t, "", fieldsQuery([]string{}))
	assert.Equal(t, "?fields=a", fieldsQuery([]string{"a"}))
	assert.Equal(t, "?fields=a,b%26c", fieldsQuery([]string{"a", "b&c"}))
}
