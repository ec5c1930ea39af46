package auth

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/recordsync/internal/client/api"
	pkgapi "github.com/iudanet/recordsync/pkg/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTransport возвращает mock, успешно выполняющий handshake
func newTransport() *TransportMock {
	return &TransportMock{
		DiscoverClientFunc: func(ctx context.Context) (*pkgapi.ClientInfo, error) {
			return &pkgapi.ClientInfo{ClientID: "client-42", AuthHost: "//auth.example.com"}, nil
		},
		RequestTokenFunc: func(ctx context.Context, authHost string, req pkgapi.TokenRequest) (*pkgapi.TokenResponse, error) {
			return &pkgapi.TokenResponse{AccessToken: "token-1", ExpiresIn: 3600}, nil
		},
		SchemeFunc: func() string { return "https" },
	}
}

func TestSession_Prepare(t *testing.T) {
	transport := newTransport()
	session := NewSession(transport, "john@example.com", "secret", testLogger())
	require.False(t, session.Ready())

	require.NoError(t, session.Prepare(context.Background()))

	assert.True(t, session.Ready())
	assert.Equal(t, "client-42", session.ClientID())
	assert.Equal(t, "https://auth.example.com", session.AuthHost())
	assert.Equal(t, "token-1", session.AccessToken())

	require.Len(t, transport.RequestTokenCalls(), 1)
	call := transport.RequestTokenCalls()[0]
	assert.Equal(t, "https://auth.example.com", call.AuthHost)
	assert.Equal(t, pkgapi.TokenRequest{
		ClientID: "client-42",
		Username: "john@example.com",
		Password: "secret",
	}, call.Req)

	st, ok := session.State()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(time.Hour), st.ExpiresAt, time.Minute)
}

func TestSession_Prepare_Idempotent(t *testing.T) {
	transport := newTransport()
	session := NewSession(transport, "john", "secret", testLogger())

	for range 3 {
		require.NoError(t, session.Prepare(context.Background()))
	}

	assert.Len(t, transport.DiscoverClientCalls(), 1)
	assert.Len(t, transport.RequestTokenCalls(), 1)
}

func TestSession_Prepare_Errors(t *testing.T) {
	transportErr := errors.New("connection refused")

	tests := []struct {
		name      string
		discover  func(ctx context.Context) (*pkgapi.ClientInfo, error)
		token     func(ctx context.Context, authHost string, req pkgapi.TokenRequest) (*pkgapi.TokenResponse, error)
		wantErr   error
		wantToken int
	}{
		{
			name: "discovery transport failure",
			discover: func(ctx context.Context) (*pkgapi.ClientInfo, error) {
				return nil, transportErr
			},
			wantErr: ErrAuthDiscovery,
		},
		{
			name: "missing client id",
			discover: func(ctx context.Context) (*pkgapi.ClientInfo, error) {
				return &pkgapi.ClientInfo{AuthHost: "//auth"}, nil
			},
			wantErr: ErrAuthDiscovery,
		},
		{
			name: "missing auth host",
			discover: func(ctx context.Context) (*pkgapi.ClientInfo, error) {
				return &pkgapi.ClientInfo{ClientID: "c"}, nil
			},
			wantErr: ErrAuthDiscovery,
		},
		{
			name: "token request failure",
			token: func(ctx context.Context, authHost string, req pkgapi.TokenRequest) (*pkgapi.TokenResponse, error) {
				return nil, transportErr
			},
			wantErr:   ErrAuthToken,
			wantToken: 1,
		},
		{
			name: "empty access token",
			token: func(ctx context.Context, authHost string, req pkgapi.TokenRequest) (*pkgapi.TokenResponse, error) {
				return &pkgapi.TokenResponse{}, nil
			},
			wantErr:   ErrAuthToken,
			wantToken: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transport := newTransport()
			if tt.discover != nil {
				transport.DiscoverClientFunc = tt.discover
			}
			if tt.token != nil {
				transport.RequestTokenFunc = tt.token
			}

			session := NewSession(transport, "john", "secret", testLogger())
			err := session.Prepare(context.Background())

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.False(t, session.Ready())
			assert.Len(t, transport.RequestTokenCalls(), tt.wantToken)

			_, err = session.Headers()
			assert.ErrorIs(t, err, ErrNotReady)
		})
	}
}

func TestSession_Invalidate(t *testing.T) {
	transport := newTransport()
	session := NewSession(transport, "john", "secret", testLogger())
	require.NoError(t, session.Prepare(context.Background()))

	session.Invalidate()
	assert.False(t, session.Ready())
	assert.Empty(t, session.AccessToken())

	require.NoError(t, session.Prepare(context.Background()))
	assert.Len(t, transport.RequestTokenCalls(), 2)
}

func TestSession_Headers(t *testing.T) {
	session := NewSession(newTransport(), "john@example.com", "secret", testLogger())
	require.NoError(t, session.Prepare(context.Background()))

	h, err := session.Headers()
	require.NoError(t, err)
	assert.Equal(t, "OAuth", h.Get("Authorization"))
	assert.Equal(t, "john@example.com", h.Get("user"))
	assert.Equal(t, "token-1", h.Get("access-token"))
}

func TestSession_Restore(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  bool
	}{
		{name: "valid", state: State{ClientID: "c", AccessToken: "t", ExpiresAt: time.Now().Add(time.Hour)}, want: true},
		{name: "no expiry", state: State{ClientID: "c", AccessToken: "t"}, want: true},
		{name: "expired", state: State{ClientID: "c", AccessToken: "t", ExpiresAt: time.Now().Add(-time.Second)}},
		{name: "empty token", state: State{ClientID: "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transport := newTransport()
			session := NewSession(transport, "john", "secret", testLogger())

			assert.Equal(t, tt.want, session.Restore(tt.state))
			assert.Equal(t, tt.want, session.Ready())

			if tt.want {
				// восстановленная сессия не выполняет handshake
				require.NoError(t, session.Prepare(context.Background()))
				assert.Empty(t, transport.DiscoverClientCalls())
			}
		})
	}
}

func TestResolveAuthHost(t *testing.T) {
	tests := []struct {
		value  string
		scheme string
		want   string
	}{
		{value: "//auth.example.com", scheme: "https", want: "https://auth.example.com"},
		{value: "//127.0.0.1:8080/", scheme: "http", want: "http://127.0.0.1:8080"},
		{value: "auth.example.com", scheme: "https", want: "https://auth.example.com"},
		{value: "http://auth.example.com", scheme: "https", want: "http://auth.example.com"},
		{value: "//auth", scheme: "", want: "http://auth"},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveAuthHost(tt.value, tt.scheme))
		})
	}
}

// TestSession_WithHTTPClient проверяет handshake поверх настоящего HTTP клиента
func TestSession_WithHTTPClient(t *testing.T) {
	var tokenCalls atomic.Int32

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("GET /oauth/client", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(pkgapi.HeaderClientID, "client-42")
		w.Header().Set(pkgapi.HeaderAuthHost, "//"+strings.TrimPrefix(server.URL, "http://"))
	})
	mux.HandleFunc("POST /auth/token", func(w http.ResponseWriter, r *http.Request) {
		tokenCalls.Add(1)
		assert.Equal(t, "client-42", r.FormValue("client_id"))
		assert.Equal(t, "password", r.FormValue("grant_type"))
		_ = json.NewEncoder(w).Encode(pkgapi.TokenResponse{AccessToken: "jwt"})
	})

	session := NewSession(api.NewClient(server.URL), "john", "secret", testLogger())
	require.NoError(t, session.Prepare(context.Background()))
	require.NoError(t, session.Prepare(context.Background()))

	assert.Equal(t, int32(1), tokenCalls.Load())
	assert.Equal(t, server.URL, session.AuthHost())
	assert.Equal(t, "jwt", session.AccessToken())
}

func TestSession_WithHTTPClient_TokenRejected(t *testing.T) {
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	mux.HandleFunc("GET /oauth/client", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(pkgapi.HeaderClientID, "client-42")
		w.Header().Set(pkgapi.HeaderAuthHost, server.URL)
	})
	mux.HandleFunc("POST /auth/token", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(pkgapi.ErrorResponse{Error: "Unauthorized", Message: "invalid credentials"})
	})

	session := NewSession(api.NewClient(server.URL), "john", "wrong", testLogger())
	err := session.Prepare(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAuthToken)
	assert.ErrorIs(t, err, api.ErrTransport)
	assert.Contains(t, err.Error(), "invalid credentials")
}
