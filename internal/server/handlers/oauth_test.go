package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/recordsync/internal/crypto"
	"github.com/iudanet/recordsync/internal/models"
	"github.com/iudanet/recordsync/internal/server/storage"
	"github.com/iudanet/recordsync/pkg/api"
)

func TestOAuthHandler_Client(t *testing.T) {
	handler := NewOAuthHandler(setupTestLogger(), &storage.UserStorageMock{}, testTokenConfig())

	req := httptest.NewRequest(http.MethodGet, "http://records.local:8080/oauth/client", nil)
	w := httptest.NewRecorder()
	handler.Client(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "client-1", w.Header().Get(api.HeaderClientID))
	assert.Equal(t, "//records.local:8080", w.Header().Get(api.HeaderAuthHost))
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{}`, w.Body.String())
}

func TestOAuthHandler_Token(t *testing.T) {
	hash, err := crypto.HashPassword("secret")
	require.NoError(t, err)

	users := &storage.UserStorageMock{
		GetUserByLoginFunc: func(ctx context.Context, login string) (*models.User, error) {
			switch login {
			case "ann":
				return &models.User{ID: "u1", Login: "ann", PasswordHash: hash}, nil
			case "broken":
				return nil, errors.New("database is locked")
			default:
				return nil, storage.ErrUserNotFound
			}
		},
	}

	form := func(grant, clientID, login, password string) string {
		v := url.Values{}
		v.Set("grant_type", grant)
		v.Set("client_id", clientID)
		v.Set("username", login)
		v.Set("password", password)
		return v.Encode()
	}

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{name: "success", body: form("password", "client-1", "ann", "secret"), wantStatus: http.StatusOK},
		{name: "unsupported grant", body: form("client_credentials", "client-1", "ann", "secret"), wantStatus: http.StatusBadRequest},
		{name: "unknown client", body: form("password", "client-2", "ann", "secret"), wantStatus: http.StatusUnauthorized},
		{name: "empty login", body: form("password", "client-1", "", "secret"), wantStatus: http.StatusBadRequest},
		{name: "empty password", body: form("password", "client-1", "ann", ""), wantStatus: http.StatusBadRequest},
		{name: "unknown user", body: form("password", "client-1", "bob", "secret"), wantStatus: http.StatusUnauthorized},
		{name: "wrong password", body: form("password", "client-1", "ann", "wrong"), wantStatus: http.StatusUnauthorized},
		{name: "storage error", body: form("password", "client-1", "broken", "secret"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testTokenConfig()
			handler := NewOAuthHandler(setupTestLogger(), users, cfg)

			req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			w := httptest.NewRecorder()
			handler.Token(w, req)

			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus != http.StatusOK {
				resp := decodeBody[api.ErrorResponse](t, w)
				assert.Equal(t, http.StatusText(tt.wantStatus), resp.Error)
				return
			}

			resp := decodeBody[api.TokenResponse](t, w)
			assert.Equal(t, "bearer", resp.TokenType)
			assert.Equal(t, int64(3600), resp.ExpiresIn)

			claims, err := ValidateAccessToken(cfg, resp.AccessToken)
			require.NoError(t, err)
			assert.Equal(t, "ann", claims.Subject)
		})
	}
}
