package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/recordsync/internal/crypto"
	"github.com/iudanet/recordsync/internal/server/storage"
	"github.com/iudanet/recordsync/internal/validation"
	"github.com/iudanet/recordsync/pkg/api"
)

// OAuthHandler обрабатывает discovery и выдачу access token
type OAuthHandler struct {
	responder
	users  storage.UserStorage
	now    func() time.Time
	tokens TokenConfig
}

// NewOAuthHandler создает новый handler для авторизации
func NewOAuthHandler(logger *slog.Logger, users storage.UserStorage, tokens TokenConfig) *OAuthHandler {
	return &OAuthHandler{
		responder: responder{logger: logger},
		users:     users,
		tokens:    tokens,
		now:       time.Now,
	}
}

// Client обрабатывает GET /oauth/client.
// Возвращает client id и адрес сервера авторизации в заголовках, тело пустой JSON объект;
// авторизация обслуживается этим же сервером.
func (h *OAuthHandler) Client(w http.ResponseWriter, r *http.Request) {
	w.Header().Set(api.HeaderClientID, h.tokens.ClientID)
	w.Header().Set(api.HeaderAuthHost, "//"+r.Host)
	h.sendJSON(w, struct{}{}, http.StatusOK)
}

// Token обрабатывает POST /auth/token (grant_type=password, form body)
func (h *OAuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		h.logger.WarnContext(ctx, "failed to parse token request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if grant := r.PostForm.Get("grant_type"); grant != api.GrantTypePassword {
		h.sendError(w, "unsupported grant_type "+grant, http.StatusBadRequest)
		return
	}

	if r.PostForm.Get("client_id") != h.tokens.ClientID {
		h.logger.WarnContext(ctx, "token request for unknown client", slog.String("client_id", r.PostForm.Get("client_id")))
		h.sendError(w, "invalid client", http.StatusUnauthorized)
		return
	}

	login := r.PostForm.Get("username")
	password := r.PostForm.Get("password")
	if err := validation.ValidateLogin(login); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validation.ValidatePassword(password); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.users.GetUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.logger.WarnContext(ctx, "token request failed: user not found", slog.String("login", login))
			h.sendError(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if err := crypto.VerifyPassword(password, user.PasswordHash); err != nil {
		h.logger.WarnContext(ctx, "token request failed: invalid password", slog.String("login", login))
		h.sendError(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	accessToken, expiresIn, err := GenerateAccessToken(h.tokens, user.Login, h.now())
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate access token", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "access token issued", slog.String("login", user.Login))

	h.sendJSON(w, api.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		ExpiresIn:   expiresIn,
	}, http.StatusOK)
}
