package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/recordsync/internal/server/handlers"
	"github.com/iudanet/recordsync/pkg/api"
)

// AuthMiddleware проверяет заголовки авторизованного запроса:
// "Authorization: OAuth", "user: <login>", "access-token: <jwt>".
// Логин из user должен совпадать с subject токена.
func AuthMiddleware(logger *slog.Logger, tokens handlers.TokenConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			scheme := strings.TrimSpace(r.Header.Get(api.HeaderAuthorization))
			if scheme == "" {
				logger.WarnContext(ctx, "missing Authorization header", slog.String("path", r.URL.Path))
				writeError(w, "missing Authorization header", http.StatusUnauthorized)
				return
			}
			if !strings.EqualFold(scheme, api.AuthSchemeOAuth) {
				logger.WarnContext(ctx, "unsupported authorization scheme", slog.String("scheme", scheme))
				writeError(w, "unsupported authorization scheme", http.StatusUnauthorized)
				return
			}

			token := r.Header.Get(api.HeaderAccessToken)
			if token == "" {
				writeError(w, "missing access token", http.StatusUnauthorized)
				return
			}

			claims, err := handlers.ValidateAccessToken(tokens, token)
			if err != nil {
				logger.WarnContext(ctx, "invalid access token", slog.Any("error", err))
				writeError(w, "invalid access token", http.StatusUnauthorized)
				return
			}

			// токен привязан к пользователю
			if login := r.Header.Get(api.HeaderUser); login != claims.Subject {
				logger.WarnContext(ctx, "access token issued for another user",
					slog.String("user", login),
					slog.String("subject", claims.Subject))
				writeError(w, "access token does not match user", http.StatusUnauthorized)
				return
			}

			logger.DebugContext(ctx, "user authenticated", slog.String("login", claims.Subject))

			next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, handlers.LoginKey, claims.Subject)))
		})
	}
}
