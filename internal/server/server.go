// Package server собирает эмулятор сервера записей: sqlite хранилище,
// OAuth handshake, REST API записей и graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/recordsync/internal/config"
	"github.com/iudanet/recordsync/internal/crypto"
	"github.com/iudanet/recordsync/internal/models"
	"github.com/iudanet/recordsync/internal/server/handlers"
	"github.com/iudanet/recordsync/internal/server/middleware"
	"github.com/iudanet/recordsync/internal/server/storage"
	"github.com/iudanet/recordsync/internal/server/storage/sqlite"
)

// ShutdownTimeout время на завершение активных запросов
const ShutdownTimeout = 5 * time.Second

// Server эмулятор сервера записей
type Server struct {
	logger  *slog.Logger
	store   *sqlite.Storage
	limiter *middleware.RateLimiter
	handler http.Handler
	cfg     *config.Server
}

// New открывает хранилище, создает пользователей из конфигурации и собирает router.
// Без секрета в конфигурации ключ подписи генерируется случайно,
// и токены перестают действовать после перезапуска.
func New(ctx context.Context, cfg *config.Server, version string, logger *slog.Logger) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	secret := []byte(cfg.Secret)
	if len(secret) == 0 {
		var err error
		if secret, err = handlers.NewSecret(); err != nil {
			return nil, err
		}
		logger.Warn("token secret is not configured, using a random one")
	}

	store, err := sqlite.New(ctx, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	if err := bootstrapUsers(ctx, store, cfg.Users, logger); err != nil {
		_ = store.Close()
		return nil, err
	}

	tokens := handlers.TokenConfig{
		Secret:         secret,
		ClientID:       cfg.ClientID,
		AccessTokenTTL: cfg.TokenTTL,
	}

	var limiter *middleware.RateLimiter
	if cfg.RequestsPerMinute > 0 {
		limiter = middleware.NewRateLimiter(cfg.RequestsPerMinute, time.Minute, logger)
	}

	h := Handlers{
		Health:  handlers.NewHealthHandler(logger, store, version),
		OAuth:   handlers.NewOAuthHandler(logger, store, tokens),
		Records: handlers.NewRecordHandler(logger, store),
	}

	return &Server{
		logger:  logger,
		store:   store,
		limiter: limiter,
		handler: NewRouter(h, tokens, limiter, logger),
		cfg:     cfg,
	}, nil
}

// bootstrapUsers создает пользователей; у существующих обновляется пароль
func bootstrapUsers(ctx context.Context, users storage.UserStorage, list []config.UserSpec, logger *slog.Logger) error {
	for _, u := range list {
		hash, err := crypto.HashPassword(u.Password)
		if err != nil {
			return fmt.Errorf("failed to hash password for %s: %w", u.Login, err)
		}

		err = users.CreateUser(ctx, &models.User{
			ID:           uuid.New().String(),
			Login:        u.Login,
			PasswordHash: hash,
			CreatedAt:    time.Now(),
		})
		switch {
		case err == nil:
			logger.Info("user created", slog.String("login", u.Login))
		case errors.Is(err, storage.ErrUserAlreadyExists):
			if err := users.UpdatePassword(ctx, u.Login, hash); err != nil {
				return fmt.Errorf("failed to update user %s: %w", u.Login, err)
			}
			logger.Info("user password updated", slog.String("login", u.Login))
		default:
			return fmt.Errorf("failed to create user %s: %w", u.Login, err)
		}
	}
	return nil
}

// Handler возвращает http.Handler эмулятора
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run слушает cfg.Addr до отмены ctx
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve обслуживает запросы на ln до отмены ctx, затем выполняет graceful shutdown
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errC := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", slog.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errC <- err
		}
		close(errC)
	}()

	select {
	case err, ok := <-errC:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}

// Close останавливает rate limiter и закрывает хранилище
func (s *Server) Close() error {
	if s.limiter != nil {
		s.limiter.Stop()
	}
	return s.store.Close()
}
