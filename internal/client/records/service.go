package records

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// APIPrefix префикс REST интерфейса записей
const APIPrefix = "/api/rest/v1"

//go:generate moq -out recordservice_mock.go . RecordService

// RecordService CRUD операции над записями объекта identifier.
// out декодируется из JSON ответа: список для ReadAll, объект для остальных.
type RecordService interface {
	ReadAll(ctx context.Context, identifier string, fields []string, out any) error
	ReadOne(ctx context.Context, identifier string, fields []string, key string, out any) error
	Create(ctx context.Context, identifier string, payload, out any) error
	Update(ctx context.Context, identifier string, payload any, key string, out any) error
	Delete(ctx context.Context, identifier, key string) error
}

//go:generate moq -out authenticator_mock.go . Authenticator

// Authenticator ленивый handshake и заголовки авторизации; *auth.Session реализует его
type Authenticator interface {
	Prepare(ctx context.Context) error
	Headers() (http.Header, error)
}

// Requester выполняет JSON запрос относительно адреса сервера; *api.Client реализует его
type Requester interface {
	Do(ctx context.Context, method, path string, header http.Header, body, result any) error
}

// Service реализация RecordService поверх HTTP.
// Ошибки не повторяются.
type Service struct {
	client Requester
	auth   Authenticator
	logger *slog.Logger
}

var _ RecordService = (*Service)(nil)

// NewService создает сервис записей
func NewService(client Requester, auth Authenticator, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		client: client,
		auth:   auth,
		logger: logger,
	}
}

// ReadAll GET /api/rest/v1/{identifier}[?fields=...]
func (s *Service) ReadAll(ctx context.Context, identifier string, fields []string, out any) error {
	return s.do(ctx, http.MethodGet, collectionPath(identifier)+fieldsQuery(fields), nil, out)
}

// ReadOne GET /api/rest/v1/{identifier}/{key}[?fields=...]
func (s *Service) ReadOne(ctx context.Context, identifier string, fields []string, key string, out any) error {
	return s.do(ctx, http.MethodGet, recordPath(identifier, key)+fieldsQuery(fields), nil, out)
}

// Create POST /api/rest/v1/{identifier}/new
func (s *Service) Create(ctx context.Context, identifier string, payload, out any) error {
	return s.do(ctx, http.MethodPost, collectionPath(identifier)+"/new", payload, out)
}

// Update PUT /api/rest/v1/{identifier}/{key}
func (s *Service) Update(ctx context.Context, identifier string, payload any, key string, out any) error {
	return s.do(ctx, http.MethodPut, recordPath(identifier, key), payload, out)
}

// Delete DELETE /api/rest/v1/{identifier}/{key}; тело ответа игнорируется
func (s *Service) Delete(ctx context.Context, identifier, key string) error {
	return s.do(ctx, http.MethodDelete, recordPath(identifier, key), nil, nil)
}

func (s *Service) do(ctx context.Context, method, path string, payload, out any) error {
	if err := s.auth.Prepare(ctx); err != nil {
		return err
	}

	header, err := s.auth.Headers()
	if err != nil {
		return err
	}
	header.Set("Content-Type", "application/json")

	s.logger.Debug("record request", "method", method, "path", path)

	if err := s.client.Do(ctx, method, path, header, payload, out); err != nil {
		s.logger.Warn("record request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	return nil
}

func collectionPath(identifier string) string {
	return APIPrefix + "/" + url.PathEscape(identifier)
}

func recordPath(identifier, key string) string {
	return collectionPath(identifier) + "/" + url.PathEscape(key)
}

// fieldsQuery возвращает "?fields=a,b" или пустую строку для пустого списка
func fieldsQuery(fields []string) string {
	if len(fields) == 0 {
		return ""
	}
	escaped := make([]string, len(fields))
	for i, f := range fields {
		escaped[i] = url.QueryEscape(f)
	}
	return "?fields=" + strings.Join(escaped, ",")
}
