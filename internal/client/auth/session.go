package auth

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	pkgapi "github.com/iudanet/recordsync/pkg/api"
)

//go:generate moq -out transport_mock.go . Transport

// Transport два неавторизованных запроса OAuth handshake; *api.Client реализует его
type Transport interface {
	DiscoverClient(ctx context.Context) (*pkgapi.ClientInfo, error)
	RequestToken(ctx context.Context, authHost string, req pkgapi.TokenRequest) (*pkgapi.TokenResponse, error)
	Scheme() string
}

// State результат handshake, который можно сохранить и восстановить
type State struct {
	ExpiresAt   time.Time
	ClientID    string
	AuthHost    string
	AccessToken string
}

// Session учетные данные пользователя и результат OAuth handshake.
// Handshake выполняется лениво, не более одного раза, пока сессия не сброшена.
// Session не безопасна для конкурентного использования.
type Session struct {
	transport Transport
	logger    *slog.Logger
	state     State
	login     string
	password  string
	ready     bool
}

// NewSession создает неподготовленную сессию
func NewSession(transport Transport, login, password string, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		transport: transport,
		login:     login,
		password:  password,
		logger:    logger,
	}
}

// Prepare выполняет handshake, если сессия еще не готова:
// GET /oauth/client, затем POST {Auth-Host}/auth/token.
// Для готовой сессии ничего не делает.
func (s *Session) Prepare(ctx context.Context) error {
	if s.ready {
		return nil
	}

	info, err := s.transport.DiscoverClient(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAuthDiscovery, err)
	}
	if info.ClientID == "" {
		return fmt.Errorf("%w: missing %s header", ErrAuthDiscovery, pkgapi.HeaderClientID)
	}
	if info.AuthHost == "" {
		return fmt.Errorf("%w: missing %s header", ErrAuthDiscovery, pkgapi.HeaderAuthHost)
	}

	authHost := ResolveAuthHost(info.AuthHost, s.transport.Scheme())

	resp, err := s.transport.RequestToken(ctx, authHost, pkgapi.TokenRequest{
		ClientID: info.ClientID,
		Username: s.login,
		Password: s.password,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAuthToken, err)
	}
	if resp.AccessToken == "" {
		return fmt.Errorf("%w: empty access token", ErrAuthToken)
	}

	s.state = State{
		ClientID:    info.ClientID,
		AuthHost:    authHost,
		AccessToken: resp.AccessToken,
	}
	if resp.ExpiresIn > 0 {
		s.state.ExpiresAt = time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second)
	}
	s.ready = true

	s.logger.Info("session prepared", "login", s.login, "client_id", info.ClientID, "auth_host", authHost)
	return nil
}

// Ready сообщает, выполнен ли handshake
func (s *Session) Ready() bool {
	return s.ready
}

// Invalidate сбрасывает токен; следующий Prepare повторит handshake
func (s *Session) Invalidate() {
	s.state = State{}
	s.ready = false
}

// Login возвращает логин пользователя
func (s *Session) Login() string {
	return s.login
}

// ClientID возвращает идентификатор клиента, полученный при discovery
func (s *Session) ClientID() string {
	return s.state.ClientID
}

// AuthHost возвращает нормализованный адрес сервера авторизации
func (s *Session) AuthHost() string {
	return s.state.AuthHost
}

// AccessToken возвращает токен доступа
func (s *Session) AccessToken() string {
	return s.state.AccessToken
}

// State возвращает результат handshake
func (s *Session) State() (State, bool) {
	return s.state, s.ready
}

// Restore делает сессию готовой без handshake.
// Пустой или истекший токен не восстанавливается.
func (s *Session) Restore(st State) bool {
	if st.AccessToken == "" || st.ClientID == "" {
		return false
	}
	if !st.ExpiresAt.IsZero() && !time.Now().Before(st.ExpiresAt) {
		return false
	}
	s.state = st
	s.ready = true
	s.logger.Debug("session restored", "login", s.login, "client_id", st.ClientID)
	return true
}

// Headers возвращает заголовки авторизованного запроса.
// Сессия должна быть подготовлена.
func (s *Session) Headers() (http.Header, error) {
	if !s.ready {
		return nil, ErrNotReady
	}
	h := http.Header{}
	h.Set(pkgapi.HeaderAuthorization, pkgapi.AuthSchemeOAuth)
	h.Set(pkgapi.HeaderUser, s.login)
	h.Set(pkgapi.HeaderAccessToken, s.state.AccessToken)
	return h, nil
}

// ResolveAuthHost приводит значение Auth-Host к абсолютному адресу:
// "//h" дополняется схемой, "h" получает "scheme://", адрес со схемой не меняется.
func ResolveAuthHost(value, scheme string) string {
	value = strings.TrimRight(strings.TrimSpace(value), "/")
	if scheme == "" {
		scheme = "http"
	}
	switch {
	case strings.Contains(value, "://"):
		return value
	case strings.HasPrefix(value, "//"):
		return scheme + ":" + value
	default:
		return scheme + "://" + value
	}
}
