package handlers

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenIssuer значение iss в access token
const TokenIssuer = "recordd"

// ErrInvalidToken access token не прошел проверку
var ErrInvalidToken = errors.New("invalid token")

// contextKey тип для ключей контекста
type contextKey string

// LoginKey ключ для хранения логина пользователя в контексте
const LoginKey contextKey = "login"

// LoginFromContext возвращает логин, положенный в контекст middleware авторизации
func LoginFromContext(ctx context.Context) (string, bool) {
	login, ok := ctx.Value(LoginKey).(string)
	return login, ok && login != ""
}

// Claims JWT claims access token; Subject = логин пользователя
type Claims struct {
	ClientID string `json:"client_id"`
	jwt.RegisteredClaims
}

// TokenConfig содержит конфигурацию для JWT
type TokenConfig struct {
	Secret         []byte
	ClientID       string
	AccessTokenTTL time.Duration
}

// NewSecret генерирует случайный ключ подписи
func NewSecret() ([]byte, error) {
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("failed to generate token secret: %w", err)
	}
	return secret, nil
}

// GenerateAccessToken создает новый JWT access token.
// Возвращает токен и время жизни в секундах.
func GenerateAccessToken(cfg TokenConfig, login string, now time.Time) (string, int64, error) {
	claims := Claims{
		ClientID: cfg.ClientID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   login,
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.AccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    TokenIssuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(cfg.Secret)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, int64(cfg.AccessTokenTTL.Seconds()), nil
}

// ValidateAccessToken валидирует и парсит JWT access token
func ValidateAccessToken(cfg TokenConfig, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		return cfg.Secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(TokenIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	if cfg.ClientID != "" && claims.ClientID != cfg.ClientID {
		return nil, fmt.Errorf("%w: issued for another client", ErrInvalidToken)
	}

	return claims, nil
}
