package storage

import (
	"context"
)

//go:generate moq -out authstorage_mock.go . AuthStorage

// AuthStorage хранит результат OAuth handshake между запусками CLI.
// Хранилище не шифрует данные: токен приходит уже зашифрованным из auth.Store.
type AuthStorage interface {
	// SaveAuth сохраняет данные сессии, заменяя предыдущие
	SaveAuth(ctx context.Context, auth *AuthData) error

	// GetAuth возвращает сохраненные данные.
	// Returns ErrAuthNotFound if no auth data exists
	GetAuth(ctx context.Context) (*AuthData, error)

	// DeleteAuth удаляет сохраненные данные (logout)
	DeleteAuth(ctx context.Context) error
}

// AuthData сохраненная сессия.
// AccessToken хранится в виде base64(AES-GCM), ключ выводится из пароля и Salt.
type AuthData struct {
	Host        string `json:"host"`
	Login       string `json:"login"`
	ClientID    string `json:"client_id"`
	AuthHost    string `json:"auth_host"`
	AccessToken string `json:"access_token"`
	Salt        string `json:"salt"`
	ExpiresAt   int64  `json:"expires_at,omitempty"`
}
