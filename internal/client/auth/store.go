package auth

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/recordsync/internal/client/storage"
	"github.com/iudanet/recordsync/internal/crypto"
)

// Store сохраняет результат handshake между запусками CLI.
// Токен шифруется ключом, выведенным из пароля пользователя, поэтому
// восстановить сессию можно только с тем же логином и паролем.
type Store struct {
	storage storage.AuthStorage
}

// NewStore creates a new Store on top of raw auth storage
func NewStore(storage storage.AuthStorage) *Store {
	return &Store{storage: storage}
}

// Save шифрует токен и сохраняет подготовленную сессию для host
func (s *Store) Save(ctx context.Context, host string, session *Session) error {
	st, ok := session.State()
	if !ok {
		return ErrNotReady
	}

	salt, err := crypto.GenerateSalt()
	if err != nil {
		return err
	}
	key, err := crypto.DeriveSessionKey(session.password, session.login, salt)
	if err != nil {
		return fmt.Errorf("failed to derive session key: %w", err)
	}
	sealed, err := crypto.SealString(st.AccessToken, key)
	if err != nil {
		return fmt.Errorf("failed to encrypt access token: %w", err)
	}

	data := &storage.AuthData{
		Host:        host,
		Login:       session.login,
		ClientID:    st.ClientID,
		AuthHost:    st.AuthHost,
		AccessToken: sealed,
		Salt:        base64.StdEncoding.EncodeToString(salt),
	}
	if !st.ExpiresAt.IsZero() {
		data.ExpiresAt = st.ExpiresAt.Unix()
	}

	return s.storage.SaveAuth(ctx, data)
}

// Load восстанавливает сессию из хранилища.
// Возвращает false, если сохраненной сессии нет, она выдана для другого host
// или логина, истекла или не расшифровывается текущим паролем.
func (s *Store) Load(ctx context.Context, host string, session *Session) (bool, error) {
	data, err := s.storage.GetAuth(ctx)
	if errors.Is(err, storage.ErrAuthNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if data.Host != host || data.Login != session.login {
		return false, nil
	}

	salt, err := base64.StdEncoding.DecodeString(data.Salt)
	if err != nil {
		return false, fmt.Errorf("failed to decode session salt: %w", err)
	}
	key, err := crypto.DeriveSessionKey(session.password, session.login, salt)
	if err != nil {
		return false, fmt.Errorf("failed to derive session key: %w", err)
	}
	token, err := crypto.OpenString(data.AccessToken, key)
	if err != nil {
		session.logger.Debug("stored session is not readable with current password", "error", err)
		return false, nil
	}

	st := State{
		ClientID:    data.ClientID,
		AuthHost:    data.AuthHost,
		AccessToken: token,
	}
	if data.ExpiresAt > 0 {
		st.ExpiresAt = time.Unix(data.ExpiresAt, 0)
	}

	return session.Restore(st), nil
}

// Forget удаляет сохраненную сессию; отсутствие сессии не ошибка
func (s *Store) Forget(ctx context.Context) error {
	if err := s.storage.DeleteAuth(ctx); err != nil && !errors.Is(err, storage.ErrAuthNotFound) {
		return err
	}
	return nil
}
