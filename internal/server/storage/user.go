package storage

import (
	"context"

	"github.com/iudanet/recordsync/internal/models"
)

//go:generate moq -out userstorage_mock.go . UserStorage

// UserStorage defines interface for user data persistence
type UserStorage interface {
	// CreateUser creates a new user in the storage
	// Returns ErrUserAlreadyExists if login is taken
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByLogin retrieves user by login
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)

	// UpdatePassword replaces password hash of the user
	// Returns ErrUserNotFound if user doesn't exist
	UpdatePassword(ctx context.Context, login, passwordHash string) error
}
