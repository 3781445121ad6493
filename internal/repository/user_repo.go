// internal/repository/user_repo.go
package repository

import (
	"context"

	"ledger-service/internal/domain"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	// CreateUser adds a new user.
	CreateUser(ctx context.Context, user *domain.User) error
	// GetUserByID returns util.ErrNotFound when no row has the given id.
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
	// UpdateUserFields writes the non-nil fields of fields. It returns util.ErrNotFound
	// when the user does not exist.
	UpdateUserFields(ctx context.Context, id string, fields domain.UserFields) error
}
