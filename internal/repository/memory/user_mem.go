// internal/repository/memory/user_mem.go
package memory

import (
	"context"
	"fmt"

	"github.com/lib/pq"

	"ledger-service/internal/domain"
	"ledger-service/internal/repository"
	"ledger-service/internal/util"
)

// UserRepository implements repository.UserRepository on a Store.
type UserRepository struct {
	store *Store
}

// NewUserRepository creates a UserRepository backed by store.
func NewUserRepository(store *Store) repository.UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.users[user.ID]; exists {
		return fmt.Errorf("failed to create user: duplicate id %s", user.ID)
	}
	r.store.users[user.ID] = cloneUser(user)
	return nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	u, ok := r.store.users[id]
	if !ok {
		return nil, util.ErrNotFound
	}
	return cloneUser(u), nil
}

// cloneUser copies u without sharing its permissions slice.
func cloneUser(u *domain.User) *domain.User {
	out := *u
	out.Permissions = append(pq.StringArray(nil), u.Permissions...)
	return &out
}

func (r *UserRepository) UpdateUserFields(ctx context.Context, id string, fields domain.UserFields) error {
	if fields.IsEmpty() {
		return nil
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	u, ok := r.store.users[id]
	if !ok {
		return util.ErrNotFound
	}
	fields.Apply(u)
	u.UpdatedAt = domain.Now()
	return nil
}
