// internal/repository/postgres/user_pg.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"ledger-service/internal/domain"
	"ledger-service/internal/repository"
	"ledger-service/internal/util"
)

// UserRepository implements repository.UserRepository for PostgreSQL.
type UserRepository struct {
	q repository.DBExecutor
}

// NewUserRepository creates a new UserRepository running its statements on q.
func NewUserRepository(q repository.DBExecutor) repository.UserRepository {
	return &UserRepository{q: q}
}

// CreateUser inserts a new user.
func (r *UserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (id, name, email, role, permissions, balance, last_login, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.ExecContext(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.Role,
		user.Permissions,
		user.Balance,
		user.LastLogin,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUserByID retrieves a user by their ID.
func (r *UserRepository) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, util.ErrNotFound
	}

	var user domain.User
	query := `SELECT id, name, email, role, permissions, balance, last_login, created_at, updated_at
              FROM users WHERE id = $1`
	err := r.q.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID %s: %w", id, err)
	}
	return &user, nil
}

// UpdateUserFields writes the set fields of a partial update.
func (r *UserRepository) UpdateUserFields(ctx context.Context, id string, fields domain.UserFields) error {
	if fields.IsEmpty() {
		return nil
	}
	if _, err := uuid.Parse(id); err != nil {
		return util.ErrNotFound
	}

	sets := []string{}
	args := []interface{}{}
	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if fields.Name != nil {
		add("name", *fields.Name)
	}
	if fields.Email != nil {
		add("email", *fields.Email)
	}
	if fields.Balance != nil {
		add("balance", *fields.Balance)
	}
	if fields.LastLogin != nil {
		add("last_login", *fields.LastLogin)
	}
	add("updated_at", domain.Now())

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE users SET %s WHERE id = $%d`, strings.Join(sets, ", "), len(args))
	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update user %s: %w", id, err)
	}
	return expectRow(result)
}
