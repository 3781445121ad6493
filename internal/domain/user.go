// internal/domain/user.go
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// UserRole is the access role carried by a user. No rule in this service enforces it.
type UserRole string

const (
	UserRoleAdmin    UserRole = "ADMIN"
	UserRoleViewer   UserRole = "VIEWER"
	UserRoleOperator UserRole = "OPERATOR"
)

// User represents an account holder and its cached balance.
type User struct {
	ID          string          `db:"id" json:"id"`
	Name        string          `db:"name" json:"name"`
	Email       string          `db:"email" json:"email"`
	Role        UserRole        `db:"role" json:"role"`
	Permissions pq.StringArray  `db:"permissions" json:"permissions"`
	Balance     decimal.Decimal `db:"balance" json:"balance"` // Sum of COMPLETED transactions as of the last sync
	LastLogin   time.Time       `db:"last_login" json:"last_login"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updated_at"`
}

// NewUser creates a new User instance with a zero balance.
func NewUser(name, email string, role UserRole) *User {
	now := Now()
	return &User{
		ID:          uuid.NewString(),
		Name:        name,
		Email:       email,
		Role:        role,
		Permissions: pq.StringArray{},
		Balance:     decimal.Zero,
		LastLogin:   now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// UserFields is a partial user update. Nil fields are left untouched.
type UserFields struct {
	Name      *string
	Email     *string
	Balance   *decimal.Decimal
	LastLogin *time.Time
}

// IsEmpty reports whether no field is set.
func (f UserFields) IsEmpty() bool {
	return f.Name == nil && f.Email == nil && f.Balance == nil && f.LastLogin == nil
}

// Apply copies the set fields onto u.
func (f UserFields) Apply(u *User) {
	if f.Name != nil {
		u.Name = *f.Name
	}
	if f.Email != nil {
		u.Email = *f.Email
	}
	if f.Balance != nil {
		u.Balance = *f.Balance
	}
	if f.LastLogin != nil {
		u.LastLogin = *f.LastLogin
	}
}
