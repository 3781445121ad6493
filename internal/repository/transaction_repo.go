// internal/repository/transaction_repo.go
package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"ledger-service/internal/domain"
)

// TransactionRepository defines the interface for transaction data operations.
type TransactionRepository interface {
	// CreateTransaction inserts a new transaction record.
	CreateTransaction(ctx context.Context, transaction *domain.Transaction) error
	// GetTransactionByID returns util.ErrNotFound when no row has the given id.
	GetTransactionByID(ctx context.Context, id string) (*domain.Transaction, error)
	// ListTransactions returns one page ordered by created_at descending, plus the
	// number of rows matching filter.
	ListTransactions(ctx context.Context, filter domain.TransactionFilter, skip, take int) ([]domain.Transaction, int64, error)
	// UpdateTransaction saves every mutable column of transaction and refreshes UpdatedAt.
	UpdateTransaction(ctx context.Context, transaction *domain.Transaction) error
	// DeleteTransaction removes the row with the given id.
	DeleteTransaction(ctx context.Context, id string) error
	// SumAmount totals the amounts of a user's transactions in the given status. It is zero when nothing matches.
	SumAmount(ctx context.Context, userID string, status domain.TransactionStatus) (decimal.Decimal, error)
}
