// internal/repository/postgres/transaction_pg.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"ledger-service/internal/domain"
	"ledger-service/internal/repository"
	"ledger-service/internal/util"
)

const transactionColumns = `id, name, type, status, amount, user_id, created_at, updated_at`

// TransactionRepository implements repository.TransactionRepository for PostgreSQL.
type TransactionRepository struct {
	q repository.DBExecutor
}

// NewTransactionRepository creates a new TransactionRepository running its statements on q.
func NewTransactionRepository(q repository.DBExecutor) repository.TransactionRepository {
	return &TransactionRepository{q: q}
}

// CreateTransaction inserts a new transaction record.
func (r *TransactionRepository) CreateTransaction(ctx context.Context, transaction *domain.Transaction) error {
	query := `INSERT INTO transactions (` + transactionColumns + `)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.q.ExecContext(ctx, query,
		transaction.ID,
		transaction.Name,
		transaction.Type,
		transaction.Status,
		transaction.Amount,
		transaction.UserID,
		transaction.CreatedAt,
		transaction.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// GetTransactionByID retrieves a transaction by its ID.
func (r *TransactionRepository) GetTransactionByID(ctx context.Context, id string) (*domain.Transaction, error) {
	// Malformed ids cannot exist in a uuid column.
	if _, err := uuid.Parse(id); err != nil {
		return nil, util.ErrNotFound
	}

	var transaction domain.Transaction
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`
	err := r.q.GetContext(ctx, &transaction, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get transaction by ID %s: %w", id, err)
	}
	return &transaction, nil
}

// ListTransactions retrieves a page of transactions, newest first.
// It performs two queries: one for the data and one for the total count.
func (r *TransactionRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter, skip, take int) ([]domain.Transaction, int64, error) {
	where := ""
	args := []interface{}{}
	if filter.UserID != nil {
		// A malformed id matches no row of a uuid column.
		if _, err := uuid.Parse(*filter.UserID); err != nil {
			return []domain.Transaction{}, 0, nil
		}
		where = ` WHERE user_id = $1`
		args = append(args, *filter.UserID)
	}

	transactions := []domain.Transaction{}
	query := `SELECT ` + transactionColumns + ` FROM transactions` + where +
		fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	if err := r.q.SelectContext(ctx, &transactions, query, append(args, take, skip)...); err != nil {
		return nil, 0, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	var totalCount int64
	countQuery := `SELECT COUNT(*) FROM transactions` + where
	if err := r.q.GetContext(ctx, &totalCount, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to get total transaction count: %w", err)
	}

	return transactions, totalCount, nil
}

// UpdateTransaction saves the mutable columns of transaction.
func (r *TransactionRepository) UpdateTransaction(ctx context.Context, transaction *domain.Transaction) error {
	if _, err := uuid.Parse(transaction.ID); err != nil {
		return util.ErrNotFound
	}

	now := domain.Now()
	query := `UPDATE transactions
              SET name = $1, type = $2, status = $3, amount = $4, user_id = $5, updated_at = $6
              WHERE id = $7`
	result, err := r.q.ExecContext(ctx, query,
		transaction.Name,
		transaction.Type,
		transaction.Status,
		transaction.Amount,
		transaction.UserID,
		now,
		transaction.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", transaction.ID, err)
	}
	if err := expectRow(result); err != nil {
		return err
	}

	transaction.UpdatedAt = now
	return nil
}

// DeleteTransaction removes a transaction by its ID.
func (r *TransactionRepository) DeleteTransaction(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return util.ErrNotFound
	}

	result, err := r.q.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", id, err)
	}
	return expectRow(result)
}

// SumAmount totals the amount of a user's transactions in the given status.
func (r *TransactionRepository) SumAmount(ctx context.Context, userID string, status domain.TransactionStatus) (decimal.Decimal, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return decimal.Zero, nil
	}

	var total decimal.Decimal
	query := `SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE user_id = $1 AND status = $2`
	if err := r.q.GetContext(ctx, &total, query, userID, status); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum %s transactions for user %s: %w", status, userID, err)
	}
	return total, nil
}

// expectRow maps a statement that touched no row onto util.ErrNotFound.
func expectRow(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}
