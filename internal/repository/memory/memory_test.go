// internal/repository/memory/memory_test.go
package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledger-service/internal/domain"
	"ledger-service/internal/util"
)

func newTx(userID string, amount int64, status domain.TransactionStatus, createdAt time.Time) *domain.Transaction {
	return &domain.Transaction{
		ID:        uuid.NewString(),
		Name:      "t",
		Type:      domain.TransactionTypePayment,
		Status:    status,
		Amount:    decimal.NewFromInt(amount),
		UserID:    userID,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func TestTransactionRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewTransactionRepository(NewStore())
	userA, userB := uuid.NewString(), uuid.NewString()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	oldest := newTx(userA, 100, domain.TransactionStatusCompleted, base)
	middle := newTx(userB, 50, domain.TransactionStatusCompleted, base.Add(time.Hour))
	newest := newTx(userA, 25, domain.TransactionStatusPending, base.Add(2*time.Hour))
	// Inserted out of chronological order on purpose.
	for _, tx := range []*domain.Transaction{middle, newest, oldest} {
		require.NoError(t, repo.CreateTransaction(ctx, tx))
	}

	t.Run("DuplicateID", func(t *testing.T) {
		assert.Error(t, repo.CreateTransaction(ctx, oldest))
	})

	t.Run("NewestFirst", func(t *testing.T) {
		txs, total, err := repo.ListTransactions(ctx, domain.TransactionFilter{}, 0, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, txs, 3)
		assert.Equal(t, []string{newest.ID, middle.ID, oldest.ID}, []string{txs[0].ID, txs[1].ID, txs[2].ID})
	})

	t.Run("SkipAndTake", func(t *testing.T) {
		txs, total, err := repo.ListTransactions(ctx, domain.TransactionFilter{}, 1, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, txs, 1)
		assert.Equal(t, middle.ID, txs[0].ID)

		txs, _, err = repo.ListTransactions(ctx, domain.TransactionFilter{}, 3, 10)
		require.NoError(t, err)
		assert.Empty(t, txs)
	})

	t.Run("FilterByUser", func(t *testing.T) {
		txs, total, err := repo.ListTransactions(ctx, domain.TransactionFilter{UserID: &userA}, 0, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Equal(t, newest.ID, txs[0].ID)
	})

	t.Run("SumAmount", func(t *testing.T) {
		sum, err := repo.SumAmount(ctx, userA, domain.TransactionStatusCompleted)
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(100).Equal(sum))

		sum, err = repo.SumAmount(ctx, uuid.NewString(), domain.TransactionStatusCompleted)
		require.NoError(t, err)
		assert.True(t, sum.IsZero())
	})

	t.Run("ReturnedCopiesAreDetached", func(t *testing.T) {
		got, err := repo.GetTransactionByID(ctx, oldest.ID)
		require.NoError(t, err)
		got.Name = "mutated"

		again, err := repo.GetTransactionByID(ctx, oldest.ID)
		require.NoError(t, err)
		assert.Equal(t, "t", again.Name)
	})

	t.Run("UpdateAndDelete", func(t *testing.T) {
		got, err := repo.GetTransactionByID(ctx, newest.ID)
		require.NoError(t, err)
		got.Status = domain.TransactionStatusCompleted
		require.NoError(t, repo.UpdateTransaction(ctx, got))

		sum, err := repo.SumAmount(ctx, userA, domain.TransactionStatusCompleted)
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(125).Equal(sum))

		require.NoError(t, repo.DeleteTransaction(ctx, newest.ID))
		_, err = repo.GetTransactionByID(ctx, newest.ID)
		assert.ErrorIs(t, err, util.ErrNotFound)
		assert.ErrorIs(t, repo.DeleteTransaction(ctx, newest.ID), util.ErrNotFound)
		assert.ErrorIs(t, repo.UpdateTransaction(ctx, got), util.ErrNotFound)

		_, total, err := repo.ListTransactions(ctx, domain.TransactionFilter{}, 0, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
	})
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewStore())
	user := domain.NewUser("Ada", "ada@example.com", domain.UserRoleAdmin)
	require.NoError(t, repo.CreateUser(ctx, user))

	balance := decimal.NewFromInt(125)
	require.NoError(t, repo.UpdateUserFields(ctx, user.ID, domain.UserFields{Balance: &balance}))

	got, err := repo.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, balance.Equal(got.Balance))
	assert.Equal(t, "Ada", got.Name)

	t.Run("ReturnedCopiesAreDetached", func(t *testing.T) {
		admin := domain.NewUser("Lin", "lin@example.com", domain.UserRoleAdmin)
		admin.Permissions = pq.StringArray{"read", "write"}
		require.NoError(t, repo.CreateUser(ctx, admin))

		// Changing the caller's value after create must not reach the store.
		admin.Permissions[0] = "changed"

		got, err := repo.GetUserByID(ctx, admin.ID)
		require.NoError(t, err)
		assert.Equal(t, pq.StringArray{"read", "write"}, got.Permissions)

		got.Permissions[1] = "delete"
		again, err := repo.GetUserByID(ctx, admin.ID)
		require.NoError(t, err)
		assert.Equal(t, pq.StringArray{"read", "write"}, again.Permissions)
	})

	_, err = repo.GetUserByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, util.ErrNotFound)
	assert.ErrorIs(t, repo.UpdateUserFields(ctx, uuid.NewString(), domain.UserFields{Balance: &balance}), util.ErrNotFound)
}
