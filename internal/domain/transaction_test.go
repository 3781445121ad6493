// internal/domain/transaction_test.go
package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewTransaction(t *testing.T) {
	in := CreateTransactionInput{
		Name:   "Index fund",
		Type:   TransactionTypeInvestment,
		Amount: decimal.NewFromInt(300),
		UserID: uuid.NewString(),
	}

	tx := NewTransaction(in)

	_, err := uuid.Parse(tx.ID)
	assert.NoError(t, err)
	assert.Equal(t, TransactionStatusPending, tx.Status)
	assert.Equal(t, in.Name, tx.Name)
	assert.Equal(t, in.Type, tx.Type)
	assert.True(t, in.Amount.Equal(tx.Amount))
	assert.Equal(t, in.UserID, tx.UserID)
	assert.WithinDuration(t, time.Now(), tx.CreatedAt, time.Second)
	assert.Equal(t, tx.CreatedAt, tx.UpdatedAt)
	assert.Equal(t, tx.CreatedAt, tx.CreatedAt.Truncate(time.Microsecond), "timestamps carry no sub-microsecond digits")
	assert.Equal(t, time.UTC, tx.CreatedAt.Location())

	assert.NotEqual(t, tx.ID, NewTransaction(in).ID)
}

func TestApplyPatch(t *testing.T) {
	base := Transaction{
		ID:     uuid.NewString(),
		Name:   "Rent",
		Type:   TransactionTypePayment,
		Status: TransactionStatusPending,
		Amount: decimal.NewFromInt(900),
		UserID: uuid.NewString(),
	}

	t.Run("OnlyPresentFieldsChange", func(t *testing.T) {
		tx := base
		status := TransactionStatusCompleted
		tx.ApplyPatch(TransactionPatch{Status: &status})

		expected := base
		expected.Status = TransactionStatusCompleted
		assert.Equal(t, expected, tx)
	})

	t.Run("EveryField", func(t *testing.T) {
		tx := base
		name := "Rent (March)"
		typ := TransactionTypeDirectDebit
		status := TransactionStatusFailed
		amount := decimal.NewFromInt(950)
		userID := uuid.NewString()
		tx.ApplyPatch(TransactionPatch{Name: &name, Type: &typ, Status: &status, Amount: &amount, UserID: &userID})

		assert.Equal(t, base.ID, tx.ID)
		assert.Equal(t, name, tx.Name)
		assert.Equal(t, typ, tx.Type)
		assert.Equal(t, status, tx.Status)
		assert.True(t, amount.Equal(tx.Amount))
		assert.Equal(t, userID, tx.UserID)
	})

	t.Run("EmptyPatchIsNoOp", func(t *testing.T) {
		tx := base
		tx.ApplyPatch(TransactionPatch{})
		assert.Equal(t, base, tx)
	})
}
