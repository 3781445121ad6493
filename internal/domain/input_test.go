// internal/domain/input_test.go
package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledger-service/internal/util"
)

func decimalPtr(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func fieldNames(t *testing.T, err error) []string {
	t.Helper()
	var verr *util.ValidationError
	require.ErrorAs(t, err, &verr)
	names := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		names = append(names, f.Field)
	}
	return names
}

func TestNewCreateTransactionInput(t *testing.T) {
	userID := uuid.NewString()

	t.Run("Valid", func(t *testing.T) {
		in, err := NewCreateTransactionInput(CreateTransactionRequest{
			Name:   "Salary",
			Type:   TransactionTypeTransfer,
			Amount: decimalPtr("1500.25"),
			UserID: userID,
		})

		require.NoError(t, err)
		assert.Equal(t, "Salary", in.Name)
		assert.Equal(t, TransactionTypeTransfer, in.Type)
		assert.True(t, decimal.RequireFromString("1500.25").Equal(in.Amount))
		assert.Equal(t, userID, in.UserID)
	})

	t.Run("EmptyPayloadListsEveryField", func(t *testing.T) {
		_, err := NewCreateTransactionInput(CreateTransactionRequest{})

		assert.ErrorIs(t, err, util.ErrInvalidInput)
		assert.ElementsMatch(t, []string{"name", "type", "user_id", "amount"}, fieldNames(t, err))
	})

	t.Run("RejectsBadValues", func(t *testing.T) {
		_, err := NewCreateTransactionInput(CreateTransactionRequest{
			Name:   "x",
			Type:   TransactionType("REFUND"),
			Amount: decimalPtr("0"),
			UserID: "not-a-uuid",
		})

		assert.ElementsMatch(t, []string{"type", "user_id", "amount"}, fieldNames(t, err))
	})

	t.Run("RejectsNegativeAmount", func(t *testing.T) {
		_, err := NewCreateTransactionInput(CreateTransactionRequest{
			Name:   "x",
			Type:   TransactionTypeInvestment,
			Amount: decimalPtr("-10"),
			UserID: userID,
		})

		assert.Equal(t, []string{"amount"}, fieldNames(t, err))
		assert.Contains(t, err.Error(), "amount")
	})

	t.Run("AmountScale", func(t *testing.T) {
		in, err := NewCreateTransactionInput(CreateTransactionRequest{
			Name:   "x",
			Type:   TransactionTypePayment,
			Amount: decimalPtr("0.0001"),
			UserID: userID,
		})
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("0.0001").Equal(in.Amount))

		// Trailing zeros beyond the stored scale are harmless.
		_, err = NewCreateTransactionInput(CreateTransactionRequest{
			Name:   "x",
			Type:   TransactionTypePayment,
			Amount: decimalPtr("12.500000"),
			UserID: userID,
		})
		require.NoError(t, err)

		_, err = NewCreateTransactionInput(CreateTransactionRequest{
			Name:   "x",
			Type:   TransactionTypePayment,
			Amount: decimalPtr("0.00001"),
			UserID: userID,
		})
		var verr *util.ValidationError
		require.ErrorAs(t, err, &verr)
		require.Len(t, verr.Fields, 1)
		assert.Equal(t, "amount", verr.Fields[0].Field)
		assert.Equal(t, "scale", verr.Fields[0].Type)
	})
}

func TestNewTransactionPatch(t *testing.T) {
	t.Run("EmptyPatchIsValid", func(t *testing.T) {
		patch, err := NewTransactionPatch(UpdateTransactionRequest{})

		require.NoError(t, err)
		assert.True(t, patch.IsEmpty())
	})

	t.Run("StatusOnly", func(t *testing.T) {
		status := TransactionStatusProcessing
		patch, err := NewTransactionPatch(UpdateTransactionRequest{Status: &status})

		require.NoError(t, err)
		require.NotNil(t, patch.Status)
		assert.Equal(t, TransactionStatusProcessing, *patch.Status)
		assert.Nil(t, patch.Name)
		assert.Nil(t, patch.Amount)
	})

	t.Run("RejectsPresentButInvalidFields", func(t *testing.T) {
		name := ""
		status := TransactionStatus("SETTLED")
		userID := "123"
		_, err := NewTransactionPatch(UpdateTransactionRequest{
			Name:   &name,
			Status: &status,
			Amount: decimalPtr("0"),
			UserID: &userID,
		})

		assert.ErrorIs(t, err, util.ErrInvalidInput)
		assert.ElementsMatch(t, []string{"name", "status", "amount", "user_id"}, fieldNames(t, err))
	})

	t.Run("RejectsAmountBeyondScale", func(t *testing.T) {
		_, err := NewTransactionPatch(UpdateTransactionRequest{Amount: decimalPtr("10.12345")})

		assert.ErrorIs(t, err, util.ErrInvalidInput)
		assert.Equal(t, []string{"amount"}, fieldNames(t, err))
	})
}
