// internal/domain/transaction.go
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal" // For precise monetary calculations
)

// TransactionType defines the type of a financial transaction.
type TransactionType string

const (
	TransactionTypeTransfer    TransactionType = "TRANSFER"
	TransactionTypePayment     TransactionType = "PAYMENT"
	TransactionTypeDirectDebit TransactionType = "DIRECT_DEBIT"
	TransactionTypeInvestment  TransactionType = "INVESTMENT"
)

// TransactionStatus defines the status of a financial transaction.
type TransactionStatus string

const (
	TransactionStatusPending    TransactionStatus = "PENDING"
	TransactionStatusProcessing TransactionStatus = "PROCESSING"
	TransactionStatusCompleted  TransactionStatus = "COMPLETED"
	TransactionStatusFailed     TransactionStatus = "FAILED"
)

// Transaction represents a financial event owned by a user.
type Transaction struct {
	ID        string            `db:"id" json:"id"`
	Name      string            `db:"name" json:"name"`
	Type      TransactionType   `db:"type" json:"type"`
	Status    TransactionStatus `db:"status" json:"status"`
	Amount    decimal.Decimal   `db:"amount" json:"amount"`
	UserID    string            `db:"user_id" json:"user_id"` // Referenced by value; existence is not checked
	CreatedAt time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt time.Time         `db:"updated_at" json:"updated_at"`
}

// Now returns the current UTC time at the microsecond precision of a TIMESTAMPTZ column.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// NewTransaction creates a PENDING transaction from validated input.
func NewTransaction(in CreateTransactionInput) *Transaction {
	now := Now()
	return &Transaction{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Type:      in.Type,
		Status:    TransactionStatusPending,
		Amount:    in.Amount,
		UserID:    in.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ApplyPatch overwrites the fields present in p and leaves the others untouched.
// No status transition rule is applied.
func (t *Transaction) ApplyPatch(p TransactionPatch) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Amount != nil {
		t.Amount = *p.Amount
	}
	if p.UserID != nil {
		t.UserID = *p.UserID
	}
}

// TransactionFilter narrows a transaction scan. A nil UserID matches every row.
type TransactionFilter struct {
	UserID *string
}
