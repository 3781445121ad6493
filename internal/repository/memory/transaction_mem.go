// internal/repository/memory/transaction_mem.go
package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"ledger-service/internal/domain"
	"ledger-service/internal/repository"
	"ledger-service/internal/util"
)

// TransactionRepository implements repository.TransactionRepository on a Store.
type TransactionRepository struct {
	store *Store
}

// NewTransactionRepository creates a TransactionRepository backed by store.
func NewTransactionRepository(store *Store) repository.TransactionRepository {
	return &TransactionRepository{store: store}
}

func (r *TransactionRepository) CreateTransaction(ctx context.Context, transaction *domain.Transaction) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.transactions[transaction.ID]; exists {
		return fmt.Errorf("failed to create transaction: duplicate id %s", transaction.ID)
	}
	stored := *transaction
	r.store.transactions[transaction.ID] = &stored
	r.store.order = append(r.store.order, transaction.ID)
	return nil
}

func (r *TransactionRepository) GetTransactionByID(ctx context.Context, id string) (*domain.Transaction, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	t, ok := r.store.transactions[id]
	if !ok {
		return nil, util.ErrNotFound
	}
	out := *t
	return &out, nil
}

func (r *TransactionRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter, skip, take int) ([]domain.Transaction, int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	matched := []domain.Transaction{}
	// Walk newest insertion first so equal timestamps still list the latest row on top.
	for i := len(r.store.order) - 1; i >= 0; i-- {
		t := r.store.transactions[r.store.order[i]]
		if filter.UserID != nil && t.UserID != *filter.UserID {
			continue
		}
		matched = append(matched, *t)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	if skip >= len(matched) {
		return []domain.Transaction{}, total, nil
	}
	end := skip + take
	if end > len(matched) {
		end = len(matched)
	}
	return matched[skip:end], total, nil
}

func (r *TransactionRepository) UpdateTransaction(ctx context.Context, transaction *domain.Transaction) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.transactions[transaction.ID]; !ok {
		return util.ErrNotFound
	}
	transaction.UpdatedAt = domain.Now()
	stored := *transaction
	r.store.transactions[transaction.ID] = &stored
	return nil
}

func (r *TransactionRepository) DeleteTransaction(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.transactions[id]; !ok {
		return util.ErrNotFound
	}
	delete(r.store.transactions, id)
	for i, tid := range r.store.order {
		if tid == id {
			r.store.order = append(r.store.order[:i], r.store.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *TransactionRepository) SumAmount(ctx context.Context, userID string, status domain.TransactionStatus) (decimal.Decimal, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	total := decimal.Zero
	for _, t := range r.store.transactions {
		if t.UserID == userID && t.Status == status {
			total = total.Add(t.Amount)
		}
	}
	return total, nil
}
