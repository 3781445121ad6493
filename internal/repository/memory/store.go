// internal/repository/memory/store.go
package memory

import (
	"sync"

	"ledger-service/internal/domain"
)

// Store is a thread-safe in-memory backing store shared by the memory repositories.
type Store struct {
	mu           sync.RWMutex
	users        map[string]*domain.User
	transactions map[string]*domain.Transaction
	order        []string // transaction ids in insertion order
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		users:        make(map[string]*domain.User),
		transactions: make(map[string]*domain.Transaction),
	}
}
