// Package memory holds the session-scoped state of the application. Nothing here outlives the process.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
)

// transactionRepository owns the canonical transaction collection.
// All mutations go through Dispatch under the write lock, one at a time.
type transactionRepository struct {
	mu    sync.RWMutex
	state domain.State
}

// NewTransactionRepository returns an empty repository.
func NewTransactionRepository() portsrepo.TransactionRepositoryFacade {
	return &transactionRepository{state: domain.State{}}
}

var _ portsrepo.TransactionRepositoryFacade = (*transactionRepository)(nil)

func (r *transactionRepository) Snapshot(_ context.Context) domain.State {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state.Clone()
}

func (r *transactionRepository) FindTransactionByID(_ context.Context, id string) (*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tx, ok := r.state.Find(id)
	if !ok {
		return nil, fmt.Errorf("transaction %s: %w", id, apperrors.ErrNotFound)
	}
	return &tx, nil
}

func (r *transactionRepository) Dispatch(_ context.Context, cmd domain.Command) domain.State {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = domain.Apply(r.state, cmd)
	return r.state.Clone()
}

// NewRepositoryProvider wires every in-memory repository.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: NewTransactionRepository(),
	}
}
