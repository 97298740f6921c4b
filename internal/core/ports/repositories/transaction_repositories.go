package repositories

import (
	"context"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
)

// TransactionReader defines read operations over the session's transaction collection.
type TransactionReader interface {
	// Snapshot returns a copy of the collection in insertion order.
	Snapshot(ctx context.Context) domain.State

	// FindTransactionByID retrieves a transaction by id. Returns apperrors.ErrNotFound when absent.
	FindTransactionByID(ctx context.Context, id string) (*domain.Transaction, error)
}

// TransactionWriter defines the single mutation entry point of the collection.
type TransactionWriter interface {
	// Dispatch applies cmd to the collection and returns the resulting state.
	Dispatch(ctx context.Context, cmd domain.Command) domain.State
}

// TransactionRepositoryFacade combines read and write access to the collection.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
