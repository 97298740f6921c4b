package services

import (
	"context"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
)

// TransactionReaderSvc defines read operations for transactions.
type TransactionReaderSvc interface {
	// ListTransactions returns the current collection in insertion order.
	ListTransactions(ctx context.Context) []domain.Transaction

	// GetTransaction retrieves a single transaction. Returns apperrors.ErrNotFound when absent.
	GetTransaction(ctx context.Context, id string) (*domain.Transaction, error)
}

// TransactionWriterSvc defines mutations. Payloads are trusted: callers validate first.
type TransactionWriterSvc interface {
	// CreateTransaction assigns a new id and appends the transaction.
	CreateTransaction(ctx context.Context, payload domain.TransactionPayload) domain.Transaction

	// UpdateTransaction replaces every field but the id. Unknown ids are a no-op.
	UpdateTransaction(ctx context.Context, id string, payload domain.TransactionPayload)

	// DeleteTransaction removes the transaction. Unknown ids are a no-op.
	DeleteTransaction(ctx context.Context, id string)
}

// TransactionCalculatorSvc defines derived computations over the collection.
type TransactionCalculatorSvc interface {
	// GetAggregate recomputes the totals from the current collection.
	GetAggregate(ctx context.Context) domain.Aggregate
}

// TransactionSvcFacade combines all transaction-related service interfaces.
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
	TransactionCalculatorSvc
}

// IDGenerator produces transaction identifiers that never repeat within a process.
type IDGenerator interface {
	NewID() string
}
