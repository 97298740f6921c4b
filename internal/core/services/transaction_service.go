package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/utils/accounting"
)

// transactionService is the transaction store of a session. It trusts its input:
// payloads must be validated by the caller before they get here.
type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
	ids             portssvc.IDGenerator
}

// TransactionServiceOption is a functional option for configuring the transaction service
type TransactionServiceOption func(*transactionService)

// WithIDGenerator replaces the default UUIDv7 id generator.
func WithIDGenerator(gen portssvc.IDGenerator) TransactionServiceOption {
	return func(s *transactionService) {
		s.ids = gen
	}
}

// NewTransactionService creates a new transaction service with the provided options
func NewTransactionService(repo portsrepo.TransactionRepositoryFacade, options ...TransactionServiceOption) portssvc.TransactionSvcFacade {
	svc := &transactionService{
		transactionRepo: repo,
		ids:             NewUUIDGenerator(),
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) CreateTransaction(ctx context.Context, payload domain.TransactionPayload) domain.Transaction {
	txn := domain.Transaction{
		ID:                 s.ids.NewID(),
		TransactionPayload: payload,
	}

	state := s.transactionRepo.Dispatch(ctx, domain.CreateCommand{Transaction: txn})

	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", txn.ID),
		slog.String("type", string(txn.Type)),
		slog.Int("count", len(state)))
	return txn
}

func (s *transactionService) UpdateTransaction(ctx context.Context, id string, payload domain.TransactionPayload) {
	if _, err := s.transactionRepo.FindTransactionByID(ctx, id); err != nil {
		// Unknown ids are silently ignored; the caller only holds ids it listed.
		s.LogDebug(ctx, "Update ignored, transaction not found", slog.String("transaction_id", id))
		return
	}

	s.transactionRepo.Dispatch(ctx, domain.UpdateCommand{ID: id, Payload: payload})
	s.LogInfo(ctx, "Transaction updated", slog.String("transaction_id", id))
}

func (s *transactionService) DeleteTransaction(ctx context.Context, id string) {
	if _, err := s.transactionRepo.FindTransactionByID(ctx, id); err != nil {
		s.LogDebug(ctx, "Delete ignored, transaction not found", slog.String("transaction_id", id))
		return
	}

	s.transactionRepo.Dispatch(ctx, domain.DeleteCommand{ID: id})
	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", id))
}

func (s *transactionService) ListTransactions(ctx context.Context) []domain.Transaction {
	return s.transactionRepo.Snapshot(ctx)
}

func (s *transactionService) GetTransaction(ctx context.Context, id string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction", slog.String("transaction_id", id))
		}
		return nil, err
	}
	return txn, nil
}

func (s *transactionService) GetAggregate(ctx context.Context) domain.Aggregate {
	return accounting.CalculateAggregate(s.transactionRepo.Snapshot(ctx))
}
