package memory_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/SscSPs/expense_tracker/internal/adapters/memory"
	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTx(id string) domain.Transaction {
	return domain.Transaction{
		ID: id,
		TransactionPayload: domain.TransactionPayload{
			Date:        "2024-03-01",
			Amount:      decimal.NewFromInt(10),
			Description: "Coffee",
			Location:    "London, ON",
			Type:        domain.Debit,
			Category:    domain.Food,
		},
	}
}

func TestTransactionRepository_StartsEmpty(t *testing.T) {
	repo := memory.NewTransactionRepository()

	snap := repo.Snapshot(context.Background())
	assert.NotNil(t, snap)
	assert.Empty(t, snap)
}

func TestTransactionRepository_DispatchAndFind(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewTransactionRepository()

	state := repo.Dispatch(ctx, domain.CreateCommand{Transaction: newTx("t1")})
	require.Len(t, state, 1)

	found, err := repo.FindTransactionByID(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, newTx("t1"), *found)

	_, err = repo.FindTransactionByID(ctx, "nope")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestTransactionRepository_SnapshotIsDetached(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewTransactionRepository()
	repo.Dispatch(ctx, domain.CreateCommand{Transaction: newTx("t1")})

	snap := repo.Snapshot(ctx)
	snap[0].Description = "tampered"

	again := repo.Snapshot(ctx)
	assert.Equal(t, "Coffee", again[0].Description)
}

func TestTransactionRepository_ConcurrentDispatchKeepsEveryCreate(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewTransactionRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			repo.Dispatch(ctx, domain.CreateCommand{Transaction: newTx(fmt.Sprintf("t%d", i))})
		}(i)
	}
	wg.Wait()

	assert.Len(t, repo.Snapshot(ctx), 50)
}
