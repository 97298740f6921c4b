package domain_test

import (
	"testing"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestTransactionType_IsValid(t *testing.T) {
	for _, tt := range domain.TransactionTypes {
		assert.True(t, tt.IsValid(), string(tt))
	}
	assert.False(t, domain.TransactionType("credit").IsValid())
	assert.False(t, domain.TransactionType("").IsValid())
	assert.False(t, domain.TransactionType("Bogus").IsValid())
}

func TestCategory_IsValid(t *testing.T) {
	assert.Len(t, domain.Categories, 6)
	for _, c := range domain.Categories {
		assert.True(t, c.IsValid(), string(c))
	}
	assert.False(t, domain.Category("food").IsValid())
	assert.False(t, domain.Category("Groceries").IsValid())
}

func TestTransaction_Sign(t *testing.T) {
	tests := []struct {
		name       string
		txType     domain.TransactionType
		wantSign   string
		creditLike bool
	}{
		{name: "credit", txType: domain.Credit, wantSign: "+", creditLike: true},
		{name: "debit", txType: domain.Debit, wantSign: "-", creditLike: false},
		{name: "refund", txType: domain.Refund, wantSign: "+", creditLike: true},
		{name: "unknown", txType: domain.TransactionType("Bogus"), wantSign: "", creditLike: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := domain.Transaction{TransactionPayload: domain.TransactionPayload{Type: tt.txType}}
			assert.Equal(t, tt.wantSign, tx.Sign())
			assert.Equal(t, tt.creditLike, tx.IsCreditLike())
		})
	}
}
