package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionRequest_AmountAcceptsNumberOrString(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"number", `{"amount": 50.5}`, "50.5"},
		{"string", `{"amount": "12.00"}`, "12.00"},
		{"null", `{"amount": null}`, ""},
		{"missing", `{}`, ""},
		{"text", `{"amount": "abc"}`, "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req dto.TransactionRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			assert.Equal(t, tt.want, req.ToCandidate().Amount)
		})
	}
}

func TestToTransactionResponse_Display(t *testing.T) {
	refund := domain.Transaction{ID: "1", TransactionPayload: domain.TransactionPayload{
		Date: "2024-01-15", Amount: decimal.NewFromInt(25), Type: domain.Refund, Category: domain.Shopping,
	}}
	debit := domain.Transaction{ID: "2", TransactionPayload: domain.TransactionPayload{
		Date: "2024-01-15", Amount: decimal.NewFromInt(40), Type: domain.Debit, Category: domain.Food,
	}}

	r := dto.ToTransactionResponse(refund)
	assert.Equal(t, "+", r.Sign)
	assert.Equal(t, "+$25.00", r.Display)
	assert.Equal(t, "25", r.SignedAmount)

	d := dto.ToTransactionResponse(debit)
	assert.Equal(t, "-", d.Sign)
	assert.Equal(t, "-$40.00", d.Display)
	assert.Equal(t, "40", d.Amount)
	assert.Equal(t, "-40", d.SignedAmount)
}

func TestToSummaryResponse(t *testing.T) {
	res := dto.ToSummaryResponse(domain.Aggregate{
		TotalCredit: decimal.NewFromInt(100),
		TotalDebit:  decimal.NewFromInt(40),
		Balance:     decimal.NewFromInt(60),
	})

	assert.Equal(t, "+$100.00", res.TotalCreditDisplay)
	assert.Equal(t, "-$40.00", res.TotalDebitDisplay)
	assert.Equal(t, "+$60.00", res.BalanceDisplay)
	assert.Equal(t, "60", res.Balance)

	negative := dto.ToSummaryResponse(domain.Aggregate{Balance: decimal.RequireFromString("-12.45")})
	assert.Equal(t, "-$12.45", negative.BalanceDisplay)
}

func TestToListTransactionsResponse_EmptyIsArray(t *testing.T) {
	res := dto.ToListTransactionsResponse(nil)
	raw, err := json.Marshal(res)
	require.NoError(t, err)
	assert.JSONEq(t, `{"transactions":[],"count":0}`, string(raw))
}
