package dto

import (
	"bytes"
	"encoding/json"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/SscSPs/expense_tracker/internal/core/validation"
	"github.com/SscSPs/expense_tracker/internal/utils"
	"github.com/SscSPs/expense_tracker/internal/utils/accounting"
)

// AmountInput accepts an amount written either as a JSON number or a JSON string.
// The raw text is kept so the validator decides what is numeric.
type AmountInput string

func (a *AmountInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = AmountInput(s)
		return nil
	}
	*a = AmountInput(data)
	return nil
}

// TransactionRequest is the form input for creating or editing a transaction.
type TransactionRequest struct {
	Date        string      `json:"date" example:"2024-01-15"`
	Amount      AmountInput `json:"amount" swaggertype:"string" example:"50.00"`
	Description string      `json:"description" example:"Lunch"`
	Location    string      `json:"location" example:"Toronto"`
	Type        string      `json:"type" example:"Debit" enums:"Credit,Debit,Refund"`
	Category    string      `json:"category" example:"Food" enums:"Shopping,Travel,Utility,Food,Health,Other"`
}

// ToCandidate converts the request into validator input.
func (r TransactionRequest) ToCandidate() validation.Candidate {
	return validation.Candidate{
		Date:        r.Date,
		Amount:      string(r.Amount),
		Description: r.Description,
		Location:    r.Location,
		Type:        r.Type,
		Category:    r.Category,
	}
}

// ValidationResponse mirrors validation.Result.
type ValidationResponse struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors"`
}

func ToValidationResponse(res validation.Result) ValidationResponse {
	return ValidationResponse{Valid: res.Valid, Errors: res.Errors}
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	ID           string `json:"id"`
	Date         string `json:"date"`
	Amount       string `json:"amount"`
	SignedAmount string `json:"signedAmount" example:"-40"`
	Description  string `json:"description"`
	Location     string `json:"location"`
	Type         string `json:"type"`
	Category     string `json:"category"`
	Sign         string `json:"sign" example:"-"`
	Display      string `json:"display" example:"-$40.00"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(txn domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:           txn.ID,
		Date:         txn.Date,
		Amount:       txn.Amount.String(),
		SignedAmount: accounting.CalculateSignedAmount(txn).String(),
		Description:  txn.Description,
		Location:     txn.Location,
		Type:         string(txn.Type),
		Category:     string(txn.Category),
		Sign:         txn.Sign(),
		Display:      utils.FormatMoney(txn.Sign(), txn.Amount),
	}
}

// ListTransactionsResponse wraps the collection in insertion order.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Count        int                   `json:"count"`
}

func ToListTransactionsResponse(txns []domain.Transaction) ListTransactionsResponse {
	res := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		res[i] = ToTransactionResponse(txn)
	}
	return ListTransactionsResponse{Transactions: res, Count: len(res)}
}

// SummaryResponse carries the aggregate both as plain decimals and as dashboard strings.
type SummaryResponse struct {
	TotalCredit        string `json:"totalCredit" example:"100"`
	TotalDebit         string `json:"totalDebit" example:"40"`
	Balance            string `json:"balance" example:"60"`
	TotalCreditDisplay string `json:"totalCreditDisplay" example:"+$100.00"`
	TotalDebitDisplay  string `json:"totalDebitDisplay" example:"-$40.00"`
	BalanceDisplay     string `json:"balanceDisplay" example:"+$60.00"`
}

func ToSummaryResponse(agg domain.Aggregate) SummaryResponse {
	return SummaryResponse{
		TotalCredit:        agg.TotalCredit.String(),
		TotalDebit:         agg.TotalDebit.String(),
		Balance:            agg.Balance.String(),
		TotalCreditDisplay: utils.FormatMoney("+", agg.TotalCredit),
		TotalDebitDisplay:  utils.FormatMoney("-", agg.TotalDebit),
		BalanceDisplay:     utils.FormatBalance(agg.Balance),
	}
}
