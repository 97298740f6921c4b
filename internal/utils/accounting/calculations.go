package accounting

import (
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalculateSignedAmount applies the display sign to a transaction amount.
// Credit and Refund are positive, Debit is negative.
func CalculateSignedAmount(txn domain.Transaction) decimal.Decimal {
	if txn.Type == domain.Debit {
		return txn.Amount.Neg()
	}
	return txn.Amount
}

// CalculateAggregate totals a collection of transactions.
//
// Only Credit counts toward TotalCredit and only Debit toward TotalDebit.
// Refund contributes to neither, even though it displays as credit-like.
func CalculateAggregate(transactions []domain.Transaction) domain.Aggregate {
	totalCredit := decimal.Zero
	totalDebit := decimal.Zero

	for _, txn := range transactions {
		switch txn.Type {
		case domain.Credit:
			totalCredit = totalCredit.Add(txn.Amount)
		case domain.Debit:
			totalDebit = totalDebit.Add(txn.Amount)
		}
	}

	return domain.Aggregate{
		TotalCredit: totalCredit,
		TotalDebit:  totalDebit,
		Balance:     totalCredit.Sub(totalDebit),
	}
}
