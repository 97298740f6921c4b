package domain

import "github.com/shopspring/decimal"

// TransactionType indicates the direction of money flow for a transaction.
type TransactionType string

const (
	Credit TransactionType = "Credit"
	Debit  TransactionType = "Debit"
	Refund TransactionType = "Refund"
)

// TransactionTypes lists every accepted TransactionType.
var TransactionTypes = []TransactionType{Credit, Debit, Refund}

// IsValid reports whether t is a member of the closed enumeration.
func (t TransactionType) IsValid() bool {
	switch t {
	case Credit, Debit, Refund:
		return true
	}
	return false
}

// Category classifies the purpose of a transaction.
type Category string

const (
	Shopping Category = "Shopping"
	Travel   Category = "Travel"
	Utility  Category = "Utility"
	Food     Category = "Food"
	Health   Category = "Health"
	Other    Category = "Other"
)

// Categories lists every accepted Category.
var Categories = []Category{Shopping, Travel, Utility, Food, Health, Other}

// IsValid reports whether c is a member of the closed enumeration.
func (c Category) IsValid() bool {
	switch c {
	case Shopping, Travel, Utility, Food, Health, Other:
		return true
	}
	return false
}

// TransactionPayload carries every Transaction attribute except the id.
type TransactionPayload struct {
	Date        string          `json:"date"` // YYYY-MM-DD
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Location    string          `json:"location"`
	Type        TransactionType `json:"type"`
	Category    Category        `json:"category"`
}

// Transaction is a single recorded financial event.
// Amount is a magnitude; direction comes from Type.
type Transaction struct {
	ID string `json:"id"`
	TransactionPayload
}

// IsCreditLike reports whether the transaction presents as incoming money.
// Refund counts here even though it is excluded from the aggregate totals.
func (t Transaction) IsCreditLike() bool {
	return t.Type == Credit || t.Type == Refund
}

// Sign returns the display prefix for the transaction's amount.
func (t Transaction) Sign() string {
	if t.IsCreditLike() {
		return "+"
	}
	if t.Type == Debit {
		return "-"
	}
	return ""
}

// Aggregate is the derived balance summary of a transaction collection.
type Aggregate struct {
	TotalCredit decimal.Decimal `json:"totalCredit"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	Balance     decimal.Decimal `json:"balance"`
}
