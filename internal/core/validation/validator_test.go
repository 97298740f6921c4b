package validation_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/SscSPs/expense_tracker/internal/core/validation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCandidate() validation.Candidate {
	return validation.Candidate{
		Date:        "2024-01-15",
		Amount:      "50",
		Description: "Lunch",
		Location:    "Toronto",
		Type:        "Debit",
		Category:    "Food",
	}
}

func TestValidate_ValidCandidate(t *testing.T) {
	res := validation.Validate(validCandidate())

	assert.True(t, res.Valid)
	assert.Empty(t, res.Errors)
	assert.NotNil(t, res.Errors)
}

func TestValidate_MultipleErrorsSurfaceTogether(t *testing.T) {
	res := validation.Validate(validation.Candidate{
		Date:        "",
		Amount:      "-5",
		Description: "",
		Location:    "x",
		Type:        "Bogus",
		Category:    "Food",
	})

	assert.False(t, res.Valid)
	assert.Len(t, res.Errors, 4)
	assert.Equal(t, "Date must be YYYY-MM-DD", res.Errors["date"])
	assert.Equal(t, "Amount must be a positive number", res.Errors["amount"])
	assert.Equal(t, "Description is required", res.Errors["description"])
	assert.Equal(t, "Type must be Credit, Debit, or Refund", res.Errors["type"])
	assert.NotContains(t, res.Errors, "location")
	assert.NotContains(t, res.Errors, "category")
}

func TestValidate_Date(t *testing.T) {
	tests := []struct {
		date  string
		valid bool
	}{
		{"2024-01-15", true},
		{"2024-02-29", true},
		{"2023-02-29", false},
		{"2023-02-30", false},
		{"2023-04-31", false},
		{"2023-13-01", false},
		{"2023-13-40", false},
		{"2023-00-10", false},
		{"23-01-01", false},
		{"2023-1-5", false},
		{"2023/01/05", false},
		{"2023-01-05T00:00:00Z", false},
		{"", false},
		{"yesterday", false},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			c := validCandidate()
			c.Date = tt.date
			res := validation.Validate(c)
			_, flagged := res.Errors["date"]
			assert.Equal(t, !tt.valid, flagged)
			assert.Equal(t, tt.valid, res.Valid)
		})
	}
}

func TestValidate_Amount(t *testing.T) {
	tests := []struct {
		amount string
		valid  bool
	}{
		{"50", true},
		{"0.01", true},
		{"100.50", true},
		{" 12 ", true},
		{"0", false},
		{"0.00", false},
		{"-5", false},
		{"NaN", false},
		{"abc", false},
		{"", false},
		{"12abc", false},
		{"0.00000001", true},
		{"999999999999999.99", true},
		{"1e3", true},
		{"1e15", false},
		{"1000000000000000", false},
		{"0.000000001", false},
		{"1e100000000", false},
		{"1e2147483647", false},
		{"1e-2147483647", false},
		{"1" + strings.Repeat("0", 40), false},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			c := validCandidate()
			c.Amount = tt.amount
			res := validation.Validate(c)
			_, flagged := res.Errors["amount"]
			assert.Equal(t, !tt.valid, flagged)
		})
	}
}

func TestValidate_AmountErrorRegardlessOfOtherFields(t *testing.T) {
	res := validation.Validate(validation.Candidate{Amount: "0"})

	assert.False(t, res.Valid)
	assert.Contains(t, res.Errors, "amount")
	assert.Len(t, res.Errors, 6)
}

func TestValidate_BlankStrings(t *testing.T) {
	c := validCandidate()
	c.Description = "   "
	c.Location = "\t"

	res := validation.Validate(c)

	assert.Equal(t, "Description is required", res.Errors["description"])
	assert.Equal(t, "Location is required", res.Errors["location"])
}

func TestValidate_EnumsAreCaseSensitive(t *testing.T) {
	c := validCandidate()
	c.Type = "debit"
	c.Category = "food"

	res := validation.Validate(c)

	assert.Equal(t, "Type must be Credit, Debit, or Refund", res.Errors["type"])
	assert.Equal(t, "Invalid category", res.Errors["category"])
}

func TestValidate_EveryEnumMemberAccepted(t *testing.T) {
	for _, tt := range domain.TransactionTypes {
		for _, cat := range domain.Categories {
			c := validCandidate()
			c.Type = string(tt)
			c.Category = string(cat)
			assert.True(t, validation.Validate(c).Valid, "%s/%s", tt, cat)
		}
	}
}

func TestCandidate_Payload(t *testing.T) {
	c := validCandidate()
	c.Amount = "100.50"
	c.Description = "  Lunch  "

	p, err := c.Payload()
	require.NoError(t, err)

	assert.Equal(t, "2024-01-15", p.Date)
	assert.True(t, decimal.RequireFromString("100.50").Equal(p.Amount))
	assert.Equal(t, "Lunch", p.Description)
	assert.Equal(t, domain.Debit, p.Type)
	assert.Equal(t, domain.Food, p.Category)
}

func TestCandidate_PayloadRejectsInvalid(t *testing.T) {
	c := validCandidate()
	c.Amount = "-1"

	_, err := c.Payload()
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestCandidate_PayloadKeepsDate(t *testing.T) {
	p, err := validCandidate().Payload()
	require.NoError(t, err)

	assert.Equal(t, "2024-01-15", p.Date)
}

func TestValidate_ExtremeAmountsDoNotReachPayload(t *testing.T) {
	for _, amount := range []string{"1e100000000", "1e2147483647", "1e-2147483647"} {
		c := validCandidate()
		c.Amount = amount

		res := validation.Validate(c)
		assert.Equal(t, "Amount must be a positive number", res.Errors["amount"], amount)

		_, err := c.Payload()
		assert.ErrorIs(t, err, apperrors.ErrValidation, amount)
	}
}
