// Package validation checks candidate transaction input before it reaches the store.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"
)

// Candidate is unvalidated transaction input exactly as the form submitted it.
// Amount stays textual so that numeric coercion is part of validation.
type Candidate struct {
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Amount      string `json:"amount" validate:"required,positive_amount"`
	Description string `json:"description" validate:"notblank"`
	Location    string `json:"location" validate:"notblank"`
	Type        string `json:"type" validate:"required,oneof=Credit Debit Refund"`
	Category    string `json:"category" validate:"required,oneof=Shopping Travel Utility Food Health Other"`
}

// Result reports per-field validation failures. A missing key means the field is valid.
type Result struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors"`
}

var fieldMessages = map[string]string{
	"date":        "Date must be YYYY-MM-DD",
	"amount":      "Amount must be a positive number",
	"description": "Description is required",
	"location":    "Location is required",
	"type":        "Type must be Credit, Debit, or Refund",
	"category":    "Invalid category",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("positive_amount", func(fl validator.FieldLevel) bool {
		_, ok := parseAmount(fl.Field().String())
		return ok
	})
	return v
}

// Validate runs every field rule against c and collects all failures.
// It never returns an error: invalid input is reported through Result.
func Validate(c Candidate) Result {
	res := Result{Errors: map[string]string{}}

	// Struct only fails with something other than ValidationErrors for a non-struct argument.
	var verrs validator.ValidationErrors
	if errors.As(validate.Struct(c), &verrs) {
		for _, fe := range verrs {
			msg, ok := fieldMessages[fe.Field()]
			if !ok {
				msg = fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag())
			}
			if _, seen := res.Errors[fe.Field()]; !seen {
				res.Errors[fe.Field()] = msg
			}
		}
	}

	res.Valid = len(res.Errors) == 0
	return res
}

// Payload converts a candidate into a store payload. Callers are expected to have
// validated c first; an invalid candidate yields apperrors.ErrValidation.
func (c Candidate) Payload() (domain.TransactionPayload, error) {
	if res := Validate(c); !res.Valid {
		return domain.TransactionPayload{}, fmt.Errorf("candidate has %d invalid field(s): %w", len(res.Errors), apperrors.ErrValidation)
	}
	amount, _ := parseAmount(c.Amount)
	return domain.TransactionPayload{
		Date:        c.Date,
		Amount:      amount,
		Description: strings.TrimSpace(c.Description),
		Location:    strings.TrimSpace(c.Location),
		Type:        domain.TransactionType(c.Type),
		Category:    domain.Category(c.Category),
	}, nil
}

const (
	maxAmountInputLen = 32
	maxAmountExponent = 15
	maxFractionDigits = 8
)

// maxAmount is the exclusive upper bound of an accepted amount.
var maxAmount = decimal.New(1, maxAmountExponent)

// parseAmount coerces s into a strictly positive decimal below maxAmount with at most
// maxFractionDigits fraction digits. The exponent is bounded before any comparison so
// inputs like "1e2147483647" are rejected without being expanded.
func parseAmount(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > maxAmountInputLen {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	if exp := d.Exponent(); exp > maxAmountExponent || exp < -maxFractionDigits {
		return decimal.Zero, false
	}
	if !d.IsPositive() || d.GreaterThanOrEqual(maxAmount) {
		return decimal.Zero, false
	}
	return d, true
}
