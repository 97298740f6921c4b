package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatWithPrecision(t *testing.T) {
	assert.Equal(t, "12.50", FormatWithPrecision(decimal.RequireFromString("12.5"), 2))
	assert.Equal(t, "12.35", FormatWithPrecision(decimal.RequireFromString("12.3456"), 2))
	assert.Equal(t, "12", FormatWithPrecision(decimal.RequireFromString("12.3456"), 0))
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "-$40.00", FormatMoney("-", decimal.NewFromInt(40)))
	assert.Equal(t, "+$25.00", FormatMoney("+", decimal.NewFromInt(25)))
	assert.Equal(t, "$3.10", FormatMoney("", decimal.RequireFromString("-3.1")))
}

func TestFormatBalance(t *testing.T) {
	assert.Equal(t, "+$60.00", FormatBalance(decimal.NewFromInt(60)))
	assert.Equal(t, "+$0.00", FormatBalance(decimal.Zero))
	assert.Equal(t, "-$12.45", FormatBalance(decimal.RequireFromString("-12.45")))
}
