package utils

import "github.com/shopspring/decimal"

// DisplayPrecision is the number of fraction digits shown for amounts.
const DisplayPrecision = 2

// FormatWithPrecision formats an amount with the given number of fraction digits, padding with zeros.
// Example: 12.5 with precision 2 returns "12.50"
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}

// FormatMoney renders an amount the way the dashboard shows it: sign, dollar symbol, two decimals.
// Example: FormatMoney("-", 40) returns "-$40.00"; the magnitude is always used.
func FormatMoney(sign string, amount decimal.Decimal) string {
	return sign + "$" + FormatWithPrecision(amount.Abs(), DisplayPrecision)
}

// FormatBalance renders a signed balance, e.g. "+$60.00" or "-$12.45".
func FormatBalance(balance decimal.Decimal) string {
	if balance.IsNegative() {
		return FormatMoney("-", balance)
	}
	return FormatMoney("+", balance)
}
