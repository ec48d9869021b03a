package utils

import (
	"github.com/shopspring/decimal"
)

// FormatUSD renders a money amount the way it appears on bills and
// receipts, always with two fractional digits.
// Example: 9 -> "$9.00"
func FormatUSD(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}
