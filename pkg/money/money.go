// Package money renders decimal amounts in the fixed receipt currency format.
package money

import "github.com/shopspring/decimal"

// Format renders amount as "$" followed by the amount with exactly two
// fraction digits, e.g. 0.99 -> "$0.99" and 20 -> "$20.00".
//
// Amounts are rounded half away from zero: 0.075 -> "$0.08", 0.065 -> "$0.07".
func Format(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}
