// Package money formats amounts for report payloads. The engine keeps raw
// float64 values; rounding happens only here, at render time.
package money

import "github.com/shopspring/decimal"

// Format renders an amount in its shortest decimal form, without
// floating-point artifacts such as 400.40000000000003.
func Format(amount float64) string {
	return decimal.NewFromFloat(amount).String()
}

// Fixed2 renders an amount with exactly two decimal places.
func Fixed2(amount float64) string {
	return decimal.NewFromFloat(amount).StringFixed(2)
}

// WithCurrency renders "amount CUR", as transaction histories display
// transfer amounts.
func WithCurrency(amount float64, currency string) string {
	return Format(amount) + " " + currency
}
