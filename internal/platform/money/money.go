// Package money holds the monetary conventions shared by booking and
// settlement: amounts are exact decimals, never floats, and every stored
// amount must be expressible in the currency's minor unit (two fractional
// digits).
package money

import "github.com/shopspring/decimal"

// MinorUnitPlaces is the number of fractional digits in the minor unit.
const MinorUnitPlaces = 2

// Valid reports whether amt can be accepted as a payment amount: it must be
// non-negative and expressible in the minor unit. Trailing zeros beyond two
// places ("100.000") are fine; a real sub-minor-unit remainder is not.
func Valid(amt decimal.Decimal) bool {
	return !amt.IsNegative() && amt.Equal(amt.Round(MinorUnitPlaces))
}

// Zero is a 2-decimal-place zero, used as the identity for share sums.
func Zero() decimal.Decimal {
	return decimal.New(0, -MinorUnitPlaces)
}
