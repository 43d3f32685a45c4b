// Package tax converts between tax-inclusive, tax-exclusive and tax amounts
// for Japanese consumption tax, and summarizes tax by category.
package tax

import (
	"math"

	"github.com/cleared-dev/aoiro/internal/model"
)

// Rate returns the rate in percent for a category; 0 for non-taxable ones.
func Rate(c model.TaxCategory) int {
	switch c {
	case model.TaxSales10, model.TaxPurchase10:
		return 10
	case model.TaxSales8, model.TaxPurchase8:
		return 8
	}
	return 0
}

// The conversions below are evaluated in float64 and truncated, matching the
// amounts printed on filed returns: 110000 at 10% is 99999 + 10001, not an
// even split. Keep the factor in its own variable so the arithmetic is not
// fused or folded.

func factor(rate int) float64 {
	return float64(1 + float64(rate)/100)
}

// Excluded returns floor(inclusive / (1 + rate/100)).
func Excluded(inclusive int64, rate int) int64 {
	if rate == 0 {
		return inclusive
	}
	f := factor(rate)
	return int64(math.Floor(float64(inclusive) / f))
}

// Amount returns the tax contained in an inclusive amount.
func Amount(inclusive int64, rate int) int64 {
	return inclusive - Excluded(inclusive, rate)
}

// Included returns floor(exclusive * (1 + rate/100)).
func Included(exclusive int64, rate int) int64 {
	if rate == 0 {
		return exclusive
	}
	f := factor(rate)
	return int64(math.Floor(float64(exclusive) * f))
}
