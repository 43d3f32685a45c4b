package depreciation

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/aoiro/internal/model"
)

// Statutory rates by useful life in years.
var (
	straightLineRates = map[int]string{
		2: "0.500", 3: "0.334", 4: "0.250", 5: "0.200", 6: "0.167",
		7: "0.143", 8: "0.125", 9: "0.112", 10: "0.100", 11: "0.091",
		12: "0.084", 13: "0.077", 14: "0.072", 15: "0.067", 16: "0.063",
		17: "0.059", 18: "0.056", 19: "0.053", 20: "0.050",
	}
	decliningBalanceRates = map[int]string{
		2: "1.000", 3: "0.667", 4: "0.500", 5: "0.400", 6: "0.333",
		7: "0.286", 8: "0.250", 9: "0.222", 10: "0.200",
	}
)

// DefaultRate returns the table rate for a useful life, or 1/life
// (straight-line) and 2/life (declining-balance) outside the table.
// A non-positive life has rate zero.
func DefaultRate(method model.DepreciationMethod, life int) decimal.Decimal {
	if life <= 0 {
		return decimal.Zero
	}
	table, numerator := straightLineRates, int64(1)
	if method == model.MethodDecliningBalance {
		table, numerator = decliningBalanceRates, 2
	}
	if s, ok := table[life]; ok {
		return decimal.RequireFromString(s)
	}
	return decimal.NewFromInt(numerator).DivRound(decimal.NewFromInt(int64(life)), 3)
}

// Rate is the asset's stored rate, or the default for its method and life.
func Rate(a model.FixedAsset) decimal.Decimal {
	if !a.Rate.IsZero() {
		return a.Rate
	}
	return DefaultRate(a.Method, a.UsefulLife)
}
