package tax

import "github.com/cleared-dev/aoiro/internal/model"

// CategoryTotal holds the subtotals of one taxable category.
type CategoryTotal struct {
	Category  model.TaxCategory
	Rate      int
	Inclusive int64
	Exclusive int64
	Tax       int64
}

// Summary aggregates consumption tax over a set of lines.
type Summary struct {
	Categories map[model.TaxCategory]CategoryTotal

	TotalSalesInclusive    int64
	TotalSalesExclusive    int64
	TotalSalesTax          int64
	TotalPurchaseInclusive int64
	TotalPurchaseExclusive int64
	TotalPurchaseTax       int64
	NetTaxPayable          int64

	// Reference only; never part of NetTaxPayable.
	ExemptSales         int64
	ExemptPurchases     int64
	OutOfScopeSales     int64
	OutOfScopePurchases int64
}

// Category returns the subtotal for c, zero-valued if no line used it.
func (s Summary) Category(c model.TaxCategory) CategoryTotal {
	if ct, ok := s.Categories[c]; ok {
		return ct
	}
	return CategoryTotal{Category: c, Rate: Rate(c)}
}

// Summarize totals lines by tax category.
//
// Sales categories count credits positive and debits (returns, discounts)
// negative; purchase categories the reverse. Exempt and out-of-scope lines are
// split into sales or purchases by side. The exclusive and tax figures of a
// category are derived from its inclusive total, so per-line truncation does
// not accumulate. Lines without a category are ignored.
func Summarize(lines []model.JournalLine) Summary {
	inclusive := make(map[model.TaxCategory]int64)
	var s Summary

	for _, l := range lines {
		c := l.TaxCategory
		switch {
		case c.IsSales():
			inclusive[c] += signed(l, model.SideCredit)
		case c.IsPurchase():
			inclusive[c] += signed(l, model.SideDebit)
		case c == model.TaxExempt:
			if l.Side == model.SideCredit {
				s.ExemptSales += l.Amount
			} else {
				s.ExemptPurchases += l.Amount
			}
		case c == model.TaxOutOfScope:
			if l.Side == model.SideCredit {
				s.OutOfScopeSales += l.Amount
			} else {
				s.OutOfScopePurchases += l.Amount
			}
		}
	}

	s.Categories = make(map[model.TaxCategory]CategoryTotal, len(inclusive))
	for c, amt := range inclusive {
		rate := Rate(c)
		ct := CategoryTotal{
			Category:  c,
			Rate:      rate,
			Inclusive: amt,
			Exclusive: excludedSigned(amt, rate),
		}
		ct.Tax = ct.Inclusive - ct.Exclusive
		s.Categories[c] = ct

		if c.IsSales() {
			s.TotalSalesInclusive += ct.Inclusive
			s.TotalSalesExclusive += ct.Exclusive
			s.TotalSalesTax += ct.Tax
		} else {
			s.TotalPurchaseInclusive += ct.Inclusive
			s.TotalPurchaseExclusive += ct.Exclusive
			s.TotalPurchaseTax += ct.Tax
		}
	}
	s.NetTaxPayable = s.TotalSalesTax - s.TotalPurchaseTax
	return s
}

func signed(l model.JournalLine, positive model.Side) int64 {
	if l.Side == positive {
		return l.Amount
	}
	return -l.Amount
}

// excludedSigned truncates toward zero for net-negative totals.
func excludedSigned(amt int64, rate int) int64 {
	if amt < 0 {
		return -Excluded(-amt, rate)
	}
	return Excluded(amt, rate)
}
