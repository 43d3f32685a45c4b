package report

import (
	"github.com/cleared-dev/aoiro/internal/fiscal"
	"github.com/cleared-dev/aoiro/internal/model"
	"github.com/cleared-dev/aoiro/internal/tax"
)

// TaxRow is one taxable category of the consumption tax summary.
type TaxRow struct {
	Category  model.TaxCategory
	Label     string
	Rate      int
	Inclusive int64
	Taxable   int64 // tax-exclusive amount
	Tax       int64
}

// ConsumptionTaxReport summarizes consumption tax for a fiscal year.
type ConsumptionTaxReport struct {
	FiscalYear           int
	Sales                []TaxRow
	Purchases            []TaxRow
	TotalSalesTaxable    int64
	TotalSalesTax        int64
	TotalPurchaseTaxable int64
	TotalPurchaseTax     int64
	NetTaxPayable        int64

	// Reference only.
	ExemptSales         int64
	ExemptPurchases     int64
	OutOfScopeSales     int64
	OutOfScopePurchases int64
}

// TaxCategoryLabel returns the Japanese label of a tax category.
func TaxCategoryLabel(c model.TaxCategory) string {
	switch c {
	case model.TaxSales10:
		return "課税売上10%"
	case model.TaxSales8:
		return "課税売上8%(軽減)"
	case model.TaxPurchase10:
		return "課税仕入10%"
	case model.TaxPurchase8:
		return "課税仕入8%(軽減)"
	case model.TaxExempt:
		return "非課税"
	case model.TaxOutOfScope:
		return "不課税"
	case model.TaxNotApplied:
		return "対象外"
	}
	return string(c)
}

// ConsumptionTax builds the summary from every line of the fiscal year.
func ConsumptionTax(entries []model.JournalEntry, year int) ConsumptionTaxReport {
	s := tax.Summarize(fiscal.Lines(entries, year))

	r := ConsumptionTaxReport{
		FiscalYear:           year,
		TotalSalesTaxable:    s.TotalSalesExclusive,
		TotalSalesTax:        s.TotalSalesTax,
		TotalPurchaseTaxable: s.TotalPurchaseExclusive,
		TotalPurchaseTax:     s.TotalPurchaseTax,
		NetTaxPayable:        s.NetTaxPayable,
		ExemptSales:          s.ExemptSales,
		ExemptPurchases:      s.ExemptPurchases,
		OutOfScopeSales:      s.OutOfScopeSales,
		OutOfScopePurchases:  s.OutOfScopePurchases,
	}
	for _, c := range model.TaxCategories {
		ct := s.Category(c)
		if ct.Exclusive == 0 && ct.Tax == 0 {
			continue
		}
		row := TaxRow{
			Category:  c,
			Label:     TaxCategoryLabel(c),
			Rate:      ct.Rate,
			Inclusive: ct.Inclusive,
			Taxable:   ct.Exclusive,
			Tax:       ct.Tax,
		}
		if c.IsSales() {
			r.Sales = append(r.Sales, row)
		} else {
			r.Purchases = append(r.Purchases, row)
		}
	}
	return r
}
