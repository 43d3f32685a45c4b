package model

// TaxCategory is the consumption-tax classification of a journal line.
type TaxCategory string

const (
	TaxNone       TaxCategory = ""
	TaxSales10    TaxCategory = "sales_10"
	TaxSales8     TaxCategory = "sales_8"
	TaxPurchase10 TaxCategory = "purchase_10"
	TaxPurchase8  TaxCategory = "purchase_8"
	TaxExempt     TaxCategory = "exempt"
	TaxOutOfScope TaxCategory = "out_of_scope"
	TaxNotApplied TaxCategory = "na"
)

// TaxCategories lists every category in report order.
var TaxCategories = []TaxCategory{
	TaxSales10,
	TaxSales8,
	TaxPurchase10,
	TaxPurchase8,
	TaxExempt,
	TaxOutOfScope,
	TaxNotApplied,
}

// IsSales reports whether c is a taxable sales category.
func (c TaxCategory) IsSales() bool {
	return c == TaxSales10 || c == TaxSales8
}

// IsPurchase reports whether c is a taxable purchase category.
func (c TaxCategory) IsPurchase() bool {
	return c == TaxPurchase10 || c == TaxPurchase8
}

// Valid reports whether c is empty or a known category.
func (c TaxCategory) Valid() bool {
	if c == TaxNone {
		return true
	}
	for _, k := range TaxCategories {
		if k == c {
			return true
		}
	}
	return false
}
