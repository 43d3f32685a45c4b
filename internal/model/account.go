package model

import "fmt"

// AccountType classifies accounts in the chart of accounts.
type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeRevenue   AccountType = "revenue"
	AccountTypeExpense   AccountType = "expense"
)

// AccountTypes lists every type in statement order.
var AccountTypes = []AccountType{
	AccountTypeAsset,
	AccountTypeLiability,
	AccountTypeEquity,
	AccountTypeRevenue,
	AccountTypeExpense,
}

// Digit returns the leading code digit for the type (1 asset .. 5 expense), or 0.
func (t AccountType) Digit() byte {
	switch t {
	case AccountTypeAsset:
		return '1'
	case AccountTypeLiability:
		return '2'
	case AccountTypeEquity:
		return '3'
	case AccountTypeRevenue:
		return '4'
	case AccountTypeExpense:
		return '5'
	}
	return 0
}

// DebitNormal reports whether a debit increases balances of this type.
// Assets and expenses are debit-normal; liabilities, equity and revenue are
// credit-normal.
func (t AccountType) DebitNormal() bool {
	return t == AccountTypeAsset || t == AccountTypeExpense
}

// Valid reports whether t is one of the five account types.
func (t AccountType) Valid() bool {
	return t.Digit() != 0
}

// TypeFromCode derives the account type from digit 1 of a code.
func TypeFromCode(code string) (AccountType, bool) {
	if len(code) == 0 {
		return "", false
	}
	for _, t := range AccountTypes {
		if t.Digit() == code[0] {
			return t, true
		}
	}
	return "", false
}

// Code provenance digits (digit 2).
const (
	ProvenanceSystem byte = '0'
	ProvenanceUser   byte = '1'
)

// IsSystemCode reports whether a code belongs to the seed chart.
func IsSystemCode(code string) bool {
	return len(code) == 4 && code[1] == ProvenanceSystem
}

// FormatCode builds a 4-digit code from type, provenance and sequence 0..99.
func FormatCode(t AccountType, provenance byte, seq int) string {
	return fmt.Sprintf("%c%c%02d", t.Digit(), provenance, seq)
}

// Account represents a row in chart-of-accounts.csv.
type Account struct {
	Code               string
	Name               string
	Type               AccountType
	DefaultTaxCategory TaxCategory
	BusinessRatio      int // default apportionment ratio 0..100; 0 = none
}

// IsSystem is derived from the code shape, never stored.
func (a Account) IsSystem() bool {
	return IsSystemCode(a.Code)
}
