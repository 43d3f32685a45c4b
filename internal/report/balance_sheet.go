package report

import (
	"github.com/cleared-dev/aoiro/internal/accounts"
	"github.com/cleared-dev/aoiro/internal/fiscal"
	"github.com/cleared-dev/aoiro/internal/model"
)

var (
	fixedAssetCodes = newCodeSet(
		accounts.CodeBuildings,
		accounts.CodeVehicles,
		accounts.CodeFixtures,
		accounts.CodeLongTermDeposits,
	)
	fixedLiabilityCodes = newCodeSet(accounts.CodeLongTermLoans)
)

// BalanceSheetReport is the year-end position.
type BalanceSheetReport struct {
	FiscalYear         int
	CurrentAssets      Section
	FixedAssets        Section
	CurrentLiabilities Section
	FixedLiabilities   Section
	Equity             Section
	RetainedEarnings   int64
	TotalAssets        int64
	TotalLiabilities   int64
	TotalEquity        int64
}

// Balanced reports whether assets equal liabilities plus equity.
func (r BalanceSheetReport) Balanced() bool {
	return r.TotalAssets == r.TotalLiabilities+r.TotalEquity
}

// BalanceSheet classifies asset, liability and equity balances of the fiscal
// year. retainedEarnings is the year's net income as reported by
// ProfitAndLoss; it is added to equity rather than recomputed here.
func BalanceSheet(entries []model.JournalEntry, accts []model.Account, year int, retainedEarnings int64) BalanceSheetReport {
	chart := NewChart(accts)
	balances := chart.Balances(fiscal.Entries(entries, year))

	r := BalanceSheetReport{
		FiscalYear:         year,
		CurrentAssets:      Section{Label: "流動資産"},
		FixedAssets:        Section{Label: "固定資産"},
		CurrentLiabilities: Section{Label: "流動負債"},
		FixedLiabilities:   Section{Label: "固定負債"},
		Equity:             Section{Label: "純資産"},
		RetainedEarnings:   retainedEarnings,
	}
	for _, code := range sortedCodes(balances) {
		amount := balances[code]
		if amount == 0 {
			continue
		}
		acct := chart[code]
		switch acct.Type {
		case model.AccountTypeAsset:
			if fixedAssetCodes[code] {
				r.FixedAssets.add(acct, amount)
			} else {
				r.CurrentAssets.add(acct, amount)
			}
		case model.AccountTypeLiability:
			if fixedLiabilityCodes[code] {
				r.FixedLiabilities.add(acct, amount)
			} else {
				r.CurrentLiabilities.add(acct, amount)
			}
		case model.AccountTypeEquity:
			r.Equity.add(acct, amount)
		}
	}

	r.TotalAssets = r.CurrentAssets.Total + r.FixedAssets.Total
	r.TotalLiabilities = r.CurrentLiabilities.Total + r.FixedLiabilities.Total
	r.TotalEquity = r.Equity.Total + r.RetainedEarnings
	return r
}
