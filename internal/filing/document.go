// Package filing assembles the four-page blue-return financial statement
// (青色申告決算書) from the journal, the chart of accounts and the
// fixed-asset register.
package filing

import (
	"github.com/cleared-dev/aoiro/internal/depreciation"
	"github.com/cleared-dev/aoiro/internal/model"
	"github.com/cleared-dev/aoiro/internal/report"
)

// DefaultBlueReturnDeduction is the special deduction for e-filed,
// double-entry books.
const DefaultBlueReturnDeduction = 650000

// Input is everything the composer reads.
type Input struct {
	FiscalYear          int
	BusinessName        string
	OwnerName           string
	Entries             []model.JournalEntry
	Accounts            []model.Account
	Assets              []model.FixedAsset
	BlueReturnDeduction int64
}

// Document is the composed return. Page 1 is the income statement with the
// special deduction, page 2 the monthly summary, page 3 the depreciation
// schedule and page 4 the balance sheet.
type Document struct {
	FiscalYear   int
	BusinessName string
	OwnerName    string

	ProfitAndLoss         report.ProfitAndLossReport
	IncomeBeforeDeduction int64
	BlueReturnDeduction   int64
	Income                int64

	Monthly      AnnualSummary
	Depreciation depreciation.Schedule
	BalanceSheet report.BalanceSheetReport
}

// Compose builds the document. The deduction is capped at the year's income
// and never makes it negative; the balance sheet receives the book net
// income, before the deduction.
func Compose(in Input) Document {
	pl := report.ProfitAndLoss(in.Entries, in.Accounts, in.FiscalYear)
	deduction := min(in.BlueReturnDeduction, max(pl.NetIncome, 0))

	return Document{
		FiscalYear:            in.FiscalYear,
		BusinessName:          in.BusinessName,
		OwnerName:             in.OwnerName,
		ProfitAndLoss:         pl,
		IncomeBeforeDeduction: pl.NetIncome,
		BlueReturnDeduction:   deduction,
		Income:                pl.NetIncome - deduction,
		Monthly:               Summarize(in.Entries, in.Accounts, in.FiscalYear),
		Depreciation:          depreciation.Build(in.Assets, in.FiscalYear),
		BalanceSheet:          report.BalanceSheet(in.Entries, in.Accounts, in.FiscalYear, pl.NetIncome),
	}
}
