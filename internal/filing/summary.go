package filing

import (
	"time"

	"github.com/cleared-dev/aoiro/internal/accounts"
	"github.com/cleared-dev/aoiro/internal/fiscal"
	"github.com/cleared-dev/aoiro/internal/model"
	"github.com/cleared-dev/aoiro/internal/report"
)

// MonthlyRow is one month of the annual summary.
type MonthlyRow struct {
	Month     time.Month
	Sales     int64
	Purchases int64
	Expenses  int64 // expenses other than purchases
}

// AnnualSummary buckets a year's sales, purchases and other expenses by month.
type AnnualSummary struct {
	FiscalYear     int
	Months         [12]MonthlyRow
	TotalSales     int64
	TotalPurchases int64
	TotalExpenses  int64
}

// Summarize builds the monthly summary. Amounts are signed balances, so
// returns posted in a month reduce that month's figure.
func Summarize(entries []model.JournalEntry, accts []model.Account, year int) AnnualSummary {
	chart := report.NewChart(accts)
	s := AnnualSummary{FiscalYear: year}
	for i := range s.Months {
		s.Months[i].Month = time.Month(i + 1)
	}

	for _, e := range fiscal.Entries(entries, year) {
		row := &s.Months[e.Date.Month()-1]
		for _, l := range e.Lines {
			acct, ok := chart[l.AccountCode]
			if !ok {
				continue
			}
			d := report.Delta(acct.Type, l)
			switch {
			case acct.Code == accounts.CodeSales:
				row.Sales += d
			case acct.Code == accounts.CodePurchases:
				row.Purchases += d
			case acct.Type == model.AccountTypeExpense:
				row.Expenses += d
			}
		}
	}

	for _, m := range s.Months {
		s.TotalSales += m.Sales
		s.TotalPurchases += m.Purchases
		s.TotalExpenses += m.Expenses
	}
	return s
}
