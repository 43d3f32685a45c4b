package report

import (
	"github.com/cleared-dev/aoiro/internal/accounts"
	"github.com/cleared-dev/aoiro/internal/fiscal"
	"github.com/cleared-dev/aoiro/internal/model"
)

var (
	salesCodes       = newCodeSet(accounts.CodeSales)
	costOfSalesCodes = newCodeSet(accounts.CodePurchases)
)

// ProfitAndLossReport is the income statement of a fiscal year.
type ProfitAndLossReport struct {
	FiscalYear        int
	Sales             Section
	CostOfSales       Section
	OperatingExpenses Section
	OtherRevenue      Section
	GrossProfit       int64
	OperatingIncome   int64
	NetIncome         int64
}

// ProfitAndLoss classifies revenue and expense balances. Revenue splits into
// sales and other revenue, expenses into cost of sales and operating
// expenses, by fixed code lists. Zero balances are dropped.
//
// Amounts are signed balances on the account's normal side rather than
// absolute values: a contra balance, such as a refund posted to a revenue
// account, shows as negative (rendered with △) and reduces its section.
// NetIncome therefore always equals revenue minus expenses, which keeps the
// balance sheet in balance.
func ProfitAndLoss(entries []model.JournalEntry, accts []model.Account, year int) ProfitAndLossReport {
	chart := NewChart(accts)
	balances := chart.Balances(fiscal.Entries(entries, year))

	r := ProfitAndLossReport{
		FiscalYear:        year,
		Sales:             Section{Label: "売上高"},
		CostOfSales:       Section{Label: "売上原価"},
		OperatingExpenses: Section{Label: "経費"},
		OtherRevenue:      Section{Label: "その他の収入"},
	}
	for _, code := range sortedCodes(balances) {
		amount := balances[code]
		if amount == 0 {
			continue
		}
		acct := chart[code]
		switch acct.Type {
		case model.AccountTypeRevenue:
			if salesCodes[code] {
				r.Sales.add(acct, amount)
			} else {
				r.OtherRevenue.add(acct, amount)
			}
		case model.AccountTypeExpense:
			if costOfSalesCodes[code] {
				r.CostOfSales.add(acct, amount)
			} else {
				r.OperatingExpenses.add(acct, amount)
			}
		}
	}

	r.GrossProfit = r.Sales.Total - r.CostOfSales.Total
	r.OperatingIncome = r.GrossProfit - r.OperatingExpenses.Total
	r.NetIncome = r.OperatingIncome + r.OtherRevenue.Total
	return r
}
