package report

import (
	"sort"

	"github.com/cleared-dev/aoiro/internal/fiscal"
	"github.com/cleared-dev/aoiro/internal/model"
)

// TrialBalanceRow is one account of the trial balance. Exactly one of
// DebitBalance and CreditBalance is non-zero unless the account nets to zero.
type TrialBalanceRow struct {
	Code          string
	Name          string
	Type          model.AccountType // empty for codes missing from the chart
	DebitTotal    int64
	CreditTotal   int64
	DebitBalance  int64
	CreditBalance int64
}

// Balance is the row's balance signed by its type's normal side.
func (r TrialBalanceRow) Balance() int64 {
	if r.Type.DebitNormal() {
		return r.DebitBalance - r.CreditBalance
	}
	return r.CreditBalance - r.DebitBalance
}

// TrialBalanceReport lists every account posted to in a fiscal year.
type TrialBalanceReport struct {
	FiscalYear  int
	Rows        []TrialBalanceRow
	TotalDebit  int64
	TotalCredit int64
	IsBalanced  bool
}

// TrialBalanceGroup is the subtotal of one account type.
type TrialBalanceGroup struct {
	Type          model.AccountType
	Label         string
	Rows          []TrialBalanceRow
	DebitTotal    int64
	CreditTotal   int64
	DebitBalance  int64
	CreditBalance int64
}

// TypeLabel returns the Japanese heading of an account type.
func TypeLabel(t model.AccountType) string {
	switch t {
	case model.AccountTypeAsset:
		return "資産"
	case model.AccountTypeLiability:
		return "負債"
	case model.AccountTypeEquity:
		return "純資産"
	case model.AccountTypeRevenue:
		return "収益"
	case model.AccountTypeExpense:
		return "費用"
	}
	return string(t)
}

// TrialBalance sums debits and credits per account code without netting.
// Codes missing from the chart still get a row, with an empty name and type,
// so the totals always reflect every posted line.
func TrialBalance(entries []model.JournalEntry, accounts []model.Account, year int) TrialBalanceReport {
	chart := NewChart(accounts)
	rows := make(map[string]*TrialBalanceRow)

	for _, e := range fiscal.Entries(entries, year) {
		for _, l := range e.Lines {
			row, ok := rows[l.AccountCode]
			if !ok {
				acct := chart[l.AccountCode]
				row = &TrialBalanceRow{Code: l.AccountCode, Name: acct.Name, Type: acct.Type}
				rows[l.AccountCode] = row
			}
			if l.Side == model.SideDebit {
				row.DebitTotal += l.Amount
			} else {
				row.CreditTotal += l.Amount
			}
		}
	}

	report := TrialBalanceReport{FiscalYear: year}
	for _, row := range rows {
		row.DebitBalance = max(row.DebitTotal-row.CreditTotal, 0)
		row.CreditBalance = max(row.CreditTotal-row.DebitTotal, 0)
		report.TotalDebit += row.DebitTotal
		report.TotalCredit += row.CreditTotal
		report.Rows = append(report.Rows, *row)
	}
	sort.Slice(report.Rows, func(i, j int) bool { return report.Rows[i].Code < report.Rows[j].Code })
	report.IsBalanced = report.TotalDebit == report.TotalCredit
	return report
}

// Grouped buckets rows by account type in statement order. Empty groups and
// rows with an unknown type are omitted.
func (r TrialBalanceReport) Grouped() []TrialBalanceGroup {
	var groups []TrialBalanceGroup
	for _, t := range model.AccountTypes {
		g := TrialBalanceGroup{Type: t, Label: TypeLabel(t)}
		for _, row := range r.Rows {
			if row.Type != t {
				continue
			}
			g.Rows = append(g.Rows, row)
			g.DebitTotal += row.DebitTotal
			g.CreditTotal += row.CreditTotal
			g.DebitBalance += row.DebitBalance
			g.CreditBalance += row.CreditBalance
		}
		if len(g.Rows) > 0 {
			groups = append(groups, g)
		}
	}
	return groups
}
