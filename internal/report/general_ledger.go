package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/cleared-dev/aoiro/internal/accounts"
	"github.com/cleared-dev/aoiro/internal/fiscal"
	"github.com/cleared-dev/aoiro/internal/model"
)

// VariousAccounts is the counter-account label of a compound entry.
const VariousAccounts = "諸口"

// LedgerRow is one entry's effect on the ledger account.
type LedgerRow struct {
	EntryID        string
	Date           time.Time
	Vendor         string
	Description    string
	CounterAccount string
	Debit          int64
	Credit         int64
	Balance        int64 // running balance after this entry
}

// GeneralLedgerReport is the chronological history of one account.
type GeneralLedgerReport struct {
	FiscalYear     int
	Account        model.Account
	OpeningBalance int64
	Rows           []LedgerRow
	DebitTotal     int64
	CreditTotal    int64
	ClosingBalance int64
}

// GeneralLedger lists the entries of a fiscal year that touch code, ordered by
// date with creation time as tiebreak, and carries a running balance seeded
// from opening. A code missing from the chart is an error wrapping
// accounts.ErrUnknownAccount.
func GeneralLedger(entries []model.JournalEntry, accts []model.Account, code string, opening int64, year int) (GeneralLedgerReport, error) {
	chart := NewChart(accts)
	acct, ok := chart[code]
	if !ok {
		return GeneralLedgerReport{}, fmt.Errorf("ledger for %s: %w", code, accounts.ErrUnknownAccount)
	}

	var touching []model.JournalEntry
	for _, e := range fiscal.Entries(entries, year) {
		if e.Touches(code) {
			touching = append(touching, e)
		}
	}
	sort.SliceStable(touching, func(i, j int) bool {
		a, b := touching[i], touching[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})

	report := GeneralLedgerReport{
		FiscalYear:     year,
		Account:        acct,
		OpeningBalance: opening,
		ClosingBalance: opening,
	}
	balance := opening
	for _, e := range touching {
		row := LedgerRow{
			EntryID:        e.ID,
			Date:           e.Date,
			Vendor:         e.Vendor,
			Description:    e.Description,
			CounterAccount: counterAccount(e, code, chart),
		}
		for _, l := range e.Lines {
			if l.AccountCode != code {
				continue
			}
			if l.Side == model.SideDebit {
				row.Debit += l.Amount
			} else {
				row.Credit += l.Amount
			}
			balance += Delta(acct.Type, l)
		}
		row.Balance = balance
		report.DebitTotal += row.Debit
		report.CreditTotal += row.Credit
		report.Rows = append(report.Rows, row)
	}
	report.ClosingBalance = balance
	return report, nil
}

// counterAccount names the single account on the other side of the entry
// from code, or VariousAccounts when several accounts sit there. Lines on the
// same side as code are ignored unless code posts to both sides. Unknown codes
// are shown as-is.
func counterAccount(e model.JournalEntry, code string, chart Chart) string {
	var onDebit, onCredit bool
	for _, l := range e.Lines {
		if l.AccountCode != code {
			continue
		}
		if l.Side == model.SideDebit {
			onDebit = true
		} else {
			onCredit = true
		}
	}

	var other string
	for _, l := range e.Lines {
		if l.AccountCode == code || l.AccountCode == other {
			continue
		}
		if l.Side == model.SideDebit && !onCredit || l.Side == model.SideCredit && !onDebit {
			continue
		}
		if other != "" {
			return VariousAccounts
		}
		other = l.AccountCode
	}
	if acct, ok := chart[other]; ok {
		return acct.Name
	}
	return other
}
