// Package report derives financial statements from journal entries. Every
// generator is a pure function of its inputs and takes the fiscal year
// explicitly.
package report

import (
	"github.com/cleared-dev/aoiro/internal/model"
)

// Chart indexes accounts by code.
type Chart map[string]model.Account

// NewChart builds a Chart from a slice of accounts.
func NewChart(accounts []model.Account) Chart {
	c := make(Chart, len(accounts))
	for _, a := range accounts {
		c[a.Code] = a
	}
	return c
}

// Delta is the signed effect of a line on a balance of type t: debits raise
// debit-normal accounts (assets, expenses) and lower the others.
func Delta(t model.AccountType, l model.JournalLine) int64 {
	if (l.Side == model.SideDebit) == t.DebitNormal() {
		return l.Amount
	}
	return -l.Amount
}

// Balances returns the signed balance of every known account touched by the
// entries. Lines posted to codes missing from the chart are skipped.
func Balances(entries []model.JournalEntry, accounts []model.Account) map[string]int64 {
	return NewChart(accounts).Balances(entries)
}

// Balances is Balances over an existing index.
func (c Chart) Balances(entries []model.JournalEntry) map[string]int64 {
	balances := make(map[string]int64)
	for _, e := range entries {
		for _, l := range e.Lines {
			acct, ok := c[l.AccountCode]
			if !ok {
				continue
			}
			balances[l.AccountCode] += Delta(acct.Type, l)
		}
	}
	return balances
}
