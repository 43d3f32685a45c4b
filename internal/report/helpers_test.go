package report

import (
	"time"

	"github.com/cleared-dev/aoiro/internal/accounts"
	"github.com/cleared-dev/aoiro/internal/model"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func debit(code string, amount int64) model.JournalLine {
	return model.JournalLine{Side: model.SideDebit, AccountCode: code, Amount: amount}
}

func credit(code string, amount int64) model.JournalLine {
	return model.JournalLine{Side: model.SideCredit, AccountCode: code, Amount: amount}
}

func taxed(l model.JournalLine, c model.TaxCategory) model.JournalLine {
	l.TaxCategory = c
	return l
}

func entry(id string, d time.Time, lines ...model.JournalLine) model.JournalEntry {
	return model.JournalEntry{ID: id, Date: d, Lines: lines, CreatedAt: d}
}

func chart() []model.Account {
	return accounts.DefaultChart()
}

// sampleBooks is a small but complete year: capital, a credit sale and its
// collection, an equipment purchase, apportioned rent, stock purchase, misc
// income and a long-term loan, plus one entry from the prior year.
func sampleBooks() []model.JournalEntry {
	rent := debit("5017", 30000)
	rent.Apportionment = model.AppliedSplit(100000, 30)
	draw := debit(accounts.CodeOwnerDraw, 70000)
	draw.Apportionment = model.GeneratedCounterpart()

	return []model.JournalEntry{
		entry("2024-01-001", date(2024, 1, 5),
			debit("1002", 1000000), debit("1001", 50000), credit("3001", 1050000)),
		entry("2024-06-001", date(2024, 6, 20),
			debit("1002", 110000), credit("1003", 110000)),
		entry("2024-03-001", date(2024, 3, 15),
			debit("1003", 110000), taxed(credit("4001", 110000), model.TaxSales10)),
		entry("2024-04-001", date(2024, 4, 1),
			debit("1009", 200000), credit("1002", 200000)),
		entry("2024-05-001", date(2024, 5, 10),
			rent, draw, credit("1002", 100000)),
		entry("2024-07-001", date(2024, 7, 1),
			taxed(debit("5001", 5500), model.TaxPurchase10), credit("1001", 5500)),
		entry("2024-08-001", date(2024, 8, 1),
			debit("1001", 1000), credit("4002", 1000)),
		entry("2024-09-001", date(2024, 9, 1),
			debit("1002", 500000), credit("2004", 500000)),
		entry("2023-12-001", date(2023, 12, 31),
			debit("1001", 99999), taxed(credit("4001", 99999), model.TaxSales10)),
	}
}
