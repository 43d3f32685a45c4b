package journal

import (
	"time"

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
