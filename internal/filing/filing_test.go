package filing

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/aoiro/internal/accounts"
	"github.com/cleared-dev/aoiro/internal/model"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func line(side model.Side, code string, amount int64) model.JournalLine {
	return model.JournalLine{Side: side, AccountCode: code, Amount: amount}
}

func entry(d time.Time, lines ...model.JournalLine) model.JournalEntry {
	return model.JournalEntry{Date: d, Lines: lines, CreatedAt: d}
}

func books() []model.JournalEntry {
	dr, cr := model.SideDebit, model.SideCredit
	return []model.JournalEntry{
		entry(date(2024, 1, 5), line(dr, "1002", 500000), line(cr, "3001", 500000)),
		entry(date(2024, 1, 31), line(dr, "1003", 330000), line(cr, "4001", 330000)),
		entry(date(2024, 2, 10), line(dr, "4001", 30000), line(cr, "1003", 30000)),
		entry(date(2024, 3, 1), line(dr, "5001", 44000), line(cr, "1002", 44000)),
		entry(date(2024, 3, 2), line(dr, "5006", 6000), line(cr, "1002", 6000)),
		entry(date(2024, 12, 20), line(dr, "1002", 800000), line(cr, "4001", 800000)),
		entry(date(2025, 1, 1), line(dr, "1002", 99), line(cr, "4001", 99)),
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(books(), accounts.DefaultChart(), 2024)

	assert.Equal(t, time.January, s.Months[0].Month)
	assert.Equal(t, int64(330000), s.Months[0].Sales)
	assert.Equal(t, int64(-30000), s.Months[1].Sales, "returns reduce the month")
	assert.Equal(t, int64(44000), s.Months[2].Purchases)
	assert.Equal(t, int64(6000), s.Months[2].Expenses)
	assert.Equal(t, int64(800000), s.Months[11].Sales)

	assert.Equal(t, int64(1100000), s.TotalSales)
	assert.Equal(t, int64(44000), s.TotalPurchases)
	assert.Equal(t, int64(6000), s.TotalExpenses)
}

func TestCompose(t *testing.T) {
	doc := Compose(Input{
		FiscalYear:          2024,
		BusinessName:        "あおいろ商店",
		Entries:             books(),
		Accounts:            accounts.DefaultChart(),
		BlueReturnDeduction: DefaultBlueReturnDeduction,
		Assets: []model.FixedAsset{{
			Name:            "laptop",
			AcquisitionDate: date(2024, 4, 1),
			AcquisitionCost: 200000,
			UsefulLife:      4,
			Method:          model.MethodStraightLine,
			Rate:            decimal.RequireFromString("0.25"),
			BusinessRatio:   100,
			Status:          model.AssetActive,
		}},
	})

	assert.Equal(t, int64(1050000), doc.IncomeBeforeDeduction)
	assert.Equal(t, int64(650000), doc.BlueReturnDeduction)
	assert.Equal(t, int64(400000), doc.Income)

	assert.Equal(t, int64(1100000), doc.Monthly.TotalSales)
	assert.Equal(t, int64(37500), doc.Depreciation.TotalDepreciation)

	assert.Equal(t, int64(1050000), doc.BalanceSheet.RetainedEarnings)
	assert.True(t, doc.BalanceSheet.Balanced())
}

func TestCompose_DeductionCappedAtIncome(t *testing.T) {
	in := Input{
		FiscalYear:          2024,
		Entries:             books()[:5],
		Accounts:            accounts.DefaultChart(),
		BlueReturnDeduction: DefaultBlueReturnDeduction,
	}
	doc := Compose(in)
	assert.Equal(t, int64(250000), doc.IncomeBeforeDeduction)
	assert.Equal(t, int64(250000), doc.BlueReturnDeduction)
	assert.Zero(t, doc.Income)

	in.Entries = []model.JournalEntry{
		entry(date(2024, 3, 2), line(model.SideDebit, "5006", 6000), line(model.SideCredit, "1002", 6000)),
	}
	doc = Compose(in)
	assert.Equal(t, int64(-6000), doc.IncomeBeforeDeduction)
	assert.Zero(t, doc.BlueReturnDeduction)
	assert.Equal(t, int64(-6000), doc.Income)
}

func TestWriteCSV(t *testing.T) {
	doc := Compose(Input{
		FiscalYear:          2024,
		BusinessName:        "あおいろ商店",
		OwnerName:           "青色 太郎",
		Entries:             books(),
		Accounts:            accounts.DefaultChart(),
		BlueReturnDeduction: 100000,
	})
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, doc))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "【2024年分 青色申告決算書】\n,屋号,あおいろ商店\n"))
	pages := []string{
		"【2024年 損益計算書】",
		"【青色申告特別控除】",
		"【2024年 月別売上(収入)金額及び仕入金額】",
		"【2024年 減価償却費の計算】",
		"【2024年 貸借対照表】",
	}
	last := -1
	for _, p := range pages {
		i := strings.Index(out, p)
		require.GreaterOrEqual(t, i, 0, p)
		assert.Greater(t, i, last, "%s out of order", p)
		last = i
	}
	assert.Contains(t, out, ",青色申告特別控除額,\"100,000\"\n,所得金額,\"950,000\"\n")
	assert.Contains(t, out, "2月,\"△30,000\",0,0\n")
	assert.Contains(t, out, "合計,\"1,100,000\",\"44,000\",\"6,000\"\n")
}
