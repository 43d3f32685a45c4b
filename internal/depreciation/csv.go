package depreciation

import (
	"io"
	"strconv"

	"github.com/cleared-dev/aoiro/internal/model"
	"github.com/cleared-dev/aoiro/internal/report"
)

// MethodLabel returns the Japanese name of a depreciation method.
func MethodLabel(m model.DepreciationMethod) string {
	switch m {
	case model.MethodStraightLine:
		return "定額法"
	case model.MethodDecliningBalance:
		return "定率法"
	}
	return string(m)
}

var header = []string{"name", "category", "取得年月", "取得価額", "償却方法", "耐用年数", "償却率",
	"償却月数", "期首帳簿価額", "本年分の償却費", "事業専用割合", "必要経費算入額", "期末帳簿価額"}

// Columns of header that carry totals.
const (
	colDepreciation = 9
	colDeduction    = 11
)

// WriteCSV exports the schedule in the layout of the depreciation page of the
// annual return.
func WriteCSV(w io.Writer, s Schedule) error {
	sh := report.NewSheet(w)
	sh.Title(strconv.Itoa(s.FiscalYear) + "年 減価償却費の計算")
	sh.Row(header...)
	for _, l := range s.Lines {
		a := l.Asset
		sh.Row(a.Name,
			a.Category,
			a.AcquisitionDate.Format("2006-01"),
			report.FormatAmount(a.AcquisitionCost),
			MethodLabel(a.Method),
			strconv.Itoa(a.UsefulLife),
			l.Rate.StringFixed(3),
			strconv.Itoa(l.Months)+"/12",
			report.FormatAmount(l.OpeningBookValue),
			report.FormatAmount(l.Depreciation),
			strconv.Itoa(a.BusinessRatio)+"%",
			report.FormatAmount(l.BusinessDeduction),
			report.FormatAmount(l.ClosingBookValue),
		)
	}
	total := make([]string, len(header))
	total[0] = "合計"
	total[colDepreciation] = report.FormatAmount(s.TotalDepreciation)
	total[colDeduction] = report.FormatAmount(s.TotalBusinessDeduction)
	sh.Row(total...)
	sh.Blank()
	return sh.Close()
}
