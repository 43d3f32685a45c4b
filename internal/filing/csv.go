package filing

import (
	"fmt"
	"io"
	"strconv"

	"github.com/cleared-dev/aoiro/internal/depreciation"
	"github.com/cleared-dev/aoiro/internal/report"
)

// WriteSummaryCSV exports the monthly summary.
func WriteSummaryCSV(w io.Writer, s AnnualSummary) error {
	sh := report.NewSheet(w)
	sh.Title(strconv.Itoa(s.FiscalYear) + "年 月別売上(収入)金額及び仕入金額")
	sh.Row("month", "売上(収入)金額", "仕入金額", "経費")
	for _, m := range s.Months {
		sh.Row(strconv.Itoa(int(m.Month))+"月",
			report.FormatAmount(m.Sales),
			report.FormatAmount(m.Purchases),
			report.FormatAmount(m.Expenses),
		)
	}
	sh.Row("合計",
		report.FormatAmount(s.TotalSales),
		report.FormatAmount(s.TotalPurchases),
		report.FormatAmount(s.TotalExpenses),
	)
	sh.Blank()
	return sh.Close()
}

// WriteCSV exports all four pages of the document in order.
func WriteCSV(w io.Writer, d Document) error {
	cover := report.NewSheet(w)
	cover.Title(strconv.Itoa(d.FiscalYear) + "年分 青色申告決算書")
	cover.Row("", "屋号", d.BusinessName)
	cover.Row("", "氏名", d.OwnerName)
	cover.Blank()
	if err := cover.Close(); err != nil {
		return err
	}

	if err := report.WriteProfitAndLossCSV(w, d.ProfitAndLoss); err != nil {
		return fmt.Errorf("page 1: %w", err)
	}
	deduction := report.NewSheet(w)
	deduction.Blank()
	deduction.Title("青色申告特別控除")
	deduction.Subtotal("青色申告特別控除前の所得金額", d.IncomeBeforeDeduction)
	deduction.Subtotal("青色申告特別控除額", d.BlueReturnDeduction)
	deduction.Subtotal("所得金額", d.Income)
	deduction.Blank()
	if err := deduction.Close(); err != nil {
		return fmt.Errorf("page 1: %w", err)
	}

	if err := WriteSummaryCSV(w, d.Monthly); err != nil {
		return fmt.Errorf("page 2: %w", err)
	}
	if err := depreciation.WriteCSV(w, d.Depreciation); err != nil {
		return fmt.Errorf("page 3: %w", err)
	}
	if err := report.WriteBalanceSheetCSV(w, d.BalanceSheet); err != nil {
		return fmt.Errorf("page 4: %w", err)
	}
	return nil
}
