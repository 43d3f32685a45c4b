package report

import (
	"io"
	"strconv"
)

const dateLayout = "2006-01-02"

// WriteTrialBalanceCSV exports a trial balance grouped by account type.
func WriteTrialBalanceCSV(w io.Writer, r TrialBalanceReport) error {
	s := NewSheet(w)
	s.Title(strconv.Itoa(r.FiscalYear) + "年 合計残高試算表")
	s.Row("code", "name", "借方合計", "貸方合計", "借方残高", "貸方残高")
	s.Blank()
	for _, g := range r.Grouped() {
		s.Title(g.Label)
		for _, row := range g.Rows {
			trialBalanceRow(s, row)
		}
		s.Subtotal(g.Label+"計", g.DebitTotal, g.CreditTotal, g.DebitBalance, g.CreditBalance)
		s.Blank()
	}

	var unknown []TrialBalanceRow
	for _, row := range r.Rows {
		if !row.Type.Valid() {
			unknown = append(unknown, row)
		}
	}
	if len(unknown) > 0 {
		s.Title("未登録科目")
		for _, row := range unknown {
			trialBalanceRow(s, row)
		}
		s.Blank()
	}

	s.Subtotal("合計", r.TotalDebit, r.TotalCredit)
	return s.Close()
}

func trialBalanceRow(s *Sheet, row TrialBalanceRow) {
	s.Row(row.Code, row.Name,
		FormatAmount(row.DebitTotal),
		FormatAmount(row.CreditTotal),
		FormatAmount(row.DebitBalance),
		FormatAmount(row.CreditBalance),
	)
}

// WriteGeneralLedgerCSV exports the ledger of one account.
func WriteGeneralLedgerCSV(w io.Writer, r GeneralLedgerReport) error {
	s := NewSheet(w)
	s.Title(strconv.Itoa(r.FiscalYear) + "年 総勘定元帳 " + r.Account.Code + " " + r.Account.Name)
	s.Row("date", "相手科目", "摘要", "借方", "貸方", "残高")
	s.Subtotal("前期繰越", r.OpeningBalance)
	for _, row := range r.Rows {
		s.Row(row.Date.Format(dateLayout),
			row.CounterAccount,
			ledgerDescription(row),
			FormatAmount(row.Debit),
			FormatAmount(row.Credit),
			FormatAmount(row.Balance),
		)
	}
	s.Row("", "合計", "", FormatAmount(r.DebitTotal), FormatAmount(r.CreditTotal), "")
	s.Subtotal("次期繰越", r.ClosingBalance)
	s.Blank()
	return s.Close()
}

func ledgerDescription(row LedgerRow) string {
	switch {
	case row.Vendor == "":
		return row.Description
	case row.Description == "":
		return row.Vendor
	}
	return row.Vendor + " " + row.Description
}

// WriteProfitAndLossCSV exports the income statement.
func WriteProfitAndLossCSV(w io.Writer, r ProfitAndLossReport) error {
	s := NewSheet(w)
	s.Title(strconv.Itoa(r.FiscalYear) + "年 損益計算書")
	s.Blank()
	s.Section(r.Sales)
	s.Section(r.CostOfSales)
	s.Subtotal("売上総利益", r.GrossProfit)
	s.Blank()
	s.Section(r.OperatingExpenses)
	s.Subtotal("営業利益", r.OperatingIncome)
	s.Blank()
	s.Section(r.OtherRevenue)
	s.Subtotal("当期純利益", r.NetIncome)
	return s.Close()
}

// WriteBalanceSheetCSV exports the balance sheet.
func WriteBalanceSheetCSV(w io.Writer, r BalanceSheetReport) error {
	s := NewSheet(w)
	s.Title(strconv.Itoa(r.FiscalYear) + "年 貸借対照表")
	s.Blank()
	s.Section(r.CurrentAssets)
	s.Section(r.FixedAssets)
	s.Subtotal("資産合計", r.TotalAssets)
	s.Blank()
	s.Section(r.CurrentLiabilities)
	s.Section(r.FixedLiabilities)
	s.Subtotal("負債合計", r.TotalLiabilities)
	s.Blank()
	s.Title(r.Equity.Label)
	for _, it := range r.Equity.Items {
		s.Item(it.Code, it.Name, it.Amount)
	}
	s.Subtotal("当期純利益", r.RetainedEarnings)
	s.Subtotal(r.Equity.Label+"合計", r.TotalEquity)
	s.Blank()
	s.Subtotal("負債・純資産合計", r.TotalLiabilities+r.TotalEquity)
	return s.Close()
}

// WriteConsumptionTaxCSV exports the consumption tax summary.
func WriteConsumptionTaxCSV(w io.Writer, r ConsumptionTaxReport) error {
	s := NewSheet(w)
	s.Title(strconv.Itoa(r.FiscalYear) + "年 消費税集計表")
	s.Row("category", "name", "課税標準額", "消費税額")
	s.Blank()

	s.Title("課税売上")
	for _, row := range r.Sales {
		taxRow(s, row)
	}
	s.Subtotal("課税売上合計", r.TotalSalesTaxable, r.TotalSalesTax)
	s.Blank()

	s.Title("課税仕入")
	for _, row := range r.Purchases {
		taxRow(s, row)
	}
	s.Subtotal("課税仕入合計", r.TotalPurchaseTaxable, r.TotalPurchaseTax)
	s.Blank()

	s.Subtotal("納付税額", r.NetTaxPayable)
	s.Blank()

	s.Title("参考")
	s.Subtotal("非課税売上", r.ExemptSales)
	s.Subtotal("非課税仕入", r.ExemptPurchases)
	s.Subtotal("不課税売上", r.OutOfScopeSales)
	s.Subtotal("不課税仕入", r.OutOfScopePurchases)
	s.Blank()
	return s.Close()
}

func taxRow(s *Sheet, row TaxRow) {
	s.Row(string(row.Category), row.Label, FormatAmount(row.Taxable), FormatAmount(row.Tax))
}
