package accounts

import "github.com/cleared-dev/aoiro/internal/model"

// Seed account codes referenced by the engine.
const (
	CodeCash             = "1001"
	CodeBankDeposit      = "1002"
	CodeReceivable       = "1003"
	CodeBuildings        = "1007"
	CodeVehicles         = "1008"
	CodeFixtures         = "1009"
	CodeLongTermDeposits = "1010"
	CodeLongTermLoans    = "2004"
	CodeCapital          = "3001"
	CodeOwnerDraw        = "3002"
	CodeOwnerContrib     = "3003"
	CodeSales            = "4001"
	CodeMiscIncome       = "4002"
	CodePurchases        = "5001"
	CodeDepreciation     = "5012"
)

// DefaultChart returns the seed chart of accounts for a sole proprietor
// filing a blue return. Every code has provenance digit 0.
func DefaultChart() []model.Account {
	var (
		asset   = model.AccountTypeAsset
		liab    = model.AccountTypeLiability
		equity  = model.AccountTypeEquity
		revenue = model.AccountTypeRevenue
		expense = model.AccountTypeExpense
	)
	return []model.Account{
		{Code: CodeCash, Name: "現金", Type: asset},
		{Code: CodeBankDeposit, Name: "普通預金", Type: asset},
		{Code: CodeReceivable, Name: "売掛金", Type: asset},
		{Code: "1004", Name: "前払金", Type: asset},
		{Code: "1005", Name: "商品", Type: asset},
		{Code: "1006", Name: "仮払金", Type: asset},
		{Code: CodeBuildings, Name: "建物", Type: asset},
		{Code: CodeVehicles, Name: "車両運搬具", Type: asset},
		{Code: CodeFixtures, Name: "工具器具備品", Type: asset},
		{Code: CodeLongTermDeposits, Name: "敷金", Type: asset},

		{Code: "2001", Name: "買掛金", Type: liab},
		{Code: "2002", Name: "未払金", Type: liab},
		{Code: "2003", Name: "預り金", Type: liab},
		{Code: CodeLongTermLoans, Name: "借入金", Type: liab},
		{Code: "2005", Name: "前受金", Type: liab},
		{Code: "2006", Name: "未払消費税等", Type: liab},

		{Code: CodeCapital, Name: "元入金", Type: equity},
		{Code: CodeOwnerDraw, Name: "事業主貸", Type: equity},
		{Code: CodeOwnerContrib, Name: "事業主借", Type: equity},

		{Code: CodeSales, Name: "売上高", Type: revenue, DefaultTaxCategory: model.TaxSales10},
		{Code: CodeMiscIncome, Name: "雑収入", Type: revenue, DefaultTaxCategory: model.TaxSales10},

		{Code: CodePurchases, Name: "仕入高", Type: expense, DefaultTaxCategory: model.TaxPurchase10},
		{Code: "5002", Name: "租税公課", Type: expense, DefaultTaxCategory: model.TaxOutOfScope},
		{Code: "5003", Name: "荷造運賃", Type: expense, DefaultTaxCategory: model.TaxPurchase10},
		{Code: "5004", Name: "水道光熱費", Type: expense, DefaultTaxCategory: model.TaxPurchase10, BusinessRatio: 30},
		{Code: "5005", Name: "旅費交通費", Type: expense, DefaultTaxCategory: model.TaxPurchase10},
		{Code: "5006", Name: "通信費", Type: expense, DefaultTaxCategory: model.TaxPurchase10, BusinessRatio: 50},
		{Code: "5007", Name: "広告宣伝費", Type: expense, DefaultTaxCategory: model.TaxPurchase10},
		{Code: "5008", Name: "接待交際費", Type: expense, DefaultTaxCategory: model.TaxPurchase10},
		{Code: "5009", Name: "損害保険料", Type: expense, DefaultTaxCategory: model.TaxExempt},
		{Code: "5010", Name: "修繕費", Type: expense, DefaultTaxCategory: model.TaxPurchase10},
		{Code: "5011", Name: "消耗品費", Type: expense, DefaultTaxCategory: model.TaxPurchase10},
		{Code: CodeDepreciation, Name: "減価償却費", Type: expense, DefaultTaxCategory: model.TaxOutOfScope},
		{Code: "5013", Name: "福利厚生費", Type: expense, DefaultTaxCategory: model.TaxPurchase10},
		{Code: "5014", Name: "給料賃金", Type: expense, DefaultTaxCategory: model.TaxOutOfScope},
		{Code: "5015", Name: "外注工賃", Type: expense, DefaultTaxCategory: model.TaxPurchase10},
		{Code: "5016", Name: "利子割引料", Type: expense, DefaultTaxCategory: model.TaxExempt},
		{Code: "5017", Name: "地代家賃", Type: expense, DefaultTaxCategory: model.TaxPurchase10, BusinessRatio: 30},
		{Code: "5018", Name: "貸倒金", Type: expense, DefaultTaxCategory: model.TaxOutOfScope},
		{Code: "5019", Name: "雑費", Type: expense, DefaultTaxCategory: model.TaxPurchase10},
		{Code: "5020", Name: "支払手数料", Type: expense, DefaultTaxCategory: model.TaxPurchase10},
		{Code: "5021", Name: "新聞図書費", Type: expense, DefaultTaxCategory: model.TaxPurchase10},
		{Code: "5022", Name: "会議費", Type: expense, DefaultTaxCategory: model.TaxPurchase10},
	}
}
