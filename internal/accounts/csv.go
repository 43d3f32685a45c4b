package accounts

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cleared-dev/aoiro/internal/model"
)

// Header is the CSV header for chart-of-accounts.csv. The system flag is not
// stored; it is derived from the code.
const Header = "code,name,type,default_tax_category,business_ratio"

const (
	numFields  = 5
	colCode    = 0
	colName    = 1
	colType    = 2
	colTax     = 3
	colBizRate = 4
)

// ReadAccounts reads chart-of-accounts.csv.
func ReadAccounts(r io.Reader) ([]model.Account, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading accounts CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var accounts []model.Account
	for i, rec := range records[1:] {
		acct, err := UnmarshalAccount(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		accounts = append(accounts, acct)
	}
	return accounts, nil
}

// WriteAccounts writes chart-of-accounts.csv.
func WriteAccounts(w io.Writer, accounts []model.Account) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, acct := range accounts {
		if err := cw.Write(MarshalAccount(acct)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalAccount converts an Account to a CSV row.
func MarshalAccount(acct model.Account) []string {
	row := make([]string, numFields)
	row[colCode] = acct.Code
	row[colName] = acct.Name
	row[colType] = string(acct.Type)
	row[colTax] = string(acct.DefaultTaxCategory)
	if acct.BusinessRatio != 0 {
		row[colBizRate] = strconv.Itoa(acct.BusinessRatio)
	}
	return row
}

// UnmarshalAccount converts a CSV row to an Account.
func UnmarshalAccount(record []string) (model.Account, error) {
	if len(record) != numFields {
		return model.Account{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	code := record[colCode]
	t := model.AccountType(record[colType])
	if derived, ok := model.TypeFromCode(code); !ok || len(code) != 4 || derived != t {
		return model.Account{}, fmt.Errorf("account code %q does not match type %q", code, t)
	}

	tax := model.TaxCategory(record[colTax])
	if !tax.Valid() {
		return model.Account{}, fmt.Errorf("unknown tax category %q", record[colTax])
	}

	var ratio int
	if record[colBizRate] != "" {
		var err error
		ratio, err = strconv.Atoi(record[colBizRate])
		if err != nil {
			return model.Account{}, fmt.Errorf("parsing business_ratio %q: %w", record[colBizRate], err)
		}
		if ratio < 0 || ratio > 100 {
			return model.Account{}, fmt.Errorf("business_ratio %d out of range", ratio)
		}
	}

	return model.Account{
		Code:               code,
		Name:               record[colName],
		Type:               t,
		DefaultTaxCategory: tax,
		BusinessRatio:      ratio,
	}, nil
}
