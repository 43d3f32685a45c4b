package accounts

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/aoiro/internal/model"
)

func TestGetExists(t *testing.T) {
	svc := NewService(DefaultChart())

	acct, ok := svc.Get(CodeCash)
	assert.True(t, ok)
	assert.Equal(t, "現金", acct.Name)

	_, ok = svc.Get("9999")
	assert.False(t, ok)

	assert.True(t, svc.Exists(CodeSales))
	assert.False(t, svc.Exists("9999"))
}

func TestByType(t *testing.T) {
	svc := NewService(DefaultChart())

	equity := svc.ByType(model.AccountTypeEquity)
	require.Len(t, equity, 3)
	for _, a := range equity {
		assert.Equal(t, model.AccountTypeEquity, a.Type)
	}
}

func TestNextCode(t *testing.T) {
	code, err := NextCode(model.AccountTypeExpense, DefaultChart())
	require.NoError(t, err)
	assert.Equal(t, "5100", code)

	existing := append(DefaultChart(),
		model.Account{Code: "5100", Type: model.AccountTypeExpense},
		model.Account{Code: "5102", Type: model.AccountTypeExpense},
	)
	code, err = NextCode(model.AccountTypeExpense, existing)
	require.NoError(t, err)
	assert.Equal(t, "5101", code, "lowest gap is reused")

	code, err = NextCode(model.AccountTypeAsset, existing)
	require.NoError(t, err)
	assert.Equal(t, "1100", code)
}

func TestNextCode_Exhausted(t *testing.T) {
	var existing []model.Account
	for i := 0; i < 100; i++ {
		existing = append(existing, model.Account{Code: fmt.Sprintf("41%02d", i), Type: model.AccountTypeRevenue})
	}
	_, err := NextCode(model.AccountTypeRevenue, existing)
	require.ErrorIs(t, err, ErrCodeRangeExhausted)

	// Other types are unaffected.
	code, err := NextCode(model.AccountTypeExpense, existing)
	require.NoError(t, err)
	assert.Equal(t, "5100", code)
}

func TestNextCode_UnknownType(t *testing.T) {
	_, err := NextCode(model.AccountType("income"), nil)
	require.Error(t, err)
}

func TestAddRenameDelete(t *testing.T) {
	svc := NewService(DefaultChart())

	acct, err := svc.Add("サーバー費", model.AccountTypeExpense, model.TaxPurchase10)
	require.NoError(t, err)
	assert.Equal(t, "5100", acct.Code)
	assert.False(t, acct.IsSystem())

	require.NoError(t, svc.Rename("5100", "クラウド利用料"))
	got, ok := svc.Get("5100")
	require.True(t, ok)
	assert.Equal(t, "クラウド利用料", got.Name)

	require.NoError(t, svc.Delete("5100"))
	assert.False(t, svc.Exists("5100"))

	// The freed code is handed out again.
	acct, err = svc.Add("サーバー費", model.AccountTypeExpense, "")
	require.NoError(t, err)
	assert.Equal(t, "5100", acct.Code)
}

func TestSystemAccountsProtected(t *testing.T) {
	svc := NewService(DefaultChart())

	assert.ErrorIs(t, svc.Rename(CodeCash, "お金"), ErrSystemAccount)
	assert.ErrorIs(t, svc.Delete(CodeSales), ErrSystemAccount)
	assert.ErrorIs(t, svc.Delete("5199"), ErrUnknownAccount)
}

func TestAddValidation(t *testing.T) {
	svc := NewService(DefaultChart())
	_, err := svc.Add("", model.AccountTypeExpense, "")
	require.Error(t, err)
	_, err = svc.Add("x", model.AccountTypeExpense, model.TaxCategory("vat"))
	require.Error(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	svc := NewService(DefaultChart())
	_, err := svc.Add("サーバー費", model.AccountTypeExpense, model.TaxPurchase10)
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, svc.Save(dir))

	_, err = os.Stat(filepath.Join(dir, "accounts", "chart-of-accounts.csv"))
	require.NoError(t, err)

	svc2, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, svc.All(), svc2.All())
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(t.TempDir())
	require.ErrorIs(t, err, os.ErrNotExist)
}
