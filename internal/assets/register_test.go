package assets

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/aoiro/internal/model"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestMarshalRoundTrip(t *testing.T) {
	a := model.FixedAsset{
		ID:              "6f1c",
		Name:            "MacBook Pro",
		Category:        "器具備品",
		AcquisitionDate: date(2024, 4, 1),
		AcquisitionCost: 298000,
		UsefulLife:      4,
		Method:          model.MethodStraightLine,
		Rate:            decimal.RequireFromString("0.25"),
		BusinessRatio:   80,
		Status:          model.AssetSold,
		DisposalDate:    date(2026, 1, 15),
	}
	row := MarshalAsset(a)
	assert.Equal(t, "2024-04-01", row[colAcquired])
	assert.Equal(t, "0.25", row[colRate])

	got, err := UnmarshalAsset(row)
	require.NoError(t, err)
	assert.True(t, a.Rate.Equal(got.Rate))
	got.Rate = a.Rate
	assert.Equal(t, a, got)
}

func TestMarshal_DefaultRateIsBlank(t *testing.T) {
	row := MarshalAsset(model.FixedAsset{
		AcquisitionDate: date(2024, 1, 1),
		Method:          model.MethodDecliningBalance,
		Status:          model.AssetActive,
	})
	assert.Empty(t, row[colRate])
	assert.Empty(t, row[colDisposed])

	got, err := UnmarshalAsset(row)
	require.NoError(t, err)
	assert.True(t, got.Rate.IsZero())
	assert.True(t, got.DisposalDate.IsZero())
}

func TestUnmarshal_Errors(t *testing.T) {
	valid := []string{"x", "desk", "", "2024-01-01", "50000", "8", "straight_line", "", "100", "active", ""}

	tests := map[string]func(r []string){
		"bad date":   func(r []string) { r[colAcquired] = "2024/01/01" },
		"bad cost":   func(r []string) { r[colCost] = "5万" },
		"bad method": func(r []string) { r[colMethod] = "sum_of_years" },
		"bad rate":   func(r []string) { r[colRate] = "quarter" },
		"bad ratio":  func(r []string) { r[colRatio] = "101" },
		"bad status": func(r []string) { r[colStatus] = "lost" },
	}
	_, err := UnmarshalAsset(valid)
	require.NoError(t, err)

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			rec := append([]string(nil), valid...)
			mutate(rec)
			_, err := UnmarshalAsset(rec)
			assert.Error(t, err)
		})
	}
}

func TestWriteRead(t *testing.T) {
	in := []model.FixedAsset{{
		ID:              "a",
		Name:            "desk, oak",
		AcquisitionDate: date(2023, 5, 1),
		AcquisitionCost: 120000,
		UsefulLife:      8,
		Method:          model.MethodStraightLine,
		BusinessRatio:   100,
		Status:          model.AssetActive,
	}}
	var buf bytes.Buffer
	require.NoError(t, WriteAssets(&buf, in))
	assert.Contains(t, buf.String(), Header+"\n")

	out, err := ReadAssets(&buf)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "desk, oak", out[0].Name)
}

func TestRegister_AddDisposeSave(t *testing.T) {
	root := t.TempDir()

	reg, err := Load(root)
	require.NoError(t, err)
	assert.Empty(t, reg.All())

	later, err := reg.Add(AddParams{
		Name: "van", AcquisitionDate: date(2024, 9, 1), AcquisitionCost: 1500000,
		UsefulLife: 6, Method: model.MethodDecliningBalance, BusinessRatio: 70,
	})
	require.NoError(t, err)
	earlier, err := reg.Add(AddParams{
		Name: "laptop", AcquisitionDate: date(2024, 4, 1), AcquisitionCost: 200000,
		UsefulLife: 4, BusinessRatio: 100,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, earlier.ID)
	assert.Equal(t, model.MethodStraightLine, earlier.Method)
	assert.Equal(t, model.AssetActive, earlier.Status)

	require.NoError(t, reg.Dispose(later.ID, model.AssetSold, date(2025, 3, 31)))
	require.NoError(t, reg.Save(root))

	_, err = os.Stat(filepath.Join(root, "assets", "fixed-assets.csv"))
	require.NoError(t, err)

	reloaded, err := Load(root)
	require.NoError(t, err)
	all := reloaded.All()
	require.Len(t, all, 2)
	assert.Equal(t, "laptop", all[0].Name)
	assert.Equal(t, model.AssetSold, all[1].Status)
	assert.Equal(t, date(2025, 3, 31), all[1].DisposalDate)
}

func TestRegister_AddValidates(t *testing.T) {
	reg := NewRegister(nil)
	_, err := reg.Add(AddParams{Name: "", AcquisitionCost: 1, UsefulLife: 1})
	assert.Error(t, err)
	_, err = reg.Add(AddParams{Name: "x", AcquisitionCost: 0, UsefulLife: 1})
	assert.Error(t, err)
	_, err = reg.Add(AddParams{Name: "x", AcquisitionCost: 1, UsefulLife: 0})
	assert.Error(t, err)
	_, err = reg.Add(AddParams{Name: "x", AcquisitionCost: 1, UsefulLife: 1, BusinessRatio: 120})
	assert.Error(t, err)
	_, err = reg.Add(AddParams{Name: "x", AcquisitionCost: 1, UsefulLife: 1, Method: "units"})
	assert.Error(t, err)
}

func TestRegister_DisposeErrors(t *testing.T) {
	reg := NewRegister([]model.FixedAsset{{ID: "a", AcquisitionDate: date(2024, 1, 1), Status: model.AssetActive}})
	assert.ErrorIs(t, reg.Dispose("missing", model.AssetDisposed, date(2024, 2, 1)), ErrUnknownAsset)
	assert.Error(t, reg.Dispose("a", model.AssetActive, date(2024, 2, 1)))
	assert.Error(t, reg.Dispose("a", model.AssetDisposed, date(2023, 2, 1)))
}
