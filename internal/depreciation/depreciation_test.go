package depreciation

import (
	"bytes"
	"strings"
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

func laptop() model.FixedAsset {
	return model.FixedAsset{
		ID:              "a-1",
		Name:            "laptop",
		AcquisitionDate: date(2024, 4, 1),
		AcquisitionCost: 200000,
		UsefulLife:      4,
		Method:          model.MethodStraightLine,
		Rate:            decimal.RequireFromString("0.25"),
		BusinessRatio:   100,
		Status:          model.AssetActive,
	}
}

func TestMonthsOfUse(t *testing.T) {
	a := laptop()
	assert.Equal(t, 9, MonthsOfUse(a, 2024))
	assert.Equal(t, 12, MonthsOfUse(a, 2025))
	assert.Equal(t, 0, MonthsOfUse(a, 2023))

	a.AcquisitionDate = date(2024, 12, 31)
	assert.Equal(t, 1, MonthsOfUse(a, 2024))
	a.AcquisitionDate = date(2024, 1, 1)
	assert.Equal(t, 12, MonthsOfUse(a, 2024))
}

func TestMonthsOfUse_Disposed(t *testing.T) {
	a := laptop()
	a.Status = model.AssetDisposed
	a.DisposalDate = date(2025, 6, 30)
	assert.Equal(t, 6, MonthsOfUse(a, 2025))
	assert.Equal(t, 0, MonthsOfUse(a, 2026))

	a.DisposalDate = date(2024, 8, 1)
	assert.Equal(t, 5, MonthsOfUse(a, 2024), "april through august")
}

func TestCompute_StraightLineFirstYear(t *testing.T) {
	line := Compute(laptop(), 2024)
	assert.Equal(t, 9, line.Months)
	assert.Equal(t, int64(200000), line.OpeningBookValue)
	assert.Equal(t, int64(37500), line.Depreciation)
	assert.Equal(t, int64(37500), line.BusinessDeduction)
	assert.Equal(t, int64(162500), line.ClosingBookValue)
}

func TestCompute_StraightLineStopsAtMemorandum(t *testing.T) {
	a := laptop()
	assert.Equal(t, int64(50000), Compute(a, 2025).Depreciation)
	assert.Equal(t, int64(12500), OpeningBookValue(a, 2028))

	last := Compute(a, 2028)
	assert.Equal(t, int64(12499), last.Depreciation)
	assert.Equal(t, int64(MemorandumValue), last.ClosingBookValue)

	after := Compute(a, 2029)
	assert.Zero(t, after.Depreciation)
	assert.Equal(t, int64(MemorandumValue), after.OpeningBookValue)
}

func TestCompute_DecliningBalanceUsesBookValue(t *testing.T) {
	a := model.FixedAsset{
		Name:            "van",
		AcquisitionDate: date(2024, 1, 10),
		AcquisitionCost: 1000000,
		UsefulLife:      5,
		Method:          model.MethodDecliningBalance,
		BusinessRatio:   100,
		Status:          model.AssetActive,
	}
	first := Compute(a, 2024)
	assert.True(t, first.Rate.Equal(decimal.RequireFromString("0.4")))
	assert.Equal(t, int64(400000), first.Depreciation)

	second := Compute(a, 2025)
	assert.Equal(t, int64(600000), second.OpeningBookValue)
	assert.Equal(t, int64(240000), second.Depreciation)
	assert.Equal(t, int64(360000), second.ClosingBookValue)
}

func TestCompute_BusinessDeductionFloors(t *testing.T) {
	a := laptop()
	a.Rate = decimal.Zero
	a.UsefulLife = 6
	a.AcquisitionDate = date(2024, 1, 1)
	a.AcquisitionCost = 199999
	a.BusinessRatio = 30

	line := Compute(a, 2024)
	// 199999 × 0.167 = 33399.833
	assert.Equal(t, int64(33399), line.Depreciation)
	assert.Equal(t, int64(10019), line.BusinessDeduction)
}

func TestDefaultRate(t *testing.T) {
	tests := []struct {
		method model.DepreciationMethod
		life   int
		want   string
	}{
		{model.MethodStraightLine, 4, "0.25"},
		{model.MethodStraightLine, 10, "0.1"},
		{model.MethodStraightLine, 25, "0.04"},
		{model.MethodDecliningBalance, 3, "0.667"},
		{model.MethodDecliningBalance, 12, "0.167"},
		{model.MethodStraightLine, 0, "0"},
	}
	for _, tt := range tests {
		got := DefaultRate(tt.method, tt.life)
		assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
			"%s life %d: got %s want %s", tt.method, tt.life, got, tt.want)
	}
}

func TestBuild(t *testing.T) {
	future := laptop()
	future.Name = "printer"
	future.AcquisitionDate = date(2025, 2, 1)

	gone := laptop()
	gone.Name = "old desk"
	gone.AcquisitionDate = date(2020, 1, 1)
	gone.Status = model.AssetSold
	gone.DisposalDate = date(2023, 3, 1)

	half := laptop()
	half.Name = "phone"
	half.BusinessRatio = 50

	s := Build([]model.FixedAsset{laptop(), future, gone, half}, 2024)
	require.Len(t, s.Lines, 3)
	assert.Equal(t, "printer", s.Lines[1].Asset.Name)
	assert.Zero(t, s.Lines[1].Depreciation)
	assert.Equal(t, int64(200000), s.Lines[1].OpeningBookValue)

	assert.Equal(t, int64(75000), s.TotalDepreciation)
	assert.Equal(t, int64(37500+18750), s.TotalBusinessDeduction)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, Build([]model.FixedAsset{laptop()}, 2024)))

	lines := strings.Split(buf.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.Equal(t, "【2024年 減価償却費の計算】", lines[0])
	assert.Equal(t,
		`laptop,,2024-04,"200,000",定額法,4,0.250,9/12,"200,000","37,500",100%,"37,500","162,500"`,
		lines[2])
	assert.Equal(t, `合計,,,,,,,,,"37,500",,"37,500",`, lines[3])

	total := strings.Split(strings.ReplaceAll(lines[3], `"37,500"`, "X"), ",")
	require.Len(t, total, len(header))
	assert.Equal(t, "本年分の償却費", header[9])
	assert.Equal(t, "X", total[9])
	assert.Equal(t, "必要経費算入額", header[11])
	assert.Equal(t, "X", total[11])
}
