// Package depreciation computes the yearly depreciation schedule of the
// fixed-asset register. Accumulated depreciation is never stored; the book
// value at the start of a year is re-derived from the acquisition year on
// every call.
package depreciation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/aoiro/internal/model"
)

// MemorandumValue is the book value an asset is never written below.
const MemorandumValue = 1

var twelve = decimal.NewFromInt(12)

// Line is one asset's row in a year's schedule.
type Line struct {
	Asset             model.FixedAsset
	Rate              decimal.Decimal
	Months            int
	OpeningBookValue  int64
	Depreciation      int64
	BusinessDeduction int64
	ClosingBookValue  int64
}

// Schedule is the depreciation of every asset in use during a fiscal year.
type Schedule struct {
	FiscalYear             int
	Lines                  []Line
	TotalDepreciation      int64
	TotalBusinessDeduction int64
}

// inService reports whether the asset is still on the register in year.
// Disposed and sold assets drop out after their disposal year.
func inService(a model.FixedAsset, year int) bool {
	if a.Status == model.AssetActive || a.Status == "" {
		return true
	}
	return !a.DisposalDate.IsZero() && a.DisposalDate.Year() >= year
}

// MonthsOfUse counts the months in year during which the asset is
// depreciated. The acquisition month counts as the first month; a disposal
// month counts as the last.
func MonthsOfUse(a model.FixedAsset, year int) int {
	acq := a.AcquisitionDate.Year()
	if acq > year || !inService(a, year) {
		return 0
	}
	first := time.January
	if acq == year {
		first = a.AcquisitionDate.Month()
	}
	last := time.December
	if a.Status != model.AssetActive && !a.DisposalDate.IsZero() && a.DisposalDate.Year() == year {
		last = a.DisposalDate.Month()
	}
	if last < first {
		return 0
	}
	return int(last-first) + 1
}

// annual is the depreciation for year given the book value at its start.
func annual(a model.FixedAsset, rate decimal.Decimal, year int, bookValue int64) int64 {
	months := MonthsOfUse(a, year)
	if months == 0 || bookValue <= MemorandumValue {
		return 0
	}
	base := a.AcquisitionCost
	if a.Method == model.MethodDecliningBalance {
		base = bookValue
	}
	dep := decimal.NewFromInt(base).
		Mul(rate).
		Mul(decimal.NewFromInt(int64(months))).
		Div(twelve).
		Floor().
		IntPart()
	return max(min(dep, bookValue-MemorandumValue), 0)
}

// OpeningBookValue is the book value on January 1 of year.
func OpeningBookValue(a model.FixedAsset, year int) int64 {
	rate := Rate(a)
	bv := a.AcquisitionCost
	for y := a.AcquisitionDate.Year(); y < year; y++ {
		bv -= annual(a, rate, y, bv)
	}
	return bv
}

// Compute returns the asset's schedule line for year.
func Compute(a model.FixedAsset, year int) Line {
	rate := Rate(a)
	opening := OpeningBookValue(a, year)
	dep := annual(a, rate, year, opening)
	return Line{
		Asset:             a,
		Rate:              rate,
		Months:            MonthsOfUse(a, year),
		OpeningBookValue:  opening,
		Depreciation:      dep,
		BusinessDeduction: dep * int64(a.BusinessRatio) / 100,
		ClosingBookValue:  opening - dep,
	}
}

// Build returns the schedule for year. Assets acquired after the year are
// listed with zero depreciation; assets disposed of in an earlier year are
// left out.
func Build(assets []model.FixedAsset, year int) Schedule {
	s := Schedule{FiscalYear: year}
	for _, a := range assets {
		if !inService(a, year) {
			continue
		}
		line := Compute(a, year)
		s.Lines = append(s.Lines, line)
		s.TotalDepreciation += line.Depreciation
		s.TotalBusinessDeduction += line.BusinessDeduction
	}
	return s
}
