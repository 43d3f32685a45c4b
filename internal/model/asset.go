package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DepreciationMethod selects how a fixed asset is written down.
type DepreciationMethod string

const (
	MethodStraightLine     DepreciationMethod = "straight_line"
	MethodDecliningBalance DepreciationMethod = "declining_balance"
)

// AssetStatus is the lifecycle state of a fixed asset.
type AssetStatus string

const (
	AssetActive   AssetStatus = "active"
	AssetDisposed AssetStatus = "disposed"
	AssetSold     AssetStatus = "sold"
)

// FixedAsset represents a row in the fixed-asset register.
type FixedAsset struct {
	ID              string
	Name            string
	Category        string
	AcquisitionDate time.Time
	AcquisitionCost int64
	UsefulLife      int // years
	Method          DepreciationMethod
	Rate            decimal.Decimal // zero = derive from useful life
	BusinessRatio   int             // 0..100
	Status          AssetStatus
	DisposalDate    time.Time // zero unless disposed or sold
}
