// Package assets stores the fixed-asset register as assets/fixed-assets.csv
// under a books root.
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/aoiro/internal/model"
)

// ErrUnknownAsset is returned when an asset ID is not on the register.
var ErrUnknownAsset = errors.New("unknown asset")

const registerPath = "assets/fixed-assets.csv"

// Register is the in-memory fixed-asset register.
type Register struct {
	assets []model.FixedAsset
}

// NewRegister creates a Register from a slice of assets.
func NewRegister(assets []model.FixedAsset) *Register {
	r := &Register{assets: append([]model.FixedAsset(nil), assets...)}
	r.sort()
	return r
}

func (r *Register) sort() {
	sort.SliceStable(r.assets, func(i, j int) bool {
		return r.assets[i].AcquisitionDate.Before(r.assets[j].AcquisitionDate)
	})
}

// Load reads the register from a books root. A missing file is an empty
// register.
func Load(root string) (*Register, error) {
	f, err := os.Open(filepath.Join(root, registerPath))
	if errors.Is(err, fs.ErrNotExist) {
		return NewRegister(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening fixed-asset register: %w", err)
	}
	defer f.Close()

	assets, err := ReadAssets(f)
	if err != nil {
		return nil, fmt.Errorf("reading fixed-asset register: %w", err)
	}
	return NewRegister(assets), nil
}

// All returns every asset ordered by acquisition date.
func (r *Register) All() []model.FixedAsset {
	return append([]model.FixedAsset(nil), r.assets...)
}

// AddParams holds parameters for registering an asset.
type AddParams struct {
	Name            string
	Category        string
	AcquisitionDate time.Time
	AcquisitionCost int64
	UsefulLife      int
	Method          model.DepreciationMethod
	Rate            decimal.Decimal
	BusinessRatio   int
}

// Add registers an active asset under a new ID.
func (r *Register) Add(p AddParams) (model.FixedAsset, error) {
	switch {
	case p.Name == "":
		return model.FixedAsset{}, errors.New("asset name is required")
	case p.AcquisitionCost <= 0:
		return model.FixedAsset{}, fmt.Errorf("acquisition cost must be positive, got %d", p.AcquisitionCost)
	case p.UsefulLife <= 0:
		return model.FixedAsset{}, fmt.Errorf("useful life must be positive, got %d", p.UsefulLife)
	case p.BusinessRatio < 0 || p.BusinessRatio > 100:
		return model.FixedAsset{}, fmt.Errorf("business ratio %d out of range", p.BusinessRatio)
	case p.Rate.IsNegative():
		return model.FixedAsset{}, fmt.Errorf("negative rate %s", p.Rate)
	}
	method := p.Method
	if method == "" {
		method = model.MethodStraightLine
	}
	if method != model.MethodStraightLine && method != model.MethodDecliningBalance {
		return model.FixedAsset{}, fmt.Errorf("unknown depreciation method %q", method)
	}

	a := model.FixedAsset{
		ID:              uuid.NewString(),
		Name:            p.Name,
		Category:        p.Category,
		AcquisitionDate: p.AcquisitionDate,
		AcquisitionCost: p.AcquisitionCost,
		UsefulLife:      p.UsefulLife,
		Method:          method,
		Rate:            p.Rate,
		BusinessRatio:   p.BusinessRatio,
		Status:          model.AssetActive,
	}
	r.assets = append(r.assets, a)
	r.sort()
	return a, nil
}

// Dispose marks an asset disposed or sold as of date. Depreciation runs
// through the disposal month.
func (r *Register) Dispose(id string, status model.AssetStatus, date time.Time) error {
	if status != model.AssetDisposed && status != model.AssetSold {
		return fmt.Errorf("invalid disposal status %q", status)
	}
	for i := range r.assets {
		if r.assets[i].ID != id {
			continue
		}
		if date.Before(r.assets[i].AcquisitionDate) {
			return fmt.Errorf("disposal date %s precedes acquisition", date.Format(dateLayout))
		}
		r.assets[i].Status = status
		r.assets[i].DisposalDate = date
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUnknownAsset, id)
}

// Save writes the register to assets/fixed-assets.csv.
func (r *Register) Save(root string) error {
	path := filepath.Join(root, registerPath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating assets dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating fixed-asset register: %w", err)
	}
	defer f.Close()

	if err := WriteAssets(f, r.assets); err != nil {
		return fmt.Errorf("writing fixed-asset register: %w", err)
	}
	return nil
}
