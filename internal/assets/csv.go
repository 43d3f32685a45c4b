package assets

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/aoiro/internal/model"
)

// Header is the CSV header for fixed-assets.csv. An empty rate means the
// statutory rate for the useful life.
const Header = "id,name,category,acquisition_date,acquisition_cost,useful_life,method,rate,business_ratio,status,disposal_date"

const (
	numFields   = 11
	colID       = 0
	colName     = 1
	colCategory = 2
	colAcquired = 3
	colCost     = 4
	colLife     = 5
	colMethod   = 6
	colRate     = 7
	colRatio    = 8
	colStatus   = 9
	colDisposed = 10
)

const dateLayout = "2006-01-02"

// ReadAssets reads fixed-assets.csv.
func ReadAssets(r io.Reader) ([]model.FixedAsset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading assets CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var assets []model.FixedAsset
	for i, rec := range records[1:] {
		a, err := UnmarshalAsset(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		assets = append(assets, a)
	}
	return assets, nil
}

// WriteAssets writes fixed-assets.csv.
func WriteAssets(w io.Writer, assets []model.FixedAsset) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, a := range assets {
		if err := cw.Write(MarshalAsset(a)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalAsset converts a FixedAsset to a CSV row.
func MarshalAsset(a model.FixedAsset) []string {
	row := make([]string, numFields)
	row[colID] = a.ID
	row[colName] = a.Name
	row[colCategory] = a.Category
	row[colAcquired] = a.AcquisitionDate.Format(dateLayout)
	row[colCost] = strconv.FormatInt(a.AcquisitionCost, 10)
	row[colLife] = strconv.Itoa(a.UsefulLife)
	row[colMethod] = string(a.Method)
	if !a.Rate.IsZero() {
		row[colRate] = a.Rate.String()
	}
	row[colRatio] = strconv.Itoa(a.BusinessRatio)
	row[colStatus] = string(a.Status)
	if !a.DisposalDate.IsZero() {
		row[colDisposed] = a.DisposalDate.Format(dateLayout)
	}
	return row
}

// UnmarshalAsset converts a CSV row to a FixedAsset.
func UnmarshalAsset(record []string) (model.FixedAsset, error) {
	if len(record) != numFields {
		return model.FixedAsset{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	acquired, err := time.Parse(dateLayout, record[colAcquired])
	if err != nil {
		return model.FixedAsset{}, fmt.Errorf("parsing acquisition_date %q: %w", record[colAcquired], err)
	}
	cost, err := strconv.ParseInt(record[colCost], 10, 64)
	if err != nil {
		return model.FixedAsset{}, fmt.Errorf("parsing acquisition_cost %q: %w", record[colCost], err)
	}
	life, err := strconv.Atoi(record[colLife])
	if err != nil {
		return model.FixedAsset{}, fmt.Errorf("parsing useful_life %q: %w", record[colLife], err)
	}

	method := model.DepreciationMethod(record[colMethod])
	if method != model.MethodStraightLine && method != model.MethodDecliningBalance {
		return model.FixedAsset{}, fmt.Errorf("unknown depreciation method %q", record[colMethod])
	}

	var rate decimal.Decimal
	if record[colRate] != "" {
		rate, err = decimal.NewFromString(record[colRate])
		if err != nil {
			return model.FixedAsset{}, fmt.Errorf("parsing rate %q: %w", record[colRate], err)
		}
	}

	ratio, err := strconv.Atoi(record[colRatio])
	if err != nil {
		return model.FixedAsset{}, fmt.Errorf("parsing business_ratio %q: %w", record[colRatio], err)
	}
	if ratio < 0 || ratio > 100 {
		return model.FixedAsset{}, fmt.Errorf("business_ratio %d out of range", ratio)
	}

	status := model.AssetStatus(record[colStatus])
	switch status {
	case model.AssetActive, model.AssetDisposed, model.AssetSold:
	default:
		return model.FixedAsset{}, fmt.Errorf("unknown asset status %q", record[colStatus])
	}

	var disposed time.Time
	if record[colDisposed] != "" {
		disposed, err = time.Parse(dateLayout, record[colDisposed])
		if err != nil {
			return model.FixedAsset{}, fmt.Errorf("parsing disposal_date %q: %w", record[colDisposed], err)
		}
	}

	return model.FixedAsset{
		ID:              record[colID],
		Name:            record[colName],
		Category:        record[colCategory],
		AcquisitionDate: acquired,
		AcquisitionCost: cost,
		UsefulLife:      life,
		Method:          method,
		Rate:            rate,
		BusinessRatio:   ratio,
		Status:          status,
		DisposalDate:    disposed,
	}, nil
}
