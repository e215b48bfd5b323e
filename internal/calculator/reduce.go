package calculator

import (
	"github.com/shopspring/decimal"

	"MarketAnalytic/internal/model"
)

// AveragePrice returns the mean daily price rounded half away from zero.
// The sum is exact.
func AveragePrice(records model.TimeSeries) (int64, error) {
	if len(records) == 0 {
		return 0, ErrEmptySeries
	}
	sum := decimal.Zero
	for _, r := range records {
		sum = sum.Add(decimal.NewFromInt(r.Price))
	}
	n := decimal.NewFromInt(int64(len(records)))
	q, r := sum.QuoRem(n, 0)
	// Prices are non-negative, so half away from zero is half up.
	if r.Add(r).GreaterThanOrEqual(n) {
		q = q.Add(decimal.NewFromInt(1))
	}
	return q.IntPart(), nil
}

// TotalUnits sums units sold across records.
func TotalUnits(records model.TimeSeries) (int64, error) {
	if len(records) == 0 {
		return 0, ErrEmptySeries
	}
	var total int64
	for _, r := range records {
		total += r.UnitsSold
	}
	return total, nil
}

// PeakSellers returns the largest active seller count.
func PeakSellers(records model.TimeSeries) (int64, error) {
	if len(records) == 0 {
		return 0, ErrEmptySeries
	}
	peak := records[0].ActiveSellers
	for _, r := range records[1:] {
		if r.ActiveSellers > peak {
			peak = r.ActiveSellers
		}
	}
	return peak, nil
}
