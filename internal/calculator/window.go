package calculator

import (
	"errors"
	"fmt"

	"MarketAnalytic/internal/model"
)

// ErrEmptySeries is returned when there is nothing to aggregate.
var ErrEmptySeries = errors.New("empty time series")

// TrailingWindow returns the most recent days records of series, oldest first.
// A series shorter than the window is returned whole. The result shares
// storage with series but its capacity is clipped, so appending to it never
// touches the records behind it.
func TrailingWindow(series model.TimeSeries, days int) model.TimeSeries {
	n := len(series)
	if days <= 0 {
		return series[n:n:n]
	}
	start := n - days
	if start < 0 {
		start = 0
	}
	return series[start:n:n]
}

// Aggregate slices the trailing window of series and reduces it.
func Aggregate(series model.TimeSeries, w model.Window) (model.TimeSeries, model.AggregateResult, error) {
	if len(series) == 0 {
		return nil, model.AggregateResult{}, ErrEmptySeries
	}
	days, err := w.Days()
	if err != nil {
		return nil, model.AggregateResult{}, fmt.Errorf("aggregate: %w", err)
	}

	slice := TrailingWindow(series, days)
	avg, err := AveragePrice(slice)
	if err != nil {
		return nil, model.AggregateResult{}, err
	}
	units, _ := TotalUnits(slice)
	peak, _ := PeakSellers(slice)

	return slice, model.AggregateResult{
		AveragePrice:      avg,
		TotalUnitsSold:    units,
		PeakActiveSellers: peak,
	}, nil
}
