// Package synth generates synthetic daily marketplace histories from seed
// parameters.
package synth

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"MarketAnalytic/internal/model"
)

const (
	// Horizon is the number of days before the reference date a series covers.
	// A series holds Horizon+1 records.
	Horizon = 365

	demandNumerator = 10000.0
	priceFloorRatio = 0.5
	spikeEvery      = 7
	spikeFactor     = 1.5
	noiseMin        = 0.8
	noiseSpan       = 0.4
	sellersBase     = 5.0
	sellersNoise    = 10.0
	sellersPerUnits = 10.0

	// maxQuantity bounds every price and unit count so it stays an exact
	// float64 integer and fits int64 after rounding.
	maxQuantity = float64(1 << 53)
)

// ErrInvalidSeed is matched by every InvalidSeedError.
var ErrInvalidSeed = errors.New("invalid seed parameters")

// InvalidSeedError reports the offending seed field.
type InvalidSeedError struct {
	Field string
	Value float64
}

func (e *InvalidSeedError) Error() string {
	return fmt.Sprintf("invalid seed parameters: %s=%v", e.Field, e.Value)
}

func (e *InvalidSeedError) Is(target error) bool { return target == ErrInvalidSeed }

// Source yields uniform draws in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// NewSource returns a seeded math/rand source. It is not safe for concurrent use.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// Validate checks seed parameters without generating anything.
func Validate(seed model.SeedParameters) error {
	switch {
	case !(seed.BasePrice > 0) || math.IsInf(seed.BasePrice, 1):
		return &InvalidSeedError{Field: "base_price", Value: seed.BasePrice}
	case !(seed.Volatility >= 0) || math.IsInf(seed.Volatility, 1):
		return &InvalidSeedError{Field: "volatility", Value: seed.Volatility}
	case math.IsNaN(seed.Trend) || math.IsInf(seed.Trend, 0):
		return &InvalidSeedError{Field: "trend", Value: seed.Trend}
	}

	// Units peak when the price sits on the floor with full noise and a spike.
	peakUnits := demandNumerator * (noiseMin + noiseSpan) * spikeFactor / (seed.BasePrice * priceFloorRatio)
	if seed.BasePrice > maxQuantity || peakUnits > maxQuantity {
		return &InvalidSeedError{Field: "base_price", Value: seed.BasePrice}
	}
	days := float64(Horizon + 1)
	reach := seed.BasePrice + days*seed.Volatility/2
	if reach > maxQuantity {
		return &InvalidSeedError{Field: "volatility", Value: seed.Volatility}
	}
	if reach+days*math.Max(seed.Trend, 0) > maxQuantity {
		return &InvalidSeedError{Field: "trend", Value: seed.Trend}
	}
	return nil
}

// Generate produces Horizon+1 daily records, oldest first, ending at the
// calendar date of ref. Each day draws from src three times: price change,
// demand noise, seller noise.
func Generate(seed model.SeedParameters, ref time.Time, src Source) (model.TimeSeries, error) {
	if err := Validate(seed); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, errors.New("nil random source")
	}

	y, m, d := ref.Date()
	refDate := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	floor := seed.BasePrice * priceFloorRatio

	series := make(model.TimeSeries, 0, Horizon+1)
	current := seed.BasePrice
	for offset := Horizon; offset >= 0; offset-- {
		change := (src.Float64() - 0.5) * seed.Volatility
		current += change + seed.Trend
		if current < floor {
			current = floor
		}

		demand := demandNumerator / current
		noise := noiseMin + src.Float64()*noiseSpan
		spike := 1.0
		if offset%spikeEvery == 0 {
			spike = spikeFactor
		}
		units := int64(math.Floor(demand * noise * spike))
		sellers := int64(math.Floor(sellersBase + src.Float64()*sellersNoise + float64(units)/sellersPerUnits))

		price := int64(math.Round(current))
		series = append(series, model.DailyRecord{
			Date:          refDate.AddDate(0, 0, -offset),
			Price:         price,
			UnitsSold:     units,
			ActiveSellers: sellers,
			Revenue:       price * units,
		})
	}
	return series, nil
}
