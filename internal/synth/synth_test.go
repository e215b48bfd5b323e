package synth

import (
	"errors"
	"math"
	"reflect"
	"testing"
	"time"

	"MarketAnalytic/internal/model"
)

type constSource float64

func (c constSource) Float64() float64 { return float64(c) }

// cycleSource replays a fixed sequence forever.
type cycleSource struct {
	vals []float64
	i    int
}

func (c *cycleSource) Float64() float64 {
	v := c.vals[c.i%len(c.vals)]
	c.i++
	return v
}

var refTime = time.Date(2025, 3, 10, 15, 4, 5, 0, time.UTC)

func TestGenerate_LengthAndContiguousDates(t *testing.T) {
	series, err := Generate(model.SeedParameters{BasePrice: 130000, Volatility: 500, Trend: 5}, refTime, NewSource(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(series) != Horizon+1 {
		t.Fatalf("expected %d records, got %d", Horizon+1, len(series))
	}
	if got := series.Last().Day(); got != "2025-03-10" {
		t.Errorf("expected last date 2025-03-10, got %s", got)
	}
	if got := series.First().Day(); got != "2024-03-10" {
		t.Errorf("expected first date 2024-03-10, got %s", got)
	}
	for i := 1; i < len(series); i++ {
		want := series[i-1].Date.AddDate(0, 0, 1)
		if !series[i].Date.Equal(want) {
			t.Fatalf("record %d: expected %s, got %s", i, want.Format(model.DateLayout), series[i].Day())
		}
	}
}

func TestGenerate_PriceFloor(t *testing.T) {
	tests := []struct {
		name string
		seed model.SeedParameters
	}{
		{"steep downtrend", model.SeedParameters{BasePrice: 21000, Volatility: 150, Trend: -400}},
		{"high volatility", model.SeedParameters{BasePrice: 100, Volatility: 500, Trend: 0}},
		{"odd base", model.SeedParameters{BasePrice: 9001, Volatility: 20, Trend: -50}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			series, err := Generate(tt.seed, refTime, NewSource(7))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			floor := int64(math.Round(0.5 * tt.seed.BasePrice))
			for _, r := range series {
				if r.Price < floor {
					t.Fatalf("%s: price %d below floor %d", r.Day(), r.Price, floor)
				}
			}
		})
	}
}

func TestGenerate_FloorClampsToHalfBase(t *testing.T) {
	series, err := Generate(model.SeedParameters{BasePrice: 100, Volatility: 0, Trend: -1000}, refTime, constSource(0.5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, r := range series {
		if r.Price != 50 {
			t.Fatalf("%s: expected clamped price 50, got %d", r.Day(), r.Price)
		}
	}
}

func TestGenerate_RevenueConsistency(t *testing.T) {
	series, err := Generate(model.SeedParameters{BasePrice: 9000, Volatility: 20, Trend: 0.5}, refTime, NewSource(99))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, r := range series {
		if r.Revenue != r.Price*r.UnitsSold {
			t.Fatalf("%s: revenue %d != %d * %d", r.Day(), r.Revenue, r.Price, r.UnitsSold)
		}
		if r.Price < 0 || r.UnitsSold < 0 || r.ActiveSellers < 0 || r.Revenue < 0 {
			t.Fatalf("%s: negative field in %+v", r.Day(), r)
		}
	}
}

func TestGenerate_WeeklySpikeAnchoredToReference(t *testing.T) {
	// With every draw at 0.5 the price never moves and noise is exactly 1.
	series, err := Generate(model.SeedParameters{BasePrice: 100, Volatility: 40, Trend: 0}, refTime, constSource(0.5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, r := range series {
		offset := Horizon - i
		wantUnits, wantSellers := int64(100), int64(20)
		if offset%7 == 0 {
			wantUnits, wantSellers = 150, 25
		}
		if r.UnitsSold != wantUnits || r.ActiveSellers != wantSellers {
			t.Fatalf("offset %d: expected units=%d sellers=%d, got units=%d sellers=%d",
				offset, wantUnits, wantSellers, r.UnitsSold, r.ActiveSellers)
		}
		if r.Price != 100 || r.Revenue != 100*wantUnits {
			t.Fatalf("offset %d: unexpected price/revenue %d/%d", offset, r.Price, r.Revenue)
		}
	}
	if series.Last().UnitsSold != 150 {
		t.Error("expected the reference day itself to carry the spike")
	}
}

func TestGenerate_KnownSequence(t *testing.T) {
	src := &cycleSource{vals: []float64{0.75, 0.25, 0.5}}
	series, err := Generate(model.SeedParameters{BasePrice: 1000, Volatility: 100, Trend: 1}, refTime, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []model.DailyRecord{
		{Date: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), Price: 1026, UnitsSold: 8, ActiveSellers: 10, Revenue: 8208},
		{Date: time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), Price: 1052, UnitsSold: 12, ActiveSellers: 11, Revenue: 12624},
	}
	if !reflect.DeepEqual(series[:2], model.TimeSeries(want)) {
		t.Errorf("unexpected first records:\n got  %+v\n want %+v", series[:2], want)
	}
	if src.i != 3*(Horizon+1) {
		t.Errorf("expected %d draws, got %d", 3*(Horizon+1), src.i)
	}
}

func TestGenerate_DeterministicWithSeededSource(t *testing.T) {
	seed := model.SeedParameters{BasePrice: 28000, Volatility: 200, Trend: 8}
	a, err := Generate(seed, refTime, NewSource(2024))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Generate(seed, refTime, NewSource(2024))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatal("expected identical series for identical sources")
	}
	c, _ := Generate(seed, refTime, NewSource(2025))
	if reflect.DeepEqual(a, c) {
		t.Error("expected different series for different sources")
	}
}

func TestGenerate_InvalidSeed(t *testing.T) {
	tests := []struct {
		name  string
		seed  model.SeedParameters
		field string
	}{
		{"zero base price", model.SeedParameters{BasePrice: 0, Volatility: 1}, "base_price"},
		{"negative base price", model.SeedParameters{BasePrice: -10, Volatility: 1}, "base_price"},
		{"NaN base price", model.SeedParameters{BasePrice: math.NaN()}, "base_price"},
		{"negative volatility", model.SeedParameters{BasePrice: 100, Volatility: -0.1}, "volatility"},
		{"infinite volatility", model.SeedParameters{BasePrice: 100, Volatility: math.Inf(1)}, "volatility"},
		{"NaN trend", model.SeedParameters{BasePrice: 100, Trend: math.NaN()}, "trend"},
		{"base price too small for unit counts", model.SeedParameters{BasePrice: 1e-15}, "base_price"},
		{"base price too large", model.SeedParameters{BasePrice: 1e19}, "base_price"},
		{"volatility reaches past int range", model.SeedParameters{BasePrice: 100, Volatility: 1e17}, "volatility"},
		{"trend reaches past int range", model.SeedParameters{BasePrice: 100, Trend: 1e15}, "trend"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			series, err := Generate(tt.seed, refTime, constSource(0.5))
			if !errors.Is(err, ErrInvalidSeed) {
				t.Fatalf("expected ErrInvalidSeed, got %v", err)
			}
			var seedErr *InvalidSeedError
			if !errors.As(err, &seedErr) || seedErr.Field != tt.field {
				t.Errorf("expected field %q, got %v", tt.field, err)
			}
			if series != nil {
				t.Error("expected no partial series")
			}
		})
	}
}

func TestGenerate_ExtremeValidSeedsStayNonNegative(t *testing.T) {
	tests := []struct {
		name string
		seed model.SeedParameters
	}{
		{"tiny base price", model.SeedParameters{BasePrice: 1e-6, Volatility: 0, Trend: 0}},
		{"huge base price", model.SeedParameters{BasePrice: 1e15, Volatility: 1e9, Trend: 1e6}},
		{"steep negative trend", model.SeedParameters{BasePrice: 1, Volatility: 0.1, Trend: -1e12}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			series, err := Generate(tt.seed, refTime, NewSource(3))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, r := range series {
				if r.Price < 0 || r.UnitsSold < 0 || r.ActiveSellers < 0 || r.Revenue < 0 {
					t.Fatalf("%s: negative field in %+v", r.Day(), r)
				}
				if r.Revenue != r.Price*r.UnitsSold {
					t.Fatalf("%s: revenue %d != %d * %d", r.Day(), r.Revenue, r.Price, r.UnitsSold)
				}
			}
		})
	}
}

func TestGenerate_ZeroVolatilityIsValid(t *testing.T) {
	if _, err := Generate(model.SeedParameters{BasePrice: 9000, Volatility: 0, Trend: 0}, refTime, constSource(0.1)); err != nil {
		t.Fatalf("zero volatility should be accepted: %v", err)
	}
}
