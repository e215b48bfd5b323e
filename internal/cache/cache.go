// Package cache keeps generated series per product so they are not
// regenerated on every interaction.
package cache

import (
	"context"
	"time"

	"MarketAnalytic/internal/model"
)

// Entry is one cached series and the seed it was generated from.
type Entry struct {
	Seed        model.SeedParameters `json:"seed"`
	GeneratedAt time.Time            `json:"generated_at"`
	Series      model.TimeSeries     `json:"series"`
}

// Fresh reports whether the entry was generated from seed and ends on day.
func (e Entry) Fresh(seed model.SeedParameters, day time.Time) bool {
	if e.Seed != seed || len(e.Series) == 0 {
		return false
	}
	y, m, d := day.Date()
	ly, lm, ld := e.Series.Last().Date.Date()
	return y == ly && m == lm && d == ld
}

// SeriesCache stores entries by product id. Get reports a miss with ok=false
// and a nil error.
type SeriesCache interface {
	Get(ctx context.Context, productID string) (Entry, bool, error)
	Put(ctx context.Context, productID string, e Entry) error
	Delete(ctx context.Context, productID string) error
}
