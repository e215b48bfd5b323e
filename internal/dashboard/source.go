package dashboard

import (
	"hash/fnv"
	"time"

	"MarketAnalytic/internal/synth"
)

// SourceFactory returns a fresh random source for one generation of a product.
// Every call must return an independent source.
type SourceFactory func(productID string) synth.Source

// SeededSources makes generation reproducible: the same seed and product id
// always produce the same draws.
func SeededSources(seed int64) SourceFactory {
	return func(productID string) synth.Source {
		return synth.NewSource(seed ^ productHash(productID))
	}
}

// ClockSources seeds each source from the wall clock.
func ClockSources() SourceFactory {
	return func(productID string) synth.Source {
		return synth.NewSource(time.Now().UnixNano() ^ productHash(productID))
	}
}

func productHash(productID string) int64 {
	h := fnv.New64a()
	h.Write([]byte(productID))
	return int64(h.Sum64())
}
