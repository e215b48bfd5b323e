package recorder

import "time"

// GenerationEvent describes one call to the history synthesizer.
type GenerationEvent struct {
	ProductID  string
	BasePrice  float64
	Volatility float64
	Trend      float64
	Records    int
	FirstDate  string
	LastDate   string
	Duration   time.Duration
	Err        string // empty on success
}

// AggregationEvent describes one window aggregation.
type AggregationEvent struct {
	ProductID         string
	Window            string
	Records           int
	AveragePrice      int64
	TotalUnitsSold    int64
	PeakActiveSellers int64
	Err               string
}

// Recorder keeps an audit trail of generations and aggregations. It never
// stores the series themselves.
type Recorder interface {
	RecordGeneration(evt *GenerationEvent) error
	RecordAggregation(evt *AggregationEvent) error
	Close() error
}
