package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the wire format of a DailyRecord date.
const DateLayout = "2006-01-02"

// SeedParameters parameterize a product's synthetic price walk.
type SeedParameters struct {
	BasePrice  float64 `json:"base_price" yaml:"base_price"`
	Volatility float64 `json:"volatility" yaml:"volatility"`
	Trend      float64 `json:"trend" yaml:"trend"`
}

// DailyRecord is one simulated marketplace day.
type DailyRecord struct {
	Date          time.Time `json:"date"`
	Price         int64     `json:"price"`
	UnitsSold     int64     `json:"units_sold"`
	ActiveSellers int64     `json:"active_sellers"`
	Revenue       int64     `json:"revenue"`
}

// Day returns the record date formatted as YYYY-MM-DD.
func (r DailyRecord) Day() string {
	return r.Date.Format(DateLayout)
}

type dailyRecordJSON struct {
	Date          string `json:"date"`
	Price         int64  `json:"price"`
	UnitsSold     int64  `json:"units_sold"`
	ActiveSellers int64  `json:"active_sellers"`
	Revenue       int64  `json:"revenue"`
}

// MarshalJSON writes the date as YYYY-MM-DD.
func (r DailyRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(dailyRecordJSON{
		Date:          r.Day(),
		Price:         r.Price,
		UnitsSold:     r.UnitsSold,
		ActiveSellers: r.ActiveSellers,
		Revenue:       r.Revenue,
	})
}

func (r *DailyRecord) UnmarshalJSON(data []byte) error {
	var raw dailyRecordJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	d, err := time.Parse(DateLayout, raw.Date)
	if err != nil {
		return fmt.Errorf("daily record date: %w", err)
	}
	*r = DailyRecord{
		Date:          d,
		Price:         raw.Price,
		UnitsSold:     raw.UnitsSold,
		ActiveSellers: raw.ActiveSellers,
		Revenue:       raw.Revenue,
	}
	return nil
}

// TimeSeries is a chronologically ascending run of daily records.
type TimeSeries []DailyRecord

// First returns the oldest record. It panics on an empty series.
func (s TimeSeries) First() DailyRecord { return s[0] }

// Last returns the newest record. It panics on an empty series.
func (s TimeSeries) Last() DailyRecord { return s[len(s)-1] }
