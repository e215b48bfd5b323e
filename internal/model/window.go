package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownWindow is returned for a window selector outside the fixed set.
var ErrUnknownWindow = errors.New("unknown window")

// Window selects how many trailing days are displayed and aggregated.
type Window string

const (
	WindowWeek     Window = "week"
	WindowMonth    Window = "month"
	WindowHalfYear Window = "half-year"
	WindowYear     Window = "year"
)

// Windows lists every selector in display order.
var Windows = []Window{WindowWeek, WindowMonth, WindowHalfYear, WindowYear}

var windowDays = map[Window]int{
	WindowWeek:     7,
	WindowMonth:    30,
	WindowHalfYear: 180,
	WindowYear:     365,
}

// Days returns the day count of the window, or an error for unknown values.
func (w Window) Days() (int, error) {
	d, ok := windowDays[w]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownWindow, string(w))
	}
	return d, nil
}

// ParseWindow maps user input to a Window. "half" is accepted for half-year.
func ParseWindow(s string) (Window, error) {
	switch w := Window(strings.ToLower(strings.TrimSpace(s))); w {
	case WindowWeek, WindowMonth, WindowHalfYear, WindowYear:
		return w, nil
	case "half":
		return WindowHalfYear, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownWindow, s)
	}
}

// AggregateResult holds the summary statistics of one window.
type AggregateResult struct {
	AveragePrice      int64 `json:"average_price"`
	TotalUnitsSold    int64 `json:"total_units_sold"`
	PeakActiveSellers int64 `json:"peak_active_sellers"`
}
