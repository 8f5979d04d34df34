package model

import (
	"math"
	"time"
)

// OHLCV represents a single candlestick bar. Missing values are NaN.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Flat reports whether the bar has no price movement at all.
func (b OHLCV) Flat() bool {
	return b.Open == b.High && b.High == b.Low && b.Low == b.Close
}

// Complete reports whether every price field is present.
func (b OHLCV) Complete() bool {
	return !math.IsNaN(b.Open) && !math.IsNaN(b.High) && !math.IsNaN(b.Low) && !math.IsNaN(b.Close)
}

// Table is an ordered-by-time series of bars for one pair, one year and one granularity.
type Table []OHLCV

// Sorted reports whether the bars are in non-decreasing time order.
func (t Table) Sorted() bool {
	for i := 1; i < len(t); i++ {
		if t[i].Time.Before(t[i-1].Time) {
			return false
		}
	}
	return true
}
