package resample

import (
	"math"

	"github.com/shopspring/decimal"

	"FXResample/internal/model"
)

// DropFlat returns the bars that show any movement, discarding those where
// open, high, low and close are all equal.
func DropFlat(t model.Table) model.Table {
	out := make(model.Table, 0, len(t))
	for _, b := range t {
		if b.Flat() {
			continue
		}
		out = append(out, b)
	}
	return out
}

// Round returns a copy of t with every numeric field rounded to the given
// number of decimal places. Ties are decided on the shortest decimal form of
// the value and round away from zero, so 1.000005 becomes 1.00001.
func Round(t model.Table, places int32) model.Table {
	out := make(model.Table, len(t))
	for i, b := range t {
		out[i] = model.OHLCV{
			Time:   b.Time,
			Open:   roundFloat(b.Open, places),
			High:   roundFloat(b.High, places),
			Low:    roundFloat(b.Low, places),
			Close:  roundFloat(b.Close, places),
			Volume: roundFloat(b.Volume, places),
		}
	}
	return out
}

func roundFloat(v float64, places int32) float64 {
	// decimal cannot represent NaN or Inf
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}
