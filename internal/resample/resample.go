package resample

import (
	"math"
	"sort"
	"time"

	"FXResample/internal/model"
)

// Resample aggregates t into buckets of the given interval: open is the first
// value, high the max, low the min, close the last and volume the sum.
// Missing values are skipped. Buckets without data, or without any price in
// one of the open/high/low/close columns, are dropped. The input is not modified.
func Resample(t model.Table, iv model.Interval) (model.Table, error) {
	if len(t) == 0 {
		if _, err := newLabeler(iv, time.Time{}); err != nil {
			return nil, err
		}
		return model.Table{}, nil
	}

	src := t
	if !t.Sorted() {
		src = make(model.Table, len(t))
		copy(src, t)
		sort.SliceStable(src, func(i, j int) bool { return src[i].Time.Before(src[j].Time) })
	}

	label, err := newLabeler(iv, src[0].Time)
	if err != nil {
		return nil, err
	}

	out := make(model.Table, 0, len(src)/2+1)
	var bucket model.OHLCV
	started := false

	for _, b := range src {
		key := label(b.Time)
		if !started || !key.Equal(bucket.Time) {
			if started && bucket.Complete() {
				out = append(out, bucket)
			}
			bucket = model.OHLCV{
				Time:   key,
				Open:   math.NaN(),
				High:   math.NaN(),
				Low:    math.NaN(),
				Close:  math.NaN(),
				Volume: 0,
			}
			started = true
		}
		merge(&bucket, b)
	}
	if started && bucket.Complete() {
		out = append(out, bucket)
	}
	return out, nil
}

func merge(agg *model.OHLCV, b model.OHLCV) {
	if math.IsNaN(agg.Open) {
		agg.Open = b.Open
	}
	if !math.IsNaN(b.High) && (math.IsNaN(agg.High) || b.High > agg.High) {
		agg.High = b.High
	}
	if !math.IsNaN(b.Low) && (math.IsNaN(agg.Low) || b.Low < agg.Low) {
		agg.Low = b.Low
	}
	if !math.IsNaN(b.Close) {
		agg.Close = b.Close
	}
	if !math.IsNaN(b.Volume) {
		agg.Volume += b.Volume
	}
}
