package resample

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"FXResample/internal/model"
)

// ErrUnsupportedInterval is returned for interval labels the resampler cannot bucket.
var ErrUnsupportedInterval = errors.New("unsupported interval")

// labeler maps a timestamp to the label of the bucket that contains it.
type labeler func(t time.Time) time.Time

// newLabeler builds the bucketing rule for an interval. Fixed-width bins are
// anchored at midnight of origin's day; weeks end on Sunday and months at
// their last day, both labelled by the closing day and including all of it.
func newLabeler(iv model.Interval, origin time.Time) (labeler, error) {
	n, unit, err := splitInterval(iv)
	if err != nil {
		return nil, err
	}

	var width time.Duration
	switch unit {
	case "min", "t":
		width = time.Duration(n) * time.Minute
	case "h":
		width = time.Duration(n) * time.Hour
	case "d":
		width = time.Duration(n) * 24 * time.Hour
	case "w":
		if n != 1 {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedInterval, iv)
		}
		return weekEnd, nil
	case "m":
		if n != 1 {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedInterval, iv)
		}
		return monthEnd, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedInterval, iv)
	}

	anchor := midnight(origin)
	return func(t time.Time) time.Time {
		offset := t.Sub(anchor)
		k := offset / width
		if offset < 0 && offset%width != 0 {
			k--
		}
		return anchor.Add(k * width)
	}, nil
}

// splitInterval parses labels like "15Min", "4H", "1D", "1W", "1M".
// The unit is case-sensitive only for "M" (month) versus "Min"/"T" (minute).
func splitInterval(iv model.Interval) (int, string, error) {
	s := strings.TrimSpace(string(iv))
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	n := 1
	if i > 0 {
		v, err := strconv.Atoi(s[:i])
		if err != nil || v <= 0 {
			return 0, "", fmt.Errorf("%w: %s", ErrUnsupportedInterval, iv)
		}
		n = v
	}
	unit := s[i:]
	if unit == "M" {
		return n, "m", nil
	}
	unit = strings.ToLower(unit)
	if unit == "m" {
		// lower-case "m" is ambiguous, treat it as minutes like most exchange APIs
		return n, "min", nil
	}
	return n, unit, nil
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// weekEnd labels t with the Sunday closing its week. The closing Sunday is
// included up to the end of the day.
func weekEnd(t time.Time) time.Time {
	day := midnight(t)
	return day.AddDate(0, 0, (7-int(day.Weekday()))%7)
}

// monthEnd labels t with the last day of its month, midnight.
func monthEnd(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m+1, 0, 0, 0, 0, 0, t.Location())
}
