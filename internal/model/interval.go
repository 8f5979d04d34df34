package model

// Interval is a target granularity label, also used as the output file name.
type Interval string

const (
	Interval1Min  Interval = "1Min"
	Interval5Min  Interval = "5Min"
	Interval15Min Interval = "15Min"
	Interval30Min Interval = "30Min"
	Interval1H    Interval = "1H"
	Interval2H    Interval = "2H"
	Interval4H    Interval = "4H"
	Interval6H    Interval = "6H"
	Interval8H    Interval = "8H"
	Interval1D    Interval = "1D"
	Interval1W    Interval = "1W"
	Interval1M    Interval = "1M"
)

// Ladder is the ordered sequence of granularities applied during conversion.
// Each step is resampled from the previous step's output.
var Ladder = []Interval{
	Interval1Min,
	Interval5Min,
	Interval15Min,
	Interval30Min,
	Interval1H,
	Interval2H,
	Interval4H,
	Interval6H,
	Interval8H,
	Interval1D,
	Interval1W,
	Interval1M,
}

func (i Interval) String() string { return string(i) }
