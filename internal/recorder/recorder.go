package recorder

import (
	"time"

	"FXResample/internal/model"
)

// OutputRecord describes one interval file written by a conversion.
type OutputRecord struct {
	Interval model.Interval `json:"interval"`
	File     string         `json:"file"`
	Rows     int            `json:"rows"`
	Dropped  int            `json:"dropped_flat"`
}

// ConversionRecord holds the outcome of converting one pair/year input file.
type ConversionRecord struct {
	RunID        string         `json:"run_id"`
	CurrencyPair string         `json:"currency_pair"`
	Year         string         `json:"year"`
	Source       string         `json:"source"`
	RowsRead     int            `json:"rows_read"`
	Outputs      []OutputRecord `json:"outputs"`
	ConvertedAt  time.Time      `json:"converted_at"`
}

// Recorder persists conversion history.
type Recorder interface {
	RecordConversion(rec *ConversionRecord) error
	Close() error
}
