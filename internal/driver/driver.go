package driver

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"FXResample/internal/converter"
	"FXResample/internal/recorder"
)

// FileConverter converts one pair/year input file.
type FileConverter interface {
	Convert(path, currencyPair, year string, delimiter rune) (*converter.Result, error)
}

// Driver runs the converter over every currency pair and year, in order.
type Driver struct {
	Converter     FileConverter
	Recorder      recorder.Recorder
	InputDir      string
	CurrencyPairs []string
	Years         []string
	Delimiter     rune
	Log           zerolog.Logger
}

// InputBase returns the input path without extension, <dir>/<pair>M1<year>.
func InputBase(dir, currencyPair, year string) string {
	return filepath.Join(dir, currencyPair+"M1"+year)
}

// Run converts every pair/year combination sequentially and stops at the
// first error. Cancellation is honoured between combinations.
func (d *Driver) Run(ctx context.Context) error {
	runID := uuid.NewString()
	log := d.Log.With().Str("run_id", runID).Logger()
	start := time.Now()
	log.Info().
		Strs("currency_pairs", d.CurrencyPairs).
		Strs("years", d.Years).
		Msg("conversion run started")

	count := 0
	for _, pair := range d.CurrencyPairs {
		for _, year := range d.Years {
			if err := ctx.Err(); err != nil {
				return err
			}

			path := InputBase(d.InputDir, pair, year)
			res, err := d.Converter.Convert(path, pair, year, d.Delimiter)
			if err != nil {
				return fmt.Errorf("convert %s %s: %w", pair, year, err)
			}
			if d.Recorder != nil {
				if err := d.Recorder.RecordConversion(&recorder.ConversionRecord{
					RunID:        runID,
					CurrencyPair: pair,
					Year:         year,
					Source:       res.Source,
					RowsRead:     res.RowsRead,
					Outputs:      res.Outputs,
					ConvertedAt:  time.Now().UTC(),
				}); err != nil {
					return fmt.Errorf("record %s %s: %w", pair, year, err)
				}
			}
			count++
			log.Info().
				Str("pair", pair).
				Str("year", year).
				Int("rows_read", res.RowsRead).
				Int("files", len(res.Outputs)).
				Msg("converted")
		}
	}

	log.Info().Int("conversions", count).Dur("elapsed", time.Since(start)).Msg("conversion run finished")
	return nil
}
