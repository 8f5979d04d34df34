package converter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"FXResample/internal/dukascopy"
	"FXResample/internal/model"
	"FXResample/internal/recorder"
	"FXResample/internal/resample"
)

// Places is the number of decimals kept in every written value.
const Places = 5

// Converter turns one vendor minute file into one CSV per ladder interval.
type Converter struct {
	OutputDir string
	Ladder    []model.Interval
	Log       zerolog.Logger
}

// NewConverter creates a Converter writing below outputDir with the standard ladder.
func NewConverter(outputDir string, log zerolog.Logger) *Converter {
	return &Converter{OutputDir: outputDir, Ladder: model.Ladder, Log: log}
}

// Result summarizes a conversion.
type Result struct {
	Source   string
	RowsRead int
	Outputs  []recorder.OutputRecord
}

// Dir returns the directory holding the files for a pair and year.
func (c *Converter) Dir(currencyPair, year string) string {
	return filepath.Join(c.OutputDir, "CurrencyPairs", currencyPair, year)
}

// Convert reads <path>.csv and writes <OutputDir>/CurrencyPairs/<pair>/<year>/<interval>.csv
// for every interval of the ladder. Each interval is resampled from the
// previous interval's written table.
func (c *Converter) Convert(path, currencyPair, year string, delimiter rune) (*Result, error) {
	source := path + ".csv"
	table, err := dukascopy.ReadFile(source, delimiter)
	if err != nil {
		return nil, err
	}
	c.Log.Debug().Str("source", source).Int("rows", len(table)).Msg("input loaded")

	dir := c.Dir(currencyPair, year)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	res := &Result{Source: source, RowsRead: len(table)}
	current := table
	for _, iv := range c.Ladder {
		sampled, err := resample.Resample(current, iv)
		if err != nil {
			return nil, fmt.Errorf("resample %s: %w", iv, err)
		}
		moving := resample.DropFlat(sampled)
		current = resample.Round(moving, Places)

		file := filepath.Join(dir, iv.String()+".csv")
		if err := WriteFile(file, current); err != nil {
			return nil, err
		}
		res.Outputs = append(res.Outputs, recorder.OutputRecord{
			Interval: iv,
			File:     file,
			Rows:     len(current),
			Dropped:  len(sampled) - len(moving),
		})
		c.Log.Debug().
			Str("pair", currencyPair).
			Str("year", year).
			Str("interval", iv.String()).
			Int("rows", len(current)).
			Int("dropped_flat", len(sampled)-len(moving)).
			Msg("interval written")
	}
	return res, nil
}
