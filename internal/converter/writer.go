package converter

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"FXResample/internal/model"
)

// Header is the first row of every output file.
var Header = []string{"datetime", "open", "high", "low", "close", "volume"}

const (
	dateTimeLayout = "2006-01-02 15:04:05"
	dateLayout     = "2006-01-02"
)

// WriteFile writes t to path as CSV, replacing any existing file.
func WriteFile(path string, t model.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteCSV(f, t); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// WriteCSV writes a header and one row per bar. Timestamps are written as
// dates only when every bar of the table falls on midnight.
func WriteCSV(w io.Writer, t model.Table) error {
	bw := bufio.NewWriter(w)
	cw := csv.NewWriter(bw)

	layout := dateLayout
	for _, b := range t {
		if !isMidnight(b.Time) {
			layout = dateTimeLayout
			break
		}
	}

	if err := cw.Write(Header); err != nil {
		return err
	}
	row := make([]string, len(Header))
	for _, b := range t {
		row[0] = b.Time.Format(layout)
		row[1] = formatFloat(b.Open)
		row[2] = formatFloat(b.High)
		row[3] = formatFloat(b.Low)
		row[4] = formatFloat(b.Close)
		row[5] = formatFloat(b.Volume)
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	return bw.Flush()
}

func isMidnight(t time.Time) bool {
	h, m, s := t.Clock()
	return h == 0 && m == 0 && s == 0 && t.Nanosecond() == 0
}

// formatFloat writes the shortest form of v with at least one decimal
// place, so whole numbers read back as floats ("450.0").
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if math.IsNaN(v) || math.IsInf(v, 0) || strings.ContainsRune(s, '.') {
		return s
	}
	return s + ".0"
}
