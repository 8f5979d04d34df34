package dukascopy

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"FXResample/internal/model"
)

// ErrMissingColumn is returned when the header lacks one of the required columns.
var ErrMissingColumn = errors.New("missing required column")

// Columns lists the input columns used for conversion, in output order.
var Columns = []string{"datetime", "open", "high", "low", "close", "volume"}

// missing holds the tokens treated as an absent value.
var missing = map[string]bool{
	"":     true,
	"nan":  true,
	"NaN":  true,
	"NAN":  true,
	"NA":   true,
	"N/A":  true,
	"null": true,
	"NULL": true,
}

// ReadFile opens path and reads it with ReadCSV.
func ReadFile(path string, delimiter rune) (model.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	t, err := ReadCSV(f, delimiter)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return t, nil
}

// ReadCSV decodes a vendor export with a header row into a time-ordered table.
// Only the datetime/open/high/low/close/volume columns are used; any other
// column is ignored. A UTF-8 or UTF-16 byte order mark is honoured.
func ReadCSV(r io.Reader, delimiter rune) (model.Table, error) {
	dec := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	cr := csv.NewReader(bufio.NewReader(dec))
	cr.Comma = delimiter
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty file", ErrMissingColumn)
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	idx, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var table model.Table
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		bar, err := parseRow(rec, idx)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		table = append(table, bar)
	}

	if !table.Sorted() {
		sort.SliceStable(table, func(i, j int) bool { return table[i].Time.Before(table[j].Time) })
	}
	return table, nil
}

func columnIndex(header []string) ([]int, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		if _, dup := pos[name]; !dup {
			pos[name] = i
		}
	}
	idx := make([]int, len(Columns))
	for i, c := range Columns {
		p, ok := pos[c]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, c)
		}
		idx[i] = p
	}
	return idx, nil
}

func parseRow(rec []string, idx []int) (model.OHLCV, error) {
	field := func(i int) (string, error) {
		if idx[i] >= len(rec) {
			return "", fmt.Errorf("short row: no %s field", Columns[i])
		}
		return strings.TrimSpace(rec[idx[i]]), nil
	}

	ts, err := field(0)
	if err != nil {
		return model.OHLCV{}, err
	}
	t, err := ParseDateTime(ts)
	if err != nil {
		return model.OHLCV{}, err
	}

	var vals [5]float64
	for i := range vals {
		s, err := field(i + 1)
		if err != nil {
			return model.OHLCV{}, err
		}
		if missing[s] {
			vals[i] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return model.OHLCV{}, fmt.Errorf("parse %s %q: %w", Columns[i+1], s, err)
		}
		vals[i] = v
	}

	return model.OHLCV{
		Time:   t,
		Open:   vals[0],
		High:   vals[1],
		Low:    vals[2],
		Close:  vals[3],
		Volume: vals[4],
	}, nil
}
