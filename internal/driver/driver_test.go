package driver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FXResample/internal/converter"
	"FXResample/internal/model"
	"FXResample/internal/recorder"
)

type call struct {
	path, pair, year string
	delimiter        rune
}

type fakeConverter struct {
	calls  []call
	failOn string
}

func (f *fakeConverter) Convert(path, pair, year string, delimiter rune) (*converter.Result, error) {
	f.calls = append(f.calls, call{path, pair, year, delimiter})
	if pair+year == f.failOn {
		return nil, errors.New("boom")
	}
	return &converter.Result{Source: path + ".csv", RowsRead: 10}, nil
}

type memRecorder struct {
	records []recorder.ConversionRecord
}

func (m *memRecorder) RecordConversion(rec *recorder.ConversionRecord) error {
	m.records = append(m.records, *rec)
	return nil
}

func (m *memRecorder) Close() error { return nil }

func TestRun_Order(t *testing.T) {
	fc := &fakeConverter{}
	rec := &memRecorder{}
	d := &Driver{
		Converter:     fc,
		Recorder:      rec,
		InputDir:      "in",
		CurrencyPairs: []string{"EURUSD", "GBPUSD"},
		Years:         []string{"2018", "2019"},
		Delimiter:     ',',
		Log:           zerolog.Nop(),
	}
	require.NoError(t, d.Run(context.Background()))

	assert.Equal(t, []call{
		{filepath.Join("in", "EURUSDM12018"), "EURUSD", "2018", ','},
		{filepath.Join("in", "EURUSDM12019"), "EURUSD", "2019", ','},
		{filepath.Join("in", "GBPUSDM12018"), "GBPUSD", "2018", ','},
		{filepath.Join("in", "GBPUSDM12019"), "GBPUSD", "2019", ','},
	}, fc.calls)

	require.Len(t, rec.records, 4)
	assert.NotEmpty(t, rec.records[0].RunID)
	for _, r := range rec.records {
		assert.Equal(t, rec.records[0].RunID, r.RunID)
	}
	assert.Equal(t, "GBPUSD", rec.records[3].CurrencyPair)
	assert.Equal(t, 10, rec.records[3].RowsRead)
}

func TestRun_StopsOnFirstError(t *testing.T) {
	fc := &fakeConverter{failOn: "EURUSD2019"}
	d := &Driver{
		Converter:     fc,
		CurrencyPairs: []string{"EURUSD", "GBPUSD"},
		Years:         []string{"2018", "2019"},
		Delimiter:     ',',
		Log:           zerolog.Nop(),
	}
	err := d.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EURUSD 2019")
	assert.Len(t, fc.calls, 2)
}

func TestRun_Cancelled(t *testing.T) {
	fc := &fakeConverter{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := &Driver{Converter: fc, CurrencyPairs: []string{"EURUSD"}, Years: []string{"2018"}, Log: zerolog.Nop()}
	assert.ErrorIs(t, d.Run(ctx), context.Canceled)
	assert.Empty(t, fc.calls)
}

func TestRun_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	input := "datetime,open,high,low,close,volume\n" +
		"05.03.2018 09:00:00.000,1.1,1.2,1.0,1.15,100\n" +
		"05.03.2018 09:01:00.000,1.2,1.25,1.15,1.18,200\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "EURUSDM12018.csv"), []byte(input), 0o644))

	manifest := filepath.Join(dir, "manifest.json")
	rec, err := recorder.NewManifestRecorder(manifest)
	require.NoError(t, err)

	out := filepath.Join(dir, "FXData")
	d := &Driver{
		Converter:     converter.NewConverter(out, zerolog.Nop()),
		Recorder:      rec,
		InputDir:      dir,
		CurrencyPairs: []string{"EURUSD"},
		Years:         []string{"2018"},
		Delimiter:     ',',
		Log:           zerolog.Nop(),
	}
	require.NoError(t, d.Run(context.Background()))

	for _, iv := range model.Ladder {
		assert.FileExists(t, filepath.Join(out, "CurrencyPairs", "EURUSD", "2018", iv.String()+".csv"))
	}
	m, err := recorder.LoadManifest(manifest)
	require.NoError(t, err)
	require.Len(t, m.Conversions, 1)
	assert.Len(t, m.Conversions[0].Outputs, len(model.Ladder))
}

func TestRun_MissingInputAborts(t *testing.T) {
	dir := t.TempDir()
	d := &Driver{
		Converter:     converter.NewConverter(filepath.Join(dir, "FXData"), zerolog.Nop()),
		InputDir:      dir,
		CurrencyPairs: []string{"EURUSD"},
		Years:         []string{"2018", "2019"},
		Delimiter:     ',',
		Log:           zerolog.Nop(),
	}
	assert.ErrorIs(t, d.Run(context.Background()), os.ErrNotExist)
}
