package converter

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FXResample/internal/model"
)

func TestWriteCSV_Intraday(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, model.Table{
		{Time: time.Date(2018, 3, 5, 0, 0, 0, 0, time.UTC), Open: 1.1, High: 1.2, Low: 1, Close: 1.15, Volume: 0.5},
		{Time: time.Date(2018, 3, 5, 0, 1, 0, 0, time.UTC), Open: 1.15, High: 1.2, Low: 1.1, Close: 1.12346, Volume: 12},
	})
	require.NoError(t, err)
	assert.Equal(t, "datetime,open,high,low,close,volume\n"+
		"2018-03-05 00:00:00,1.1,1.2,1.0,1.15,0.5\n"+
		"2018-03-05 00:01:00,1.15,1.2,1.1,1.12346,12.0\n", buf.String())
}

func TestWriteCSV_DailyUsesDates(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, model.Table{
		{Time: time.Date(2018, 3, 5, 0, 0, 0, 0, time.UTC), Open: 1.1, High: 1.2, Low: 1, Close: 1.15, Volume: 3},
		{Time: time.Date(2018, 3, 6, 0, 0, 0, 0, time.UTC), Open: 1.15, High: 1.2, Low: 1.1, Close: 1.12, Volume: 4},
	})
	require.NoError(t, err)
	assert.Equal(t, "datetime,open,high,low,close,volume\n"+
		"2018-03-05,1.1,1.2,1.0,1.15,3.0\n"+
		"2018-03-06,1.15,1.2,1.1,1.12,4.0\n", buf.String())
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "datetime,open,high,low,close,volume\n", buf.String())
}

func TestFormatFloat_KeepsDecimalPoint(t *testing.T) {
	assert.Equal(t, "1.0", formatFloat(1))
	assert.Equal(t, "450.0", formatFloat(450))
	assert.Equal(t, "0.0", formatFloat(0))
	assert.Equal(t, "-2.0", formatFloat(-2))
	assert.Equal(t, "1.12346", formatFloat(1.12346))
	assert.Equal(t, "0.00001", formatFloat(0.00001))
}
