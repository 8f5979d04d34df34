package dukascopy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDateTime(t *testing.T) {
	got, err := NormalizeDateTime("05.03.2018 14:23:07.450")
	require.NoError(t, err)
	assert.Equal(t, "2018-03-05 14:23:07", got)
}

func TestNormalizeDateTime_NoFraction(t *testing.T) {
	got, err := NormalizeDateTime("31.12.2019 23:59:59")
	require.NoError(t, err)
	assert.Equal(t, "2019-12-31 23:59:59", got)
}

func TestNormalizeDateTime_Malformed(t *testing.T) {
	for _, in := range []string{
		"",
		"05.03.2018",
		"05.03.2018 14:23:07.450 extra",
		"05-03-2018 14:23:07.450",
		"05.03 14:23:07.450",
		"05.03.2018 14:23",
		"05.03.2018 14:23:07:01",
	} {
		_, err := NormalizeDateTime(in)
		assert.ErrorIs(t, err, ErrMalformedDateTime, "input %q", in)
	}
}

func TestParseDateTime(t *testing.T) {
	got, err := ParseDateTime("05.03.2018 14:23:07.450")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2018, 3, 5, 14, 23, 7, 0, time.UTC)), "got %v", got)
}

func TestParseDateTime_InvalidField(t *testing.T) {
	_, err := ParseDateTime("05.13.2018 14:23:07.450")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMalformedDateTime)
}
