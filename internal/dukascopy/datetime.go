package dukascopy

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrMalformedDateTime is returned when a vendor timestamp does not have the
// DD.MM.YYYY HH:MM:SS.fff shape.
var ErrMalformedDateTime = errors.New("malformed dukascopy datetime")

// Layout is the normalized form produced by NormalizeDateTime.
const Layout = "2006-01-02 15:04:05"

// NormalizeDateTime rewrites "DD.MM.YYYY HH:MM:SS.fff" as "YYYY-MM-DD HH:MM:SS".
// Fractional seconds are truncated.
func NormalizeDateTime(s string) (string, error) {
	tokens := strings.Split(s, " ")
	if len(tokens) != 2 {
		return "", fmt.Errorf("%w: %q: expected date and time", ErrMalformedDateTime, s)
	}
	date := strings.Split(tokens[0], ".")
	if len(date) != 3 {
		return "", fmt.Errorf("%w: %q: expected DD.MM.YYYY", ErrMalformedDateTime, s)
	}
	clock := strings.Split(tokens[1], ":")
	if len(clock) != 3 {
		return "", fmt.Errorf("%w: %q: expected HH:MM:SS", ErrMalformedDateTime, s)
	}
	sec, _, _ := strings.Cut(clock[2], ".")

	return date[2] + "-" + date[1] + "-" + date[0] + " " + clock[0] + ":" + clock[1] + ":" + sec, nil
}

// ParseDateTime normalizes a vendor timestamp and parses it as UTC.
func ParseDateTime(s string) (time.Time, error) {
	norm, err := NormalizeDateTime(s)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(Layout, norm)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse datetime %q: %w", s, err)
	}
	return t, nil
}
