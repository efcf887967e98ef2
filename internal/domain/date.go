package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// YearMinimum is the year of the first orbital launch (Sputnik 1).
const YearMinimum = 1957

var (
	ErrDateTooShort     = errors.New("fewer than 4 characters")
	ErrDateNotNumeric   = errors.New("year prefix is not numeric")
	ErrYearOutOfRange   = errors.New("year out of range")
	ErrNoFuzzyDecoder   = errors.New("no fuzzy date decoder configured")
	ErrUndatedLaunch    = errors.New("launch has no known date")
	errEmptyFuzzyDecode = errors.New("decoder returned no date")
)

// DateDecoder decodes an irregular, human-formatted date string.
type DateDecoder interface {
	DecodeDate(value string) (time.Time, error)
}

// DateMode names the decoding path taken for a date string.
type DateMode string

const (
	DateModeFuzzy DateMode = "fuzzy"
	DateModeExact DateMode = "exact"
)

// MalformedDateError reports a date string that does not resolve to a
// plausible launch year. It is fatal for the record and for its batch.
type MalformedDateError struct {
	Date string
	Mode DateMode
	Err  error
}

func (e *MalformedDateError) Error() string {
	return fmt.Sprintf("malformed launch date %q (%s): %v", e.Date, e.Mode, e.Err)
}

func (e *MalformedDateError) Unwrap() error { return e.Err }

// YearMaximum returns the last complete year. The current year is excluded
// because its counts are partial.
func YearMaximum() int {
	return clock.Now().Year() - 1
}

// IsUndated reports whether a chronology date is a placeholder with an
// unknown day, e.g. "xx.10.1962".
func IsUndated(date string) bool {
	return strings.Contains(date, "x")
}

// decodeExactYear reads the year from the leading four characters of a
// year-first date such as "1996-01-01".
func decodeExactYear(date string) (int, error) {
	if len(date) < 4 {
		return 0, &MalformedDateError{Date: date, Mode: DateModeExact, Err: ErrDateTooShort}
	}
	prefix := date[:4]
	for i := 0; i < len(prefix); i++ {
		if prefix[i] < '0' || prefix[i] > '9' {
			return 0, &MalformedDateError{Date: date, Mode: DateModeExact, Err: ErrDateNotNumeric}
		}
	}
	year, err := strconv.Atoi(prefix)
	if err != nil {
		return 0, &MalformedDateError{Date: date, Mode: DateModeExact, Err: err}
	}
	return year, nil
}

func decodeFuzzyYear(decoder DateDecoder, date string) (int, error) {
	if decoder == nil {
		return 0, &MalformedDateError{Date: date, Mode: DateModeFuzzy, Err: ErrNoFuzzyDecoder}
	}
	t, err := decoder.DecodeDate(date)
	if err != nil {
		return 0, &MalformedDateError{Date: date, Mode: DateModeFuzzy, Err: err}
	}
	if t.IsZero() {
		return 0, &MalformedDateError{Date: date, Mode: DateModeFuzzy, Err: errEmptyFuzzyDecode}
	}
	return t.Year(), nil
}

func checkYear(date string, mode DateMode, year int) error {
	if year < YearMinimum || year > YearMaximum() {
		return &MalformedDateError{
			Date: date,
			Mode: mode,
			Err:  fmt.Errorf("%w: %d not in [%d, %d]", ErrYearOutOfRange, year, YearMinimum, YearMaximum()),
		}
	}
	return nil
}
