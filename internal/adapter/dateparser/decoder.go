package dateparser

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/launch-data-etl/internal/observability"
	dps "github.com/markusmobius/go-dateparser"
)

// Decoder implements domain.DateDecoder with a natural-language date parser.
type Decoder struct {
	metrics *observability.Metrics
	logger  *slog.Logger
}

// NewDecoder creates a fuzzy date decoder. The parser runs with its default
// settings, which detect day-first dotted dates as well as prose dates.
func NewDecoder(metrics *observability.Metrics, logger *slog.Logger) *Decoder {
	return &Decoder{metrics: metrics, logger: logger}
}

// DecodeDate parses an irregular chronology date such as "04.10.1957" or
// "4 October 1957".
func (d *Decoder) DecodeDate(value string) (time.Time, error) {
	start := time.Now()
	dt, err := dps.Parse(nil, value)
	d.metrics.FuzzyDecodeDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", value, err)
	}
	if dt.Time.IsZero() {
		return time.Time{}, fmt.Errorf("parse date %q: no date found", value)
	}

	d.logger.Debug("fuzzy date decoded", "input", value, "date", dt.Time.Format(time.DateOnly))
	return dt.Time, nil
}
