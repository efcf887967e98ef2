package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/couchcryptid/launch-data-etl/internal/domain"
	"github.com/couchcryptid/launch-data-etl/internal/observability"
)

// DateModeHeader lets a producer mark payloads that carry canonical
// year-first dates, e.g. when replaying the persisted table.
const DateModeHeader = "date_mode"

// LaunchTransformer implements Transformer using the domain normalizer.
type LaunchTransformer struct {
	normalizer *domain.Normalizer
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewTransformer creates a LaunchTransformer.
func NewTransformer(normalizer *domain.Normalizer, logger *slog.Logger, metrics *observability.Metrics) *LaunchTransformer {
	return &LaunchTransformer{
		normalizer: normalizer,
		logger:     logger,
		metrics:    metrics,
	}
}

// Transform decodes a flat JSON launch row and normalizes it. Rows are
// decoded in fuzzy date mode unless the date_mode header says "exact".
func (t *LaunchTransformer) Transform(_ context.Context, raw domain.RawEvent) (domain.LaunchEvent, error) {
	var row domain.RawLaunch
	if err := json.Unmarshal(raw.Value, &row); err != nil {
		return domain.LaunchEvent{}, fmt.Errorf("parse raw launch: %w", err)
	}
	if domain.IsUndated(row.Date) {
		return domain.LaunchEvent{}, fmt.Errorf("date %q: %w", row.Date, domain.ErrUndatedLaunch)
	}

	fuzzy := raw.Headers[DateModeHeader] != string(domain.DateModeExact)
	rec, err := t.normalizer.Normalize(row, fuzzy)
	if err != nil {
		countDateError(t.metrics, err)
		return domain.LaunchEvent{}, err
	}
	observeRecord(t.logger, t.metrics, rec)

	return domain.LaunchEvent{
		ID:          domain.LaunchID(row),
		Record:      rec,
		ProcessedAt: domain.Now(),
	}, nil
}

// observeRecord counts a normalized record and reports classification misses
// as soft warnings.
func observeRecord(logger *slog.Logger, metrics *observability.Metrics, rec domain.LaunchRecord) {
	metrics.RecordsNormalized.Inc()
	if rec.Country == domain.CountryUnknown {
		metrics.Unclassified.WithLabelValues("country").Inc()
		logger.Warn("launch site not classified", "site", rec.Site, "year", rec.Year)
	}
	if rec.Family == domain.FamilyUnknown {
		metrics.Unclassified.WithLabelValues("family").Inc()
		logger.Debug("vehicle family not classified", "vehicle", rec.Vehicle, "year", rec.Year)
	}
}

func countDateError(metrics *observability.Metrics, err error) {
	var mde *domain.MalformedDateError
	if errors.As(err, &mde) {
		metrics.DateDecodeErrors.WithLabelValues(string(mde.Mode)).Inc()
	}
}
