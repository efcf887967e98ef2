package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/couchcryptid/launch-data-etl/internal/domain"
	"github.com/couchcryptid/launch-data-etl/internal/observability"
	"golang.org/x/sync/errgroup"
)

// BatchNormalizer normalizes whole collections of raw rows in parallel.
type BatchNormalizer struct {
	normalizer *domain.Normalizer
	workers    int
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewBatchNormalizer creates a BatchNormalizer running up to workers
// normalizations at once.
func NewBatchNormalizer(normalizer *domain.Normalizer, workers int, logger *slog.Logger, metrics *observability.Metrics) *BatchNormalizer {
	if workers < 1 {
		workers = 1
	}
	return &BatchNormalizer{
		normalizer: normalizer,
		workers:    workers,
		logger:     logger,
		metrics:    metrics,
	}
}

// NormalizeAll normalizes rows and returns the records in input order. The
// batch is atomic: the first malformed date cancels the remaining work and
// no records are returned.
func (b *BatchNormalizer) NormalizeAll(ctx context.Context, rows []domain.RawLaunch, fuzzyDate bool) ([]domain.LaunchRecord, error) {
	out := make([]domain.LaunchRecord, len(rows))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers)

	for i, row := range rows {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rec, err := b.normalizer.Normalize(row, fuzzyDate)
			if err != nil {
				countDateError(b.metrics, err)
				return fmt.Errorf("row %d: %w", i+1, err)
			}
			// Each goroutine owns its slot, so results keep input order.
			out[i] = rec
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, rec := range out {
		observeRecord(b.logger, b.metrics, rec)
	}
	b.logger.Info("batch normalized", "records", len(out), "fuzzy_dates", fuzzyDate, "workers", b.workers)
	return out, nil
}
