package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/launch-data-etl/internal/domain"
	"github.com/couchcryptid/launch-data-etl/internal/observability"
)

// BatchExtractor reads up to batchSize raw events from the source.
type BatchExtractor interface {
	ExtractBatch(ctx context.Context, batchSize int) ([]domain.RawEvent, error)
}

// Transformer converts a raw event into a normalized launch event.
type Transformer interface {
	Transform(ctx context.Context, raw domain.RawEvent) (domain.LaunchEvent, error)
}

// BatchLoader writes multiple launch events to the destination.
type BatchLoader interface {
	LoadBatch(ctx context.Context, events []domain.LaunchEvent) error
}

// RecordSink receives every event after it has been loaded. Events already
// seen by ID are ignored; the sink returns how many it kept.
type RecordSink interface {
	AddEvents(events ...domain.LaunchEvent) int
}

// Pipeline orchestrates the extract-transform-load loop.
type Pipeline struct {
	extractor   BatchExtractor
	transformer Transformer
	loader      BatchLoader
	sink        RecordSink
	logger      *slog.Logger
	metrics     *observability.Metrics
	ready       atomic.Bool
	batchSize   int
}

// New creates a Pipeline with the given stages and observability. sink may
// be nil.
func New(e BatchExtractor, t Transformer, l BatchLoader, sink RecordSink, logger *slog.Logger, metrics *observability.Metrics, batchSize int) *Pipeline {
	return &Pipeline{
		extractor:   e,
		transformer: t,
		loader:      l,
		sink:        sink,
		logger:      logger,
		metrics:     metrics,
		batchSize:   batchSize,
	}
}

// CheckReadiness returns nil if the pipeline has processed at least one message,
// or an error describing why the service is not yet ready.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if !p.ready.Load() {
		return errors.New("pipeline has not processed any messages yet")
	}
	return nil
}

// Run executes the batch ETL loop until the context is cancelled. It returns
// an error only when a batch had to be aborted because of a malformed date;
// such a batch is neither loaded nor committed.
func (p *Pipeline) Run(ctx context.Context) error {
	p.logger.Info("pipeline started", "batch_size", p.batchSize)
	p.metrics.PipelineRunning.Set(1)
	defer p.metrics.PipelineRunning.Set(0)

	// Exponential backoff: start at 200ms, double each retry, cap at 5s.
	backoff := 200 * time.Millisecond
	maxBackoff := 5 * time.Second

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("pipeline stopping", "reason", ctx.Err())
			return nil
		default:
		}

		ok, err := p.processBatch(ctx, &backoff, maxBackoff)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
}

// processBatch runs one extract-transform-load cycle. Returns false if the pipeline should stop.
func (p *Pipeline) processBatch(ctx context.Context, backoff *time.Duration, maxBackoff time.Duration) (bool, error) {
	start := time.Now()

	rawBatch, err := p.extractor.ExtractBatch(ctx, p.batchSize)
	if err != nil && len(rawBatch) == 0 {
		if ctx.Err() != nil {
			return false, nil
		}
		p.logger.Error("extract batch failed", "error", err)
		return p.backoffOrStop(ctx, backoff, maxBackoff), nil
	}
	if err != nil {
		// The source has already moved past these messages.
		p.logger.Warn("extract batch interrupted, processing partial batch", "error", err, "batch_size", len(rawBatch))
	}

	if len(rawBatch) == 0 {
		return ctx.Err() == nil, nil
	}

	p.metrics.MessagesConsumed.Add(float64(len(rawBatch)))
	p.metrics.BatchSize.Observe(float64(len(rawBatch)))
	*backoff = 200 * time.Millisecond

	loaded, ok, err := p.transformAndLoad(ctx, rawBatch, backoff, maxBackoff)
	if err != nil || !ok {
		return false, err
	}

	if loaded > 0 {
		p.metrics.BatchProcessingDuration.Observe(time.Since(start).Seconds())
		p.ready.Store(true)
	}
	return true, nil
}

// transformAndLoad transforms each message in the batch, loads the results,
// and commits offsets. Undecodable messages are skipped. A malformed date
// aborts the whole batch: nothing is loaded and no offset is committed, so
// the batch is redelivered once the upstream data is fixed.
func (p *Pipeline) transformAndLoad(ctx context.Context, rawBatch []domain.RawEvent, backoff *time.Duration, maxBackoff time.Duration) (int, bool, error) {
	outBatch := make([]domain.LaunchEvent, 0, len(rawBatch))
	skipped := make([]domain.RawEvent, 0)

	for _, raw := range rawBatch {
		out, err := p.transformer.Transform(ctx, raw)
		if err != nil {
			var mde *domain.MalformedDateError
			if errors.As(err, &mde) {
				p.metrics.BatchesAborted.Inc()
				p.logger.Error("malformed launch date, aborting batch",
					"error", err,
					"date", mde.Date,
					"topic", raw.Topic,
					"partition", raw.Partition,
					"offset", raw.Offset,
					"batch_size", len(rawBatch),
				)
				return 0, false, fmt.Errorf("abort batch at offset %d: %w", raw.Offset, err)
			}
			p.logger.Warn("transform failed, skipping message",
				"error", err,
				"topic", raw.Topic,
				"partition", raw.Partition,
				"offset", raw.Offset,
			)
			p.metrics.TransformErrors.Inc()
			skipped = append(skipped, raw)
			continue
		}
		outBatch = append(outBatch, out)
	}

	if len(outBatch) > 0 {
		if err := p.loader.LoadBatch(ctx, outBatch); err != nil {
			p.logger.Error("load batch failed", "error", err, "batch_size", len(outBatch))
			return 0, p.backoffOrStop(ctx, backoff, maxBackoff), nil
		}
		p.metrics.MessagesProduced.Add(float64(len(outBatch)))

		if p.sink != nil {
			if kept := p.sink.AddEvents(outBatch...); kept < len(outBatch) {
				p.logger.Debug("redelivered records ignored by sink", "count", len(outBatch)-kept)
			}
		}
	}

	// Offsets are committed in source order once the batch is settled.
	for _, raw := range rawBatch {
		p.commitOffset(ctx, raw)
	}
	p.logger.Debug("batch settled", "loaded", len(outBatch), "skipped", len(skipped))

	return len(outBatch), true, nil
}

// backoffOrStop checks for context cancellation, sleeps with the current backoff,
// and advances the backoff. Returns false if the pipeline should stop.
func (p *Pipeline) backoffOrStop(ctx context.Context, backoff *time.Duration, maxBackoff time.Duration) bool {
	if ctx.Err() != nil {
		return false
	}
	if !sleepWithContext(ctx, *backoff) {
		return false
	}
	*backoff = nextBackoff(*backoff, maxBackoff)
	return true
}

// commitOffset commits the message offset if a commit function is available.
func (p *Pipeline) commitOffset(ctx context.Context, raw domain.RawEvent) {
	if raw.Commit == nil {
		return
	}
	if err := raw.Commit(ctx); err != nil {
		p.logger.Warn("commit offset failed", "error", err,
			"topic", raw.Topic, "partition", raw.Partition, "offset", raw.Offset)
	}
}

func nextBackoff(current, maxBackoff time.Duration) time.Duration {
	next := current * 2
	if next > maxBackoff {
		return maxBackoff
	}
	return next
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
