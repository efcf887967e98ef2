package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/launch-data-etl/internal/adapter/dateparser"
	httpadapter "github.com/couchcryptid/launch-data-etl/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/launch-data-etl/internal/adapter/kafka"
	"github.com/couchcryptid/launch-data-etl/internal/config"
	"github.com/couchcryptid/launch-data-etl/internal/domain"
	"github.com/couchcryptid/launch-data-etl/internal/observability"
	"github.com/couchcryptid/launch-data-etl/internal/pipeline"
	"github.com/couchcryptid/launch-data-etl/internal/stats"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	decoder, err := dateparser.NewCachedDecoder(dateparser.NewDecoder(metrics, logger), cfg.DateCacheSize, metrics)
	if err != nil {
		logger.Error("failed to create date decoder", "error", err)
		os.Exit(1)
	}
	logger.Info("fuzzy date decoding enabled", "cache_size", cfg.DateCacheSize)

	reader := kafkaadapter.NewReader(cfg, logger)
	writer := kafkaadapter.NewWriter(cfg, logger)
	transformer := pipeline.NewTransformer(domain.NewNormalizer(decoder), logger, metrics)
	collector := stats.NewCollector()

	p := pipeline.New(reader, transformer, writer, collector, logger, metrics, cfg.BatchSize)

	srv := httpadapter.NewServer(cfg.HTTPAddr, p, collector, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Start ETL pipeline. An aborted batch stops the service so the
	// uncommitted offsets are redelivered after the data is fixed.
	go func() {
		if err := p.Run(ctx); err != nil {
			logger.Error("pipeline error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if err := reader.Close(); err != nil {
		logger.Error("kafka reader close error", "error", err)
	}
	if err := writer.Close(); err != nil {
		logger.Error("kafka writer close error", "error", err)
	}

	logger.Info("shutdown complete", "records_collected", collector.Len())
}
