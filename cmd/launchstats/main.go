// Command launchstats works on space launch chronologies offline.
//
// Usage:
//
//	launchstats import chronology.csv           # scraped rows -> persisted table
//	launchstats report --lang en,pl             # persisted table -> launch statistics
//	launchstats publish chronology.csv          # scraped rows -> source topic
//
// Defaults come from the service environment (DATA_PATH, REPORT_LANGUAGES,
// NORMALIZE_WORKERS, DATE_CACHE_SIZE, KAFKA_*).
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/couchcryptid/launch-data-etl/internal/adapter/dateparser"
	"github.com/couchcryptid/launch-data-etl/internal/config"
	"github.com/couchcryptid/launch-data-etl/internal/domain"
	"github.com/couchcryptid/launch-data-etl/internal/observability"
	"github.com/couchcryptid/launch-data-etl/internal/pipeline"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries what every subcommand shares.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	metrics *observability.Metrics
}

func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:          "launchstats",
		Short:        "Normalize space launch chronologies and report launch statistics",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.init()
		},
	}

	cmd.AddCommand(
		newImportCmd(a),
		newReportCmd(a),
		newPublishCmd(a),
	)
	return cmd
}

func (a *app) init() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.cfg = cfg
	a.logger = observability.NewLoggerTo(os.Stderr, cfg)
	a.metrics = observability.NewMetrics()
	return nil
}

// batchNormalizer builds the parallel normalizer. Fuzzy decoding is only
// wired when a command reads scraped rows.
func (a *app) batchNormalizer(fuzzy bool) (*pipeline.BatchNormalizer, error) {
	var decoder domain.DateDecoder
	if fuzzy {
		cached, err := dateparser.NewCachedDecoder(dateparser.NewDecoder(a.metrics, a.logger), a.cfg.DateCacheSize, a.metrics)
		if err != nil {
			return nil, err
		}
		decoder = cached
	}
	return pipeline.NewBatchNormalizer(domain.NewNormalizer(decoder), a.cfg.NormalizeWorkers, a.logger, a.metrics), nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
