package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the ETL pipeline.
type Metrics struct {
	MessagesConsumed prometheus.Counter
	MessagesProduced prometheus.Counter
	TransformErrors  prometheus.Counter
	BatchesAborted   prometheus.Counter
	PipelineRunning  prometheus.Gauge

	// Batch processing metrics.
	BatchSize               prometheus.Histogram
	BatchProcessingDuration prometheus.Histogram

	// Normalization metrics.
	RecordsNormalized   prometheus.Counter
	Unclassified        *prometheus.CounterVec // labels: field={country,family}
	DateDecodeErrors    *prometheus.CounterVec // labels: mode={fuzzy,exact}
	DateCache           *prometheus.CounterVec // labels: result={hit,miss}
	FuzzyDecodeDuration prometheus.Histogram
}

// NewMetrics creates and registers all pipeline metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		MessagesConsumed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "launch_etl",
			Name:      "messages_consumed_total",
			Help:      "Total messages read from the source topic.",
		}),
		MessagesProduced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "launch_etl",
			Name:      "messages_produced_total",
			Help:      "Total messages written to the sink topic.",
		}),
		TransformErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "launch_etl",
			Name:      "transform_errors_total",
			Help:      "Total messages skipped because they could not be decoded.",
		}),
		BatchesAborted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "launch_etl",
			Name:      "batches_aborted_total",
			Help:      "Batches abandoned because a record carried a malformed date.",
		}),
		PipelineRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "launch_etl",
			Name:      "pipeline_running",
			Help:      "1 when the pipeline is active, 0 when shut down.",
		}),
		BatchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "launch_etl",
			Name:      "batch_size",
			Help:      "Number of messages per batch extracted from Kafka.",
			Buckets:   []float64{1, 5, 10, 20, 30, 40, 50, 75, 100},
		}),
		BatchProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "launch_etl",
			Name:      "batch_processing_duration_seconds",
			Help:      "Duration of a complete batch extract-transform-load cycle.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
		RecordsNormalized: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "launch_etl",
			Name:      "records_normalized_total",
			Help:      "Launch records successfully normalized.",
		}),
		Unclassified: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "launch_etl",
			Name:      "unclassified_total",
			Help:      "Normalized records whose country or family resolved to unknown.",
		}, []string{"field"}),
		DateDecodeErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "launch_etl",
			Name:      "date_decode_errors_total",
			Help:      "Malformed launch dates by decoding mode.",
		}, []string{"mode"}),
		DateCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "launch_etl",
			Name:      "date_cache_total",
			Help:      "Fuzzy date cache lookups by result.",
		}, []string{"result"}),
		FuzzyDecodeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "launch_etl",
			Name:      "fuzzy_decode_duration_seconds",
			Help:      "Natural-language date parser duration in seconds.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),
	}

	prometheus.MustRegister(
		m.MessagesConsumed,
		m.MessagesProduced,
		m.TransformErrors,
		m.BatchesAborted,
		m.PipelineRunning,
		m.BatchSize,
		m.BatchProcessingDuration,
		m.RecordsNormalized,
		m.Unclassified,
		m.DateDecodeErrors,
		m.DateCache,
		m.FuzzyDecodeDuration,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		MessagesConsumed:        prometheus.NewCounter(prometheus.CounterOpts{Namespace: "launch_etl", Name: "messages_consumed_total"}),
		MessagesProduced:        prometheus.NewCounter(prometheus.CounterOpts{Namespace: "launch_etl", Name: "messages_produced_total"}),
		TransformErrors:         prometheus.NewCounter(prometheus.CounterOpts{Namespace: "launch_etl", Name: "transform_errors_total"}),
		BatchesAborted:          prometheus.NewCounter(prometheus.CounterOpts{Namespace: "launch_etl", Name: "batches_aborted_total"}),
		PipelineRunning:         prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "launch_etl", Name: "pipeline_running"}),
		BatchSize:               prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "launch_etl", Name: "batch_size"}),
		BatchProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "launch_etl", Name: "batch_processing_duration_seconds"}),
		RecordsNormalized:       prometheus.NewCounter(prometheus.CounterOpts{Namespace: "launch_etl", Name: "records_normalized_total"}),
		Unclassified:            prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "launch_etl", Name: "unclassified_total"}, []string{"field"}),
		DateDecodeErrors:        prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "launch_etl", Name: "date_decode_errors_total"}, []string{"mode"}),
		DateCache:               prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "launch_etl", Name: "date_cache_total"}, []string{"result"}),
		FuzzyDecodeDuration:     prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "launch_etl", Name: "fuzzy_decode_duration_seconds"}),
	}
}
