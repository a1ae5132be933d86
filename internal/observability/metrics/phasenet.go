// Package metrics provides custom Prometheus metrics for the PhaseNet-Go application.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// PhaseNetMetrics contains all Prometheus metrics related to model evaluation
// and pick extraction.
type PhaseNetMetrics struct {
	WindowsProcessed   prometheus.Counter
	PickCounter        *prometheus.CounterVec
	PredictionDuration *prometheus.HistogramVec
	AnnotateDuration   prometheus.Histogram
	ModelLoadedGauge   prometheus.Gauge

	registry *prometheus.Registry
}

// NewPhaseNetMetrics creates a new instance of PhaseNetMetrics and registers
// it with the provided registry.
func NewPhaseNetMetrics(registry *prometheus.Registry) (*PhaseNetMetrics, error) {
	m := &PhaseNetMetrics{registry: registry}
	m.initMetrics()
	if err := registry.Register(m); err != nil {
		return nil, fmt.Errorf("failed to register PhaseNet metrics: %w", err)
	}
	return m, nil
}

func (m *PhaseNetMetrics) initMetrics() {
	m.WindowsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "phasenet_windows_processed_total",
			Help: "Total number of waveform windows evaluated by the network.",
		},
	)
	m.PickCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "phasenet_picks_total",
			Help: "Total number of picks emitted, partitioned by phase label.",
		},
		[]string{"phase"},
	)
	m.PredictionDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "phasenet_prediction_duration_seconds",
			Help:    "Time taken for a single window forward pass.",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"status"},
	)
	m.AnnotateDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "phasenet_annotate_duration_seconds",
			Help:    "Time taken to annotate a full record.",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
		},
	)
	m.ModelLoadedGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "phasenet_model_loaded",
			Help: "Whether a model instance is initialized (1) or not (0).",
		},
	)
}

// Describe implements the prometheus.Collector interface.
func (m *PhaseNetMetrics) Describe(ch chan<- *prometheus.Desc) {
	m.WindowsProcessed.Describe(ch)
	m.PickCounter.Describe(ch)
	m.PredictionDuration.Describe(ch)
	m.AnnotateDuration.Describe(ch)
	m.ModelLoadedGauge.Describe(ch)
}

// Collect implements the prometheus.Collector interface.
func (m *PhaseNetMetrics) Collect(ch chan<- prometheus.Metric) {
	m.WindowsProcessed.Collect(ch)
	m.PickCounter.Collect(ch)
	m.PredictionDuration.Collect(ch)
	m.AnnotateDuration.Collect(ch)
	m.ModelLoadedGauge.Collect(ch)
}
