package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// DatastoreMetrics contains Prometheus metrics for pick storage operations.
type DatastoreMetrics struct {
	OperationCounter *prometheus.CounterVec
	OperationErrors  *prometheus.CounterVec

	registry *prometheus.Registry
}

// NewDatastoreMetrics creates a new instance of DatastoreMetrics.
func NewDatastoreMetrics(registry *prometheus.Registry) (*DatastoreMetrics, error) {
	m := &DatastoreMetrics{registry: registry}
	m.initMetrics()
	if err := registry.Register(m); err != nil {
		return nil, fmt.Errorf("failed to register datastore metrics: %w", err)
	}
	return m, nil
}

func (m *DatastoreMetrics) initMetrics() {
	m.OperationCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "phasenet_datastore_operations_total",
			Help: "Total number of datastore operations, partitioned by operation.",
		},
		[]string{"operation"},
	)
	m.OperationErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "phasenet_datastore_errors_total",
			Help: "Total number of failed datastore operations, partitioned by operation.",
		},
		[]string{"operation"},
	)
}

// Describe implements the prometheus.Collector interface.
func (m *DatastoreMetrics) Describe(ch chan<- *prometheus.Desc) {
	m.OperationCounter.Describe(ch)
	m.OperationErrors.Describe(ch)
}

// Collect implements the prometheus.Collector interface.
func (m *DatastoreMetrics) Collect(ch chan<- prometheus.Metric) {
	m.OperationCounter.Collect(ch)
	m.OperationErrors.Collect(ch)
}
