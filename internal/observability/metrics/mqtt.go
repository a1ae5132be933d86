package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// MQTTMetrics contains Prometheus metrics for pick publishing.
type MQTTMetrics struct {
	ConnectionStatus  prometheus.Gauge
	MessagesDelivered prometheus.Counter
	Errors            *prometheus.CounterVec

	registry *prometheus.Registry
}

// NewMQTTMetrics creates a new instance of MQTTMetrics.
func NewMQTTMetrics(registry *prometheus.Registry) (*MQTTMetrics, error) {
	m := &MQTTMetrics{registry: registry}
	m.initMetrics()
	if err := registry.Register(m); err != nil {
		return nil, fmt.Errorf("failed to register MQTT metrics: %w", err)
	}
	return m, nil
}

func (m *MQTTMetrics) initMetrics() {
	m.ConnectionStatus = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "phasenet_mqtt_connected",
			Help: "Whether the MQTT client is connected (1) or not (0).",
		},
	)
	m.MessagesDelivered = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "phasenet_mqtt_messages_delivered_total",
			Help: "Total number of pick messages delivered to the broker.",
		},
	)
	m.Errors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "phasenet_mqtt_errors_total",
			Help: "Total number of MQTT errors, partitioned by kind.",
		},
		[]string{"kind"},
	)
}

// Describe implements the prometheus.Collector interface.
func (m *MQTTMetrics) Describe(ch chan<- *prometheus.Desc) {
	m.ConnectionStatus.Describe(ch)
	m.MessagesDelivered.Describe(ch)
	m.Errors.Describe(ch)
}

// Collect implements the prometheus.Collector interface.
func (m *MQTTMetrics) Collect(ch chan<- prometheus.Metric) {
	m.ConnectionStatus.Collect(ch)
	m.MessagesDelivered.Collect(ch)
	m.Errors.Collect(ch)
}
