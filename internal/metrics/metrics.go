// internal/metrics/metrics.go
package metrics

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"

	"github.com/ystepanoff/owlsender/protocol"
)

const namespace = "owlsender"

// Metrics holds the collectors for one sensor id.
type Metrics struct {
	registry *prometheus.Registry

	FramesSent        prometheus.Counter
	SendErrors        prometheus.Counter
	SendDuration      prometheus.Histogram
	RealtimeWatts     prometheus.Gauge
	AccumulatedWh     prometheus.Gauge
	LastSendTimestamp prometheus.Gauge
}

// New creates and registers the collectors on a private registry.
func New(sensorID byte) *Metrics {
	labels := prometheus.Labels{"sensor_id": strconv.Itoa(int(sensorID))}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		FramesSent: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "frames_sent_total",
			Help:        "Frames clocked out on the transmitter line.",
			ConstLabels: labels,
		}),
		SendErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "send_errors_total",
			Help:        "Send calls that did not transmit.",
			ConstLabels: labels,
		}),
		SendDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "send_duration_seconds",
			Help:        "Wall time of one frame, nominally 115ms.",
			ConstLabels: labels,
			Buckets:     prometheus.LinearBuckets(protocol.FrameDuration.Seconds(), 0.005, 8),
		}),
		RealtimeWatts: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "realtime_watts",
			Help:        "Last real-time power reading sent.",
			ConstLabels: labels,
		}),
		AccumulatedWh: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "accumulated_watt_hours",
			Help:        "Last accumulated energy reading sent.",
			ConstLabels: labels,
		}),
		LastSendTimestamp: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "last_send_timestamp_seconds",
			Help:        "Unix time of the last successful send.",
			ConstLabels: labels,
		}),
	}

	m.registry.MustRegister(
		m.FramesSent,
		m.SendErrors,
		m.SendDuration,
		m.RealtimeWatts,
		m.AccumulatedWh,
		m.LastSendTimestamp,
	)

	return m
}

// Gatherer exposes the private registry.
func (m *Metrics) Gatherer() prometheus.Gatherer { return m.registry }

// Observe records the outcome of one Send call.
func (m *Metrics) Observe(realtimeWatts int, accumulatedWh int64, took time.Duration, err error) {
	if err != nil {
		m.SendErrors.Inc()
		return
	}
	m.FramesSent.Inc()
	m.SendDuration.Observe(took.Seconds())
	m.RealtimeWatts.Set(float64(realtimeWatts))
	m.AccumulatedWh.Set(float64(accumulatedWh))
	m.LastSendTimestamp.SetToCurrentTime()
}

// Push replaces the job's metrics on a Prometheus Pushgateway.
func (m *Metrics) Push(ctx context.Context, url, job string) error {
	return push.New(url, job).Gatherer(m.registry).PushContext(ctx)
}
