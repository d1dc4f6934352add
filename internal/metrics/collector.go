package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector owns the API's Prometheus metrics on its own registry.
type Collector struct {
	registry        *prometheus.Registry
	requestDuration *prometheus.HistogramVec
	requestsTotal   *prometheus.CounterVec
	calculations    *prometheus.CounterVec
	liveSessions    prometheus.Gauge
}

func NewCollector() *Collector {
	m := &Collector{
		registry: prometheus.NewRegistry(),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Time spent processing request",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of requests",
			},
			[]string{"route", "method", "status"},
		),
		calculations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "calculations_total",
				Help: "Engine runs by outcome",
			},
			[]string{"source", "outcome"},
		),
		liveSessions: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "live_sessions",
				Help: "Open live recalculation sockets",
			},
		),
	}

	m.registry.MustRegister(m.requestDuration)
	m.registry.MustRegister(m.requestsTotal)
	m.registry.MustRegister(m.calculations)
	m.registry.MustRegister(m.liveSessions)

	return m
}

func (m *Collector) RecordRequest(route, method, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.requestDuration.WithLabelValues(route, method).Observe(duration.Seconds())
	m.requestsTotal.WithLabelValues(route, method, status).Inc()
}

// RecordCalculation counts one engine run. outcome is "ok" or an error code.
func (m *Collector) RecordCalculation(source, outcome string) {
	if m == nil {
		return
	}
	m.calculations.WithLabelValues(source, outcome).Inc()
}

func (m *Collector) LiveSessionOpened() {
	if m != nil {
		m.liveSessions.Inc()
	}
}

func (m *Collector) LiveSessionClosed() {
	if m != nil {
		m.liveSessions.Dec()
	}
}

func (m *Collector) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus text format.
func (m *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
