package convert

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type metrics struct {
	registry           *prometheus.Registry
	conversionsTotal   *prometheus.CounterVec
	conversionDuration *prometheus.HistogramVec
	outputBytesTotal   prometheus.Counter
}

func newMetrics() *metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &metrics{
		registry: registry,
		conversionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "imgconvert_conversions_total",
			Help: "Total conversions by target format and outcome.",
		}, []string{"format", "outcome"}),
		conversionDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "imgconvert_conversion_duration_seconds",
			Help:    "Decode plus encode duration for each conversion.",
			Buckets: prometheus.DefBuckets,
		}, []string{"format", "outcome"}),
		outputBytesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "imgconvert_output_bytes_total",
			Help: "Total bytes written to converted files.",
		}),
	}

	registry.MustRegister(
		m.conversionsTotal,
		m.conversionDuration,
		m.outputBytesTotal,
	)
	return m
}

func (m *metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
