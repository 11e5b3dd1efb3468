package apiclient

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK        = "ok"
	outcomeHTTPError = "http_error"
	outcomeTransport = "transport_error"
	outcomeDecode    = "decode_error"
	outcomeSample    = "sample"
)

type metrics struct {
	requests  *prometheus.CounterVec
	fallbacks *prometheus.CounterVec
}

// newMetrics registers on reg; a nil reg leaves the collectors unregistered.
func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)
	return &metrics{
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "bookit_client_requests_total",
			Help: "Bookit backend calls by operation and outcome.",
		}, []string{"operation", "outcome"}),
		fallbacks: f.NewCounterVec(prometheus.CounterOpts{
			Name: "bookit_client_fallbacks_total",
			Help: "Reads answered from sample data after a backend failure.",
		}, []string{"operation"}),
	}
}

func (m *metrics) observe(op Operation, outcome string) {
	m.requests.WithLabelValues(string(op), outcome).Inc()
}

func (m *metrics) fallback(op Operation) {
	m.fallbacks.WithLabelValues(string(op)).Inc()
}
