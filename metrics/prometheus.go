package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type PrometheusRecorder struct {
	counters  *prometheus.CounterVec
	histogram *prometheus.HistogramVec
}

// NewPrometheusRecorder registers the minfraud collectors with reg. A nil
// reg uses the default registerer. Collectors already registered on reg are
// shared, so several clients can report into one registry.
func NewPrometheusRecorder(reg prometheus.Registerer) (*PrometheusRecorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	counters := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "minfraud",
			Name:      "requests_total",
			Help:      "minFraud requests by outcome and service tier.",
		},
		[]string{"outcome", "tier"},
	)

	histogram := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "minfraud",
			Name:      "request_duration_seconds",
			Help:      "Latency of minFraud round trips.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation", "region"},
	)

	counters, err := register(reg, counters)
	if err != nil {
		return nil, err
	}
	histogram, err = register(reg, histogram)
	if err != nil {
		return nil, err
	}

	return &PrometheusRecorder{
		counters:  counters,
		histogram: histogram,
	}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(C); ok {
			return existing, nil
		}
	}
	var zero C
	return zero, err
}

// IncCounter counts one request; name is the outcome.
func (p *PrometheusRecorder) IncCounter(name string, labels map[string]string) {
	p.counters.With(prometheus.Labels{
		"outcome": name,
		"tier":    labels["tier"],
	}).Inc()
}

func (p *PrometheusRecorder) ObserveLatency(name string, d time.Duration, labels map[string]string) {
	p.histogram.With(prometheus.Labels{
		"operation": name,
		"region":    labels["region"],
	}).Observe(d.Seconds())
}
