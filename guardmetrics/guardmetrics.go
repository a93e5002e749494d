// Package guardmetrics instruments tableguard validators with Prometheus
// counters. The wrapper is purely observational: it delegates to the wrapped
// validator and never alters the outcome.
package guardmetrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/matthiashuschle/tableguard"
)

// Option configures metrics creation.
type Option func(*config)

type config struct {
	namespace  string
	registerer prometheus.Registerer
}

// WithNamespace sets the metric namespace prefix.
func WithNamespace(ns string) Option {
	return func(c *config) { c.namespace = ns }
}

// WithRegisterer sets a custom registerer; the default registry is used
// otherwise.
func WithRegisterer(r prometheus.Registerer) Option {
	return func(c *config) {
		if r != nil {
			c.registerer = r
		}
	}
}

// Metrics holds the counters shared by all validators it instruments.
type Metrics struct {
	validations *prometheus.CounterVec
	failures    *prometheus.CounterVec
}

// New creates and registers the counters. It panics when registration fails,
// which only happens on conflicting double registration and should prevent
// startup.
func New(opts ...Option) *Metrics {
	cfg := config{
		namespace:  "tableguard",
		registerer: prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	m := &Metrics{
		validations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.namespace,
			Name:      "validations_total",
			Help:      "Validations performed, by contract and result.",
		}, []string{"contract", "result"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: cfg.namespace,
			Name:      "validation_failures_total",
			Help:      "Validation failures, by contract and failure category.",
		}, []string{"contract", "category"}),
	}
	cfg.registerer.MustRegister(m.validations, m.failures)
	return m
}

// Instrument wraps a validator so every call increments the validation
// counters under the given contract name.
func (m *Metrics) Instrument(name string, v tableguard.Validator) tableguard.Validator {
	return instrumented{metrics: m, name: name, next: v}
}

type instrumented struct {
	metrics *Metrics
	name    string
	next    tableguard.Validator
}

func (v instrumented) Validate(value any) (any, error) {
	out, err := v.next.Validate(value)
	if err != nil {
		v.metrics.validations.WithLabelValues(v.name, "fail").Inc()
		v.metrics.failures.WithLabelValues(v.name, tableguard.Category(err)).Inc()
		return nil, err
	}
	v.metrics.validations.WithLabelValues(v.name, "pass").Inc()
	return out, nil
}
