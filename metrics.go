package vbind

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures engine metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "vbind").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures engine metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

// defaultMetricsConfig returns the default metrics configuration.
func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "vbind",
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the Prometheus collectors for engine activity.
// One Metrics value may be shared by many engines.
type Metrics struct {
	writesTotal    *prometheus.CounterVec
	appliesTotal   *prometheus.CounterVec
	bindingsTotal  *prometheus.CounterVec
	enginesBound   prometheus.Counter
	bindFailures   prometheus.Counter
	dispatchErrors *prometheus.CounterVec
}

// NewMetrics creates and registers engine metrics.
// Registering twice with the same registry panics, as promauto does.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		writesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "writes_total",
			Help:        "Total number of field writes, by whether the value changed",
			ConstLabels: config.ConstLabels,
		}, []string{"field", "result"}),

		appliesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "watcher_applies_total",
			Help:        "Total number of watcher applies triggered by field changes",
			ConstLabels: config.ConstLabels,
		}, []string{"field"}),

		bindingsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "bindings_total",
			Help:        "Total number of realized bindings, by annotation",
			ConstLabels: config.ConstLabels,
		}, []string{"kind"}),

		enginesBound: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "engines_bound_total",
			Help:        "Total number of engines that completed binding",
			ConstLabels: config.ConstLabels,
		}),

		bindFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "bind_failures_total",
			Help:        "Total number of engine constructions that failed to bind",
			ConstLabels: config.ConstLabels,
		}),

		dispatchErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "dispatch_errors_total",
			Help:        "Total number of event dispatches that returned an error",
			ConstLabels: config.ConstLabels,
		}, []string{"event"}),
	}
}

func (m *Metrics) recordWrite(field string, changed bool) {
	if m == nil {
		return
	}
	result := "unchanged"
	if changed {
		result = "changed"
	}
	m.writesTotal.WithLabelValues(field, result).Inc()
}

func (m *Metrics) recordApply(field string) {
	if m == nil {
		return
	}
	m.appliesTotal.WithLabelValues(field).Inc()
}

func (m *Metrics) recordBinding(kind string) {
	if m == nil {
		return
	}
	m.bindingsTotal.WithLabelValues(kind).Inc()
}

func (m *Metrics) recordBound(err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.bindFailures.Inc()
		return
	}
	m.enginesBound.Inc()
}

func (m *Metrics) recordDispatchError(event string) {
	if m == nil {
		return
	}
	m.dispatchErrors.WithLabelValues(event).Inc()
}
