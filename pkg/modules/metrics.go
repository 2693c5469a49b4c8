package modules

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/vango-dev/treepatch/pkg/vdom"
)

// MetricsConfig configures the Prometheus metrics module.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "treepatch").
	Namespace string

	// Subsystem is the metrics subsystem (default: "vdom").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for pass duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics module.
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

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "treepatch",
		Subsystem: "vdom",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics counts reconciliation work per pass.
type Metrics struct {
	passes       prometheus.Counter
	created      prometheus.Counter
	updated      prometheus.Counter
	removed      prometheus.Counter
	destroyed    prometheus.Counter
	passDuration prometheus.Histogram

	start time.Time
}

// NewMetrics registers the metrics with the configured registry.
// Registering twice with the same registry panics, as with promauto.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)
	counter := func(name, help string) prometheus.Counter {
		return factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        name,
			Help:        help,
			ConstLabels: config.ConstLabels,
		})
	}

	return &Metrics{
		passes:    counter("passes_total", "Total number of reconciliation passes started"),
		created:   counter("elements_created_total", "Total number of elements materialized"),
		updated:   counter("nodes_updated_total", "Total number of nodes patched in place with data"),
		removed:   counter("nodes_removed_total", "Total number of element and comment removals started"),
		destroyed: counter("nodes_destroyed_total", "Total number of nodes torn down, descendants included"),
		passDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "pass_duration_seconds",
			Help:        "Duration of completed reconciliation passes in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),
	}
}

// Module returns the plugin feeding these metrics.
func (m *Metrics) Module() vdom.Module {
	return vdom.Module{
		Name: "metrics",
		Pre: func() error {
			m.start = time.Now()
			m.passes.Inc()
			return nil
		},
		Post: func() error {
			m.passDuration.Observe(time.Since(m.start).Seconds())
			return nil
		},
		Create: func(_, _ *vdom.VNode) error {
			m.created.Inc()
			return nil
		},
		Update: func(_, _ *vdom.VNode) error {
			m.updated.Inc()
			return nil
		},
		Remove: func(_ *vdom.VNode, rm *vdom.Removal) error {
			m.removed.Inc()
			return rm.Done()
		},
		Destroy: func(_ *vdom.VNode) error {
			m.destroyed.Inc()
			return nil
		},
	}
}
