package observe

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/glazeui/glaze/pkg/toast"
)

// MetricsConfig configures the Prometheus observer.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "glaze").
	Namespace string

	// Subsystem is the metrics subsystem (default: "toast").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer.
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus observer.
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

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "glaze",
		Subsystem: "toast",
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics is a toast.Observer that records admission outcomes as
// Prometheus metrics.
//
// Metrics collected:
//   - glaze_toast_requests_total: Counter of requests by outcome and kind
//   - glaze_toast_dropped_total: Counter of dropped requests by reason
//   - glaze_toast_queue_depth: Gauge of the pending-queue depth
//   - glaze_toast_dismissed_total: Counter of completed retractions
type Metrics struct {
	requests   *prometheus.CounterVec
	dropped    *prometheus.CounterVec
	queueDepth prometheus.Gauge
	dismissed  prometheus.Counter
}

// NewMetrics creates the Prometheus observer and registers its metrics.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	factory := promauto.With(config.Registry)

	return &Metrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "requests_total",
			Help:        "Total toast requests by admission outcome",
			ConstLabels: config.ConstLabels,
		}, []string{"outcome", "kind"}),

		dropped: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "dropped_total",
			Help:        "Total dropped toast requests by reason",
			ConstLabels: config.ConstLabels,
		}, []string{"reason"}),

		queueDepth: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "queue_depth",
			Help:        "Pending toast requests waiting behind the visible toast",
			ConstLabels: config.ConstLabels,
		}),

		dismissed: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "dismissed_total",
			Help:        "Total completed toast retractions",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// ToastAdmitted implements toast.Observer.
func (m *Metrics) ToastAdmitted(req toast.Request, queued int) {
	m.requests.WithLabelValues("admitted", string(req.Kind)).Inc()
	m.queueDepth.Set(float64(queued))
}

// ToastQueued implements toast.Observer.
func (m *Metrics) ToastQueued(req toast.Request, queued int) {
	m.requests.WithLabelValues("queued", string(req.Kind)).Inc()
	m.queueDepth.Set(float64(queued))
}

// ToastDropped implements toast.Observer.
func (m *Metrics) ToastDropped(req toast.Request, reason toast.DropReason) {
	m.requests.WithLabelValues("dropped", string(req.Kind)).Inc()
	m.dropped.WithLabelValues(string(reason)).Inc()
}

// ToastDismissed implements toast.Observer.
func (m *Metrics) ToastDismissed() {
	m.dismissed.Inc()
}
