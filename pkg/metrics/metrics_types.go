package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the application
type Registry struct {
	// Graph Metrics
	GraphAntennas *prometheus.GaugeVec
	GraphLinks    *prometheus.GaugeVec
	GraphsTotal   prometheus.Gauge

	// Operation Metrics
	OperationsTotal   *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec

	// Traversal Metrics
	TraversalVisited *prometheus.HistogramVec

	// I/O Metrics
	LoadedAntennasTotal *prometheus.CounterVec
	DumpBytesTotal      *prometheus.CounterVec

	registry *prometheus.Registry
	mu       sync.Mutex
	graphs   map[string]struct{}
}

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
		graphs:   make(map[string]struct{}),
	}

	r.initGraphMetrics()
	r.initOperationMetrics()
	r.initIOMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
