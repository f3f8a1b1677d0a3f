package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initGraphMetrics() {
	r.GraphAntennas = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "antennas_graph_antennas",
			Help: "Number of antennas in the graph of each frequency",
		},
		[]string{"frequency"},
	)

	r.GraphLinks = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "antennas_graph_links",
			Help: "Number of bidirectional links in the graph of each frequency",
		},
		[]string{"frequency"},
	)

	r.GraphsTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "antennas_graphs_total",
			Help: "Number of frequencies with at least one antenna",
		},
	)
}

func (r *Registry) initOperationMetrics() {
	r.OperationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "antennas_operations_total",
			Help: "Total number of graph operations by outcome",
		},
		[]string{"operation", "status"},
	)

	r.OperationDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "antennas_operation_duration_seconds",
			Help:    "Graph operation duration in seconds",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1.0},
		},
		[]string{"operation"},
	)

	r.TraversalVisited = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "antennas_traversal_visited",
			Help:    "Number of antennas reached per traversal",
			Buckets: []float64{1, 2, 5, 10, 25, 50, 100, 400},
		},
		[]string{"kind"},
	)
}

func (r *Registry) initIOMetrics() {
	r.LoadedAntennasTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "antennas_loaded_total",
			Help: "Antennas read from grid files and dumps",
		},
		[]string{"source", "status"},
	)

	r.DumpBytesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "antennas_dump_bytes_total",
			Help: "Bytes written to or read from binary dumps",
		},
		[]string{"direction"},
	)
}
