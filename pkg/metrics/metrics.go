package metrics

import (
	"time"
)

// RecordOperation records a graph operation with its outcome and duration
func (r *Registry) RecordOperation(operation, status string, duration time.Duration) {
	r.OperationsTotal.WithLabelValues(operation, status).Inc()
	r.OperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordTraversal records how many antennas a traversal reached
func (r *Registry) RecordTraversal(kind string, visited int) {
	if visited == 0 {
		return
	}
	r.TraversalVisited.WithLabelValues(kind).Observe(float64(visited))
}

// SetGraphSize updates the size gauges of one frequency
func (r *Registry) SetGraphSize(frequency string, antennas, links int) {
	r.GraphAntennas.WithLabelValues(frequency).Set(float64(antennas))
	r.GraphLinks.WithLabelValues(frequency).Set(float64(links))

	r.mu.Lock()
	defer r.mu.Unlock()
	r.graphs[frequency] = struct{}{}
	r.GraphsTotal.Set(float64(len(r.graphs)))
}

// RemoveGraph drops the gauges of a frequency whose graph was destroyed
func (r *Registry) RemoveGraph(frequency string) {
	r.GraphAntennas.DeleteLabelValues(frequency)
	r.GraphLinks.DeleteLabelValues(frequency)

	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.graphs, frequency)
	r.GraphsTotal.Set(float64(len(r.graphs)))
}

// RecordLoad records antennas inserted and skipped while loading a named source
func (r *Registry) RecordLoad(source string, inserted, skipped int) {
	r.LoadedAntennasTotal.WithLabelValues(source, "inserted").Add(float64(inserted))
	r.LoadedAntennasTotal.WithLabelValues(source, "skipped").Add(float64(skipped))
}

// RecordDumpBytes records bytes moved through the dump codec ("write" or "read")
func (r *Registry) RecordDumpBytes(direction string, n int64) {
	r.DumpBytesTotal.WithLabelValues(direction).Add(float64(n))
}
