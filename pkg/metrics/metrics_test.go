package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var metric dto.Metric
	if err := c.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	return metric.Counter.GetValue()
}

func gaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var metric dto.Metric
	if err := g.Write(&metric); err != nil {
		t.Fatalf("Failed to write metric: %v", err)
	}
	return metric.Gauge.GetValue()
}

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r == nil {
		t.Fatal("NewRegistry() returned nil")
	}
	if r.GraphAntennas == nil || r.OperationsTotal == nil || r.TraversalVisited == nil || r.DumpBytesTotal == nil {
		t.Error("metrics not initialized")
	}
	if r.GetPrometheusRegistry() == nil {
		t.Error("Prometheus registry not initialized")
	}
}

func TestDefaultRegistry(t *testing.T) {
	if DefaultRegistry() != DefaultRegistry() {
		t.Error("DefaultRegistry() should return the same instance")
	}
}

func TestRecordOperation(t *testing.T) {
	r := NewRegistry()

	r.RecordOperation("insert", "ok", time.Millisecond)
	r.RecordOperation("insert", "ok", time.Millisecond)
	r.RecordOperation("insert", "duplicate", time.Millisecond)

	if got := counterValue(t, r.OperationsTotal.WithLabelValues("insert", "ok")); got != 2 {
		t.Errorf("insert/ok = %v, want 2", got)
	}
	if got := counterValue(t, r.OperationsTotal.WithLabelValues("insert", "duplicate")); got != 1 {
		t.Errorf("insert/duplicate = %v, want 1", got)
	}
}

func TestSetGraphSizeAndRemove(t *testing.T) {
	r := NewRegistry()

	r.SetGraphSize("A", 3, 3)
	r.SetGraphSize("B", 1, 0)

	if got := gaugeValue(t, r.GraphAntennas.WithLabelValues("A")); got != 3 {
		t.Errorf("antennas{A} = %v, want 3", got)
	}
	if got := gaugeValue(t, r.GraphsTotal); got != 2 {
		t.Errorf("graphs = %v, want 2", got)
	}

	r.RemoveGraph("A")
	if got := gaugeValue(t, r.GraphsTotal); got != 1 {
		t.Errorf("graphs after remove = %v, want 1", got)
	}
}

func TestRecordTraversal(t *testing.T) {
	r := NewRegistry()
	r.RecordTraversal("bfs", 3)
	r.RecordTraversal("bfs", 0)

	families, err := r.GetPrometheusRegistry().Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}
	for _, mf := range families {
		if mf.GetName() != "antennas_traversal_visited" {
			continue
		}
		h := mf.GetMetric()[0].GetHistogram()
		if h.GetSampleCount() != 1 || h.GetSampleSum() != 3 {
			t.Errorf("histogram count=%d sum=%v, want 1 and 3", h.GetSampleCount(), h.GetSampleSum())
		}
		return
	}
	t.Fatal("antennas_traversal_visited not gathered")
}

func TestRecordLoadAndDump(t *testing.T) {
	r := NewRegistry()
	r.RecordLoad("grid", 5, 1)
	r.RecordDumpBytes("write", 120)

	if got := counterValue(t, r.LoadedAntennasTotal.WithLabelValues("grid", "inserted")); got != 5 {
		t.Errorf("inserted = %v, want 5", got)
	}
	if got := counterValue(t, r.DumpBytesTotal.WithLabelValues("write")); got != 120 {
		t.Errorf("dump bytes = %v, want 120", got)
	}
}
