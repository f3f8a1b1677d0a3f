package network

import (
	"sync"
	"testing"
	"time"
)

// newTriangle builds the three-antenna 'A' triangle used across the tests.
func newTriangle(t *testing.T, opts ...Option) *Network {
	t.Helper()
	n := New(opts...)
	for _, p := range []Point{Pt(2, 5), Pt(4, 6), Pt(19, 17)} {
		if err := n.Insert('A', p.X, p.Y); err != nil {
			t.Fatalf("Insert(%v) error = %v", p, err)
		}
	}
	links := [][2]Point{
		{Pt(2, 5), Pt(4, 6)},
		{Pt(19, 17), Pt(4, 6)},
		{Pt(19, 17), Pt(2, 5)},
	}
	for _, l := range links {
		if err := n.Connect('A', l[0], l[1]); err != nil {
			t.Fatalf("Connect(%v, %v) error = %v", l[0], l[1], err)
		}
	}
	return n
}

// mustGraph inserts points into a fresh graph of frequency 'A'.
func mustGraph(t *testing.T, points ...Point) *Graph {
	t.Helper()
	g, err := NewGraph('A')
	if err != nil {
		t.Fatalf("NewGraph() error = %v", err)
	}
	for _, p := range points {
		if err := g.Insert('A', p.X, p.Y); err != nil {
			t.Fatalf("Insert(%v) error = %v", p, err)
		}
	}
	return g
}

func assertClean(t *testing.T, g *Graph) {
	t.Helper()
	for _, v := range g.vertices {
		if v.visited {
			t.Fatalf("vertex %v left marked visited", v.antenna)
		}
	}
}

type opRecord struct {
	op, status string
}

// fakeRecorder captures Recorder calls.
type fakeRecorder struct {
	mu         sync.Mutex
	ops        []opRecord
	traversals map[string][]int
	sizes      map[string][2]int
	removed    []string
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{traversals: map[string][]int{}, sizes: map[string][2]int{}}
}

func (f *fakeRecorder) RecordOperation(op, status string, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ops = append(f.ops, opRecord{op, status})
}

func (f *fakeRecorder) RecordTraversal(kind string, visited int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.traversals[kind] = append(f.traversals[kind], visited)
}

func (f *fakeRecorder) SetGraphSize(freq string, antennas, links int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sizes[freq] = [2]int{antennas, links}
}

func (f *fakeRecorder) RemoveGraph(freq string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removed = append(f.removed, freq)
	delete(f.sizes, freq)
}

func (f *fakeRecorder) count(op, status string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, r := range f.ops {
		if r.op == op && r.status == status {
			n++
		}
	}
	return n
}
