// Package network models antennas on a bounded grid. Antennas sharing a
// frequency letter form one Graph; a Network owns one Graph per frequency in
// use. Graphs support sorted insertion, atomic bidirectional links, lookup,
// validation and traversal (BFS, DFS, simple-path counting).
//
// A Network is not safe for concurrent mutation.
package network

import (
	"errors"
	"maps"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/dd0wney/cluso-antennas/pkg/logging"
)

// Network owns one Graph per frequency that has at least one antenna.
type Network struct {
	id     uuid.UUID
	graphs map[Frequency]*Graph
	cfg    *settings
}

// New creates an empty network.
func New(opts ...Option) *Network {
	n := &Network{
		id:     uuid.New(),
		graphs: make(map[Frequency]*Graph),
		cfg:    newSettings(opts),
	}
	n.cfg.logger = n.cfg.logger.With(logging.NetworkID(n.id.String()))
	return n
}

// ID identifies this network instance in logs.
func (n *Network) ID() uuid.UUID {
	return n.id
}

// MaxDim returns the grid side length.
func (n *Network) MaxDim() int {
	return n.cfg.maxDim
}

// Capacity returns the per-graph antenna limit.
func (n *Network) Capacity() int {
	return n.cfg.capacity
}

// Logger returns the logger attached to the network.
func (n *Network) Logger() logging.Logger {
	return n.cfg.logger
}

// Insert adds an antenna, creating the frequency's graph on first use.
// A failed insert never leaves an empty graph behind.
func (n *Network) Insert(freq Frequency, x, y int) error {
	if !freq.Valid() {
		start := time.Now()
		err := NewError("insert").At(Pt(x, y)).Cause(ErrInvalidFrequency).Err()
		n.cfg.observe("insert", start, err)
		return err
	}
	g, existed := n.graphs[freq]
	if !existed {
		g = newGraph(freq, n.cfg)
	}
	if err := g.Insert(freq, x, y); err != nil {
		return err
	}
	if !existed {
		n.graphs[freq] = g
		n.cfg.logger.Info("graph created", logging.Frequency(byte(freq)))
	}
	return nil
}

// Connect links two antennas of the same frequency.
func (n *Network) Connect(freq Frequency, a, b Point) error {
	g, ok := n.graphs[freq]
	if !ok {
		return NewError("connect").Frequency(freq).Between(a, b).Cause(ErrGraphNotFound).Err()
	}
	return g.Connect(a, b)
}

// Graph returns the graph for freq.
func (n *Network) Graph(freq Frequency) (*Graph, bool) {
	g, ok := n.graphs[freq]
	return g, ok
}

// MustGraph returns the graph for freq or a not-found error.
func (n *Network) MustGraph(freq Frequency) (*Graph, error) {
	if !freq.Valid() {
		return nil, NewError("lookup").Cause(ErrInvalidFrequency).Err()
	}
	g, ok := n.graphs[freq]
	if !ok {
		return nil, NewError("lookup").Frequency(freq).Cause(ErrGraphNotFound).Err()
	}
	return g, nil
}

// Exists reports whether an antenna of freq sits at (x, y).
func (n *Network) Exists(freq Frequency, x, y int) bool {
	g, ok := n.graphs[freq]
	if !ok {
		return false
	}
	_, found := g.Find(x, y)
	return found
}

// Frequencies returns the frequencies in use, ascending.
func (n *Network) Frequencies() []Frequency {
	return slices.Sorted(maps.Keys(n.graphs))
}

// Graphs returns the graphs in ascending frequency order.
func (n *Network) Graphs() []*Graph {
	out := make([]*Graph, 0, len(n.graphs))
	for _, f := range n.Frequencies() {
		out = append(out, n.graphs[f])
	}
	return out
}

// Len returns the number of graphs.
func (n *Network) Len() int {
	return len(n.graphs)
}

// Antennas returns every antenna ordered by frequency, then (X, Y).
func (n *Network) Antennas() []Antenna {
	var out []Antenna
	for _, g := range n.Graphs() {
		out = append(out, g.Antennas()...)
	}
	return out
}

// Stats summarises every graph.
func (n *Network) Stats() Stats {
	var s Stats
	for _, g := range n.Graphs() {
		gs := g.Stats()
		s.Graphs = append(s.Graphs, gs)
		s.Antennas += gs.Antennas
		s.Links += gs.Links
	}
	return s
}

// Validate checks every graph structurally and audits edge symmetry.
func (n *Network) Validate() error {
	var errs []error
	for _, g := range n.Graphs() {
		if !g.Validate() {
			errs = append(errs, NewError("validate").Frequency(g.frequency).Cause(ErrStructuralInvalid).Err())
			continue
		}
		if err := g.CheckSymmetry(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// RemoveGraph destroys and forgets the graph for freq.
func (n *Network) RemoveGraph(freq Frequency) bool {
	g, ok := n.graphs[freq]
	if !ok {
		return false
	}
	g.Destroy()
	delete(n.graphs, freq)
	n.cfg.logger.Info("graph removed", logging.Frequency(byte(freq)))
	return true
}

// Destroy tears down every graph, children before parents.
func (n *Network) Destroy() {
	for _, f := range n.Frequencies() {
		n.RemoveGraph(f)
	}
}
