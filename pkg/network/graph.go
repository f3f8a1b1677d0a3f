package network

import (
	"slices"
	"time"

	"github.com/dd0wney/cluso-antennas/pkg/logging"
)

// Graph holds the antennas of one frequency and the links between them.
//
// Vertices live in an append-only arena so that a VertexID, and every edge
// pointing at it, stays valid as the graph grows. A separate order slice keeps
// the vertices sorted by (X, Y) ascending; it is maintained by binary search
// and shifting on insert, and is the iteration order for every read API.
type Graph struct {
	frequency Frequency
	vertices  []*Vertex
	order     []VertexID
	links     int
	destroyed bool
	cfg       *settings
}

// NewGraph creates an empty graph for freq.
func NewGraph(freq Frequency, opts ...Option) (*Graph, error) {
	if !freq.Valid() {
		return nil, NewError("create").Cause(ErrInvalidFrequency).Err()
	}
	return newGraph(freq, newSettings(opts)), nil
}

func newGraph(freq Frequency, cfg *settings) *Graph {
	return &Graph{
		frequency: freq,
		vertices:  make([]*Vertex, 0, 8),
		order:     make([]VertexID, 0, 8),
		cfg:       cfg,
	}
}

// Frequency returns the frequency shared by all antennas in the graph.
func (g *Graph) Frequency() Frequency {
	return g.frequency
}

// Count returns the number of antennas.
func (g *Graph) Count() int {
	if g == nil {
		return 0
	}
	return len(g.order)
}

// Links returns the number of undirected links.
func (g *Graph) Links() int {
	if g == nil {
		return 0
	}
	return g.links
}

// Capacity returns the maximum number of antennas.
func (g *Graph) Capacity() int {
	return g.cfg.capacity
}

// MaxDim returns the grid side length.
func (g *Graph) MaxDim() int {
	return g.cfg.maxDim
}

// Insert adds an antenna at (x, y).
// Duplicates and invalid input leave the graph untouched.
func (g *Graph) Insert(freq Frequency, x, y int) (err error) {
	start := time.Now()
	defer func() { g.cfg.observe("insert", start, err) }()

	p := Pt(x, y)
	errb := NewError("insert").Frequency(g.frequency).At(p)
	switch {
	case g.destroyed:
		return errb.Cause(ErrStructuralInvalid).Err()
	case !freq.Valid():
		return errb.Cause(ErrInvalidFrequency).Err()
	case freq != g.frequency:
		return errb.Cause(ErrFrequencyMismatch).Err()
	case !p.In(g.cfg.maxDim):
		return errb.Cause(ErrInvalidCoordinate).Err()
	}

	pos, found := g.search(p)
	if found {
		return errb.Cause(ErrDuplicateAntenna).Err()
	}
	if len(g.order) >= g.cfg.capacity {
		return errb.Cause(ErrGraphFull).Err()
	}

	id := VertexID(len(g.vertices))
	g.vertices = append(g.vertices, newVertex(NewAntenna(freq, x, y)))
	g.order = slices.Insert(g.order, pos, id)

	g.cfg.logger.Debug("antenna inserted",
		logging.Frequency(byte(freq)),
		logging.Coord(x, y),
		logging.Count(len(g.order)),
	)
	g.publishSize()
	return nil
}

// search binary-searches the sorted order for p.
func (g *Graph) search(p Point) (int, bool) {
	return slices.BinarySearchFunc(g.order, p, func(id VertexID, target Point) int {
		return g.vertices[id].antenna.Point().Compare(target)
	})
}

func (g *Graph) lookup(p Point) (VertexID, bool) {
	pos, found := g.search(p)
	if !found {
		return noVertex, false
	}
	return g.order[pos], true
}

// Find returns the vertex at (x, y).
func (g *Graph) Find(x, y int) (*Vertex, bool) {
	if g == nil {
		return nil, false
	}
	id, ok := g.lookup(Pt(x, y))
	if !ok {
		return nil, false
	}
	return g.vertices[id], true
}

// FindIndex returns the position of (x, y) in sorted order.
func (g *Graph) FindIndex(x, y int) (int, bool) {
	if g == nil {
		return -1, false
	}
	pos, found := g.search(Pt(x, y))
	if !found {
		return -1, false
	}
	return pos, true
}

// At returns the vertex at position i in sorted order.
func (g *Graph) At(i int) (*Vertex, bool) {
	if g == nil || i < 0 || i >= len(g.order) {
		return nil, false
	}
	return g.vertices[g.order[i]], true
}

// Antennas returns all antennas sorted by (X, Y).
func (g *Graph) Antennas() []Antenna {
	if g == nil {
		return nil
	}
	out := make([]Antenna, len(g.order))
	for i, id := range g.order {
		out[i] = g.vertices[id].antenna
	}
	return out
}

// Neighbors returns the antennas linked to p, most recently connected first.
func (g *Graph) Neighbors(p Point) ([]Antenna, error) {
	id, ok := g.lookup(p)
	if !ok {
		return nil, NewError("neighbors").Frequency(g.frequency).At(p).Cause(ErrVertexNotFound).Err()
	}
	adj := g.vertices[id].adjacency
	out := make([]Antenna, 0, len(adj))
	for i := len(adj) - 1; i >= 0; i-- {
		out = append(out, g.vertices[adj[i].Target].antenna)
	}
	return out, nil
}

// Each calls fn for every vertex in sorted order with its neighbours in the
// order they were connected, oldest first. It stops at the first error.
func (g *Graph) Each(fn func(a Antenna, neighbors []Antenna) error) error {
	if g == nil {
		return nil
	}
	for _, id := range g.order {
		v := g.vertices[id]
		nbrs := make([]Antenna, len(v.adjacency))
		for i, e := range v.adjacency {
			nbrs[i] = g.vertices[e.Target].antenna
		}
		if err := fn(v.antenna, nbrs); err != nil {
			return err
		}
	}
	return nil
}

// Stats summarises the graph.
func (g *Graph) Stats() GraphStats {
	return GraphStats{Frequency: g.frequency, Antennas: g.Count(), Links: g.Links()}
}

// Destroy tears the graph down: each vertex's edges, then the vertices and
// their antennas, then the containers, and drops the graph's size gauges. A
// destroyed graph rejects inserts and fails validation.
func (g *Graph) Destroy() {
	if g == nil || g.destroyed {
		return
	}
	for _, v := range g.vertices {
		if v != nil {
			v.adjacency = nil
		}
	}
	clear(g.vertices)
	g.vertices = nil
	g.order = nil
	g.links = 0
	g.destroyed = true
	g.cfg.recorder.RemoveGraph(g.frequency.String())
	g.cfg.logger.Debug("graph destroyed", logging.Frequency(byte(g.frequency)))
}

func (g *Graph) publishSize() {
	g.cfg.recorder.SetGraphSize(g.frequency.String(), len(g.order), g.links)
}

func (g *Graph) clearVisited() {
	for _, v := range g.vertices {
		v.visited = false
	}
}
