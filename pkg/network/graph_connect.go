package network

import (
	"slices"
	"time"

	"github.com/dd0wney/cluso-antennas/pkg/logging"
)

// Connect links the antennas at a and b in both directions.
func (g *Graph) Connect(a, b Point) (err error) {
	start := time.Now()
	defer func() { g.cfg.observe("connect", start, err) }()

	errb := NewError("connect").Frequency(g.frequency).Between(a, b)
	if a == b {
		return errb.Cause(ErrSelfLoop).Err()
	}
	from, ok := g.lookup(a)
	if !ok {
		return NewError("connect").Frequency(g.frequency).At(a).Cause(ErrVertexNotFound).Err()
	}
	to, ok := g.lookup(b)
	if !ok {
		return NewError("connect").Frequency(g.frequency).At(b).Cause(ErrVertexNotFound).Err()
	}
	return g.link(from, to, errb)
}

// ConnectIndex links the vertices at positions i and j of the sorted order.
func (g *Graph) ConnectIndex(i, j int) (err error) {
	start := time.Now()
	defer func() { g.cfg.observe("connect", start, err) }()

	for _, idx := range []int{i, j} {
		if idx < 0 || idx >= len(g.order) {
			return NewError("connect").Frequency(g.frequency).Index(idx).Cause(ErrIndexOutOfRange).Err()
		}
	}
	if i == j {
		return NewError("connect").Frequency(g.frequency).Index(i).Cause(ErrSelfLoop).Err()
	}
	from, to := g.order[i], g.order[j]
	errb := NewError("connect").Frequency(g.frequency).
		Between(g.vertices[from].antenna.Point(), g.vertices[to].antenna.Point())
	return g.link(from, to, errb)
}

// link creates both halves of a connection or neither. Room for the two
// edges is reserved before either adjacency list is touched.
func (g *Graph) link(from, to VertexID, errb *ErrorBuilder) error {
	vf, vt := g.vertices[from], g.vertices[to]
	if vf.linkedTo(to) || vt.linkedTo(from) {
		return errb.Cause(ErrDuplicateEdge).Err()
	}

	fromAdj := slices.Grow(vf.adjacency, 1)
	toAdj := slices.Grow(vt.adjacency, 1)
	vf.adjacency = append(fromAdj, Edge{Target: to})
	vt.adjacency = append(toAdj, Edge{Target: from})
	g.links++

	g.cfg.logger.Debug("antennas connected",
		logging.Frequency(byte(g.frequency)),
		logging.Coord(vf.antenna.X, vf.antenna.Y),
		logging.String("peer", vt.antenna.Point().String()),
	)
	g.publishSize()
	return nil
}

func (v *Vertex) linkedTo(id VertexID) bool {
	for _, e := range v.adjacency {
		if e.Target == id {
			return true
		}
	}
	return false
}

// Connected reports whether a and b are directly linked.
func (g *Graph) Connected(a, b Point) bool {
	from, ok := g.lookup(a)
	if !ok {
		return false
	}
	to, ok := g.lookup(b)
	if !ok {
		return false
	}
	return g.vertices[from].linkedTo(to)
}
