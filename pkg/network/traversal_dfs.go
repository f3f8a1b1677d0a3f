package network

import (
	"time"

	"github.com/dd0wney/cluso-antennas/pkg/logging"
)

// VisitFunc is called for each vertex as a depth-first walk reaches it.
// Returning an error stops the walk and is passed back to the caller.
type VisitFunc func(v Visit) error

// DFS walks the graph depth-first from start and returns the vertices in the
// order they were first reached.
func (g *Graph) DFS(start Point) (*Traversal, error) {
	return g.DFSWith(start, nil)
}

// DFSWith is DFS with a callback per newly reached vertex. Visited flags are
// cleared before returning, including when fn aborts the walk.
func (g *Graph) DFSWith(start Point, fn VisitFunc) (t *Traversal, err error) {
	began := time.Now()
	defer func() {
		g.cfg.observe("dfs", began, err)
		g.cfg.recorder.RecordTraversal("dfs", t.Count())
	}()

	if !start.In(g.cfg.maxDim) {
		return nil, NewError("dfs").Frequency(g.frequency).At(start).Cause(ErrInvalidCoordinate).Err()
	}
	root, ok := g.lookup(start)
	if !ok {
		return nil, NewError("dfs").Frequency(g.frequency).At(start).Cause(ErrVertexNotFound).Err()
	}
	defer g.clearVisited()

	t = &Traversal{Kind: "dfs", Start: start, Visits: make([]Visit, 0, len(g.order))}
	if err := g.dfs(root, 0, t, fn); err != nil {
		return t, err
	}

	g.cfg.logger.Debug("dfs complete",
		logging.Frequency(byte(g.frequency)),
		logging.Coord(start.X, start.Y),
		logging.Count(t.Count()),
	)
	return t, nil
}

func (g *Graph) dfs(id VertexID, depth int, t *Traversal, fn VisitFunc) error {
	v := g.vertices[id]
	v.visited = true
	visit := t.add(v.antenna, depth)
	if fn != nil {
		if err := fn(visit); err != nil {
			return err
		}
	}
	for i := len(v.adjacency) - 1; i >= 0; i-- {
		next := v.adjacency[i].Target
		if g.vertices[next].visited {
			continue
		}
		if err := g.dfs(next, depth+1, t, fn); err != nil {
			return err
		}
	}
	return nil
}
