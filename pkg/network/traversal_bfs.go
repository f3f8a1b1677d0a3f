package network

import (
	"time"

	"github.com/dd0wney/cluso-antennas/pkg/logging"
)

type bfsEntry struct {
	id    VertexID
	depth int
}

// BFS walks the graph breadth-first from start. Neighbours are scanned most
// recently connected first. Visited flags are cleared before returning, so
// repeated calls on an unchanged graph give identical results.
func (g *Graph) BFS(start Point) (t *Traversal, err error) {
	began := time.Now()
	defer func() {
		g.cfg.observe("bfs", began, err)
		g.cfg.recorder.RecordTraversal("bfs", t.Count())
	}()

	root, ok := g.lookup(start)
	if !ok {
		return nil, NewError("bfs").Frequency(g.frequency).At(start).Cause(ErrVertexNotFound).Err()
	}
	defer g.clearVisited()

	t = &Traversal{Kind: "bfs", Start: start, Visits: make([]Visit, 0, len(g.order))}
	queue := []bfsEntry{{id: root}}
	g.vertices[root].visited = true

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		v := g.vertices[current.id]
		t.add(v.antenna, current.depth)

		for i := len(v.adjacency) - 1; i >= 0; i-- {
			next := g.vertices[v.adjacency[i].Target]
			if next.visited {
				continue
			}
			next.visited = true
			queue = append(queue, bfsEntry{id: v.adjacency[i].Target, depth: current.depth + 1})
		}
	}

	g.cfg.logger.Debug("bfs complete",
		logging.Frequency(byte(g.frequency)),
		logging.Coord(start.X, start.Y),
		logging.Count(t.Count()),
	)
	return t, nil
}
