package network

import (
	"time"

	"github.com/dd0wney/cluso-antennas/pkg/logging"
)

// CountPaths returns the number of simple paths (no repeated antenna) from
// origin to destination. A path from an antenna to itself counts once.
// Visited flags are left exactly as they were found.
//
// The count is exponential in the number of links, so the search stops with
// ErrPathBudget once it has entered more vertices than the configured budget.
func (g *Graph) CountPaths(origin, destination Point) (n int, err error) {
	start := time.Now()
	defer func() { g.cfg.observe("paths", start, err) }()

	from, ok := g.lookup(origin)
	if !ok {
		return 0, NewError("paths").Frequency(g.frequency).At(origin).Cause(ErrVertexNotFound).Err()
	}
	to, ok := g.lookup(destination)
	if !ok {
		return 0, NewError("paths").Frequency(g.frequency).At(destination).Cause(ErrVertexNotFound).Err()
	}

	budget := g.cfg.pathBudget
	n, ok = g.countPaths(from, to, &budget)
	if !ok {
		return 0, NewError("paths").Frequency(g.frequency).Between(origin, destination).Cause(ErrPathBudget).Err()
	}
	g.cfg.logger.Debug("paths counted",
		logging.Frequency(byte(g.frequency)),
		logging.Coord(origin.X, origin.Y),
		logging.String("destination", destination.String()),
		logging.Count(n),
	)
	return n, nil
}

// countPaths reports false when the budget ran out. Flags are restored on
// the way out either way.
func (g *Graph) countPaths(origin, destination VertexID, budget *int) (int, bool) {
	if origin == noVertex {
		return 0, true
	}
	if *budget <= 0 {
		return 0, false
	}
	*budget--
	if origin == destination {
		return 1, true
	}

	v := g.vertices[origin]
	was := v.visited
	v.visited = true
	defer func() { v.visited = was }()

	total := 0
	for i := len(v.adjacency) - 1; i >= 0; i-- {
		next := v.adjacency[i].Target
		if g.vertices[next].visited {
			continue
		}
		n, ok := g.countPaths(next, destination, budget)
		if !ok {
			return 0, false
		}
		total += n
	}
	return total, true
}
