package algorithms

import (
	"github.com/dd0wney/cluso-antennas/pkg/network"
)

// ShortestPath finds a path with the fewest hops between two antennas using
// bidirectional BFS. It returns nil when the antennas are not connected.
func ShortestPath(g *network.Graph, start, end network.Point) ([]network.Point, error) {
	for _, p := range []network.Point{start, end} {
		if _, ok := g.Find(p.X, p.Y); !ok {
			return nil, network.NewError("shortest_path").Frequency(g.Frequency()).At(p).
				Cause(network.ErrVertexNotFound).Err()
		}
	}
	if start == end {
		return []network.Point{start}, nil
	}

	forwardQueue := []network.Point{start}
	forwardVisited := map[network.Point]network.Point{start: start} // point -> parent

	backwardQueue := []network.Point{end}
	backwardVisited := map[network.Point]network.Point{end: end}

	for len(forwardQueue) > 0 && len(backwardQueue) > 0 {
		var meeting network.Point
		var met bool

		forwardQueue, meeting, met = expandFrontier(g, forwardQueue, forwardVisited, backwardVisited)
		if met {
			return reconstructPath(meeting, forwardVisited, backwardVisited), nil
		}

		backwardQueue, meeting, met = expandFrontier(g, backwardQueue, backwardVisited, forwardVisited)
		if met {
			return reconstructPath(meeting, forwardVisited, backwardVisited), nil
		}
	}

	return nil, nil
}

// expandFrontier expands one BFS level and reports where it meets the other search.
func expandFrontier(
	g *network.Graph,
	queue []network.Point,
	visited map[network.Point]network.Point,
	otherVisited map[network.Point]network.Point,
) ([]network.Point, network.Point, bool) {
	next := make([]network.Point, 0, len(queue))
	for _, current := range queue {
		nbrs, err := g.Neighbors(current)
		if err != nil {
			continue
		}
		for _, a := range nbrs {
			p := a.Point()
			if _, seen := visited[p]; seen {
				continue
			}
			visited[p] = current
			if _, found := otherVisited[p]; found {
				return nil, p, true
			}
			next = append(next, p)
		}
	}
	return next, network.Point{}, false
}

// reconstructPath joins the two half paths at the meeting point.
func reconstructPath(meeting network.Point, forward, backward map[network.Point]network.Point) []network.Point {
	path := []network.Point{meeting}
	for p := meeting; forward[p] != p; {
		p = forward[p]
		path = append([]network.Point{p}, path...)
	}
	for p := meeting; backward[p] != p; {
		p = backward[p]
		path = append(path, p)
	}
	return path
}
