package algorithms

import (
	"testing"

	"github.com/dd0wney/cluso-antennas/pkg/network"
)

// setupTestGraph builds an 'A' graph from points and links between them.
func setupTestGraph(t *testing.T, points []network.Point, links [][2]network.Point) *network.Graph {
	t.Helper()
	g, err := network.NewGraph('A')
	if err != nil {
		t.Fatalf("Failed to create graph: %v", err)
	}
	for _, p := range points {
		if err := g.Insert('A', p.X, p.Y); err != nil {
			t.Fatalf("Failed to insert %v: %v", p, err)
		}
	}
	for _, l := range links {
		if err := g.Connect(l[0], l[1]); err != nil {
			t.Fatalf("Failed to connect %v-%v: %v", l[0], l[1], err)
		}
	}
	return g
}

func chain(n int) ([]network.Point, [][2]network.Point) {
	points := make([]network.Point, n)
	var links [][2]network.Point
	for i := range points {
		points[i] = network.Pt(0, i)
		if i > 0 {
			links = append(links, [2]network.Point{points[i-1], points[i]})
		}
	}
	return points, links
}
