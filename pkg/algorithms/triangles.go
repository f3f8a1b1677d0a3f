package algorithms

import (
	"slices"

	"github.com/dd0wney/cluso-antennas/pkg/network"
)

// TriangleCountResult holds per-antenna triangle counts, the global count and
// local clustering coefficients for one graph.
type TriangleCountResult struct {
	PerAntenna             map[network.Point]int
	GlobalCount            int
	ClusteringCoefficients map[network.Point]float64
}

// CountTriangles counts triangles of mutually linked antennas. Each triangle is
// counted once per participating antenna, so GlobalCount = sum(PerAntenna) / 3.
func CountTriangles(g *network.Graph) (*TriangleCountResult, error) {
	antennas := g.Antennas()

	neighbors := make(map[network.Point][]network.Point, len(antennas))
	for _, a := range antennas {
		nbrs, err := g.Neighbors(a.Point())
		if err != nil {
			return nil, err
		}
		pts := make([]network.Point, len(nbrs))
		for i, n := range nbrs {
			pts[i] = n.Point()
		}
		slices.SortFunc(pts, network.Point.Compare)
		neighbors[a.Point()] = pts
	}

	perAntenna := make(map[network.Point]int, len(antennas))
	coefficients := make(map[network.Point]float64, len(antennas))
	total := 0
	for _, a := range antennas {
		u := a.Point()
		nbrs := neighbors[u]
		count := 0
		for i := 0; i < len(nbrs); i++ {
			for j := i + 1; j < len(nbrs); j++ {
				if g.Connected(nbrs[i], nbrs[j]) {
					count++
				}
			}
		}
		perAntenna[u] = count
		total += count

		if k := len(nbrs); k >= 2 {
			coefficients[u] = float64(count) / float64(k*(k-1)/2)
		} else {
			coefficients[u] = 0.0
		}
	}

	return &TriangleCountResult{
		PerAntenna:             perAntenna,
		GlobalCount:            total / 3,
		ClusteringCoefficients: coefficients,
	}, nil
}
