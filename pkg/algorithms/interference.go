package algorithms

import (
	"maps"
	"slices"

	"github.com/dd0wney/cluso-antennas/pkg/network"
)

// InterferencePoints returns the interference points of one graph: for every
// pair of antennas a, b the points 2a-b and 2b-a that fall inside a grid of
// side dim. Points are unique and sorted by (X, Y). They are derived values
// and never become antennas.
func InterferencePoints(g *network.Graph, dim int) []network.Point {
	set := make(map[network.Point]struct{})
	collectInterference(g.Antennas(), dim, set)
	return sortedPoints(set)
}

// Interference returns the union of interference points over every graph in
// the network, bounded by the network's grid.
func Interference(net *network.Network) []network.Point {
	set := make(map[network.Point]struct{})
	for _, g := range net.Graphs() {
		collectInterference(g.Antennas(), net.MaxDim(), set)
	}
	return sortedPoints(set)
}

// InterferenceByFrequency returns the interference points per frequency.
func InterferenceByFrequency(net *network.Network) map[network.Frequency][]network.Point {
	out := make(map[network.Frequency][]network.Point, net.Len())
	for _, g := range net.Graphs() {
		if pts := InterferencePoints(g, net.MaxDim()); len(pts) > 0 {
			out[g.Frequency()] = pts
		}
	}
	return out
}

func collectInterference(antennas []network.Antenna, dim int, set map[network.Point]struct{}) {
	for i := 0; i < len(antennas); i++ {
		a := antennas[i].Point()
		for j := i + 1; j < len(antennas); j++ {
			b := antennas[j].Point()
			dx, dy := b.X-a.X, b.Y-a.Y
			for _, p := range []network.Point{
				network.Pt(a.X-dx, a.Y-dy),
				network.Pt(b.X+dx, b.Y+dy),
			} {
				if p.In(dim) {
					set[p] = struct{}{}
				}
			}
		}
	}
}

func sortedPoints(set map[network.Point]struct{}) []network.Point {
	return slices.SortedFunc(maps.Keys(set), network.Point.Compare)
}
