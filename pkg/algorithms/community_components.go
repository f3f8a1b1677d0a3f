package algorithms

import (
	"slices"

	"github.com/dd0wney/cluso-antennas/pkg/network"
)

// ConnectedComponents partitions a graph into its connected components.
// Each component is discovered by a BFS from its smallest unvisited antenna,
// so component IDs follow the graph's (X, Y) order.
func ConnectedComponents(g *network.Graph) (*ComponentsResult, error) {
	result := &ComponentsResult{
		Frequency:  g.Frequency(),
		Components: make([]*Component, 0),
		Membership: make(map[network.Point]int, g.Count()),
	}

	for _, a := range g.Antennas() {
		start := a.Point()
		if _, seen := result.Membership[start]; seen {
			continue
		}

		tr, err := g.BFS(start)
		if err != nil {
			return nil, err
		}

		component := &Component{
			ID:        len(result.Components),
			Frequency: g.Frequency(),
			Antennas:  tr.Points(),
		}
		slices.SortFunc(component.Antennas, network.Point.Compare)

		degrees := 0
		for _, p := range component.Antennas {
			result.Membership[p] = component.ID
			nbrs, err := g.Neighbors(p)
			if err != nil {
				return nil, err
			}
			degrees += len(nbrs)
		}
		component.Size = len(component.Antennas)
		component.Links = degrees / 2
		if component.Size > 1 {
			component.Density = float64(component.Links) / float64(component.Size*(component.Size-1)/2)
		}
		result.Components = append(result.Components, component)
	}

	return result, nil
}

// NetworkComponents runs ConnectedComponents on every graph, in frequency order.
func NetworkComponents(net *network.Network) ([]*ComponentsResult, error) {
	out := make([]*ComponentsResult, 0, net.Len())
	for _, g := range net.Graphs() {
		r, err := ConnectedComponents(g)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
