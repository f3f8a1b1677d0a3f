package algorithms

import (
	"fmt"

	"github.com/dd0wney/cluso-antennas/pkg/network"
)

// KHopOptions configures the k-hop neighbourhood query.
type KHopOptions struct {
	MaxHops    int // must be >= 1
	MaxResults int // 0 = unlimited; BFS order gives closer antennas priority
}

// KHopResult holds the BFS neighbourhood of a source antenna.
type KHopResult struct {
	Source         network.Point
	ByHop          map[int][]network.Point // hop distance -> antennas at that distance
	Distances      map[network.Point]int
	TotalReachable int
}

// DefaultKHopOptions returns sensible defaults.
func DefaultKHopOptions() KHopOptions {
	return KHopOptions{MaxHops: 2}
}

// KHopNeighbours returns every antenna within MaxHops links of source,
// grouped by distance. The source itself is never included.
func KHopNeighbours(g *network.Graph, source network.Point, opts KHopOptions) (*KHopResult, error) {
	if opts.MaxHops < 1 {
		return nil, fmt.Errorf("MaxHops must be >= 1, got %d", opts.MaxHops)
	}

	tr, err := g.BFS(source)
	if err != nil {
		return nil, err
	}

	result := &KHopResult{
		Source:    source,
		ByHop:     make(map[int][]network.Point),
		Distances: make(map[network.Point]int),
	}
	for _, v := range tr.Visits {
		if v.Depth == 0 {
			continue
		}
		if v.Depth > opts.MaxHops {
			break
		}
		if opts.MaxResults > 0 && result.TotalReachable >= opts.MaxResults {
			break
		}
		p := v.Antenna.Point()
		result.ByHop[v.Depth] = append(result.ByHop[v.Depth], p)
		result.Distances[p] = v.Depth
		result.TotalReachable++
	}
	return result, nil
}
