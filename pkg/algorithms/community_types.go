package algorithms

import "github.com/dd0wney/cluso-antennas/pkg/network"

// Component is a maximal set of mutually reachable antennas of one frequency.
type Component struct {
	ID        int
	Frequency network.Frequency
	Antennas  []network.Point // ascending (X, Y)
	Size      int
	Links     int     // links with both ends inside the component
	Density   float64 // Links relative to a full mesh of Size antennas
}

// ComponentsResult contains the components of one graph.
type ComponentsResult struct {
	Frequency  network.Frequency
	Components []*Component
	Membership map[network.Point]int // Point -> Component ID
}

// Largest returns the component with the most antennas, nil for an empty result.
func (r *ComponentsResult) Largest() *Component {
	var best *Component
	for _, c := range r.Components {
		if best == nil || c.Size > best.Size {
			best = c
		}
	}
	return best
}
