package network

// Validate is a structural sanity check: the graph and its vertex container
// exist, 0 < Count() <= Capacity(), and every vertex carries antenna data of
// the graph's frequency. It does not audit edge symmetry; see CheckSymmetry.
func (g *Graph) Validate() bool {
	if g == nil || g.destroyed || g.vertices == nil || g.cfg == nil {
		return false
	}
	n := len(g.order)
	if n == 0 || n > g.cfg.capacity {
		return false
	}
	for _, id := range g.order {
		if int(id) < 0 || int(id) >= len(g.vertices) {
			return false
		}
		v := g.vertices[id]
		if v == nil || v.antenna.Frequency != g.frequency {
			return false
		}
	}
	return true
}

// CheckSymmetry verifies that every edge u→v has its mirror v→u.
func (g *Graph) CheckSymmetry() error {
	if g == nil {
		return NewError("check").Cause(ErrStructuralInvalid).Err()
	}
	if !g.Validate() {
		return NewError("check").Frequency(g.frequency).Cause(ErrStructuralInvalid).Err()
	}
	for _, id := range g.order {
		v := g.vertices[id]
		for _, e := range v.adjacency {
			if !g.vertices[e.Target].linkedTo(id) {
				return NewError("check").Frequency(g.frequency).
					Between(v.antenna.Point(), g.vertices[e.Target].antenna.Point()).
					Cause(ErrAsymmetricEdge).Err()
			}
		}
	}
	return nil
}
