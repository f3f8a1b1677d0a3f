package algorithms

import (
	"github.com/dd0wney/cluso-antennas/pkg/network"
)

// Mesh links every pair of antennas in g that is not linked yet and returns
// the number of links it created.
func Mesh(g *network.Graph) (int, error) {
	created := 0
	n := g.Count()
	for i := 0; i < n; i++ {
		a, _ := g.At(i)
		for j := i + 1; j < n; j++ {
			b, _ := g.At(j)
			if g.Connected(a.Antenna().Point(), b.Antenna().Point()) {
				continue
			}
			if err := g.ConnectIndex(i, j); err != nil {
				return created, err
			}
			created++
		}
	}
	return created, nil
}

// MeshNetwork meshes every graph in the network.
func MeshNetwork(net *network.Network) (int, error) {
	total := 0
	for _, g := range net.Graphs() {
		n, err := Mesh(g)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
