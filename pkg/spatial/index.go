// Package spatial indexes antennas by position with one R-tree per frequency.
package spatial

import (
	"math"
	"slices"

	"github.com/dhconnelly/rtreego"

	"github.com/dd0wney/cluso-antennas/pkg/network"
)

// pointTolerance gives each antenna a tiny box so rtreego accepts it.
const pointTolerance = 0.01

// entry wraps an antenna for R-tree storage
type entry struct {
	antenna network.Antenna
	bbox    rtreego.Rect
}

// Bounds implements rtreego.Spatial interface
func (e *entry) Bounds() rtreego.Rect {
	return e.bbox
}

// Neighbor is an antenna returned by a nearest query.
type Neighbor struct {
	Antenna  network.Antenna `json:"antenna"`
	Distance float64         `json:"distance"`
}

// Index answers position queries over a network snapshot. It does not follow
// later changes to the network; call Insert or Remove to keep it in step.
type Index struct {
	trees   map[network.Frequency]*rtreego.Rtree
	entries map[network.Antenna]*entry
}

// NewIndex indexes every antenna currently in net.
func NewIndex(net *network.Network) *Index {
	ix := &Index{
		trees:   make(map[network.Frequency]*rtreego.Rtree),
		entries: make(map[network.Antenna]*entry),
	}
	for _, a := range net.Antennas() {
		ix.Insert(a)
	}
	return ix
}

// Insert adds an antenna. Inserting an indexed antenna again is a no-op.
func (ix *Index) Insert(a network.Antenna) {
	if _, ok := ix.entries[a]; ok {
		return
	}
	tree, ok := ix.trees[a.Frequency]
	if !ok {
		tree = rtreego.NewTree(2, 25, 50) // 2D, min 25, max 50 entries per node
		ix.trees[a.Frequency] = tree
	}
	e := &entry{
		antenna: a,
		bbox:    rtreego.Point{float64(a.X), float64(a.Y)}.ToRect(pointTolerance),
	}
	tree.Insert(e)
	ix.entries[a] = e
}

// Remove drops an antenna and reports whether it was indexed.
func (ix *Index) Remove(a network.Antenna) bool {
	e, ok := ix.entries[a]
	if !ok {
		return false
	}
	tree := ix.trees[a.Frequency]
	tree.Delete(e)
	delete(ix.entries, a)
	if tree.Size() == 0 {
		delete(ix.trees, a.Frequency)
	}
	return true
}

// Len returns the number of indexed antennas.
func (ix *Index) Len() int {
	return len(ix.entries)
}

// treesFor returns the trees to search, all of them when freqs is empty.
func (ix *Index) treesFor(freqs []network.Frequency) []*rtreego.Rtree {
	if len(freqs) == 0 {
		freqs = make([]network.Frequency, 0, len(ix.trees))
		for f := range ix.trees {
			freqs = append(freqs, f)
		}
	}
	out := make([]*rtreego.Rtree, 0, len(freqs))
	for _, f := range freqs {
		if t, ok := ix.trees[f]; ok {
			out = append(out, t)
		}
	}
	return out
}

// Nearest returns up to k antennas closest to p by Euclidean distance,
// nearest first, optionally restricted to some frequencies. Ties are broken
// by frequency, then position.
func (ix *Index) Nearest(p network.Point, k int, freqs ...network.Frequency) []Neighbor {
	if k <= 0 {
		return nil
	}
	q := rtreego.Point{float64(p.X), float64(p.Y)}

	var found []Neighbor
	for _, tree := range ix.treesFor(freqs) {
		for _, s := range tree.NearestNeighbors(k, q) {
			e, ok := s.(*entry)
			if !ok || e == nil {
				continue
			}
			found = append(found, Neighbor{Antenna: e.antenna, Distance: distance(p, e.antenna.Point())})
		}
	}

	slices.SortFunc(found, compareNeighbors)
	if len(found) > k {
		found = found[:k]
	}
	return found
}

// InRegion returns the antennas inside the inclusive rectangle spanned by
// two corners, sorted by frequency then position.
func (ix *Index) InRegion(a, b network.Point, freqs ...network.Frequency) []network.Antenna {
	minX, maxX := min(a.X, b.X), max(a.X, b.X)
	minY, maxY := min(a.Y, b.Y), max(a.Y, b.Y)

	// Cells are unit squares centred on integer coordinates.
	bbox, err := rtreego.NewRect(
		rtreego.Point{float64(minX) - 0.5, float64(minY) - 0.5},
		[]float64{float64(maxX-minX) + 1, float64(maxY-minY) + 1},
	)
	if err != nil {
		return []network.Antenna{}
	}

	out := make([]network.Antenna, 0)
	for _, tree := range ix.treesFor(freqs) {
		for _, s := range tree.SearchIntersect(bbox) {
			out = append(out, s.(*entry).antenna)
		}
	}
	slices.SortFunc(out, compareAntennas)
	return out
}

// Within returns the antennas whose distance from p is at most radius,
// nearest first.
func (ix *Index) Within(p network.Point, radius float64, freqs ...network.Frequency) []Neighbor {
	if radius < 0 {
		return nil
	}
	r := int(math.Floor(radius))
	candidates := ix.InRegion(network.Pt(p.X-r, p.Y-r), network.Pt(p.X+r, p.Y+r), freqs...)

	out := make([]Neighbor, 0, len(candidates))
	for _, a := range candidates {
		if d := distance(p, a.Point()); d <= radius {
			out = append(out, Neighbor{Antenna: a, Distance: d})
		}
	}
	slices.SortFunc(out, compareNeighbors)
	return out
}

func distance(p, q network.Point) float64 {
	return math.Hypot(float64(p.X-q.X), float64(p.Y-q.Y))
}

func compareAntennas(a, b network.Antenna) int {
	if a.Frequency != b.Frequency {
		return int(a.Frequency) - int(b.Frequency)
	}
	return a.Point().Compare(b.Point())
}

func compareNeighbors(a, b Neighbor) int {
	switch {
	case a.Distance < b.Distance:
		return -1
	case a.Distance > b.Distance:
		return 1
	}
	return compareAntennas(a.Antenna, b.Antenna)
}
