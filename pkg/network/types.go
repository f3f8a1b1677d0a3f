package network

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

const (
	// DefaultMaxDim is the side length of the square antenna grid.
	DefaultMaxDim = 20
	// MaxFrequencies is the number of frequency letters, A through Z.
	MaxFrequencies = 26
	// DefaultPathBudget is the number of search steps CountPaths may take.
	DefaultPathBudget = 1_000_000
)

// Frequency is a single upper-case letter classifying an antenna.
type Frequency byte

// Valid reports whether f is one of 'A'..'Z'.
func (f Frequency) Valid() bool {
	return f >= 'A' && f <= 'Z'
}

// Index returns the zero-based position of f in the alphabet.
func (f Frequency) Index() int {
	return int(f - 'A')
}

func (f Frequency) String() string {
	if !f.Valid() {
		return fmt.Sprintf("Frequency(%d)", byte(f))
	}
	return string(rune(f))
}

// MarshalText encodes f as its letter.
func (f Frequency) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFrequency, byte(f))
	}
	return []byte{byte(f)}, nil
}

// UnmarshalText accepts a single letter in either case.
func (f *Frequency) UnmarshalText(text []byte) error {
	parsed, err := ParseFrequency(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// ParseFrequency accepts a single letter in either case.
func ParseFrequency(s string) (Frequency, error) {
	s = strings.TrimSpace(s)
	if len(s) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFrequency, s)
	}
	f, ok := FrequencyFromRune(rune(s[0]))
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFrequency, s)
	}
	return f, nil
}

// FrequencyFromRune converts a letter to a Frequency, upper-casing it.
func FrequencyFromRune(r rune) (Frequency, bool) {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	f := Frequency(r)
	if r > 0xff || !f.Valid() {
		return 0, false
	}
	return f, true
}

// Point is a grid coordinate. X is the row, Y the column.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Compare orders points by X, then Y.
func (p Point) Compare(o Point) int {
	if c := cmp.Compare(p.X, o.X); c != 0 {
		return c
	}
	return cmp.Compare(p.Y, o.Y)
}

// In reports whether p lies inside a dim×dim grid.
func (p Point) In(dim int) bool {
	return p.X >= 0 && p.X < dim && p.Y >= 0 && p.Y < dim
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// ParsePoint parses "x,y", optionally wrapped in parentheses.
func ParsePoint(s string) (Point, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Point{}, fmt.Errorf("point %q: expected x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Point{}, fmt.Errorf("point %q: %w", s, err)
	}
	return Point{X: x, Y: y}, nil
}

// Antenna is a labelled point on the grid.
type Antenna struct {
	Frequency Frequency `json:"frequency"`
	X         int       `json:"x"`
	Y         int       `json:"y"`
}

// NewAntenna creates an antenna value.
func NewAntenna(freq Frequency, x, y int) Antenna {
	return Antenna{Frequency: freq, X: x, Y: y}
}

// Point returns the antenna's coordinate.
func (a Antenna) Point() Point {
	return Point{X: a.X, Y: a.Y}
}

func (a Antenna) String() string {
	return fmt.Sprintf("%s%s", a.Frequency, a.Point())
}

// VertexID is a stable arena slot inside one Graph.
type VertexID int

const noVertex VertexID = -1

// Edge is one directed half of a link.
type Edge struct {
	Target VertexID
}

// Vertex wraps an antenna with its adjacency list and traversal scratch flag.
type Vertex struct {
	antenna   Antenna
	adjacency []Edge // append order; iterated newest first
	visited   bool
}

func newVertex(a Antenna) *Vertex {
	return &Vertex{antenna: a}
}

// Antenna returns the wrapped antenna.
func (v *Vertex) Antenna() Antenna {
	return v.antenna
}

// Degree returns the number of outgoing edges.
func (v *Vertex) Degree() int {
	return len(v.adjacency)
}

// Edges returns a copy of the adjacency list, most recently connected first.
func (v *Vertex) Edges() []Edge {
	out := make([]Edge, len(v.adjacency))
	for i, e := range v.adjacency {
		out[len(v.adjacency)-1-i] = e
	}
	return out
}

// Visit records one vertex reached by a traversal.
type Visit struct {
	Antenna Antenna `json:"antenna"`
	Order   int     `json:"order"`
	Depth   int     `json:"depth"`
}

// Traversal is the ordered set of vertices reached from a start point.
type Traversal struct {
	Kind   string  `json:"kind"`
	Start  Point   `json:"start"`
	Visits []Visit `json:"visits"`
}

// Count returns the number of vertices reached, including the start.
func (t *Traversal) Count() int {
	if t == nil {
		return 0
	}
	return len(t.Visits)
}

// Points returns the reached coordinates in visit order.
func (t *Traversal) Points() []Point {
	if t == nil {
		return nil
	}
	out := make([]Point, len(t.Visits))
	for i, v := range t.Visits {
		out[i] = v.Antenna.Point()
	}
	return out
}

// Contains reports whether p was reached.
func (t *Traversal) Contains(p Point) bool {
	if t == nil {
		return false
	}
	for _, v := range t.Visits {
		if v.Antenna.Point() == p {
			return true
		}
	}
	return false
}

func (t *Traversal) add(a Antenna, depth int) Visit {
	v := Visit{Antenna: a, Order: len(t.Visits), Depth: depth}
	t.Visits = append(t.Visits, v)
	return v
}

// GraphStats summarises one graph.
type GraphStats struct {
	Frequency Frequency `json:"frequency"`
	Antennas  int       `json:"antennas"`
	Links     int       `json:"links"`
}

// Stats summarises a network.
type Stats struct {
	Graphs   []GraphStats `json:"graphs"`
	Antennas int          `json:"antennas"`
	Links    int          `json:"links"`
}
