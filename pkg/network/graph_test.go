package network

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGraph_InvalidFrequency(t *testing.T) {
	_, err := NewGraph('1')
	if !errors.Is(err, ErrInvalidFrequency) {
		t.Fatalf("NewGraph('1') error = %v, want ErrInvalidFrequency", err)
	}
}

func TestGraphInsert_SortedOrder(t *testing.T) {
	g := mustGraph(t, Pt(5, 5), Pt(1, 9), Pt(1, 2), Pt(7, 0), Pt(1, 3))

	want := []Point{Pt(1, 2), Pt(1, 3), Pt(1, 9), Pt(5, 5), Pt(7, 0)}
	got := g.Antennas()
	require.Len(t, got, len(want))
	for i, p := range want {
		assert.Equal(t, p, got[i].Point(), "position %d", i)
		assert.Equal(t, Frequency('A'), got[i].Frequency)
	}

	idx, ok := g.FindIndex(5, 5)
	assert.True(t, ok)
	assert.Equal(t, 3, idx)

	v, ok := g.At(idx)
	require.True(t, ok)
	assert.Equal(t, Pt(5, 5), v.Antenna().Point())
}

func TestGraphInsert_Duplicate(t *testing.T) {
	g := mustGraph(t, Pt(6, 3))

	err := g.Insert('A', 6, 3)
	if !errors.Is(err, ErrDuplicateAntenna) {
		t.Fatalf("second Insert error = %v, want ErrDuplicateAntenna", err)
	}
	if !IsDuplicate(err) {
		t.Error("IsDuplicate() should report the duplicate")
	}
	if g.Count() != 1 {
		t.Errorf("Count() = %d, want 1", g.Count())
	}
}

func TestGraphInsert_Rejections(t *testing.T) {
	tests := []struct {
		name string
		freq Frequency
		x, y int
		want error
	}{
		{"negative x", 'A', -1, 0, ErrInvalidCoordinate},
		{"x at bound", 'A', DefaultMaxDim, 0, ErrInvalidCoordinate},
		{"y at bound", 'A', 0, DefaultMaxDim, ErrInvalidCoordinate},
		{"other frequency", 'B', 1, 1, ErrFrequencyMismatch},
		{"not a letter", '?', 1, 1, ErrInvalidFrequency},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGraph(t)
			err := g.Insert(tt.freq, tt.x, tt.y)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Insert error = %v, want %v", err, tt.want)
			}
			if g.Count() != 0 {
				t.Errorf("failed insert changed Count() to %d", g.Count())
			}
		})
	}
}

func TestGraphInsert_Capacity(t *testing.T) {
	g, err := NewGraph('A', WithCapacity(2))
	require.NoError(t, err)

	require.NoError(t, g.Insert('A', 0, 0))
	require.NoError(t, g.Insert('A', 0, 1))
	err = g.Insert('A', 0, 2)
	assert.ErrorIs(t, err, ErrGraphFull)
	assert.Equal(t, 2, g.Count())
	assert.Equal(t, 2, g.Capacity())
}

func TestGraphInsert_CustomGrid(t *testing.T) {
	g, err := NewGraph('A', WithMaxDim(5))
	require.NoError(t, err)
	assert.Equal(t, 5, g.MaxDim())
	assert.Equal(t, 25, g.Capacity(), "capacity follows the grid by default")

	assert.NoError(t, g.Insert('A', 4, 4))
	assert.ErrorIs(t, g.Insert('A', 5, 0), ErrInvalidCoordinate)
}

func TestGraphFind(t *testing.T) {
	g := mustGraph(t, Pt(2, 5), Pt(4, 6))

	v, ok := g.Find(4, 6)
	require.True(t, ok)
	assert.Equal(t, NewAntenna('A', 4, 6), v.Antenna())

	_, ok = g.Find(6, 4)
	assert.False(t, ok)
	_, ok = g.FindIndex(6, 4)
	assert.False(t, ok)
	_, ok = g.At(2)
	assert.False(t, ok)

	var nilGraph *Graph
	_, ok = nilGraph.Find(0, 0)
	assert.False(t, ok)
}

func TestGraphValidate(t *testing.T) {
	t.Run("empty graph is invalid", func(t *testing.T) {
		g := mustGraph(t)
		if g.Validate() {
			t.Error("Validate() on empty graph = true, want false")
		}
	})

	t.Run("single vertex is valid", func(t *testing.T) {
		g := mustGraph(t, Pt(0, 0))
		if !g.Validate() {
			t.Error("Validate() on one-vertex graph = false, want true")
		}
	})

	t.Run("nil graph is invalid", func(t *testing.T) {
		var g *Graph
		if g.Validate() {
			t.Error("Validate() on nil graph = true")
		}
	})

	t.Run("foreign antenna data is invalid", func(t *testing.T) {
		g := mustGraph(t, Pt(0, 0))
		g.vertices[0].antenna.Frequency = 'B'
		if g.Validate() {
			t.Error("Validate() accepted a vertex of another frequency")
		}
	})

	t.Run("destroyed graph is invalid", func(t *testing.T) {
		g := mustGraph(t, Pt(0, 0), Pt(1, 1))
		g.Destroy()
		if g.Validate() {
			t.Error("Validate() on destroyed graph = true")
		}
	})
}

func TestGraphDestroy(t *testing.T) {
	g := mustGraph(t, Pt(0, 0), Pt(1, 1))
	require.NoError(t, g.Connect(Pt(0, 0), Pt(1, 1)))
	v, _ := g.Find(0, 0)

	g.Destroy()
	g.Destroy() // second call is a no-op

	assert.Equal(t, 0, g.Count())
	assert.Equal(t, 0, g.Links())
	assert.Nil(t, v.adjacency, "edges are released before the vertex")
	assert.ErrorIs(t, g.Insert('A', 2, 2), ErrStructuralInvalid)
}

func TestGraphDestroy_DropsSizeGauges(t *testing.T) {
	rec := newFakeRecorder()
	g, err := NewGraph('A', WithRecorder(rec))
	require.NoError(t, err)
	require.NoError(t, g.Insert('A', 0, 0))
	require.NoError(t, g.Insert('A', 1, 1))
	require.NoError(t, g.Connect(Pt(0, 0), Pt(1, 1)))
	assert.Equal(t, [2]int{2, 1}, rec.sizes["A"])

	g.Destroy()
	g.Destroy()

	_, ok := rec.sizes["A"]
	assert.False(t, ok, "gauges left at their last values")
	assert.Equal(t, []string{"A"}, rec.removed)
}

func TestGraphNeighborsAndEach(t *testing.T) {
	g := mustGraph(t, Pt(0, 0), Pt(0, 1), Pt(0, 2))
	require.NoError(t, g.Connect(Pt(0, 0), Pt(0, 1)))
	require.NoError(t, g.Connect(Pt(0, 0), Pt(0, 2)))

	nbrs, err := g.Neighbors(Pt(0, 0))
	require.NoError(t, err)
	require.Len(t, nbrs, 2)
	assert.Equal(t, Pt(0, 2), nbrs[0].Point(), "newest link first")
	assert.Equal(t, Pt(0, 1), nbrs[1].Point())

	_, err = g.Neighbors(Pt(9, 9))
	assert.ErrorIs(t, err, ErrVertexNotFound)

	degrees := map[Point]int{}
	var first []Antenna
	require.NoError(t, g.Each(func(a Antenna, n []Antenna) error {
		degrees[a.Point()] = len(n)
		if a.Point() == Pt(0, 0) {
			first = n
		}
		return nil
	}))
	assert.Equal(t, map[Point]int{Pt(0, 0): 2, Pt(0, 1): 1, Pt(0, 2): 1}, degrees)
	assert.Equal(t, []Antenna{NewAntenna('A', 0, 1), NewAntenna('A', 0, 2)}, first, "oldest link first")

	visited := 0
	errStop := errors.New("stop")
	err = g.Each(func(Antenna, []Antenna) error {
		visited++
		return errStop
	})
	assert.ErrorIs(t, err, errStop)
	assert.Equal(t, 1, visited)

	assert.Equal(t, GraphStats{Frequency: 'A', Antennas: 3, Links: 2}, g.Stats())
}
