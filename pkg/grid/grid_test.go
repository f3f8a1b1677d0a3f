package grid

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/cluso-antennas/pkg/network"
)

type fakeLoadRecorder struct {
	source            string
	inserted, skipped int
}

func (f *fakeLoadRecorder) RecordLoad(source string, inserted, skipped int) {
	f.source, f.inserted, f.skipped = source, inserted, skipped
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []network.Antenna
	}{
		{
			name:  "plain rows",
			input: "A...\n..B.\n....\n...A\n",
			want: []network.Antenna{
				network.NewAntenna('A', 0, 0),
				network.NewAntenna('A', 3, 3),
				network.NewAntenna('B', 1, 2),
			},
		},
		{
			name:  "crlf and no trailing newline",
			input: "..C\r\nC",
			want: []network.Antenna{
				network.NewAntenna('C', 0, 2),
				network.NewAntenna('C', 1, 0),
			},
		},
		{
			name:  "lower case and digits are ground",
			input: "a1#Z",
			want:  []network.Antenna{network.NewAntenna('Z', 0, 3)},
		},
		{
			name:  "window past the grid is ignored",
			input: "...AB\n....\n....\n....\nAAAA\n",
			want:  []network.Antenna{network.NewAntenna('A', 0, 3)},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			net := network.New(network.WithMaxDim(4))
			res, err := Load(strings.NewReader(tt.input), net)
			require.NoError(t, err)
			assert.Equal(t, tt.want, net.Antennas())
			assert.Equal(t, len(tt.want), res.Inserted)
			assert.Zero(t, res.Skipped)
		})
	}
}

func TestLoad_TwiceSkipsDuplicates(t *testing.T) {
	net := network.New(network.WithMaxDim(4))
	input := "AB..\n..B.\n"

	first, err := Load(strings.NewReader(input), net)
	require.NoError(t, err)
	assert.Equal(t, LoadResult{Inserted: 3}, first)

	rec := &fakeLoadRecorder{}
	second, err := Load(strings.NewReader(input), net, WithSource("again"), WithLoadRecorder(rec))
	require.NoError(t, err)
	assert.Equal(t, LoadResult{Skipped: 3}, second)
	assert.Equal(t, &fakeLoadRecorder{source: "again", skipped: 3}, rec)
}

func TestLoad_StopsWhenGraphFull(t *testing.T) {
	net := network.New(network.WithMaxDim(4), network.WithCapacity(2))

	res, err := Load(strings.NewReader("AAA.\n"), net)
	require.Error(t, err)
	assert.True(t, errors.Is(err, network.ErrGraphFull))
	assert.Contains(t, err.Error(), "line 1")
	assert.Equal(t, 2, res.Inserted)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "map.txt")
	require.NoError(t, os.WriteFile(path, []byte("....\n.K..\n"), 0o644))

	net := network.New(network.WithMaxDim(4))
	res, err := LoadFile(path, net)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Inserted)
	assert.True(t, net.Exists('K', 1, 1))

	_, err = LoadFile(filepath.Join(dir, "missing.txt"), net)
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	net := network.New(network.WithMaxDim(3))
	require.NoError(t, net.Insert('A', 0, 0))
	require.NoError(t, net.Insert('B', 0, 0))
	require.NoError(t, net.Insert('B', 2, 1))

	got := Render(net)
	want := [][]byte{
		[]byte("B.."),
		[]byte("..."),
		[]byte(".B."),
	}
	assert.Equal(t, want, got, "later frequency wins a shared cell")

	subset := RenderFrequencies(net, 'B', 'A')
	assert.Equal(t, byte('A'), subset[0][0])

	onlyA := RenderFrequencies(net, 'A', 'Q')
	assert.Equal(t, []byte("..."), onlyA[2])
}

func TestWriteTo_RoundTrip(t *testing.T) {
	input := "A..B\n....\n.C..\n...A\n"
	net := network.New(network.WithMaxDim(4))
	_, err := Load(strings.NewReader(input), net)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteTo(&buf, net))
	assert.Equal(t, input, buf.String())
}

func TestOverlay(t *testing.T) {
	net := network.New(network.WithMaxDim(3))
	require.NoError(t, net.Insert('A', 1, 1))

	m := Render(net)
	Overlay(m, []network.Point{network.Pt(0, 0), network.Pt(1, 1), network.Pt(5, 5)}, '#')

	var buf bytes.Buffer
	require.NoError(t, WriteMatrix(&buf, m))
	assert.Equal(t, "#..\n.A.\n...\n", buf.String())
}
