package grid

import (
	"bufio"
	"io"

	"github.com/dd0wney/cluso-antennas/pkg/network"
)

// Empty marks a cell without an antenna.
const Empty = '.'

// Render draws every graph of net onto a MaxDim x MaxDim matrix indexed
// [x][y]. Graphs are drawn in ascending frequency order.
func Render(net *network.Network) [][]byte {
	return RenderFrequencies(net, net.Frequencies()...)
}

// RenderFrequencies draws only the listed frequencies, in the order given.
// When two antennas share a cell the later frequency wins. Frequencies
// without a graph are skipped.
func RenderFrequencies(net *network.Network, freqs ...network.Frequency) [][]byte {
	dim := net.MaxDim()
	matrix := make([][]byte, dim)
	for i := range matrix {
		matrix[i] = make([]byte, dim)
		for j := range matrix[i] {
			matrix[i][j] = Empty
		}
	}

	for _, f := range freqs {
		g, ok := net.Graph(f)
		if !ok {
			continue
		}
		for _, a := range g.Antennas() {
			if a.Point().In(dim) {
				matrix[a.X][a.Y] = byte(a.Frequency)
			}
		}
	}
	return matrix
}

// Overlay marks points on a rendered matrix with mark, leaving antennas in place.
func Overlay(matrix [][]byte, points []network.Point, mark byte) {
	for _, p := range points {
		if p.X < 0 || p.X >= len(matrix) || p.Y < 0 || p.Y >= len(matrix[p.X]) {
			continue
		}
		if matrix[p.X][p.Y] == Empty {
			matrix[p.X][p.Y] = mark
		}
	}
}

// WriteMatrix writes one row per line.
func WriteMatrix(w io.Writer, matrix [][]byte) error {
	bw := bufio.NewWriter(w)
	for _, row := range matrix {
		if _, err := bw.Write(row); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteTo renders net and writes it to w.
func WriteTo(w io.Writer, net *network.Network) error {
	return WriteMatrix(w, Render(net))
}
