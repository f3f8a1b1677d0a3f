package dump

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/golang/snappy"

	"github.com/dd0wney/cluso-antennas/pkg/logging"
	"github.com/dd0wney/cluso-antennas/pkg/network"
)

// countingWriter tracks bytes handed to the underlying writer.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// WriteGraph writes one graph and returns the number of bytes written to w.
func WriteGraph(w io.Writer, g *network.Graph, opts ...Option) (int64, error) {
	return write(w, []*network.Graph{g}, buildOptions(opts))
}

// WriteNetwork writes every graph of net in ascending frequency order.
func WriteNetwork(w io.Writer, net *network.Network, opts ...Option) (int64, error) {
	o := buildOptions(opts)
	n, err := write(w, net.Graphs(), o)
	if err != nil {
		return n, err
	}
	net.Logger().With(logging.Component("dump")).Info("dump written",
		logging.Int("graphs", net.Len()),
		logging.Int64("bytes", n),
		logging.Bool("compressed", o.compress),
	)
	return n, nil
}

func write(w io.Writer, graphs []*network.Graph, o options) (int64, error) {
	cw := &countingWriter{w: w}
	defer func() { o.record("write", cw.n) }()

	var out io.Writer = cw
	var sw *snappy.Writer
	if o.compress {
		sw = snappy.NewBufferedWriter(cw)
		out = sw
	}
	bw := bufio.NewWriter(out)

	for _, g := range graphs {
		if g.MaxDim() > MaxGridDim {
			return cw.n, fmt.Errorf("%w: %d", ErrUnsupportedGrid, g.MaxDim())
		}
		if err := writeGraph(bw, g); err != nil {
			return cw.n, fmt.Errorf("failed to write graph %s: %w", g.Frequency(), err)
		}
	}

	if err := bw.Flush(); err != nil {
		return cw.n, fmt.Errorf("failed to flush dump: %w", err)
	}
	if sw != nil {
		if err := sw.Close(); err != nil {
			return cw.n, fmt.Errorf("failed to close snappy stream: %w", err)
		}
	}
	return cw.n, nil
}

func writeGraph(w io.Writer, g *network.Graph) error {
	return g.Each(func(a network.Antenna, nbrs []network.Antenna) error {
		rec := vertexRecord{Frequency: byte(a.Frequency), X: int32(a.X), Y: int32(a.Y)}
		if err := binary.Write(w, binary.LittleEndian, &rec); err != nil {
			return err
		}
		for _, n := range nbrs {
			e := edgeRecord{OriginX: int32(a.X), OriginY: int32(a.Y), DestX: int32(n.X), DestY: int32(n.Y)}
			if err := binary.Write(w, binary.LittleEndian, &e); err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteFile writes net to path, replacing any existing file.
func WriteFile(path string, net *network.Network, opts ...Option) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create dump: %w", err)
	}

	n, err := WriteNetwork(f, net, opts...)
	if err != nil {
		_ = f.Close()
		return n, err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return n, fmt.Errorf("failed to sync dump: %w", err)
	}
	return n, f.Close()
}
