package dump

import (
	"bufio"
	"bytes"
	"container/heap"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/golang/snappy"
	"golang.org/x/exp/mmap"

	"github.com/dd0wney/cluso-antennas/pkg/logging"
	"github.com/dd0wney/cluso-antennas/pkg/network"
)

// ReadResult reports what a read restored.
type ReadResult struct {
	Antennas int
	Links    int
}

// countingReader tracks bytes pulled from the underlying reader.
type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

type halfEdge struct {
	freq     network.Frequency
	from, to network.Point
}

type endpoint struct {
	freq network.Frequency
	at   network.Point
}

// link is one undirected connection. Links are numbered in the order their
// first half was read.
type link struct {
	freq     network.Frequency
	from, to network.Point
}

// ReadNetwork decodes a dump into a new network.
func ReadNetwork(r io.Reader, opts ...Option) (*network.Network, error) {
	o := buildOptions(opts)
	net := network.New(o.networkOpts...)
	if _, err := ReadInto(r, net, opts...); err != nil {
		net.Destroy()
		return nil, err
	}
	return net, nil
}

// ReadInto decodes a dump into net. Every edge record must follow the vertex
// record of its origin and every link must appear once from each end. Links
// are connected after the last record so that each antenna's adjacency comes
// back in the order its records list it.
func ReadInto(r io.Reader, net *network.Network, opts ...Option) (ReadResult, error) {
	o := buildOptions(opts)
	var res ReadResult
	if net.MaxDim() > MaxGridDim {
		return res, fmt.Errorf("%w: %d", ErrUnsupportedGrid, net.MaxDim())
	}

	cr := &countingReader{r: r}
	defer func() { o.record("read", cr.n) }()

	br := bufio.NewReader(cr)
	if magic, err := br.Peek(len(snappyMagic)); err == nil && bytes.Equal(magic, []byte(snappyMagic)) {
		br = bufio.NewReader(snappy.NewReader(br))
	}

	var (
		current   *network.Antenna
		links     []link
		pending   = make(map[halfEdge]int)
		seen      = make(map[halfEdge]bool)
		runs      = make(map[endpoint][]int)
		offset    int64
		vertexBuf [vertexRecordSize]byte
		edgeBuf   [edgeRecordSize]byte
	)
	corrupt := func(format string, args ...any) error {
		return fmt.Errorf("%w at offset %d: %s", ErrCorruptDump, offset, fmt.Sprintf(format, args...))
	}

	for {
		head, err := br.Peek(1)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return res, fmt.Errorf("failed to read dump: %w", err)
		}

		switch b := head[0]; {
		case network.Frequency(b).Valid():
			if _, err := io.ReadFull(br, vertexBuf[:]); err != nil {
				return res, corrupt("truncated vertex record: %v", err)
			}
			var rec vertexRecord
			_ = binary.Read(bytes.NewReader(vertexBuf[:]), binary.LittleEndian, &rec)
			a := network.NewAntenna(network.Frequency(rec.Frequency), int(rec.X), int(rec.Y))
			if err := net.Insert(a.Frequency, a.X, a.Y); err != nil {
				return res, corrupt("vertex %s: %v", a, err)
			}
			current = &a
			res.Antennas++
			offset += vertexRecordSize

		case int(b) < net.MaxDim():
			if _, err := io.ReadFull(br, edgeBuf[:]); err != nil {
				return res, corrupt("truncated edge record: %v", err)
			}
			var rec edgeRecord
			_ = binary.Read(bytes.NewReader(edgeBuf[:]), binary.LittleEndian, &rec)
			if current == nil || rec.origin() != current.Point() {
				return res, corrupt("edge %s-%s outside its origin's vertex record", rec.origin(), rec.dest())
			}
			half := halfEdge{freq: current.Frequency, from: rec.origin(), to: rec.dest()}
			if seen[half] {
				return res, corrupt("edge %s-%s repeated", half.from, half.to)
			}
			seen[half] = true
			mirror := halfEdge{freq: half.freq, from: half.to, to: half.from}
			id, ok := pending[mirror]
			if ok {
				delete(pending, mirror)
			} else {
				id = len(links)
				links = append(links, link{freq: half.freq, from: half.from, to: half.to})
				pending[half] = id
			}
			origin := endpoint{freq: half.freq, at: half.from}
			runs[origin] = append(runs[origin], id)
			offset += edgeRecordSize

		default:
			return res, corrupt("unexpected record byte 0x%02x", b)
		}
	}

	if len(pending) > 0 {
		return res, fmt.Errorf("%w: %d edges without a mirrored half", ErrCorruptDump, len(pending))
	}
	for _, id := range replayOrder(len(links), runs) {
		l := links[id]
		if err := net.Connect(l.freq, l.from, l.to); err != nil {
			return res, fmt.Errorf("%w: link %s-%s: %v", ErrCorruptDump, l.from, l.to, err)
		}
		res.Links++
	}

	net.Logger().With(logging.Component("dump")).Info("dump read",
		logging.Int("antennas", res.Antennas),
		logging.Int("links", res.Links),
		logging.Int64("bytes", cr.n),
	)
	return res, nil
}

// replayOrder orders link ids so that every antenna receives its links in the
// order its edge records listed them. Each run says link i came before link
// i+1 at that antenna; ties go to the link read first. A dump written from a
// live graph always admits such an order. Runs that contradict each other fall
// back to read order for the links caught in the cycle.
func replayOrder(n int, runs map[endpoint][]int) []int {
	next := make([][]int, n)
	indegree := make([]int, n)
	for _, run := range runs {
		for i := 1; i < len(run); i++ {
			next[run[i-1]] = append(next[run[i-1]], run[i])
			indegree[run[i]]++
		}
	}

	ready := &idHeap{}
	for id := 0; id < n; id++ {
		if indegree[id] == 0 {
			heap.Push(ready, id)
		}
	}

	order := make([]int, 0, n)
	done := make([]bool, n)
	scan := 0
	for len(order) < n {
		if ready.Len() == 0 {
			for done[scan] {
				scan++
			}
			indegree[scan] = 0
			heap.Push(ready, scan)
		}
		id := heap.Pop(ready).(int)
		if done[id] {
			continue
		}
		done[id] = true
		order = append(order, id)
		for _, succ := range next[id] {
			indegree[succ]--
			if indegree[succ] == 0 && !done[succ] {
				heap.Push(ready, succ)
			}
		}
	}
	return order
}

// idHeap is a min-heap of link ids.
type idHeap []int

func (h idHeap) Len() int           { return len(h) }
func (h idHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h idHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *idHeap) Push(x any)        { *h = append(*h, x.(int)) }
func (h *idHeap) Pop() any {
	old := *h
	x := old[len(old)-1]
	*h = old[:len(old)-1]
	return x
}

// ReadFile memory-maps path and decodes it into a new network.
func ReadFile(path string, opts ...Option) (*network.Network, error) {
	m, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dump: %w", err)
	}
	defer m.Close()

	net, err := ReadNetwork(io.NewSectionReader(m, 0, int64(m.Len())), opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return net, nil
}
