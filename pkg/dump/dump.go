// Package dump reads and writes the flat binary network format.
//
// A dump has no header. Each antenna is a 12-byte vertex record
//
//	[Frequency:1][pad:3][X:4][Y:4]
//
// followed by one 16-byte edge record per outgoing edge
//
//	[OriginX:4][OriginY:4][DestX:4][DestY:4]
//
// All integers are little-endian int32. A reader tells the records apart by
// their first byte: a letter A-Z opens a vertex record, anything below the
// grid size opens an edge record. Streams may be wrapped in snappy framing,
// which the reader detects by the stream identifier.
package dump

import (
	"errors"

	"github.com/dd0wney/cluso-antennas/pkg/network"
)

const (
	vertexRecordSize = 12
	edgeRecordSize   = 16

	// MaxGridDim is the largest grid a dump can describe unambiguously:
	// edge records must start with a byte below 'A'.
	MaxGridDim = 'A'

	// snappyMagic is the snappy framing stream identifier chunk.
	snappyMagic = "\xff\x06\x00\x00sNaPpY"
)

var (
	// ErrCorruptDump reports a stream that is not a valid dump.
	ErrCorruptDump = errors.New("corrupt dump")
	// ErrUnsupportedGrid reports a grid too large for the record format.
	ErrUnsupportedGrid = errors.New("grid too large for dump format")
)

// vertexRecord matches the C layout of {char; int; int} with natural alignment.
type vertexRecord struct {
	Frequency uint8
	_         [3]byte
	X         int32
	Y         int32
}

type edgeRecord struct {
	OriginX int32
	OriginY int32
	DestX   int32
	DestY   int32
}

func (e edgeRecord) origin() network.Point {
	return network.Pt(int(e.OriginX), int(e.OriginY))
}

func (e edgeRecord) dest() network.Point {
	return network.Pt(int(e.DestX), int(e.DestY))
}

// ByteRecorder receives dump traffic totals. *metrics.Registry implements it.
type ByteRecorder interface {
	RecordDumpBytes(direction string, n int64)
}

type options struct {
	compress    bool
	recorder    ByteRecorder
	networkOpts []network.Option
}

// Option configures dump reads and writes.
type Option func(*options)

// WithCompression wraps written streams in snappy framing.
func WithCompression(enabled bool) Option {
	return func(o *options) { o.compress = enabled }
}

// WithRecorder reports bytes read and written to r.
func WithRecorder(r ByteRecorder) Option {
	return func(o *options) { o.recorder = r }
}

// WithNetworkOptions configures the network ReadNetwork creates.
func WithNetworkOptions(opts ...network.Option) Option {
	return func(o *options) { o.networkOpts = append(o.networkOpts, opts...) }
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) record(direction string, n int64) {
	if o.recorder != nil && n > 0 {
		o.recorder.RecordDumpBytes(direction, n)
	}
}
