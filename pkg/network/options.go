package network

import (
	"time"

	"github.com/dd0wney/cluso-antennas/pkg/logging"
)

// Recorder receives operation metrics. *metrics.Registry implements it.
type Recorder interface {
	RecordOperation(operation, status string, duration time.Duration)
	RecordTraversal(kind string, visited int)
	SetGraphSize(frequency string, antennas, links int)
	RemoveGraph(frequency string)
}

type nopRecorder struct{}

func (nopRecorder) RecordOperation(string, string, time.Duration) {}
func (nopRecorder) RecordTraversal(string, int)                   {}
func (nopRecorder) SetGraphSize(string, int, int)                 {}
func (nopRecorder) RemoveGraph(string)                            {}

// settings are shared by a Network and every Graph it owns.
type settings struct {
	maxDim      int
	capacity    int
	capacitySet bool
	pathBudget  int
	logger      logging.Logger
	recorder    Recorder
}

func defaultSettings() *settings {
	return &settings{
		maxDim:     DefaultMaxDim,
		capacity:   DefaultMaxDim * DefaultMaxDim,
		pathBudget: DefaultPathBudget,
		logger:     logging.NewNopLogger(),
		recorder:   nopRecorder{},
	}
}

// Option configures a Network or a standalone Graph.
type Option func(*settings)

// WithMaxDim sets the grid side length. Non-positive values are ignored.
func WithMaxDim(dim int) Option {
	return func(s *settings) {
		if dim > 0 {
			s.maxDim = dim
		}
	}
}

// WithCapacity bounds the number of antennas per graph. Non-positive values are ignored.
func WithCapacity(capacity int) Option {
	return func(s *settings) {
		if capacity > 0 {
			s.capacity = capacity
			s.capacitySet = true
		}
	}
}

// WithPathBudget bounds the search steps a single CountPaths may take before
// it gives up with ErrPathBudget. Non-positive values are ignored.
func WithPathBudget(steps int) Option {
	return func(s *settings) {
		if steps > 0 {
			s.pathBudget = steps
		}
	}
}

// WithLogger attaches a structured logger for mutation and traversal events.
func WithLogger(l logging.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRecorder attaches a metrics recorder.
func WithRecorder(r Recorder) Option {
	return func(s *settings) {
		if r != nil {
			s.recorder = r
		}
	}
}

func newSettings(opts []Option) *settings {
	s := defaultSettings()
	for _, opt := range opts {
		opt(s)
	}
	// The default capacity follows the grid size unless set explicitly.
	if !s.capacitySet {
		s.capacity = s.maxDim * s.maxDim
	}
	return s
}

// observe records the outcome and latency of an operation.
func (s *settings) observe(op string, start time.Time, err error) {
	s.recorder.RecordOperation(op, statusOf(err), time.Since(start))
}
