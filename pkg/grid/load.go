// Package grid converts between text maps and antenna networks. A map is a
// rectangle of characters where a letter A-Z places an antenna of that
// frequency at (row, column) and any other character is empty ground.
package grid

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dd0wney/cluso-antennas/pkg/logging"
	"github.com/dd0wney/cluso-antennas/pkg/network"
)

// LoadResult reports what a load did.
type LoadResult struct {
	Inserted int `json:"inserted"`
	Skipped  int `json:"skipped"`
}

// LoadRecorder receives load totals. *metrics.Registry implements it.
type LoadRecorder interface {
	RecordLoad(source string, inserted, skipped int)
}

type loadConfig struct {
	source   string
	recorder LoadRecorder
}

// LoadOption configures Load.
type LoadOption func(*loadConfig)

// WithSource names the input in logs and metrics.
func WithSource(name string) LoadOption {
	return func(c *loadConfig) { c.source = name }
}

// WithLoadRecorder reports load totals to r.
func WithLoadRecorder(r LoadRecorder) LoadOption {
	return func(c *loadConfig) { c.recorder = r }
}

// Load reads a text map into net. Only the top-left MaxDim x MaxDim window
// is read. Antennas already present are counted as skipped; any other
// insert failure stops the load.
func Load(r io.Reader, net *network.Network, opts ...LoadOption) (LoadResult, error) {
	cfg := loadConfig{source: "reader"}
	for _, opt := range opts {
		opt(&cfg)
	}

	timer := logging.StartTimer(net.Logger().With(logging.Component("grid")), "map load", logging.Path(cfg.source))
	var res LoadResult
	dim := net.MaxDim()

	scanner := bufio.NewScanner(r)
	for row := 0; row < dim && scanner.Scan(); row++ {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		for col, ch := range []byte(line) {
			if col >= dim {
				break
			}
			freq := network.Frequency(ch)
			if !freq.Valid() {
				continue
			}
			err := net.Insert(freq, row, col)
			switch {
			case err == nil:
				res.Inserted++
			case network.IsDuplicate(err):
				res.Skipped++
			default:
				timer.EndError(err)
				return res, fmt.Errorf("%s line %d: %w", cfg.source, row+1, err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		timer.EndError(err)
		return res, fmt.Errorf("reading %s: %w", cfg.source, err)
	}

	if cfg.recorder != nil {
		cfg.recorder.RecordLoad(cfg.source, res.Inserted, res.Skipped)
	}
	timer.End(logging.Int("inserted", res.Inserted), logging.Int("skipped", res.Skipped))
	return res, nil
}

// LoadFile opens path and loads it into net.
func LoadFile(path string, net *network.Network, opts ...LoadOption) (LoadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return LoadResult{}, fmt.Errorf("failed to open map: %w", err)
	}
	defer f.Close()

	return Load(f, net, append([]LoadOption{WithSource(path)}, opts...)...)
}
