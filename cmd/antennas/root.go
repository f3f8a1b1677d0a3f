package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dd0wney/cluso-antennas/pkg/algorithms"
	"github.com/dd0wney/cluso-antennas/pkg/config"
	"github.com/dd0wney/cluso-antennas/pkg/dump"
	"github.com/dd0wney/cluso-antennas/pkg/grid"
	"github.com/dd0wney/cluso-antennas/pkg/logging"
	"github.com/dd0wney/cluso-antennas/pkg/metrics"
	"github.com/dd0wney/cluso-antennas/pkg/network"
)

// app holds the flags shared by every command and the network they build.
type app struct {
	configPath string
	mapPaths   []string
	dumpPath   string
	links      []string
	mesh       bool
	logLevel   string

	cfg      *config.Config
	logger   logging.Logger
	registry *metrics.Registry
	net      *network.Network
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "antennas",
		Short: "Antenna network graphs on a bounded grid",
		Long: `antennas builds one graph per frequency letter from text maps, binary
dumps and explicit links, then walks, analyses and queries them.

Examples:
  antennas --map city.txt render
  antennas --map city.txt --link A:2,5:4,6 bfs A 2,5
  antennas --dump city.bin query '{ graphs { frequency count links } }'`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.net != nil {
				a.net.Destroy()
			}
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")
	flags.StringArrayVarP(&a.mapPaths, "map", "m", nil, "text map to load (repeatable)")
	flags.StringVarP(&a.dumpPath, "dump", "d", "", "binary dump to load before any map")
	flags.StringArrayVarP(&a.links, "link", "l", nil, "link to create, as f:x1,y1:x2,y2 (repeatable)")
	flags.BoolVar(&a.mesh, "mesh", false, "link every pair of same-frequency antennas")
	flags.StringVar(&a.logLevel, "log-level", "", "override logging.level (debug, info, warn, error)")

	cmd.AddCommand(
		newRenderCmd(a),
		newBFSCmd(a),
		newDFSCmd(a),
		newPathsCmd(a),
		newHopsCmd(a),
		newComponentsCmd(a),
		newInterferenceCmd(a),
		newNearCmd(a),
		newValidateCmd(a),
		newStatsCmd(a),
		newSaveCmd(a),
		newQueryCmd(a),
		newMenuCmd(a),
		newTUICmd(a),
	)
	return cmd
}

// setup resolves configuration and builds the network from the dump, maps,
// links and mesh flags, in that order.
func (a *app) setup(logOut io.Writer) error {
	cfg := config.Default()
	if a.configPath != "" {
		loaded, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	} else {
		cfg.ApplyEnv()
	}
	if a.logLevel != "" {
		cfg.Logging.Level = strings.ToLower(a.logLevel)
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg
	a.logger = cfg.NewLogger(logOut)

	opts := append(cfg.NetworkOptions(), network.WithLogger(a.logger))
	if cfg.Metrics.Enabled {
		a.registry = metrics.NewRegistry()
		opts = append(opts, network.WithRecorder(a.registry))
	}

	if a.dumpPath != "" {
		net, err := dump.ReadFile(a.dumpPath, a.dumpOptions(dump.WithNetworkOptions(opts...))...)
		if err != nil {
			return err
		}
		a.net = net
	} else {
		a.net = network.New(opts...)
	}

	for _, path := range a.mapPaths {
		var loadOpts []grid.LoadOption
		if a.registry != nil {
			loadOpts = append(loadOpts, grid.WithLoadRecorder(a.registry))
		}
		if _, err := grid.LoadFile(path, a.net, loadOpts...); err != nil {
			return err
		}
	}

	for _, raw := range a.links {
		freq, from, to, err := parseLink(raw)
		if err != nil {
			return err
		}
		if err := a.net.Connect(freq, from, to); err != nil {
			return fmt.Errorf("link %s: %w", raw, err)
		}
	}

	if a.mesh {
		n, err := algorithms.MeshNetwork(a.net)
		if err != nil {
			return err
		}
		a.logger.Info("mesh linked", logging.Count(n))
	}
	return nil
}

func (a *app) dumpOptions(extra ...dump.Option) []dump.Option {
	opts := []dump.Option{dump.WithCompression(a.cfg.Dump.Compress)}
	if a.registry != nil {
		opts = append(opts, dump.WithRecorder(a.registry))
	}
	return append(opts, extra...)
}

func (a *app) graph(freqArg string) (*network.Graph, error) {
	freq, err := network.ParseFrequency(freqArg)
	if err != nil {
		return nil, err
	}
	return a.net.MustGraph(freq)
}

// parseLink parses f:x1,y1:x2,y2 such as A:2,5:4,6.
func parseLink(s string) (network.Frequency, network.Point, network.Point, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, network.Point{}, network.Point{}, fmt.Errorf("link %q: expected f:x1,y1:x2,y2", s)
	}
	freq, err := network.ParseFrequency(parts[0])
	if err != nil {
		return 0, network.Point{}, network.Point{}, fmt.Errorf("link %q: %w", s, err)
	}
	from, err := network.ParsePoint(parts[1])
	if err != nil {
		return 0, network.Point{}, network.Point{}, fmt.Errorf("link %q: %w", s, err)
	}
	to, err := network.ParsePoint(parts[2])
	if err != nil {
		return 0, network.Point{}, network.Point{}, fmt.Errorf("link %q: %w", s, err)
	}
	return freq, from, to, nil
}

// parseFrequencies turns "AB" or "A,B" into a frequency list.
func parseFrequencies(s string) ([]network.Frequency, error) {
	var out []network.Frequency
	for _, r := range s {
		if r == ',' || r == ' ' {
			continue
		}
		f, ok := network.FrequencyFromRune(r)
		if !ok {
			return nil, fmt.Errorf("frequency %q: %w", string(r), network.ErrInvalidFrequency)
		}
		out = append(out, f)
	}
	return out, nil
}
