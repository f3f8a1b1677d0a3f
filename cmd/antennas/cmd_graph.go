package main

import (
	"fmt"
	"io"

	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/dd0wney/cluso-antennas/pkg/algorithms"
	"github.com/dd0wney/cluso-antennas/pkg/dump"
	"github.com/dd0wney/cluso-antennas/pkg/grid"
	"github.com/dd0wney/cluso-antennas/pkg/network"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		freqs        string
		interference bool
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the grid with every antenna",
		Long: `Prints the MaxDim x MaxDim grid, one row per line. Empty cells are '.',
antennas show their frequency letter. With --interference the interference
points of the drawn frequencies are marked '#'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			selected, err := parseFrequencies(freqs)
			if err != nil {
				return err
			}
			if len(selected) == 0 {
				selected = a.net.Frequencies()
			}
			matrix := grid.RenderFrequencies(a.net, selected...)
			if interference {
				byFreq := algorithms.InterferenceByFrequency(a.net)
				for _, f := range selected {
					grid.Overlay(matrix, byFreq[f], '#')
				}
			}
			return grid.WriteMatrix(cmd.OutOrStdout(), matrix)
		},
	}
	cmd.Flags().StringVarP(&freqs, "freq", "f", "", "only draw these frequencies, e.g. AB")
	cmd.Flags().BoolVarP(&interference, "interference", "i", false, "mark interference points with '#'")
	return cmd
}

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check every graph's structure and link symmetry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.net.Validate(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ %d graphs valid\n", a.net.Len())
			return nil
		},
	}
}

func newStatsCmd(a *app) *cobra.Command {
	var showMetrics bool
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarise antennas and links per frequency",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			printStats(out, a.net.Stats())
			if !showMetrics {
				return nil
			}
			if a.registry == nil {
				return fmt.Errorf("metrics are disabled in the configuration")
			}
			return writeMetrics(out, a)
		},
	}
	cmd.Flags().BoolVar(&showMetrics, "metrics", false, "also print Prometheus metrics collected while loading")
	return cmd
}

func printStats(w io.Writer, s network.Stats) {
	fmt.Fprintln(w, "📊 Network Statistics")
	fmt.Fprintf(w, "  Graphs:   %d\n", len(s.Graphs))
	fmt.Fprintf(w, "  Antennas: %d\n", s.Antennas)
	fmt.Fprintf(w, "  Links:    %d\n", s.Links)
	for _, g := range s.Graphs {
		fmt.Fprintf(w, "  %s  %4d antennas  %4d links\n", g.Frequency, g.Antennas, g.Links)
	}
}

func writeMetrics(w io.Writer, a *app) error {
	families, err := a.registry.GetPrometheusRegistry().Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	fmt.Fprintln(w)
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}

func newSaveCmd(a *app) *cobra.Command {
	var compress bool
	cmd := &cobra.Command{
		Use:   "save [path]",
		Short: "Write the network as a binary dump",
		Long: `Writes every graph in frequency order as vertex and edge records. The
path defaults to dump.path from the configuration.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.cfg.Dump.Path
			if len(args) == 1 {
				path = args[0]
			}
			opts := a.dumpOptions()
			if cmd.Flags().Changed("compress") {
				opts = append(opts, dump.WithCompression(compress))
			}
			n, err := dump.WriteFile(path, a.net, opts...)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ wrote %d bytes to %s\n", n, path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&compress, "compress", false, "snappy-compress the dump (overrides dump.compress)")
	return cmd
}
