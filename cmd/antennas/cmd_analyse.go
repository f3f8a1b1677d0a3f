package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/dd0wney/cluso-antennas/pkg/algorithms"
	"github.com/dd0wney/cluso-antennas/pkg/network"
	"github.com/dd0wney/cluso-antennas/pkg/spatial"
)

func newComponentsCmd(a *app) *cobra.Command {
	var triangles bool
	cmd := &cobra.Command{
		Use:   "components [FREQ]",
		Short: "List connected components per frequency",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			graphs := a.net.Graphs()
			if len(args) == 1 {
				g, err := a.graph(args[0])
				if err != nil {
					return err
				}
				graphs = []*network.Graph{g}
			}

			out := cmd.OutOrStdout()
			for _, g := range graphs {
				res, err := algorithms.ConnectedComponents(g)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s: %d components\n", g.Frequency(), len(res.Components))
				for _, c := range res.Components {
					fmt.Fprintf(out, "  #%d  %d antennas  %d links  density %.2f  %s\n",
						c.ID, c.Size, c.Links, c.Density, joinPoints(c.Antennas, " "))
				}
				if !triangles {
					continue
				}
				tri, err := algorithms.CountTriangles(g)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "  triangles: %d\n", tri.GlobalCount)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&triangles, "triangles", "t", false, "also count triangles of linked antennas")
	return cmd
}

func newInterferenceCmd(a *app) *cobra.Command {
	var byFrequency bool
	cmd := &cobra.Command{
		Use:   "interference",
		Short: "List interference points of same-frequency antenna pairs",
		Long: `For every pair of antennas a, b sharing a frequency, the points 2a-b and
2b-a that fall inside the grid interfere. Points are listed once, sorted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !byFrequency {
				pts := algorithms.Interference(a.net)
				fmt.Fprintf(out, "%d interference points\n", len(pts))
				for _, p := range pts {
					fmt.Fprintf(out, "  %s\n", p)
				}
				return nil
			}
			byFreq := algorithms.InterferenceByFrequency(a.net)
			freqs := make([]network.Frequency, 0, len(byFreq))
			for f := range byFreq {
				freqs = append(freqs, f)
			}
			sort.Slice(freqs, func(i, j int) bool { return freqs[i] < freqs[j] })
			for _, f := range freqs {
				fmt.Fprintf(out, "%s: %s\n", f, joinPoints(byFreq[f], " "))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&byFrequency, "by-frequency", false, "group points by frequency")
	return cmd
}

func newNearCmd(a *app) *cobra.Command {
	var (
		k      int
		radius float64
		freqs  string
	)
	cmd := &cobra.Command{
		Use:   "near X,Y",
		Short: "Find the antennas closest to a grid cell",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := network.ParsePoint(args[0])
			if err != nil {
				return err
			}
			selected, err := parseFrequencies(freqs)
			if err != nil {
				return err
			}

			ix := spatial.NewIndex(a.net)
			var found []spatial.Neighbor
			if cmd.Flags().Changed("radius") {
				found = ix.Within(p, radius, selected...)
			} else {
				found = ix.Nearest(p, k, selected...)
			}

			out := cmd.OutOrStdout()
			for _, n := range found {
				fmt.Fprintf(out, "  %s  %.2f\n", n.Antenna, n.Distance)
			}
			if len(found) == 0 {
				fmt.Fprintln(out, "no antennas found")
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&k, "count", "k", 3, "number of antennas to return")
	cmd.Flags().Float64VarP(&radius, "radius", "r", 0, "return every antenna within this distance instead")
	cmd.Flags().StringVarP(&freqs, "freq", "f", "", "restrict to these frequencies, e.g. AB")
	return cmd
}
