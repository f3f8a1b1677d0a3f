package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dd0wney/cluso-antennas/pkg/algorithms"
	"github.com/dd0wney/cluso-antennas/pkg/network"
)

func newBFSCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "bfs FREQ X,Y",
		Short:   "Breadth-first walk from an antenna",
		Example: "  antennas --map city.txt bfs A 2,5",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, start, err := a.graphAndPoint(args[0], args[1])
			if err != nil {
				return err
			}
			t, err := g.BFS(start)
			if err != nil {
				return err
			}
			printTraversal(cmd.OutOrStdout(), t)
			return nil
		},
	}
}

func newDFSCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "dfs FREQ X,Y",
		Short:   "Depth-first walk from an antenna",
		Example: "  antennas --map city.txt dfs A 2,5",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, start, err := a.graphAndPoint(args[0], args[1])
			if err != nil {
				return err
			}
			t, err := g.DFS(start)
			if err != nil {
				return err
			}
			printTraversal(cmd.OutOrStdout(), t)
			return nil
		},
	}
}

func newPathsCmd(a *app) *cobra.Command {
	var shortest bool
	cmd := &cobra.Command{
		Use:   "paths FREQ X1,Y1 X2,Y2",
		Short: "Count simple paths between two antennas",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, from, err := a.graphAndPoint(args[0], args[1])
			if err != nil {
				return err
			}
			to, err := network.ParsePoint(args[2])
			if err != nil {
				return err
			}
			n, err := g.CountPaths(from, to)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d paths from %s to %s\n", n, from, to)
			if !shortest {
				return nil
			}
			path, err := algorithms.ShortestPath(g, from, to)
			if err != nil {
				return err
			}
			if path == nil {
				fmt.Fprintln(out, "shortest: none")
				return nil
			}
			fmt.Fprintf(out, "shortest (%d hops): %s\n", len(path)-1, joinPoints(path, " -> "))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&shortest, "shortest", "s", false, "also print one shortest path")
	return cmd
}

func newHopsCmd(a *app) *cobra.Command {
	opts := algorithms.DefaultKHopOptions()
	cmd := &cobra.Command{
		Use:   "hops FREQ X,Y",
		Short: "List antennas within k links of an antenna",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, source, err := a.graphAndPoint(args[0], args[1])
			if err != nil {
				return err
			}
			res, err := algorithms.KHopNeighbours(g, source, opts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d antennas within %d hops of %s\n", res.TotalReachable, opts.MaxHops, source)
			for hop := 1; hop <= opts.MaxHops; hop++ {
				if pts := res.ByHop[hop]; len(pts) > 0 {
					fmt.Fprintf(out, "  %d: %s\n", hop, joinPoints(pts, " "))
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&opts.MaxHops, "max", "k", opts.MaxHops, "maximum hop distance")
	cmd.Flags().IntVar(&opts.MaxResults, "limit", 0, "stop after this many antennas (0 = all)")
	return cmd
}

func (a *app) graphAndPoint(freqArg, pointArg string) (*network.Graph, network.Point, error) {
	g, err := a.graph(freqArg)
	if err != nil {
		return nil, network.Point{}, err
	}
	p, err := network.ParsePoint(pointArg)
	if err != nil {
		return nil, network.Point{}, err
	}
	return g, p, nil
}

func printTraversal(w io.Writer, t *network.Traversal) {
	fmt.Fprintf(w, "%s from %s: %d antennas\n", strings.ToUpper(t.Kind), t.Start, t.Count())
	for _, v := range t.Visits {
		fmt.Fprintf(w, "  %3d. %s%s\n", v.Order+1, strings.Repeat("  ", v.Depth), v.Antenna)
	}
}

func joinPoints(points []network.Point, sep string) string {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = p.String()
	}
	return strings.Join(parts, sep)
}
