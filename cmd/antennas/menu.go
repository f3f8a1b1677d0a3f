package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dd0wney/cluso-antennas/pkg/algorithms"
	"github.com/dd0wney/cluso-antennas/pkg/dump"
	"github.com/dd0wney/cluso-antennas/pkg/grid"
	"github.com/dd0wney/cluso-antennas/pkg/network"
)

func newMenuCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Interactive prompt for editing and walking the network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := &menu{
				app:     a,
				out:     cmd.OutOrStdout(),
				scanner: bufio.NewScanner(cmd.InOrStdin()),
			}
			m.printBanner()
			m.run()
			return nil
		},
	}
}

type menu struct {
	app     *app
	out     io.Writer
	scanner *bufio.Scanner
}

func (m *menu) printBanner() {
	fmt.Fprintln(m.out, `
╔═══════════════════════════════════════════╗
║         Antenna Network Interactive       ║
╚═══════════════════════════════════════════╝`)
	s := m.app.net.Stats()
	fmt.Fprintf(m.out, "✅ %d antennas, %d links on a %dx%d grid\n",
		s.Antennas, s.Links, m.app.net.MaxDim(), m.app.net.MaxDim())
	fmt.Fprintln(m.out, "Type 'help' for available commands, 'exit' to quit")
	fmt.Fprintln(m.out)
}

func (m *menu) run() {
	for {
		fmt.Fprint(m.out, "antennas> ")

		if !m.scanner.Scan() {
			fmt.Fprintln(m.out)
			break
		}

		input := strings.TrimSpace(m.scanner.Text())
		if input == "" {
			continue
		}

		if input == "exit" || input == "quit" || input == "0" {
			fmt.Fprintln(m.out, "👋 Goodbye!")
			break
		}

		if err := m.execute(strings.Fields(input)); err != nil {
			fmt.Fprintf(m.out, "❌ %v\n", err)
		}
		fmt.Fprintln(m.out)
	}
}

func (m *menu) execute(parts []string) error {
	command := strings.ToLower(parts[0])
	args := parts[1:]
	net := m.app.net

	switch command {
	case "help", "h":
		m.showHelp()
		return nil

	case "map", "1":
		freqs, err := parseFrequencies(strings.Join(args, ""))
		if err != nil {
			return err
		}
		if len(freqs) == 0 {
			freqs = net.Frequencies()
		}
		return grid.WriteMatrix(m.out, grid.RenderFrequencies(net, freqs...))

	case "insert", "2":
		if len(args) != 2 {
			return usage("insert <freq> <x,y>")
		}
		freq, p, err := parseFreqPoint(args[0], args[1])
		if err != nil {
			return err
		}
		if err := net.Insert(freq, p.X, p.Y); err != nil {
			return err
		}
		fmt.Fprintf(m.out, "✅ inserted %s\n", network.NewAntenna(freq, p.X, p.Y))

	case "connect", "3":
		if len(args) != 3 {
			return usage("connect <freq> <x1,y1> <x2,y2>")
		}
		freq, from, err := parseFreqPoint(args[0], args[1])
		if err != nil {
			return err
		}
		to, err := network.ParsePoint(args[2])
		if err != nil {
			return err
		}
		if err := net.Connect(freq, from, to); err != nil {
			return err
		}
		fmt.Fprintf(m.out, "✅ linked %s %s <-> %s\n", freq, from, to)

	case "bfs", "4", "dfs", "5":
		if len(args) != 2 {
			return usage(command + " <freq> <x,y>")
		}
		g, start, err := m.app.graphAndPoint(args[0], args[1])
		if err != nil {
			return err
		}
		walk := g.BFS
		if command == "dfs" || command == "5" {
			walk = g.DFS
		}
		t, err := walk(start)
		if err != nil {
			return err
		}
		printTraversal(m.out, t)

	case "paths", "6":
		if len(args) != 3 {
			return usage("paths <freq> <x1,y1> <x2,y2>")
		}
		g, from, err := m.app.graphAndPoint(args[0], args[1])
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
		fmt.Fprintf(m.out, "%d paths from %s to %s\n", n, from, to)

	case "save", "7":
		path := m.app.cfg.Dump.Path
		if len(args) > 0 {
			path = args[0]
		}
		n, err := dump.WriteFile(path, net, m.app.dumpOptions()...)
		if err != nil {
			return err
		}
		fmt.Fprintf(m.out, "✅ wrote %d bytes to %s\n", n, path)

	case "interference":
		pts := algorithms.Interference(net)
		fmt.Fprintf(m.out, "%d interference points: %s\n", len(pts), joinPoints(pts, " "))

	case "stats":
		printStats(m.out, net.Stats())

	case "validate":
		if err := net.Validate(); err != nil {
			return err
		}
		fmt.Fprintf(m.out, "✅ %d graphs valid\n", net.Len())

	case "clear":
		fmt.Fprint(m.out, "\033[H\033[2J")

	default:
		return fmt.Errorf("unknown command: %s (type 'help' for available commands)", command)
	}
	return nil
}

func (m *menu) showHelp() {
	fmt.Fprint(m.out, `
📖 Available Commands:

🗺️  Map:
  1, map [freqs]                 Show the grid, optionally only some frequencies
  2, insert <f> <x,y>            Place an antenna
  3, connect <f> <x1,y1> <x2,y2> Link two antennas of one frequency

🌐 Graph Operations:
  4, bfs <f> <x,y>               Breadth-first walk
  5, dfs <f> <x,y>               Depth-first walk
  6, paths <f> <a> <b>           Count simple paths between two antennas
  interference                   List interference points
  validate                       Check every graph

💾 Storage:
  7, save [path]                 Write a binary dump

  stats                          Antennas and links per frequency
  clear                          Clear the screen
  0, exit                        Leave
`)
}

func usage(s string) error {
	return fmt.Errorf("usage: %s", s)
}

func parseFreqPoint(freqArg, pointArg string) (network.Frequency, network.Point, error) {
	freq, err := network.ParseFrequency(freqArg)
	if err != nil {
		return 0, network.Point{}, err
	}
	p, err := network.ParsePoint(pointArg)
	if err != nil {
		return 0, network.Point{}, err
	}
	return freq, p, nil
}
