package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dd0wney/cluso-antennas/pkg/algorithms"
	gql "github.com/dd0wney/cluso-antennas/pkg/graphql"
	"github.com/dd0wney/cluso-antennas/pkg/grid"
	"github.com/dd0wney/cluso-antennas/pkg/network"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF00FF")).
			MarginLeft(2).
			MarginTop(1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FFFF")).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00FFFF")).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#FF00FF")).
			Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666")).
				Padding(0, 2)

	contentStyle = lipgloss.NewStyle().
			MarginLeft(2).
			MarginTop(1)

	mapBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("#FFFF00")).
			Padding(0, 1)

	emptyCellStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#444444"))
	visitedCellStyle = lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("#FF00FF"))
	noiseCellStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF00")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginTop(1).
			MarginLeft(2)
)

// frequencyColors cycles through distinct colours by letter.
var frequencyColors = []lipgloss.Color{"#00FFFF", "#00FF00", "#FFFF00", "#FF8800", "#8888FF", "#FF88FF"}

type view int

const (
	mapView view = iota
	graphsView
	walkView
	queryView
	viewCount
)

var viewNames = []string{"Map", "Graphs", "Walk", "Query"}

type keyMap struct {
	Tab          key.Binding
	ShiftTab     key.Binding
	Enter        key.Binding
	Interference key.Binding
	Quit         key.Binding
}

var keys = keyMap{
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next view"),
	),
	ShiftTab: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "prev view"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "run"),
	),
	Interference: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "interference"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Enter, k.Interference, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.ShiftTab, k.Enter},
		{k.Interference, k.Quit},
	}
}

type model struct {
	net          *network.Network
	currentView  view
	walkInput    textinput.Model
	queryInput   textinput.Model
	graphTable   table.Model
	help         help.Model
	keys         keyMap
	width        int
	height       int
	message      string
	messageErr   bool
	walk         *network.Traversal
	queryResult  string
	interference bool
}

func newTUICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Full-screen viewer for maps, graphs, walks and queries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := tea.NewProgram(initialModel(a.net),
				tea.WithAltScreen(),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("error running program: %w", err)
			}
			return nil
		},
	}
}

func initialModel(net *network.Network) model {
	wi := textinput.New()
	wi.Placeholder = "bfs A 2,5"
	wi.CharLimit = 40
	wi.Width = 40

	qi := textinput.New()
	qi.Placeholder = "{ graphs { frequency count links } }"
	qi.CharLimit = 400
	qi.Width = 60

	columns := []table.Column{
		{Title: "Freq", Width: 6},
		{Title: "Antennas", Width: 10},
		{Title: "Links", Width: 8},
		{Title: "Components", Width: 12},
		{Title: "Triangles", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#00FFFF")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color("#FF00FF")).
		Bold(false)
	t.SetStyles(s)
	t.SetRows(graphRows(net))

	return model{
		net:         net,
		currentView: mapView,
		walkInput:   wi,
		queryInput:  qi,
		graphTable:  t,
		help:        help.New(),
		keys:        keys,
	}
}

func graphRows(net *network.Network) []table.Row {
	rows := make([]table.Row, 0, net.Len())
	for _, g := range net.Graphs() {
		components, triangles := "-", "-"
		if res, err := algorithms.ConnectedComponents(g); err == nil {
			components = fmt.Sprintf("%d", len(res.Components))
		}
		if tri, err := algorithms.CountTriangles(g); err == nil {
			triangles = fmt.Sprintf("%d", tri.GlobalCount)
		}
		rows = append(rows, table.Row{
			g.Frequency().String(),
			fmt.Sprintf("%d", g.Count()),
			fmt.Sprintf("%d", g.Links()),
			components,
			triangles,
		})
	}
	return rows
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) inputFocused() bool {
	return m.walkInput.Focused() || m.queryInput.Focused()
}

func (m *model) focusCurrent() {
	m.walkInput.Blur()
	m.queryInput.Blur()
	switch m.currentView {
	case walkView:
		m.walkInput.Focus()
	case queryView:
		m.queryInput.Focus()
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case msg.String() == "ctrl+c":
			return m, tea.Quit

		case key.Matches(msg, m.keys.Quit) && !m.inputFocused():
			return m, tea.Quit

		case key.Matches(msg, m.keys.Tab):
			m.currentView = (m.currentView + 1) % viewCount
			m.focusCurrent()
			return m, nil

		case key.Matches(msg, m.keys.ShiftTab):
			m.currentView = (m.currentView + viewCount - 1) % viewCount
			m.focusCurrent()
			return m, nil

		case key.Matches(msg, m.keys.Interference) && !m.inputFocused():
			m.interference = !m.interference
			return m, nil

		case key.Matches(msg, m.keys.Enter):
			switch m.currentView {
			case walkView:
				m.runWalk()
			case queryView:
				m.runQuery()
			}
			return m, nil
		}
	}

	// Update focused component
	switch m.currentView {
	case walkView:
		m.walkInput, cmd = m.walkInput.Update(msg)
		cmds = append(cmds, cmd)
	case queryView:
		m.queryInput, cmd = m.queryInput.Update(msg)
		cmds = append(cmds, cmd)
	case graphsView:
		m.graphTable, cmd = m.graphTable.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *model) fail(format string, args ...any) {
	m.message = fmt.Sprintf(format, args...)
	m.messageErr = true
}

// runWalk parses "bfs|dfs F X,Y" and runs the traversal.
func (m *model) runWalk() {
	parts := strings.Fields(m.walkInput.Value())
	if len(parts) != 3 {
		m.fail("expected: bfs|dfs <freq> <x,y>")
		return
	}
	freq, start, err := parseFreqPoint(parts[1], parts[2])
	if err != nil {
		m.fail("%v", err)
		return
	}
	g, err := m.net.MustGraph(freq)
	if err != nil {
		m.fail("%v", err)
		return
	}

	var t *network.Traversal
	switch strings.ToLower(parts[0]) {
	case "bfs":
		t, err = g.BFS(start)
	case "dfs":
		t, err = g.DFS(start)
	default:
		m.fail("unknown walk %q", parts[0])
		return
	}
	if err != nil {
		m.fail("%v", err)
		return
	}

	m.walk = t
	m.message = fmt.Sprintf("%s reached %d antennas", strings.ToUpper(t.Kind), t.Count())
	m.messageErr = false
}

func (m *model) runQuery() {
	q := strings.TrimSpace(m.queryInput.Value())
	if q == "" {
		m.fail("Query cannot be empty")
		return
	}
	schema, err := gql.GenerateSchema(m.net)
	if err != nil {
		m.fail("schema: %v", err)
		return
	}

	res := gql.ExecuteWithLimits(schema, q, gql.DefaultLimits(), nil)
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		m.fail("%v", err)
		return
	}
	m.queryResult = string(data)
	if len(res.Errors) > 0 {
		m.fail("Query failed: %s", res.Errors[0].Message)
		return
	}
	m.message = "Query executed successfully"
	m.messageErr = false
}

func (m model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("📡 Antenna Network"))
	s.WriteString("\n\n")
	s.WriteString(m.renderTabs())
	s.WriteString("\n\n")

	switch m.currentView {
	case mapView:
		s.WriteString(m.renderMap())
	case graphsView:
		s.WriteString(m.renderGraphs())
	case walkView:
		s.WriteString(m.renderWalk())
	case queryView:
		s.WriteString(m.renderQuery())
	}

	if m.message != "" {
		s.WriteString("\n\n")
		if m.messageErr {
			s.WriteString(errorStyle.Render("✗ " + m.message))
		} else {
			s.WriteString(successStyle.Render("✓ " + m.message))
		}
	}

	s.WriteString("\n\n")
	s.WriteString(helpStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp())))

	return s.String()
}

func (m model) renderTabs() string {
	var renderedTabs []string
	for i, tab := range viewNames {
		if view(i) == m.currentView {
			renderedTabs = append(renderedTabs, activeTabStyle.Render(tab))
		} else {
			renderedTabs = append(renderedTabs, inactiveTabStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, renderedTabs...)
}

func (m model) renderMap() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render(fmt.Sprintf("Grid %dx%d", m.net.MaxDim(), m.net.MaxDim())))
	s.WriteString("\n\n")
	s.WriteString(mapBoxStyle.Render(m.styledGrid()))
	return contentStyle.Render(s.String())
}

// styledGrid colours antennas by frequency and highlights the last walk.
func (m model) styledGrid() string {
	matrix := grid.Render(m.net)
	if m.interference {
		grid.Overlay(matrix, algorithms.Interference(m.net), '#')
	}

	var s strings.Builder
	for x, row := range matrix {
		for y, cell := range row {
			s.WriteString(m.styleCell(network.Pt(x, y), cell))
		}
		if x < len(matrix)-1 {
			s.WriteByte('\n')
		}
	}
	return s.String()
}

func (m model) styleCell(p network.Point, cell byte) string {
	text := string(cell)
	switch {
	case cell == grid.Empty:
		return emptyCellStyle.Render(text)
	case cell == '#':
		return noiseCellStyle.Render(text)
	}
	style := lipgloss.NewStyle().Foreground(frequencyColors[int(cell-'A')%len(frequencyColors)])
	if m.walk != nil && network.Frequency(cell) == m.walkFrequency() && m.walk.Contains(p) {
		style = visitedCellStyle
	}
	return style.Render(text)
}

func (m model) walkFrequency() network.Frequency {
	if m.walk == nil || len(m.walk.Visits) == 0 {
		return 0
	}
	return m.walk.Visits[0].Antenna.Frequency
}

func (m model) renderGraphs() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render("Graphs"))
	s.WriteString("\n\n")
	if m.net.Len() == 0 {
		s.WriteString(helpStyle.Render("No antennas loaded\n\nStart with --map or --dump"))
		return contentStyle.Render(s.String())
	}
	s.WriteString(m.graphTable.View())
	return contentStyle.Render(s.String())
}

func (m model) renderWalk() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render("Walk"))
	s.WriteString("\n\n")
	s.WriteString("Enter a walk, then switch to Map to see it highlighted:\n\n")
	s.WriteString(m.walkInput.View())
	s.WriteString("\n\n")

	if m.walk != nil {
		for _, v := range m.walk.Visits {
			s.WriteString(fmt.Sprintf("%3d. %s%s\n", v.Order+1, strings.Repeat("  ", v.Depth), v.Antenna))
		}
	}
	return contentStyle.Render(s.String())
}

func (m model) renderQuery() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render("Query Console"))
	s.WriteString("\n\n")
	s.WriteString("Enter a GraphQL query:\n\n")
	s.WriteString(m.queryInput.View())
	s.WriteString("\n\n")

	if m.queryResult != "" {
		s.WriteString(m.queryResult)
	} else {
		s.WriteString(helpStyle.Render("Examples:\n"))
		s.WriteString(helpStyle.Render("  { graphs { frequency count links } }\n"))
		s.WriteString(helpStyle.Render(`  { bfs(frequency: "A", x: 2, y: 5) { count } }` + "\n"))
		s.WriteString(helpStyle.Render("  { interference { x y } }\n"))
	}
	return contentStyle.Render(s.String())
}
