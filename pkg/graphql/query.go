package graphql

import (
	"github.com/graphql-go/graphql"

	"github.com/dd0wney/cluso-antennas/pkg/algorithms"
	"github.com/dd0wney/cluso-antennas/pkg/network"
)

var (
	frequencyArg = &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)}
	coordArg     = &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)}
)

func createQueryType(net *network.Network, t *objectTypes) *graphql.Object {
	pointArgs := graphql.FieldConfigArgument{
		"frequency": frequencyArg,
		"x":         coordArg,
		"y":         coordArg,
	}

	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"health": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return "ok", nil
				},
			},
			"frequencies": &graphql.Field{
				Type: graphql.NewList(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					freqs := net.Frequencies()
					out := make([]string, len(freqs))
					for i, f := range freqs {
						out[i] = f.String()
					}
					return out, nil
				},
			},
			"graphs": &graphql.Field{
				Type: graphql.NewList(t.graph),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return net.Graphs(), nil
				},
			},
			"graph": &graphql.Field{
				Type: t.graph,
				Args: graphql.FieldConfigArgument{"frequency": frequencyArg},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					freq, err := frequencyFrom(p.Args)
					if err != nil {
						return nil, err
					}
					if g, ok := net.Graph(freq); ok {
						return g, nil
					}
					return nil, nil
				},
			},
			"antenna": &graphql.Field{
				Type:    t.antenna,
				Args:    pointArgs,
				Resolve: createAntennaResolver(net),
			},
			"antennas": &graphql.Field{
				Type: graphql.NewList(t.antenna),
				Args: graphql.FieldConfigArgument{
					"frequency": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if _, ok := p.Args["frequency"]; !ok {
						return net.Antennas(), nil
					}
					freq, err := frequencyFrom(p.Args)
					if err != nil {
						return nil, err
					}
					g, ok := net.Graph(freq)
					if !ok {
						return []network.Antenna{}, nil
					}
					return g.Antennas(), nil
				},
			},
			"bfs": &graphql.Field{
				Type: t.traversal,
				Args: pointArgs,
				Resolve: createTraversalResolver(net, func(g *network.Graph, p network.Point) (*network.Traversal, error) {
					return g.BFS(p)
				}),
			},
			"dfs": &graphql.Field{
				Type: t.traversal,
				Args: pointArgs,
				Resolve: createTraversalResolver(net, func(g *network.Graph, p network.Point) (*network.Traversal, error) {
					return g.DFS(p)
				}),
			},
			"paths": &graphql.Field{
				Type: graphql.Int,
				Args: graphql.FieldConfigArgument{
					"frequency": frequencyArg,
					"fromX":     coordArg,
					"fromY":     coordArg,
					"toX":       coordArg,
					"toY":       coordArg,
				},
				Resolve: createPathsResolver(net),
			},
			"interference": &graphql.Field{
				Type: graphql.NewList(t.point),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return algorithms.Interference(net), nil
				},
			},
			"stats": &graphql.Field{
				Type: t.stats,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return net.Stats(), nil
				},
			},
		},
	})
}

func frequencyFrom(args map[string]interface{}) (network.Frequency, error) {
	s, _ := args["frequency"].(string)
	return network.ParseFrequency(s)
}

func pointFrom(args map[string]interface{}, xKey, yKey string) network.Point {
	x, _ := args[xKey].(int)
	y, _ := args[yKey].(int)
	return network.Pt(x, y)
}

// createAntennaResolver returns the antenna at a position, or null
func createAntennaResolver(net *network.Network) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		freq, err := frequencyFrom(p.Args)
		if err != nil {
			return nil, err
		}
		pt := pointFrom(p.Args, "x", "y")
		g, ok := net.Graph(freq)
		if !ok {
			return nil, nil
		}
		v, ok := g.Find(pt.X, pt.Y)
		if !ok {
			return nil, nil
		}
		return v.Antenna(), nil
	}
}

func createTraversalResolver(net *network.Network, walk func(*network.Graph, network.Point) (*network.Traversal, error)) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		freq, err := frequencyFrom(p.Args)
		if err != nil {
			return nil, err
		}
		g, err := net.MustGraph(freq)
		if err != nil {
			return nil, err
		}
		return walk(g, pointFrom(p.Args, "x", "y"))
	}
}

func createPathsResolver(net *network.Network) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		freq, err := frequencyFrom(p.Args)
		if err != nil {
			return nil, err
		}
		g, err := net.MustGraph(freq)
		if err != nil {
			return nil, err
		}
		return g.CountPaths(pointFrom(p.Args, "fromX", "fromY"), pointFrom(p.Args, "toX", "toY"))
	}
}

// ExecuteQuery executes a GraphQL query against a schema
func ExecuteQuery(query string, schema graphql.Schema) *graphql.Result {
	params := graphql.Params{
		Schema:        schema,
		RequestString: query,
	}

	result := graphql.Do(params)
	return result
}

// ExecuteQueryWithVariables executes a GraphQL query with variables
func ExecuteQueryWithVariables(query string, schema graphql.Schema, variables map[string]any) *graphql.Result {
	params := graphql.Params{
		Schema:         schema,
		RequestString:  query,
		VariableValues: variables,
	}

	result := graphql.Do(params)
	return result
}
