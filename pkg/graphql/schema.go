// Package graphql exposes a Network through an in-process GraphQL schema.
package graphql

import (
	"fmt"

	"github.com/graphql-go/graphql"

	"github.com/dd0wney/cluso-antennas/pkg/algorithms"
	"github.com/dd0wney/cluso-antennas/pkg/network"
)

// objectTypes holds the object types shared by queries and mutations.
type objectTypes struct {
	point     *graphql.Object
	antenna   *graphql.Object
	visit     *graphql.Object
	traversal *graphql.Object
	graph     *graphql.Object
	stats     *graphql.Object
}

// GenerateSchema generates a read-only GraphQL schema over net
func GenerateSchema(net *network.Network) (graphql.Schema, error) {
	types := createObjectTypes(net)

	schema, err := graphql.NewSchema(graphql.SchemaConfig{
		Query: createQueryType(net, types),
	})
	if err != nil {
		return graphql.Schema{}, fmt.Errorf("failed to create schema: %w", err)
	}
	return schema, nil
}

func createObjectTypes(net *network.Network) *objectTypes {
	t := &objectTypes{}

	t.point = graphql.NewObject(graphql.ObjectConfig{
		Name: "Point",
		Fields: graphql.Fields{
			"x": &graphql.Field{Type: graphql.NewNonNull(graphql.Int), Resolve: pointField(func(p network.Point) any { return p.X })},
			"y": &graphql.Field{Type: graphql.NewNonNull(graphql.Int), Resolve: pointField(func(p network.Point) any { return p.Y })},
		},
	})

	t.antenna = graphql.NewObject(graphql.ObjectConfig{
		Name: "Antenna",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"frequency": &graphql.Field{
					Type:    graphql.NewNonNull(graphql.String),
					Resolve: antennaField(func(a network.Antenna) any { return a.Frequency.String() }),
				},
				"x": &graphql.Field{
					Type:    graphql.NewNonNull(graphql.Int),
					Resolve: antennaField(func(a network.Antenna) any { return a.X }),
				},
				"y": &graphql.Field{
					Type:    graphql.NewNonNull(graphql.Int),
					Resolve: antennaField(func(a network.Antenna) any { return a.Y }),
				},
				"neighbors": &graphql.Field{
					Type:    graphql.NewList(t.antenna),
					Resolve: createNeighborsResolver(net),
				},
			}
		}),
	})

	t.visit = graphql.NewObject(graphql.ObjectConfig{
		Name: "Visit",
		Fields: graphql.Fields{
			"antenna": &graphql.Field{
				Type: t.antenna,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if v, ok := p.Source.(network.Visit); ok {
						return v.Antenna, nil
					}
					return nil, nil
				},
			},
			"order": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if v, ok := p.Source.(network.Visit); ok {
						return v.Order, nil
					}
					return nil, nil
				},
			},
			"depth": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if v, ok := p.Source.(network.Visit); ok {
						return v.Depth, nil
					}
					return nil, nil
				},
			},
		},
	})

	t.traversal = graphql.NewObject(graphql.ObjectConfig{
		Name: "Traversal",
		Fields: graphql.Fields{
			"kind": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if tr, ok := p.Source.(*network.Traversal); ok {
						return tr.Kind, nil
					}
					return nil, nil
				},
			},
			"start": &graphql.Field{
				Type: t.point,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if tr, ok := p.Source.(*network.Traversal); ok {
						return tr.Start, nil
					}
					return nil, nil
				},
			},
			"count": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if tr, ok := p.Source.(*network.Traversal); ok {
						return tr.Count(), nil
					}
					return nil, nil
				},
			},
			"visits": &graphql.Field{
				Type: graphql.NewList(t.visit),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if tr, ok := p.Source.(*network.Traversal); ok {
						return tr.Visits, nil
					}
					return nil, nil
				},
			},
		},
	})

	t.graph = graphql.NewObject(graphql.ObjectConfig{
		Name: "Graph",
		Fields: graphql.Fields{
			"frequency": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.String),
				Resolve: graphField(func(g *network.Graph) (any, error) { return g.Frequency().String(), nil }),
			},
			"count": &graphql.Field{
				Type:    graphql.Int,
				Resolve: graphField(func(g *network.Graph) (any, error) { return g.Count(), nil }),
			},
			"links": &graphql.Field{
				Type:    graphql.Int,
				Resolve: graphField(func(g *network.Graph) (any, error) { return g.Links(), nil }),
			},
			"valid": &graphql.Field{
				Type:    graphql.Boolean,
				Resolve: graphField(func(g *network.Graph) (any, error) { return g.Validate(), nil }),
			},
			"components": &graphql.Field{
				Type: graphql.Int,
				Resolve: graphField(func(g *network.Graph) (any, error) {
					r, err := algorithms.ConnectedComponents(g)
					if err != nil {
						return nil, err
					}
					return len(r.Components), nil
				}),
			},
			"antennas": &graphql.Field{
				Type:    graphql.NewList(t.antenna),
				Resolve: graphField(func(g *network.Graph) (any, error) { return g.Antennas(), nil }),
			},
			"interference": &graphql.Field{
				Type: graphql.NewList(t.point),
				Resolve: graphField(func(g *network.Graph) (any, error) {
					return algorithms.InterferencePoints(g, g.MaxDim()), nil
				}),
			},
		},
	})

	graphStats := graphql.NewObject(graphql.ObjectConfig{
		Name: "GraphStats",
		Fields: graphql.Fields{
			"frequency": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if s, ok := p.Source.(network.GraphStats); ok {
						return s.Frequency.String(), nil
					}
					return nil, nil
				},
			},
			"antennas": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if s, ok := p.Source.(network.GraphStats); ok {
						return s.Antennas, nil
					}
					return nil, nil
				},
			},
			"links": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if s, ok := p.Source.(network.GraphStats); ok {
						return s.Links, nil
					}
					return nil, nil
				},
			},
		},
	})

	t.stats = graphql.NewObject(graphql.ObjectConfig{
		Name: "Stats",
		Fields: graphql.Fields{
			"antennas": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if s, ok := p.Source.(network.Stats); ok {
						return s.Antennas, nil
					}
					return nil, nil
				},
			},
			"links": &graphql.Field{
				Type: graphql.Int,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if s, ok := p.Source.(network.Stats); ok {
						return s.Links, nil
					}
					return nil, nil
				},
			},
			"graphs": &graphql.Field{
				Type: graphql.NewList(graphStats),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if s, ok := p.Source.(network.Stats); ok {
						return s.Graphs, nil
					}
					return nil, nil
				},
			},
		},
	})

	return t
}

func pointField(get func(network.Point) any) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		if pt, ok := p.Source.(network.Point); ok {
			return get(pt), nil
		}
		return nil, nil
	}
}

func antennaField(get func(network.Antenna) any) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		if a, ok := p.Source.(network.Antenna); ok {
			return get(a), nil
		}
		return nil, nil
	}
}

func graphField(get func(*network.Graph) (any, error)) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		if g, ok := p.Source.(*network.Graph); ok {
			return get(g)
		}
		return nil, nil
	}
}

// createNeighborsResolver resolves an antenna's linked antennas, newest link first
func createNeighborsResolver(net *network.Network) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		a, ok := p.Source.(network.Antenna)
		if !ok {
			return nil, nil
		}
		g, ok := net.Graph(a.Frequency)
		if !ok {
			return []network.Antenna{}, nil
		}
		return g.Neighbors(a.Point())
	}
}
