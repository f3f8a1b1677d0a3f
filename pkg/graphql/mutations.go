package graphql

import (
	"fmt"

	"github.com/graphql-go/graphql"

	"github.com/dd0wney/cluso-antennas/pkg/algorithms"
	"github.com/dd0wney/cluso-antennas/pkg/network"
)

// GenerateSchemaWithMutations generates a schema that can also change net
func GenerateSchemaWithMutations(net *network.Network) (graphql.Schema, error) {
	types := createObjectTypes(net)

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"insertAntenna": &graphql.Field{
				Type: types.antenna,
				Args: graphql.FieldConfigArgument{
					"frequency": frequencyArg,
					"x":         coordArg,
					"y":         coordArg,
				},
				Resolve: createInsertResolver(net),
			},
			"connect": &graphql.Field{
				Type: graphql.Boolean,
				Args: graphql.FieldConfigArgument{
					"frequency": frequencyArg,
					"fromX":     coordArg,
					"fromY":     coordArg,
					"toX":       coordArg,
					"toY":       coordArg,
				},
				Resolve: createConnectResolver(net),
			},
			"mesh": &graphql.Field{
				Type: graphql.Int,
				Args: graphql.FieldConfigArgument{"frequency": frequencyArg},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					freq, err := frequencyFrom(p.Args)
					if err != nil {
						return nil, err
					}
					g, err := net.MustGraph(freq)
					if err != nil {
						return nil, err
					}
					return algorithms.Mesh(g)
				},
			},
			"removeGraph": &graphql.Field{
				Type: graphql.Boolean,
				Args: graphql.FieldConfigArgument{"frequency": frequencyArg},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					freq, err := frequencyFrom(p.Args)
					if err != nil {
						return nil, err
					}
					return net.RemoveGraph(freq), nil
				},
			},
		},
	})

	schema, err := graphql.NewSchema(graphql.SchemaConfig{
		Query:    createQueryType(net, types),
		Mutation: mutationType,
	})
	if err != nil {
		return graphql.Schema{}, fmt.Errorf("failed to create schema: %w", err)
	}
	return schema, nil
}

// createInsertResolver inserts an antenna and returns it
func createInsertResolver(net *network.Network) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		freq, err := frequencyFrom(p.Args)
		if err != nil {
			return nil, err
		}
		pt := pointFrom(p.Args, "x", "y")
		if err := net.Insert(freq, pt.X, pt.Y); err != nil {
			return nil, err
		}
		return network.NewAntenna(freq, pt.X, pt.Y), nil
	}
}

// createConnectResolver links two antennas of one frequency
func createConnectResolver(net *network.Network) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		freq, err := frequencyFrom(p.Args)
		if err != nil {
			return nil, err
		}
		from := pointFrom(p.Args, "fromX", "fromY")
		to := pointFrom(p.Args, "toX", "toY")
		if err := net.Connect(freq, from, to); err != nil {
			return false, err
		}
		return true, nil
	}
}
