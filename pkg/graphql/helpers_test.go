package graphql

import (
	"testing"

	"github.com/graphql-go/graphql"

	"github.com/dd0wney/cluso-antennas/pkg/network"
)

// setupTriangle builds the 'A' triangle plus one lone 'B' antenna.
func setupTriangle(t *testing.T) *network.Network {
	t.Helper()
	net := network.New()
	for _, a := range []network.Antenna{
		network.NewAntenna('A', 2, 5),
		network.NewAntenna('A', 4, 6),
		network.NewAntenna('A', 19, 17),
		network.NewAntenna('B', 6, 3),
	} {
		if err := net.Insert(a.Frequency, a.X, a.Y); err != nil {
			t.Fatalf("Insert(%v) error = %v", a, err)
		}
	}
	p := network.Pt
	for _, l := range [][2]network.Point{{p(2, 5), p(4, 6)}, {p(19, 17), p(4, 6)}, {p(19, 17), p(2, 5)}} {
		if err := net.Connect('A', l[0], l[1]); err != nil {
			t.Fatalf("Connect error = %v", err)
		}
	}
	return net
}

func mustExecute(t *testing.T, schema graphql.Schema, query string) map[string]any {
	t.Helper()
	result := ExecuteQuery(query, schema)
	if result.HasErrors() {
		t.Fatalf("Query execution failed: %v", result.Errors)
	}
	data, ok := result.Data.(map[string]any)
	if !ok {
		t.Fatalf("unexpected result data %T", result.Data)
	}
	return data
}
