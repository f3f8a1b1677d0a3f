package graphql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuery_Health(t *testing.T) {
	schema, err := GenerateSchema(setupTriangle(t))
	require.NoError(t, err)

	data := mustExecute(t, schema, `{ health }`)
	assert.Equal(t, "ok", data["health"])
}

func TestQuery_FrequenciesAndGraphs(t *testing.T) {
	schema, err := GenerateSchema(setupTriangle(t))
	require.NoError(t, err)

	data := mustExecute(t, schema, `{
		frequencies
		graphs { frequency count links valid components }
	}`)

	assert.Equal(t, []any{"A", "B"}, data["frequencies"])
	graphs := data["graphs"].([]any)
	require.Len(t, graphs, 2)
	assert.Equal(t, map[string]any{
		"frequency": "A", "count": 3, "links": 3, "valid": true, "components": 1,
	}, graphs[0])
}

func TestQuery_AntennaWithNeighbors(t *testing.T) {
	schema, err := GenerateSchema(setupTriangle(t))
	require.NoError(t, err)

	data := mustExecute(t, schema, `{
		antenna(frequency: "a", x: 2, y: 5) { frequency x y neighbors { x y } }
	}`)

	antenna := data["antenna"].(map[string]any)
	assert.Equal(t, "A", antenna["frequency"])
	assert.Equal(t, []any{
		map[string]any{"x": 19, "y": 17},
		map[string]any{"x": 4, "y": 6},
	}, antenna["neighbors"], "newest link first")

	missing := mustExecute(t, schema, `{ antenna(frequency: "A", x: 0, y: 0) { x } }`)
	assert.Nil(t, missing["antenna"])
}

func TestQuery_Traversals(t *testing.T) {
	schema, err := GenerateSchema(setupTriangle(t))
	require.NoError(t, err)

	data := mustExecute(t, schema, `{
		bfs(frequency: "A", x: 2, y: 5) { kind count start { x y } visits { depth antenna { x y } } }
		dfs(frequency: "A", x: 2, y: 5) { count }
		paths(frequency: "A", fromX: 2, fromY: 5, toX: 4, toY: 6)
	}`)

	bfs := data["bfs"].(map[string]any)
	assert.Equal(t, "bfs", bfs["kind"])
	assert.Equal(t, 3, bfs["count"])
	assert.Equal(t, map[string]any{"x": 2, "y": 5}, bfs["start"])
	visits := bfs["visits"].([]any)
	assert.Equal(t, 0, visits[0].(map[string]any)["depth"])
	assert.Equal(t, 1, visits[2].(map[string]any)["depth"])

	assert.Equal(t, 3, data["dfs"].(map[string]any)["count"])
	assert.Equal(t, 2, data["paths"])
}

func TestQuery_TraversalErrors(t *testing.T) {
	schema, err := GenerateSchema(setupTriangle(t))
	require.NoError(t, err)

	for _, q := range []string{
		`{ bfs(frequency: "Q", x: 0, y: 0) { count } }`,
		`{ bfs(frequency: "A", x: 0, y: 0) { count } }`,
		`{ dfs(frequency: "A", x: -1, y: 0) { count } }`,
		`{ paths(frequency: "1", fromX: 0, fromY: 0, toX: 1, toY: 1) }`,
	} {
		result := ExecuteQuery(q, schema)
		assert.True(t, result.HasErrors(), "expected an error for %s", q)
	}
}

func TestQuery_StatsAndInterference(t *testing.T) {
	schema, err := GenerateSchema(setupTriangle(t))
	require.NoError(t, err)

	data := mustExecute(t, schema, `{
		stats { antennas links graphs { frequency antennas } }
		antennas(frequency: "B") { x y }
		all: antennas { frequency }
		graph(frequency: "A") { interference { x y } }
	}`)

	stats := data["stats"].(map[string]any)
	assert.Equal(t, 4, stats["antennas"])
	assert.Equal(t, 3, stats["links"])
	assert.Len(t, stats["graphs"], 2)

	assert.Equal(t, []any{map[string]any{"x": 6, "y": 3}}, data["antennas"])
	assert.Len(t, data["all"], 4)

	// (2,5),(4,6) -> (0,4),(6,7); (4,6),(19,17) -> nothing in a 20 grid.
	interference := data["graph"].(map[string]any)["interference"].([]any)
	assert.Contains(t, interference, map[string]any{"x": 0, "y": 4})
	assert.Contains(t, interference, map[string]any{"x": 6, "y": 7})
}

func TestQuery_Variables(t *testing.T) {
	schema, err := GenerateSchema(setupTriangle(t))
	require.NoError(t, err)

	result := ExecuteQueryWithVariables(
		`query($f: String!, $x: Int!, $y: Int!) { antenna(frequency: $f, x: $x, y: $y) { x y } }`,
		schema,
		map[string]any{"f": "B", "x": 6, "y": 3},
	)
	require.False(t, result.HasErrors(), "%v", result.Errors)
	data := result.Data.(map[string]any)
	assert.Equal(t, map[string]any{"x": 6, "y": 3}, data["antenna"])
}
