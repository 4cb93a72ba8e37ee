package metrics

import (
	"testing"

	"github.com/LuizVenosa/GraficoCameraSite/internal/graph"
	"github.com/LuizVenosa/GraficoCameraSite/internal/sparsify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func build(t *testing.T, ids []string, edges ...sparsify.Edge) *graph.Graph {
	t.Helper()
	g, err := graph.Build(ids, edges)
	require.NoError(t, err)
	return g
}

func TestAnnotate_PairPlusIsolated(t *testing.T) {
	g := build(t, []string{"A", "B", "C"}, sparsify.Edge{U: 0, V: 1, Weight: 1})

	require.NoError(t, Annotate(g))

	a, _ := g.Lookup("A")
	c, _ := g.Lookup("C")
	assert.InDelta(t, 0.5, a.Centrality, 1e-12)
	assert.Equal(t, 0.0, a.Betweenness)
	assert.Equal(t, 0.0, c.Centrality)
	assert.Equal(t, 0.0, c.Betweenness)
}

func TestBetweenness_Path(t *testing.T) {
	g := build(t, []string{"A", "B", "C"},
		sparsify.Edge{U: 0, V: 1, Weight: 0.9},
		sparsify.Edge{U: 1, V: 2, Weight: 0.8},
	)

	b := Betweenness(g)
	assert.InDelta(t, 0.0, b[0], 1e-12)
	assert.InDelta(t, 1.0, b[1], 1e-12)
	assert.InDelta(t, 0.0, b[2], 1e-12)
}

func TestBetweenness_Star(t *testing.T) {
	ids := []string{"hub", "a", "b", "c", "d"}
	var edges []sparsify.Edge
	for i := 1; i < len(ids); i++ {
		edges = append(edges, sparsify.Edge{U: 0, V: i, Weight: 0.75})
	}
	g := build(t, ids, edges...)

	b := Betweenness(g)
	assert.InDelta(t, 1.0, b[0], 1e-12)
	for i := 1; i < len(ids); i++ {
		assert.InDelta(t, 0.0, b[i], 1e-12)
	}

	d := Degree(g)
	assert.InDelta(t, 1.0, d[0], 1e-12)
	assert.InDelta(t, 0.25, d[1], 1e-12)
}

func TestBetweenness_IgnoresWeights(t *testing.T) {
	// Square A-B-C-D-A: by hop count every node carries the same load no
	// matter how the similarities differ.
	g := build(t, []string{"A", "B", "C", "D"},
		sparsify.Edge{U: 0, V: 1, Weight: 0.99},
		sparsify.Edge{U: 1, V: 2, Weight: 0.71},
		sparsify.Edge{U: 2, V: 3, Weight: 0.99},
		sparsify.Edge{U: 0, V: 3, Weight: 0.71},
	)

	b := Betweenness(g)
	for i := 1; i < len(b); i++ {
		assert.InDelta(t, b[0], b[i], 1e-12)
	}
	// Each node sits on one of the two shortest paths between its neighbors.
	assert.InDelta(t, 1.0/6, b[0], 1e-12)
}

func TestBetweenness_Disconnected(t *testing.T) {
	g := build(t, []string{"A", "B", "C", "X", "Y"},
		sparsify.Edge{U: 0, V: 1, Weight: 1},
		sparsify.Edge{U: 1, V: 2, Weight: 1},
		sparsify.Edge{U: 3, V: 4, Weight: 1},
	)

	b := Betweenness(g)
	// One pair (A,C) routed through B, out of 4*3/2 = 6 pairs.
	assert.InDelta(t, 1.0/6, b[1], 1e-12)
	assert.Equal(t, 0.0, b[3])
}

func TestMetrics_SmallGraphs(t *testing.T) {
	empty := build(t, nil)
	require.NoError(t, Annotate(empty))
	assert.Empty(t, Degree(empty))

	single := build(t, []string{"solo"})
	require.NoError(t, Annotate(single))
	n := single.Node(0)
	assert.Equal(t, 0.0, n.Centrality)
	assert.Equal(t, 0.0, n.Betweenness)

	pair := build(t, []string{"A", "B"}, sparsify.Edge{U: 0, V: 1, Weight: 1})
	assert.Equal(t, []float64{1, 1}, Degree(pair))
	assert.Equal(t, []float64{0, 0}, Betweenness(pair))
}

func TestMetrics_Ranges(t *testing.T) {
	ids := []string{"a", "b", "c", "d", "e", "f"}
	g := build(t, ids,
		sparsify.Edge{U: 0, V: 1, Weight: 1},
		sparsify.Edge{U: 0, V: 2, Weight: 1},
		sparsify.Edge{U: 1, V: 2, Weight: 1},
		sparsify.Edge{U: 2, V: 3, Weight: 1},
		sparsify.Edge{U: 3, V: 4, Weight: 1},
	)
	require.NoError(t, Annotate(g))
	for _, n := range g.Nodes() {
		assert.GreaterOrEqual(t, n.Centrality, 0.0)
		assert.LessOrEqual(t, n.Centrality, 1.0)
		assert.GreaterOrEqual(t, n.Betweenness, 0.0)
	}
}
