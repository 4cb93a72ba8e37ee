package pipeline

import (
	"bytes"
	"errors"
	"testing"

	"github.com/LuizVenosa/GraficoCameraSite/internal/graph"
	"github.com/LuizVenosa/GraficoCameraSite/internal/metadata"
	"github.com/LuizVenosa/GraficoCameraSite/internal/similarity"
	"github.com/LuizVenosa/GraficoCameraSite/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_ThreeEntities(t *testing.T) {
	m := similarity.EntityMatrix{
		IDs:      []string{"A", "B", "C"},
		Features: [][]float64{{1, 1, 0}, {1, 1, 0}, {0, 0, 1}},
	}

	g, err := Run(m, metadata.Table{}, DefaultParams())
	require.NoError(t, err)

	edges := g.Edges()
	require.Len(t, edges, 1)
	assert.Equal(t, "A", edges[0].Source)
	assert.Equal(t, "B", edges[0].Target)
	assert.InDelta(t, 1.0, edges[0].Weight, 1e-12)

	c, ok := g.Lookup("C")
	require.True(t, ok)
	assert.Equal(t, 0.0, c.Centrality)
	assert.Equal(t, 0.0, c.Betweenness)
}

func TestRun_MissingMetadataFallback(t *testing.T) {
	m := similarity.EntityMatrix{
		IDs:      []string{"A", "D"},
		Features: [][]float64{{1, 0}, {1, 1}},
	}
	parties := metadata.Table{"A": {Party: "PT", State: "SP", Coalition: "Governo"}}

	g, err := Run(m, parties, DefaultParams())
	require.NoError(t, err)

	d, _ := g.Lookup("D")
	assert.Equal(t, "N/A", d.Party)
	assert.Equal(t, "Unknown", d.State)
	assert.Equal(t, "Unknown", d.Coalition)
}

func votes() similarity.EntityMatrix {
	return similarity.EntityMatrix{
		IDs: []string{"a", "b", "c", "d", "e", "f", "g"},
		Features: [][]float64{
			{1, 1, 1, -1, 0},
			{1, 1, 1, -1, 1},
			{1, 1, 0, -1, 1},
			{-1, -1, 1, 1, 0},
			{-1, -1, 1, 1, 1},
			{-1, 0, 1, 1, 1},
			{0, 0, 0, 0, 1},
		},
	}
}

func TestRun_DeterministicDocument(t *testing.T) {
	encode := func() []byte {
		g, err := Run(votes(), metadata.Table{}, DefaultParams())
		require.NoError(t, err)
		doc, err := g.Document()
		require.NoError(t, err)
		var buf bytes.Buffer
		require.NoError(t, storage.EncodeNodeLink(&buf, doc))
		return buf.Bytes()
	}

	first := encode()
	assert.Equal(t, first, encode())
}

func TestRun_AllAttributesInRange(t *testing.T) {
	g, err := Run(votes(), metadata.Table{"a": {Party: "PT"}}, DefaultParams())
	require.NoError(t, err)

	require.Equal(t, 7, g.Len())
	for _, n := range g.Nodes() {
		assert.True(t, n.Complete(), n.ID)
		assert.GreaterOrEqual(t, n.Centrality, 0.0)
		assert.LessOrEqual(t, n.Centrality, 1.0)
		assert.GreaterOrEqual(t, n.Betweenness, 0.0)
	}
}

func TestRun_Errors(t *testing.T) {
	_, err := Run(similarity.EntityMatrix{IDs: []string{"a"}, Features: [][]float64{{1}}}, nil, DefaultParams())
	var invalid *similarity.InvalidInputError
	assert.True(t, errors.As(err, &invalid))

	dup := similarity.EntityMatrix{IDs: []string{"a", "a"}, Features: [][]float64{{1}, {1}}}
	_, err = Run(dup, nil, DefaultParams())
	var dupErr *graph.DuplicateNodeError
	assert.True(t, errors.As(err, &dupErr))

	bad := DefaultParams()
	bad.Layout.K = 0
	_, err = Run(votes(), nil, bad)
	assert.ErrorContains(t, err, "invalid pipeline parameters")
}

func TestParams_Validate(t *testing.T) {
	assert.NoError(t, DefaultParams().Validate())

	p := DefaultParams()
	p.Threshold = 1.5
	assert.Error(t, p.Validate())

	p = DefaultParams()
	p.TopK = -1
	assert.Error(t, p.Validate())
}
