// Package pipeline turns a votes matrix and party metadata into an annotated
// similarity graph. A run has no side effects; writing the result is left to
// the caller.
package pipeline

import (
	"fmt"

	"github.com/LuizVenosa/GraficoCameraSite/internal/graph"
	"github.com/LuizVenosa/GraficoCameraSite/internal/layout"
	"github.com/LuizVenosa/GraficoCameraSite/internal/logger"
	"github.com/LuizVenosa/GraficoCameraSite/internal/metadata"
	"github.com/LuizVenosa/GraficoCameraSite/internal/metrics"
	"github.com/LuizVenosa/GraficoCameraSite/internal/similarity"
	"github.com/LuizVenosa/GraficoCameraSite/internal/sparsify"
)

// Run executes similarity, edge selection, graph build, centrality, layout
// and metadata join in that order. Any stage error aborts the run.
func Run(m similarity.EntityMatrix, parties metadata.Table, p Params) (*graph.Graph, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	sim, err := similarity.Cosine(m)
	if err != nil {
		return nil, fmt.Errorf("similarity: %w", err)
	}

	sel := sparsify.Select(sim, p.selection())

	g, err := graph.Build(sim.IDs(), sel.Edges)
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}

	if err := metrics.Annotate(g); err != nil {
		return nil, fmt.Errorf("centrality: %w", err)
	}
	if err := layout.Annotate(g, p.layout()); err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	if err := metadata.Join(g, parties); err != nil {
		return nil, fmt.Errorf("join metadata: %w", err)
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}
	logger.Debug("Pipeline finished", "nodes", g.Len(), "edges", len(g.Edges()))
	return g, nil
}
