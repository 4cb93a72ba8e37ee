// Package metrics annotates graph nodes with degree and betweenness centrality.
package metrics

import (
	"github.com/LuizVenosa/GraficoCameraSite/internal/graph"
	"github.com/LuizVenosa/GraficoCameraSite/internal/logger"
	"gonum.org/v1/gonum/graph/network"
)

// Degree returns degree / (N-1) per node in entity order. A graph with a
// single node has centrality 0.
func Degree(g *graph.Graph) []float64 {
	n := g.Len()
	out := make([]float64, n)
	if n < 2 {
		return out
	}
	for i := range out {
		out[i] = float64(g.Degree(i)) / float64(n-1)
	}
	return out
}

// Betweenness returns normalized betweenness centrality per node.
//
// Shortest paths are counted in hops. Edge weights are similarities, not
// distances, and play no part here. network.Betweenness sums over ordered
// (s, t) pairs, which for an undirected graph counts each pair twice, so
// dividing by (N-1)(N-2) equals the usual pair count over (N-1)(N-2)/2.
func Betweenness(g *graph.Graph) []float64 {
	n := g.Len()
	out := make([]float64, n)
	if n < 3 {
		return out
	}
	scale := 1 / float64((n-1)*(n-2))
	for id, raw := range network.Betweenness(g.Topology()) {
		out[id] = raw * scale
	}
	return out
}

// Annotate sets centrality and betweenness on every node.
func Annotate(g *graph.Graph) error {
	degree := Degree(g)
	between := Betweenness(g)
	for i := 0; i < g.Len(); i++ {
		if err := g.SetCentrality(i, degree[i], between[i]); err != nil {
			return err
		}
	}
	logger.Debug("Annotated centrality", "nodes", g.Len())
	return nil
}
