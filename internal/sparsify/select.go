// Package sparsify reduces a dense similarity matrix to a sparse edge set.
//
// A pair (i, j) is a candidate when its similarity is strictly above the
// threshold. Every candidate is offered to both endpoints, each endpoint keeps
// its own TopK strongest candidates, and an edge survives if either endpoint
// kept it. The union means a node can end up with more than TopK incident
// edges; only its own selection is capped.
package sparsify

import (
	"sort"

	"github.com/LuizVenosa/GraficoCameraSite/internal/logger"
	"github.com/LuizVenosa/GraficoCameraSite/internal/similarity"
)

const (
	DefaultThreshold = 0.70
	DefaultTopK      = 11
)

type Options struct {
	Threshold float64
	TopK      int
}

func DefaultOptions() Options {
	return Options{Threshold: DefaultThreshold, TopK: DefaultTopK}
}

// Candidate is a neighbor offered to a node, by index into the matrix.
type Candidate struct {
	Neighbor int
	Weight   float64
}

// Edge is an undirected selected pair with U < V.
type Edge struct {
	U, V   int
	Weight float64
}

type Selection struct {
	// Kept holds, per node, the candidates that node selected, strongest first.
	Kept  [][]Candidate
	Edges []Edge
}

// Select applies the threshold and per-node top-k policy.
// Ties keep the upper-triangle pair order, so the result is deterministic.
func Select(sim *similarity.Matrix, opts Options) Selection {
	n := sim.Len()
	candidates := make([][]Candidate, n)
	pairs := 0

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w := sim.At(i, j)
			if w <= opts.Threshold {
				continue
			}
			pairs++
			candidates[i] = append(candidates[i], Candidate{Neighbor: j, Weight: w})
			candidates[j] = append(candidates[j], Candidate{Neighbor: i, Weight: w})
		}
	}

	kept := make([][]Candidate, n)
	for i, cs := range candidates {
		sort.SliceStable(cs, func(a, b int) bool { return cs[a].Weight > cs[b].Weight })
		if opts.TopK < len(cs) {
			cs = cs[:max(opts.TopK, 0)]
		}
		kept[i] = cs
	}

	seen := make(map[[2]int]struct{})
	var edges []Edge
	for i, cs := range kept {
		for _, c := range cs {
			u, v := min(i, c.Neighbor), max(i, c.Neighbor)
			key := [2]int{u, v}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			edges = append(edges, Edge{U: u, V: v, Weight: c.Weight})
		}
	}

	logger.Debug("Selected edges", "nodes", n, "candidate_pairs", pairs, "edges", len(edges),
		"threshold", opts.Threshold, "top_k", opts.TopK)

	return Selection{Kept: kept, Edges: edges}
}
