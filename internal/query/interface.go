package query

import (
	"context"

	"github.com/LuizVenosa/GraficoCameraSite/internal/graph"
)

// Neighbor is one entity linked to the queried node.
type Neighbor struct {
	ID     string  `json:"id"`
	Party  string  `json:"party"`
	Weight float64 `json:"weight"`
}

// NeighborResult is a node and its neighbors, strongest first.
type NeighborResult struct {
	Node      *graph.NodeRecord `json:"node"`
	Neighbors []Neighbor        `json:"neighbors"`
}

// GraphProvider reads the published similarity graph.
type GraphProvider interface {
	Close() error
	GetNeighbors(ctx context.Context, id string, limit int) (*NeighborResult, error)
}
