package query

import (
	"context"
	"fmt"

	"github.com/LuizVenosa/GraficoCameraSite/internal/config"
	"github.com/LuizVenosa/GraficoCameraSite/internal/graph"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

// Neo4jProvider implements GraphProvider using the official Neo4j Go driver.
type Neo4jProvider struct {
	driver neo4j.DriverWithContext
	dbName string
}

// NewNeo4jProvider creates a new connection to Neo4j.
func NewNeo4jProvider(ctx context.Context, cfg config.Config) (*Neo4jProvider, error) {
	auth := neo4j.BasicAuth(cfg.Neo4jUser, cfg.Neo4jPassword, "")

	driver, err := neo4j.NewDriverWithContext(cfg.Neo4jURI, auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create neo4j driver: %w", err)
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		driver.Close(ctx)
		return nil, fmt.Errorf("failed to verify connectivity to neo4j: %w", err)
	}

	return &Neo4jProvider{driver: driver, dbName: cfg.Neo4jDatabase}, nil
}

// Driver exposes the underlying driver so writers can share the connection.
func (p *Neo4jProvider) Driver() neo4j.DriverWithContext { return p.driver }

// Close closes the Neo4j driver connection.
func (p *Neo4jProvider) Close() error {
	return p.driver.Close(context.Background())
}

const neighborsQuery = `
	MATCH (n:Legislator {id: $id})
	OPTIONAL MATCH (n)-[r:SIMILAR_TO]-(m:Legislator)
	WITH n, r, m ORDER BY r.weight DESC
	WITH n, collect(CASE WHEN m IS NULL THEN NULL
		ELSE {id: m.id, party: m.party, weight: r.weight} END) AS neighbors
	RETURN properties(n) AS props, neighbors[..$limit] AS neighbors
`

// GetNeighbors returns the published neighbors of id ordered by weight.
func (p *Neo4jProvider) GetNeighbors(ctx context.Context, id string, limit int) (*NeighborResult, error) {
	if limit <= 0 {
		limit = 10
	}
	result, err := neo4j.ExecuteQuery(ctx, p.driver, neighborsQuery, map[string]any{
		"id":    id,
		"limit": limit,
	}, neo4j.EagerResultTransformer, neo4j.ExecuteQueryWithDatabase(p.dbName))
	if err != nil {
		return nil, fmt.Errorf("failed to query neighbors: %w", err)
	}
	if len(result.Records) == 0 {
		return nil, fmt.Errorf("node %q not found", id)
	}

	record := result.Records[0]
	props, _, err := neo4j.GetRecordValue[map[string]any](record, "props")
	if err != nil {
		return nil, fmt.Errorf("failed to read node: %w", err)
	}
	raw, _, err := neo4j.GetRecordValue[[]any](record, "neighbors")
	if err != nil {
		return nil, fmt.Errorf("failed to read neighbors: %w", err)
	}

	return &NeighborResult{
		Node:      nodeFromProps(props),
		Neighbors: neighborsFromRows(raw),
	}, nil
}

func nodeFromProps(props map[string]any) *graph.NodeRecord {
	str := func(k string) string { s, _ := props[k].(string); return s }
	num := func(k string) float64 { f, _ := props[k].(float64); return f }
	return &graph.NodeRecord{
		ID:          str("id"),
		Party:       str("party"),
		State:       str("state"),
		Coalition:   str("coalizao"),
		Centrality:  num("centrality"),
		Betweenness: num("betweenness"),
		X:           num("x"),
		Y:           num("y"),
	}
}

func neighborsFromRows(rows []any) []Neighbor {
	out := make([]Neighbor, 0, len(rows))
	for _, row := range rows {
		m, ok := row.(map[string]any)
		if !ok {
			continue
		}
		id, _ := m["id"].(string)
		party, _ := m["party"].(string)
		weight, _ := m["weight"].(float64)
		out = append(out, Neighbor{ID: id, Party: party, Weight: weight})
	}
	return out
}
