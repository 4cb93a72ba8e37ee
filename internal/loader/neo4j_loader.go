package loader

import (
	"context"
	"fmt"
	"strings"

	"github.com/LuizVenosa/GraficoCameraSite/internal/graph"
	"github.com/LuizVenosa/GraficoCameraSite/internal/logger"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

const (
	NodeLabel        = "Legislator"
	RelType          = "SIMILAR_TO"
	DefaultBatchSize = 500
)

// Neo4jLoader handles batch loading of the similarity graph into Neo4j.
type Neo4jLoader struct {
	Driver    neo4j.DriverWithContext
	DBName    string
	BatchSize int
}

// NewNeo4jLoader creates a new loader instance.
func NewNeo4jLoader(driver neo4j.DriverWithContext, dbName string) *Neo4jLoader {
	return &Neo4jLoader{
		Driver:    driver,
		DBName:    dbName,
		BatchSize: DefaultBatchSize,
	}
}

// Publish loads a node-link document, optionally wiping previous nodes first.
func (l *Neo4jLoader) Publish(ctx context.Context, doc *graph.Document, wipe bool) error {
	if wipe {
		if err := l.Wipe(ctx); err != nil {
			return fmt.Errorf("failed to wipe graph: %w", err)
		}
	}
	if err := l.ApplyConstraints(ctx); err != nil {
		return err
	}
	if err := l.BatchLoadNodes(ctx, doc.Nodes); err != nil {
		return err
	}
	if err := l.BatchLoadLinks(ctx, doc.Links); err != nil {
		return err
	}
	logger.Info("Published graph to Neo4j", "nodes", len(doc.Nodes), "links", len(doc.Links), "db", l.DBName)
	return nil
}

// BatchLoadNodes merges nodes by id using UNWIND.
func (l *Neo4jLoader) BatchLoadNodes(ctx context.Context, nodes []graph.NodeRecord) error {
	if len(nodes) == 0 {
		return nil
	}
	query := buildNodeQuery(NodeLabel)
	for i, batch := range chunk(nodeRows(nodes), l.BatchSize) {
		if err := l.write(ctx, query, map[string]any{"batch": batch}); err != nil {
			return fmt.Errorf("failed to load node batch %d: %w", i, err)
		}
	}
	return nil
}

// BatchLoadLinks merges weighted relationships between already loaded nodes.
func (l *Neo4jLoader) BatchLoadLinks(ctx context.Context, links []graph.LinkRecord) error {
	if len(links) == 0 {
		return nil
	}
	query := buildLinkQuery(NodeLabel, RelType)
	for i, batch := range chunk(linkRows(links), l.BatchSize) {
		if err := l.write(ctx, query, map[string]any{"batch": batch}); err != nil {
			return fmt.Errorf("failed to load link batch %d: %w", i, err)
		}
	}
	return nil
}

// Wipe deletes every Legislator node and its relationships.
func (l *Neo4jLoader) Wipe(ctx context.Context) error {
	return l.write(ctx, buildWipeQuery(NodeLabel), nil)
}

// ApplyConstraints creates the id uniqueness constraint and the party index.
func (l *Neo4jLoader) ApplyConstraints(ctx context.Context) error {
	for _, query := range constraintQueries(NodeLabel) {
		if err := l.write(ctx, query, nil); err != nil {
			return fmt.Errorf("failed to apply constraint '%s': %w", query, err)
		}
	}
	return nil
}

func (l *Neo4jLoader) write(ctx context.Context, query string, params map[string]any) error {
	session := l.Driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: l.DBName})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, query, params)
		if err != nil {
			return nil, err
		}
		return res.Consume(ctx)
	})
	return err
}

// Helpers extracted for testing
func nodeRows(nodes []graph.NodeRecord) []map[string]any {
	rows := make([]map[string]any, 0, len(nodes))
	for _, n := range nodes {
		rows = append(rows, map[string]any{
			"id":          n.ID,
			"party":       n.Party,
			"state":       n.State,
			"coalizao":    n.Coalition,
			"centrality":  n.Centrality,
			"betweenness": n.Betweenness,
			"x":           n.X,
			"y":           n.Y,
		})
	}
	return rows
}

func linkRows(links []graph.LinkRecord) []map[string]any {
	rows := make([]map[string]any, 0, len(links))
	for _, e := range links {
		rows = append(rows, map[string]any{
			"sourceId": e.Source,
			"targetId": e.Target,
			"weight":   e.Weight,
		})
	}
	return rows
}

func chunk(rows []map[string]any, size int) [][]map[string]any {
	if size <= 0 {
		size = DefaultBatchSize
	}
	var out [][]map[string]any
	for start := 0; start < len(rows); start += size {
		out = append(out, rows[start:min(start+size, len(rows))])
	}
	return out
}

func buildNodeQuery(label string) string {
	return fmt.Sprintf(`
			UNWIND $batch AS row
			MERGE (n:%s {id: row.id})
			SET n += row
		`, sanitizeLabel(label))
}

func buildLinkQuery(label, relType string) string {
	return fmt.Sprintf(`
			UNWIND $batch AS row
			MATCH (source:%[1]s {id: row.sourceId})
			MATCH (target:%[1]s {id: row.targetId})
			MERGE (source)-[r:%[2]s]->(target)
			SET r.weight = row.weight
		`, sanitizeLabel(label), sanitizeLabel(relType))
}

func buildWipeQuery(label string) string {
	return fmt.Sprintf("MATCH (n:%s) DETACH DELETE n", sanitizeLabel(label))
}

func constraintQueries(label string) []string {
	l := sanitizeLabel(label)
	return []string{
		fmt.Sprintf("CREATE CONSTRAINT IF NOT EXISTS FOR (n:%s) REQUIRE n.id IS UNIQUE", l),
		fmt.Sprintf("CREATE INDEX IF NOT EXISTS FOR (n:%s) ON (n.party)", l),
	}
}

func sanitizeLabel(label string) string {
	return strings.ReplaceAll(label, "`", "")
}
