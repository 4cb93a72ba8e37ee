package storage

import "github.com/LuizVenosa/GraficoCameraSite/internal/graph"

// Emitter streams node and link records to a sink.
type Emitter interface {
	EmitNode(node *graph.NodeRecord) error
	EmitLink(link *graph.LinkRecord) error
	Close() error
}

// EmitDocument sends every node, then every link, of doc to e.
func EmitDocument(e Emitter, doc *graph.Document) error {
	for i := range doc.Nodes {
		if err := e.EmitNode(&doc.Nodes[i]); err != nil {
			return err
		}
	}
	for i := range doc.Links {
		if err := e.EmitLink(&doc.Links[i]); err != nil {
			return err
		}
	}
	return nil
}
