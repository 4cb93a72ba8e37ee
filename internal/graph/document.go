package graph

import "fmt"

// Document converts a fully annotated graph into its node-link form.
func (gr *Graph) Document() (*Document, error) {
	if err := gr.Validate(); err != nil {
		return nil, err
	}
	doc := &Document{
		Nodes: make([]NodeRecord, 0, len(gr.nodes)),
		Links: make([]LinkRecord, 0, len(gr.edges)),
	}
	for _, n := range gr.nodes {
		doc.Nodes = append(doc.Nodes, NodeRecord{
			ID:          n.ID,
			Party:       n.Party,
			State:       n.State,
			Coalition:   n.Coalition,
			Centrality:  n.Centrality,
			Betweenness: n.Betweenness,
			X:           n.X,
			Y:           n.Y,
		})
	}
	for _, e := range gr.edges {
		doc.Links = append(doc.Links, LinkRecord{Source: e.Source, Target: e.Target, Weight: e.Weight})
	}
	return doc, nil
}

// FromDocument rebuilds a graph from its node-link form.
func FromDocument(doc *Document) (*Graph, error) {
	if doc.Directed || doc.Multigraph {
		return nil, fmt.Errorf("node-link document must be undirected and simple")
	}
	ids := make([]string, len(doc.Nodes))
	for i, n := range doc.Nodes {
		ids[i] = n.ID
	}
	gr, err := New(ids)
	if err != nil {
		return nil, err
	}
	for i, n := range doc.Nodes {
		if err := gr.SetAffiliation(i, n.Party, n.State, n.Coalition); err != nil {
			return nil, err
		}
		if err := gr.SetCentrality(i, n.Centrality, n.Betweenness); err != nil {
			return nil, err
		}
		if err := gr.SetPosition(i, n.X, n.Y); err != nil {
			return nil, err
		}
	}
	for _, l := range doc.Links {
		if err := gr.AddEdge(l.Source, l.Target, l.Weight); err != nil {
			return nil, fmt.Errorf("link %q - %q: %w", l.Source, l.Target, err)
		}
	}
	return gr, nil
}
