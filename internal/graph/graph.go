// Package graph holds the weighted undirected similarity graph and its
// node-link document form.
package graph

import (
	"fmt"

	"github.com/LuizVenosa/GraficoCameraSite/internal/logger"
	"github.com/LuizVenosa/GraficoCameraSite/internal/sparsify"
	gonum "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// Graph is a set of entity nodes and weighted undirected edges.
// The gonum node ID of each node is its position in entity order.
type Graph struct {
	g     *simple.WeightedUndirectedGraph
	nodes []Node
	index map[string]int
	edges []Edge
}

// New creates a graph with one isolated node per identifier.
func New(ids []string) (*Graph, error) {
	gr := &Graph{
		g:     simple.NewWeightedUndirectedGraph(0, 0),
		nodes: make([]Node, 0, len(ids)),
		index: make(map[string]int, len(ids)),
	}
	for i, id := range ids {
		if first, ok := gr.index[id]; ok {
			return nil, &DuplicateNodeError{ID: id, First: first, Second: i}
		}
		gr.index[id] = i
		gr.nodes = append(gr.nodes, Node{ID: id})
		gr.g.AddNode(simple.Node(int64(i)))
	}
	return gr, nil
}

// Build assembles the entity nodes and the selected edges. Entities without
// edges stay in the graph as isolated nodes.
func Build(ids []string, edges []sparsify.Edge) (*Graph, error) {
	gr, err := New(ids)
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		if e.U < 0 || e.V < 0 || e.U >= len(ids) || e.V >= len(ids) {
			return nil, fmt.Errorf("edge (%d,%d) out of range for %d nodes", e.U, e.V, len(ids))
		}
		if err := gr.addEdge(e.U, e.V, e.Weight); err != nil {
			return nil, err
		}
	}
	logger.Debug("Built graph", "nodes", gr.Len(), "edges", len(gr.edges))
	return gr, nil
}

// AddEdge links two existing nodes by identifier.
func (gr *Graph) AddEdge(source, target string, weight float64) error {
	u, ok := gr.index[source]
	if !ok {
		return fmt.Errorf("edge source %q is not a node", source)
	}
	v, ok := gr.index[target]
	if !ok {
		return fmt.Errorf("edge target %q is not a node", target)
	}
	return gr.addEdge(u, v, weight)
}

func (gr *Graph) addEdge(u, v int, weight float64) error {
	if u == v {
		return fmt.Errorf("self loop on %q", gr.nodes[u].ID)
	}
	if u > v {
		u, v = v, u
	}
	if gr.g.HasEdgeBetween(int64(u), int64(v)) {
		return fmt.Errorf("duplicate edge %q - %q", gr.nodes[u].ID, gr.nodes[v].ID)
	}
	gr.g.SetWeightedEdge(gr.g.NewWeightedEdge(simple.Node(int64(u)), simple.Node(int64(v)), weight))
	gr.edges = append(gr.edges, Edge{Source: gr.nodes[u].ID, Target: gr.nodes[v].ID, Weight: weight})
	return nil
}

// Len returns the node count.
func (gr *Graph) Len() int { return len(gr.nodes) }

// Node returns the node at position i.
func (gr *Graph) Node(i int) Node { return gr.nodes[i] }

// Lookup returns the node with the given identifier.
func (gr *Graph) Lookup(id string) (Node, bool) {
	i, ok := gr.index[id]
	if !ok {
		return Node{}, false
	}
	return gr.nodes[i], true
}

// Nodes returns a copy of the nodes in entity order.
func (gr *Graph) Nodes() []Node { return append([]Node(nil), gr.nodes...) }

// Edges returns a copy of the edges in insertion order.
func (gr *Graph) Edges() []Edge { return append([]Edge(nil), gr.edges...) }

// Degree returns the number of edges incident to node i.
func (gr *Graph) Degree(i int) int { return gr.g.From(int64(i)).Len() }

// Weight returns the weight of the edge between i and j, if any.
func (gr *Graph) Weight(i, j int) (float64, bool) {
	e := gr.g.WeightedEdgeBetween(int64(i), int64(j))
	if e == nil {
		return 0, false
	}
	return e.Weight(), true
}

// Topology exposes the graph to gonum algorithms. Node IDs are positions.
func (gr *Graph) Topology() gonum.Undirected { return gr.g }

// Each attribute of a node is assigned once. The setters below fail with a
// *ReassignedAttributeError, leaving the node unchanged, if any attribute
// they cover is already set.

func (gr *Graph) SetAffiliation(i int, party, state, coalition string) error {
	n := &gr.nodes[i]
	if err := n.claim(attrParty | attrState | attrCoalition); err != nil {
		return err
	}
	n.Party, n.State, n.Coalition = party, state, coalition
	return nil
}

func (gr *Graph) SetCentrality(i int, degree, betweenness float64) error {
	n := &gr.nodes[i]
	if err := n.claim(attrCentrality | attrBetweenness); err != nil {
		return err
	}
	n.Centrality, n.Betweenness = degree, betweenness
	return nil
}

func (gr *Graph) SetPosition(i int, x, y float64) error {
	n := &gr.nodes[i]
	if err := n.claim(attrX | attrY); err != nil {
		return err
	}
	n.X, n.Y = x, y
	return nil
}

// Validate fails on the first node that lacks an attribute.
func (gr *Graph) Validate() error {
	for _, n := range gr.nodes {
		if !n.Complete() {
			return &IncompleteNodeError{ID: n.ID, Missing: n.missing()}
		}
	}
	return nil
}
