package graph

import "strings"

type attr uint8

const (
	attrParty attr = 1 << iota
	attrState
	attrCoalition
	attrCentrality
	attrBetweenness
	attrX
	attrY

	allAttrs = attrParty | attrState | attrCoalition | attrCentrality | attrBetweenness | attrX | attrY
)

var attrNames = []struct {
	bit  attr
	name string
}{
	{attrParty, "party"},
	{attrState, "state"},
	{attrCoalition, "coalizao"},
	{attrCentrality, "centrality"},
	{attrBetweenness, "betweenness"},
	{attrX, "x"},
	{attrY, "y"},
}

// Node is one entity with its fixed attribute record.
type Node struct {
	ID          string
	Party       string
	State       string
	Coalition   string
	Centrality  float64
	Betweenness float64
	X           float64
	Y           float64

	set attr
}

// Complete reports whether all seven attributes have been assigned.
func (n Node) Complete() bool { return n.set == allAttrs }

func (n Node) missing() []string {
	var out []string
	for _, a := range attrNames {
		if n.set&a.bit == 0 {
			out = append(out, a.name)
		}
	}
	return out
}

// claim marks bits as set, failing if any of them already is.
func (n *Node) claim(bits attr) error {
	if taken := n.set & bits; taken != 0 {
		var names []string
		for _, a := range attrNames {
			if taken&a.bit != 0 {
				names = append(names, a.name)
			}
		}
		return &ReassignedAttributeError{ID: n.ID, Attrs: names}
	}
	n.set |= bits
	return nil
}

// Edge is an undirected weighted link. Source precedes Target in node order.
type Edge struct {
	Source string
	Target string
	Weight float64
}

// Document is the node-link serialization of an annotated graph.
type Document struct {
	Directed   bool         `json:"directed"`
	Multigraph bool         `json:"multigraph"`
	Graph      struct{}     `json:"graph"`
	Nodes      []NodeRecord `json:"nodes"`
	Links      []LinkRecord `json:"links"`
}

type NodeRecord struct {
	ID          string  `json:"id"`
	Party       string  `json:"party"`
	State       string  `json:"state"`
	Coalition   string  `json:"coalizao"`
	Centrality  float64 `json:"centrality"`
	Betweenness float64 `json:"betweenness"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
}

type LinkRecord struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Weight float64 `json:"weight"`
}

func joinMissing(names []string) string { return strings.Join(names, ", ") }
