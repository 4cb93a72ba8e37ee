// Package metadata attaches party, state and coalition to graph nodes.
package metadata

import (
	"github.com/LuizVenosa/GraficoCameraSite/internal/graph"
	"github.com/LuizVenosa/GraficoCameraSite/internal/logger"
)

const (
	MissingParty = "N/A"
	Unknown      = "Unknown"
)

// Party is the affiliation of one entity.
type Party struct {
	Party     string
	State     string
	Coalition string
}

// Fallback is used for entities absent from the metadata source.
var Fallback = Party{Party: MissingParty, State: Unknown, Coalition: Unknown}

// Table maps entity identifiers to their affiliation.
type Table map[string]Party

// Lookup returns the affiliation of id, or Fallback if it is not present.
// Empty state or coalition read as Unknown.
func (t Table) Lookup(id string) (Party, bool) {
	p, ok := t[id]
	if !ok {
		return Fallback, false
	}
	if p.Party == "" {
		p.Party = MissingParty
	}
	if p.State == "" {
		p.State = Unknown
	}
	if p.Coalition == "" {
		p.Coalition = Unknown
	}
	return p, true
}

// Join sets party, state and coalition on every node. Missing entities are
// expected and get Fallback.
func Join(g *graph.Graph, t Table) error {
	misses := 0
	for i := 0; i < g.Len(); i++ {
		p, ok := t.Lookup(g.Node(i).ID)
		if !ok {
			misses++
		}
		if err := g.SetAffiliation(i, p.Party, p.State, p.Coalition); err != nil {
			return err
		}
	}
	logger.Debug("Joined party metadata", "nodes", g.Len(), "missing", misses)
	return nil
}
