package graph

import "fmt"

// DuplicateNodeError reports an entity identifier that appears twice.
type DuplicateNodeError struct {
	ID     string
	First  int
	Second int
}

func (e *DuplicateNodeError) Error() string {
	return fmt.Sprintf("duplicate node %q at positions %d and %d", e.ID, e.First, e.Second)
}

// IncompleteNodeError reports a node that reached export without every attribute.
type IncompleteNodeError struct {
	ID      string
	Missing []string
}

func (e *IncompleteNodeError) Error() string {
	return fmt.Sprintf("node %q is missing attributes: %s", e.ID, joinMissing(e.Missing))
}

// ReassignedAttributeError reports a second assignment to an attribute that
// is already set. The node keeps its first value.
type ReassignedAttributeError struct {
	ID    string
	Attrs []string
}

func (e *ReassignedAttributeError) Error() string {
	return fmt.Sprintf("node %q already has attributes: %s", e.ID, joinMissing(e.Attrs))
}
