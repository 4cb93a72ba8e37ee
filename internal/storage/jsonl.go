package storage

import (
	"encoding/json"
	"io"
	"sync"

	"github.com/LuizVenosa/GraficoCameraSite/internal/graph"
)

const (
	NodeType = "Legislator"
	LinkType = "SIMILAR_TO"
)

// JSONLEmitter writes one JSON object per line, nodes tagged with
// "type": "Legislator" and links with "type": "SIMILAR_TO", ready for bulk
// graph import.
type JSONLEmitter struct {
	w       io.Writer
	encoder *json.Encoder
	mu      sync.Mutex
}

// NewJSONLEmitter creates a new JSONLEmitter writing to w.
func NewJSONLEmitter(w io.Writer) *JSONLEmitter {
	return &JSONLEmitter{
		w:       w,
		encoder: json.NewEncoder(w),
	}
}

type jsonlNode struct {
	Type string `json:"type"`
	graph.NodeRecord
}

type jsonlLink struct {
	Type string `json:"type"`
	graph.LinkRecord
}

func (e *JSONLEmitter) EmitNode(node *graph.NodeRecord) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.encoder.Encode(jsonlNode{Type: NodeType, NodeRecord: *node})
}

func (e *JSONLEmitter) EmitLink(link *graph.LinkRecord) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.encoder.Encode(jsonlLink{Type: LinkType, LinkRecord: *link})
}

// Close closes the underlying writer if it implements io.Closer.
func (e *JSONLEmitter) Close() error {
	if c, ok := e.w.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
