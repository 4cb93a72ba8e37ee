package storage

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/LuizVenosa/GraficoCameraSite/internal/graph"
	"github.com/LuizVenosa/GraficoCameraSite/internal/logger"
)

// DefaultPath is where the front end expects the graph.
const DefaultPath = "static/graph.json"

// IOError reports a failure to write or read the exported document.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string { return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err) }

func (e *IOError) Unwrap() error { return e.Err }

// EncodeNodeLink writes doc as indented JSON.
func EncodeNodeLink(w io.Writer, doc *graph.Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(doc)
}

// Export validates g and writes its node-link document to path.
func Export(g *graph.Graph, path string) error {
	doc, err := g.Document()
	if err != nil {
		return err
	}
	if err := WriteNodeLink(path, doc); err != nil {
		return err
	}
	logger.Debug("Exported graph", "path", path, "nodes", len(doc.Nodes), "links", len(doc.Links))
	return nil
}

// WriteNodeLink writes doc to path, creating parent directories. The document
// goes to a temporary file in the same directory first and is renamed into
// place, so readers never see a partial file.
func WriteNodeLink(path string, doc *graph.Document) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &IOError{Op: "mkdir", Path: dir, Err: err}
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}
	defer os.Remove(tmp.Name())

	if err := EncodeNodeLink(tmp, doc); err != nil {
		tmp.Close()
		return &IOError{Op: "write", Path: tmp.Name(), Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &IOError{Op: "close", Path: tmp.Name(), Err: err}
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return &IOError{Op: "chmod", Path: tmp.Name(), Err: err}
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return &IOError{Op: "rename", Path: path, Err: err}
	}
	return nil
}

// ReadNodeLink decodes a node-link document.
func ReadNodeLink(r io.Reader) (*graph.Document, error) {
	var doc graph.Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode node-link document: %w", err)
	}
	return &doc, nil
}

// LoadNodeLink reads a node-link document from path.
func LoadNodeLink(path string) (*graph.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()
	return ReadNodeLink(f)
}
