// Package ingest reads the CSV inputs: the votes pivot and the party table.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/LuizVenosa/GraficoCameraSite/internal/logger"
	"github.com/LuizVenosa/GraficoCameraSite/internal/similarity"
)

// LoadVotes reads a votes pivot CSV from path.
func LoadVotes(path string) (similarity.EntityMatrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return similarity.EntityMatrix{}, fmt.Errorf("open votes: %w", err)
	}
	defer f.Close()

	m, err := ReadVotes(f)
	if err != nil {
		return similarity.EntityMatrix{}, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug("Loaded votes", "path", path, "entities", len(m.IDs), "features", len(m.Features[0]))
	return m, nil
}

// ReadVotes parses a votes pivot: a header row, then one row per entity with
// the identifier in the first column and numeric features after it.
// Empty cells are absent votes and read as 0.
func ReadVotes(r io.Reader) (similarity.EntityMatrix, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return similarity.EntityMatrix{}, fmt.Errorf("read votes: %w", err)
	}
	if len(records) == 0 {
		return similarity.EntityMatrix{}, errors.New("votes file is empty")
	}
	header := records[0]
	rows := records[1:]
	cols := len(header) - 1

	m := similarity.EntityMatrix{
		IDs:      make([]string, 0, len(rows)),
		Features: make([][]float64, 0, len(rows)),
	}
	for i, rec := range rows {
		id := strings.TrimSpace(rec[0])
		features := make([]float64, cols)
		for j, cell := range rec[1:] {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return similarity.EntityMatrix{}, &similarity.InvalidInputError{
					Rows: len(rows), Cols: cols, Row: i, ID: id,
					Reason: fmt.Sprintf("column %q: %q is not numeric", header[j+1], cell),
				}
			}
			features[j] = v
		}
		m.IDs = append(m.IDs, id)
		m.Features = append(m.Features, features)
	}
	if err := m.Validate(); err != nil {
		return similarity.EntityMatrix{}, err
	}
	return m, nil
}
