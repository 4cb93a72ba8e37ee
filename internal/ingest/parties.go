package ingest

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/LuizVenosa/GraficoCameraSite/internal/logger"
	"github.com/LuizVenosa/GraficoCameraSite/internal/metadata"
)

// ParseError is a malformed record in the party table. It is recovered by
// re-reading the table leniently.
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("parse parties line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("parse %s line %d: %v", e.Path, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ErrTooManyFields marks a row wider than the header.
var ErrTooManyFields = errors.New("more fields than header")

// PartyColumns names the header columns of the party table. The entity
// identifier is always the first column.
type PartyColumns struct {
	Party     string
	State     string
	Coalition string
}

func DefaultPartyColumns() PartyColumns {
	return PartyColumns{Party: "siglaPartido", State: "state", Coalition: "Coalizao"}
}

// PartyLoadResult is the loaded table and how it was obtained.
type PartyLoadResult struct {
	Table metadata.Table
	// Lenient is set when strict parsing failed and malformed rows were skipped.
	Lenient bool
	// Skipped counts rows dropped in lenient mode plus duplicate identifiers.
	Skipped int
}

// LoadParties reads the party table from path.
func LoadParties(path string, cols PartyColumns) (PartyLoadResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PartyLoadResult{}, fmt.Errorf("read parties: %w", err)
	}
	res, err := readParties(path, data, cols)
	if err != nil {
		return PartyLoadResult{}, err
	}
	logger.Debug("Loaded party metadata", "path", path, "entries", len(res.Table),
		"lenient", res.Lenient, "skipped", res.Skipped)
	return res, nil
}

// ReadParties parses a party table. It first parses strictly; if a record is
// malformed it parses again, skipping bad records instead of failing.
func ReadParties(data []byte, cols PartyColumns) (PartyLoadResult, error) {
	return readParties("", data, cols)
}

func readParties(path string, data []byte, cols PartyColumns) (PartyLoadResult, error) {
	table, dups, err := ParsePartiesStrict(data, cols)
	if err == nil {
		return PartyLoadResult{Table: table, Skipped: dups}, nil
	}

	var perr *ParseError
	if !errors.As(err, &perr) {
		return PartyLoadResult{}, err
	}
	perr.Path = path
	logger.Warn("Party table is malformed, retrying leniently", "err", perr)

	table, skipped, err := ParsePartiesLenient(data, cols)
	if err != nil {
		return PartyLoadResult{}, err
	}
	return PartyLoadResult{Table: table, Lenient: true, Skipped: skipped}, nil
}

type partyHeader struct {
	width                   int
	party, state, coalition int
}

func parseHeader(record []string, cols PartyColumns) (partyHeader, error) {
	h := partyHeader{width: len(record), party: -1, state: -1, coalition: -1}
	for i, name := range record {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if i == 0 {
			continue
		}
		switch name {
		case cols.Party:
			h.party = i
		case cols.State:
			h.state = i
		case cols.Coalition:
			h.coalition = i
		}
	}
	if h.party < 0 {
		return h, fmt.Errorf("party table has no %q column", cols.Party)
	}
	return h, nil
}

func (h partyHeader) entry(record []string) (string, metadata.Party) {
	field := func(i int) string {
		if i < 0 || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}
	return strings.TrimSpace(record[0]), metadata.Party{
		Party:     field(h.party),
		State:     field(h.state),
		Coalition: field(h.coalition),
	}
}

// add keeps the first entry for an identifier and reports whether rec was used.
func add(table metadata.Table, h partyHeader, rec []string) bool {
	id, p := h.entry(rec)
	if id == "" {
		return false
	}
	if _, ok := table[id]; ok {
		return false
	}
	table[id] = p
	return true
}

// ParsePartiesStrict fails with a *ParseError on the first record that is
// wider than the header or has broken quoting. Shorter records are kept and
// their missing columns read as empty. It also returns the number of
// duplicate identifiers that were ignored.
func ParsePartiesStrict(data []byte, cols PartyColumns) (metadata.Table, int, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if err == io.EOF {
		return metadata.Table{}, 0, nil
	}
	if err != nil {
		return nil, 0, toParseError(err)
	}
	h, err := parseHeader(header, cols)
	if err != nil {
		return nil, 0, err
	}

	table := metadata.Table{}
	dups := 0
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, toParseError(err)
		}
		if len(rec) > h.width {
			line, _ := r.FieldPos(0)
			return nil, 0, &ParseError{Line: line, Err: ErrTooManyFields}
		}
		if !add(table, h, rec) {
			dups++
		}
	}
	return table, dups, nil
}

// ParsePartiesLenient reads the table one physical line at a time, so an
// unterminated quote cannot swallow the rows after it. Stray quotes are
// tolerated; lines that still fail to parse or are wider than the header are
// skipped. It returns the number of skipped records.
func ParsePartiesLenient(data []byte, cols PartyColumns) (metadata.Table, int, error) {
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), len(data)+1)

	var (
		h       partyHeader
		haveHdr bool
		table   = metadata.Table{}
		skipped int
		line    int
	)
	for sc.Scan() {
		line++
		text := sc.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		rec, err := readLine(text)
		if !haveHdr {
			if err != nil {
				return nil, 0, &ParseError{Line: line, Err: err}
			}
			if h, err = parseHeader(rec, cols); err != nil {
				return nil, 0, err
			}
			haveHdr = true
			continue
		}
		if err != nil {
			logger.Debug("Skipping unreadable party row", "line", line, "err", err)
			skipped++
			continue
		}
		if len(rec) > h.width {
			logger.Debug("Skipping malformed party row", "line", line, "fields", len(rec), "expected", h.width)
			skipped++
			continue
		}
		if !add(table, h, rec) {
			skipped++
		}
	}
	if err := sc.Err(); err != nil {
		return nil, 0, err
	}
	return table, skipped, nil
}

// readLine parses a single line as one CSV record. A stray quote inside an
// unquoted field is tolerated; a quoted field left open at the end of the
// line is an error rather than a continuation.
func readLine(text string) ([]string, error) {
	rec, err := csv.NewReader(strings.NewReader(text)).Read()
	if errors.Is(err, csv.ErrBareQuote) {
		r := csv.NewReader(strings.NewReader(text))
		r.LazyQuotes = true
		rec, err = r.Read()
	}
	return rec, err
}

func toParseError(err error) error {
	var cerr *csv.ParseError
	if errors.As(err, &cerr) {
		return &ParseError{Line: cerr.Line, Err: cerr.Err}
	}
	return err
}
