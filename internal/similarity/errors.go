package similarity

import "fmt"

// InvalidInputError reports a malformed or degenerate entity matrix.
type InvalidInputError struct {
	Rows   int
	Cols   int
	Row    int // -1 when the problem is not tied to one row
	ID     string
	Reason string
}

func (e *InvalidInputError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("invalid entity matrix (%dx%d): %s", e.Rows, e.Cols, e.Reason)
	}
	return fmt.Sprintf("invalid entity matrix (%dx%d): row %d (%q): %s", e.Rows, e.Cols, e.Row, e.ID, e.Reason)
}
