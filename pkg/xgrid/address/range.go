package address

import (
	"fmt"
	"strings"
)

// CellRange represents 1-based, inclusive cell bounds.
type CellRange struct {
	// R1 is the start row.
	R1 int
	// C1 is the start column.
	C1 int
	// R2 is the end row.
	R2 int
	// C2 is the end column.
	C2 int
}

// Rows returns the number of rows covered by the range.
func (r CellRange) Rows() int { return r.R2 - r.R1 + 1 }

// Cols returns the number of columns covered by the range.
func (r CellRange) Cols() int { return r.C2 - r.C1 + 1 }

// TopLeft returns the A1 reference of the first cell.
func (r CellRange) TopLeft() string {
	return ColumnName(r.C1) + fmt.Sprint(r.R1)
}

// String renders the range as "A1:C3".
func (r CellRange) String() string {
	return r.TopLeft() + ":" + ColumnName(r.C2) + fmt.Sprint(r.R2)
}

// ParseRange parses a range reference like $A$1:$D$10 or a single cell
// reference. The bounds are normalized so that R1 <= R2 and C1 <= C2.
func ParseRange(ref string) (CellRange, error) {
	ref = strings.ReplaceAll(strings.TrimSpace(ref), "$", "")

	parts := strings.Split(ref, ":")
	if len(parts) > 2 {
		return CellRange{}, &FormatError{Address: ref, Reason: "too many range separators"}
	}

	r1, c1, err := ToCoordinates(parts[0], OneBased)
	if err != nil {
		return CellRange{}, err
	}
	r2, c2 := r1, c1
	if len(parts) == 2 {
		if r2, c2, err = ToCoordinates(parts[1], OneBased); err != nil {
			return CellRange{}, err
		}
	}

	return CellRange{
		R1: min(r1, r2),
		C1: min(c1, c2),
		R2: max(r1, r2),
		C2: max(c1, c2),
	}, nil
}
