// Package source defines the read-only workbook model the converter
// consumes, and its excelize-backed implementation.
package source

import "time"

// Workbook is an ordered collection of sheets.
type Workbook interface {
	Sheets() ([]Sheet, error)
}

// Sheet exposes the contents of one worksheet. Row and column arguments
// are 1-based.
type Sheet interface {
	Name() string
	// LastUsedRow is the last row holding content, or 0 for an empty sheet.
	LastUsedRow() int
	// LastUsedColumn is the last column holding content, or 0.
	LastUsedColumn() int
	// ColumnWidth returns the declared width in character units, or 0.
	ColumnWidth(col int) float64
	// RowHeight returns the declared height in points, or 0.
	RowHeight(row int) float64
	MergedRanges() []MergedRange
	Cell(row, col int) Cell
}

// MergedRange is a pre-existing merged block.
type MergedRange struct {
	// Ref is the range reference as declared, e.g. "A1:C3".
	Ref string
	// TopLeft is the A1 reference of the anchor cell.
	TopLeft string
	// Row and Col locate the anchor cell.
	Row int
	Col int
	// Rows is the number of rows covered.
	Rows int
	// Cols is the number of columns covered.
	Cols int
}

// CellType is the declared type of a cell value.
type CellType int

// Cell value types.
const (
	CellTypeBlank CellType = iota
	CellTypeText
	CellTypeNumber
	CellTypeBoolean
	CellTypeDateTime
	CellTypeError
	CellTypeUnknown
)

func (t CellType) String() string {
	switch t {
	case CellTypeBlank:
		return "blank"
	case CellTypeText:
		return "text"
	case CellTypeNumber:
		return "number"
	case CellTypeBoolean:
		return "boolean"
	case CellTypeDateTime:
		return "datetime"
	case CellTypeError:
		return "error"
	}
	return "unknown"
}

// Cell is one cell's value and style. Only the field matching Type is
// meaningful; Raw always carries the stored value as text.
type Cell struct {
	Type    CellType
	Formula string
	Text    string
	Number  float64
	Bool    bool
	Time    time.Time
	Raw     string
	Style   CellStyle
}
