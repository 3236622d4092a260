package models

// Column holds per-column display settings.
type Column struct {
	// Width is the column width in pixels.
	Width float64 `json:"width"`
}

// ViewSheet represents the grid model of one worksheet.
type ViewSheet struct {
	// Name is the worksheet name.
	Name string `json:"name"`
	// Rows maps 0-based row index to row.
	Rows map[int]*ViewRow `json:"rows"`
	// Cols maps 0-based column index to column settings.
	Cols map[int]Column `json:"cols"`
	// Merges lists merged ranges such as "A1:C3".
	Merges []string `json:"merges"`
	// Styles is the deduplicated style table; index 0 is the empty style.
	Styles []Style `json:"styles"`
}

// NewViewSheet returns an empty sheet ready for population.
func NewViewSheet(name string) *ViewSheet {
	return &ViewSheet{
		Name:   name,
		Rows:   make(map[int]*ViewRow),
		Cols:   make(map[int]Column),
		Merges: []string{},
		Styles: []Style{},
	}
}

// Cell returns the cell at (row, col), both 0-based, or nil.
func (s *ViewSheet) Cell(row, col int) *ViewCell {
	return s.Rows[row].Cell(col)
}

// AddMerge appends ref to Merges unless it is already present. It reports
// whether ref was added.
func (s *ViewSheet) AddMerge(ref string) bool {
	for _, m := range s.Merges {
		if m == ref {
			return false
		}
	}
	s.Merges = append(s.Merges, ref)
	return true
}

// StyleAt returns the style at index i, or the empty style when i is out
// of range.
func (s *ViewSheet) StyleAt(i int) Style {
	if i < 0 || i >= len(s.Styles) {
		return Style{}
	}
	return s.Styles[i]
}

// RowCount returns one past the highest row index present.
func (s *ViewSheet) RowCount() int {
	n := 0
	for r := range s.Rows {
		n = max(n, r+1)
	}
	return n
}

// ColCount returns one past the highest column index present in Cols or
// any row.
func (s *ViewSheet) ColCount() int {
	n := 0
	for c := range s.Cols {
		n = max(n, c+1)
	}
	for _, row := range s.Rows {
		if row == nil {
			continue
		}
		for c := range row.Cells {
			n = max(n, c+1)
		}
	}
	return n
}
