// Package models defines the display-oriented grid model consumed by the
// browser spreadsheet widget.
package models

// Merge is the extent of a merged block anchored at its top-left cell:
// the number of additional rows and additional columns it covers.
type Merge [2]int

// RowSpan returns the number of extra rows covered.
func (m Merge) RowSpan() int { return m[0] }

// ColSpan returns the number of extra columns covered.
func (m Merge) ColSpan() int { return m[1] }

// ViewCell represents a single grid cell.
type ViewCell struct {
	// Text is the display text or "=formula".
	Text string `json:"text"`
	// Style is an index into the owning sheet's Styles.
	Style int `json:"style"`
	// Merge is set only on the top-left cell of a merged block.
	Merge *Merge `json:"merge"`
	// Editable reports whether the widget allows editing the cell.
	Editable bool `json:"editable"`
}

// ViewRow represents one row of cells keyed by 0-based column index.
type ViewRow struct {
	// Cells maps column index to cell. Keys may be missing after auto-merge.
	Cells map[int]*ViewCell `json:"cells"`
	// Height is the row height in pixels; nil means widget default.
	Height *float64 `json:"height"`
}

// Cell returns the cell at col, or nil.
func (r *ViewRow) Cell(col int) *ViewCell {
	if r == nil {
		return nil
	}
	return r.Cells[col]
}
