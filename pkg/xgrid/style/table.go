package style

import "github.com/ukaji3/xgrid-go/pkg/xgrid/models"

// Table is a per-sheet registry assigning stable indices to distinct
// styles. Index 0 is the empty style. A Table is not safe for concurrent use.
type Table struct {
	styles []models.Style
}

// NewTable returns a table seeded with the empty style.
func NewTable() *Table {
	return &Table{styles: []models.Style{{}}}
}

// Intern returns the index of a style structurally equal to s, adding s
// when none exists yet.
func (t *Table) Intern(s models.Style) int {
	for i, existing := range t.styles {
		if existing.Equal(s) {
			return i
		}
	}
	t.styles = append(t.styles, s)
	return len(t.styles) - 1
}

// Len returns the number of registered styles.
func (t *Table) Len() int {
	return len(t.styles)
}

// Styles returns the registered styles in index order.
func (t *Table) Styles() []models.Style {
	return t.styles
}
