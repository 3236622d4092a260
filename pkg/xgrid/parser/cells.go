package parser

import (
	"strconv"

	"github.com/ukaji3/xgrid-go/pkg/xgrid/source"
)

// DateLayout is the display layout of date cells.
const DateLayout = "2006/01/02"

// CellText returns the display text of a cell. Formulas are passed through
// as "=formula" and never evaluated.
func CellText(c source.Cell) string {
	if c.Formula != "" {
		return "=" + c.Formula
	}

	switch c.Type {
	case source.CellTypeDateTime:
		return c.Time.Format(DateLayout)
	case source.CellTypeNumber:
		return formatNumber(c.Number)
	case source.CellTypeText:
		return c.Text
	case source.CellTypeBoolean:
		if c.Bool {
			return "TRUE"
		}
		return "FALSE"
	case source.CellTypeBlank:
		return ""
	}
	return c.Raw
}

// formatNumber renders n with a '.' decimal point and no grouping.
func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
