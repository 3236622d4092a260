// Package parser converts workbook sheets into widget grid sheets.
package parser

// ColumnWidthFactor converts Excel column width units to widget pixels.
const ColumnWidthFactor = 8

// DefaultColumnWidth is the widget width of columns without a declared width.
const DefaultColumnWidth = 100

// RowHeightFactor converts row heights in points to widget pixels.
const RowHeightFactor = 1.333

// ColumnWidthToPixels converts an Excel column width to widget pixels.
func ColumnWidthToPixels(width float64) float64 {
	if width > 0 {
		return width * ColumnWidthFactor
	}
	return DefaultColumnWidth
}

// RowHeightToPixels converts a row height in points to widget pixels.
// It returns nil for undeclared heights so the widget default applies.
func RowHeightToPixels(height float64) *float64 {
	if height > 0 {
		px := height * RowHeightFactor
		return &px
	}
	return nil
}
