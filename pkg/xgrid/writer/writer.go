// Package writer rebuilds an xlsx workbook from grid sheets.
package writer

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/ukaji3/xgrid-go/pkg/xgrid/address"
	"github.com/ukaji3/xgrid-go/pkg/xgrid/models"
	"github.com/ukaji3/xgrid-go/pkg/xgrid/parser"
	"github.com/ukaji3/xgrid-go/pkg/xgrid/source"
	"github.com/xuri/excelize/v2"
)

// DefaultColumnWidth is the Excel width of columns without a grid width.
const DefaultColumnWidth = 12

// ErrDuplicateSheet is returned when two grid sheets share a name. Sheet
// names are compared case-insensitively, as Excel does.
var ErrDuplicateSheet = errors.New("duplicate sheet name")

// Write builds a workbook holding one worksheet per grid sheet, in order.
// Rows and cells are written in index order. Text starting with "=" is
// written as a formula.
func Write(sheets []models.ViewSheet) (*excelize.File, error) {
	names := make([]string, len(sheets))
	seen := make(map[string]bool, len(sheets))
	for i := range sheets {
		names[i] = sheetName(i, &sheets[i])
		key := strings.ToLower(names[i])
		if seen[key] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSheet, names[i])
		}
		seen[key] = true
	}

	f := excelize.NewFile()

	for i := range sheets {
		if err := writeSheet(f, i, names[i], &sheets[i]); err != nil {
			f.Close()
			return nil, err
		}
	}

	return f, nil
}

func sheetName(i int, vs *models.ViewSheet) string {
	if vs.Name == "" {
		return fmt.Sprintf("Sheet%d", i+1)
	}
	return vs.Name
}

func writeSheet(f *excelize.File, i int, name string, vs *models.ViewSheet) error {
	if i == 0 {
		if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
			return fmt.Errorf("failed to rename sheet %s: %w", name, err)
		}
	} else if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", name, err)
	}

	for _, c := range slices.Sorted(maps.Keys(vs.Cols)) {
		col := vs.Cols[c]
		letter := address.ColumnName(c + 1)
		width := float64(DefaultColumnWidth)
		if col.Width > 0 {
			width = col.Width / parser.ColumnWidthFactor
		}
		if err := f.SetColWidth(name, letter, letter, width); err != nil {
			return fmt.Errorf("failed to set width of column %s: %w", letter, err)
		}
	}

	styles := newStyleCache(f, vs.Styles)

	for _, r := range slices.Sorted(maps.Keys(vs.Rows)) {
		row := vs.Rows[r]
		if row == nil {
			continue
		}
		if row.Height != nil && *row.Height > 0 {
			if err := f.SetRowHeight(name, r+1, *row.Height/parser.RowHeightFactor); err != nil {
				return fmt.Errorf("failed to set height of row %d: %w", r+1, err)
			}
		}

		for _, c := range slices.Sorted(maps.Keys(row.Cells)) {
			cell := row.Cells[c]
			if cell == nil {
				continue
			}
			if err := writeCell(f, name, r, c, cell, styles); err != nil {
				return err
			}
		}
	}

	return nil
}

func writeCell(f *excelize.File, sheet string, r, c int, cell *models.ViewCell, styles *styleCache) error {
	ref, err := address.ToAddress(r, c, address.ZeroBased)
	if err != nil {
		return err
	}

	if formula, ok := strings.CutPrefix(cell.Text, "="); ok && formula != "" {
		err = f.SetCellFormula(sheet, ref, formula)
	} else {
		err = f.SetCellStr(sheet, ref, cell.Text)
	}
	if err != nil {
		return fmt.Errorf("failed to write cell %s: %w", ref, err)
	}

	if cell.Style > 0 {
		id, err := styles.id(cell.Style)
		if err != nil {
			return fmt.Errorf("failed to create style for cell %s: %w", ref, err)
		}
		if id > 0 {
			if err := f.SetCellStyle(sheet, ref, ref, id); err != nil {
				return fmt.Errorf("failed to style cell %s: %w", ref, err)
			}
		}
	}

	if cell.Merge != nil && (cell.Merge.RowSpan() > 0 || cell.Merge.ColSpan() > 0) {
		end, err := address.ToAddress(r+cell.Merge.RowSpan(), c+cell.Merge.ColSpan(), address.ZeroBased)
		if err != nil {
			return err
		}
		if err := f.MergeCell(sheet, ref, end); err != nil {
			return fmt.Errorf("failed to merge %s:%s: %w", ref, end, err)
		}
	}

	return nil
}

// styleCache registers grid styles with the workbook on first use.
type styleCache struct {
	f      *excelize.File
	styles []models.Style
	ids    map[int]int
}

func newStyleCache(f *excelize.File, styles []models.Style) *styleCache {
	return &styleCache{f: f, styles: styles, ids: make(map[int]int)}
}

func (c *styleCache) id(index int) (int, error) {
	if id, ok := c.ids[index]; ok {
		return id, nil
	}
	if index < 0 || index >= len(c.styles) || c.styles[index].IsEmpty() {
		c.ids[index] = 0
		return 0, nil
	}

	id, err := c.f.NewStyle(excelStyle(c.styles[index]))
	if err != nil {
		return 0, err
	}
	c.ids[index] = id
	return id, nil
}

// excelStyle converts a grid style to its excelize form.
func excelStyle(st models.Style) *excelize.Style {
	xs := &excelize.Style{}

	if bg := hexColor(st.BgColor); bg != "" {
		xs.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{bg}}
	}

	if !st.Font.Empty() || st.Color != "" {
		font := &excelize.Font{Color: hexColor(st.Color)}
		if st.Font != nil {
			font.Family = st.Font.Name
			font.Size = float64(st.Font.Size)
			font.Bold = st.Font.Bold
			font.Italic = st.Font.Italic
			if st.Font.Underline {
				font.Underline = "single"
			}
		}
		xs.Font = font
	}

	if st.Align != "" || st.VAlign != "" {
		xs.Alignment = &excelize.Alignment{
			Horizontal: st.Align,
			Vertical:   verticalAlign(st.VAlign),
		}
	}

	if st.Border != nil {
		for _, side := range []struct {
			typ  string
			line *models.BorderSide
		}{
			{"top", st.Border.Top},
			{"left", st.Border.Left},
			{"right", st.Border.Right},
			{"bottom", st.Border.Bottom},
		} {
			if side.line == nil {
				continue
			}
			xs.Border = append(xs.Border, excelize.Border{
				Type:  side.typ,
				Color: argbColor(side.line.Color()),
				Style: borderStyle(side.line.Kind()),
			})
		}
	}

	return xs
}

func verticalAlign(v string) string {
	if v == "middle" {
		return "center"
	}
	return v
}

func borderStyle(kind string) int {
	if n := source.ExcelBorderStyle(source.BorderKind(kind)); n > 0 {
		return n
	}
	return source.ExcelBorderStyle(source.BorderThin)
}

// hexColor strips the leading '#' of a grid color.
func hexColor(s string) string {
	return strings.ToUpper(strings.TrimPrefix(s, "#"))
}

// argbColor drops the alpha prefix of an ARGB border color.
func argbColor(s string) string {
	if len(s) == 8 {
		return strings.ToUpper(s[2:])
	}
	return hexColor(s)
}
