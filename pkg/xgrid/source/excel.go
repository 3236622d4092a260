package source

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/ukaji3/xgrid-go/pkg/xgrid/address"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// ExcelWorkbook adapts an excelize file to the Workbook interface.
// Reads are serialized so sheets may be consumed from several goroutines.
type ExcelWorkbook struct {
	f   *excelize.File
	log *zap.Logger

	mu     sync.Mutex
	styles map[int]styleInfo
}

type styleInfo struct {
	style CellStyle
	date  bool
}

// Open opens an xlsx file.
func Open(path string, log *zap.Logger) (*ExcelWorkbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	return FromExcelize(f, log), nil
}

// OpenReader reads an xlsx document from r.
func OpenReader(r io.Reader, log *zap.Logger) (*ExcelWorkbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	return FromExcelize(f, log), nil
}

// FromExcelize wraps an already opened excelize file.
func FromExcelize(f *excelize.File, log *zap.Logger) *ExcelWorkbook {
	if log == nil {
		log = zap.NewNop()
	}
	return &ExcelWorkbook{
		f:      f,
		log:    log,
		styles: make(map[int]styleInfo),
	}
}

// File returns the underlying excelize file.
func (w *ExcelWorkbook) File() *excelize.File {
	return w.f
}

// Close closes the underlying file.
func (w *ExcelWorkbook) Close() error {
	return w.f.Close()
}

// Sheets returns the worksheets in workbook order.
func (w *ExcelWorkbook) Sheets() ([]Sheet, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	var sheets []Sheet
	for _, name := range w.f.GetSheetList() {
		s, err := w.loadSheet(name)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", name, err)
		}
		sheets = append(sheets, s)
	}
	return sheets, nil
}

func (w *ExcelWorkbook) loadSheet(name string) (*excelSheet, error) {
	rows, err := w.f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	mergeCells, err := w.f.GetMergeCells(name)
	if err != nil {
		return nil, err
	}

	merges := make([]MergedRange, 0, len(mergeCells))
	for _, mc := range mergeCells {
		ref := mc.GetStartAxis() + ":" + mc.GetEndAxis()
		cr, err := address.ParseRange(ref)
		if err != nil {
			w.log.Warn("skipping unreadable merged range",
				zap.String("sheet", name), zap.String("range", ref), zap.Error(err))
			continue
		}
		merges = append(merges, MergedRange{
			Ref:     cr.String(),
			TopLeft: cr.TopLeft(),
			Row:     cr.R1,
			Col:     cr.C1,
			Rows:    cr.Rows(),
			Cols:    cr.Cols(),
		})
	}

	lastRow, lastCol := findDataBounds(rows)
	lastRow, lastCol = extendBounds(lastRow, lastCol, merges)

	defaultWidth, defaultHeight := excelDefaultColWidth, excelDefaultRowHeight
	props, err := w.f.GetSheetProps(name)
	if err != nil {
		return nil, err
	}
	if props.DefaultColWidth != nil && *props.DefaultColWidth > 0 {
		defaultWidth = *props.DefaultColWidth
	}
	if props.CustomHeight != nil && *props.CustomHeight && props.DefaultRowHeight != nil {
		defaultHeight = *props.DefaultRowHeight
	}

	return &excelSheet{
		wb:            w,
		name:          name,
		lastRow:       lastRow,
		lastCol:       lastCol,
		merges:        merges,
		defaultWidth:  defaultWidth,
		defaultHeight: defaultHeight,
	}, nil
}

// Sizes excelize reports for columns and rows the sheet does not size.
const (
	excelDefaultColWidth  float64 = 9.140625
	excelDefaultRowHeight float64 = 15
)

type excelSheet struct {
	wb      *ExcelWorkbook
	name    string
	lastRow int
	lastCol int
	merges  []MergedRange

	defaultWidth  float64
	defaultHeight float64
}

func (s *excelSheet) Name() string                { return s.name }
func (s *excelSheet) LastUsedRow() int            { return s.lastRow }
func (s *excelSheet) LastUsedColumn() int         { return s.lastCol }
func (s *excelSheet) MergedRanges() []MergedRange { return s.merges }

// ColumnWidth returns the declared width of col, or 0 when the column falls
// back to the sheet default. A width equal to the default reads as undeclared.
func (s *excelSheet) ColumnWidth(col int) float64 {
	s.wb.mu.Lock()
	defer s.wb.mu.Unlock()

	w, err := s.wb.f.GetColWidth(s.name, address.ColumnName(col))
	if err != nil {
		s.wb.log.Warn("failed to read column width",
			zap.String("sheet", s.name), zap.Int("col", col), zap.Error(err))
		return 0
	}
	if w == s.defaultWidth {
		return 0
	}
	return w
}

// RowHeight returns the declared height of row, or 0 when the row uses the
// sheet default.
func (s *excelSheet) RowHeight(row int) float64 {
	s.wb.mu.Lock()
	defer s.wb.mu.Unlock()

	h, err := s.wb.f.GetRowHeight(s.name, row)
	if err != nil {
		s.wb.log.Warn("failed to read row height",
			zap.String("sheet", s.name), zap.Int("row", row), zap.Error(err))
		return 0
	}
	if h == s.defaultHeight {
		return 0
	}
	return h
}

// Cell reads one cell. Read failures are logged and yield a blank cell.
func (s *excelSheet) Cell(row, col int) Cell {
	s.wb.mu.Lock()
	defer s.wb.mu.Unlock()

	f, log := s.wb.f, s.wb.log
	ref := address.MustAddress(row, col, address.OneBased)

	var cell Cell
	info := styleInfo{}
	if styleID, err := f.GetCellStyle(s.name, ref); err == nil {
		info = s.wb.style(styleID)
	} else {
		log.Warn("failed to read cell style", zap.String("sheet", s.name), zap.String("cell", ref), zap.Error(err))
	}
	cell.Style = info.style

	formula, err := f.GetCellFormula(s.name, ref)
	if err != nil {
		log.Warn("failed to read cell formula", zap.String("sheet", s.name), zap.String("cell", ref), zap.Error(err))
	}
	cell.Formula = formula

	raw, err := f.GetCellValue(s.name, ref, excelize.Options{RawCellValue: true})
	if err != nil {
		log.Warn("failed to read cell value", zap.String("sheet", s.name), zap.String("cell", ref), zap.Error(err))
		return cell
	}
	cell.Raw = raw

	typ, err := f.GetCellType(s.name, ref)
	if err != nil {
		log.Warn("failed to read cell type", zap.String("sheet", s.name), zap.String("cell", ref), zap.Error(err))
		typ = excelize.CellTypeUnset
	}

	fillValue(&cell, typ, raw, info.date)
	return cell
}

// fillValue sets the typed value of cell from its stored representation.
func fillValue(cell *Cell, typ excelize.CellType, raw string, dateFormat bool) {
	switch typ {
	case excelize.CellTypeBool:
		cell.Type = CellTypeBoolean
		cell.Bool = raw == "1" || strings.EqualFold(raw, "TRUE")
	case excelize.CellTypeDate:
		if t, ok := parseISODate(raw); ok {
			cell.Type = CellTypeDateTime
			cell.Time = t
		} else {
			cell.Type = CellTypeText
			cell.Text = raw
		}
	case excelize.CellTypeError:
		cell.Type = CellTypeError
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
		cell.Type = CellTypeText
		cell.Text = raw
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		if raw == "" {
			cell.Type = CellTypeBlank
			return
		}
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			cell.Type = CellTypeText
			cell.Text = raw
			return
		}
		if dateFormat {
			if t, err := excelize.ExcelDateToTime(n, false); err == nil {
				cell.Type = CellTypeDateTime
				cell.Time = t
				return
			}
		}
		cell.Type = CellTypeNumber
		cell.Number = n
	default:
		cell.Type = CellTypeUnknown
	}
}

func parseISODate(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// style resolves and caches an excelize style. Callers hold w.mu.
func (w *ExcelWorkbook) style(id int) styleInfo {
	if info, ok := w.styles[id]; ok {
		return info
	}
	st, err := w.f.GetStyle(id)
	if err != nil {
		w.log.Warn("failed to read style", zap.Int("style", id), zap.Error(err))
		w.styles[id] = styleInfo{}
		return styleInfo{}
	}
	info := styleInfo{
		style: convertStyle(st),
		date:  isDateNumFmt(st.NumFmt, st.CustomNumFmt),
	}
	w.themeColors(id, &info.style)
	w.styles[id] = info
	return info
}

// themeColors replaces fill and border colors that reference the theme with
// theme slots, so they resolve against the grid theme instead of the file's.
func (w *ExcelWorkbook) themeColors(id int, cs *CellStyle) {
	ss := w.f.Styles
	if ss == nil || ss.CellXfs == nil || id < 0 || id >= len(ss.CellXfs.Xf) {
		return
	}
	xf := ss.CellXfs.Xf[id]

	if (xf.ApplyFill == nil || *xf.ApplyFill) && xf.FillID != nil && ss.Fills != nil &&
		*xf.FillID >= 0 && *xf.FillID < len(ss.Fills.Fill) {
		if fl := ss.Fills.Fill[*xf.FillID]; fl != nil && fl.PatternFill != nil &&
			fl.PatternFill.PatternType != "" && fl.PatternFill.PatternType != "none" {
			c := fl.PatternFill.FgColor
			if c == nil {
				c = fl.PatternFill.BgColor
			}
			if c != nil && c.Theme != nil {
				cs.Fill = ThemeColor(ThemeSlot(*c.Theme), c.Tint)
			}
		}
	}

	if (xf.ApplyBorder == nil || *xf.ApplyBorder) && xf.BorderID != nil && ss.Borders != nil &&
		*xf.BorderID >= 0 && *xf.BorderID < len(ss.Borders.Border) {
		b := ss.Borders.Border[*xf.BorderID]
		if b == nil {
			return
		}
		setLine := func(dst *BorderLine, theme *int, tint float64) {
			if theme != nil && dst.Kind != BorderNone {
				dst.Color = ThemeColor(ThemeSlot(*theme), tint)
			}
		}
		if l := b.Top; l != nil && l.Color != nil {
			setLine(&cs.Top, l.Color.Theme, l.Color.Tint)
		}
		if l := b.Bottom; l != nil && l.Color != nil {
			setLine(&cs.Bottom, l.Color.Theme, l.Color.Tint)
		}
		if l := b.Left; l != nil && l.Color != nil {
			setLine(&cs.Left, l.Color.Theme, l.Color.Tint)
		}
		if l := b.Right; l != nil && l.Color != nil {
			setLine(&cs.Right, l.Color.Theme, l.Color.Tint)
		}
	}
}
