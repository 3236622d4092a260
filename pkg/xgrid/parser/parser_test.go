package parser

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/ukaji3/xgrid-go/pkg/xgrid/address"
	"github.com/ukaji3/xgrid-go/pkg/xgrid/models"
	"github.com/ukaji3/xgrid-go/pkg/xgrid/source"
)

// fakeSheet is an in-memory source.Sheet keyed by A1 address.
type fakeSheet struct {
	name    string
	rows    int
	cols    int
	cells   map[string]source.Cell
	widths  map[int]float64
	heights map[int]float64
	merges  []source.MergedRange
}

func newFakeSheet(name string, rows, cols int) *fakeSheet {
	return &fakeSheet{
		name:    name,
		rows:    rows,
		cols:    cols,
		cells:   make(map[string]source.Cell),
		widths:  make(map[int]float64),
		heights: make(map[int]float64),
	}
}

func (s *fakeSheet) text(ref, v string) *fakeSheet {
	s.cells[ref] = source.Cell{Type: source.CellTypeText, Text: v, Raw: v}
	return s
}

func (s *fakeSheet) Name() string                       { return s.name }
func (s *fakeSheet) LastUsedRow() int                   { return s.rows }
func (s *fakeSheet) LastUsedColumn() int                { return s.cols }
func (s *fakeSheet) ColumnWidth(col int) float64        { return s.widths[col] }
func (s *fakeSheet) RowHeight(row int) float64          { return s.heights[row] }
func (s *fakeSheet) MergedRanges() []source.MergedRange { return s.merges }

func (s *fakeSheet) Cell(row, col int) source.Cell {
	return s.cells[address.MustAddress(row, col, address.OneBased)]
}

func TestCellText(t *testing.T) {
	tests := []struct {
		name     string
		cell     source.Cell
		expected string
	}{
		{"formula", source.Cell{Type: source.CellTypeNumber, Formula: "D5+D3", Number: 12}, "=D5+D3"},
		{"date", source.Cell{Type: source.CellTypeDateTime, Time: time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)}, "2024/03/05"},
		{"integer", source.Cell{Type: source.CellTypeNumber, Number: 100}, "100"},
		{"decimal", source.Cell{Type: source.CellTypeNumber, Number: 1234567.25}, "1234567.25"},
		{"negative", source.Cell{Type: source.CellTypeNumber, Number: -0.5}, "-0.5"},
		{"text", source.Cell{Type: source.CellTypeText, Text: " hello "}, " hello "},
		{"true", source.Cell{Type: source.CellTypeBoolean, Bool: true}, "TRUE"},
		{"false", source.Cell{Type: source.CellTypeBoolean}, "FALSE"},
		{"blank", source.Cell{Type: source.CellTypeBlank, Raw: "ignored"}, ""},
		{"error", source.Cell{Type: source.CellTypeError, Raw: "#DIV/0!"}, "#DIV/0!"},
		{"unknown", source.Cell{Type: source.CellTypeUnknown}, ""},
	}

	for _, tt := range tests {
		if got := CellText(tt.cell); got != tt.expected {
			t.Errorf("%s: CellText = %q, expected %q", tt.name, got, tt.expected)
		}
	}
}

func TestUnits(t *testing.T) {
	if got := ColumnWidthToPixels(10); got != 80 {
		t.Errorf("ColumnWidthToPixels(10) = %v, expected 80", got)
	}
	if got := ColumnWidthToPixels(0); got != DefaultColumnWidth {
		t.Errorf("ColumnWidthToPixels(0) = %v, expected %v", got, DefaultColumnWidth)
	}
	if got := RowHeightToPixels(30); got == nil || math.Abs(*got-30*RowHeightFactor) > 1e-9 {
		t.Errorf("RowHeightToPixels(30) = %v", got)
	}
	if got := RowHeightToPixels(0); got != nil {
		t.Errorf("RowHeightToPixels(0) = %v, expected nil", *got)
	}
}

func TestResolveOverlays(t *testing.T) {
	a := []models.Overlay{{Address: "A1", Value: "a"}}
	b := []models.Overlay{{Address: "B2", Value: "b"}}

	tests := []struct {
		name       string
		overlays   map[string][]models.Overlay
		sheet      string
		sheetCount int
		expected   []models.Overlay
		fallback   bool
	}{
		{"exact match", map[string][]models.Overlay{"Data": a, "Other": b}, "Data", 2, a, false},
		{"single fallback", map[string][]models.Overlay{"Other": b}, "Data", 1, b, true},
		{"no fallback with two sheets", map[string][]models.Overlay{"Other": b}, "Data", 2, nil, false},
		{"no fallback with two entries", map[string][]models.Overlay{"X": a, "Y": b}, "Data", 1, nil, false},
		{"nil map", nil, "Data", 1, nil, false},
	}

	for _, tt := range tests {
		got, fallback := ResolveOverlays(tt.overlays, tt.sheet, tt.sheetCount)
		if !reflect.DeepEqual(got, tt.expected) || fallback != tt.fallback {
			t.Errorf("%s: got %v (fallback %v), expected %v (fallback %v)",
				tt.name, got, fallback, tt.expected, tt.fallback)
		}
	}
}

func TestTransform(t *testing.T) {
	ws := newFakeSheet("Sheet1", 3, 3).
		text("A1", "Title").
		text("B2", "x")
	ws.cells["C3"] = source.Cell{Type: source.CellTypeNumber, Formula: "D5+D3", Number: 7}
	ws.cells["A2"] = source.Cell{
		Type:  source.CellTypeText,
		Text:  "styled",
		Style: source.CellStyle{Fill: source.RGBColor("FF0000"), Vertical: "top"},
	}
	ws.cells["A3"] = source.Cell{
		Type:  source.CellTypeText,
		Text:  "styled too",
		Style: source.CellStyle{Fill: source.RGBColor("ff0000"), Vertical: "top"},
	}
	ws.widths[2] = 15
	ws.heights[1] = 20
	ws.merges = []source.MergedRange{{Ref: "A1:C1", TopLeft: "A1", Row: 1, Col: 1, Rows: 1, Cols: 3}}

	sheet := NewTransformer(nil).Transform(ws, nil)

	if sheet.Name != "Sheet1" {
		t.Errorf("expected name Sheet1, got %q", sheet.Name)
	}
	if len(sheet.Rows) != 3 || len(sheet.Cols) != 3 {
		t.Fatalf("expected 3x3 grid, got %d rows, %d cols", len(sheet.Rows), len(sheet.Cols))
	}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if sheet.Cell(r, c) == nil {
				t.Errorf("expected cell (%d,%d) to be materialized", r, c)
			}
		}
	}

	if sheet.Cols[0].Width != DefaultColumnWidth || sheet.Cols[1].Width != 120 {
		t.Errorf("unexpected widths: %+v", sheet.Cols)
	}
	if h := sheet.Rows[0].Height; h == nil || math.Abs(*h-20*RowHeightFactor) > 1e-9 {
		t.Errorf("unexpected row 0 height: %v", h)
	}
	if sheet.Rows[1].Height != nil {
		t.Errorf("expected undeclared row height to be nil")
	}

	if !reflect.DeepEqual(sheet.Merges, []string{"A1:C1"}) {
		t.Errorf("unexpected merges: %v", sheet.Merges)
	}
	if m := sheet.Cell(0, 0).Merge; m == nil || *m != (models.Merge{0, 2}) {
		t.Errorf("unexpected template merge annotation: %v", m)
	}
	if sheet.Cell(0, 1).Merge != nil {
		t.Errorf("expected merge annotation only on the anchor cell")
	}

	if got := sheet.Cell(2, 2).Text; got != "=D5+D3" {
		t.Errorf("expected formula passthrough, got %q", got)
	}
	if got := sheet.Cell(1, 2).Text; got != "" {
		t.Errorf("expected blank cell text, got %q", got)
	}

	// Unstyled cells still carry the default vertical alignment, so the
	// table holds the empty style, the default style and the red fill.
	if len(sheet.Styles) != 3 {
		t.Fatalf("expected 3 styles, got %d: %+v", len(sheet.Styles), sheet.Styles)
	}
	if !sheet.Styles[0].IsEmpty() {
		t.Errorf("expected style 0 to be empty, got %+v", sheet.Styles[0])
	}
	if got := sheet.Cell(0, 0).Style; got != 1 || !sheet.Styles[1].Equal(models.Style{VAlign: "middle"}) {
		t.Errorf("expected unstyled cells at the default style, got %d: %+v", got, sheet.Styles[1])
	}
	if sheet.Cell(1, 0).Style != 2 || sheet.Cell(2, 0).Style != 2 {
		t.Errorf("expected styled cells to share index 2")
	}
	if sheet.Styles[2].BgColor != "#FF0000" || sheet.Styles[2].VAlign != "top" {
		t.Errorf("unexpected style: %+v", sheet.Styles[2])
	}
	for _, c := range sheet.Rows[0].Cells {
		if !c.Editable {
			t.Errorf("expected template cells to be editable")
		}
	}
}

func TestTransformOverlayPriority(t *testing.T) {
	ws := newFakeSheet("Sheet1", 8, 4).
		text("B3", "original").
		text("D7", "template")

	overlays := []models.Overlay{
		{Row: 3, Col: 2, Value: "999", Editable: false},
		{Address: "D7", Value: "by address", Editable: true},
		{Row: 5, Col: 1, Value: "positional elsewhere", Editable: false},
	}

	sheet := NewTransformer(nil).Transform(ws, overlays)

	b3 := sheet.Cell(2, 1)
	if b3.Text != "999" || b3.Editable {
		t.Errorf("B3 = %+v, expected text 999 and not editable", b3)
	}

	d7 := sheet.Cell(6, 3)
	if d7.Text != "by address" || !d7.Editable {
		t.Errorf("D7 = %+v, expected the address overlay", d7)
	}

	a5 := sheet.Cell(4, 0)
	if a5.Text != "positional elsewhere" || a5.Editable {
		t.Errorf("A5 = %+v, expected the positional overlay", a5)
	}

	if c := sheet.Cell(0, 0); c.Text != "" || !c.Editable {
		t.Errorf("A1 = %+v, expected untouched", c)
	}
}

func TestTransformOverlayPositionBeatsAddress(t *testing.T) {
	ws := newFakeSheet("Sheet1", 2, 2)

	overlays := []models.Overlay{
		{Address: "B2", Value: "address", Editable: true},
		{Row: 2, Col: 2, Value: "position", Editable: true},
	}

	sheet := NewTransformer(nil).Transform(ws, overlays)
	if got := sheet.Cell(1, 1).Text; got != "position" {
		t.Errorf("expected positional overlay to win, got %q", got)
	}
}

func columnSheet(values []string) *models.ViewSheet {
	ws := newFakeSheet("Sheet1", len(values), 2)
	for i, v := range values {
		ws.text(address.MustAddress(i+1, 1, address.OneBased), v)
		ws.text(address.MustAddress(i+1, 2, address.OneBased), "other")
	}
	return NewTransformer(nil).Transform(ws, nil)
}

func TestAutoMergeGrouping(t *testing.T) {
	sheet := columnSheet([]string{"A", "A", "A", "B", "B", "", "C"})

	AutoMerge(sheet, []int{0}, nil)

	if !reflect.DeepEqual(sheet.Merges, []string{"A1:A3", "A4:A5"}) {
		t.Fatalf("unexpected merges: %v", sheet.Merges)
	}

	if m := sheet.Cell(0, 0).Merge; m == nil || *m != (models.Merge{2, 0}) {
		t.Errorf("row 0 merge = %v, expected [2,0]", m)
	}
	if m := sheet.Cell(3, 0).Merge; m == nil || *m != (models.Merge{1, 0}) {
		t.Errorf("row 3 merge = %v, expected [1,0]", m)
	}

	for _, r := range []int{1, 2, 4} {
		if sheet.Cell(r, 0) != nil {
			t.Errorf("expected row %d column 0 to be removed", r)
		}
		if sheet.Cell(r, 1) == nil {
			t.Errorf("expected row %d column 1 to be kept", r)
		}
	}

	for _, r := range []int{5, 6} {
		c := sheet.Cell(r, 0)
		if c == nil || c.Merge != nil {
			t.Errorf("expected row %d to stay unmerged, got %+v", r, c)
		}
	}

	// Column 1 was not targeted.
	if sheet.Cell(0, 1).Merge != nil {
		t.Errorf("expected untargeted column to stay unmerged")
	}
}

func TestAutoMergeBlankAndMissing(t *testing.T) {
	sheet := columnSheet([]string{"  ", "  ", "X", "X", "X"})
	delete(sheet.Rows[3].Cells, 0)

	AutoMerge(sheet, []int{0, 5, -1}, nil)

	if len(sheet.Merges) != 0 {
		t.Errorf("expected no merges, got %v", sheet.Merges)
	}
	if sheet.Cell(1, 0) == nil {
		t.Errorf("expected whitespace cells to be kept")
	}
}

func TestAutoMergeTemplateProtection(t *testing.T) {
	ws := newFakeSheet("Sheet1", 3, 2).
		text("A1", "same").
		text("A2", "same").
		text("A3", "same")
	ws.merges = []source.MergedRange{{Ref: "A1:B1", TopLeft: "A1", Row: 1, Col: 1, Rows: 1, Cols: 2}}

	sheet := NewTransformer(nil).Transform(ws, nil)
	AutoMerge(sheet, []int{0}, nil)

	if m := sheet.Cell(0, 0).Merge; m == nil || *m != (models.Merge{0, 1}) {
		t.Errorf("expected template merge to be kept, got %v", m)
	}
	for r := 1; r < 3; r++ {
		if sheet.Cell(r, 0) == nil {
			t.Errorf("expected row %d to be kept", r)
		}
	}
	if !reflect.DeepEqual(sheet.Merges, []string{"A1:B1"}) {
		t.Errorf("unexpected merges: %v", sheet.Merges)
	}
}

func TestAutoMergeIsIdempotent(t *testing.T) {
	sheet := columnSheet([]string{"A", "A"})

	AutoMerge(sheet, []int{0, 0}, nil)

	if !reflect.DeepEqual(sheet.Merges, []string{"A1:A2"}) {
		t.Errorf("unexpected merges: %v", sheet.Merges)
	}
}
