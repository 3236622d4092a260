package parser

import (
	"github.com/ukaji3/xgrid-go/pkg/xgrid/address"
	"github.com/ukaji3/xgrid-go/pkg/xgrid/models"
	"github.com/ukaji3/xgrid-go/pkg/xgrid/source"
	"github.com/ukaji3/xgrid-go/pkg/xgrid/style"
	"go.uber.org/zap"
)

// Transformer converts workbook sheets into grid sheets.
type Transformer struct {
	log *zap.Logger
}

// NewTransformer returns a Transformer logging to log (nil disables logging).
func NewTransformer(log *zap.Logger) *Transformer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Transformer{log: log}
}

// Transform builds the grid sheet of ws. Every cell of the used rectangle
// is materialized. Overlay values replace the text and editable flag of
// the cells they address.
func (t *Transformer) Transform(ws source.Sheet, overlays []models.Overlay) *models.ViewSheet {
	name := ws.Name()
	lastRow, lastCol := ws.LastUsedRow(), ws.LastUsedColumn()
	log := t.log.With(zap.String("sheet", name))

	sheet := models.NewViewSheet(name)
	styles := style.NewTable()

	for c := 1; c <= lastCol; c++ {
		sheet.Cols[c-1] = models.Column{Width: ColumnWidthToPixels(ws.ColumnWidth(c))}
	}

	templateMerges := make(map[string]models.Merge)
	for _, m := range ws.MergedRanges() {
		templateMerges[m.TopLeft] = models.Merge{m.Rows - 1, m.Cols - 1}
		sheet.Merges = append(sheet.Merges, m.Ref)
	}

	idx := newOverlayIndex(overlays)
	applied := 0

	for r1 := 1; r1 <= lastRow; r1++ {
		row := &models.ViewRow{
			Cells:  make(map[int]*models.ViewCell, lastCol),
			Height: RowHeightToPixels(ws.RowHeight(r1)),
		}

		for c1 := 1; c1 <= lastCol; c1++ {
			cell := ws.Cell(r1, c1)
			ref := address.MustAddress(r1, c1, address.OneBased)

			vc := &models.ViewCell{
				Text:     CellText(cell),
				Style:    styles.Intern(style.Build(cell.Style)),
				Editable: true,
			}

			if !idx.empty() {
				if o := idx.lookup(r1, c1, ref); o != nil {
					vc.Text = o.Value
					vc.Editable = o.Editable
					applied++
				}
			}

			if m, ok := templateMerges[ref]; ok {
				vc.Merge = &m
			}

			row.Cells[c1-1] = vc
		}

		sheet.Rows[r1-1] = row
	}

	sheet.Styles = styles.Styles()

	log.Debug("sheet transformed",
		zap.Int("rows", lastRow),
		zap.Int("cols", lastCol),
		zap.Int("styles", len(sheet.Styles)),
		zap.Int("merges", len(sheet.Merges)),
		zap.Int("overlays", applied))

	return sheet
}
