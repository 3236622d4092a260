package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/xgrid-go/pkg/xgrid/address"
	"github.com/ukaji3/xgrid-go/pkg/xgrid/models"
	"go.uber.org/zap"
)

// run is a group of consecutive rows sharing the same text in one column.
type run struct {
	start, end int // 0-based, inclusive
	text       string
}

// AutoMerge merges vertical runs of identical, non-blank text in the given
// 0-based columns. The top cell of each run receives a row span and the
// cells below it are removed from the sheet. Runs whose top cell already
// belongs to a template merge are left untouched.
func AutoMerge(sheet *models.ViewSheet, cols []int, log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.String("sheet", sheet.Name))

	rowCount := sheet.RowCount()
	colCount := sheet.ColCount()

	for _, col := range cols {
		if col < 0 || col >= colCount {
			log.Debug("merge column outside sheet", zap.Int("col", col))
			continue
		}
		for _, g := range findRuns(sheet, col, rowCount) {
			mergeRun(sheet, col, g, log)
		}
	}
}

// findRuns scans rows [0, rowCount) of col. A missing row or cell ends
// the current run.
func findRuns(sheet *models.ViewSheet, col, rowCount int) []run {
	var runs []run
	var cur *run

	flush := func() {
		if cur != nil && cur.end > cur.start {
			runs = append(runs, *cur)
		}
		cur = nil
	}

	for r := 0; r < rowCount; r++ {
		cell := sheet.Cell(r, col)
		if cell == nil || isBlank(cell.Text) {
			flush()
			continue
		}
		if cur != nil && cur.text == cell.Text && cur.end == r-1 {
			cur.end = r
			continue
		}
		flush()
		cur = &run{start: r, end: r, text: cell.Text}
	}
	flush()

	return runs
}

func mergeRun(sheet *models.ViewSheet, col int, g run, log *zap.Logger) {
	top := sheet.Cell(g.start, col)
	letter := address.ColumnName(col + 1)
	ref := fmt.Sprintf("%s%d:%s%d", letter, g.start+1, letter, g.end+1)

	if top.Merge != nil {
		log.Debug("skipping run inside template merge", zap.String("range", ref))
		return
	}

	top.Merge = &models.Merge{g.end - g.start, 0}
	for r := g.start + 1; r <= g.end; r++ {
		delete(sheet.Rows[r].Cells, col)
	}

	if !sheet.AddMerge(ref) {
		log.Debug("merge already recorded", zap.String("range", ref))
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
