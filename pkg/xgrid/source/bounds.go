package source

// findDataBounds returns the 1-based last row and last column holding a
// non-empty value, or zeros when the grid is empty.
func findDataBounds(rows [][]string) (lastRow, lastCol int) {
	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			lastRow = max(lastRow, rowIdx+1)
			lastCol = max(lastCol, colIdx+1)
		}
	}
	return
}

// extendBounds grows the bounds so that every merged range is covered.
func extendBounds(lastRow, lastCol int, merges []MergedRange) (int, int) {
	for _, m := range merges {
		lastRow = max(lastRow, m.Row+m.Rows-1)
		lastCol = max(lastCol, m.Col+m.Cols-1)
	}
	return lastRow, lastCol
}
