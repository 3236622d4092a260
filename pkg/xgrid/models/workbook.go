package models

// ViewConfig carries widget options sent alongside the sheet data.
type ViewConfig struct {
	// RowLen is the number of rows the widget allocates.
	RowLen int `json:"rowLen"`
	// ColLen is the number of columns the widget allocates.
	ColLen int `json:"colLen"`
	// Mode is "edit" or "read".
	Mode            string `json:"mode"`
	ShowToolbar     bool   `json:"showToolbar"`
	ShowGrid        bool   `json:"showGrid"`
	ShowContextmenu bool   `json:"showContextmenu"`
	ShowBottomBar   bool   `json:"showBottomBar"`
}

// NewViewConfig sizes the widget for the given used extent (1-based last
// row and column), leaving two spare rows and columns.
func NewViewConfig(lastRow, lastCol int) ViewConfig {
	return ViewConfig{
		RowLen:          max(lastRow, 1) + 2,
		ColLen:          max(lastCol, 1) + 2,
		Mode:            "edit",
		ShowToolbar:     true,
		ShowGrid:        true,
		ShowContextmenu: true,
		ShowBottomBar:   true,
	}
}

// WorkbookView is the response envelope of a conversion.
type WorkbookView struct {
	// Config holds widget options.
	Config ViewConfig `json:"config"`
	// Data contains one entry per worksheet, in workbook order.
	Data []ViewSheet `json:"data"`
}

// NewWorkbookView wraps sheets and derives the widget config from the
// largest sheet.
func NewWorkbookView(sheets []ViewSheet) *WorkbookView {
	lastRow, lastCol := 0, 0
	for i := range sheets {
		lastRow = max(lastRow, sheets[i].RowCount())
		lastCol = max(lastCol, sheets[i].ColCount())
	}
	if sheets == nil {
		sheets = []ViewSheet{}
	}
	return &WorkbookView{
		Config: NewViewConfig(lastRow, lastCol),
		Data:   sheets,
	}
}
