package xgrid

import (
	"fmt"
	"io"

	"github.com/ukaji3/xgrid-go/pkg/xgrid/models"
	"github.com/ukaji3/xgrid-go/pkg/xgrid/output"
	"github.com/ukaji3/xgrid-go/pkg/xgrid/writer"
)

// Export writes grid sheets as an xlsx workbook to w.
func Export(sheets []models.ViewSheet, w io.Writer) error {
	f, err := writer.Write(sheets)
	if err != nil {
		return NewConversionError("", "write", err)
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return NewConversionError("", "write", err)
	}
	return nil
}

// ExportFile writes grid sheets as an xlsx workbook at path.
func ExportFile(sheets []models.ViewSheet, path string) error {
	f, err := writer.Write(sheets)
	if err != nil {
		return NewConversionError("", "write", err)
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return NewConversionError("", "write", err)
	}
	return nil
}

// ExportJSON reads grid JSON from r and writes the rebuilt workbook to w.
func ExportJSON(r io.Reader, w io.Writer) error {
	sheets, err := output.DecodeSheets(r)
	if err != nil {
		return fmt.Errorf("failed to read grid data: %w", err)
	}
	return Export(sheets, w)
}
