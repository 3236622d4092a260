// Package output serializes grid workbooks to and from JSON.
package output

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/ukaji3/xgrid-go/pkg/xgrid/models"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrEmptyInput is returned when decoding an empty document.
var ErrEmptyInput = errors.New("empty JSON input")

// ToJSON serializes a workbook view.
func ToJSON(wb *models.WorkbookView, pretty bool) ([]byte, error) {
	return marshal(wb, pretty)
}

// SheetToJSON serializes a single sheet.
func SheetToJSON(sheet *models.ViewSheet, pretty bool) ([]byte, error) {
	return marshal(sheet, pretty)
}

// SheetsToJSON serializes the bare sheet list consumed by the widget.
func SheetsToJSON(sheets []models.ViewSheet, pretty bool) ([]byte, error) {
	if sheets == nil {
		sheets = []models.ViewSheet{}
	}
	return marshal(sheets, pretty)
}

func marshal(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// DecodeSheets reads grid sheets from r. Both the workbook envelope
// ({"config": ..., "data": [...]}) and a bare sheet array are accepted.
func DecodeSheets(r io.Reader) ([]models.ViewSheet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	var sheets []models.ViewSheet
	switch data[0] {
	case '[':
		if err := json.Unmarshal(data, &sheets); err != nil {
			return nil, fmt.Errorf("failed to decode sheets: %w", err)
		}
	case '{':
		var wb models.WorkbookView
		if err := json.Unmarshal(data, &wb); err != nil {
			return nil, fmt.Errorf("failed to decode workbook: %w", err)
		}
		sheets = wb.Data
	default:
		return nil, fmt.Errorf("unexpected JSON document starting with %q", data[0])
	}

	for i := range sheets {
		normalize(&sheets[i])
	}
	return sheets, nil
}

// normalize replaces absent containers with empty ones.
func normalize(s *models.ViewSheet) {
	if s.Rows == nil {
		s.Rows = make(map[int]*models.ViewRow)
	}
	if s.Cols == nil {
		s.Cols = make(map[int]models.Column)
	}
	if s.Merges == nil {
		s.Merges = []string{}
	}
	if s.Styles == nil {
		s.Styles = []models.Style{}
	}
}
