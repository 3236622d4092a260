package models

import (
	"strings"

	"github.com/ukaji3/xgrid-go/pkg/xgrid/address"
)

// Overlay is an externally supplied value written over a template cell.
type Overlay struct {
	// Address is the A1 reference of the target cell (upper-case).
	Address string `json:"address" yaml:"address"`
	// Row is the 1-based row of the target cell.
	Row int `json:"row,omitempty" yaml:"row,omitempty"`
	// Col is the 1-based column of the target cell.
	Col int `json:"col,omitempty" yaml:"col,omitempty"`
	// Value replaces the cell text. A leading "=" denotes a formula.
	Value string `json:"value" yaml:"value"`
	// Editable replaces the cell's editable flag.
	Editable bool `json:"editable" yaml:"editable"`
}

// NewOverlay builds an overlay from an A1 address. Row and Col are derived
// once from the address.
func NewOverlay(addr, value string, editable bool) (Overlay, error) {
	row, col, err := address.ToCoordinates(addr, address.OneBased)
	if err != nil {
		return Overlay{}, err
	}
	return Overlay{
		Address:  strings.ToUpper(addr),
		Row:      row,
		Col:      col,
		Value:    value,
		Editable: editable,
	}, nil
}

// NewOverlayAt builds an overlay from 1-based coordinates.
func NewOverlayAt(row, col int, value string, editable bool) (Overlay, error) {
	addr, err := address.ToAddress(row, col, address.OneBased)
	if err != nil {
		return Overlay{}, err
	}
	return Overlay{
		Address:  addr,
		Row:      row,
		Col:      col,
		Value:    value,
		Editable: editable,
	}, nil
}

// HasPosition reports whether Row and Col are both set.
func (o Overlay) HasPosition() bool {
	return o.Row > 0 && o.Col > 0
}
