package xgrid

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrInvalidOptions indicates the conversion options failed validation.
var ErrInvalidOptions = errors.New("invalid options")

// ConversionError represents an error during conversion.
type ConversionError struct {
	SheetName string
	Component string // "read", "transform", "merge", "write"
	Err       error
}

func (e *ConversionError) Error() string {
	if e.SheetName == "" {
		return fmt.Sprintf("conversion error (%s): %v", e.Component, e.Err)
	}
	return fmt.Sprintf("conversion error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// NewConversionError creates a new ConversionError.
func NewConversionError(sheetName, component string, err error) *ConversionError {
	return &ConversionError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
