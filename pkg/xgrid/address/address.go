// Package address converts between A1-style cell references and numeric
// row/column coordinates.
package address

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// IndexMode selects the origin of numeric coordinates.
type IndexMode int

const (
	// OneBased coordinates start at 1 (A1 -> 1, 1). This is the default.
	OneBased IndexMode = iota
	// ZeroBased coordinates start at 0 (A1 -> 0, 0).
	ZeroBased
)

// String returns the mode name.
func (m IndexMode) String() string {
	if m == ZeroBased {
		return "zero-based"
	}
	return "one-based"
}

func (m IndexMode) min() int {
	if m == ZeroBased {
		return 0
	}
	return 1
}

var cellPattern = regexp.MustCompile(`^([A-Z]+)([0-9]+)$`)

// FormatError reports a malformed cell address.
type FormatError struct {
	Address string
	Reason  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid cell address %q: %s", e.Address, e.Reason)
}

// RangeError reports coordinates below the minimum index of their mode.
type RangeError struct {
	Row  int
	Col  int
	Mode IndexMode
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("coordinates (%d, %d) out of range for %s mode", e.Row, e.Col, e.Mode)
}

// ToCoordinates parses an A1 reference such as "B12" into (row, col).
// Matching is case-insensitive. Column letters are bijective base-26
// (A=1 ... Z=26, AA=27).
func ToCoordinates(addr string, mode IndexMode) (row, col int, err error) {
	m := cellPattern.FindStringSubmatch(strings.ToUpper(addr))
	if m == nil {
		return 0, 0, &FormatError{Address: addr, Reason: "expected column letters followed by a row number"}
	}

	row, err = strconv.Atoi(m[2])
	if err != nil {
		return 0, 0, &FormatError{Address: addr, Reason: "row number overflows"}
	}
	if row < 1 {
		return 0, 0, &FormatError{Address: addr, Reason: "row number must be at least 1"}
	}

	for _, ch := range m[1] {
		if col > (math.MaxInt-26)/26 {
			return 0, 0, &FormatError{Address: addr, Reason: "column letters overflow"}
		}
		col = col*26 + int(ch-'A'+1)
	}

	if mode == ZeroBased {
		return row - 1, col - 1, nil
	}
	return row, col, nil
}

// ToAddress renders (row, col) in the given mode as an A1 reference.
func ToAddress(row, col int, mode IndexMode) (string, error) {
	if row < mode.min() || col < mode.min() {
		return "", &RangeError{Row: row, Col: col, Mode: mode}
	}
	if mode == ZeroBased {
		row++
		col++
	}
	return ColumnName(col) + strconv.Itoa(row), nil
}

// MustAddress is ToAddress for coordinates already known to be valid.
func MustAddress(row, col int, mode IndexMode) string {
	s, err := ToAddress(row, col, mode)
	if err != nil {
		panic(err)
	}
	return s
}

// ColumnName returns the letters of a 1-based column number, or "" when
// col < 1.
func ColumnName(col int) string {
	var buf [16]byte
	i := len(buf)
	for col > 0 {
		col--
		i--
		buf[i] = byte('A' + col%26)
		col /= 26
	}
	return string(buf[i:])
}
