// Package domain holds the core value types of the grid: positions, values and errors.
package domain

import (
	"cmp"
	"strconv"
)

const (
	// MaxRows is the number of addressable rows.
	MaxRows = 16384
	// MaxCols is the number of addressable columns.
	MaxCols = 16384

	letters         = 26
	maxLabelLetters = 3
	maxLabelDigits  = 5
)

// PositionNone is the sentinel returned for labels that do not address a cell.
var PositionNone = Position{Row: -1, Col: -1}

// Position is a zero-based cell address.
type Position struct {
	Row int
	Col int
}

// Size is the extent of the printable area of a sheet.
type Size struct {
	Rows int
	Cols int
}

// IsValid reports whether p lies inside the grid.
func (p Position) IsValid() bool {
	return p.Row >= 0 && p.Col >= 0 && p.Row < MaxRows && p.Col < MaxCols
}

// Less orders positions row by row.
func (p Position) Less(other Position) bool {
	return p.Compare(other) < 0
}

// Compare returns -1, 0 or +1 following row-major order.
func (p Position) Compare(other Position) int {
	if c := cmp.Compare(p.Row, other.Row); c != 0 {
		return c
	}
	return cmp.Compare(p.Col, other.Col)
}

// String renders p as a label such as "A1" or "AB12".
// Invalid positions render as the empty string.
func (p Position) String() string {
	if !p.IsValid() {
		return ""
	}

	var buf [maxLabelLetters + maxLabelDigits]byte
	i := maxLabelLetters
	// Bijective base-26: each step consumes one "digit" with no zero symbol.
	for col := p.Col + 1; col > 0; col = (col - 1) / letters {
		i--
		buf[i] = byte('A' + (col-1)%letters)
	}

	return string(buf[i:maxLabelLetters]) + strconv.Itoa(p.Row+1)
}

// MarshalText implements encoding.TextMarshaler.
func (p Position) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// ParsePosition decodes a label into a Position.
// Any malformed or out-of-range label yields PositionNone.
func ParsePosition(label string) Position {
	n := 0
	for n < len(label) && label[n] >= 'A' && label[n] <= 'Z' {
		n++
	}
	if n == 0 || n > maxLabelLetters {
		return PositionNone
	}

	digits := label[n:]
	if digits == "" || len(digits) > maxLabelDigits {
		return PositionNone
	}
	row := 0
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c < '0' || c > '9' {
			return PositionNone
		}
		row = row*10 + int(c-'0')
	}

	col := 0
	for i := 0; i < n; i++ {
		col = col*letters + int(label[i]-'A'+1)
	}

	p := Position{Row: row - 1, Col: col - 1}
	if !p.IsValid() {
		return PositionNone
	}
	return p
}
