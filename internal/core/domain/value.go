package domain

import (
	"strconv"
)

// ErrorCategory classifies a computed error value.
type ErrorCategory int

const (
	// CategoryRef marks a reference to a position outside the grid.
	CategoryRef ErrorCategory = iota
	// CategoryValue marks an operand that cannot be read as a number.
	CategoryValue
	// CategoryDiv0 marks a division by zero or a non-finite result.
	CategoryDiv0
	// CategoryArithmetic marks an uncategorized evaluation failure.
	CategoryArithmetic
)

// String returns the display form of the category.
func (c ErrorCategory) String() string {
	switch c {
	case CategoryRef:
		return "#REF!"
	case CategoryValue:
		return "#VALUE!"
	case CategoryDiv0:
		return "#DIV0!"
	default:
		return "#ARITHM!"
	}
}

// FormulaError is returned by formula evaluation for a categorized failure.
type FormulaError struct {
	Category ErrorCategory
}

// NewFormulaError returns a FormulaError of the given category.
func NewFormulaError(c ErrorCategory) *FormulaError {
	return &FormulaError{Category: c}
}

func (e *FormulaError) Error() string {
	return e.Category.String()
}

// Is matches any FormulaError of the same category.
func (e *FormulaError) Is(target error) bool {
	t, ok := target.(*FormulaError)
	return ok && t.Category == e.Category
}

// ValueKind tags the variant held by a Value.
type ValueKind uint8

const (
	// KindText is a string value.
	KindText ValueKind = iota
	// KindNumber is a floating point value.
	KindNumber
	// KindError is a computed error.
	KindError
)

func (k ValueKind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindError:
		return "error"
	default:
		return "text"
	}
}

// Value is the result a cell produces. The zero value is empty text.
type Value struct {
	kind     ValueKind
	text     string
	number   float64
	category ErrorCategory
}

// TextValue returns a text value.
func TextValue(s string) Value {
	return Value{kind: KindText, text: s}
}

// NumberValue returns a numeric value.
func NumberValue(f float64) Value {
	return Value{kind: KindNumber, number: f}
}

// ErrorValue returns a computed error value.
func ErrorValue(c ErrorCategory) Value {
	return Value{kind: KindError, category: c}
}

// Kind reports which variant v holds.
func (v Value) Kind() ValueKind { return v.kind }

// Text returns the string of a text value.
func (v Value) Text() string { return v.text }

// Number returns the number of a numeric value.
func (v Value) Number() float64 { return v.number }

// Category returns the category of an error value.
func (v Value) Category() ErrorCategory { return v.category }

// String renders v the way it is printed in a table.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return FormatNumber(v.number)
	case KindError:
		return v.category.String()
	default:
		return v.text
	}
}

// FormatNumber renders f with six significant digits, trimming trailing zeros.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', 6, 64)
}
