package ports

import "go.trai.ch/grid/internal/core/domain"

//go:generate mockgen -source=formula.go -destination=mocks/mock_formula.go -package=mocks

// FormulaParser turns formula source text into an evaluable expression.
type FormulaParser interface {
	// Parse parses expr, which excludes the leading '='.
	// Failures wrap domain.ErrFormulaSyntax.
	Parse(expr string) (Formula, error)
}

// Formula is a parsed expression.
type Formula interface {
	// Evaluate computes the expression against the given view.
	// A categorized failure is returned as *domain.FormulaError.
	Evaluate(view SheetView) (float64, error)
	// ReferencedCells lists the positions the expression reads.
	// The result may contain duplicates and positions outside the grid.
	ReferencedCells() []domain.Position
	// Expression renders the expression in canonical form, without the leading '='.
	Expression() string
}

// SheetView is the read-only access a formula has to the sheet.
type SheetView interface {
	// Lookup returns the cell at pos, or false if none was ever materialized there.
	Lookup(pos domain.Position) (CellView, bool)
}

// CellView is the read-only surface of a cell.
type CellView interface {
	Value() domain.Value
	Text() string
	ReferencedCells() []domain.Position
}
