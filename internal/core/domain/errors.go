package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidPosition is returned when a position outside the grid is passed to the sheet.
	ErrInvalidPosition = zerr.New("invalid position")

	// ErrFormulaSyntax is returned when formula text cannot be parsed.
	ErrFormulaSyntax = zerr.New("formula syntax error")

	// ErrCircularDependency is returned when a formula would make a cell depend on itself.
	ErrCircularDependency = zerr.New("circular dependency")

	// ErrTableTooBig is returned when a table to print exceeds the configured cell limit.
	ErrTableTooBig = zerr.New("table too big")

	// ErrScriptNotFound is returned when a script pattern matches no files.
	ErrScriptNotFound = zerr.New("script not found")

	// ErrInvalidScript is returned when a script file fails validation.
	ErrInvalidScript = zerr.New("invalid script")

	// ErrInvalidAssignment is returned when an inline assignment is not of the form CELL=TEXT.
	ErrInvalidAssignment = zerr.New("invalid assignment")
)
