package sheet

import (
	"maps"
	"slices"

	"go.trai.ch/grid/internal/core/domain"
)

// positionSet is a set of cell addresses. Edges between cells are stored as positions, never pointers.
type positionSet map[domain.Position]struct{}

func (s positionSet) sorted() []domain.Position {
	return slices.SortedFunc(maps.Keys(s), domain.Position.Compare)
}

// Cell is a single addressable cell owned by a Store.
// A nil *Cell behaves as an empty cell.
type Cell struct {
	store   *Store
	pos     domain.Position
	content content

	cache  domain.Value
	cached bool

	// referenced holds the cells this cell's formula reads.
	referenced positionSet
	// referencing holds the cells whose formulas read this cell.
	referencing positionSet
}

func newCell(store *Store, pos domain.Position) *Cell {
	return &Cell{
		store:       store,
		pos:         pos,
		content:     emptyContent{},
		referenced:  make(positionSet),
		referencing: make(positionSet),
	}
}

// Position returns the address of the cell.
func (c *Cell) Position() domain.Position {
	if c == nil {
		return domain.PositionNone
	}
	return c.pos
}

// Value returns the computed value of the cell.
// The result is memoized until the cell or one of its inputs changes, so the first
// read after a change evaluates the formula and populates the cache.
func (c *Cell) Value() domain.Value {
	if c == nil {
		return domain.TextValue("")
	}
	if c.cached {
		return c.cache
	}
	c.cache = contentValue(c.content, c.store)
	c.cached = true
	return c.cache
}

// Text returns the text the cell was set to, with formulas in canonical form.
func (c *Cell) Text() string {
	if c == nil {
		return ""
	}
	return contentText(c.content)
}

// ReferencedCells returns the sorted positions the cell's formula reads.
func (c *Cell) ReferencedCells() []domain.Position {
	if c == nil {
		return nil
	}
	return contentRefs(c.content)
}

// IsEmpty reports whether the cell holds no content.
func (c *Cell) IsEmpty() bool {
	if c == nil {
		return true
	}
	_, ok := c.content.(emptyContent)
	return ok
}

// IsFormula reports whether the cell holds a formula.
func (c *Cell) IsFormula() bool {
	if c == nil {
		return false
	}
	_, ok := c.content.(formulaContent)
	return ok
}

func (c *Cell) dropCache() {
	c.cache = domain.Value{}
	c.cached = false
}
