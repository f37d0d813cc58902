// Package sheet implements the spreadsheet store: cells, their dependency graph and value caching.
package sheet

import (
	"iter"
	"maps"
	"slices"

	"go.trai.ch/grid/internal/core/domain"
	"go.trai.ch/grid/internal/core/ports"
	"go.trai.ch/zerr"
)

// Store owns every cell of a sheet. It is not safe for concurrent use.
type Store struct {
	parser      ports.FormulaParser
	cells       map[domain.Position]*Cell
	bottomRight domain.Position
}

// New creates an empty Store that parses formulas with parser.
func New(parser ports.FormulaParser) *Store {
	return &Store{
		parser:      parser,
		cells:       make(map[domain.Position]*Cell),
		bottomRight: domain.PositionNone,
	}
}

// SetCell stores text at pos.
// Text beginning with '=' followed by at least one character is parsed as a formula.
// A rejected set leaves the store unchanged.
func (s *Store) SetCell(pos domain.Position, text string) error {
	if err := validate(pos); err != nil {
		return err
	}

	next, err := classify(s.parser, text)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to parse formula"), "position", pos.String())
	}
	if err := s.checkCircular(pos, contentRefs(next)); err != nil {
		return zerr.With(err, "position", pos.String())
	}

	s.commit(s.materialize(pos), next)
	s.widen(pos)
	return nil
}

// GetCell returns the cell at pos, or nil if nothing was ever stored or referenced there.
// A nil *Cell reads as an empty cell.
func (s *Store) GetCell(pos domain.Position) (*Cell, error) {
	if err := validate(pos); err != nil {
		return nil, err
	}
	return s.cells[pos], nil
}

// ClearCell empties the cell at pos. Formulas reading it see an empty cell from then on.
func (s *Store) ClearCell(pos domain.Position) error {
	if err := validate(pos); err != nil {
		return err
	}

	c, ok := s.cells[pos]
	if !ok {
		return nil
	}
	s.commit(c, emptyContent{})
	s.prune(c)

	if pos.Row == s.bottomRight.Row || pos.Col == s.bottomRight.Col {
		s.rescan()
	}
	return nil
}

// PrintableSize returns the size of the smallest rectangle anchored at A1 covering every non-empty cell.
func (s *Store) PrintableSize() domain.Size {
	if s.bottomRight == domain.PositionNone {
		return domain.Size{}
	}
	return domain.Size{Rows: s.bottomRight.Row + 1, Cols: s.bottomRight.Col + 1}
}

// Lookup implements ports.SheetView.
func (s *Store) Lookup(pos domain.Position) (ports.CellView, bool) {
	c, ok := s.cells[pos]
	if !ok {
		return nil, false
	}
	return c, true
}

// Cells yields every non-empty cell in row-major order.
func (s *Store) Cells() iter.Seq2[domain.Position, ports.CellView] {
	return func(yield func(domain.Position, ports.CellView) bool) {
		for _, pos := range slices.SortedFunc(maps.Keys(s.cells), domain.Position.Compare) {
			c := s.cells[pos]
			if c.IsEmpty() {
				continue
			}
			if !yield(pos, c) {
				return
			}
		}
	}
}

// Dependents returns the positions whose formulas read pos directly, sorted row-major.
func (s *Store) Dependents(pos domain.Position) []domain.Position {
	c, ok := s.cells[pos]
	if !ok || len(c.referencing) == 0 {
		return nil
	}
	return c.referencing.sorted()
}

func validate(pos domain.Position) error {
	if pos.IsValid() {
		return nil
	}
	err := zerr.Wrap(domain.ErrInvalidPosition, "position is outside the grid")
	return zerr.With(zerr.With(err, "row", pos.Row), "col", pos.Col)
}

// materialize returns the cell at pos, creating an empty one if needed.
func (s *Store) materialize(pos domain.Position) *Cell {
	if c, ok := s.cells[pos]; ok {
		return c
	}
	c := newCell(s, pos)
	s.cells[pos] = c
	return c
}

// commit replaces the content of c, rewires its forward edges and invalidates everything downstream.
func (s *Store) commit(c *Cell, next content) {
	refs := contentRefs(next)
	for _, ref := range refs {
		s.link(c, ref)
	}

	c.content = next

	for _, stale := range c.referenced.sorted() {
		if _, keep := slices.BinarySearchFunc(refs, stale, domain.Position.Compare); !keep {
			s.unlink(c, stale)
		}
	}

	s.invalidate(c)
}

func (s *Store) widen(pos domain.Position) {
	if s.bottomRight == domain.PositionNone {
		s.bottomRight = pos
		return
	}
	s.bottomRight.Row = max(s.bottomRight.Row, pos.Row)
	s.bottomRight.Col = max(s.bottomRight.Col, pos.Col)
}

func (s *Store) rescan() {
	s.bottomRight = domain.PositionNone
	for pos, c := range s.cells {
		if !c.IsEmpty() {
			s.widen(pos)
		}
	}
}
