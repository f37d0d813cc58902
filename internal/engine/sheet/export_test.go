package sheet

import "go.trai.ch/grid/internal/core/domain"

// IsCached reports whether the cell at pos holds a memoized value.
// This is exported for testing purposes only.
func (s *Store) IsCached(pos domain.Position) bool {
	c, ok := s.cells[pos]
	return ok && c.cached
}

// Materialized reports whether a cell object exists at pos.
// This is exported for testing purposes only.
func (s *Store) Materialized(pos domain.Position) bool {
	_, ok := s.cells[pos]
	return ok
}

// References returns the forward and backward edges of the cell at pos.
// This is exported for testing purposes only.
func (s *Store) References(pos domain.Position) (referenced, referencing []domain.Position) {
	c, ok := s.cells[pos]
	if !ok {
		return nil, nil
	}
	return c.referenced.sorted(), c.referencing.sorted()
}
