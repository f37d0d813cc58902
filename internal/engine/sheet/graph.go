package sheet

import (
	"slices"
	"strings"

	"go.trai.ch/grid/internal/core/domain"
	"go.trai.ch/zerr"
)

// checkCircular reports whether giving target the references refs would close a cycle.
// It walks committed forward edges only and never mutates the store.
func (s *Store) checkCircular(target domain.Position, refs []domain.Position) error {
	parent := make(map[domain.Position]domain.Position, len(refs))
	stack := make([]domain.Position, 0, len(refs))

	for _, ref := range refs {
		if ref == target {
			return buildCycleError([]domain.Position{target, target})
		}
		if _, seen := parent[ref]; !seen {
			parent[ref] = target
			stack = append(stack, ref)
		}
	}

	for len(stack) > 0 {
		n := len(stack) - 1
		current := stack[n]
		stack = stack[:n]

		cell, ok := s.cells[current]
		if !ok {
			continue
		}
		for _, next := range cell.referenced.sorted() {
			if next == target {
				return buildCycleError(cyclePath(parent, target, current))
			}
			if _, seen := parent[next]; seen {
				continue
			}
			parent[next] = current
			stack = append(stack, next)
		}
	}
	return nil
}

// cyclePath rebuilds the path target -> ... -> last -> target from the parent links.
func cyclePath(parent map[domain.Position]domain.Position, target, last domain.Position) []domain.Position {
	path := []domain.Position{target}
	for at := last; at != target; at = parent[at] {
		path = append(path, at)
	}
	path = append(path, target)
	slices.Reverse(path[1 : len(path)-1])
	return path
}

func buildCycleError(path []domain.Position) error {
	labels := make([]string, len(path))
	for i, p := range path {
		labels[i] = p.String()
	}
	err := zerr.Wrap(domain.ErrCircularDependency, "formula would create a reference cycle")
	return zerr.With(err, "cycle", strings.Join(labels, " -> "))
}

// link records that from reads to, on both sides.
func (s *Store) link(from *Cell, to domain.Position) {
	dep := s.materialize(to)
	from.referenced[to] = struct{}{}
	dep.referencing[from.pos] = struct{}{}
}

// unlink removes the edge from -> to on both sides.
func (s *Store) unlink(from *Cell, to domain.Position) {
	delete(from.referenced, to)
	if dep, ok := s.cells[to]; ok {
		delete(dep.referencing, from.pos)
		s.prune(dep)
	}
}

// invalidate drops the cached value of c and of every cell that transitively reads it.
func (s *Store) invalidate(c *Cell) {
	visited := map[domain.Position]struct{}{c.pos: {}}
	queue := []*Cell{c}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		current.dropCache()

		for pos := range current.referencing {
			if _, seen := visited[pos]; seen {
				continue
			}
			visited[pos] = struct{}{}
			if dep, ok := s.cells[pos]; ok {
				queue = append(queue, dep)
			}
		}
	}
}

// prune forgets an empty cell that no formula reads any more.
func (s *Store) prune(c *Cell) {
	if c.IsEmpty() && len(c.referencing) == 0 && len(c.referenced) == 0 {
		delete(s.cells, c.pos)
	}
}
