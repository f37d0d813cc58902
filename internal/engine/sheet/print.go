package sheet

import (
	"bufio"
	"io"

	"go.trai.ch/grid/internal/core/domain"
)

// PrintValues writes the computed value of every cell in the printable rectangle.
// Columns are separated by tabs and every row ends with a newline.
func (s *Store) PrintValues(w io.Writer) error {
	return s.print(w, func(c *Cell) string { return c.Value().String() })
}

// PrintTexts writes the stored text of every cell in the printable rectangle, in the layout of PrintValues.
func (s *Store) PrintTexts(w io.Writer) error {
	return s.print(w, (*Cell).Text)
}

func (s *Store) print(w io.Writer, render func(*Cell) string) error {
	size := s.PrintableSize()
	bw := bufio.NewWriter(w)

	for row := range size.Rows {
		for col := range size.Cols {
			if col > 0 {
				_ = bw.WriteByte('\t')
			}
			// A nil cell renders as empty.
			_, _ = bw.WriteString(render(s.cells[domain.Position{Row: row, Col: col}]))
		}
		_ = bw.WriteByte('\n')
	}
	return bw.Flush()
}
