package sheet

import (
	"errors"
	"slices"
	"strings"

	"go.trai.ch/grid/internal/core/domain"
	"go.trai.ch/grid/internal/core/ports"
)

const (
	formulaSign = '='
	escapeSign  = '\''
)

// content is what a cell holds. The variants are emptyContent, textContent and formulaContent.
type content interface {
	sealed()
}

type emptyContent struct{}

type textContent struct {
	raw string
}

type formulaContent struct {
	formula ports.Formula
	refs    []domain.Position
}

func (emptyContent) sealed()   {}
func (textContent) sealed()    {}
func (formulaContent) sealed() {}

// classify turns raw input into content, parsing formulas with parser.
func classify(parser ports.FormulaParser, text string) (content, error) {
	if len(text) > 1 && text[0] == formulaSign {
		f, err := parser.Parse(text[1:])
		if err != nil {
			return nil, err
		}
		return formulaContent{formula: f, refs: normalizeRefs(f.ReferencedCells())}, nil
	}
	return textContent{raw: text}, nil
}

// normalizeRefs drops positions outside the grid, then sorts and deduplicates the rest.
func normalizeRefs(refs []domain.Position) []domain.Position {
	out := make([]domain.Position, 0, len(refs))
	for _, p := range refs {
		if p.IsValid() {
			out = append(out, p)
		}
	}
	slices.SortFunc(out, domain.Position.Compare)
	return slices.Compact(out)
}

func contentText(c content) string {
	switch c := c.(type) {
	case emptyContent:
		return ""
	case textContent:
		return c.raw
	case formulaContent:
		return string(formulaSign) + c.formula.Expression()
	default:
		panic("sheet: unknown content variant")
	}
}

func contentValue(c content, view ports.SheetView) domain.Value {
	switch c := c.(type) {
	case emptyContent:
		return domain.TextValue("")
	case textContent:
		return domain.TextValue(strings.TrimPrefix(c.raw, string(escapeSign)))
	case formulaContent:
		return evaluate(c.formula, view)
	default:
		panic("sheet: unknown content variant")
	}
}

func contentRefs(c content) []domain.Position {
	switch c := c.(type) {
	case emptyContent, textContent:
		return nil
	case formulaContent:
		return slices.Clone(c.refs)
	default:
		panic("sheet: unknown content variant")
	}
}

func evaluate(f ports.Formula, view ports.SheetView) domain.Value {
	n, err := f.Evaluate(view)
	if err == nil {
		return domain.NumberValue(n)
	}
	var fe *domain.FormulaError
	if errors.As(err, &fe) {
		return domain.ErrorValue(fe.Category)
	}
	return domain.ErrorValue(domain.CategoryArithmetic)
}
