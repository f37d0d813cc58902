package formula

import (
	"math"
	"strconv"
	"strings"

	"go.trai.ch/grid/internal/core/domain"
	"go.trai.ch/grid/internal/core/ports"
)

// Binding strength of each node kind, used for rendering.
const (
	precAdditive = iota + 1
	precMultiplicative
	precUnary
	precAtom
)

// expr is a node of the expression tree. The set of node kinds is closed.
type expr interface {
	eval(view ports.SheetView) (float64, error)
	render(sb *strings.Builder)
	collect(refs []domain.Position) []domain.Position
	precedence() int
}

type numberExpr struct {
	value float64
}

type refExpr struct {
	pos   domain.Position
	label string
}

type unaryExpr struct {
	op      byte
	operand expr
}

type binaryExpr struct {
	op          byte
	left, right expr
}

func (n numberExpr) eval(ports.SheetView) (float64, error) { return n.value, nil }

func (n numberExpr) render(sb *strings.Builder) {
	// Upper-case exponent so the rendering tokenizes back to the same literal.
	sb.WriteString(strings.ToUpper(domain.FormatNumber(n.value)))
}

func (n numberExpr) collect(refs []domain.Position) []domain.Position { return refs }

func (numberExpr) precedence() int { return precAtom }

func (r refExpr) eval(view ports.SheetView) (float64, error) {
	if !r.pos.IsValid() {
		return 0, domain.NewFormulaError(domain.CategoryRef)
	}
	cell, ok := view.Lookup(r.pos)
	if !ok || cell == nil {
		return 0, nil
	}
	return numericValue(cell.Value())
}

func (r refExpr) render(sb *strings.Builder) {
	sb.WriteString(r.label)
}

func (r refExpr) collect(refs []domain.Position) []domain.Position {
	return append(refs, r.pos)
}

func (refExpr) precedence() int { return precAtom }

func (u unaryExpr) eval(view ports.SheetView) (float64, error) {
	v, err := u.operand.eval(view)
	if err != nil {
		return 0, err
	}
	if u.op == '-' {
		return -v, nil
	}
	return v, nil
}

func (u unaryExpr) render(sb *strings.Builder) {
	sb.WriteByte(u.op)
	renderOperand(sb, u.operand, u.operand.precedence() < precUnary)
}

func (u unaryExpr) collect(refs []domain.Position) []domain.Position {
	return u.operand.collect(refs)
}

func (unaryExpr) precedence() int { return precUnary }

func (b binaryExpr) eval(view ports.SheetView) (float64, error) {
	l, err := b.left.eval(view)
	if err != nil {
		return 0, err
	}
	r, err := b.right.eval(view)
	if err != nil {
		return 0, err
	}

	var out float64
	switch b.op {
	case '+':
		out = l + r
	case '-':
		out = l - r
	case '*':
		out = l * r
	case '/':
		if r == 0 {
			return 0, domain.NewFormulaError(domain.CategoryDiv0)
		}
		out = l / r
	}

	if math.IsInf(out, 0) || math.IsNaN(out) {
		return 0, domain.NewFormulaError(domain.CategoryDiv0)
	}
	return out, nil
}

func (b binaryExpr) render(sb *strings.Builder) {
	prec := b.precedence()
	renderOperand(sb, b.left, b.left.precedence() < prec)
	sb.WriteByte(b.op)

	rp := b.right.precedence()
	// '-' and '/' are not associative: a-(b-c) and a/(b*c) keep their parentheses.
	wrap := rp < prec || (rp == prec && (b.op == '-' || b.op == '/'))
	renderOperand(sb, b.right, wrap)
}

func (b binaryExpr) collect(refs []domain.Position) []domain.Position {
	return b.right.collect(b.left.collect(refs))
}

func (b binaryExpr) precedence() int {
	if b.op == '*' || b.op == '/' {
		return precMultiplicative
	}
	return precAdditive
}

func renderOperand(sb *strings.Builder, e expr, parens bool) {
	if parens {
		sb.WriteByte('(')
	}
	e.render(sb)
	if parens {
		sb.WriteByte(')')
	}
}

// numericValue reads a referenced cell's value as a number.
func numericValue(v domain.Value) (float64, error) {
	switch v.Kind() {
	case domain.KindNumber:
		return v.Number(), nil
	case domain.KindError:
		return 0, domain.NewFormulaError(v.Category())
	default:
		text := v.Text()
		if text == "" {
			return 0, nil
		}
		f, err := strconv.ParseFloat(text, 64)
		if err != nil || !isDecimalLiteral(text) || math.IsInf(f, 0) || math.IsNaN(f) {
			return 0, domain.NewFormulaError(domain.CategoryValue)
		}
		return f, nil
	}
}
