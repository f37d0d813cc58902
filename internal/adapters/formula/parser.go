// Package formula implements the formula language on top of the efp tokenizer.
package formula

import (
	"math"
	"strconv"
	"strings"

	"github.com/xuri/efp"
	"go.trai.ch/grid/internal/core/domain"
	"go.trai.ch/grid/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultCacheSize is the number of parsed expressions kept by New.
const DefaultCacheSize = 1024

// Parser implements ports.FormulaParser.
type Parser struct {
	cache *Cache
}

// New creates a Parser backed by a cache of DefaultCacheSize entries.
func New() *Parser {
	return NewWithCache(NewCache(DefaultCacheSize))
}

// NewWithCache creates a Parser that memoizes parsed expressions in cache.
// A nil cache disables memoization.
func NewWithCache(cache *Cache) *Parser {
	return &Parser{cache: cache}
}

// Parse parses expr, the formula text without its leading '='.
func (p *Parser) Parse(expr string) (ports.Formula, error) {
	if p.cache != nil {
		if f, ok := p.cache.Get(expr); ok {
			return f, nil
		}
	}

	root, err := parseExpression(expr)
	if err != nil {
		return nil, zerr.With(err, "expression", expr)
	}

	f := &Formula{root: root}
	if p.cache != nil {
		p.cache.Put(expr, f)
	}
	return f, nil
}

// Formula is an immutable parsed expression. It implements ports.Formula.
type Formula struct {
	root expr
}

// Evaluate computes the expression against view.
func (f *Formula) Evaluate(view ports.SheetView) (float64, error) {
	return f.root.eval(view)
}

// ReferencedCells lists the referenced positions in source order.
// Labels outside the grid appear as domain.PositionNone.
func (f *Formula) ReferencedCells() []domain.Position {
	return f.root.collect(nil)
}

// Expression renders the expression with the minimum parentheses needed.
func (f *Formula) Expression() string {
	var sb strings.Builder
	f.root.render(&sb)
	return sb.String()
}

// tokenParser is a recursive descent parser over efp tokens:
//
//	expression = term { ("+" | "-") term }
//	term       = unary { ("*" | "/") unary }
//	unary      = "-" unary | primary
//	primary    = number | cell | "(" expression ")"
//
// efp turns a prefix "+" into a no-op token, so unary plus is accepted as the identity and is not kept
// in the tree: "+5" renders as "5".
type tokenParser struct {
	tokens []efp.Token
	pos    int
}

func parseExpression(source string) (expr, error) {
	ps := efp.ExcelParser()
	tokens := ps.Parse("=" + source)

	// efp reports the leading '=' as an infix operator.
	if len(tokens) > 0 && tokens[0].TType == efp.TokenTypeOperatorInfix && tokens[0].TValue == "=" {
		tokens = tokens[1:]
	}

	p := &tokenParser{tokens: tokens}
	root, err := p.expression()
	if err != nil {
		return nil, err
	}
	if tok, ok := p.peek(); ok {
		return nil, syntaxError("unexpected token", tok)
	}
	return root, nil
}

func (p *tokenParser) peek() (efp.Token, bool) {
	if p.pos >= len(p.tokens) {
		return efp.Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *tokenParser) infix(ops string) (byte, bool) {
	tok, ok := p.peek()
	if !ok || tok.TType != efp.TokenTypeOperatorInfix || tok.TSubType != efp.TokenSubTypeMath {
		return 0, false
	}
	if len(tok.TValue) != 1 || !strings.Contains(ops, tok.TValue) {
		return 0, false
	}
	p.pos++
	return tok.TValue[0], true
}

func (p *tokenParser) expression() (expr, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.infix("+-")
		if !ok {
			return left, nil
		}
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		left = binaryExpr{op: op, left: left, right: right}
	}
}

func (p *tokenParser) term() (expr, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.infix("*/")
		if !ok {
			return left, nil
		}
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		left = binaryExpr{op: op, left: left, right: right}
	}
}

func (p *tokenParser) unary() (expr, error) {
	tok, ok := p.peek()
	if ok && tok.TType == efp.TokenTypeOperatorPrefix && tok.TValue == "-" {
		p.pos++
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return unaryExpr{op: '-', operand: operand}, nil
	}
	return p.primary()
}

func (p *tokenParser) primary() (expr, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, zerr.Wrap(domain.ErrFormulaSyntax, "unexpected end of expression")
	}
	p.pos++

	switch {
	case tok.TType == efp.TokenTypeOperand && tok.TSubType == efp.TokenSubTypeNumber:
		v, err := strconv.ParseFloat(tok.TValue, 64)
		if err != nil || !isDecimalLiteral(tok.TValue) || math.IsInf(v, 0) {
			return nil, syntaxError("invalid number", tok)
		}
		return numberExpr{value: v}, nil

	case tok.TType == efp.TokenTypeOperand && tok.TSubType == efp.TokenSubTypeRange:
		if !isCellLabel(tok.TValue) {
			return nil, syntaxError("invalid cell reference", tok)
		}
		return refExpr{pos: domain.ParsePosition(tok.TValue), label: tok.TValue}, nil

	case tok.TType == efp.TokenTypeSubexpression && tok.TSubType == efp.TokenSubTypeStart:
		inner, err := p.expression()
		if err != nil {
			return nil, err
		}
		closing, ok := p.peek()
		if !ok || closing.TType != efp.TokenTypeSubexpression || closing.TSubType != efp.TokenSubTypeStop {
			return nil, zerr.Wrap(domain.ErrFormulaSyntax, "unbalanced parentheses")
		}
		p.pos++
		return inner, nil
	}

	return nil, syntaxError("unexpected token", tok)
}

// isDecimalLiteral rejects the spellings strconv accepts beyond plain decimals, such as "Inf" or hex floats.
// Number literals and numeric cell text both go through it.
func isDecimalLiteral(s string) bool {
	return strings.Trim(s, "0123456789.Ee+-") == "" && s[0] != 'E' && s[0] != 'e'
}

// isCellLabel reports whether s has the shape of a cell label: upper-case letters followed by digits.
// The label may still address a position outside the grid.
func isCellLabel(s string) bool {
	i := 0
	for i < len(s) && s[i] >= 'A' && s[i] <= 'Z' {
		i++
	}
	if i == 0 || i == len(s) {
		return false
	}
	for ; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func syntaxError(msg string, tok efp.Token) error {
	err := zerr.Wrap(domain.ErrFormulaSyntax, msg)
	err = zerr.With(err, "token", tok.TValue)
	return zerr.With(err, "token_type", tok.TType)
}
