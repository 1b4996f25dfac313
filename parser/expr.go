package parser

import (
	"github.com/gab1618/dashlang-sub000/ast"
	"github.com/gab1618/dashlang-sub000/dashlangerr"
	"github.com/gab1618/dashlang-sub000/lexer"
)

// parseExpression is the top-level expression entry point: it parses a
// pipe/binary chain, then checks for the trailing sugar forms that only
// make sense applied to a whole expression — plain assignment, compound
// assignment, and dash-piping (§4.2).
func (p *Parser) parseExpression() (ast.Expr, error) {
	left, err := p.parsePipeChain()
	if err != nil {
		return nil, err
	}

	switch {
	case p.cur.Type == lexer.ASSIGN:
		return p.finishAssignment(left)
	case isCompoundAssign(p.cur.Type):
		return p.finishCompoundAssignment(left)
	case p.cur.Type == lexer.DASH_PIPE:
		return p.finishDashPipe(left)
	default:
		return left, nil
	}
}

func asSymbol(e ast.Expr) (ast.Symbol, bool) {
	sym, ok := e.(ast.Symbol)
	return sym, ok
}

// finishAssignment parses `sym = expr` once `sym` (left) and `=` (p.cur)
// have already been seen.
func (p *Parser) finishAssignment(left ast.Expr) (ast.Expr, error) {
	sym, ok := asSymbol(left)
	if !ok {
		return nil, dashlangerr.NewParsingError("left-hand side of '=' must be a symbol", left.GetLocation())
	}
	p.advance() // consume '='
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.Assignment{
		Symbol:   sym.Value,
		Value:    value,
		Location: ast.Span(sym.Location, value.GetLocation()),
	}, nil
}

// finishCompoundAssignment parses `sym OP= expr`, desugaring to
// `sym = sym OP expr` (§4.2).
func (p *Parser) finishCompoundAssignment(left ast.Expr) (ast.Expr, error) {
	sym, ok := asSymbol(left)
	if !ok {
		return nil, dashlangerr.NewParsingError("left-hand side of a compound assignment must be a symbol", left.GetLocation())
	}
	opToken := compoundAssignOperator[p.cur.Type]
	p.advance() // consume 'OP='
	rhs, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	loc := ast.Span(sym.Location, rhs.GetLocation())
	binExpr := &ast.BinaryExpr{
		Left:     sym,
		Right:    rhs,
		Operator: tokenToBinaryOp[opToken],
		Location: loc,
	}
	return &ast.Assignment{Symbol: sym.Value, Value: binExpr, Location: loc}, nil
}

// finishDashPipe parses `sym |>= call(args...)`, desugaring to
// `sym = call(sym, args...)` (§4.2).
func (p *Parser) finishDashPipe(left ast.Expr) (ast.Expr, error) {
	sym, ok := asSymbol(left)
	if !ok {
		return nil, dashlangerr.NewParsingError("left-hand side of '|>=' must be a symbol", left.GetLocation())
	}
	p.advance() // consume '|>='
	call, err := p.parseCallExpression()
	if err != nil {
		return nil, err
	}
	call.Args = append([]ast.Expr{sym}, call.Args...)
	call.Location = ast.Span(sym.Location, call.Location)
	return &ast.Assignment{Symbol: sym.Value, Value: call, Location: call.Location}, nil
}

// parsePipeChain parses a binary-operator chain and then folds any
// trailing `|> call(args...)` stages left-to-right: `expr |> f(a) |> g(b)`
// becomes `g(f(expr, a), b)` (§4.2).
func (p *Parser) parsePipeChain() (ast.Expr, error) {
	left, err := p.parseBinary(orAndPrec)
	if err != nil {
		return nil, err
	}
	for p.cur.Type == lexer.PIPE {
		p.advance()
		call, err := p.parseCallExpression()
		if err != nil {
			return nil, err
		}
		call.Args = append([]ast.Expr{left}, call.Args...)
		call.Location = ast.Span(left.GetLocation(), call.Location)
		left = call
	}
	return left, nil
}

// parseBinary is a standard left-associative precedence-climbing loop
// over the four groups of §4.2 (Or/And looser than comparisons, looser
// than Add/Sub, looser than Mul/Div-and-bitwise).
func (p *Parser) parseBinary(minPrec int) (ast.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		prec, ok := binaryPrecedence[p.cur.Type]
		if !ok || prec < minPrec {
			return left, nil
		}
		opToken := p.cur.Type
		p.advance()
		right, err := p.parseBinary(prec + 1)
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{
			Left:     left,
			Right:    right,
			Operator: tokenToBinaryOp[opToken],
			Location: ast.Span(left.GetLocation(), right.GetLocation()),
		}
	}
}

// parseUnary handles the prefix operators `!`/`~`, which bind tighter
// than any binary operator — their operand is parsed by recursing into
// parseUnary again (so `!!x` chains) and bottoms out at parsePrimary.
func (p *Parser) parseUnary() (ast.Expr, error) {
	switch p.cur.Type {
	case lexer.NOT:
		start := p.curLoc()
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Operator: ast.Not, Operand: operand, Location: ast.Span(start, operand.GetLocation())}, nil
	case lexer.BIT_NOT:
		start := p.curLoc()
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Operator: ast.BitwiseNot, Operand: operand, Location: ast.Span(start, operand.GetLocation())}, nil
	default:
		return p.parsePrimary()
	}
}
