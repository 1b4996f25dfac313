package parser

import (
	"fmt"
	"strconv"

	"github.com/gab1618/dashlang-sub000/ast"
	"github.com/gab1618/dashlang-sub000/dashlangerr"
	"github.com/gab1618/dashlang-sub000/lexer"
)

// parsePrimary parses literals, bracketed/paren groups, symbols and calls —
// the tightest-binding leaves of the expression grammar.
func (p *Parser) parsePrimary() (ast.Expr, error) {
	switch p.cur.Type {
	case lexer.INT:
		return p.parseIntLiteral()
	case lexer.FLOAT:
		return p.parseFloatLiteral()
	case lexer.STRING:
		tok := p.cur
		p.advance()
		return ast.LiteralExpr{Literal: ast.String{Value: tok.Literal, Location: ast.NewLocation(tok.Start, tok.End)}}, nil
	case lexer.ATOM:
		tok := p.cur
		p.advance()
		return ast.LiteralExpr{Literal: ast.Atom{Value: tok.Literal, Location: ast.NewLocation(tok.Start, tok.End)}}, nil
	case lexer.TRUE, lexer.FALSE:
		tok := p.cur
		p.advance()
		return ast.LiteralExpr{Literal: ast.Bool{Value: tok.Type == lexer.TRUE, Location: ast.NewLocation(tok.Start, tok.End)}}, nil
	case lexer.NULL:
		tok := p.cur
		p.advance()
		return ast.LiteralExpr{Literal: ast.Null{Location: ast.NewLocation(tok.Start, tok.End)}}, nil
	case lexer.LBRACKET:
		return p.parseVectorLiteral()
	case lexer.LBRACE:
		return p.parseMapLiteral()
	case lexer.LPAREN:
		return p.parseParenGroup()
	case lexer.IDENT:
		return p.parseSymbolOrCall()
	default:
		return nil, p.unexpected("an expression")
	}
}

func (p *Parser) parseIntLiteral() (ast.Expr, error) {
	tok := p.cur
	v, err := strconv.ParseInt(tok.Literal, 10, 64)
	if err != nil {
		return nil, dashlangerr.NewParsingError(fmt.Sprintf("invalid integer literal %q", tok.Literal), ast.NewLocation(tok.Start, tok.End))
	}
	p.advance()
	return ast.LiteralExpr{Literal: ast.Int{Value: v, Location: ast.NewLocation(tok.Start, tok.End)}}, nil
}

func (p *Parser) parseFloatLiteral() (ast.Expr, error) {
	tok := p.cur
	v, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		return nil, dashlangerr.NewParsingError(fmt.Sprintf("invalid float literal %q", tok.Literal), ast.NewLocation(tok.Start, tok.End))
	}
	p.advance()
	return ast.LiteralExpr{Literal: ast.Float{Value: v, Location: ast.NewLocation(tok.Start, tok.End)}}, nil
}

// parseVectorLiteral parses `[e1, e2, ...]` (§3.2, Vector).
func (p *Parser) parseVectorLiteral() (ast.Expr, error) {
	start := p.curLoc()
	p.advance() // consume '['
	var elems []ast.Expr
	for p.cur.Type != lexer.RBRACKET {
		elem, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
		if p.cur.Type == lexer.COMMA {
			p.advance()
			continue
		}
		break
	}
	end, err := p.expect(lexer.RBRACKET)
	if err != nil {
		return nil, err
	}
	loc := ast.Span(start, ast.NewLocation(end.Start, end.End))
	return ast.LiteralExpr{Literal: ast.Vector{Value: elems, Location: loc}}, nil
}

// parseMapLiteral parses `{key: value, ...}`, where keys are bareword
// identifiers (confirmed against the original implementation's map
// literal grammar, not quoted strings).
func (p *Parser) parseMapLiteral() (ast.Expr, error) {
	start := p.curLoc()
	p.advance() // consume '{'
	values := make(map[string]ast.Expr)
	for p.cur.Type != lexer.RBRACE {
		keyTok, err := p.expect(lexer.IDENT)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.COLON); err != nil {
			return nil, err
		}
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		values[keyTok.Literal] = value
		if p.cur.Type == lexer.COMMA {
			p.advance()
			continue
		}
		break
	}
	end, err := p.expect(lexer.RBRACE)
	if err != nil {
		return nil, err
	}
	loc := ast.Span(start, ast.NewLocation(end.Start, end.End))
	return ast.LiteralExpr{Literal: ast.Map{Value: values, Location: loc}}, nil
}

// parseSymbolOrCall parses a bare identifier, disambiguating a following
// `(` as a call's argument list (`f(a, b)`) from an unrelated, separate
// parenthesized expression on the next statement.
func (p *Parser) parseSymbolOrCall() (ast.Expr, error) {
	tok := p.cur
	p.advance()
	if p.cur.Type != lexer.LPAREN || p.cur.Line != tok.Line {
		return ast.Symbol{Value: tok.Literal, Location: ast.NewLocation(tok.Start, tok.End)}, nil
	}
	call, err := p.finishCallArgs(tok.Literal, ast.NewLocation(tok.Start, tok.End))
	if err != nil {
		return nil, err
	}
	return call, nil
}

// parseCallExpression parses a call used as the target stage of a pipe or
// dash-pipe: a bare `name(args...)` form (§4.2).
func (p *Parser) parseCallExpression() (*ast.Call, error) {
	tok, err := p.expect(lexer.IDENT)
	if err != nil {
		return nil, err
	}
	if p.cur.Type != lexer.LPAREN {
		return nil, p.unexpected("a call target after '|>'")
	}
	return p.finishCallArgs(tok.Literal, ast.NewLocation(tok.Start, tok.End))
}

// finishCallArgs parses `(args...)` given the callee name/location, with
// '(' as the current token.
func (p *Parser) finishCallArgs(name string, nameLoc ast.Location) (*ast.Call, error) {
	p.advance() // consume '('
	var args []ast.Expr
	for p.cur.Type != lexer.RPAREN {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.cur.Type == lexer.COMMA {
			p.advance()
			continue
		}
		break
	}
	end, err := p.expect(lexer.RPAREN)
	if err != nil {
		return nil, err
	}
	return &ast.Call{
		Symbol:   name,
		Args:     args,
		Location: ast.Span(nameLoc, ast.NewLocation(end.Start, end.End)),
	}, nil
}

// parseParenGroup handles the four syntactic forms that start with '(':
// a parenthesized sub-expression `(e)`, a tuple `(e1, e2, ...)`, a
// closure's parameter list `(a, b) { ... }`, and a destructuring
// assignment target `(a, b) = value`. All four share a comma-separated
// element list inside the parens; which one it is is only decidable by
// looking at the token that follows the closing ')'.
func (p *Parser) parseParenGroup() (ast.Expr, error) {
	start := p.curLoc()
	p.advance() // consume '('

	var elems []ast.Expr
	for p.cur.Type != lexer.RPAREN {
		elem, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
		if p.cur.Type == lexer.COMMA {
			p.advance()
			continue
		}
		break
	}
	closeTok, err := p.expect(lexer.RPAREN)
	if err != nil {
		return nil, err
	}
	closeLoc := ast.NewLocation(closeTok.Start, closeTok.End)

	switch p.cur.Type {
	case lexer.LBRACE:
		return p.finishClosureLiteral(start, elems)
	case lexer.ASSIGN:
		return p.finishDestructuringAssignment(start, elems)
	default:
		if len(elems) == 0 {
			return nil, dashlangerr.NewParsingError("empty parentheses are neither an expression nor a tuple", ast.Span(start, closeLoc))
		}
		if len(elems) == 1 {
			return &ast.SubExpr{Value: elems[0], Location: ast.Span(start, closeLoc)}, nil
		}
		return ast.LiteralExpr{Literal: ast.Tuple{Value: elems, Location: ast.Span(start, closeLoc)}}, nil
	}
}

func (p *Parser) finishClosureLiteral(start ast.Location, elems []ast.Expr) (ast.Expr, error) {
	params := make([]string, len(elems))
	for i, e := range elems {
		sym, ok := asSymbol(e)
		if !ok {
			return nil, dashlangerr.NewParsingError("closure parameters must be bare names", e.GetLocation())
		}
		params[i] = sym.Value
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	end := start
	if len(body) > 0 {
		end = body[len(body)-1].GetLocation()
	}
	return ast.LiteralExpr{Literal: ast.Closure{Params: params, Body: body, Location: ast.Span(start, end)}}, nil
}

func (p *Parser) finishDestructuringAssignment(start ast.Location, elems []ast.Expr) (ast.Expr, error) {
	symbols := make([]ast.Symbol, len(elems))
	for i, e := range elems {
		sym, ok := asSymbol(e)
		if !ok {
			return nil, dashlangerr.NewParsingError("destructuring assignment targets must be bare names", e.GetLocation())
		}
		symbols[i] = sym
	}
	p.advance() // consume '='
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.DestructuringAssignment{
		Symbols:  symbols,
		Value:    value,
		Location: ast.Span(start, value.GetLocation()),
	}, nil
}
