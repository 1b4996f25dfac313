package parser

import (
	"github.com/gab1618/dashlang-sub000/ast"
	"github.com/gab1618/dashlang-sub000/lexer"
)

// parseStatement dispatches on the leading keyword, falling back to an
// expression statement (§4.3).
func (p *Parser) parseStatement() (ast.Stmt, error) {
	var stmt ast.Stmt
	var err error

	switch p.cur.Type {
	case lexer.IF:
		stmt, err = p.parseIf()
	case lexer.WHILE:
		stmt, err = p.parseWhile()
	case lexer.FOR:
		stmt, err = p.parseFor()
	case lexer.RETURN:
		stmt, err = p.parseReturn()
	default:
		stmt, err = p.parseExprStatement()
	}
	if err != nil {
		return nil, err
	}
	p.skipStatementTerminator()
	return stmt, nil
}

// skipStatementTerminator consumes an optional trailing ';'; Dashlang
// statements are newline/brace delimited, so the semicolon is never
// required, only accepted.
func (p *Parser) skipStatementTerminator() {
	if p.cur.Type == lexer.SEMI {
		p.advance()
	}
}

func (p *Parser) parseExprStatement() (ast.Stmt, error) {
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return ast.ExprStmt{Value: expr}, nil
}

// parseIf parses `if cond { body } [else ({ body } | if ...)]`. An `else
// if` is desugared into an ElseBlock containing a single nested If
// statement, so ast.If needs no separate ElseIf variant (§4.3).
func (p *Parser) parseIf() (ast.Stmt, error) {
	start := p.curLoc()
	p.advance() // consume 'if'
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	end := start
	if len(body) > 0 {
		end = body[len(body)-1].GetLocation()
	}
	node := &ast.If{Cond: cond, Body: body, Location: ast.Span(start, end)}

	if p.cur.Type != lexer.ELSE {
		return node, nil
	}
	p.advance() // consume 'else'

	if p.cur.Type == lexer.IF {
		nested, err := p.parseIf()
		if err != nil {
			return nil, err
		}
		node.ElseBlock = ast.Program{nested}
		node.Location = ast.Span(start, nested.GetLocation())
		return node, nil
	}

	elseBody, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	node.ElseBlock = elseBody
	if len(elseBody) > 0 {
		node.Location = ast.Span(start, elseBody[len(elseBody)-1].GetLocation())
	}
	return node, nil
}

// parseWhile parses `while cond { body }` (§4.3).
func (p *Parser) parseWhile() (ast.Stmt, error) {
	start := p.curLoc()
	p.advance() // consume 'while'
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	end := start
	if len(body) > 0 {
		end = body[len(body)-1].GetLocation()
	}
	return &ast.While{Cond: cond, Body: body, Location: ast.Span(start, end)}, nil
}

// parseFor parses `for init; cond; iteration { body }`, semantically
// equivalent to `init; while(cond) { body; iteration }` (§4.3).
func (p *Parser) parseFor() (ast.Stmt, error) {
	start := p.curLoc()
	p.advance() // consume 'for'

	init, err := p.parseExprStatement()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMI); err != nil {
		return nil, err
	}

	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMI); err != nil {
		return nil, err
	}

	iteration, err := p.parseExprStatement()
	if err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	end := start
	if len(body) > 0 {
		end = body[len(body)-1].GetLocation()
	}
	return &ast.For{
		Init:      init,
		Cond:      cond,
		Iteration: iteration,
		Body:      body,
		Location:  ast.Span(start, end),
	}, nil
}

// parseReturn parses `return [expr]`. With no following expression, the
// return value is ast.Void{} — matching §4.4's rule that an absent value
// is always Void, never implicit last-expression sugar.
func (p *Parser) parseReturn() (ast.Stmt, error) {
	start := p.curLoc()
	startTok := p.cur
	p.advance() // consume 'return'

	if p.atStatementEnd() {
		loc := ast.NewLocation(startTok.Start, startTok.End)
		return &ast.Return{Value: ast.LiteralExpr{Literal: ast.Void{Location: loc}}, Location: loc}, nil
	}

	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.Return{Value: value, Location: ast.Span(start, value.GetLocation())}, nil
}

func (p *Parser) atStatementEnd() bool {
	switch p.cur.Type {
	case lexer.SEMI, lexer.RBRACE, lexer.EOF:
		return true
	default:
		return false
	}
}
