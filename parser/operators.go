package parser

import (
	"github.com/gab1618/dashlang-sub000/ast"
	"github.com/gab1618/dashlang-sub000/lexer"
)

var tokenToBinaryOp = map[lexer.TokenType]ast.BinaryOperator{
	lexer.PLUS:    ast.Add,
	lexer.MINUS:   ast.Sub,
	lexer.STAR:    ast.Mul,
	lexer.SLASH:   ast.Div,
	lexer.GT:      ast.Gt,
	lexer.GE:      ast.Ge,
	lexer.LT:      ast.Lt,
	lexer.LE:      ast.Le,
	lexer.EQ:      ast.Eq,
	lexer.AND:     ast.And,
	lexer.OR:      ast.Or,
	lexer.BIT_OR:  ast.BitwiseOr,
	lexer.BIT_AND: ast.BitwiseAnd,
	lexer.BIT_XOR: ast.BitwiseXor,
	lexer.SHL:     ast.BitwiseShiftLeft,
	lexer.SHR:     ast.BitwiseShiftRight,
}
