package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gab1618/dashlang-sub000/ast"
	"github.com/gab1618/dashlang-sub000/dashlangerr"
	"github.com/gab1618/dashlang-sub000/parser"
)

func parseExpr(t *testing.T, src string) ast.Expr {
	t.Helper()
	program, err := parser.Parse(src)
	require.NoError(t, err)
	require.Len(t, program, 1)
	stmt, ok := program[0].(ast.ExprStmt)
	require.True(t, ok, "expected a single expression statement, got %T", program[0])
	return stmt.Value
}

func TestMulBindsTighterThanAdd(t *testing.T) {
	expr := parseExpr(t, "1 + 2 * 3")
	add, ok := expr.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.Add, add.Operator)

	mul, ok := add.Right.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.Mul, mul.Operator)
}

func TestParensOverridePrecedence(t *testing.T) {
	expr := parseExpr(t, "(1 + 2) * 3")
	mul, ok := expr.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.Mul, mul.Operator)

	sub, ok := mul.Left.(*ast.SubExpr)
	require.True(t, ok)

	add, ok := sub.Value.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.Add, add.Operator)
}

func TestPipeRewritesToCallWithLeftPrepended(t *testing.T) {
	expr := parseExpr(t, "x |> f(y)")
	call, ok := expr.(*ast.Call)
	require.True(t, ok)
	assert.Equal(t, "f", call.Symbol)
	require.Len(t, call.Args, 2)

	sym0, ok := call.Args[0].(ast.Symbol)
	require.True(t, ok)
	assert.Equal(t, "x", sym0.Value)

	sym1, ok := call.Args[1].(ast.Symbol)
	require.True(t, ok)
	assert.Equal(t, "y", sym1.Value)
}

func TestChainedPipeIsLeftAssociative(t *testing.T) {
	expr := parseExpr(t, "x |> f(y) |> g(z)")
	outer, ok := expr.(*ast.Call)
	require.True(t, ok)
	assert.Equal(t, "g", outer.Symbol)
	require.Len(t, outer.Args, 2)

	inner, ok := outer.Args[0].(*ast.Call)
	require.True(t, ok)
	assert.Equal(t, "f", inner.Symbol)
}

func TestDashPipeDesugarsToAssignment(t *testing.T) {
	expr := parseExpr(t, "x |>= f(y)")
	assign, ok := expr.(*ast.Assignment)
	require.True(t, ok)
	assert.Equal(t, "x", assign.Symbol)

	call, ok := assign.Value.(*ast.Call)
	require.True(t, ok)
	assert.Equal(t, "f", call.Symbol)
	require.Len(t, call.Args, 2)
}

func TestCompoundAssignmentDesugars(t *testing.T) {
	expr := parseExpr(t, "x += 1")
	assign, ok := expr.(*ast.Assignment)
	require.True(t, ok)
	assert.Equal(t, "x", assign.Symbol)

	bin, ok := assign.Value.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.Add, bin.Operator)
}

func TestTupleLiteralRequiresMultipleElements(t *testing.T) {
	expr := parseExpr(t, "(1, 2, 3)")
	lit, ok := expr.(ast.LiteralExpr)
	require.True(t, ok)
	tuple, ok := lit.Literal.(ast.Tuple)
	require.True(t, ok)
	assert.Len(t, tuple.Value, 3)
}

func TestSingleParenIsSubExprNotTuple(t *testing.T) {
	expr := parseExpr(t, "(1)")
	sub, ok := expr.(*ast.SubExpr)
	require.True(t, ok)
	_, isInt := sub.Value.(ast.LiteralExpr)
	assert.True(t, isInt)
}

func TestClosureLiteralParams(t *testing.T) {
	expr := parseExpr(t, "(a, b) { return a + b }")
	lit, ok := expr.(ast.LiteralExpr)
	require.True(t, ok)
	closure, ok := lit.Literal.(ast.Closure)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, closure.Params)
	require.Len(t, closure.Body, 1)
}

func TestDestructuringAssignmentTarget(t *testing.T) {
	expr := parseExpr(t, "(a, b) = pair")
	d, ok := expr.(*ast.DestructuringAssignment)
	require.True(t, ok)
	require.Len(t, d.Symbols, 2)
	assert.Equal(t, "a", d.Symbols[0].Value)
	assert.Equal(t, "b", d.Symbols[1].Value)
}

func TestBinaryExprLocationSpansBothOperands(t *testing.T) {
	expr := parseExpr(t, "12 + 34")
	bin, ok := expr.(*ast.BinaryExpr)
	require.True(t, ok)
	loc := bin.GetLocation()
	assert.Equal(t, 0, loc.Start)
	assert.Equal(t, len("12 + 34"), loc.End)
}

// TestNegativeLiteralParsesAsIntLiteral pins down §4.1's "decimal
// integers (with optional leading '-')" at the parser level: a negative
// literal in value position parses straight to an ast.Int, not a
// MINUS-prefixed expression.
func TestNegativeLiteralParsesAsIntLiteral(t *testing.T) {
	expr := parseExpr(t, "-5")
	lit, ok := expr.(ast.LiteralExpr)
	require.True(t, ok)
	i, ok := lit.Literal.(ast.Int)
	require.True(t, ok)
	assert.EqualValues(t, -5, i.Value)
}

// TestSubtractionStillParsesAsBinaryExpr guards the other half of the
// same fix: `a - b` must still parse as subtraction, not as `a` followed
// by a stray negative literal.
func TestSubtractionStillParsesAsBinaryExpr(t *testing.T) {
	expr := parseExpr(t, "a - b")
	bin, ok := expr.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.Sub, bin.Operator)
}

func TestIfElseIfDesugarsToNestedElseBlock(t *testing.T) {
	program, err := parser.Parse("if a { return 1 } else if b { return 2 } else { return 3 }")
	require.NoError(t, err)
	require.Len(t, program, 1)
	ifStmt, ok := program[0].(*ast.If)
	require.True(t, ok)
	require.Len(t, ifStmt.ElseBlock, 1)

	nested, ok := ifStmt.ElseBlock[0].(*ast.If)
	require.True(t, ok)
	require.Len(t, nested.ElseBlock, 1)
}

func TestWhileLoop(t *testing.T) {
	program, err := parser.Parse("while x { x = x - 1 }")
	require.NoError(t, err)
	require.Len(t, program, 1)
	_, ok := program[0].(*ast.While)
	assert.True(t, ok)
}

func TestForLoopDesugarComponents(t *testing.T) {
	program, err := parser.Parse("for i = 0; i < 10; i += 1 { println(i) }")
	require.NoError(t, err)
	require.Len(t, program, 1)
	forStmt, ok := program[0].(*ast.For)
	require.True(t, ok)
	assert.NotNil(t, forStmt.Init)
	assert.NotNil(t, forStmt.Cond)
	assert.NotNil(t, forStmt.Iteration)
}

func TestReturnWithNoValueIsVoid(t *testing.T) {
	program, err := parser.Parse("return")
	require.NoError(t, err)
	require.Len(t, program, 1)
	ret, ok := program[0].(*ast.Return)
	require.True(t, ok)
	lit, ok := ret.Value.(ast.LiteralExpr)
	require.True(t, ok)
	_, isVoid := lit.Literal.(ast.Void)
	assert.True(t, isVoid)
}

func TestBitwiseOperatorParses(t *testing.T) {
	expr := parseExpr(t, "a & b")
	bin, ok := expr.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.BitwiseAnd, bin.Operator)
}

func TestUnaryNotChains(t *testing.T) {
	expr := parseExpr(t, "!!a")
	outer, ok := expr.(*ast.UnaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.Not, outer.Operator)
	inner, ok := outer.Operand.(*ast.UnaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.Not, inner.Operator)
}

func TestParseErrorIsLocated(t *testing.T) {
	_, err := parser.Parse("1 +")
	require.Error(t, err)
	perr, ok := err.(*dashlangerr.ParsingError)
	require.True(t, ok)
	assert.NotEmpty(t, perr.Error())
	// The missing right operand is reported at end of input, offset 3.
	assert.Equal(t, ast.NewLocation(3, 3), perr.Location)
}
