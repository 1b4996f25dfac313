package dashlang

import (
	"github.com/gab1618/dashlang-sub000/ast"
	"github.com/gab1618/dashlang-sub000/dashlangerr"
)

// Eval evaluates a single expression against c (§4.4). It is the method
// extensions call back into (through the ext.EvalContext interface) when
// they need to force one of their own unevaluated arguments.
func (c *Context) Eval(expr ast.Expr) (ast.Literal, error) {
	switch node := expr.(type) {
	case ast.Symbol:
		return c.Scope.Get(node.Value), nil
	case ast.LiteralExpr:
		return c.evalLiteral(node.Literal)
	case *ast.SubExpr:
		return c.Eval(node.Value)
	case *ast.UnaryExpr:
		return c.evalUnary(node)
	case *ast.BinaryExpr:
		return c.evalBinaryExpr(node)
	case *ast.Call:
		return c.evalCall(node)
	case *ast.Assignment:
		return c.evalAssignment(node)
	case *ast.DestructuringAssignment:
		return c.evalDestructuring(node)
	default:
		return ast.Void{}, dashlangerr.NewRuntimeError("unreachable expression variant").
			WithLocation(expr.GetLocation())
	}
}

// evalLiteral returns literals verbatim except for Closure, which is
// bound to the current scope the moment it is evaluated — that binding
// is what gives Dashlang closures lexical capture by reference (§4.4.3).
func (c *Context) evalLiteral(lit ast.Literal) (ast.Literal, error) {
	if closure, ok := lit.(ast.Closure); ok {
		return ast.BoundClosure{
			Params:   closure.Params,
			Body:     closure.Body,
			Location: closure.Location,
			Env:      c.Scope,
		}, nil
	}
	return lit, nil
}

func (c *Context) evalAssignment(node *ast.Assignment) (ast.Literal, error) {
	value, err := c.Eval(node.Value)
	if err != nil {
		return ast.Void{}, err
	}
	c.Scope.Set(node.Symbol, value)
	return value, nil
}

func (c *Context) evalDestructuring(node *ast.DestructuringAssignment) (ast.Literal, error) {
	value, err := c.Eval(node.Value)
	if err != nil {
		return ast.Void{}, err
	}
	tuple, ok := value.(ast.Tuple)
	if !ok || len(tuple.Value) != len(node.Symbols) {
		return ast.Void{}, dashlangerr.NewRuntimeError("expected right-hand side to be a tuple of matching arity").
			WithKind(dashlangerr.InvalidOperation).
			WithLocation(node.Location)
	}
	for i, sym := range node.Symbols {
		elem, err := c.Eval(tuple.Value[i])
		if err != nil {
			return ast.Void{}, err
		}
		c.Scope.Set(sym.Value, elem)
	}
	return ast.Void{}, nil
}

func (c *Context) evalUnary(node *ast.UnaryExpr) (ast.Literal, error) {
	operand, err := c.Eval(node.Operand)
	if err != nil {
		return ast.Void{}, err
	}
	switch node.Operator {
	case ast.Not:
		return ast.Bool{Value: !Truthy(operand)}, nil
	case ast.BitwiseNot:
		i, ok := operand.(ast.Int)
		if !ok {
			return ast.Void{}, dashlangerr.NewRuntimeError("~ requires an integer operand").
				WithKind(dashlangerr.InvalidOperation).
				WithLocation(node.Location)
		}
		return ast.Int{Value: ^i.Value}, nil
	default:
		return ast.Void{}, dashlangerr.NewRuntimeError("unreachable unary operator").
			WithLocation(node.Location)
	}
}
