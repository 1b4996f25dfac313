package dashlang

import (
	"github.com/gab1618/dashlang-sub000/ast"
	"github.com/gab1618/dashlang-sub000/dashlangerr"
)

// evalBinaryExpr handles BinaryExpr (§4.4.1), including the two
// short-circuit logical operators: the right operand is evaluated only
// when the left operand doesn't already decide the outcome.
func (c *Context) evalBinaryExpr(node *ast.BinaryExpr) (ast.Literal, error) {
	left, err := c.Eval(node.Left)
	if err != nil {
		return ast.Void{}, err
	}

	switch node.Operator {
	case ast.And:
		if !Truthy(left) {
			return ast.Bool{Value: false}, nil
		}
		right, err := c.Eval(node.Right)
		if err != nil {
			return ast.Void{}, err
		}
		return ast.Bool{Value: Truthy(right)}, nil
	case ast.Or:
		if Truthy(left) {
			return ast.Bool{Value: true}, nil
		}
		right, err := c.Eval(node.Right)
		if err != nil {
			return ast.Void{}, err
		}
		return ast.Bool{Value: Truthy(right)}, nil
	}

	right, err := c.Eval(node.Right)
	if err != nil {
		return ast.Void{}, err
	}
	return applyBinaryOperator(node.Operator, left, right, node.Location)
}

// numeric reports whether lit is Int or Float and its value as a float64
// plus whether it was originally a Float, for the mixed-type promotion
// rule of §4.4.1 (any Int/Float mix promotes to Float).
func numeric(lit ast.Literal) (value float64, isFloat, ok bool) {
	switch v := lit.(type) {
	case ast.Int:
		return float64(v.Value), false, true
	case ast.Float:
		return v.Value, true, true
	default:
		return 0, false, false
	}
}

func invalidOperation(op ast.BinaryOperator, loc ast.Location) error {
	return dashlangerr.NewRuntimeError("invalid operation: " + op.String() + " on these operand types").
		WithKind(dashlangerr.InvalidOperation).
		WithLocation(loc)
}

func applyBinaryOperator(op ast.BinaryOperator, left, right ast.Literal, loc ast.Location) (ast.Literal, error) {
	switch op {
	case ast.Add, ast.Sub, ast.Mul, ast.Div:
		return applyArithmetic(op, left, right, loc)
	case ast.Gt, ast.Ge, ast.Lt, ast.Le:
		return applyComparison(op, left, right, loc)
	case ast.Eq:
		return applyEquality(left, right), nil
	case ast.BitwiseOr, ast.BitwiseAnd, ast.BitwiseXor, ast.BitwiseShiftLeft, ast.BitwiseShiftRight:
		return applyBitwise(op, left, right, loc)
	default:
		return ast.Void{}, invalidOperation(op, loc)
	}
}

func applyArithmetic(op ast.BinaryOperator, left, right ast.Literal, loc ast.Location) (ast.Literal, error) {
	li, liOk := left.(ast.Int)
	ri, riOk := right.(ast.Int)
	if liOk && riOk {
		if op == ast.Div && ri.Value == 0 {
			return ast.Void{}, dashlangerr.NewRuntimeError("division by zero").
				WithKind(dashlangerr.InvalidOperation).
				WithLocation(loc)
		}
		return ast.Int{Value: intArith(op, li.Value, ri.Value), Location: loc}, nil
	}

	lf, lIsFloat, lOk := numeric(left)
	rf, rIsFloat, rOk := numeric(right)
	if lOk && rOk && (lIsFloat || rIsFloat) {
		return ast.Float{Value: floatArith(op, lf, rf), Location: loc}, nil
	}
	return ast.Void{}, invalidOperation(op, loc)
}

func intArith(op ast.BinaryOperator, l, r int64) int64 {
	switch op {
	case ast.Add:
		return l + r
	case ast.Sub:
		return l - r
	case ast.Mul:
		return l * r
	case ast.Div:
		return l / r
	default:
		return 0
	}
}

func floatArith(op ast.BinaryOperator, l, r float64) float64 {
	switch op {
	case ast.Add:
		return l + r
	case ast.Sub:
		return l - r
	case ast.Mul:
		return l * r
	case ast.Div:
		return l / r // IEEE semantics: division by zero yields +/-Inf or NaN
	default:
		return 0
	}
}

func applyComparison(op ast.BinaryOperator, left, right ast.Literal, loc ast.Location) (ast.Literal, error) {
	lf, _, lOk := numeric(left)
	rf, _, rOk := numeric(right)
	if !lOk || !rOk {
		return ast.Void{}, invalidOperation(op, loc)
	}
	var result bool
	switch op {
	case ast.Gt:
		result = lf > rf
	case ast.Ge:
		result = lf >= rf
	case ast.Lt:
		result = lf < rf
	case ast.Le:
		result = lf <= rf
	}
	return ast.Bool{Value: result, Location: loc}, nil
}

// applyEquality implements Eq: numeric mixing follows arithmetic
// promotion; equality between differently-typed non-numeric values is
// false; atom equality is structural on the name.
func applyEquality(left, right ast.Literal) ast.Literal {
	if lf, _, lOk := numeric(left); lOk {
		if rf, _, rOk := numeric(right); rOk {
			return ast.Bool{Value: lf == rf}
		}
		return ast.Bool{Value: false}
	}
	switch l := left.(type) {
	case ast.String:
		r, ok := right.(ast.String)
		return ast.Bool{Value: ok && l.Value == r.Value}
	case ast.Bool:
		r, ok := right.(ast.Bool)
		return ast.Bool{Value: ok && l.Value == r.Value}
	case ast.Atom:
		r, ok := right.(ast.Atom)
		return ast.Bool{Value: ok && l.Value == r.Value}
	case ast.Null:
		_, ok := right.(ast.Null)
		return ast.Bool{Value: ok}
	case ast.Void:
		_, ok := right.(ast.Void)
		return ast.Bool{Value: ok}
	default:
		// Vector/Tuple/Map/Closure equality is not part of the spec's
		// testable contract; treat as never equal rather than invent one.
		return ast.Bool{Value: false}
	}
}

func applyBitwise(op ast.BinaryOperator, left, right ast.Literal, loc ast.Location) (ast.Literal, error) {
	li, lOk := left.(ast.Int)
	ri, rOk := right.(ast.Int)
	if !lOk || !rOk {
		return ast.Void{}, invalidOperation(op, loc)
	}
	switch op {
	case ast.BitwiseOr:
		return ast.Int{Value: li.Value | ri.Value, Location: loc}, nil
	case ast.BitwiseAnd:
		return ast.Int{Value: li.Value & ri.Value, Location: loc}, nil
	case ast.BitwiseXor:
		return ast.Int{Value: li.Value ^ ri.Value, Location: loc}, nil
	case ast.BitwiseShiftLeft, ast.BitwiseShiftRight:
		if ri.Value < 0 {
			return ast.Void{}, dashlangerr.NewRuntimeError("negative shift count").
				WithKind(dashlangerr.InvalidOperation).
				WithLocation(loc)
		}
		if op == ast.BitwiseShiftLeft {
			return ast.Int{Value: li.Value << uint(ri.Value), Location: loc}, nil
		}
		return ast.Int{Value: li.Value >> uint(ri.Value), Location: loc}, nil
	default:
		return ast.Void{}, invalidOperation(op, loc)
	}
}
