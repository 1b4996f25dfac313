/*
File : dashlang/std/math.go

abs/max/min/pow/sqrt supplement the §6 minimum with the arithmetic
coverage of the teacher's std/math.go catalogue, reimplemented for
Dashlang's Int/Float promotion rule (§4.4.1: any Int/Float mix promotes
to Float) rather than the teacher's own numeric types.
*/
package std

import (
	"math"

	"github.com/gab1618/dashlang-sub000/ast"
	"github.com/gab1618/dashlang-sub000/ext"
)

func asFloat(lit ast.Literal) (value float64, isFloat, ok bool) {
	switch v := lit.(type) {
	case ast.Int:
		return float64(v.Value), false, true
	case ast.Float:
		return v.Value, true, true
	default:
		return 0, false, false
	}
}

func numericArg(ctx ext.EvalContext, call *ast.Call, i int) (float64, bool, error) {
	value, err := ctx.Eval(call.Args[i])
	if err != nil {
		return 0, false, err
	}
	f, isFloat, ok := asFloat(value)
	if !ok {
		return 0, false, invalidOp(call, "expected a numeric argument")
	}
	return f, isFloat, nil
}

func numericResult(f float64, isFloat bool) ast.Literal {
	if isFloat {
		return ast.Float{Value: f}
	}
	return ast.Int{Value: int64(f)}
}

func abs(ctx ext.EvalContext, call *ast.Call) (ast.Literal, error) {
	if len(call.Args) != 1 {
		return ast.Void{}, wrongArgs(call, "abs(n)")
	}
	f, isFloat, err := numericArg(ctx, call, 0)
	if err != nil {
		return ast.Void{}, err
	}
	return numericResult(math.Abs(f), isFloat), nil
}

func maxFn(ctx ext.EvalContext, call *ast.Call) (ast.Literal, error) {
	if len(call.Args) != 2 {
		return ast.Void{}, wrongArgs(call, "max(a, b)")
	}
	a, aFloat, err := numericArg(ctx, call, 0)
	if err != nil {
		return ast.Void{}, err
	}
	b, bFloat, err := numericArg(ctx, call, 1)
	if err != nil {
		return ast.Void{}, err
	}
	return numericResult(math.Max(a, b), aFloat || bFloat), nil
}

func minFn(ctx ext.EvalContext, call *ast.Call) (ast.Literal, error) {
	if len(call.Args) != 2 {
		return ast.Void{}, wrongArgs(call, "min(a, b)")
	}
	a, aFloat, err := numericArg(ctx, call, 0)
	if err != nil {
		return ast.Void{}, err
	}
	b, bFloat, err := numericArg(ctx, call, 1)
	if err != nil {
		return ast.Void{}, err
	}
	return numericResult(math.Min(a, b), aFloat || bFloat), nil
}

func pow(ctx ext.EvalContext, call *ast.Call) (ast.Literal, error) {
	if len(call.Args) != 2 {
		return ast.Void{}, wrongArgs(call, "pow(base, exp)")
	}
	base, baseFloat, err := numericArg(ctx, call, 0)
	if err != nil {
		return ast.Void{}, err
	}
	exp, expFloat, err := numericArg(ctx, call, 1)
	if err != nil {
		return ast.Void{}, err
	}
	return numericResult(math.Pow(base, exp), baseFloat || expFloat), nil
}

// sqrt always yields a Float, even for a perfect-square Int argument —
// there is no Int sqrt in the value model.
func sqrt(ctx ext.EvalContext, call *ast.Call) (ast.Literal, error) {
	if len(call.Args) != 1 {
		return ast.Void{}, wrongArgs(call, "sqrt(n)")
	}
	f, _, err := numericArg(ctx, call, 0)
	if err != nil {
		return ast.Void{}, err
	}
	return ast.Float{Value: math.Sqrt(f)}, nil
}
