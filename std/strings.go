/*
File : dashlang/std/strings.go

upper/lower/split/join/trim supplement the §6 minimum with the string
coverage of the teacher's std/strings.go catalogue, adapted to Dashlang's
String/Vector literal types.
*/
package std

import (
	"strings"

	"github.com/gab1618/dashlang-sub000/ast"
	"github.com/gab1618/dashlang-sub000/ext"
)

func stringArg(ctx ext.EvalContext, call *ast.Call, i int) (string, error) {
	value, err := ctx.Eval(call.Args[i])
	if err != nil {
		return "", err
	}
	s, ok := value.(ast.String)
	if !ok {
		return "", invalidOp(call, "expected a string argument")
	}
	return s.Value, nil
}

func upper(ctx ext.EvalContext, call *ast.Call) (ast.Literal, error) {
	if len(call.Args) != 1 {
		return ast.Void{}, wrongArgs(call, "upper(s)")
	}
	s, err := stringArg(ctx, call, 0)
	if err != nil {
		return ast.Void{}, err
	}
	return ast.String{Value: strings.ToUpper(s)}, nil
}

func lower(ctx ext.EvalContext, call *ast.Call) (ast.Literal, error) {
	if len(call.Args) != 1 {
		return ast.Void{}, wrongArgs(call, "lower(s)")
	}
	s, err := stringArg(ctx, call, 0)
	if err != nil {
		return ast.Void{}, err
	}
	return ast.String{Value: strings.ToLower(s)}, nil
}

func trim(ctx ext.EvalContext, call *ast.Call) (ast.Literal, error) {
	if len(call.Args) != 1 {
		return ast.Void{}, wrongArgs(call, "trim(s)")
	}
	s, err := stringArg(ctx, call, 0)
	if err != nil {
		return ast.Void{}, err
	}
	return ast.String{Value: strings.TrimSpace(s)}, nil
}

// split(s, sep) returns a Vector of String literals; each piece is
// already an evaluated LiteralExpr so it composes with the rest of the
// container contract, which only wants unevaluated Expr elements.
func split(ctx ext.EvalContext, call *ast.Call) (ast.Literal, error) {
	if len(call.Args) != 2 {
		return ast.Void{}, wrongArgs(call, "split(s, sep)")
	}
	s, err := stringArg(ctx, call, 0)
	if err != nil {
		return ast.Void{}, err
	}
	sep, err := stringArg(ctx, call, 1)
	if err != nil {
		return ast.Void{}, err
	}
	pieces := strings.Split(s, sep)
	elems := make([]ast.Expr, len(pieces))
	for i, piece := range pieces {
		elems[i] = ast.LiteralExpr{Literal: ast.String{Value: piece}}
	}
	return ast.Vector{Value: elems}, nil
}

// join(vec, sep) concatenates a vector of strings, forcing each element.
func join(ctx ext.EvalContext, call *ast.Call) (ast.Literal, error) {
	if len(call.Args) != 2 {
		return ast.Void{}, wrongArgs(call, "join(vector, sep)")
	}
	value, err := ctx.Eval(call.Args[0])
	if err != nil {
		return ast.Void{}, err
	}
	elems, err := vectorElements(call, value)
	if err != nil {
		return ast.Void{}, err
	}
	sep, err := stringArg(ctx, call, 1)
	if err != nil {
		return ast.Void{}, err
	}
	parts := make([]string, len(elems))
	for i, e := range elems {
		v, err := ctx.Eval(e)
		if err != nil {
			return ast.Void{}, err
		}
		s, ok := v.(ast.String)
		if !ok {
			return ast.Void{}, invalidOp(call, "join requires every element to be a string")
		}
		parts[i] = s.Value
	}
	return ast.String{Value: strings.Join(parts, sep)}, nil
}
