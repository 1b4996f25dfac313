/*
File : dashlang/std/io.go

print/println/input form the §6 minimum stdlib surface's I/O half,
grounded in the teacher's builtins.go print/println pair and its
Runtime.GetInputReader hookup, adapted to Dashlang's unevaluated-Call
extension protocol (§4.6): each argument is evaluated here, not by the
caller, since an extension decides for itself what to force.
*/
package std

import (
	"fmt"
	"strings"

	"github.com/gab1618/dashlang-sub000/ast"
	"github.com/gab1618/dashlang-sub000/dashlangerr"
	"github.com/gab1618/dashlang-sub000/ext"
)

// print displays its single argument with no trailing newline and returns
// the evaluated value (§6: "returns the evaluated value"), exactly the
// single-arg signature of stdlib_print in the original evaluator.
func print_(ctx ext.EvalContext, call *ast.Call) (ast.Literal, error) {
	if len(call.Args) != 1 {
		return ast.Void{}, wrongArgs(call, "print(expr)")
	}
	value, err := ctx.Eval(call.Args[0])
	if err != nil {
		return ast.Void{}, err
	}
	s, err := Display(ctx, value)
	if err != nil {
		return ast.Void{}, err
	}
	fmt.Fprint(ctx.Output(), s)
	return value, nil
}

// println displays its single argument followed by a newline and returns
// the evaluated value.
func println_(ctx ext.EvalContext, call *ast.Call) (ast.Literal, error) {
	if len(call.Args) != 1 {
		return ast.Void{}, wrongArgs(call, "println(expr)")
	}
	value, err := ctx.Eval(call.Args[0])
	if err != nil {
		return ast.Void{}, err
	}
	s, err := Display(ctx, value)
	if err != nil {
		return ast.Void{}, err
	}
	fmt.Fprintln(ctx.Output(), s)
	return value, nil
}

// input reads a single line from the run's input stream, returning it as
// a String with the trailing newline stripped. An optional single
// argument is displayed as a prompt first.
func input(ctx ext.EvalContext, call *ast.Call) (ast.Literal, error) {
	if len(call.Args) > 1 {
		return ast.Void{}, dashlangerr.NewRuntimeError("input expects at most one prompt argument").
			WithKind(dashlangerr.WrongArgs).
			WithLocation(call.Location)
	}
	if len(call.Args) == 1 {
		prompt, err := ctx.Eval(call.Args[0])
		if err != nil {
			return ast.Void{}, err
		}
		s, err := Display(ctx, prompt)
		if err != nil {
			return ast.Void{}, err
		}
		fmt.Fprint(ctx.Output(), s)
	}
	line, err := ctx.Input().ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if err != nil && line == "" {
		return ast.String{Value: ""}, nil
	}
	return ast.String{Value: line}, nil
}
