package dashlang

import (
	"github.com/gab1618/dashlang-sub000/ast"
	"github.com/gab1618/dashlang-sub000/dashlangerr"
	"github.com/gab1618/dashlang-sub000/scope"
)

// evalCall resolves call.Symbol against the current scope first (a user
// closure shadows an extension of the same name), then against the
// extension registry, and fails with NonCallable otherwise (§4.4.3).
func (c *Context) evalCall(call *ast.Call) (ast.Literal, error) {
	resolved := c.Scope.Get(call.Symbol)
	if closure, ok := resolved.(ast.BoundClosure); ok {
		return c.callClosure(closure, call)
	}
	if extension, ok := c.Extensions[call.Symbol]; ok {
		return extension(c, call)
	}
	return ast.Void{}, dashlangerr.NewRuntimeError("'"+call.Symbol+"' is not callable").
		WithKind(dashlangerr.NonCallable).
		WithLocation(call.Location)
}

// callClosure invokes a user-defined closure: a fresh local frame is
// created whose parent is the closure's *defining* scope (lexical
// capture by reference), arguments are evaluated in the caller's context
// left-to-right and bound positionally, and the body executes in the new
// frame.
func (c *Context) callClosure(closure ast.BoundClosure, call *ast.Call) (ast.Literal, error) {
	if len(call.Args) != len(closure.Params) {
		return ast.Void{}, dashlangerr.NewRuntimeError("wrong number of arguments").
			WithKind(dashlangerr.WrongArgs).
			WithLocation(call.Location)
	}
	env, ok := closure.Env.(*scope.Scope)
	if !ok {
		return ast.Void{}, dashlangerr.NewRuntimeError("closure has no defining scope").
			WithLocation(call.Location)
	}
	callCtx := c.withScope(env.Clone())
	for i, arg := range call.Args {
		value, err := c.Eval(arg)
		if err != nil {
			return ast.Void{}, err
		}
		callCtx.Scope.Set(closure.Params[i], value)
	}
	value, _, err := execProgram(closure.Body, callCtx)
	return value, err
}
