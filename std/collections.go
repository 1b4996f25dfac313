/*
File : dashlang/std/collections.go

len/nth/push/map_get/map_set are the §6 minimum stdlib's container
operations, ported from original_source/packages/eval/src/stdlib/len.rs,
nth.rs, push.rs and stdlib/map/map_get.rs, map_set.rs. first/last/slice/
reverse supplement them, grounded in the teacher's std/list.go coverage
(ported as Dashlang extensions, not copied — the teacher's list
functions operate on its own eagerly-typed object model).

Vector/Tuple elements are stored as unevaluated ast.Expr (§3.2); these
functions only evaluate the elements they actually return, leaving the
rest lazy.
*/
package std

import (
	"github.com/gab1618/dashlang-sub000/ast"
	"github.com/gab1618/dashlang-sub000/dashlangerr"
	"github.com/gab1618/dashlang-sub000/ext"
)

func wrongArgs(call *ast.Call, want string) error {
	return dashlangerr.NewRuntimeError("expected " + want).
		WithKind(dashlangerr.WrongArgs).
		WithLocation(call.Location)
}

func invalidOp(call *ast.Call, message string) error {
	return dashlangerr.NewRuntimeError(message).
		WithKind(dashlangerr.InvalidOperation).
		WithLocation(call.Location)
}

// len(x) reports the byte length of a String or the element count of a
// Vector; every other type is InvalidOperation, per §6's contract and
// stdlib/len.rs's match arms (Tuple and Map are not len-able).
func lenFunc(ctx ext.EvalContext, call *ast.Call) (ast.Literal, error) {
	if len(call.Args) != 1 {
		return ast.Void{}, wrongArgs(call, "len(collection)")
	}
	value, err := ctx.Eval(call.Args[0])
	if err != nil {
		return ast.Void{}, err
	}
	switch v := value.(type) {
	case ast.Vector:
		return ast.Int{Value: int64(len(v.Value))}, nil
	case ast.String:
		return ast.Int{Value: int64(len(v.Value))}, nil
	default:
		return ast.Void{}, invalidOp(call, "len requires a string or a vector")
	}
}

func vectorElements(call *ast.Call, value ast.Literal) ([]ast.Expr, error) {
	v, ok := value.(ast.Vector)
	if !ok {
		return nil, invalidOp(call, "expected a vector")
	}
	return v.Value, nil
}

func indexOf(call *ast.Call, ctx ext.EvalContext, expr ast.Expr) (int, error) {
	idxVal, err := ctx.Eval(expr)
	if err != nil {
		return 0, err
	}
	idx, ok := idxVal.(ast.Int)
	if !ok {
		return 0, invalidOp(call, "index must be an integer")
	}
	return int(idx.Value), nil
}

// nth(vec, i) returns the i-th element of a vector, forcing it.
func nth(ctx ext.EvalContext, call *ast.Call) (ast.Literal, error) {
	if len(call.Args) != 2 {
		return ast.Void{}, wrongArgs(call, "nth(vector, index)")
	}
	value, err := ctx.Eval(call.Args[0])
	if err != nil {
		return ast.Void{}, err
	}
	elems, err := vectorElements(call, value)
	if err != nil {
		return ast.Void{}, err
	}
	idx, err := indexOf(call, ctx, call.Args[1])
	if err != nil {
		return ast.Void{}, err
	}
	if idx < 0 || idx >= len(elems) {
		return ast.Void{}, invalidOp(call, "index out of range")
	}
	return ctx.Eval(elems[idx])
}

// push(seq, x) returns a new vector with x appended, or — when seq is a
// String — the string with x concatenated onto the end; x must then also
// be a String, any other type is InvalidOperation (§6: "a new
// vector/string with item appended, concatenated for strings"). Dashlang
// vectors and strings are immutable values, so push never mutates its
// argument.
func push(ctx ext.EvalContext, call *ast.Call) (ast.Literal, error) {
	if len(call.Args) != 2 {
		return ast.Void{}, wrongArgs(call, "push(sequence, value)")
	}
	value, err := ctx.Eval(call.Args[0])
	if err != nil {
		return ast.Void{}, err
	}
	if s, ok := value.(ast.String); ok {
		item, err := ctx.Eval(call.Args[1])
		if err != nil {
			return ast.Void{}, err
		}
		suffix, ok := item.(ast.String)
		if !ok {
			return ast.Void{}, invalidOp(call, "push onto a string requires a string argument")
		}
		return ast.String{Value: s.Value + suffix.Value}, nil
	}
	elems, err := vectorElements(call, value)
	if err != nil {
		return ast.Void{}, err
	}
	next := make([]ast.Expr, len(elems)+1)
	copy(next, elems)
	next[len(elems)] = call.Args[1]
	return ast.Vector{Value: next}, nil
}

func atomOrStringKey(ctx ext.EvalContext, call *ast.Call, expr ast.Expr) (string, error) {
	value, err := ctx.Eval(expr)
	if err != nil {
		return "", err
	}
	switch v := value.(type) {
	case ast.Atom:
		return v.Value, nil
	case ast.String:
		return v.Value, nil
	default:
		return "", invalidOp(call, "map key must be an atom or a string")
	}
}

// map_get(map, key) returns the value bound to key, forcing it, or a
// Null if the key is absent.
func mapGet(ctx ext.EvalContext, call *ast.Call) (ast.Literal, error) {
	if len(call.Args) != 2 {
		return ast.Void{}, wrongArgs(call, "map_get(map, key)")
	}
	value, err := ctx.Eval(call.Args[0])
	if err != nil {
		return ast.Void{}, err
	}
	m, ok := value.(ast.Map)
	if !ok {
		return ast.Void{}, invalidOp(call, "expected a map")
	}
	key, err := atomOrStringKey(ctx, call, call.Args[1])
	if err != nil {
		return ast.Void{}, err
	}
	expr, ok := m.Value[key]
	if !ok {
		return ast.Null{}, nil
	}
	return ctx.Eval(expr)
}

// map_set(map, key, value) returns a new map with key bound to value.
func mapSet(ctx ext.EvalContext, call *ast.Call) (ast.Literal, error) {
	if len(call.Args) != 3 {
		return ast.Void{}, wrongArgs(call, "map_set(map, key, value)")
	}
	value, err := ctx.Eval(call.Args[0])
	if err != nil {
		return ast.Void{}, err
	}
	m, ok := value.(ast.Map)
	if !ok {
		return ast.Void{}, invalidOp(call, "expected a map")
	}
	key, err := atomOrStringKey(ctx, call, call.Args[1])
	if err != nil {
		return ast.Void{}, err
	}
	next := make(map[string]ast.Expr, len(m.Value)+1)
	for k, v := range m.Value {
		next[k] = v
	}
	next[key] = call.Args[2]
	return ast.Map{Value: next}, nil
}

// first(vec) / last(vec) return the vector's first/last element, forced.
func first(ctx ext.EvalContext, call *ast.Call) (ast.Literal, error) {
	if len(call.Args) != 1 {
		return ast.Void{}, wrongArgs(call, "first(vector)")
	}
	value, err := ctx.Eval(call.Args[0])
	if err != nil {
		return ast.Void{}, err
	}
	elems, err := vectorElements(call, value)
	if err != nil {
		return ast.Void{}, err
	}
	if len(elems) == 0 {
		return ast.Void{}, invalidOp(call, "first of an empty vector")
	}
	return ctx.Eval(elems[0])
}

func last(ctx ext.EvalContext, call *ast.Call) (ast.Literal, error) {
	if len(call.Args) != 1 {
		return ast.Void{}, wrongArgs(call, "last(vector)")
	}
	value, err := ctx.Eval(call.Args[0])
	if err != nil {
		return ast.Void{}, err
	}
	elems, err := vectorElements(call, value)
	if err != nil {
		return ast.Void{}, err
	}
	if len(elems) == 0 {
		return ast.Void{}, invalidOp(call, "last of an empty vector")
	}
	return ctx.Eval(elems[len(elems)-1])
}

// slice(vec, from, to) returns a new vector over the half-open [from, to)
// range, unevaluated.
func slice(ctx ext.EvalContext, call *ast.Call) (ast.Literal, error) {
	if len(call.Args) != 3 {
		return ast.Void{}, wrongArgs(call, "slice(vector, from, to)")
	}
	value, err := ctx.Eval(call.Args[0])
	if err != nil {
		return ast.Void{}, err
	}
	elems, err := vectorElements(call, value)
	if err != nil {
		return ast.Void{}, err
	}
	from, err := indexOf(call, ctx, call.Args[1])
	if err != nil {
		return ast.Void{}, err
	}
	to, err := indexOf(call, ctx, call.Args[2])
	if err != nil {
		return ast.Void{}, err
	}
	if from < 0 || to > len(elems) || from > to {
		return ast.Void{}, invalidOp(call, "slice range out of bounds, expected 0 <= from <= to <= len(vector)")
	}
	out := make([]ast.Expr, to-from)
	copy(out, elems[from:to])
	return ast.Vector{Value: out}, nil
}

// reverse(vec) returns a new vector with elements in reverse order.
func reverse(ctx ext.EvalContext, call *ast.Call) (ast.Literal, error) {
	if len(call.Args) != 1 {
		return ast.Void{}, wrongArgs(call, "reverse(vector)")
	}
	value, err := ctx.Eval(call.Args[0])
	if err != nil {
		return ast.Void{}, err
	}
	elems, err := vectorElements(call, value)
	if err != nil {
		return ast.Void{}, err
	}
	out := make([]ast.Expr, len(elems))
	for i, e := range elems {
		out[len(elems)-1-i] = e
	}
	return ast.Vector{Value: out}, nil
}
