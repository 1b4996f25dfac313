/*
File : dashlang/std/types.go

type_of/atom_name are Dashlang's type-introspection surface, grounded in
the tagged-type switch objects.GoMixType uses in the teacher's
objects/objects.go — here over Dashlang's own closed Literal sum type
instead of GoMixObject.
*/
package std

import (
	"github.com/gab1618/dashlang-sub000/ast"
	"github.com/gab1618/dashlang-sub000/ext"
)

func typeOf(ctx ext.EvalContext, call *ast.Call) (ast.Literal, error) {
	if len(call.Args) != 1 {
		return ast.Void{}, wrongArgs(call, "type_of(value)")
	}
	value, err := ctx.Eval(call.Args[0])
	if err != nil {
		return ast.Void{}, err
	}
	var name string
	switch value.(type) {
	case ast.Int:
		name = "int"
	case ast.Float:
		name = "float"
	case ast.String:
		name = "string"
	case ast.Bool:
		name = "bool"
	case ast.Vector:
		name = "vector"
	case ast.Tuple:
		name = "tuple"
	case ast.Map:
		name = "map"
	case ast.Atom:
		name = "atom"
	case ast.BoundClosure, ast.Closure:
		name = "closure"
	case ast.Null:
		name = "null"
	case ast.Void:
		name = "void"
	default:
		name = "unknown"
	}
	return ast.Atom{Value: name}, nil
}

func atomName(ctx ext.EvalContext, call *ast.Call) (ast.Literal, error) {
	if len(call.Args) != 1 {
		return ast.Void{}, wrongArgs(call, "atom_name(a)")
	}
	value, err := ctx.Eval(call.Args[0])
	if err != nil {
		return ast.Void{}, err
	}
	a, ok := value.(ast.Atom)
	if !ok {
		return ast.Void{}, invalidOp(call, "atom_name requires an atom")
	}
	return ast.String{Value: a.Value}, nil
}
