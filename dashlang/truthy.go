package dashlang

import "github.com/gab1618/dashlang-sub000/ast"

// Truthy implements the scalar-to-boolean coercion table of §4.4.2, used
// by If/While/For conditions and by And/Or/Not.
func Truthy(v ast.Literal) bool {
	switch val := v.(type) {
	case ast.Bool:
		return val.Value
	case ast.Int:
		return val.Value != 0
	case ast.Float:
		return val.Value != 0.0
	case ast.String:
		return val.Value != ""
	case ast.Null:
		return false
	case ast.Void:
		return false
	default:
		// Vector, Tuple, Map, Atom, Closure/BoundClosure are always truthy.
		return true
	}
}
