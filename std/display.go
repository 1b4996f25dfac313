/*
File : dashlang/std/display.go

Display renders a Literal the way print/println show it on the console.
The format (Closure -> "Closure", Bool -> "True"/"False", Vector ->
"[e1, e2]", Tuple -> "(e1, e2)", Map -> "{ k1: v1, k2: v2 }", Atom ->
":name") is ported from the original evaluator's stdout display rules,
not invented here.
*/
package std

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/gab1618/dashlang-sub000/ast"
	"github.com/gab1618/dashlang-sub000/ext"
)

// Display resolves lit to its printable form. Vector/Tuple/Map elements
// are stored unevaluated, so rendering one forces each element through
// ctx.Eval first.
func Display(ctx ext.EvalContext, lit ast.Literal) (string, error) {
	switch v := lit.(type) {
	case ast.Int:
		return strconv.FormatInt(v.Value, 10), nil
	case ast.Float:
		return strconv.FormatFloat(v.Value, 'g', -1, 64), nil
	case ast.String:
		return v.Value, nil
	case ast.Bool:
		if v.Value {
			return "True", nil
		}
		return "False", nil
	case ast.Null:
		return "Null", nil
	case ast.Void:
		return "Void", nil
	case ast.Atom:
		return ":" + v.Value, nil
	case ast.BoundClosure:
		return "Closure", nil
	case ast.Closure:
		return "Closure", nil
	case ast.Vector:
		parts, err := displayExprs(ctx, v.Value)
		if err != nil {
			return "", err
		}
		return "[" + strings.Join(parts, ", ") + "]", nil
	case ast.Tuple:
		parts, err := displayExprs(ctx, v.Value)
		if err != nil {
			return "", err
		}
		return "(" + strings.Join(parts, ", ") + ")", nil
	case ast.Map:
		return displayMap(ctx, v.Value)
	default:
		return fmt.Sprintf("%v", lit), nil
	}
}

func displayExprs(ctx ext.EvalContext, exprs []ast.Expr) ([]string, error) {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		value, err := ctx.Eval(e)
		if err != nil {
			return nil, err
		}
		s, err := Display(ctx, value)
		if err != nil {
			return nil, err
		}
		parts[i] = s
	}
	return parts, nil
}

func displayMap(ctx ext.EvalContext, values map[string]ast.Expr) (string, error) {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		value, err := ctx.Eval(values[k])
		if err != nil {
			return "", err
		}
		s, err := Display(ctx, value)
		if err != nil {
			return "", err
		}
		parts[i] = k + ": " + s
	}
	return "{ " + strings.Join(parts, ", ") + " }", nil
}
