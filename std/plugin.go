/*
File : dashlang/std/plugin.go

Plugin bundles every extension in this package into a single ext.Plugin,
mirroring how the teacher's NewEvaluator() preloads std.Builtins in one
shot rather than registering functions one at a time.
*/
package std

import "github.com/gab1618/dashlang-sub000/ext"

// Plugin returns the default standard library: the §6 minimum plus the
// math/strings/vector/type-introspection supplement documented in the
// repo's expanded specification.
func Plugin() ext.Plugin {
	return ext.Funcs{
		"print":    print_,
		"println":  println_,
		"input":    input,
		"len":      lenFunc,
		"nth":      nth,
		"push":     push,
		"map_get":  mapGet,
		"map_set":  mapSet,

		"first":   first,
		"last":    last,
		"slice":   slice,
		"reverse": reverse,

		"abs":  abs,
		"max":  maxFn,
		"min":  minFn,
		"pow":  pow,
		"sqrt": sqrt,

		"upper": upper,
		"lower": lower,
		"split": split,
		"join":  join,
		"trim":  trim,

		"type_of":   typeOf,
		"atom_name": atomName,
	}
}
