/*
File    : dashlang/ext/ext.go

Package ext defines the host extension protocol (§3.6 of the spec): an
Extension is an opaque host-provided callable taking the current Context
and the unevaluated Call node, returning a Literal or an error. A Plugin
groups named Extensions for bulk registration.

Extension and Plugin are declared in their own package, independent of
dashlang (which owns Context) and std (which implements Plugins), purely
to keep the protocol's type declarations free of an import cycle between
the package that calls extensions and the packages that define them.
*/
package ext

import (
	"bufio"
	"io"

	"github.com/gab1618/dashlang-sub000/ast"
)

// EvalContext is the minimal surface an Extension needs from a Context:
// enough to evaluate its own arguments, read/write the caller's scope,
// and reach the run's shared I/O streams (for print/println/input).
// dashlang.Context implements this.
type EvalContext interface {
	Eval(expr ast.Expr) (ast.Literal, error)
	ScopeGet(name string) ast.Literal
	ScopeSet(name string, value ast.Literal)
	Output() io.Writer
	Input() *bufio.Reader
}

// Extension is a host-provided callable. It receives the entire Call node
// with unevaluated arguments — by design (§4.6) — so it can inspect atoms,
// accept lazy expressions, or walk composite literals without forcing
// them ahead of time.
type Extension func(ctx EvalContext, call *ast.Call) (ast.Literal, error)

// Plugin is a named collection of extensions registered together, e.g.
// the default standard library (std.Plugin()).
type Plugin interface {
	Extensions() map[string]Extension
}

// Funcs adapts a plain map literal into a Plugin, the shape every
// concrete plugin in std/ uses to build itself.
type Funcs map[string]Extension

func (f Funcs) Extensions() map[string]Extension { return f }
