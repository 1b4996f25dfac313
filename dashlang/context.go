/*
File    : dashlang/dashlang/context.go

Package dashlang implements the tree-walking evaluator core (§4 of the
spec): Context owns a Scope and an extension registry and is the single
entry point (Eval/Run) used by the driver, the REPL, and recursively by
extensions that need to force one of their own lazy arguments.
*/
package dashlang

import (
	"bufio"
	"io"
	"os"

	"github.com/gab1618/dashlang-sub000/ast"
	"github.com/gab1618/dashlang-sub000/ext"
	"github.com/gab1618/dashlang-sub000/scope"
)

// Context is the runtime pair of a scope and an extension registry
// (§3.7). Cloning a Context clones the scope (producing a child frame)
// and shares the extension registry, Writer and Reader by reference —
// extensions are registered once, globally, and visible from every
// nested call, and I/O is a single shared stream for the whole run.
type Context struct {
	Scope      *scope.Scope
	Extensions map[string]ext.Extension
	Writer     io.Writer
	Reader     *bufio.Reader
}

// NewContext creates a Context with a fresh root scope and an empty
// extension registry, writing to stdout and reading from stdin by
// default (overridable with SetWriter/SetReader, e.g. to capture output
// in tests).
func NewContext() *Context {
	return &Context{
		Scope:      scope.New(),
		Extensions: make(map[string]ext.Extension),
		Writer:     os.Stdout,
		Reader:     bufio.NewReader(os.Stdin),
	}
}

// SetWriter redirects the stdlib's print/println output.
func (c *Context) SetWriter(w io.Writer) { c.Writer = w }

// SetReader redirects the stdlib's input() source.
func (c *Context) SetReader(r io.Reader) { c.Reader = bufio.NewReader(r) }

// UseExtension registers a single extension under name.
func (c *Context) UseExtension(name string, e ext.Extension) {
	c.Extensions[name] = e
}

// UsePlugin registers every extension a Plugin provides.
func (c *Context) UsePlugin(p ext.Plugin) {
	for name, e := range p.Extensions() {
		c.UseExtension(name, e)
	}
}

// Clone produces a Context over a fresh child frame of c.Scope, sharing
// c's extension registry by reference. This is the general-purpose clone
// for anywhere a new lexical frame over the *current* scope is wanted;
// Run executes against c's own scope without cloning, and closure calls
// instead build a frame over the closure's defining scope (see
// callClosure in call.go), not over the caller's scope.
func (c *Context) Clone() *Context {
	return &Context{Scope: c.Scope.Clone(), Extensions: c.Extensions, Writer: c.Writer, Reader: c.Reader}
}

// withScope builds a Context sharing c's extension registry but rooted at
// an arbitrary scope — used to evaluate a closure body against its own
// defining scope rather than the caller's.
func (c *Context) withScope(s *scope.Scope) *Context {
	return &Context{Scope: s, Extensions: c.Extensions, Writer: c.Writer, Reader: c.Reader}
}

// ScopeGet implements ext.EvalContext.
func (c *Context) ScopeGet(name string) ast.Literal { return c.Scope.Get(name) }

// ScopeSet implements ext.EvalContext.
func (c *Context) ScopeSet(name string, value ast.Literal) { c.Scope.Set(name, value) }

// Output implements ext.EvalContext.
func (c *Context) Output() io.Writer { return c.Writer }

// Input implements ext.EvalContext.
func (c *Context) Input() *bufio.Reader { return c.Reader }

// Run executes program against c and returns its result: the value of
// the first Return statement reached (possibly nested inside if/while/for
// bodies), or ast.Void{} if execution completes without one (§4.4).
func (c *Context) Run(program ast.Program) (ast.Literal, error) {
	value, _, err := execProgram(program, c)
	return value, err
}
