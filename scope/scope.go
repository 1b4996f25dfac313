/*
File    : dashlang/scope/scope.go

Package scope implements Dashlang's lexical scope model (§3.5 of the
spec): a mapping from symbol name to value, plus an optional parent. Gets
walk up the parent chain and a miss is never an error — it returns Void.
Sets always write into the current frame only. Frames are shared by
reference (a Go pointer), so mutations through one handle to a frame are
observable through any other handle to the same frame; cloning a scope
does not copy bindings, it wraps them in a fresh, empty child frame.

This shared-frame-plus-parent-link shape is what gives closures lexical
capture (the closure's defining frame is still reachable as a parent)
without function-local bindings leaking back into the caller (the callee
writes into its own, fresh child frame).
*/
package scope

import "github.com/gab1618/dashlang-sub000/ast"

// Scope is a single lexical frame. The zero value is not ready to use;
// construct one with New.
type Scope struct {
	bindings map[string]ast.Literal
	parent   *Scope
}

// New creates a root scope with no parent.
func New() *Scope {
	return &Scope{bindings: make(map[string]ast.Literal)}
}

// Get searches the current frame first, then walks parents. A miss at the
// top of the chain returns ast.Void{} rather than an error — Dashlang
// never treats an undefined symbol as a failure (only an undefined
// *callable* is, see dashlangerr.NonCallable).
func (s *Scope) Get(name string) ast.Literal {
	for frame := s; frame != nil; frame = frame.parent {
		if v, ok := frame.bindings[name]; ok {
			return v
		}
	}
	return ast.Void{}
}

// Set writes into the current frame only; it never mutates an ancestor
// frame, even if name is already bound higher up the chain.
func (s *Scope) Set(name string, value ast.Literal) {
	s.bindings[name] = value
}

// Clone produces a new, empty child frame whose parent is s. Reads through
// the child fall through to s's bindings (and s's own ancestors); writes
// through the child land only in the new frame, never in s.
//
// This is the operation every function call uses to create an evaluation
// frame (the global program runs directly in the root scope): the closure body runs
// against Clone() of the closure's defining scope, so it sees the
// defining scope's bindings read-through but can't leak locals back into
// it.
func (s *Scope) Clone() *Scope {
	return &Scope{bindings: make(map[string]ast.Literal), parent: s}
}
