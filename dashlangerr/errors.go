/*
File    : dashlang/dashlangerr/errors.go

Package dashlangerr implements Dashlang's two error families (§7 of the
spec): ParsingError, always carrying a location, and RuntimeError, carrying
a kind from a small closed taxonomy plus usually a location. Both satisfy
the standard `error` interface so they compose with ordinary Go error
handling; callers that need the extra fields type-assert back to the
concrete type.
*/
package dashlangerr

import (
	"fmt"

	"github.com/gab1618/dashlang-sub000/ast"
)

// RuntimeErrorKind enumerates the taxonomy a RuntimeError may carry.
type RuntimeErrorKind int

const (
	// Default covers runtime failures with no more specific kind.
	Default RuntimeErrorKind = iota
	// NonCallable is raised when a Call's symbol resolves to neither a
	// user closure nor a registered extension.
	NonCallable
	// InvalidOperation is raised by ill-typed operator application,
	// integer division by zero, and malformed destructuring.
	InvalidOperation
	// WrongArgs is raised on closure/extension arity mismatches.
	WrongArgs
)

// Hint returns a short, user-facing suggestion for the kind, used by the
// diagnostic renderer.
func (k RuntimeErrorKind) Hint() string {
	switch k {
	case NonCallable:
		return "this symbol is not a function or closure"
	case InvalidOperation:
		return "check the operand types and values"
	case WrongArgs:
		return "wrong number of arguments for this call"
	default:
		return "an error occurred while running the program"
	}
}

func (k RuntimeErrorKind) String() string {
	switch k {
	case NonCallable:
		return "NonCallable"
	case InvalidOperation:
		return "InvalidOperation"
	case WrongArgs:
		return "WrongArgs"
	default:
		return "Default"
	}
}

// RuntimeError is surfaced by the evaluator and by extensions.
type RuntimeError struct {
	Message  string
	Kind     RuntimeErrorKind
	Location *ast.Location
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("runtime error (%s): %s", e.Kind, e.Message)
}

// NewRuntimeError builds a Default-kind RuntimeError with no location.
// Chain WithKind/WithLocation to refine it.
func NewRuntimeError(message string) *RuntimeError {
	return &RuntimeError{Message: message, Kind: Default}
}

// WithKind returns a copy of the error tagged with kind.
func (e *RuntimeError) WithKind(kind RuntimeErrorKind) *RuntimeError {
	cp := *e
	cp.Kind = kind
	return &cp
}

// WithLocation returns a copy of the error tagged with loc.
func (e *RuntimeError) WithLocation(loc ast.Location) *RuntimeError {
	cp := *e
	cp.Location = &loc
	return &cp
}

// ParsingError is surfaced by the parser; it always carries a Location
// (the span of the offending rule).
type ParsingError struct {
	Message  string
	Location ast.Location
}

func (e *ParsingError) Error() string {
	return fmt.Sprintf("parse error: %s", e.Message)
}

// Hint returns the parser's one-size-fits-all hint, kept for symmetry
// with RuntimeErrorKind.Hint and the renderer's shared code path.
func (e *ParsingError) Hint() string {
	return "check the syntax around this span"
}

// NewParsingError builds a ParsingError at loc.
func NewParsingError(message string, loc ast.Location) *ParsingError {
	return &ParsingError{Message: message, Location: loc}
}
