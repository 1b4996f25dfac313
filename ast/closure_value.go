package ast

// BoundClosure is the runtime value a Closure literal evaluates to: the
// same syntax (Params/Body/Location) plus Env, the defining scope
// captured by reference at the moment the closure literal was evaluated.
//
// Env is typed as interface{} (rather than *scope.Scope) so this package
// has no dependency on scope — the dashlang package, which does the
// binding, type-asserts it back. This is the one place the value model
// needs something beyond pure syntax: every other Literal variant is
// exactly what the parser produced, but a closure isn't a real value
// until it remembers where it was defined.
type BoundClosure struct {
	Params   []string
	Body     Program
	Location Location
	Env      interface{}
}

func (c BoundClosure) GetLocation() Location { return c.Location }
func (BoundClosure) literalNode()             {}
