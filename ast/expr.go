package ast

// Expr is the closed sum type of expression nodes. GetLocation lets any
// caller recover a node's source span without a type switch.
type Expr interface {
	GetLocation() Location
	exprNode()
}

// Symbol is a bare identifier reference, resolved against a Scope at
// evaluation time.
type Symbol struct {
	Value    string
	Location Location
}

func (s Symbol) GetLocation() Location { return s.Location }
func (Symbol) exprNode()                {}

// BinaryExpr is `left OP right`. Its Location spans Left.GetLocation().Start
// to Right.GetLocation().End, per §3.1.
type BinaryExpr struct {
	Left     Expr
	Right    Expr
	Operator BinaryOperator
	Location Location
}

func (b *BinaryExpr) GetLocation() Location { return b.Location }
func (*BinaryExpr) exprNode()                {}

// UnaryExpr is `OP operand` (`!e` or `~e`).
type UnaryExpr struct {
	Operator UnaryOperator
	Operand  Expr
	Location Location
}

func (u *UnaryExpr) GetLocation() Location { return u.Location }
func (*UnaryExpr) exprNode()                {}

// Call is `symbol(args...)`. Args are kept unevaluated — the callee (a
// user closure or a host extension) decides when and whether to evaluate
// each one (§4.6).
type Call struct {
	Symbol   string
	Args     []Expr
	Location Location
}

func (c *Call) GetLocation() Location { return c.Location }
func (*Call) exprNode()                {}

// Assignment is `symbol = value` (and the desugared form of `symbol OP=
// value`, see parser/expr.go).
type Assignment struct {
	Symbol   string
	Value    Expr
	Location Location
}

func (a *Assignment) GetLocation() Location { return a.Location }
func (*Assignment) exprNode()                {}

// DestructuringAssignment is `(a, b, ...) = value`, where value must
// evaluate to a Tuple of matching arity.
type DestructuringAssignment struct {
	Symbols  []Symbol
	Value    Expr
	Location Location
}

func (d *DestructuringAssignment) GetLocation() Location { return d.Location }
func (*DestructuringAssignment) exprNode()                {}

// SubExpr is a parenthesized expression: behaviorally transparent but
// keeps its own span so `(1 + 2) * 3` can report a location for the
// parenthesized sub-term distinct from its inner BinaryExpr.
type SubExpr struct {
	Value    Expr
	Location Location
}

func (s *SubExpr) GetLocation() Location { return s.Location }
func (*SubExpr) exprNode()                {}

// LiteralExpr wraps a Literal so it satisfies Expr; every literal already
// carries its own Location via Literal.GetLocation().
type LiteralExpr struct {
	Literal Literal
}

func (l LiteralExpr) GetLocation() Location { return l.Literal.GetLocation() }
func (LiteralExpr) exprNode()                {}
