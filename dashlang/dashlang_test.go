package dashlang_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gab1618/dashlang-sub000/ast"
	"github.com/gab1618/dashlang-sub000/dashlang"
	"github.com/gab1618/dashlang-sub000/dashlangerr"
	"github.com/gab1618/dashlang-sub000/parser"
)

func runSrc(t *testing.T, src string) (ast.Literal, error) {
	t.Helper()
	program, err := parser.Parse(src)
	require.NoError(t, err)
	return dashlang.NewContext().Run(program)
}

// intValue unwraps an ast.Int's payload, ignoring Location — values
// computed from parsed source carry the byte span of the expression or
// literal that produced them, which a zero-Location ast.Int would not match.
func intValue(t *testing.T, lit ast.Literal) int64 {
	t.Helper()
	i, ok := lit.(ast.Int)
	require.True(t, ok, "expected ast.Int, got %T", lit)
	return i.Value
}

func TestArithmeticPrecedence(t *testing.T) {
	value, err := runSrc(t, "return 1 + 2 * 3")
	require.NoError(t, err)
	assert.EqualValues(t, 7, intValue(t, value))
}

func TestIntDivisionByZeroIsInvalidOperation(t *testing.T) {
	_, err := runSrc(t, "return 1 / 0")
	require.Error(t, err)
	rerr, ok := err.(*dashlangerr.RuntimeError)
	require.True(t, ok)
	assert.Equal(t, dashlangerr.InvalidOperation, rerr.Kind)
	require.NotNil(t, rerr.Location)
}

func TestFloatDivisionByZeroYieldsInf(t *testing.T) {
	value, err := runSrc(t, "return 1.0 / 0.0")
	require.NoError(t, err)
	f, ok := value.(ast.Float)
	require.True(t, ok)
	assert.True(t, math.IsInf(f.Value, 1))
}

func TestIntFloatMixPromotesToFloat(t *testing.T) {
	value, err := runSrc(t, "return 1 + 2.5")
	require.NoError(t, err)
	f, ok := value.(ast.Float)
	require.True(t, ok)
	assert.Equal(t, 3.5, f.Value)
}

// crash is bound to nothing, so evaluating the right operand would fail
// with NonCallable; a successful run shows it was never evaluated.
func TestShortCircuitAndSkipsRightSideEffect(t *testing.T) {
	value, err := runSrc(t, `return false && crash()`)
	require.NoError(t, err)
	assert.Equal(t, ast.Bool{Value: false}, value)
	_ = value
}

func TestShortCircuitOrSkipsRightSideEffect(t *testing.T) {
	value, err := runSrc(t, `return true || crash()`)
	require.NoError(t, err)
	assert.Equal(t, ast.Bool{Value: true}, value)
}

// A closure reads its defining scope through the parent-link chain, but
// assignment always writes into the call's own fresh frame (§3.5): three
// successive calls each independently read counter=0 from the shared
// outer frame and compute 1, since no call can write back into it.
func TestClosureReadsOuterScopeButAssignmentDoesNotMutateIt(t *testing.T) {
	value, err := runSrc(t, `counter = 0
increment = () { counter = counter + 1 return counter }
increment()
increment()
return increment()`)
	require.NoError(t, err)
	assert.EqualValues(t, 1, intValue(t, value))
}

func TestWhileLoopAccumulates(t *testing.T) {
	value, err := runSrc(t, `total = 0
i = 0
while i < 5 {
  total = total + i
  i = i + 1
}
return total`)
	require.NoError(t, err)
	assert.EqualValues(t, 10, intValue(t, value))
}

func TestForLoopAccumulates(t *testing.T) {
	value, err := runSrc(t, `total = 0
for i = 0; i < 5; i += 1 {
  total += i
}
return total`)
	require.NoError(t, err)
	assert.EqualValues(t, 10, intValue(t, value))
}

func TestIfElseIfChainPicksFirstTrueBranch(t *testing.T) {
	src := `n = 2
if n == 1 {
  return "one"
} else if n == 2 {
  return "two"
} else {
  return "other"
}`
	value, err := runSrc(t, src)
	require.NoError(t, err)
	s, ok := value.(ast.String)
	require.True(t, ok)
	assert.Equal(t, "two", s.Value)
}

func TestTupleDestructuring(t *testing.T) {
	value, err := runSrc(t, `(a, b) = (1, 2)
return a + b`)
	require.NoError(t, err)
	assert.EqualValues(t, 3, intValue(t, value))
}

func TestDestructuringArityMismatchIsInvalidOperation(t *testing.T) {
	_, err := runSrc(t, `(a, b) = (1, 2, 3)`)
	require.Error(t, err)
	rerr, ok := err.(*dashlangerr.RuntimeError)
	require.True(t, ok)
	assert.Equal(t, dashlangerr.InvalidOperation, rerr.Kind)
}

func TestCallingUndefinedSymbolIsNonCallable(t *testing.T) {
	_, err := runSrc(t, `return nope(1)`)
	require.Error(t, err)
	rerr, ok := err.(*dashlangerr.RuntimeError)
	require.True(t, ok)
	assert.Equal(t, dashlangerr.NonCallable, rerr.Kind)
}

func TestClosureArityMismatchIsWrongArgs(t *testing.T) {
	_, err := runSrc(t, `f = (a, b) { return a + b }
return f(1)`)
	require.Error(t, err)
	rerr, ok := err.(*dashlangerr.RuntimeError)
	require.True(t, ok)
	assert.Equal(t, dashlangerr.WrongArgs, rerr.Kind)
}

func TestTruthinessTable(t *testing.T) {
	assert.True(t, dashlang.Truthy(ast.Int{Value: 1}))
	assert.False(t, dashlang.Truthy(ast.Int{Value: 0}))
	assert.False(t, dashlang.Truthy(ast.String{Value: ""}))
	assert.True(t, dashlang.Truthy(ast.String{Value: "x"}))
	assert.False(t, dashlang.Truthy(ast.Null{}))
	assert.False(t, dashlang.Truthy(ast.Void{}))
	assert.True(t, dashlang.Truthy(ast.Atom{Value: "ok"}))
}

func TestBitwiseOperators(t *testing.T) {
	value, err := runSrc(t, "return 6 & 3")
	require.NoError(t, err)
	assert.EqualValues(t, 2, intValue(t, value))

	value, err = runSrc(t, "return 1 << 4")
	require.NoError(t, err)
	assert.EqualValues(t, 16, intValue(t, value))
}

func TestPipeAppliesFunctionWithLeftAsFirstArg(t *testing.T) {
	value, err := runSrc(t, `double = (x) { return x * 2 }
return 5 |> double()`)
	require.NoError(t, err)
	assert.EqualValues(t, 10, intValue(t, value))
}

func TestDashPipeReassignsTheSymbol(t *testing.T) {
	value, err := runSrc(t, `x = 5
double = (n) { return n * 2 }
x |>= double()
return x`)
	require.NoError(t, err)
	assert.EqualValues(t, 10, intValue(t, value))
}

func TestNestedScopeDoesNotLeakNewLocals(t *testing.T) {
	value, err := runSrc(t, `f = () { leaked = 99 return leaked }
f()
return leaked`)
	require.NoError(t, err)
	assert.Equal(t, ast.Void{}, value)
}

func TestReturnInsideWhilePropagatesOutward(t *testing.T) {
	value, err := runSrc(t, `f = () {
  i = 0
  while true {
    if i == 3 {
      return i
    }
    i = i + 1
  }
}
return f()`)
	require.NoError(t, err)
	assert.EqualValues(t, 3, intValue(t, value))
}

func TestProgramWithNoReturnYieldsVoid(t *testing.T) {
	value, err := runSrc(t, `x = 1 + 1`)
	require.NoError(t, err)
	assert.Equal(t, ast.Void{}, value)
}
