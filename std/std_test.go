package std_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gab1618/dashlang-sub000/ast"
	"github.com/gab1618/dashlang-sub000/dashlang"
	"github.com/gab1618/dashlang-sub000/parser"
	"github.com/gab1618/dashlang-sub000/std"
)

func run(t *testing.T, src string) (ast.Literal, string) {
	t.Helper()
	program, err := parser.Parse(src)
	require.NoError(t, err)

	ctx := dashlang.NewContext()
	ctx.UsePlugin(std.Plugin())
	var out bytes.Buffer
	ctx.SetWriter(&out)

	value, err := ctx.Run(program)
	require.NoError(t, err)
	return value, out.String()
}

// intValue/stringValue unwrap a Literal's scalar payload, ignoring
// Location — values read back out of parsed source (e.g. via nth/map_get)
// carry the real byte span of their literal token, which plain
// assert.Equal against a zero-Location struct would wrongly reject.
func intValue(t *testing.T, lit ast.Literal) int64 {
	t.Helper()
	i, ok := lit.(ast.Int)
	require.True(t, ok, "expected ast.Int, got %T", lit)
	return i.Value
}

func stringValue(t *testing.T, lit ast.Literal) string {
	t.Helper()
	s, ok := lit.(ast.String)
	require.True(t, ok, "expected ast.String, got %T", lit)
	return s.Value
}

func TestPrintlnWritesToConfiguredWriter(t *testing.T) {
	value, out := run(t, `return println("hello")`)
	assert.Equal(t, "hello\n", out)
	assert.Equal(t, "hello", stringValue(t, value))
}

func TestLenOverVectorAndString(t *testing.T) {
	value, _ := run(t, `return len([1, 2, 3])`)
	assert.Equal(t, ast.Int{Value: 3}, value)

	value, _ = run(t, `return len("abcd")`)
	assert.Equal(t, ast.Int{Value: 4}, value)
}

// TestLenRejectsTupleAndMap pins §6's contract: len is defined only for
// String and Vector; other types (including Tuple and Map) are
// InvalidOperation, per stdlib/len.rs's match arms.
func TestLenRejectsTupleAndMap(t *testing.T) {
	program, err := parser.Parse(`return len((1, 2))`)
	require.NoError(t, err)
	ctx := dashlang.NewContext()
	ctx.UsePlugin(std.Plugin())
	_, err = ctx.Run(program)
	assert.Error(t, err)

	program2, err := parser.Parse(`return len({a: 1})`)
	require.NoError(t, err)
	ctx2 := dashlang.NewContext()
	ctx2.UsePlugin(std.Plugin())
	_, err = ctx2.Run(program2)
	assert.Error(t, err)
}

func TestNthAndPush(t *testing.T) {
	value, _ := run(t, `v = [1, 2, 3]
return nth(v, 1)`)
	assert.EqualValues(t, 2, intValue(t, value))

	value, _ = run(t, `v = push([1, 2], 3)
return nth(v, 2)`)
	assert.EqualValues(t, 3, intValue(t, value))
}

func TestPushOnStringConcatenates(t *testing.T) {
	value, _ := run(t, `return push("ab", "cd")`)
	assert.Equal(t, ast.String{Value: "abcd"}, value)
}

func TestMapGetAndSet(t *testing.T) {
	value, _ := run(t, `m = {count: 0}
m = map_set(m, :count, 5)
return map_get(m, :count)`)
	assert.EqualValues(t, 5, intValue(t, value))
}

func TestMathBuiltins(t *testing.T) {
	value, _ := run(t, `return abs(-3)`)
	assert.Equal(t, ast.Int{Value: 3}, value)

	value, _ = run(t, `return max(3, 7)`)
	assert.Equal(t, ast.Int{Value: 7}, value)

	value, _ = run(t, `return pow(2, 10)`)
	assert.Equal(t, ast.Int{Value: 1024}, value)
}

func TestStringBuiltins(t *testing.T) {
	value, _ := run(t, `return upper("abc")`)
	assert.Equal(t, ast.String{Value: "ABC"}, value)

	value, _ = run(t, `v = split("a,b,c", ",")
return join(v, "-")`)
	assert.Equal(t, ast.String{Value: "a-b-c"}, value)
}

func TestTypeOfAndAtomName(t *testing.T) {
	value, _ := run(t, `return type_of(1)`)
	assert.Equal(t, ast.Atom{Value: "int"}, value)

	value, _ = run(t, `return atom_name(:ok)`)
	assert.Equal(t, ast.String{Value: "ok"}, value)
}

func TestVectorHelpers(t *testing.T) {
	value, _ := run(t, `return first([9, 8, 7])`)
	assert.EqualValues(t, 9, intValue(t, value))

	value, _ = run(t, `return last([9, 8, 7])`)
	assert.EqualValues(t, 7, intValue(t, value))

	value, _ = run(t, `v = reverse([1, 2, 3])
return nth(v, 0)`)
	assert.EqualValues(t, 3, intValue(t, value))
}

func TestInputReadsConfiguredReader(t *testing.T) {
	program, err := parser.Parse(`return input()`)
	require.NoError(t, err)

	ctx := dashlang.NewContext()
	ctx.UsePlugin(std.Plugin())
	ctx.SetReader(strings.NewReader("hello\n"))

	value, err := ctx.Run(program)
	require.NoError(t, err)
	assert.Equal(t, ast.String{Value: "hello"}, value)
}
