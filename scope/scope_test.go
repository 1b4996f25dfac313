package scope_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gab1618/dashlang-sub000/ast"
	"github.com/gab1618/dashlang-sub000/scope"
)

func TestGetMissReturnsVoid(t *testing.T) {
	s := scope.New()
	assert.Equal(t, ast.Void{}, s.Get("nope"))
}

func TestSetThenGet(t *testing.T) {
	s := scope.New()
	s.Set("x", ast.Int{Value: 1})
	assert.Equal(t, ast.Int{Value: 1}, s.Get("x"))
}

// TestCloneReadThrough matches the scope read-through invariant of §8:
// after set(S_parent, "x", 1) and S_child = clone(S_parent),
// S_child.get("x") == 1; after S_child.set("x", 2), S_child.get("x") == 2
// and S_parent.get("x") == 1.
func TestCloneReadThrough(t *testing.T) {
	parent := scope.New()
	parent.Set("x", ast.Int{Value: 1})

	child := parent.Clone()
	assert.Equal(t, ast.Int{Value: 1}, child.Get("x"))

	child.Set("x", ast.Int{Value: 2})
	assert.Equal(t, ast.Int{Value: 2}, child.Get("x"))
	assert.Equal(t, ast.Int{Value: 1}, parent.Get("x"))
}

func TestCloneDoesNotLeakNewBindings(t *testing.T) {
	parent := scope.New()
	child := parent.Clone()
	child.Set("local", ast.Bool{Value: true})
	assert.Equal(t, ast.Void{}, parent.Get("local"))
}

func TestGrandchildSeesGrandparent(t *testing.T) {
	grandparent := scope.New()
	grandparent.Set("g", ast.String{Value: "top"})
	child := grandparent.Clone()
	grandchild := child.Clone()
	assert.Equal(t, ast.String{Value: "top"}, grandchild.Get("g"))
}
