package dashlang

import "github.com/gab1618/dashlang-sub000/ast"

// execProgram runs a sequence of statements in order against ctx. It
// returns (value, true, nil) the moment a Return is reached — including
// one reached inside a nested If/While/For body, which is how "a While
// whose body executes a Return propagates the return outward" (§4.4) is
// implemented: every body is just another execProgram call whose
// "returned" flag bubbles up unchanged. If execution reaches the end of
// program without a Return, it yields (ast.Void{}, false, nil).
func execProgram(program ast.Program, ctx *Context) (ast.Literal, bool, error) {
	for _, stmt := range program {
		value, returned, err := execStmt(stmt, ctx)
		if err != nil {
			return ast.Void{}, false, err
		}
		if returned {
			return value, true, nil
		}
	}
	return ast.Void{}, false, nil
}

func execStmt(stmt ast.Stmt, ctx *Context) (ast.Literal, bool, error) {
	switch node := stmt.(type) {
	case *ast.Return:
		value, err := ctx.Eval(node.Value)
		if err != nil {
			return ast.Void{}, false, err
		}
		return value, true, nil

	case ast.ExprStmt:
		_, err := ctx.Eval(node.Value)
		return ast.Void{}, false, err

	case *ast.If:
		cond, err := ctx.Eval(node.Cond)
		if err != nil {
			return ast.Void{}, false, err
		}
		if Truthy(cond) {
			return execProgram(node.Body, ctx)
		}
		if node.ElseBlock != nil {
			return execProgram(node.ElseBlock, ctx)
		}
		return ast.Void{}, false, nil

	case *ast.While:
		for {
			cond, err := ctx.Eval(node.Cond)
			if err != nil {
				return ast.Void{}, false, err
			}
			if !Truthy(cond) {
				return ast.Void{}, false, nil
			}
			value, returned, err := execProgram(node.Body, ctx)
			if err != nil {
				return ast.Void{}, false, err
			}
			if returned {
				return value, true, nil
			}
		}

	case *ast.For:
		if node.Init != nil {
			value, returned, err := execStmt(node.Init, ctx)
			if err != nil {
				return ast.Void{}, false, err
			}
			if returned {
				return value, true, nil
			}
		}
		for {
			cond, err := ctx.Eval(node.Cond)
			if err != nil {
				return ast.Void{}, false, err
			}
			if !Truthy(cond) {
				return ast.Void{}, false, nil
			}
			value, returned, err := execProgram(node.Body, ctx)
			if err != nil {
				return ast.Void{}, false, err
			}
			if returned {
				return value, true, nil
			}
			if node.Iteration != nil {
				value, returned, err := execStmt(node.Iteration, ctx)
				if err != nil {
					return ast.Void{}, false, err
				}
				if returned {
					return value, true, nil
				}
			}
		}

	default:
		return ast.Void{}, false, nil
	}
}
