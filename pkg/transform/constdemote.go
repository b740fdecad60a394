// Package transform holds AST-to-AST passes that run between parse and
// generate. DemoteDeclarations is the one demo pass shipped here: it
// rewrites let/const declarations to var in every statement list it
// reaches; statements nested inside expressions are not visited.
package transform

import "github.com/jsrewrite/jsrw/pkg/ast"

// DemoteDeclarations rewrites every let/const VariableDeclaration in program
// to var, recursing into every nested statement list (blocks, if/while/for
// bodies, function statement bodies, class constructor and method bodies).
// Bodies of function expressions, arrow functions and object-literal
// methods are not visited. A declaration with more than one
// declarator is split into one var statement per declarator, spliced back
// in with an ast.Transparent so the declarators keep their original
// evaluation order without picking up a block scope they didn't have.
func DemoteDeclarations(program *ast.Program) {
	program.Body = demoteList(program.Body)
}

func demoteList(body []ast.Statement) []ast.Statement {
	out := make([]ast.Statement, 0, len(body))
	for _, stmt := range body {
		out = append(out, demoteStatement(stmt))
	}
	return out
}

func demoteStatement(stmt ast.Statement) ast.Statement {
	switch s := stmt.(type) {
	case *ast.VariableDeclaration:
		return demoteDeclaration(s)
	case *ast.Block:
		s.Body = demoteList(s.Body)
		return s
	case *ast.Transparent:
		s.Body = demoteList(s.Body)
		return s
	case *ast.Labeled:
		s.Body = demoteStatement(s.Body)
		return s
	case *ast.FunctionStmt:
		s.Body = demoteList(s.Body)
		return s
	case *ast.If:
		s.Consequent = demoteStatement(s.Consequent)
		if s.Alternate != nil {
			s.Alternate = demoteStatement(s.Alternate)
		}
		return s
	case *ast.While:
		s.Body = demoteStatement(s.Body)
		return s
	case *ast.For:
		if s.Init != nil {
			s.Init = demoteForClause(s.Init)
		}
		s.Body = demoteStatement(s.Body)
		return s
	case *ast.ForIn:
		s.Left = demoteForClause(s.Left)
		s.Body = demoteStatement(s.Body)
		return s
	case *ast.ForOf:
		s.Left = demoteForClause(s.Left)
		s.Body = demoteStatement(s.Body)
		return s
	case *ast.ClassDecl:
		for _, m := range s.Body {
			demoteClassMember(m)
		}
		return s
	default:
		return stmt
	}
}

// demoteForClause demotes a for-header's init/left clause in place. It
// never returns a Transparent: a for-header admits exactly one declaration,
// never a spliced list, so a multi-declarator demotion here just rewrites
// Kind and leaves every declarator in the same statement.
func demoteForClause(clause ast.Statement) ast.Statement {
	decl, ok := clause.(*ast.VariableDeclaration)
	if !ok || decl.Kind == ast.Var {
		return clause
	}
	decl.Kind = ast.Var
	return decl
}

func demoteDeclaration(decl *ast.VariableDeclaration) ast.Statement {
	if decl.Kind == ast.Var {
		return decl
	}
	if len(decl.Declarators) == 1 {
		decl.Kind = ast.Var
		return decl
	}

	children := make([]ast.Statement, len(decl.Declarators))
	for i, d := range decl.Declarators {
		children[i] = &ast.VariableDeclaration{
			Tok:         decl.Tok,
			Kind:        ast.Var,
			Declarators: []ast.Declarator{d},
		}
	}
	return &ast.Transparent{Tok: decl.Tok, Body: children}
}

func demoteClassMember(m ast.ClassMember) {
	switch mm := m.(type) {
	case *ast.Constructor:
		mm.Body = demoteList(mm.Body)
	case *ast.Method:
		mm.Body = demoteList(mm.Body)
	}
}
