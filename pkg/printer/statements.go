package printer

import (
	"github.com/jsrewrite/jsrw/pkg/ast"
)

func (p *Printer) writeStatement(s ast.Statement) {
	switch n := s.(type) {
	case *ast.Block:
		p.writeBody(n.Body)
	case *ast.Transparent:
		// No enclosing braces: the transformer that produced this node
		// wanted its replacement statements spliced straight into the
		// surrounding list.
		for i, stmt := range n.Body {
			if i > 0 {
				p.newline()
			}
			p.writeStatement(stmt)
		}
	case *ast.Labeled:
		p.word(n.Label)
		p.raw(":")
		p.space()
		p.writeStatement(n.Body)
	case *ast.ExpressionStmt:
		p.writeExpr(n.Value)
		p.raw(";")
	case *ast.Return:
		p.word("return")
		if n.Value != nil {
			p.space()
			p.writeExpr(n.Value)
		}
		p.raw(";")
	case *ast.Break:
		p.word("break")
		if n.Label != "" {
			p.space()
			p.word(n.Label)
		}
		p.raw(";")
	case *ast.Throw:
		p.word("throw")
		p.space()
		p.writeExpr(n.Value)
		p.raw(";")
	case *ast.VariableDeclaration:
		p.writeVariableDeclaration(n)
		p.raw(";")
	case *ast.FunctionStmt:
		p.writeFunctionLike("function", n.Name, n.Params, n.Body)
	case *ast.If:
		p.writeIf(n)
	case *ast.While:
		p.word("while")
		p.space()
		p.raw("(")
		p.writeExpr(n.Test)
		p.raw(")")
		p.space()
		p.writeStatement(n.Body)
	case *ast.For:
		p.writeFor(n)
	case *ast.ForIn:
		p.writeForInOf("in", n.Left, n.Right, n.Body)
	case *ast.ForOf:
		p.writeForInOf("of", n.Left, n.Right, n.Body)
	case *ast.ClassDecl:
		p.writeClassDecl(n)
	default:
		invariant(s, "unhandled statement node %T", s)
	}
}

func (p *Printer) writeVariableDeclaration(n *ast.VariableDeclaration) {
	p.word(n.Kind.String())
	p.space()
	for i, d := range n.Declarators {
		if i > 0 {
			p.raw(",")
			p.space()
		}
		p.word(d.Name)
		if d.Init != nil {
			p.space()
			p.raw("=")
			p.space()
			p.writeExpr(d.Init)
		}
	}
}

func (p *Printer) writeIf(n *ast.If) {
	p.word("if")
	p.space()
	p.raw("(")
	p.writeExpr(n.Test)
	p.raw(")")
	p.space()
	p.writeStatement(n.Consequent)
	if n.Alternate != nil {
		p.space()
		p.word("else")
		p.space()
		p.writeStatement(n.Alternate)
	}
}

func (p *Printer) writeFor(n *ast.For) {
	p.word("for")
	p.space()
	p.raw("(")
	p.writeForClause(n.Init)
	p.raw(";")
	if n.Test != nil {
		p.space()
		p.writeExpr(n.Test)
	}
	p.raw(";")
	if n.Update != nil {
		p.space()
		p.writeExpr(n.Update)
	}
	p.raw(")")
	p.space()
	p.writeStatement(n.Body)
}

func (p *Printer) writeForInOf(keyword string, left ast.Statement, right ast.Expression, body ast.Statement) {
	p.word("for")
	p.space()
	p.raw("(")
	p.writeForClause(left)
	p.space()
	p.word(keyword)
	p.space()
	p.writeExpr(right)
	p.raw(")")
	p.space()
	p.writeStatement(body)
}

// writeForClause renders a for-header's init/left clause, whose only valid
// shapes are a variable declaration or a bare expression statement.
func (p *Printer) writeForClause(clause ast.Statement) {
	switch c := clause.(type) {
	case nil:
		return
	case *ast.VariableDeclaration:
		p.writeVariableDeclaration(c)
	case *ast.ExpressionStmt:
		p.writeExpr(c.Value)
	default:
		invariant(clause, "invalid for-header clause %T", clause)
	}
}

func (p *Printer) writeClassDecl(n *ast.ClassDecl) {
	p.word("class")
	p.space()
	p.word(n.Name)
	if n.Extends != "" {
		p.space()
		p.word("extends")
		p.space()
		p.word(n.Extends)
	}
	p.space()
	if len(n.Body) == 0 {
		p.raw("{}")
		return
	}
	p.raw("{")
	p.indentIn()
	for _, m := range n.Body {
		p.newline()
		p.writeClassMember(m)
	}
	p.indentOut()
	p.newline()
	p.raw("}")
}

func (p *Printer) writeClassMember(m ast.ClassMember) {
	switch mm := m.(type) {
	case *ast.Constructor:
		p.word("constructor")
		p.writeParamList(mm.Params)
		p.space()
		p.writeBody(mm.Body)
	case *ast.Method:
		if mm.IsStatic {
			p.word("static")
			p.space()
		}
		p.word(mm.Name)
		p.writeParamList(mm.Params)
		p.space()
		p.writeBody(mm.Body)
	case *ast.Property:
		if mm.IsStatic {
			p.word("static")
			p.space()
		}
		p.word(mm.Name)
		if mm.Value != nil {
			p.space()
			p.raw("=")
			p.space()
			p.writeExpr(mm.Value)
		}
		p.raw(";")
	default:
		invariant(m, "unhandled class member %T", m)
	}
}
