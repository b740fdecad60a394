package printer

import (
	"github.com/jsrewrite/jsrw/pkg/ast"
	"github.com/jsrewrite/jsrw/pkg/token"
)

// writeOperand renders e as an operand of a node whose own binding power is
// parentBP, adding parentheses when e binds more loosely. strengthen
// additionally parenthesizes an equal-precedence child — the right operand
// of a left-associative binary operator needs this (`a - (b - c)` must not
// print as `a - b - c`, which would mean `(a - b) - c`). For the
// right-associative operators (assignment, **) writeBinary strengthens the
// left operand instead.
func (p *Printer) writeOperand(e ast.Expression, parentBP int, strengthen bool) {
	bp := e.BindingPower()
	if bp < parentBP || (strengthen && bp == parentBP) {
		p.raw("(")
		p.writeExpr(e)
		p.raw(")")
		return
	}
	p.writeExpr(e)
}

func (p *Printer) writeExpr(e ast.Expression) {
	switch n := e.(type) {
	case *ast.This:
		p.word("this")
	case *ast.Identifier:
		p.word(n.Name)
	case *ast.Literal:
		p.writeLiteral(n)
	case *ast.Array:
		p.writeArray(n)
	case *ast.Sequence:
		p.writeSequence(n)
	case *ast.Object:
		p.writeObject(n)
	case *ast.Member:
		p.writeOperand(n.Object, n.BindingPower(), false)
		p.raw(".")
		p.word(n.Property)
	case *ast.ComputedMember2:
		p.writeOperand(n.Object, n.BindingPower(), false)
		p.raw("[")
		p.writeExpr(n.Property)
		p.raw("]")
	case *ast.Call:
		p.writeOperand(n.Callee, n.BindingPower(), false)
		p.writeArgList(n.Arguments)
	case *ast.Binary:
		p.writeBinary(n)
	case *ast.Prefix:
		p.writePrefix(n)
	case *ast.Postfix:
		p.writeOperand(n.Operand, n.BindingPower(), false)
		p.raw(operatorText(n.Operator))
	case *ast.Conditional:
		p.writeConditional(n)
	case *ast.ArrowFunction:
		p.writeArrow(n)
	case *ast.FunctionExpr:
		p.writeFunctionLike("function", n.Name, n.Params, n.Body)
	default:
		invariant(e, "unhandled expression node %T", e)
	}
}

func (p *Printer) writeLiteral(n *ast.Literal) {
	switch n.Value.Kind {
	case ast.LitUndefined:
		if p.opts.Minify {
			p.word("void 0")
		} else {
			p.word("undefined")
		}
	case ast.LitNull:
		p.word("null")
	case ast.LitTrue:
		if p.opts.Minify {
			p.word("!0")
		} else {
			p.word("true")
		}
	case ast.LitFalse:
		if p.opts.Minify {
			p.word("!1")
		} else {
			p.word("false")
		}
	default:
		p.word(n.Value.Text)
	}
}

func (p *Printer) writeArray(n *ast.Array) {
	p.raw("[")
	for i, el := range n.Elements {
		if i > 0 {
			p.raw(",")
			p.space()
		}
		p.writeExpr(el)
	}
	p.raw("]")
}

func (p *Printer) writeSequence(n *ast.Sequence) {
	p.raw("(")
	for i, item := range n.Items {
		if i > 0 {
			p.raw(",")
			p.space()
		}
		p.writeExpr(item)
	}
	p.raw(")")
}

func (p *Printer) writeObject(n *ast.Object) {
	if len(n.Members) == 0 {
		p.raw("{}")
		return
	}
	p.raw("{")
	p.indentIn()
	for i, m := range n.Members {
		if i > 0 {
			p.raw(",")
		}
		p.newline()
		p.writeObjectMember(m)
	}
	p.indentOut()
	p.newline()
	p.raw("}")
}

func (p *Printer) writeObjectMember(m ast.ObjectMember) {
	switch mm := m.(type) {
	case *ast.ShorthandMember:
		p.word(mm.Key)
	case *ast.LiteralMember:
		p.word(mm.Key)
		p.raw(":")
		p.space()
		p.writeExpr(mm.Value)
	case *ast.ComputedMember:
		p.raw("[")
		p.writeExpr(mm.Key)
		p.raw("]")
		p.raw(":")
		p.space()
		p.writeExpr(mm.Value)
	case *ast.MethodMember:
		p.word(mm.Name)
		p.writeParamList(mm.Params)
		p.space()
		p.writeBody(mm.Body)
	case *ast.ComputedMethodMember:
		p.raw("[")
		p.writeExpr(mm.Name)
		p.raw("]")
		p.writeParamList(mm.Params)
		p.space()
		p.writeBody(mm.Body)
	default:
		invariant(m, "unhandled object member %T", m)
	}
}

func (p *Printer) writeBinary(n *ast.Binary) {
	bp := n.Operator.BindingPower(token.Infix)
	// Right-associative operators (assignment, **) read their own
	// precedence naturally on the right (a**b**c already means a**(b**c)),
	// so the equal-precedence-parenthesizes rule flips to the left operand
	// for them instead.
	rightAssoc := n.Operator.IsAssignment() || n.Operator == token.OpPow
	p.writeOperand(n.Left, bp, rightAssoc)
	p.space()
	p.word(operatorText(n.Operator))
	p.space()
	p.writeOperand(n.Right, bp, !rightAssoc)
}

func (p *Printer) writePrefix(n *ast.Prefix) {
	if n.Operator == token.OpNew {
		p.word("new")
		p.writeOperand(n.Operand, n.BindingPower(), false)
		return
	}
	bp := n.Operator.BindingPower(token.Prefix)
	p.word(operatorText(n.Operator))
	p.writeOperand(n.Operand, bp, false)
}

func (p *Printer) writeConditional(n *ast.Conditional) {
	bp := n.BindingPower()
	p.writeOperand(n.Test, bp, false)
	p.space()
	p.raw("?")
	p.space()
	p.writeOperand(n.Consequent, bp, false)
	p.space()
	p.raw(":")
	p.space()
	p.writeOperand(n.Alternate, bp-1, false)
}

func (p *Printer) writeArrow(n *ast.ArrowFunction) {
	if len(n.Params) == 1 {
		p.word(n.Params[0].Name)
	} else {
		p.writeParamList(n.Params)
	}
	p.space()
	p.raw("=>")
	p.space()
	switch body := n.Body.(type) {
	case *ast.Block:
		p.writeBody(body.Body)
	case *ast.ExpressionStmt:
		if _, isObject := body.Value.(*ast.Object); isObject {
			// An object literal as a concise arrow body would otherwise be
			// read as a block statement.
			p.raw("(")
			p.writeExpr(body.Value)
			p.raw(")")
			return
		}
		p.writeExpr(body.Value)
	default:
		invariant(n, "unexpected arrow function body %T", n.Body)
	}
}

func (p *Printer) writeFunctionLike(keyword, name string, params []ast.Parameter, body []ast.Statement) {
	p.word(keyword)
	if name != "" {
		p.space()
		p.word(name)
	}
	p.writeParamList(params)
	p.space()
	p.writeBody(body)
}
