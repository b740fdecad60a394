package ast

import (
	"testing"

	"github.com/jsrewrite/jsrw/pkg/token"
)

func tok(typ token.Type, lit string) token.Token {
	return token.Token{Type: typ, Literal: lit, Pos: token.Position{Line: 1, Column: 1}}
}

func TestDeclarationKindString(t *testing.T) {
	tests := []struct {
		kind DeclarationKind
		want string
	}{
		{Var, "var"},
		{Let, "let"},
		{Const, "const"},
		{DeclarationKind(99), "?"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("DeclarationKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestAtomBindingPowerIsMaximal(t *testing.T) {
	nodes := []Expression{
		NewThis(tok(token.THIS, "this")),
		NewIdentifier(tok(token.IDENT, "x"), "x"),
		NewLiteral(tok(token.NUMBER, "1"), LiteralValue{Kind: LitInteger, Integer: 1, Text: "1"}),
	}
	for _, n := range nodes {
		if n.BindingPower() != 100 {
			t.Errorf("%T.BindingPower() = %d, want 100", n, n.BindingPower())
		}
	}
}

func TestMemberBindsTighterThanCall(t *testing.T) {
	member := &Member{Tok: tok(token.OPERATOR, "."), Object: &Identifier{Name: "a"}, Property: "b"}
	call := &Call{Tok: tok(token.PAREN_ON, "(")}
	if member.BindingPower() <= call.BindingPower() {
		t.Errorf("member access (%d) should bind tighter than a call (%d)", member.BindingPower(), call.BindingPower())
	}
}

func TestConditionalBindsLooserThanBinary(t *testing.T) {
	cond := &Conditional{}
	add := &Binary{Operator: token.OpAdd}
	if cond.BindingPower() >= add.BindingPower() {
		t.Errorf("conditional (%d) should bind looser than '+' (%d)", cond.BindingPower(), add.BindingPower())
	}
}

func TestProgramPosAndTokenLiteralDelegateToFirstStatement(t *testing.T) {
	empty := &Program{}
	if empty.TokenLiteral() != "" {
		t.Errorf("empty program TokenLiteral() = %q, want empty", empty.TokenLiteral())
	}
	if pos := empty.Pos(); pos.Line != 1 || pos.Column != 1 {
		t.Errorf("empty program Pos() = %v, want 1:1", pos)
	}

	stmt := &ExpressionStmt{
		Tok:   tok(token.IDENT, "x"),
		Value: &Identifier{atom: atom{tok(token.IDENT, "x")}, Name: "x"},
	}
	program := &Program{Body: []Statement{stmt}}
	if program.TokenLiteral() != "x" {
		t.Errorf("program.TokenLiteral() = %q, want %q", program.TokenLiteral(), "x")
	}
}

func TestExpressionStmtPosDelegatesToValue(t *testing.T) {
	valueTok := token.Token{Type: token.IDENT, Literal: "x", Pos: token.Position{Line: 3, Column: 7}}
	stmt := &ExpressionStmt{
		Tok:   tok(token.IDENT, "x"),
		Value: &Identifier{atom: atom{valueTok}, Name: "x"},
	}
	if pos := stmt.Pos(); pos.Line != 3 || pos.Column != 7 {
		t.Errorf("ExpressionStmt.Pos() = %v, want 3:7", pos)
	}
}
