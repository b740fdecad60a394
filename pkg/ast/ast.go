// Package ast defines the Abstract Syntax Tree node types shared between
// the parser and the printer. It is a pure data module: every node knows
// its own source position and token literal, the way the teacher's AST
// nodes each carry their originating token, but carries no parsing or
// printing logic of its own.
package ast

import "github.com/jsrewrite/jsrw/pkg/token"

// Node is the base interface implemented by every AST node.
type Node interface {
	// TokenLiteral returns the literal text of the token the node is
	// anchored on, for debugging.
	TokenLiteral() string
	// Pos returns the node's position in the source for error reporting.
	Pos() token.Position
}

// Expression is any node that produces a value. BindingPower lets the
// printer decide, without a type switch of its own, whether a child needs
// parenthesizing: §3's table is implemented one method per node type.
type Expression interface {
	Node
	expressionNode()
	// BindingPower returns 1..18 for binary/postfix/member/arrow/call nodes,
	// or 100 for any leaf/atom — high enough that no precedence rule will
	// ever force parentheses around it.
	BindingPower() int
}

// Statement is a node that performs an action but produces no value.
type Statement interface {
	Node
	statementNode()
}

// Program is the root node: an ordered list of top-level statements plus
// the source buffer every slice in the tree is a view into. The buffer
// must outlive the Program and everything under it.
type Program struct {
	Source string
	Body   []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Body) > 0 {
		return p.Body[0].TokenLiteral()
	}
	return ""
}

func (p *Program) Pos() token.Position {
	if len(p.Body) > 0 {
		return p.Body[0].Pos()
	}
	return token.Position{Line: 1, Column: 1}
}

// atom is embedded by every leaf expression (This, Identifier, Literal):
// none of them ever needs parenthesizing.
type atom struct{ Tok token.Token }

func (a atom) TokenLiteral() string  { return a.Tok.Literal }
func (a atom) Pos() token.Position   { return a.Tok.Pos }
func (a atom) BindingPower() int     { return 100 }
func (a atom) expressionNode()       {}

// This represents the `this` keyword.
type This struct{ atom }

// NewThis builds a This node anchored on tok.
func NewThis(tok token.Token) *This { return &This{atom{Tok: tok}} }

// Identifier is a borrowed view of an identifier name.
type Identifier struct {
	atom
	Name string
}

// NewIdentifier builds an Identifier node anchored on tok.
func NewIdentifier(tok token.Token, name string) *Identifier {
	return &Identifier{atom{Tok: tok}, name}
}

// LiteralKind tags LiteralValue's active variant.
type LiteralKind int

const (
	LitUndefined LiteralKind = iota
	LitNull
	LitTrue
	LitFalse
	LitInteger
	LitFloat
	LitString
)

// LiteralValue is the tagged union spec.md §3 describes. Float and String
// retain their original textual form (Text), including string quotes, so
// the printer can round-trip exact source bytes; Integer carries the
// parsed numeric value for Float/Integer arithmetic a transformer might do.
type LiteralValue struct {
	Kind    LiteralKind
	Integer uint64
	Text    string
}

// Literal wraps a LiteralValue as an expression.
type Literal struct {
	atom
	Value LiteralValue
}

// NewLiteral builds a Literal node anchored on tok.
func NewLiteral(tok token.Token, value LiteralValue) *Literal {
	return &Literal{atom{Tok: tok}, value}
}

// Parameter is an arrow-function or function parameter name. The core
// grammar has no default values or destructuring (see Non-goals); a
// Parameter is just a borrowed identifier.
type Parameter struct {
	Name string
}
