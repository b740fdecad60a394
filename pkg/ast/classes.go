package ast

import "github.com/jsrewrite/jsrw/pkg/token"

// ClassMember is the sum type of constructor/method/property forms a class
// body can hold.
type ClassMember interface {
	Node
	classMemberNode()
}

// Constructor is the class's `constructor(params) { body }` member.
type Constructor struct {
	Tok    token.Token
	Params []Parameter
	Body   []Statement
}

func (c *Constructor) classMemberNode()    {}
func (c *Constructor) TokenLiteral() string { return c.Tok.Literal }
func (c *Constructor) Pos() token.Position  { return c.Tok.Pos }

// Method is an ordinary (non-constructor) class method.
type Method struct {
	Tok      token.Token
	IsStatic bool
	Name     string
	Params   []Parameter
	Body     []Statement
}

func (m *Method) classMemberNode()    {}
func (m *Method) TokenLiteral() string { return m.Tok.Literal }
func (m *Method) Pos() token.Position  { return m.Tok.Pos }

// Property is a class field: `[static] name = value;`.
type Property struct {
	Tok      token.Token
	IsStatic bool
	Name     string
	Value    Expression
}

func (p *Property) classMemberNode()    {}
func (p *Property) TokenLiteral() string { return p.Tok.Literal }
func (p *Property) Pos() token.Position  { return p.Tok.Pos }

// ClassDecl is a class statement: `class Name [extends Base] { members }`.
type ClassDecl struct {
	Tok     token.Token // the 'class' token
	Name    string
	Extends string // empty when absent
	Body    []ClassMember
}

func (c *ClassDecl) statementNode()    {}
func (c *ClassDecl) TokenLiteral() string { return c.Tok.Literal }
func (c *ClassDecl) Pos() token.Position  { return c.Tok.Pos }
