package ast

import "github.com/jsrewrite/jsrw/pkg/token"

// Array is an array literal: [a, b, c].
type Array struct {
	Tok      token.Token // the '[' token
	Elements []Expression
}

func (a *Array) expressionNode()            {}
func (a *Array) TokenLiteral() string       { return a.Tok.Literal }
func (a *Array) Pos() token.Position        { return a.Tok.Pos }
func (a *Array) BindingPower() int          { return 100 }

// Sequence is a comma expression: a, b, c. It also stands in, mid-parse,
// for what may turn out to be an arrow-function parameter list — see
// jsparser's deferred-commitment handling of '(' .
type Sequence struct {
	Tok   token.Token
	Items []Expression
}

func (s *Sequence) expressionNode()      {}
func (s *Sequence) TokenLiteral() string { return s.Tok.Literal }
func (s *Sequence) Pos() token.Position  { return s.Tok.Pos }
func (s *Sequence) BindingPower() int    { return 100 }

// ObjectMember is the sum type of the five member forms an object literal
// can hold.
type ObjectMember interface {
	Node
	objectMemberNode()
}

// ShorthandMember is `{ key }`, equivalent to `{ key: key }`.
type ShorthandMember struct {
	Tok token.Token
	Key string
}

func (m *ShorthandMember) objectMemberNode()   {}
func (m *ShorthandMember) TokenLiteral() string { return m.Tok.Literal }
func (m *ShorthandMember) Pos() token.Position  { return m.Tok.Pos }

// LiteralMember is `{ key: value }` with a static key.
type LiteralMember struct {
	Tok   token.Token
	Key   string
	Value Expression
}

func (m *LiteralMember) objectMemberNode()   {}
func (m *LiteralMember) TokenLiteral() string { return m.Tok.Literal }
func (m *LiteralMember) Pos() token.Position  { return m.Tok.Pos }

// ComputedMember is `{ [keyExpr]: value }`.
type ComputedMember struct {
	Tok   token.Token
	Key   Expression
	Value Expression
}

func (m *ComputedMember) objectMemberNode()   {}
func (m *ComputedMember) TokenLiteral() string { return m.Tok.Literal }
func (m *ComputedMember) Pos() token.Position  { return m.Tok.Pos }

// MethodMember is `{ name(params) { body } }`.
type MethodMember struct {
	Tok    token.Token
	Name   string
	Params []Parameter
	Body   []Statement
}

func (m *MethodMember) objectMemberNode()   {}
func (m *MethodMember) TokenLiteral() string { return m.Tok.Literal }
func (m *MethodMember) Pos() token.Position  { return m.Tok.Pos }

// ComputedMethodMember is `{ [nameExpr](params) { body } }`.
type ComputedMethodMember struct {
	Tok    token.Token
	Name   Expression
	Params []Parameter
	Body   []Statement
}

func (m *ComputedMethodMember) objectMemberNode()   {}
func (m *ComputedMethodMember) TokenLiteral() string { return m.Tok.Literal }
func (m *ComputedMethodMember) Pos() token.Position  { return m.Tok.Pos }

// Object is an object literal: { ...members }.
type Object struct {
	Tok     token.Token
	Members []ObjectMember
}

func (o *Object) expressionNode()      {}
func (o *Object) TokenLiteral() string { return o.Tok.Literal }
func (o *Object) Pos() token.Position  { return o.Tok.Pos }
func (o *Object) BindingPower() int    { return 100 }

// Member is static property access: object.property.
type Member struct {
	Tok      token.Token // the '.' token
	Object   Expression
	Property string
}

func (m *Member) expressionNode()      {}
func (m *Member) TokenLiteral() string { return m.Tok.Literal }
func (m *Member) Pos() token.Position  { return m.Object.Pos() }
func (m *Member) BindingPower() int    { return 18 }

// ComputedMember2 is computed property access: object[property]. Named
// with a suffix to avoid colliding with the object-literal ComputedMember
// above; the two are unrelated per spec.md (one is an expression, the
// other an object-literal member form).
type ComputedMember2 struct {
	Tok      token.Token // the '[' token
	Object   Expression
	Property Expression
}

func (c *ComputedMember2) expressionNode()      {}
func (c *ComputedMember2) TokenLiteral() string { return c.Tok.Literal }
func (c *ComputedMember2) Pos() token.Position  { return c.Object.Pos() }
func (c *ComputedMember2) BindingPower() int    { return 18 }

// Call is a function/method invocation: callee(arguments...).
type Call struct {
	Tok       token.Token // the '(' token
	Callee    Expression
	Arguments []Expression
}

func (c *Call) expressionNode()      {}
func (c *Call) TokenLiteral() string { return c.Tok.Literal }
func (c *Call) Pos() token.Position  { return c.Callee.Pos() }
func (c *Call) BindingPower() int    { return 17 }

// Binary is a binary operator expression: left OP right.
type Binary struct {
	Tok      token.Token
	Left     Expression
	Operator token.OperatorType
	Right    Expression
}

func (b *Binary) expressionNode()      {}
func (b *Binary) TokenLiteral() string { return b.Tok.Literal }
func (b *Binary) Pos() token.Position  { return b.Left.Pos() }
func (b *Binary) BindingPower() int    { return b.Operator.BindingPower(token.Infix) }

// Prefix is a prefix unary/update expression: OP operand.
type Prefix struct {
	Tok      token.Token
	Operator token.OperatorType
	Operand  Expression
}

func (p *Prefix) expressionNode()      {}
func (p *Prefix) TokenLiteral() string { return p.Tok.Literal }
func (p *Prefix) Pos() token.Position  { return p.Tok.Pos }
func (p *Prefix) BindingPower() int    { return 15 }

// Postfix is a postfix update expression: operand OP (++ or --).
type Postfix struct {
	Tok      token.Token
	Operator token.OperatorType
	Operand  Expression
}

func (p *Postfix) expressionNode()      {}
func (p *Postfix) TokenLiteral() string { return p.Tok.Literal }
func (p *Postfix) Pos() token.Position  { return p.Operand.Pos() }
func (p *Postfix) BindingPower() int    { return p.Operator.BindingPower(token.Infix) }

// Conditional is the ternary expression: test ? consequent : alternate.
type Conditional struct {
	Tok         token.Token // the '?' token
	Test        Expression
	Consequent  Expression
	Alternate   Expression
}

func (c *Conditional) expressionNode()      {}
func (c *Conditional) TokenLiteral() string { return c.Tok.Literal }
func (c *Conditional) Pos() token.Position  { return c.Test.Pos() }
func (c *Conditional) BindingPower() int    { return 4 }

// ArrowFunction is `(params) => body`. Body is either an ExpressionStmt
// (single-expression form) or a Block.
type ArrowFunction struct {
	Tok    token.Token // the '=>' token
	Params []Parameter
	Body   Statement
}

func (a *ArrowFunction) expressionNode()      {}
func (a *ArrowFunction) TokenLiteral() string { return a.Tok.Literal }
func (a *ArrowFunction) Pos() token.Position  { return a.Tok.Pos }
func (a *ArrowFunction) BindingPower() int    { return 18 }

// FunctionExpr is a (possibly anonymous) function expression.
type FunctionExpr struct {
	Tok    token.Token // the 'function' token
	Name   string      // empty when anonymous
	Params []Parameter
	Body   []Statement
}

func (f *FunctionExpr) expressionNode()      {}
func (f *FunctionExpr) TokenLiteral() string { return f.Tok.Literal }
func (f *FunctionExpr) Pos() token.Position  { return f.Tok.Pos }
func (f *FunctionExpr) BindingPower() int    { return 100 }
