// Package parser implements a Pratt expression parser and recursive-descent
// statement parser over the token stream internal/lexer produces, building
// the pkg/ast tree pkg/printer consumes.
package parser

import (
	"github.com/jsrewrite/jsrw/internal/lexer"
	"github.com/jsrewrite/jsrw/pkg/ast"
	"github.com/jsrewrite/jsrw/pkg/token"
)

type prefixParseFn func() ast.Expression
type infixParseFn func(left ast.Expression) ast.Expression

// Parser consumes a lexer.Lexer and builds a pkg/ast.Program. It keeps one
// token of lookahead, the way the teacher's cursor does, but without the
// teacher's backtracking machinery — the grammar here never needs to undo a
// committed token except in the single deferred-commitment spot handled
// locally in parseParenOrArrow.
type Parser struct {
	l *lexer.Lexer

	curToken  token.Token
	peekToken token.Token

	// curNewlineBefore/peekNewlineBefore record whether the lexer emitted a
	// LineTerm marker immediately before curToken/peekToken was read; this
	// is the signal automatic semicolon insertion consults.
	curNewlineBefore  bool
	peekNewlineBefore bool

	errors ParseErrors

	prefixParseFns map[token.Type]prefixParseFn
	infixParseFns  map[token.Type]infixParseFn
	// operator-carrying tokens (Type == OPERATOR) are dispatched a second
	// level deeper, keyed by their concrete OperatorType.
	prefixOpFns map[token.OperatorType]prefixParseFn
	infixOpFns  map[token.OperatorType]infixParseFn
}

// New creates a Parser over l and primes curToken and peekToken.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{
		l:              l,
		prefixParseFns: make(map[token.Type]prefixParseFn),
		infixParseFns:  make(map[token.Type]infixParseFn),
		prefixOpFns:    make(map[token.OperatorType]prefixParseFn),
		infixOpFns:     make(map[token.OperatorType]infixParseFn),
	}
	p.registerExpressionParsers()

	p.nextToken()
	p.nextToken()
	return p
}

// Parse tokenizes and parses source in one call, the package's primary
// external entry point.
func Parse(source string) (*ast.Program, error) {
	p := New(lexer.New(source))
	program := p.ParseProgram()
	program.Source = source
	if len(p.errors) > 0 {
		return program, p.errors
	}
	return program, nil
}

func (p *Parser) readRaw() (token.Token, bool) {
	sawNewline := false
	for {
		t := p.l.Next()
		if t.Type == token.LineTerm {
			sawNewline = true
			continue
		}
		return t, sawNewline
	}
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.curNewlineBefore = p.peekNewlineBefore
	p.peekToken, p.peekNewlineBefore = p.readRaw()
}

func (p *Parser) curTokenIs(t token.Type) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.Type) bool { return p.peekToken.Type == t }

func (p *Parser) curOpIs(op token.OperatorType) bool {
	return p.curToken.Type == token.OPERATOR && p.curToken.Op == op
}

func (p *Parser) peekOpIs(op token.OperatorType) bool {
	return p.peekToken.Type == token.OPERATOR && p.peekToken.Op == op
}

// expectPeek advances past peekToken if it matches t, else records an error
// and leaves the cursor in place.
func (p *Parser) expectPeek(t token.Type) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) expectPeekOp(op token.OperatorType) bool {
	if p.peekOpIs(op) {
		p.nextToken()
		return true
	}
	p.errorf(ErrUnexpectedToken, p.peekToken.Pos, "expected %q, got %s", op, p.peekToken.Type)
	return false
}

func (p *Parser) peekError(t token.Type) {
	p.errorf(ErrUnexpectedToken, p.peekToken.Pos, "expected %s, got %s", t, p.peekToken.Type)
}

func (p *Parser) errorf(code string, pos token.Position, format string, args ...any) {
	p.errors = append(p.errors, newParseError(pos, code, format, args...))
}

// consumeStatementTerminator implements automatic semicolon insertion: an
// explicit ';' is always consumed; otherwise a statement may end before '}',
// before EOF, or before a token that began on a new source line.
func (p *Parser) consumeStatementTerminator() {
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
		return
	}
	if p.peekTokenIs(token.BLOCK_OFF) || p.peekTokenIs(token.EOF) || p.peekNewlineBefore {
		return
	}
	p.errorf(ErrMissingSemicolon, p.peekToken.Pos, "expected ';', got %s", p.peekToken.Type)
}

func (p *Parser) registerPrefix(t token.Type, fn prefixParseFn)           { p.prefixParseFns[t] = fn }
func (p *Parser) registerInfix(t token.Type, fn infixParseFn)             { p.infixParseFns[t] = fn }
func (p *Parser) registerPrefixOp(op token.OperatorType, fn prefixParseFn) { p.prefixOpFns[op] = fn }
func (p *Parser) registerInfixOp(op token.OperatorType, fn infixParseFn)   { p.infixOpFns[op] = fn }

// peekBindingPower returns the infix binding power of peekToken, 0 if it
// cannot continue the current expression.
func (p *Parser) peekBindingPower() int {
	// A line terminator before one of these tokens ends the current
	// statement instead of continuing it as a call, member access, or
	// prefix-looking operator carried over from the previous line.
	if p.peekNewlineBefore {
		switch {
		case p.peekToken.Type == token.PAREN_ON, p.peekToken.Type == token.BRACKET_ON:
			return 0
		case p.peekToken.Type == token.OPERATOR && (p.peekToken.Op == token.OpDiv || p.peekToken.Op == token.OpAdd || p.peekToken.Op == token.OpSub):
			return 0
		case p.peekToken.Type == token.OPERATOR && (p.peekToken.Op == token.OpIncrement || p.peekToken.Op == token.OpDecrement):
			return 0
		}
	}

	switch p.peekToken.Type {
	case token.PAREN_ON:
		return 17
	case token.BRACKET_ON:
		return 18
	}

	if p.peekToken.Type != token.OPERATOR {
		return 0
	}
	if !p.peekToken.Op.IsInfix() {
		return 0
	}
	return p.peekToken.Op.BindingPower(token.Infix)
}
