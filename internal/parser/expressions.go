package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jsrewrite/jsrw/pkg/ast"
	"github.com/jsrewrite/jsrw/pkg/token"
)

// registerExpressionParsers wires every prefix/infix parse function into
// the two-level dispatch tables (by token.Type, and for OPERATOR tokens,
// by their concrete OperatorType).
func (p *Parser) registerExpressionParsers() {
	p.registerPrefix(token.IDENT, p.parseIdentifier)
	p.registerPrefix(token.THIS, p.parseThis)
	p.registerPrefix(token.NUMBER, p.parseNumberLiteral)
	p.registerPrefix(token.STRING, p.parseStringLiteral)
	p.registerPrefix(token.TRUE, p.parseBooleanLiteral)
	p.registerPrefix(token.FALSE, p.parseBooleanLiteral)
	p.registerPrefix(token.NULL, p.parseNullLiteral)
	p.registerPrefix(token.UNDEFINED, p.parseUndefinedLiteral)
	p.registerPrefix(token.FUNCTION, p.parseFunctionExpression)
	p.registerPrefix(token.NEW, p.parseNewExpression)
	p.registerPrefix(token.TYPEOF, p.makeUnaryPrefixParser(token.OpTypeof))
	p.registerPrefix(token.VOID, p.makeUnaryPrefixParser(token.OpVoid))
	p.registerPrefix(token.DELETE, p.makeUnaryPrefixParser(token.OpDelete))
	p.registerPrefix(token.PAREN_ON, p.parseParenOrArrow)
	p.registerPrefix(token.BRACKET_ON, p.parseArrayLiteral)
	p.registerPrefix(token.BLOCK_ON, p.parseObjectLiteral)

	p.registerPrefixOp(token.OpLogicalNot, p.makeUnaryPrefixParser(token.OpLogicalNot))
	p.registerPrefixOp(token.OpBitNot, p.makeUnaryPrefixParser(token.OpBitNot))
	p.registerPrefixOp(token.OpAdd, p.makeUnaryPrefixParser(token.OpAdd))
	p.registerPrefixOp(token.OpSub, p.makeUnaryPrefixParser(token.OpSub))
	p.registerPrefixOp(token.OpIncrement, p.makeUnaryPrefixParser(token.OpIncrement))
	p.registerPrefixOp(token.OpDecrement, p.makeUnaryPrefixParser(token.OpDecrement))
	p.registerPrefixOp(token.OpSpread, p.makeUnaryPrefixParser(token.OpSpread))

	p.registerInfix(token.PAREN_ON, p.parseCallExpression)
	p.registerInfix(token.BRACKET_ON, p.parseComputedMemberExpression)

	leftAssocBinary := []token.OperatorType{
		token.OpLogicalOr, token.OpLogicalAnd, token.OpBitOr, token.OpBitXor, token.OpBitAnd,
		token.OpEq, token.OpNotEq, token.OpStrictEq, token.OpStrictNeq,
		token.OpLess, token.OpLessEq, token.OpGreater, token.OpGreaterEq,
		token.OpInstanceof, token.OpIn,
		token.OpShl, token.OpShr, token.OpUshr,
		token.OpAdd, token.OpSub, token.OpMul, token.OpDiv, token.OpMod,
	}
	for _, op := range leftAssocBinary {
		p.registerInfixOp(op, p.makeBinaryParser(op, false))
	}
	p.registerInfixOp(token.OpPow, p.makeBinaryParser(token.OpPow, true))

	assignmentOps := []token.OperatorType{
		token.OpAssign, token.OpAddAssign, token.OpSubAssign, token.OpMulAssign,
		token.OpDivAssign, token.OpModAssign, token.OpPowAssign, token.OpShlAssign,
		token.OpShrAssign, token.OpUshrAssign, token.OpAndAssign, token.OpOrAssign,
		token.OpXorAssign,
	}
	for _, op := range assignmentOps {
		p.registerInfixOp(op, p.makeAssignParser(op))
	}

	p.registerInfixOp(token.OpTernary, p.parseConditional)
	p.registerInfixOp(token.OpDot, p.parseMemberAccess)
	p.registerInfixOp(token.OpFatArrow, p.parseArrowFromLeft)
	p.registerInfixOp(token.OpIncrement, p.parsePostfix)
	p.registerInfixOp(token.OpDecrement, p.parsePostfix)
}

// parseExpression is the Pratt loop: parse a prefix (null-denotation) term,
// then keep folding in infix (left-denotation) operators whose binding
// power exceeds minBP. Associativity is encoded entirely in what minBP each
// infix function recurses with, not in this loop.
func (p *Parser) parseExpression(minBP int) ast.Expression {
	left := p.parsePrefixExpr()
	if left == nil {
		return nil
	}
	for p.peekBindingPower() > minBP {
		p.nextToken()
		left = p.parseInfixExpr(left)
		if left == nil {
			return nil
		}
	}
	return left
}

func (p *Parser) parsePrefixExpr() ast.Expression {
	if fn, ok := p.prefixParseFns[p.curToken.Type]; ok {
		return fn()
	}
	if p.curToken.Type == token.OPERATOR {
		if fn, ok := p.prefixOpFns[p.curToken.Op]; ok {
			return fn()
		}
	}
	p.errorf(ErrNoPrefixParse, p.curToken.Pos, "unexpected token %s in expression", p.curToken.Type)
	return nil
}

func (p *Parser) parseInfixExpr(left ast.Expression) ast.Expression {
	if fn, ok := p.infixParseFns[p.curToken.Type]; ok {
		return fn(left)
	}
	if p.curToken.Type == token.OPERATOR {
		if fn, ok := p.infixOpFns[p.curToken.Op]; ok {
			return fn(left)
		}
	}
	p.errorf(ErrNoPrefixParse, p.curToken.Pos, "unexpected operator %s in expression", p.curToken.Type)
	return left
}

func (p *Parser) parseIdentifier() ast.Expression {
	return ast.NewIdentifier(p.curToken, p.curToken.Literal)
}

func (p *Parser) parseThis() ast.Expression {
	return ast.NewThis(p.curToken)
}

func (p *Parser) parseNumberLiteral() ast.Expression {
	tok := p.curToken
	lit := tok.Literal
	val := ast.LiteralValue{Text: lit}
	if strings.ContainsAny(lit, ".eE") {
		val.Kind = ast.LitFloat
	} else if n, err := strconv.ParseUint(lit, 10, 64); err == nil {
		val.Kind = ast.LitInteger
		val.Integer = n
	} else {
		p.errorf(ErrInvalidNumber, tok.Pos, "invalid numeric literal %q", lit)
		val.Kind = ast.LitFloat
	}
	return ast.NewLiteral(tok, val)
}

func (p *Parser) parseStringLiteral() ast.Expression {
	return ast.NewLiteral(p.curToken, ast.LiteralValue{Kind: ast.LitString, Text: p.curToken.Literal})
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	kind := ast.LitFalse
	if p.curToken.Type == token.TRUE {
		kind = ast.LitTrue
	}
	return ast.NewLiteral(p.curToken, ast.LiteralValue{Kind: kind, Text: p.curToken.Literal})
}

func (p *Parser) parseNullLiteral() ast.Expression {
	return ast.NewLiteral(p.curToken, ast.LiteralValue{Kind: ast.LitNull, Text: p.curToken.Literal})
}

func (p *Parser) parseUndefinedLiteral() ast.Expression {
	return ast.NewLiteral(p.curToken, ast.LiteralValue{Kind: ast.LitUndefined, Text: p.curToken.Literal})
}

// makeUnaryPrefixParser builds a prefix parser for a unary operator; each
// time it runs, the operand is parsed at the operator's own prefix binding
// power.
func (p *Parser) makeUnaryPrefixParser(op token.OperatorType) prefixParseFn {
	return func() ast.Expression {
		tok := p.curToken
		bp := op.BindingPower(token.Prefix)
		p.nextToken()
		operand := p.parseExpression(bp)
		return &ast.Prefix{Tok: tok, Operator: op, Operand: operand}
	}
}

// parseNewExpression parses `new Callee(args...)`. The callee is parsed at
// 'new's own prefix binding power so member-access chains (`new a.b.C()`)
// bind before the constructor's call parentheses do; the parentheses, if
// present, are then consumed explicitly and wrapped together with the
// callee in a Call that the Prefix(new) node wraps.
func (p *Parser) parseNewExpression() ast.Expression {
	tok := p.curToken
	p.nextToken()
	callee := p.parseExpression(token.OpNew.BindingPower(token.Prefix))
	if callee == nil {
		return nil
	}
	var args []ast.Expression
	if p.peekTokenIs(token.PAREN_ON) {
		p.nextToken()
		args = p.parseExpressionList(token.PAREN_OFF)
	}
	call := &ast.Call{Tok: tok, Callee: callee, Arguments: args}
	return &ast.Prefix{Tok: tok, Operator: token.OpNew, Operand: call}
}

// parseParenOrArrow resolves the three forms a leading '(' can start:
// a grouped expression, a parenthesized comma sequence, or an arrow
// function's parameter list. Which one it is can't be known until either
// ')' is reached (for the empty-params case) or the token after ')' is
// inspected (for everything else) — the deferred-commitment parse the
// Parser type's doc describes.
func (p *Parser) parseParenOrArrow() ast.Expression {
	openTok := p.curToken

	if p.peekTokenIs(token.PAREN_OFF) {
		p.nextToken() // cur = ')'
		if !p.peekOpIs(token.OpFatArrow) {
			p.errorf(ErrInvalidArrowParams, openTok.Pos, "empty parentheses are only valid as an arrow function's parameter list")
			return nil
		}
		p.nextToken() // cur = '=>'
		return p.finishArrow(nil)
	}

	p.nextToken() // move to first inner expression
	items := []ast.Expression{p.parseExpression(0)}
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		items = append(items, p.parseExpression(0))
	}
	if !p.expectPeek(token.PAREN_OFF) {
		return nil
	}

	var grouped ast.Expression
	if len(items) == 1 {
		grouped = items[0]
	} else {
		grouped = &ast.Sequence{Tok: openTok, Items: items}
	}

	if p.peekOpIs(token.OpFatArrow) {
		p.nextToken() // cur = '=>'
		params, err := toParameterList(grouped)
		if err != nil {
			p.errorf(ErrInvalidArrowParams, p.curToken.Pos, "%s", err)
			return nil
		}
		return p.finishArrow(params)
	}

	return grouped
}

// parseArrowFromLeft handles the paren-free single-identifier form,
// `x => body`, reached through the normal infix loop once an Identifier has
// already been parsed as left and '=>' turns up as the next operator.
func (p *Parser) parseArrowFromLeft(left ast.Expression) ast.Expression {
	params, err := toParameterList(left)
	if err != nil {
		p.errorf(ErrInvalidArrowParams, p.curToken.Pos, "%s", err)
		return nil
	}
	return p.finishArrow(params)
}

// finishArrow expects curToken to be '=>' and consumes the body.
func (p *Parser) finishArrow(params []ast.Parameter) ast.Expression {
	tok := p.curToken
	p.nextToken()
	body := p.parseArrowBody()
	return &ast.ArrowFunction{Tok: tok, Params: params, Body: body}
}

func (p *Parser) parseArrowBody() ast.Statement {
	if p.curTokenIs(token.BLOCK_ON) {
		return p.parseBlockStatement()
	}
	expr := p.parseExpression(0)
	return &ast.ExpressionStmt{Tok: p.curToken, Value: expr}
}

// toParameterList converts an already-parsed grouped expression into an
// arrow function's parameter list, the retroactive half of the '(' arrow
// disambiguation.
func toParameterList(expr ast.Expression) ([]ast.Parameter, error) {
	switch e := expr.(type) {
	case *ast.Identifier:
		return []ast.Parameter{{Name: e.Name}}, nil
	case *ast.Sequence:
		params := make([]ast.Parameter, 0, len(e.Items))
		for _, item := range e.Items {
			id, ok := item.(*ast.Identifier)
			if !ok {
				return nil, fmt.Errorf("arrow function parameters must be plain identifiers")
			}
			params = append(params, ast.Parameter{Name: id.Name})
		}
		return params, nil
	default:
		return nil, fmt.Errorf("invalid arrow function parameter list")
	}
}

func (p *Parser) parseArrayLiteral() ast.Expression {
	tok := p.curToken
	elements := p.parseExpressionList(token.BRACKET_OFF)
	return &ast.Array{Tok: tok, Elements: elements}
}

// parseExpressionList parses a comma-separated expression list up to and
// including end. curToken must be the token preceding the list (the
// opening bracket/paren); curToken is left on end.
func (p *Parser) parseExpressionList(end token.Type) []ast.Expression {
	var list []ast.Expression
	if p.peekTokenIs(end) {
		p.nextToken()
		return list
	}
	p.nextToken()
	list = append(list, p.parseExpression(0))
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		list = append(list, p.parseExpression(0))
	}
	p.expectPeek(end)
	return list
}

func (p *Parser) parseObjectLiteral() ast.Expression {
	tok := p.curToken
	obj := &ast.Object{Tok: tok}
	if p.peekTokenIs(token.BLOCK_OFF) {
		p.nextToken()
		return obj
	}
	p.nextToken()
	if m := p.parseObjectMember(); m != nil {
		obj.Members = append(obj.Members, m)
	}
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		if p.peekTokenIs(token.BLOCK_OFF) {
			p.nextToken()
			return obj
		}
		p.nextToken()
		if m := p.parseObjectMember(); m != nil {
			obj.Members = append(obj.Members, m)
		}
	}
	p.expectPeek(token.BLOCK_OFF)
	return obj
}

func (p *Parser) parseObjectMember() ast.ObjectMember {
	if p.curTokenIs(token.BRACKET_ON) {
		tok := p.curToken
		p.nextToken()
		key := p.parseExpression(0)
		if !p.expectPeek(token.BRACKET_OFF) {
			return nil
		}
		if p.peekTokenIs(token.PAREN_ON) {
			p.nextToken()
			params := p.parseParameterList()
			if !p.expectPeek(token.BLOCK_ON) {
				return nil
			}
			body := p.parseBlockBody()
			return &ast.ComputedMethodMember{Tok: tok, Name: key, Params: params, Body: body}
		}
		if !p.expectPeek(token.COLON) {
			return nil
		}
		p.nextToken()
		value := p.parseExpression(0)
		return &ast.ComputedMember{Tok: tok, Key: key, Value: value}
	}

	tok := p.curToken
	name := p.propertyKeyLiteral()

	if p.peekTokenIs(token.PAREN_ON) {
		p.nextToken()
		params := p.parseParameterList()
		if !p.expectPeek(token.BLOCK_ON) {
			return nil
		}
		body := p.parseBlockBody()
		return &ast.MethodMember{Tok: tok, Name: name, Params: params, Body: body}
	}
	if p.peekTokenIs(token.COLON) {
		p.nextToken()
		p.nextToken()
		value := p.parseExpression(0)
		return &ast.LiteralMember{Tok: tok, Key: name, Value: value}
	}
	return &ast.ShorthandMember{Tok: tok, Key: name}
}

// propertyKeyLiteral reads curToken as an object-literal property key,
// unquoting string keys (their literal keeps the surrounding quotes the
// way LiteralValue.Text does, but a key name never should).
func (p *Parser) propertyKeyLiteral() string {
	if p.curToken.Type == token.STRING && len(p.curToken.Literal) >= 2 {
		return p.curToken.Literal[1 : len(p.curToken.Literal)-1]
	}
	return p.curToken.Literal
}

func (p *Parser) parseCallExpression(callee ast.Expression) ast.Expression {
	tok := p.curToken
	args := p.parseExpressionList(token.PAREN_OFF)
	return &ast.Call{Tok: tok, Callee: callee, Arguments: args}
}

func (p *Parser) parseComputedMemberExpression(obj ast.Expression) ast.Expression {
	tok := p.curToken
	p.nextToken()
	prop := p.parseExpression(0)
	if !p.expectPeek(token.BRACKET_OFF) {
		return obj
	}
	return &ast.ComputedMember2{Tok: tok, Object: obj, Property: prop}
}

func (p *Parser) parseMemberAccess(obj ast.Expression) ast.Expression {
	tok := p.curToken
	if !p.expectPeek(token.IDENT) {
		return obj
	}
	return &ast.Member{Tok: tok, Object: obj, Property: p.curToken.Literal}
}

// makeBinaryParser builds an infix parser for a binary operator. rightAssoc
// controls which minBP the right operand recurses with: bp-1 makes an
// equal-precedence operator on the right bind here too (right-associative);
// bp itself leaves it for the enclosing loop to pick up (left-associative),
// since parseExpression only folds operators whose binding power exceeds
// minBP.
func (p *Parser) makeBinaryParser(op token.OperatorType, rightAssoc bool) infixParseFn {
	return func(left ast.Expression) ast.Expression {
		tok := p.curToken
		bp := op.BindingPower(token.Infix)
		minBP := bp - 1
		if !rightAssoc {
			minBP = bp
		}
		p.nextToken()
		right := p.parseExpression(minBP)
		return &ast.Binary{Tok: tok, Left: left, Operator: op, Right: right}
	}
}

func (p *Parser) makeAssignParser(op token.OperatorType) infixParseFn {
	binary := p.makeBinaryParser(op, true)
	return func(left ast.Expression) ast.Expression {
		switch left.(type) {
		case *ast.Identifier, *ast.Member, *ast.ComputedMember2:
		default:
			p.errorf(ErrInvalidAssignTarget, left.Pos(), "invalid assignment target")
		}
		return binary(left)
	}
}

func (p *Parser) parseConditional(test ast.Expression) ast.Expression {
	tok := p.curToken
	p.nextToken()
	consequent := p.parseExpression(0)
	if !p.expectPeek(token.COLON) {
		return nil
	}
	p.nextToken()
	// Both branches admit a full assignment-level expression, not just
	// whatever would normally bind tighter than '?:' itself.
	alternate := p.parseExpression(0)
	return &ast.Conditional{Tok: tok, Test: test, Consequent: consequent, Alternate: alternate}
}

func (p *Parser) parsePostfix(operand ast.Expression) ast.Expression {
	tok := p.curToken
	return &ast.Postfix{Tok: tok, Operator: tok.Op, Operand: operand}
}

// parseFunctionExpression parses both named and anonymous function
// expressions; FunctionStmt (the statement-level named declaration) is
// built separately in statements.go from the same parseParameterList /
// parseBlockBody helpers.
func (p *Parser) parseFunctionExpression() ast.Expression {
	tok := p.curToken
	name := ""
	if p.peekTokenIs(token.IDENT) {
		p.nextToken()
		name = p.curToken.Literal
	}
	if !p.expectPeek(token.PAREN_ON) {
		return nil
	}
	params := p.parseParameterList()
	if !p.expectPeek(token.BLOCK_ON) {
		return nil
	}
	body := p.parseBlockBody()
	return &ast.FunctionExpr{Tok: tok, Name: name, Params: params, Body: body}
}

// parseParameterList expects curToken == '(' and leaves curToken on ')'.
func (p *Parser) parseParameterList() []ast.Parameter {
	var params []ast.Parameter
	if p.peekTokenIs(token.PAREN_OFF) {
		p.nextToken()
		return params
	}
	p.nextToken()
	params = append(params, p.parseOneParameter())
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		params = append(params, p.parseOneParameter())
	}
	p.expectPeek(token.PAREN_OFF)
	return params
}

func (p *Parser) parseOneParameter() ast.Parameter {
	if !p.curTokenIs(token.IDENT) {
		p.errorf(ErrExpectedIdent, p.curToken.Pos, "expected parameter name, got %s", p.curToken.Type)
	}
	return ast.Parameter{Name: p.curToken.Literal}
}

// parseBlockBody expects curToken == '{' and consumes through the matching
// '}', leaving curToken on it; used for function/method/class bodies that
// the AST models as a bare []ast.Statement rather than an *ast.Block.
func (p *Parser) parseBlockBody() []ast.Statement {
	var body []ast.Statement
	p.nextToken()
	for !p.curTokenIs(token.BLOCK_OFF) && !p.curTokenIs(token.EOF) {
		if stmt := p.parseStatement(); stmt != nil {
			body = append(body, stmt)
		}
		p.nextToken()
	}
	return body
}

func (p *Parser) parseBlockStatement() *ast.Block {
	tok := p.curToken
	return &ast.Block{Tok: tok, Body: p.parseBlockBody()}
}
