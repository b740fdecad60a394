package parser

import (
	"github.com/jsrewrite/jsrw/pkg/ast"
	"github.com/jsrewrite/jsrw/pkg/token"
)

// ParseProgram consumes the entire token stream and returns the root node.
// Callers normally reach this through the package-level Parse function.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}
	for !p.curTokenIs(token.EOF) {
		if stmt := p.parseStatement(); stmt != nil {
			program.Body = append(program.Body, stmt)
		}
		p.nextToken()
	}
	return program
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.BLOCK_ON:
		return p.parseBlockStatement()
	case token.VAR, token.LET, token.CONST:
		return p.parseVariableDeclarationStatement()
	case token.FUNCTION:
		return p.parseFunctionStatement()
	case token.CLASS:
		return p.parseClassDeclaration()
	case token.IF:
		return p.parseIfStatement()
	case token.WHILE:
		return p.parseWhileStatement()
	case token.FOR:
		return p.parseForStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	case token.BREAK:
		return p.parseBreakStatement()
	case token.THROW:
		return p.parseThrowStatement()
	case token.SEMICOLON:
		return nil
	case token.IDENT:
		if p.peekTokenIs(token.COLON) {
			return p.parseLabeledStatement()
		}
	}
	return p.parseExpressionStatement()
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	tok := p.curToken
	expr := p.parseExpression(0)
	stmt := &ast.ExpressionStmt{Tok: tok, Value: expr}
	p.consumeStatementTerminator()
	return stmt
}

func (p *Parser) parseVariableDeclarationStatement() ast.Statement {
	tok := p.curToken
	decl := &ast.VariableDeclaration{Tok: tok, Kind: declarationKind(tok.Type)}
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	decl.Declarators = append(decl.Declarators, p.parseDeclarator())
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		if !p.expectPeek(token.IDENT) {
			break
		}
		decl.Declarators = append(decl.Declarators, p.parseDeclarator())
	}
	p.consumeStatementTerminator()
	return decl
}

func declarationKind(t token.Type) ast.DeclarationKind {
	switch t {
	case token.LET:
		return ast.Let
	case token.CONST:
		return ast.Const
	default:
		return ast.Var
	}
}

// parseDeclarator expects curToken == IDENT.
func (p *Parser) parseDeclarator() ast.Declarator {
	return p.parseDeclaratorNamed(p.curToken.Literal)
}

func (p *Parser) parseDeclaratorNamed(name string) ast.Declarator {
	if !p.expectPeekOp(token.OpAssign) {
		return ast.Declarator{Name: name}
	}
	p.nextToken()
	return ast.Declarator{Name: name, Init: p.parseExpression(0)}
}

func (p *Parser) parseFunctionStatement() ast.Statement {
	tok := p.curToken
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	name := p.curToken.Literal
	if !p.expectPeek(token.PAREN_ON) {
		return nil
	}
	params := p.parseParameterList()
	if !p.expectPeek(token.BLOCK_ON) {
		return nil
	}
	body := p.parseBlockBody()
	return &ast.FunctionStmt{Tok: tok, Name: name, Params: params, Body: body}
}

func (p *Parser) parseIfStatement() ast.Statement {
	tok := p.curToken
	if !p.expectPeek(token.PAREN_ON) {
		return nil
	}
	p.nextToken()
	test := p.parseExpression(0)
	if !p.expectPeek(token.PAREN_OFF) {
		return nil
	}
	p.nextToken()
	stmt := &ast.If{Tok: tok, Test: test, Consequent: p.parseStatement()}
	if p.peekTokenIs(token.ELSE) {
		p.nextToken()
		p.nextToken()
		stmt.Alternate = p.parseStatement()
	}
	return stmt
}

func (p *Parser) parseWhileStatement() ast.Statement {
	tok := p.curToken
	if !p.expectPeek(token.PAREN_ON) {
		return nil
	}
	p.nextToken()
	test := p.parseExpression(0)
	if !p.expectPeek(token.PAREN_OFF) {
		return nil
	}
	p.nextToken()
	return &ast.While{Tok: tok, Test: test, Body: p.parseStatement()}
}

// parseForStatement handles the three for-header shapes: classic
// (init; test; update), for-in, and for-of. Which one it is can't be
// decided until either ';', 'in', or 'of' turns up after the first clause.
func (p *Parser) parseForStatement() ast.Statement {
	tok := p.curToken
	if !p.expectPeek(token.PAREN_ON) {
		return nil
	}

	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
		return p.finishClassicFor(tok, nil)
	}

	p.nextToken()

	if p.curTokenIs(token.VAR) || p.curTokenIs(token.LET) || p.curTokenIs(token.CONST) {
		declTok := p.curToken
		kind := declarationKind(declTok.Type)
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		name := p.curToken.Literal

		if p.peekTokenIs(token.IN) {
			p.nextToken()
			decl := &ast.VariableDeclaration{Tok: declTok, Kind: kind, Declarators: []ast.Declarator{{Name: name}}}
			return p.finishForIn(tok, decl)
		}
		if p.peekTokenIs(token.OF) {
			p.nextToken()
			decl := &ast.VariableDeclaration{Tok: declTok, Kind: kind, Declarators: []ast.Declarator{{Name: name}}}
			return p.finishForOf(tok, decl)
		}

		decl := &ast.VariableDeclaration{Tok: declTok, Kind: kind}
		decl.Declarators = append(decl.Declarators, p.parseDeclaratorNamed(name))
		for p.peekTokenIs(token.COMMA) {
			p.nextToken()
			if !p.expectPeek(token.IDENT) {
				break
			}
			decl.Declarators = append(decl.Declarators, p.parseDeclarator())
		}
		if !p.expectPeek(token.SEMICOLON) {
			return nil
		}
		return p.finishClassicFor(tok, decl)
	}

	exprTok := p.curToken
	expr := p.parseExpression(0)
	if p.peekTokenIs(token.IN) {
		p.nextToken()
		return p.finishForIn(tok, &ast.ExpressionStmt{Tok: exprTok, Value: expr})
	}
	if p.peekTokenIs(token.OF) {
		p.nextToken()
		return p.finishForOf(tok, &ast.ExpressionStmt{Tok: exprTok, Value: expr})
	}
	if !p.expectPeek(token.SEMICOLON) {
		return nil
	}
	return p.finishClassicFor(tok, &ast.ExpressionStmt{Tok: exprTok, Value: expr})
}

// finishClassicFor expects curToken to be the ';' ending the init clause.
func (p *Parser) finishClassicFor(tok token.Token, init ast.Statement) ast.Statement {
	var test ast.Expression
	if !p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
		test = p.parseExpression(0)
	}
	if !p.expectPeek(token.SEMICOLON) {
		return nil
	}
	var update ast.Expression
	if !p.peekTokenIs(token.PAREN_OFF) {
		p.nextToken()
		update = p.parseExpression(0)
	}
	if !p.expectPeek(token.PAREN_OFF) {
		return nil
	}
	p.nextToken()
	return &ast.For{Tok: tok, Init: init, Test: test, Update: update, Body: p.parseStatement()}
}

// finishForIn/finishForOf expect curToken to already be the 'in'/'of' token.
func (p *Parser) finishForIn(tok token.Token, left ast.Statement) ast.Statement {
	p.nextToken()
	right := p.parseExpression(0)
	if !p.expectPeek(token.PAREN_OFF) {
		return nil
	}
	p.nextToken()
	return &ast.ForIn{Tok: tok, Left: left, Right: right, Body: p.parseStatement()}
}

func (p *Parser) finishForOf(tok token.Token, left ast.Statement) ast.Statement {
	p.nextToken()
	right := p.parseExpression(0)
	if !p.expectPeek(token.PAREN_OFF) {
		return nil
	}
	p.nextToken()
	return &ast.ForOf{Tok: tok, Left: left, Right: right, Body: p.parseStatement()}
}

func (p *Parser) parseReturnStatement() ast.Statement {
	tok := p.curToken
	stmt := &ast.Return{Tok: tok}
	// No line terminator is allowed between 'return' and its expression;
	// across a newline (or before '}'/EOF) it returns nothing.
	if p.peekTokenIs(token.SEMICOLON) || p.peekTokenIs(token.BLOCK_OFF) || p.peekTokenIs(token.EOF) || p.peekNewlineBefore {
		p.consumeStatementTerminator()
		return stmt
	}
	p.nextToken()
	stmt.Value = p.parseExpression(0)
	p.consumeStatementTerminator()
	return stmt
}

func (p *Parser) parseBreakStatement() ast.Statement {
	tok := p.curToken
	stmt := &ast.Break{Tok: tok}
	if p.peekTokenIs(token.IDENT) && !p.peekNewlineBefore {
		p.nextToken()
		stmt.Label = p.curToken.Literal
	}
	p.consumeStatementTerminator()
	return stmt
}

func (p *Parser) parseThrowStatement() ast.Statement {
	tok := p.curToken
	p.nextToken()
	value := p.parseExpression(0)
	stmt := &ast.Throw{Tok: tok, Value: value}
	p.consumeStatementTerminator()
	return stmt
}

func (p *Parser) parseLabeledStatement() ast.Statement {
	tok := p.curToken
	label := p.curToken.Literal
	p.nextToken() // cur = ':'
	p.nextToken() // move to body
	return &ast.Labeled{Tok: tok, Label: label, Body: p.parseStatement()}
}

func (p *Parser) parseClassDeclaration() ast.Statement {
	tok := p.curToken
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	decl := &ast.ClassDecl{Tok: tok, Name: p.curToken.Literal}
	if p.peekTokenIs(token.EXTENDS) {
		p.nextToken()
		if !p.expectPeek(token.IDENT) {
			return decl
		}
		decl.Extends = p.curToken.Literal
	}
	if !p.expectPeek(token.BLOCK_ON) {
		return decl
	}
	p.nextToken()
	for !p.curTokenIs(token.BLOCK_OFF) && !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.SEMICOLON) {
			p.nextToken()
			continue
		}
		if member := p.parseClassMember(); member != nil {
			decl.Body = append(decl.Body, member)
		}
		p.nextToken()
	}
	return decl
}

func (p *Parser) parseClassMember() ast.ClassMember {
	isStatic := false
	tok := p.curToken
	if p.curTokenIs(token.STATIC) {
		isStatic = true
		p.nextToken()
		tok = p.curToken
	}

	if p.curTokenIs(token.IDENT) && p.curToken.Literal == "constructor" && p.peekTokenIs(token.PAREN_ON) {
		p.nextToken()
		params := p.parseParameterList()
		if !p.expectPeek(token.BLOCK_ON) {
			return nil
		}
		return &ast.Constructor{Tok: tok, Params: params, Body: p.parseBlockBody()}
	}

	name := p.curToken.Literal
	if p.peekTokenIs(token.PAREN_ON) {
		p.nextToken()
		params := p.parseParameterList()
		if !p.expectPeek(token.BLOCK_ON) {
			return nil
		}
		return &ast.Method{Tok: tok, IsStatic: isStatic, Name: name, Params: params, Body: p.parseBlockBody()}
	}

	prop := &ast.Property{Tok: tok, IsStatic: isStatic, Name: name}
	if p.peekOpIs(token.OpAssign) {
		p.nextToken()
		p.nextToken()
		prop.Value = p.parseExpression(0)
	}
	p.consumeStatementTerminator()
	return prop
}
