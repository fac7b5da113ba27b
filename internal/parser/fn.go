package parser

import (
	"ape/internal/ast"
	"ape/internal/diag"
	"ape/internal/token"
)

// parseFuncStmt handles named function declarations:
//
//	func [pub] [async] name(params) -> type { ... }
//	func name() -> number = 42;          // implicit return
//	func area(self) -> number { ... }    // impl method
//
// 'pub' and 'async' are accepted in either order.
func (p *Parser) parseFuncStmt() (ast.StmtID, bool) {
	start := p.advance() // 'func'

	var isAsync, isPub bool
	if p.eat(token.KwPub) {
		isPub = true
		if p.eat(token.KwAsync) {
			isAsync = true
		}
	}
	if p.eat(token.KwAsync) {
		isAsync = true
		if p.eat(token.KwPub) {
			isPub = true
		}
	}

	name, ok := p.parseIdent()
	if !ok {
		return ast.NoStmtID, false
	}

	params, isImpl, isMut, ok := p.parseParams()
	if !ok {
		return ast.NoStmtID, false
	}

	if _, ok := p.expect(token.Arrow, diag.SynUnexpectedToken, "expected '->' before return type"); !ok {
		return ast.NoStmtID, false
	}
	valueType, ok := p.consumeTypeIdent()
	if !ok {
		return ast.NoStmtID, false
	}

	data := ast.StmtFuncData{
		Name:    name,
		Type:    valueType,
		Params:  params,
		IsAsync: isAsync,
		IsPub:   isPub,
		IsImpl:  isImpl,
		IsMut:   isMut,
	}

	// "= expr;" wraps the expression in an implicit return
	if p.eat(token.Assign) {
		expr, ok := p.parseExpr(declContext{name: name, typ: valueType, isPub: isPub})
		if !ok {
			return ast.NoStmtID, false
		}
		if !p.expectSemi() {
			return ast.NoStmtID, false
		}
		ret := p.arenas.Stmts.NewReturn(p.arenas.Exprs.Get(expr).Span, expr)
		data.Body = ast.BlockBody([]ast.StmtID{ret})
		return p.arenas.Stmts.NewFunc(p.spanFrom(start), data), true
	}

	body, ok := p.parseBlock()
	if !ok {
		return ast.NoStmtID, false
	}
	data.Body = ast.BlockBody(body)
	return p.arenas.Stmts.NewFunc(p.spanFrom(start), data), true
}

// parseParams scans '(' ... ')'. A 'self' or 'mut self' entry marks the
// function as an impl method instead of adding a parameter.
func (p *Parser) parseParams() (params []ast.Param, isImpl, isMut bool, ok bool) {
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after function name"); !ok {
		return nil, false, false, false
	}
	for !p.eat(token.RParen) {
		switch {
		case p.at(token.Ident):
			name := p.advance()
			if _, ok := p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':' after parameter name"); !ok {
				return nil, false, false, false
			}
			typ, typOK := p.consumeTypeIdent()
			if !typOK {
				return nil, false, false, false
			}
			params = append(params, ast.Param{Name: name, Type: typ})

		case p.eat(token.KwMut):
			if _, ok := p.expect(token.KwSelf, diag.SynUnexpectedToken, "expected 'self' after 'mut'"); !ok {
				return nil, false, false, false
			}
			isMut = true
			isImpl = true

		case p.eat(token.KwSelf):
			isImpl = true

		case p.eat(token.Comma):

		case p.at(token.EOF):
			p.err(diag.SynUnexpectedToken, "unterminated parameter list")
			return nil, false, false, false

		default:
			p.err(diag.SynUnexpectedToken, "unexpected token \""+p.peek().Text+"\" in parameter list")
			return nil, false, false, false
		}
	}
	return params, isImpl, isMut, true
}
