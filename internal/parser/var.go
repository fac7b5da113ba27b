package parser

import (
	"ape/internal/ast"
	"ape/internal/diag"
	"ape/internal/token"
)

// parseVarStmt handles every 'let' form:
//
//	let x: number = 1;
//	let mut x, y: string = "s";
//	let pub (a, b) a, b: bool = true;
//	let x;                  // null declaration
//	let x: null;            // explicit null declaration
//	let f: void = |n: number| : n * 2;
func (p *Parser) parseVarStmt() (ast.StmtID, bool) {
	start := p.advance() // 'let'

	var (
		names    []token.Token
		pubNames []token.Token
		isMut    bool
		isPub    bool
	)

	if p.eat(token.KwMut) {
		isMut = true
	} else if p.eat(token.KwPub) {
		isPub = true
		if p.eat(token.LParen) {
			for {
				name, ok := p.parseIdent()
				if !ok {
					return ast.NoStmtID, false
				}
				pubNames = append(pubNames, name)
				if !p.eat(token.Comma) || p.at(token.RParen) {
					break
				}
			}
			if _, ok := p.expect(token.RParen, diag.SynUnexpectedToken, "expected ')' after export list"); !ok {
				return ast.NoStmtID, false
			}
		}
	}

	isNull := false
	for {
		name, ok := p.parseIdent()
		if !ok {
			return ast.NoStmtID, false
		}
		names = append(names, name)

		if p.at(token.Semicolon) {
			isNull = true
			break
		}
		if !p.eat(token.Comma) {
			break
		}
	}

	if isNull {
		p.advance() // ';'
		return p.newNullVar(start, names, pubNames, isMut, isPub), true
	}

	if _, ok := p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':' before declared type"); !ok {
		return ast.NoStmtID, false
	}
	valueType, ok := p.consumeTypeIdent()
	if !ok {
		return ast.NoStmtID, false
	}

	// "let x: null;" declares without a value
	if valueType.Kind == token.TyNull || valueType.Kind == token.NullLit {
		if !p.expectSemi() {
			return ast.NoStmtID, false
		}
		return p.newNullVar(start, names, pubNames, isMut, isPub), true
	}

	if _, ok := p.expect(token.Assign, diag.SynUnexpectedToken, "expected '=' after declared type"); !ok {
		return ast.NoStmtID, false
	}

	isFunc := p.at(token.Pipe)
	value, ok := p.parseExpr(declContext{
		name:  names[0],
		typ:   valueType,
		isPub: isPub,
	})
	if !ok {
		return ast.NoStmtID, false
	}
	if !p.expectSemi() {
		return ast.NoStmtID, false
	}

	return p.arenas.Stmts.NewVar(p.spanFrom(start), ast.StmtVarData{
		Names:    names,
		Type:     valueType,
		Value:    value,
		IsMut:    isMut,
		IsPub:    isPub,
		PubNames: pubNames,
		IsFunc:   isFunc,
	}), true
}

// newNullVar builds the null-declaration form: the declared type is a
// synthesized TyNull token and the value is a null literal expression.
func (p *Parser) newNullVar(start token.Token, names, pubNames []token.Token, isMut, isPub bool) ast.StmtID {
	sp := p.spanFrom(start)
	nullType := token.Token{
		Kind: token.TyNull,
		Text: "null",
		Span: sp,
		Line: names[0].Line,
		Col:  names[0].Col,
	}
	value := p.arenas.Exprs.NewValue(sp, ast.NullValue())
	return p.arenas.Stmts.NewVar(sp, ast.StmtVarData{
		Names:    names,
		Type:     nullType,
		Value:    value,
		IsMut:    isMut,
		IsPub:    isPub,
		PubNames: pubNames,
	})
}
