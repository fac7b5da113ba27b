package parser

import (
	"ape/internal/ast"
	"ape/internal/diag"
	"ape/internal/token"
)

// parseStructStmt: struct [pub] Name { [pub] field: type, ... }
// Names must start uppercase; field types collapse to their token kind.
func (p *Parser) parseStructStmt() (ast.StmtID, bool) {
	start := p.advance() // 'struct'

	isPub := p.eat(token.KwPub)
	name, ok := p.parseUpperIdent()
	if !ok {
		return ast.NoStmtID, false
	}
	if _, ok := p.expect(token.LBrace, diag.SynExpectBlock, "expected '{' after struct name"); !ok {
		return ast.NoStmtID, false
	}

	var fields []ast.StructField
	for !p.eat(token.RBrace) {
		if p.at(token.EOF) {
			p.err(diag.SynExpectBlock, "unterminated struct body")
			return ast.NoStmtID, false
		}
		fieldPub := p.eat(token.KwPub)
		fieldName, ok := p.parseIdent()
		if !ok {
			return ast.NoStmtID, false
		}
		if _, ok := p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':' after field name"); !ok {
			return ast.NoStmtID, false
		}
		fieldType, ok := p.consumeTypeIdent()
		if !ok {
			return ast.NoStmtID, false
		}
		fields = append(fields, ast.StructField{
			Name:  fieldName,
			Type:  fieldType.Kind,
			IsPub: fieldPub,
		})
		if !p.eat(token.Comma) && !p.at(token.RBrace) {
			p.err(diag.SynUnexpectedToken, "expected ',' or '}' after struct field")
			return ast.NoStmtID, false
		}
	}

	return p.arenas.Stmts.NewStruct(p.spanFrom(start), ast.StmtStructData{
		Name:   name,
		Fields: fields,
		IsPub:  isPub,
	}), true
}

// parseImplStmt: impl Name { func ... }
func (p *Parser) parseImplStmt() (ast.StmtID, bool) {
	start := p.advance() // 'impl'

	name, ok := p.parseUpperIdent()
	if !ok {
		return ast.NoStmtID, false
	}
	if _, ok := p.expect(token.LBrace, diag.SynExpectBlock, "expected '{' after impl name"); !ok {
		return ast.NoStmtID, false
	}

	var body []ast.StmtID
	for !p.eat(token.RBrace) {
		if p.at(token.EOF) {
			p.err(diag.SynExpectBlock, "unterminated impl body")
			return ast.NoStmtID, false
		}
		if !p.at(token.KwFunc) {
			p.err(diag.SynUnexpectedToken, "impl blocks may only contain functions")
			return ast.NoStmtID, false
		}
		fn, ok := p.parseFuncStmt()
		if !ok {
			return ast.NoStmtID, false
		}
		body = append(body, fn)
	}

	return p.arenas.Stmts.NewImpl(p.spanFrom(start), ast.StmtImplData{
		Name: name,
		Body: body,
	}), true
}

// parseEnumStmt: enum [pub] Name { Variant, ... }
func (p *Parser) parseEnumStmt() (ast.StmtID, bool) {
	start := p.advance() // 'enum'

	isPub := p.eat(token.KwPub)
	name, ok := p.parseUpperIdent()
	if !ok {
		return ast.NoStmtID, false
	}
	if _, ok := p.expect(token.LBrace, diag.SynExpectBlock, "expected '{' after enum name"); !ok {
		return ast.NoStmtID, false
	}

	var variants []token.Token
	for !p.eat(token.RBrace) {
		if p.at(token.EOF) {
			p.err(diag.SynExpectBlock, "unterminated enum body")
			return ast.NoStmtID, false
		}
		variant, ok := p.parseIdent()
		if !ok {
			return ast.NoStmtID, false
		}
		variants = append(variants, variant)
		if !p.eat(token.Comma) && !p.at(token.RBrace) {
			p.err(diag.SynUnexpectedToken, "expected ',' or '}' after enum variant")
			return ast.NoStmtID, false
		}
	}

	return p.arenas.Stmts.NewEnum(p.spanFrom(start), ast.StmtEnumData{
		Name:     name,
		Variants: variants,
		IsPub:    isPub,
	}), true
}
