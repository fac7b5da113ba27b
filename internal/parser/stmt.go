package parser

import (
	"ape/internal/ast"
	"ape/internal/diag"
	"ape/internal/token"
)

// parseStmt dispatches on the current token.
func (p *Parser) parseStmt() (ast.StmtID, bool) {
	switch p.peek().Kind {
	case token.KwLet:
		return p.parseVarStmt()
	case token.KwFunc:
		return p.parseFuncStmt()
	case token.KwIf:
		return p.parseIfStmt()
	case token.KwReturn:
		return p.parseReturnStmt()
	case token.KwWhile:
		return p.parseWhileStmt()
	case token.KwLoop:
		return p.parseLoopStmt()
	case token.KwBreak:
		return p.parseBreakStmt()
	case token.KwMatch:
		return p.parseMatchStmt()
	case token.KwMod:
		return p.parseModStmt()
	case token.KwUse:
		return p.parseUseStmt()
	case token.KwStruct:
		return p.parseStructStmt()
	case token.KwImpl:
		return p.parseImplStmt()
	case token.KwEnum:
		return p.parseEnumStmt()
	case token.LBrace:
		return p.parseBlockStmt()
	default:
		return p.parseExprStmt()
	}
}

// parseBlock parses '{' stmt* '}' and returns the contained statements.
// Statements that fail to parse are skipped via resync so the block
// still closes at its brace.
func (p *Parser) parseBlock() ([]ast.StmtID, bool) {
	if _, ok := p.expect(token.LBrace, diag.SynExpectBlock, "expected '{'"); !ok {
		return nil, false
	}
	var stmts []ast.StmtID
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		id, ok := p.parseStmt()
		if !ok {
			p.resyncStmt()
			continue
		}
		stmts = append(stmts, id)
	}
	if _, ok := p.expect(token.RBrace, diag.SynExpectBlock, "expected '}'"); !ok {
		return stmts, false
	}
	return stmts, true
}

func (p *Parser) parseBlockStmt() (ast.StmtID, bool) {
	start := p.peek()
	stmts, ok := p.parseBlock()
	if !ok {
		return ast.NoStmtID, false
	}
	return p.arenas.Stmts.NewBlock(p.spanFrom(start), stmts), true
}

func (p *Parser) parseExprStmt() (ast.StmtID, bool) {
	start := p.peek()
	expr, ok := p.parseExpr(declContext{})
	if !ok {
		return ast.NoStmtID, false
	}
	if !p.expectSemi() {
		return ast.NoStmtID, false
	}
	return p.arenas.Stmts.NewExpr(p.spanFrom(start), expr), true
}

// parseModStmt: mod "path";  The stored source is the unquoted string
// value.
func (p *Parser) parseModStmt() (ast.StmtID, bool) {
	start := p.advance() // 'mod'
	src, ok := p.expect(token.StringLit, diag.SynUnexpectedToken, "expected module path string")
	if !ok {
		return ast.NoStmtID, false
	}
	if !p.expectSemi() {
		return ast.NoStmtID, false
	}
	return p.arenas.Stmts.NewMod(p.spanFrom(start), stringValue(src)), true
}

// parseUseStmt: use name [as alias], ... from "path";
func (p *Parser) parseUseStmt() (ast.StmtID, bool) {
	start := p.advance() // 'use'
	var names []ast.UseName
	for !p.at(token.KwFrom) && !p.at(token.EOF) {
		name, ok := p.parseIdent()
		if !ok {
			return ast.NoStmtID, false
		}
		entry := ast.UseName{Name: name}
		if p.eat(token.KwAs) {
			alias, ok := p.parseIdent()
			if !ok {
				return ast.NoStmtID, false
			}
			entry.Alias = alias
			entry.HasAlias = true
		}
		names = append(names, entry)
		if !p.eat(token.Comma) && !p.at(token.KwFrom) {
			p.err(diag.SynUnexpectedToken, "expected ',' or 'from' in use statement")
			return ast.NoStmtID, false
		}
	}
	if _, ok := p.expect(token.KwFrom, diag.SynUnexpectedToken, "expected 'from'"); !ok {
		return ast.NoStmtID, false
	}
	src, ok := p.expect(token.StringLit, diag.SynUnexpectedToken, "expected import path string")
	if !ok {
		return ast.NoStmtID, false
	}
	if !p.expectSemi() {
		return ast.NoStmtID, false
	}
	return p.arenas.Stmts.NewUse(p.spanFrom(start), stringValue(src), names), true
}

// stringValue extracts the scanned value of a string literal token.
func stringValue(tok token.Token) string {
	if tok.Literal != nil {
		return tok.Literal.Str
	}
	return tok.Text
}
