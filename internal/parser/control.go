package parser

import (
	"ape/internal/ast"
	"ape/internal/diag"
	"ape/internal/token"
)

func (p *Parser) parseIfStmt() (ast.StmtID, bool) {
	start := p.advance() // 'if'

	cond, ok := p.parseExpr(declContext{})
	if !ok {
		return ast.NoStmtID, false
	}
	body, ok := p.parseBlock()
	if !ok {
		return ast.NoStmtID, false
	}

	data := ast.StmtIfData{Cond: cond, Body: body}

	// the lexer fuses "else if" into one token, so each arm is one peek
	for p.eat(token.KwElseIf) {
		elifCond, ok := p.parseExpr(declContext{})
		if !ok {
			return ast.NoStmtID, false
		}
		elifBody, ok := p.parseBlock()
		if !ok {
			return ast.NoStmtID, false
		}
		data.ElseIf = append(data.ElseIf, ast.ElseIfBranch{Cond: elifCond, Body: elifBody})
	}

	if p.eat(token.KwElse) {
		elseBody, ok := p.parseBlock()
		if !ok {
			return ast.NoStmtID, false
		}
		data.Else = elseBody
		data.HasElse = true
	}

	return p.arenas.Stmts.NewIf(p.spanFrom(start), data), true
}

// parseReturnStmt: 'return;' returns a synthesized null value.
func (p *Parser) parseReturnStmt() (ast.StmtID, bool) {
	start := p.advance() // 'return'

	var expr ast.ExprID
	if p.at(token.Semicolon) {
		expr = p.arenas.Exprs.NewValue(p.getDiagnosticSpan(), ast.NullValue())
	} else {
		var ok bool
		expr, ok = p.parseExpr(declContext{})
		if !ok {
			return ast.NoStmtID, false
		}
	}
	if !p.expectSemi() {
		return ast.NoStmtID, false
	}
	return p.arenas.Stmts.NewReturn(p.spanFrom(start), expr), true
}

func (p *Parser) parseWhileStmt() (ast.StmtID, bool) {
	start := p.advance() // 'while'

	cond, ok := p.parseExpr(declContext{})
	if !ok {
		return ast.NoStmtID, false
	}
	body, ok := p.parseBlock()
	if !ok {
		return ast.NoStmtID, false
	}
	return p.arenas.Stmts.NewWhile(p.spanFrom(start), cond, body), true
}

// parseLoopStmt: 'loop { ... }' or 'loop N { ... }' where N is a number
// literal giving the iteration count.
func (p *Parser) parseLoopStmt() (ast.StmtID, bool) {
	start := p.advance() // 'loop'

	data := ast.StmtLoopData{}
	if p.at(token.NumberLit) {
		bound := p.advance()
		if bound.Literal == nil || bound.Literal.Kind != token.LitNumber {
			p.err(diag.SynUnexpectedToken, "malformed loop bound")
			return ast.NoStmtID, false
		}
		data.Iter = uint32(bound.Literal.Number)
		data.HasIter = true
	}

	body, ok := p.parseBlock()
	if !ok {
		return ast.NoStmtID, false
	}
	data.Body = body
	return p.arenas.Stmts.NewLoop(p.spanFrom(start), data), true
}

func (p *Parser) parseBreakStmt() (ast.StmtID, bool) {
	start := p.advance() // 'break'
	if !p.expectSemi() {
		return ast.NoStmtID, false
	}
	return p.arenas.Stmts.NewBreak(p.spanFrom(start)), true
}

// parseMatchStmt: non-default arms are literal or capitalized-identifier
// patterns; the '_' default arm is mandatory and comes last. Arm bodies
// are either '{ ... }' blocks or 'expr,' short forms.
func (p *Parser) parseMatchStmt() (ast.StmtID, bool) {
	start := p.advance() // 'match'

	cond, ok := p.parseExpr(declContext{})
	if !ok {
		return ast.NoStmtID, false
	}
	if _, ok := p.expect(token.LBrace, diag.SynExpectBlock, "expected '{' after match scrutinee"); !ok {
		return ast.NoStmtID, false
	}

	var cases []ast.MatchCase
	for p.atCasePattern() {
		pattern, ok := p.parseExpr(declContext{})
		if !ok {
			return ast.NoStmtID, false
		}
		if _, ok := p.expect(token.FatArrow, diag.SynUnexpectedToken, "expected '=>' after match pattern"); !ok {
			return ast.NoStmtID, false
		}
		body, ok := p.parseCaseBody()
		if !ok {
			return ast.NoStmtID, false
		}
		cases = append(cases, ast.MatchCase{Pattern: pattern, Body: body})
	}

	if _, ok := p.expect(token.Underscore, diag.SynExpectMatchDefault, "match requires a '_' default arm"); !ok {
		return ast.NoStmtID, false
	}
	if _, ok := p.expect(token.FatArrow, diag.SynUnexpectedToken, "expected '=>' after '_'"); !ok {
		return ast.NoStmtID, false
	}
	def, ok := p.parseCaseBody()
	if !ok {
		return ast.NoStmtID, false
	}

	if _, ok := p.expect(token.RBrace, diag.SynExpectBlock, "expected '}' after match arms"); !ok {
		return ast.NoStmtID, false
	}

	return p.arenas.Stmts.NewMatch(p.spanFrom(start), ast.StmtMatchData{
		Cond:    cond,
		Cases:   cases,
		Default: def,
	}), true
}

// atCasePattern reports whether the current token begins a non-default
// match arm: a literal or an uppercase identifier (enum variant).
func (p *Parser) atCasePattern() bool {
	if p.peek().IsLiteral() {
		return true
	}
	return p.at(token.Ident) && isUpperStart(p.peek().Text)
}

// parseCaseBody: block form '{ ... }' or expression form 'expr,'.
func (p *Parser) parseCaseBody() (ast.FuncBody, bool) {
	if p.at(token.LBrace) {
		stmts, ok := p.parseBlock()
		if !ok {
			return ast.FuncBody{}, false
		}
		return ast.BlockBody(stmts), true
	}
	expr, ok := p.parseExpr(declContext{})
	if !ok {
		return ast.FuncBody{}, false
	}
	if _, ok := p.expect(token.Comma, diag.SynUnexpectedToken, "expected ',' after match arm expression"); !ok {
		return ast.FuncBody{}, false
	}
	return ast.ExprBody(expr), true
}
