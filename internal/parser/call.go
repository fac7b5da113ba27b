package parser

import (
	"ape/internal/ast"
	"ape/internal/diag"
	"ape/internal/token"
)

// parseCall parses a primary expression followed by its postfix chain:
// '.' field access or method call, '::' enum variant selection, '(' call
// arguments, or a bare identifier starting a fresh chain.
func (p *Parser) parseCall(ctx declContext) (ast.ExprID, bool) {
	expr, ok := p.parsePrimary(ctx)
	if !ok {
		return ast.NoExprID, false
	}
	for {
		switch {
		case p.eat(token.Dot):
			expr, ok = p.parseMember(expr)
			if !ok {
				return ast.NoExprID, false
			}

		case p.eat(token.ColonColon):
			variant, vok := p.parseCall(declContext{})
			if !vok {
				return ast.NoExprID, false
			}
			span := p.arenas.Exprs.Get(expr).Span.Cover(p.lastSpan)
			expr = p.arenas.Exprs.NewCall(span, expr, []ast.ExprID{variant}, ast.CallEnum)

		case p.eat(token.LParen):
			expr, ok = p.parseCallArgs(expr)
			if !ok {
				return ast.NoExprID, false
			}

		case p.at(token.Ident):
			// adjacent identifier restarts the chain; the original
			// grammar lets the new chain shadow what came before
			expr, ok = p.parseCall(declContext{})
			if !ok {
				return ast.NoExprID, false
			}

		default:
			return expr, true
		}
	}
}

// parseMember finishes 'recv.name': a method call when '(' follows the
// name, otherwise a field access encoded as a struct-dispatch call with
// the field name as a string value argument.
func (p *Parser) parseMember(recv ast.ExprID) (ast.ExprID, bool) {
	name, ok := p.parseIdent()
	if !ok {
		return ast.NoExprID, false
	}

	if p.eat(token.LParen) {
		var args []ast.ExprID
		for !p.eat(token.RParen) {
			if p.at(token.EOF) {
				p.err(diag.SynUnexpectedToken, "unterminated argument list")
				return ast.NoExprID, false
			}
			arg, ok := p.parseExpr(declContext{})
			if !ok {
				return ast.NoExprID, false
			}
			args = append(args, arg)
			p.eat(token.Comma)
		}
		span := p.arenas.Exprs.Get(recv).Span.Cover(p.lastSpan)
		return p.arenas.Exprs.NewMethod(span, recv, name, args), true
	}

	field := p.arenas.Exprs.NewValue(name.Span, ast.StringValue(name.Text))
	span := p.arenas.Exprs.Get(recv).Span.Cover(name.Span)
	return p.arenas.Exprs.NewCall(span, recv, []ast.ExprID{field}, ast.CallStruct), true
}

// parseCallArgs finishes 'callee(a, b, ...)'.
func (p *Parser) parseCallArgs(callee ast.ExprID) (ast.ExprID, bool) {
	var args []ast.ExprID
	for !p.eat(token.RParen) {
		if p.at(token.EOF) {
			p.err(diag.SynUnexpectedToken, "unterminated argument list")
			return ast.NoExprID, false
		}
		arg, ok := p.parseExpr(declContext{})
		if !ok {
			return ast.NoExprID, false
		}
		args = append(args, arg)
		if !p.eat(token.Comma) && !p.at(token.RParen) {
			p.err(diag.SynUnexpectedToken, "expected ',' or ')' in argument list")
			return ast.NoExprID, false
		}
	}
	span := p.arenas.Exprs.Get(callee).Span.Cover(p.lastSpan)
	return p.arenas.Exprs.NewCall(span, callee, args, ast.CallFunc), true
}
