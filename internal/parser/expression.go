package parser

import (
	"ape/internal/ast"
	"ape/internal/diag"
	"ape/internal/token"
)

// declContext carries the declaration surroundings into the expression
// grammar so a closure literal knows the name, declared type and export
// flag of the binding it initializes. Expressions parsed outside a
// declaration get the zero value.
type declContext struct {
	name  token.Token
	typ   token.Token
	isPub bool
}

func (p *Parser) parseExpr(ctx declContext) (ast.ExprID, bool) {
	return p.parseBinary(ctx)
}

// binaryOps is the single flat tier of infix operators: no precedence,
// strict left fold, right operand limited to a unary expression.
var binaryOps = []token.Kind{
	token.Plus, token.Minus, token.Star, token.Slash, token.Percent,
	token.AndAnd, token.OrOr, token.EqEq, token.BangEq,
	token.Gt, token.GtEq, token.Lt, token.LtEq,
	token.PlusAssign, token.MinusAssign, token.StarAssign, token.SlashAssign,
	token.StarStar, token.Amp,
}

func (p *Parser) parseBinary(ctx declContext) (ast.ExprID, bool) {
	left, ok := p.parseUnary(ctx)
	if !ok {
		return ast.NoExprID, false
	}
	for p.atAny(binaryOps...) {
		op := p.advance()
		right, ok := p.parseUnary(declContext{})
		if !ok {
			return ast.NoExprID, false
		}
		span := p.arenas.Exprs.Get(left).Span.Cover(p.arenas.Exprs.Get(right).Span)
		left = p.arenas.Exprs.NewBinary(span, left, op, right)
	}
	return left, true
}

// parseUnary: prefix-only '!', '!!', '?', '--', '++'.
func (p *Parser) parseUnary(ctx declContext) (ast.ExprID, bool) {
	if p.atAny(token.Bang, token.BangBang, token.Question, token.MinusMinus, token.PlusPlus) {
		op := p.advance()
		operand, ok := p.parseUnary(declContext{})
		if !ok {
			return ast.NoExprID, false
		}
		span := op.Span.Cover(p.arenas.Exprs.Get(operand).Span)
		return p.arenas.Exprs.NewUnary(span, op, operand), true
	}
	return p.parseCall(ctx)
}

func (p *Parser) parsePrimary(ctx declContext) (ast.ExprID, bool) {
	tok := p.peek()
	switch {
	case tok.Kind == token.Ident:
		p.advance()
		expr := p.arenas.Exprs.NewVar(tok.Span, tok)
		if p.eat(token.LBracket) {
			return p.parseIndex(tok, expr)
		}
		return expr, true

	case tok.Kind == token.LBracket:
		p.advance()
		return p.parseArrayLiteral(tok)

	case tok.Kind == token.LParen:
		p.advance()
		inner, ok := p.parseExpr(declContext{})
		if !ok {
			return ast.NoExprID, false
		}
		if _, ok := p.expect(token.RParen, diag.SynUnexpectedToken, "expected ')'"); !ok {
			return ast.NoExprID, false
		}
		return p.arenas.Exprs.NewGroup(p.spanFrom(tok), inner), true

	case tok.Kind == token.Pipe:
		return p.parseFuncExpr(ctx)

	case tok.Kind == token.KwAwait:
		p.advance()
		inner, ok := p.parseExpr(declContext{})
		if !ok {
			return ast.NoExprID, false
		}
		return p.arenas.Exprs.NewAwait(p.spanFrom(tok), inner), true

	case tok.IsLiteral():
		p.advance()
		return p.arenas.Exprs.NewValue(tok.Span, literalValue(tok)), true

	default:
		p.err(diag.SynExpectExpression, "expected expression, got \""+tok.Text+"\"")
		return ast.NoExprID, false
	}
}

// parseIndex finishes 'name[expr]' as an array-dispatch call.
func (p *Parser) parseIndex(name token.Token, callee ast.ExprID) (ast.ExprID, bool) {
	index, ok := p.parseExpr(declContext{})
	if !ok {
		return ast.NoExprID, false
	}
	if _, ok := p.expect(token.RBracket, diag.SynUnexpectedToken, "expected ']' after index"); !ok {
		return ast.NoExprID, false
	}
	span := name.Span.Cover(p.lastSpan)
	return p.arenas.Exprs.NewCall(span, callee, []ast.ExprID{index}, ast.CallArray), true
}

// parseArrayLiteral requires every element to be a literal value
// expression; anything else is rejected per element.
func (p *Parser) parseArrayLiteral(start token.Token) (ast.ExprID, bool) {
	var items []ast.ExprID
	for !p.eat(token.RBracket) {
		if p.at(token.EOF) {
			p.err(diag.SynUnexpectedToken, "unterminated array literal")
			return ast.NoExprID, false
		}
		item, ok := p.parseExpr(declContext{})
		if !ok {
			return ast.NoExprID, false
		}
		if p.arenas.Exprs.Get(item).Kind != ast.ExprValue {
			p.report(diag.SynBadArrayElement, diag.SevError, p.arenas.Exprs.Get(item).Span,
				"array literal element must be a literal value")
			return ast.NoExprID, false
		}
		items = append(items, item)
		if !p.eat(token.Comma) && !p.at(token.RBracket) {
			p.err(diag.SynUnexpectedToken, "expected ',' or ']' in array literal")
			return ast.NoExprID, false
		}
	}
	return p.arenas.Exprs.NewArray(p.spanFrom(start), items), true
}

// parseFuncExpr parses a closure literal. Name, return type and export
// flag come from the enclosing declaration context:
//
//	|n: number, m: number| : n + m;
//	|_| { return 1; }
func (p *Parser) parseFuncExpr(ctx declContext) (ast.ExprID, bool) {
	start := p.advance() // '|'

	var params []ast.Param
	if p.eat(token.Underscore) {
		if _, ok := p.expect(token.Pipe, diag.SynUnexpectedToken, "expected '|' after '_'"); !ok {
			return ast.NoExprID, false
		}
	} else {
		for !p.eat(token.Pipe) {
			switch {
			case p.at(token.Ident):
				name := p.advance()
				if _, ok := p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':' after parameter name"); !ok {
					return ast.NoExprID, false
				}
				typ, ok := p.consumeTypeIdent()
				if !ok {
					return ast.NoExprID, false
				}
				params = append(params, ast.Param{Name: name, Type: typ})

			case p.eat(token.Comma):

			case p.at(token.EOF):
				p.err(diag.SynUnexpectedToken, "unterminated closure parameter list")
				return ast.NoExprID, false

			default:
				p.err(diag.SynUnexpectedToken, "unexpected token \""+p.peek().Text+"\" in closure parameters")
				return ast.NoExprID, false
			}
		}
	}

	data := ast.ExprFuncData{
		Name:   ctx.name,
		Type:   ctx.typ,
		Params: params,
		IsPub:  ctx.isPub,
	}

	// ": expr" expression body; the terminating ';' belongs to the
	// enclosing statement
	if p.eat(token.Colon) {
		body, ok := p.parseExpr(declContext{})
		if !ok {
			return ast.NoExprID, false
		}
		data.Body = ast.ExprBody(body)
		return p.arenas.Exprs.NewFunc(p.spanFrom(start), data), true
	}

	stmts, ok := p.parseBlock()
	if !ok {
		return ast.NoExprID, false
	}
	data.Body = ast.BlockBody(stmts)
	return p.arenas.Exprs.NewFunc(p.spanFrom(start), data), true
}

// literalValue converts a scanned literal token to its semantic value.
func literalValue(tok token.Token) ast.LiteralValue {
	if tok.Literal == nil {
		return ast.AnyValue()
	}
	switch tok.Literal.Kind {
	case token.LitNumber:
		return ast.NumberValue(tok.Literal.Number)
	case token.LitString:
		return ast.StringValue(tok.Literal.Str)
	case token.LitChar:
		return ast.CharValue(tok.Literal.Ch)
	case token.LitBool:
		return ast.BoolValue(tok.Literal.Bool)
	case token.LitNull:
		return ast.NullValue()
	}
	return ast.AnyValue()
}
