package parser

import (
	"ape/internal/diag"
	"ape/internal/token"
)

// consumeTypeIdent parses a type position. Base types are single type
// identifier tokens ('null' is accepted in both its lexed and
// synthesized spelling). Composite forms collapse to an array-marker
// token carrying the element/return type's spelling:
//
//	<number>            array of number
//	|number, string| bool   callback type
func (p *Parser) consumeTypeIdent() (token.Token, bool) {
	if p.eat(token.Lt) {
		elem, ok := p.consumeTypeIdent()
		if !ok {
			return token.Token{}, false
		}
		if _, ok := p.expect(token.Gt, diag.SynExpectType, "expected '>' after element type"); !ok {
			return token.Token{}, false
		}
		return token.Token{
			Kind: token.TyArray,
			Text: elem.Text,
			Span: elem.Span.Cover(p.lastSpan),
			Line: p.peek().Line,
			Col:  elem.Col,
		}, true
	}

	if p.eat(token.Pipe) {
		if p.eat(token.Underscore) {
			if _, ok := p.expect(token.Pipe, diag.SynExpectType, "expected '|' after '_'"); !ok {
				return token.Token{}, false
			}
		} else {
			for !p.eat(token.Pipe) {
				if _, ok := p.consumeTypeIdent(); !ok {
					return token.Token{}, false
				}
				if !p.eat(token.Comma) && !p.at(token.Pipe) {
					p.err(diag.SynExpectType, "expected ',' or '|' in callback parameter types")
					return token.Token{}, false
				}
			}
		}
		ret, ok := p.consumeTypeIdent()
		if !ok {
			return token.Token{}, false
		}
		return token.Token{
			Kind: token.TyArray,
			Text: ret.Text,
			Span: ret.Span,
			Line: ret.Line,
			Col:  ret.Col,
		}, true
	}

	if p.atAny(token.TyAny, token.TyBool, token.TyChar, token.TyNull, token.NullLit,
		token.TyVoid, token.TyArray, token.TyNumber, token.TyString) {
		return p.advance(), true
	}
	p.err(diag.SynExpectType, "expected type, got \""+p.peek().Text+"\"")
	return token.Token{}, false
}
