package lexer

import (
	"ape/internal/token"
)

// scanIdentOrKeyword scans an identifier and classifies it through
// LookupKeyword. Keywords are case-sensitive lowercase. Token.Text is
// exactly the source slice.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	r, sz := lx.peekRune()
	if sz == 0 {
		return lx.emit(start, token.Invalid, nil)
	}
	if r < utf8RuneSelf {
		if !isIdentStartByte(byte(r)) {
			return lx.scanOperatorOrPunct()
		}
		lx.cursor.Bump()
		for isIdentContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	} else {
		if !isIdentStartRune(r) {
			return lx.scanOperatorOrPunct()
		}
		lx.bumpRune()
		for {
			r2, sz2 := lx.peekRune()
			if sz2 == 0 || !isIdentContinueRune(r2) {
				break
			}
			lx.bumpRune()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	lex := lx.file.Content[sp.Start:sp.End]

	if len(lex) == 1 && lex[0] == '_' {
		return lx.emit(start, token.Underscore, nil)
	}

	if k, ok := token.LookupKeyword(string(lex)); ok {
		switch k {
		case token.TrueLit:
			return lx.emit(start, k, token.BoolLiteral(true))
		case token.FalseLit:
			return lx.emit(start, k, token.BoolLiteral(false))
		case token.NullLit:
			return lx.emit(start, k, token.NullLiteral())
		}
		return lx.emit(start, k, nil)
	}

	return lx.emit(start, token.Ident, nil)
}
