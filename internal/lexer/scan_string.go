package lexer

import (
	"strings"
	"unicode/utf8"

	"ape/internal/diag"
	"ape/internal/token"
)

// scanString scans a "..." literal. The decoded value (escapes applied,
// quotes stripped) lands in the token's Literal; Text keeps the raw
// lexeme. Strings may span newlines.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'

	var val strings.Builder
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '"' {
			lx.cursor.Bump()
			return lx.emit(start, token.StringLit, token.StringLiteral(val.String()))
		}
		if b == '\\' {
			lx.cursor.Bump()
			val.WriteRune(lx.scanEscape(start))
			continue
		}
		val.WriteByte(lx.cursor.Bump())
	}

	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	return lx.emit(start, token.Invalid, nil)
}

// scanChar scans a '...' literal holding exactly one character.
func (lx *Lexer) scanChar() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '\''

	if lx.cursor.Peek() == '\'' {
		lx.cursor.Bump()
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexEmptyChar, sp, "empty character literal")
		return lx.emit(start, token.Invalid, nil)
	}

	var ch rune
	count := 0
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\'' && lx.cursor.Peek() != '\n' {
		b := lx.cursor.Peek()
		var r rune
		if b == '\\' {
			lx.cursor.Bump()
			r = lx.scanEscape(start)
		} else if b < utf8RuneSelf {
			r = rune(lx.cursor.Bump())
		} else {
			r, _ = lx.peekRune()
			lx.bumpRune()
		}
		if count == 0 {
			ch = r
		}
		count++
	}

	if !lx.cursor.Eat('\'') {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnterminatedChar, sp, "unterminated character literal")
		return lx.emit(start, token.Invalid, nil)
	}
	if count > 1 {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexOverlongChar, sp, "character literal holds more than one character")
		return lx.emit(start, token.Invalid, nil)
	}
	return lx.emit(start, token.CharLit, token.CharLiteral(ch))
}

// scanEscape decodes one escape sequence after the backslash was eaten.
func (lx *Lexer) scanEscape(start Mark) rune {
	if lx.cursor.EOF() {
		return utf8.RuneError
	}
	b := lx.cursor.Bump()
	switch b {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	case '0':
		return 0
	case '\\', '\'', '"':
		return rune(b)
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexBadEscape, sp, "unknown escape sequence '\\"+string(b)+"'")
	return rune(b)
}
