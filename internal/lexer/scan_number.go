package lexer

import (
	"strconv"

	"ape/internal/diag"
	"ape/internal/token"
)

// Supported forms: 123, 1.5, 0b1010, 0o17, 0xff. Radix literals convert
// the digits after the base marker in their own base; the marker itself
// never reaches the conversion. A '.' only starts a fraction when a
// digit follows, so "1..2" scans as NumberLit DotDot NumberLit.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	if lx.cursor.Peek() == '0' {
		if _, b1, ok := lx.cursor.Peek2(); ok {
			switch b1 {
			case 'b', 'B':
				return lx.scanRadix(start, token.BaseBinary, isBin)
			case 'o', 'O':
				return lx.scanRadix(start, token.BaseOctal, isOct)
			case 'x', 'X':
				return lx.scanRadix(start, token.BaseHex, isHex)
			}
		}
	}

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		lx.cursor.Bump() // '.'
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])
	v, err := strconv.ParseFloat(text, 32)
	if err != nil {
		lx.errLex(diag.LexBadNumber, sp, "malformed number literal "+strconv.Quote(text))
		return lx.emit(start, token.Invalid, nil)
	}
	return lx.emit(start, token.NumberLit, token.NumberLiteral(token.BaseDecimal, float32(v)))
}

func (lx *Lexer) scanRadix(start Mark, base token.Base, digit func(byte) bool) token.Token {
	lx.cursor.Bump() // '0'
	lx.cursor.Bump() // base marker
	digitsFrom := lx.cursor.Off
	for digit(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	digits := string(lx.file.Content[digitsFrom:sp.End])
	if digits == "" {
		lx.errLex(diag.LexBadNumber, sp, "missing digits after base marker")
		return lx.emit(start, token.Invalid, nil)
	}
	v, err := strconv.ParseUint(digits, int(base), 64)
	if err != nil {
		lx.errLex(diag.LexBadNumber, sp, "malformed "+base.String()+" literal")
		return lx.emit(start, token.Invalid, nil)
	}
	return lx.emit(start, token.NumberLit, token.NumberLiteral(base, float32(v)))
}
