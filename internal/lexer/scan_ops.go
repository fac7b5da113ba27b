package lexer

import (
	"ape/internal/diag"
	"ape/internal/token"
)

// Greedy operator scan: two-byte sequences first, then single bytes.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		return lx.emit(start, k, nil)
	}

	switch {
	case lx.try2('+', '+'):
		return emit(token.PlusPlus)
	case lx.try2('+', '='):
		return emit(token.PlusAssign)
	case lx.try2('-', '-'):
		return emit(token.MinusMinus)
	case lx.try2('-', '>'):
		return emit(token.Arrow)
	case lx.try2('-', '='):
		return emit(token.MinusAssign)
	case lx.try2('*', '*'):
		return emit(token.StarStar)
	case lx.try2('*', '='):
		return emit(token.StarAssign)
	case lx.try2('/', '='):
		return emit(token.SlashAssign)
	case lx.try2('=', '='):
		return emit(token.EqEq)
	case lx.try2('=', '>'):
		return emit(token.FatArrow)
	case lx.try2('!', '='):
		return emit(token.BangEq)
	case lx.try2('!', '!'):
		return emit(token.BangBang)
	case lx.try2('&', '&'):
		return emit(token.AndAnd)
	case lx.try2('|', '|'):
		return emit(token.OrOr)
	case lx.try2('<', '='):
		return emit(token.LtEq)
	case lx.try2('>', '='):
		return emit(token.GtEq)
	case lx.try2('.', '.'):
		return emit(token.DotDot)
	case lx.try2(':', ':'):
		return emit(token.ColonColon)
	case lx.try2('\\', '{'):
		return emit(token.InterpStart)
	case lx.try2('\\', '}'):
		return emit(token.InterpEnd)
	}

	ch := lx.cursor.Bump()
	switch ch {
	case '+':
		return emit(token.Plus)
	case '-':
		return emit(token.Minus)
	case '*':
		return emit(token.Star)
	case '/':
		return emit(token.Slash)
	case '%':
		return emit(token.Percent)
	case '~':
		return emit(token.Tilde)
	case '&':
		return emit(token.Amp)
	case '|':
		return emit(token.Pipe)
	case '!':
		return emit(token.Bang)
	case '?':
		return emit(token.Question)
	case '=':
		return emit(token.Assign)
	case '<':
		return emit(token.Lt)
	case '>':
		return emit(token.Gt)
	case '.':
		return emit(token.Dot)
	case ',':
		return emit(token.Comma)
	case ':':
		return emit(token.Colon)
	case ';':
		return emit(token.Semicolon)
	case '(':
		return emit(token.LParen)
	case ')':
		return emit(token.RParen)
	case '{':
		return emit(token.LBrace)
	case '}':
		return emit(token.RBrace)
	case '[':
		return emit(token.LBracket)
	case ']':
		return emit(token.RBracket)
	case '\\':
		return emit(token.Backslash)
	default:
		// swallow the remaining bytes of a multi-byte rune so one bad
		// character yields one diagnostic
		for !lx.cursor.EOF() && lx.cursor.Peek() >= utf8RuneSelf && lx.cursor.Peek() < 0xC0 {
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnknownChar, sp, "unknown character "+string(lx.file.Content[sp.Start:sp.End]))
		return lx.emit(start, token.Invalid, nil)
	}
}
