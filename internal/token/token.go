package token

import (
	"ape/internal/source"
)

// ColSpan is a 1-based column range on the line where the token starts.
// End is Start plus the lexeme length, so a two-character operator at the
// beginning of a line spans (1,3).
type ColSpan struct {
	Start uint32
	End   uint32
}

// Token represents a single source token. Tokens are produced only by the
// lexer and never mutated afterwards.
type Token struct {
	Kind    Kind
	Text    string       // exact source slice
	Literal *Literal     // scanned value for literal kinds, nil otherwise
	Span    source.Span  // byte span in the file
	Line    uint32       // 1-based line reached at the end of the token
	Col     ColSpan
}

// IsLiteral reports whether the token is a literal value.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case NumberLit, StringLit, CharLit, TrueLit, FalseLit, NullLit:
		return true
	default:
		return false
	}
}

// IsTypeIdent reports whether the token names a built-in type.
func (t Token) IsTypeIdent() bool {
	switch t.Kind {
	case TyNumber, TyString, TyChar, TyBool, TyNull, TyVoid, TyArray, TyAny, NullLit:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwLet, KwIf, KwElse, KwElseIf, KwReturn, KwWhile, KwLoop, KwBreak,
		KwMatch, KwMod, KwUse, KwAs, KwFrom, KwStruct, KwSelf, KwImpl, KwEnum,
		KwAsync, KwAwait, KwPub, KwMut, KwFunc:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
