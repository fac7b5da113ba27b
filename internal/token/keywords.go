package token

// keywords maps identifier spellings to their token kinds. Loaded once as
// package data and never mutated; safe for concurrent lexers.
var keywords = map[string]Kind{
	"let":    KwLet,
	"if":     KwIf,
	"else":   KwElse,
	"return": KwReturn,
	"while":  KwWhile,
	"loop":   KwLoop,
	"break":  KwBreak,
	"match":  KwMatch,
	"mod":    KwMod,
	"use":    KwUse,
	"as":     KwAs,
	"from":   KwFrom,
	"struct": KwStruct,
	"self":   KwSelf,
	"impl":   KwImpl,
	"enum":   KwEnum,
	"async":  KwAsync,
	"await":  KwAwait,
	"pub":    KwPub,
	"mut":    KwMut,
	"func":   KwFunc,

	"true":  TrueLit,
	"false": FalseLit,
	"null":  NullLit,

	"number": TyNumber,
	"string": TyString,
	"char":   TyChar,
	"bool":   TyBool,
	"void":   TyVoid,
	"array":  TyArray,
	"any":    TyAny,
}

// LookupKeyword returns the keyword/type-identifier kind for an exact
// identifier spelling. Whole-word only: the lexer calls this with a complete
// identifier scan, never a prefix.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
