package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// Underscore represents a lone '_' token.
	Underscore

	// NumberLit represents a numeric literal token.
	NumberLit
	// StringLit represents a string literal token.
	StringLit
	// CharLit represents a character literal token.
	CharLit
	// TrueLit represents the 'true' literal.
	TrueLit
	// FalseLit represents the 'false' literal.
	FalseLit
	// NullLit represents the 'null' literal.
	NullLit

	// Plus represents the plus operator token.
	Plus // +
	// PlusPlus represents the increment operator token.
	PlusPlus // ++
	// PlusAssign represents the plus assign operator token.
	PlusAssign // +=
	// Minus represents the minus operator token.
	Minus // -
	// MinusMinus represents the decrement operator token.
	MinusMinus // --
	// MinusAssign represents the minus assign operator token.
	MinusAssign // -=
	// Arrow represents the thin arrow token.
	Arrow // ->
	// Star represents the star operator token.
	Star // *
	// StarStar represents the power operator token.
	StarStar // **
	// StarAssign represents the star assign operator token.
	StarAssign // *=
	// Slash represents the slash operator token.
	Slash // /
	// SlashAssign represents the slash assign operator token.
	SlashAssign // /=
	// Percent represents the percent operator token.
	Percent // %
	// Tilde represents the tilde operator token.
	Tilde // ~
	// Amp represents the amp operator token.
	Amp // &
	// AndAnd represents the logical and token.
	AndAnd // &&
	// Pipe represents the pipe token (also opens a closure literal).
	Pipe // |
	// OrOr represents the logical or token.
	OrOr // ||
	// Bang represents the bang operator token.
	Bang // !
	// BangBang represents the double bang operator token.
	BangBang // !!
	// BangEq represents the not equal token.
	BangEq // !=
	// Question represents the question operator token.
	Question // ?
	// Assign represents the assign token.
	Assign // =
	// EqEq represents the equality token.
	EqEq // ==
	// FatArrow represents the fat arrow token.
	FatArrow // =>
	// Lt represents the less-than token (also opens an array type).
	Lt // <
	// LtEq represents the less-or-equal token.
	LtEq // <=
	// Gt represents the greater-than token.
	Gt // >
	// GtEq represents the greater-or-equal token.
	GtEq // >=
	// Dot represents the dot token.
	Dot // .
	// DotDot represents the range token.
	DotDot // ..
	// Comma represents the comma token.
	Comma // ,
	// Colon represents the colon token.
	Colon // :
	// ColonColon represents the namespace token.
	ColonColon // ::
	// Semicolon represents the semicolon token.
	Semicolon // ;
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
	// LBracket represents the left bracket token.
	LBracket // [
	// RBracket represents the right bracket token.
	RBracket // ]
	// Backslash represents a lone backslash token.
	Backslash // \
	// InterpStart represents the interpolation opener token.
	InterpStart // \{
	// InterpEnd represents the interpolation closer token.
	InterpEnd // \}

	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwElseIf represents the fused 'else if' keyword pair.
	KwElseIf // else if
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwWhile represents the 'while' keyword.
	KwWhile // while
	// KwLoop represents the 'loop' keyword.
	KwLoop // loop
	// KwBreak represents the 'break' keyword.
	KwBreak // break
	// KwMatch represents the 'match' keyword.
	KwMatch // match
	// KwMod represents the 'mod' keyword.
	KwMod // mod
	// KwUse represents the 'use' keyword.
	KwUse // use
	// KwAs represents the 'as' keyword.
	KwAs // as
	// KwFrom represents the 'from' keyword.
	KwFrom // from
	// KwStruct represents the 'struct' keyword.
	KwStruct // struct
	// KwSelf represents the 'self' receiver keyword.
	KwSelf // self
	// KwImpl represents the 'impl' keyword.
	KwImpl // impl
	// KwEnum represents the 'enum' keyword.
	KwEnum // enum
	// KwAsync represents the 'async' keyword.
	KwAsync // async
	// KwAwait represents the 'await' keyword.
	KwAwait // await
	// KwPub represents the 'pub' keyword.
	KwPub // pub
	// KwMut represents the 'mut' keyword.
	KwMut // mut
	// KwFunc represents the 'func' keyword.
	KwFunc // func

	// TyNumber represents the built-in 'number' type identifier.
	TyNumber // number
	// TyString represents the built-in 'string' type identifier.
	TyString // string
	// TyChar represents the built-in 'char' type identifier.
	TyChar // char
	// TyBool represents the built-in 'bool' type identifier.
	TyBool // bool
	// TyNull represents the built-in 'null' type identifier. The lexer never
	// produces it ('null' lexes as NullLit); the parser synthesizes it for
	// inferred null declarations and accepts both spellings in type position.
	TyNull // null
	// TyVoid represents the built-in 'void' type identifier.
	TyVoid // void
	// TyArray represents the built-in 'array' type identifier.
	TyArray // array
	// TyAny represents the built-in 'any' type identifier.
	TyAny // any
)

var kindNames = map[Kind]string{
	Invalid:     "Invalid",
	EOF:         "EOF",
	Ident:       "Ident",
	Underscore:  "Underscore",
	NumberLit:   "NumberLit",
	StringLit:   "StringLit",
	CharLit:     "CharLit",
	TrueLit:     "TrueLit",
	FalseLit:    "FalseLit",
	NullLit:     "NullLit",
	Plus:        "Plus",
	PlusPlus:    "PlusPlus",
	PlusAssign:  "PlusAssign",
	Minus:       "Minus",
	MinusMinus:  "MinusMinus",
	MinusAssign: "MinusAssign",
	Arrow:       "Arrow",
	Star:        "Star",
	StarStar:    "StarStar",
	StarAssign:  "StarAssign",
	Slash:       "Slash",
	SlashAssign: "SlashAssign",
	Percent:     "Percent",
	Tilde:       "Tilde",
	Amp:         "Amp",
	AndAnd:      "AndAnd",
	Pipe:        "Pipe",
	OrOr:        "OrOr",
	Bang:        "Bang",
	BangBang:    "BangBang",
	BangEq:      "BangEq",
	Question:    "Question",
	Assign:      "Assign",
	EqEq:        "EqEq",
	FatArrow:    "FatArrow",
	Lt:          "Lt",
	LtEq:        "LtEq",
	Gt:          "Gt",
	GtEq:        "GtEq",
	Dot:         "Dot",
	DotDot:      "DotDot",
	Comma:       "Comma",
	Colon:       "Colon",
	ColonColon:  "ColonColon",
	Semicolon:   "Semicolon",
	LParen:      "LParen",
	RParen:      "RParen",
	LBrace:      "LBrace",
	RBrace:      "RBrace",
	LBracket:    "LBracket",
	RBracket:    "RBracket",
	Backslash:   "Backslash",
	InterpStart: "InterpStart",
	InterpEnd:   "InterpEnd",
	KwLet:       "KwLet",
	KwIf:        "KwIf",
	KwElse:      "KwElse",
	KwElseIf:    "KwElseIf",
	KwReturn:    "KwReturn",
	KwWhile:     "KwWhile",
	KwLoop:      "KwLoop",
	KwBreak:     "KwBreak",
	KwMatch:     "KwMatch",
	KwMod:       "KwMod",
	KwUse:       "KwUse",
	KwAs:        "KwAs",
	KwFrom:      "KwFrom",
	KwStruct:    "KwStruct",
	KwSelf:      "KwSelf",
	KwImpl:      "KwImpl",
	KwEnum:      "KwEnum",
	KwAsync:     "KwAsync",
	KwAwait:     "KwAwait",
	KwPub:       "KwPub",
	KwMut:       "KwMut",
	KwFunc:      "KwFunc",
	TyNumber:    "TyNumber",
	TyString:    "TyString",
	TyChar:      "TyChar",
	TyBool:      "TyBool",
	TyNull:      "TyNull",
	TyVoid:      "TyVoid",
	TyArray:     "TyArray",
	TyAny:       "TyAny",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Kind(?)"
}
