package lexer

import (
	"ape/internal/source"
	"ape/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // one-token lookahead buffer
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		look:   nil,
	}
}

// Next returns the next significant token. Whitespace and comments are
// consumed silently. After the end of input it always returns EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	tok := lx.scan()

	// "else" immediately followed by "if" folds into one token, so the
	// parser never needs a two-token else-if special case.
	if tok.Kind == token.KwElse {
		next := lx.scan()
		if next.Kind == token.KwIf {
			return lx.fuseElseIf(tok, next)
		}
		lx.look = &next
	}
	return tok
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// Lex scans the whole file and returns every significant token plus a
// single trailing EOF token.
func (lx *Lexer) Lex() []token.Token {
	var toks []token.Token
	for {
		t := lx.Next()
		toks = append(toks, t)
		if t.Kind == token.EOF {
			return toks
		}
	}
}

func (lx *Lexer) scan() token.Token {
	lx.skipTrivia()

	if lx.cursor.EOF() {
		return lx.eofToken()
	}

	ch := lx.cursor.Peek()
	switch {
	case ch == '_':
		// "_foo" is an identifier, a lone "_" is its own token; both
		// start in scanIdentOrKeyword.
		return lx.scanIdentOrKeyword()

	case isIdentStartByte(ch):
		return lx.scanIdentOrKeyword()

	case ch >= utf8RuneSelf:
		return lx.scanIdentOrKeyword()

	case isDec(ch):
		return lx.scanNumber()

	case ch == '"':
		return lx.scanString()

	case ch == '\'':
		return lx.scanChar()

	default:
		return lx.scanOperatorOrPunct()
	}
}

// emit builds a token for everything consumed since start.
// Col covers the raw byte length of the lexeme; Line is the line the
// token ends on, so multi-line strings report their closing line.
func (lx *Lexer) emit(start Mark, kind token.Kind, lit *token.Literal) token.Token {
	sp := lx.cursor.SpanFrom(start)
	col := start.Col()
	return token.Token{
		Kind:    kind,
		Text:    string(lx.file.Content[sp.Start:sp.End]),
		Literal: lit,
		Span:    sp,
		Line:    lx.cursor.Line,
		Col:     token.ColSpan{Start: col, End: col + sp.Len()},
	}
}

func (lx *Lexer) eofToken() token.Token {
	col := lx.cursor.Off - lx.cursor.LineStart + 1
	return token.Token{
		Kind: token.EOF,
		Text: "",
		Span: source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off},
		Line: lx.cursor.Line,
		Col:  token.ColSpan{Start: col, End: col},
	}
}

func (lx *Lexer) fuseElseIf(elseTok, ifTok token.Token) token.Token {
	sp := source.Span{File: lx.file.ID, Start: elseTok.Span.Start, End: ifTok.Span.End}
	return token.Token{
		Kind: token.KwElseIf,
		Text: string(lx.file.Content[sp.Start:sp.End]),
		Span: sp,
		Line: ifTok.Line,
		Col:  token.ColSpan{Start: elseTok.Col.Start, End: ifTok.Col.End},
	}
}
