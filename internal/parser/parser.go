package parser

import (
	"unicode"
	"unicode/utf8"

	"ape/internal/ast"
	"ape/internal/diag"
	"ape/internal/source"
	"ape/internal/token"
)

type Options struct {
	// MaxErrors stops reporting (not parsing) once reached; 0 means no limit.
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough reports whether the diagnostic limit is reached.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	Builder *ast.Builder
	Bag     *diag.Bag
}

// Parser holds per-file parse state over a materialized token slice.
type Parser struct {
	toks     []token.Token
	pos      int
	arenas   *ast.Builder
	opts     Options
	lastSpan source.Span // span of the last consumed token, for diagnostics at EOF
}

// Parse consumes a token slice (as produced by lexer.Lex, EOF-terminated)
// and builds the statement list of one compilation unit. Errors never
// abort the parse: each bad statement is reported and skipped to the
// next statement starter.
func Parse(tokens []token.Token, opts Options) Result {
	arenas := ast.NewBuilder(ast.Hints{
		Stmts: uint(len(tokens) / 8),
		Exprs: uint(len(tokens) / 4),
	})
	p := Parser{
		toks:   tokens,
		arenas: arenas,
		opts:   opts,
	}

	p.parseProgram()

	var bag *diag.Bag
	if br, ok := opts.Reporter.(*diag.BagReporter); ok {
		bag = br.Bag
	}
	return Result{
		Builder: arenas,
		Bag:     bag,
	}
}

// parseProgram is the top-level loop: statements until EOF.
func (p *Parser) parseProgram() {
	for !p.at(token.EOF) {
		id, ok := p.parseStmt()
		if !ok {
			p.resyncStmt()
			continue
		}
		p.arenas.PushTop(id)
	}
}

// resyncStmt skips to the next statement starter, a ';' or EOF, so one
// malformed statement produces one diagnostic instead of a cascade.
func (p *Parser) resyncStmt() {
	for !p.at(token.EOF) {
		if p.at(token.Semicolon) {
			p.advance()
			return
		}
		if isStmtStarter(p.peek().Kind) {
			return
		}
		p.advance()
	}
}

func isStmtStarter(k token.Kind) bool {
	switch k {
	case token.KwLet, token.KwFunc, token.KwIf, token.KwReturn, token.KwWhile,
		token.KwLoop, token.KwBreak, token.KwMatch, token.KwMod, token.KwUse,
		token.KwStruct, token.KwImpl, token.KwEnum:
		return true
	default:
		return false
	}
}

// parseIdent expects and returns an identifier token.
func (p *Parser) parseIdent() (token.Token, bool) {
	if p.at(token.Ident) {
		return p.advance(), true
	}
	p.err(diag.SynExpectIdentifier, "expected identifier, got \""+p.peek().Text+"\"")
	return token.Token{}, false
}

// parseUpperIdent expects an identifier whose first character is uppercase
// (struct, impl and enum names).
func (p *Parser) parseUpperIdent() (token.Token, bool) {
	if p.at(token.Ident) && isUpperStart(p.peek().Text) {
		return p.advance(), true
	}
	p.err(diag.SynExpectUpperIdent, "expected capitalized identifier, got \""+p.peek().Text+"\"")
	return token.Token{}, false
}

func isUpperStart(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}
