package lexer

import (
	"ape/internal/diag"
	"ape/internal/source"
)

type Options struct {
	// Reporter receives lexical diagnostics. May be nil; scanning
	// continues either way and malformed input yields Invalid tokens.
	Reporter diag.Reporter
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
