package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"ape/internal/source"
	"ape/internal/token"
)

// TokenOutput is one token in machine-readable output.
type TokenOutput struct {
	Kind    string      `json:"kind" msgpack:"kind"`
	Text    string      `json:"text,omitempty" msgpack:"text,omitempty"`
	Span    source.Span `json:"span" msgpack:"span"`
	Line    uint32      `json:"line" msgpack:"line"`
	Col     uint32      `json:"col" msgpack:"col"`
	Literal string      `json:"literal,omitempty" msgpack:"literal,omitempty"`
}

// FormatTokensPretty writes tokens in a human-readable listing.
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)

		fmt.Fprintf(w, "%3d: %-15s", i+1, tok.Kind.String())

		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}

		fmt.Fprintf(w, " at %d:%d-%d:%d",
			startPos.Line, startPos.Col,
			endPos.Line, endPos.Col)

		if lit := literalSummary(tok); lit != "" {
			fmt.Fprintf(w, " (%s)", lit)
		}

		fmt.Fprintln(w)

		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON writes tokens as an indented JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildTokenOutput(tokens))
}

// FormatTokensMsgpack writes tokens in the compact binary form the
// driver cache stores.
func FormatTokensMsgpack(w io.Writer, tokens []token.Token) error {
	return msgpack.NewEncoder(w).Encode(buildTokenOutput(tokens))
}

func buildTokenOutput(tokens []token.Token) []TokenOutput {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, TokenOutput{
			Kind:    tok.Kind.String(),
			Text:    tok.Text,
			Span:    tok.Span,
			Line:    tok.Line,
			Col:     tok.Col.Start,
			Literal: literalSummary(tok),
		})
		if tok.Kind == token.EOF {
			break
		}
	}
	return output
}

func literalSummary(tok token.Token) string {
	if tok.Literal == nil {
		return ""
	}
	switch tok.Literal.Kind {
	case token.LitNumber:
		return fmt.Sprintf("%s %v", tok.Literal.Base, tok.Literal.Number)
	case token.LitString:
		return fmt.Sprintf("string %q", tok.Literal.Str)
	case token.LitChar:
		return fmt.Sprintf("char %q", tok.Literal.Ch)
	case token.LitBool:
		return fmt.Sprintf("bool %v", tok.Literal.Bool)
	case token.LitNull:
		return "null"
	}
	return ""
}
