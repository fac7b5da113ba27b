// Package token defines the lexical vocabulary of the Ape front end.
// Invariants:
//   - Token.Text is the exact source slice backing the token.
//   - Token.Span matches Text (Start..End byte offsets); Token.Col is the
//     1-based column pair on the line where the token starts.
//   - Keyword and built-in type spellings are recognized only as whole
//     identifiers, never as a prefix of a longer identifier.
//   - Literal carries the scanned value (radix-converted for 0b/0o/0x
//     numbers); the parser maps it to the semantic value domain.
//   - 'else if' is fused by the lexer into a single KwElseIf token.
package token
