// Package lexer turns normalized source bytes into tokens.
//
// Scanning is streaming: Next returns one significant token at a time,
// Lex drains the file into a slice ending with a single EOF token.
// Whitespace and comments never surface as tokens. Invariants:
//
//   - tokens carry byte spans into the file plus 1-based line/column
//     pairs; Col.End always equals Col.Start + byte length of the lexeme
//   - "else" directly followed by "if" is fused into one KwElseIf token
//   - radix literals (0b/0o/0x) convert their digits in the written base
//   - malformed input produces an Invalid token and a diagnostic, then
//     scanning continues
package lexer
