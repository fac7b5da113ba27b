// Package parser builds arena-allocated syntax trees from token slices.
//
// One Parse call handles one compilation unit. The grammar has a single
// flat tier of binary operators (left fold, unary right operand), a
// postfix chain for calls and member access, and statement-oriented
// declarations. Failures propagate as (id, ok) pairs; the top-level loop
// resynchronizes at statement starters so one bad statement costs one
// diagnostic.
package parser
