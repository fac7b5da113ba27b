// Package ast defines the arena-backed syntax tree the parser produces.
//
// Nodes are split into a fixed-size header (kind, span, payload id) and a
// per-kind payload arena. An ExprID is both the arena index and the
// expression id downstream resolution keys scope bindings on: ids are dense,
// 1-based, assigned once at construction, and never reused within a parse.
// The tree is single-owner and immutable after construction.
package ast
