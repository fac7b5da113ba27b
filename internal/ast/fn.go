package ast

import (
	"ape/internal/token"
)

// Param is one typed parameter of a function or closure.
type Param struct {
	Name token.Token
	Type token.Token
}

// FuncBodyKind selects between the two body forms.
type FuncBodyKind uint8

const (
	// FuncBodyBlock is a brace-delimited statement sequence.
	FuncBodyBlock FuncBodyKind = iota
	// FuncBodyExpr is a single-expression body.
	FuncBodyExpr
)

// FuncBody is the body of a function, closure, or match arm: either an
// ordered statement sequence or one boxed expression. Both forms are a single
// control-flow region.
type FuncBody struct {
	Kind  FuncBodyKind
	Stmts []StmtID
	Expr  ExprID
}

// BlockBody wraps a statement sequence as a block-form body.
func BlockBody(stmts []StmtID) FuncBody {
	return FuncBody{Kind: FuncBodyBlock, Stmts: stmts}
}

// ExprBody wraps a single expression as an expression-form body.
func ExprBody(expr ExprID) FuncBody {
	return FuncBody{Kind: FuncBodyExpr, Expr: expr}
}
