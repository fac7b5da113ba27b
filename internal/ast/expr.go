package ast

import (
	"ape/internal/source"
	"ape/internal/token"
)

// ExprKind enumerates the different kinds of expressions.
type ExprKind uint8

const (
	// ExprValue represents a literal value expression.
	ExprValue ExprKind = iota
	// ExprVar represents a variable reference.
	ExprVar
	// ExprBinary represents a binary expression.
	ExprBinary
	// ExprUnary represents a prefix unary expression.
	ExprUnary
	// ExprGroup represents a parenthesized expression.
	ExprGroup
	// ExprArray represents an array literal.
	ExprArray
	// ExprCall represents a call with a dispatch discriminator.
	ExprCall
	// ExprMethod represents a method invocation on a receiver.
	ExprMethod
	// ExprFunc represents a closure or named function expression.
	ExprFunc
	// ExprAwait represents an await expression.
	ExprAwait
)

// Expr is the header of an expression node. The payload lives in the arena
// for its kind; the node's own arena index is the expression id.
type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

// ExprValueData carries a literal value.
type ExprValueData struct {
	Value LiteralValue
}

// ExprVarData carries the name token of a variable reference.
type ExprVarData struct {
	Name token.Token
}

// ExprBinaryData carries the operands and the operator token of a binary
// expression. The operator token is kept whole so downstream phases see the
// exact spelling and position.
type ExprBinaryData struct {
	Left  ExprID
	Op    token.Token
	Right ExprID
}

// ExprUnaryData carries a prefix operator and its operand.
type ExprUnaryData struct {
	Op      token.Token
	Operand ExprID
}

// ExprGroupData carries the inner expression of a grouping.
type ExprGroupData struct {
	Inner ExprID
}

// ExprArrayData carries the element value expressions of an array literal.
// Every element is an ExprValue node; the parser rejects anything else.
type ExprArrayData struct {
	Items []ExprID
}

// ExprCallData carries a callee, ordered arguments, and the dispatch kind.
type ExprCallData struct {
	Callee ExprID
	Args   []ExprID
	Call   CallType
}

// ExprMethodData carries a receiver, the method name, and ordered arguments.
type ExprMethodData struct {
	Receiver ExprID
	Name     token.Token
	Args     []ExprID
}

// ExprFuncData carries a closure or named function expression.
type ExprFuncData struct {
	Name    token.Token
	Type    token.Token // declared return type
	Body    FuncBody
	Params  []Param
	IsAsync bool
	IsPub   bool
}

// ExprAwaitData carries the awaited expression.
type ExprAwaitData struct {
	Inner ExprID
}
