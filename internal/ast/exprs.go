package ast

import (
	"ape/internal/source"
	"ape/internal/token"
)

// Exprs manages allocation of expression nodes and their payloads.
type Exprs struct {
	Arena    *Arena[Expr]
	Values   *Arena[ExprValueData]
	Vars     *Arena[ExprVarData]
	Binaries *Arena[ExprBinaryData]
	Unaries  *Arena[ExprUnaryData]
	Groups   *Arena[ExprGroupData]
	Arrays   *Arena[ExprArrayData]
	Calls    *Arena[ExprCallData]
	Methods  *Arena[ExprMethodData]
	Funcs    *Arena[ExprFuncData]
	Awaits   *Arena[ExprAwaitData]
}

// NewExprs creates an Exprs with per-kind arenas preallocated to capHint.
func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Exprs{
		Arena:    NewArena[Expr](capHint),
		Values:   NewArena[ExprValueData](capHint),
		Vars:     NewArena[ExprVarData](capHint),
		Binaries: NewArena[ExprBinaryData](capHint),
		Unaries:  NewArena[ExprUnaryData](capHint),
		Groups:   NewArena[ExprGroupData](capHint),
		Arrays:   NewArena[ExprArrayData](capHint),
		Calls:    NewArena[ExprCallData](capHint),
		Methods:  NewArena[ExprMethodData](capHint),
		Funcs:    NewArena[ExprFuncData](capHint),
		Awaits:   NewArena[ExprAwaitData](capHint),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, payload PayloadID) ExprID {
	return ExprID(e.Arena.Allocate(Expr{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the expression header with the given ID.
func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

// NewValue creates a literal value expression.
func (e *Exprs) NewValue(span source.Span, value LiteralValue) ExprID {
	payload := e.Values.Allocate(ExprValueData{Value: value})
	return e.new(ExprValue, span, PayloadID(payload))
}

// Value returns the value payload for the given expression ID.
func (e *Exprs) Value(id ExprID) (*ExprValueData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprValue {
		return nil, false
	}
	return e.Values.Get(uint32(expr.Payload)), true
}

// NewVar creates a variable reference expression.
func (e *Exprs) NewVar(span source.Span, name token.Token) ExprID {
	payload := e.Vars.Allocate(ExprVarData{Name: name})
	return e.new(ExprVar, span, PayloadID(payload))
}

// Var returns the variable payload for the given expression ID.
func (e *Exprs) Var(id ExprID) (*ExprVarData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprVar {
		return nil, false
	}
	return e.Vars.Get(uint32(expr.Payload)), true
}

// NewBinary creates a binary expression.
func (e *Exprs) NewBinary(span source.Span, left ExprID, op token.Token, right ExprID) ExprID {
	payload := e.Binaries.Allocate(ExprBinaryData{Left: left, Op: op, Right: right})
	return e.new(ExprBinary, span, PayloadID(payload))
}

// Binary returns the binary payload for the given expression ID.
func (e *Exprs) Binary(id ExprID) (*ExprBinaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprBinary {
		return nil, false
	}
	return e.Binaries.Get(uint32(expr.Payload)), true
}

// NewUnary creates a prefix unary expression.
func (e *Exprs) NewUnary(span source.Span, op token.Token, operand ExprID) ExprID {
	payload := e.Unaries.Allocate(ExprUnaryData{Op: op, Operand: operand})
	return e.new(ExprUnary, span, PayloadID(payload))
}

// Unary returns the unary payload for the given expression ID.
func (e *Exprs) Unary(id ExprID) (*ExprUnaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprUnary {
		return nil, false
	}
	return e.Unaries.Get(uint32(expr.Payload)), true
}

// NewGroup creates a grouping expression.
func (e *Exprs) NewGroup(span source.Span, inner ExprID) ExprID {
	payload := e.Groups.Allocate(ExprGroupData{Inner: inner})
	return e.new(ExprGroup, span, PayloadID(payload))
}

// Group returns the grouping payload for the given expression ID.
func (e *Exprs) Group(id ExprID) (*ExprGroupData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprGroup {
		return nil, false
	}
	return e.Groups.Get(uint32(expr.Payload)), true
}

// NewArray creates an array literal expression.
func (e *Exprs) NewArray(span source.Span, items []ExprID) ExprID {
	payload := e.Arrays.Allocate(ExprArrayData{Items: items})
	return e.new(ExprArray, span, PayloadID(payload))
}

// Array returns the array payload for the given expression ID.
func (e *Exprs) Array(id ExprID) (*ExprArrayData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprArray {
		return nil, false
	}
	return e.Arrays.Get(uint32(expr.Payload)), true
}

// NewCall creates a call expression.
func (e *Exprs) NewCall(span source.Span, callee ExprID, args []ExprID, call CallType) ExprID {
	payload := e.Calls.Allocate(ExprCallData{Callee: callee, Args: args, Call: call})
	return e.new(ExprCall, span, PayloadID(payload))
}

// CallData returns the call payload for the given expression ID.
func (e *Exprs) CallData(id ExprID) (*ExprCallData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprCall {
		return nil, false
	}
	return e.Calls.Get(uint32(expr.Payload)), true
}

// NewMethod creates a method invocation expression.
func (e *Exprs) NewMethod(span source.Span, receiver ExprID, name token.Token, args []ExprID) ExprID {
	payload := e.Methods.Allocate(ExprMethodData{Receiver: receiver, Name: name, Args: args})
	return e.new(ExprMethod, span, PayloadID(payload))
}

// Method returns the method payload for the given expression ID.
func (e *Exprs) Method(id ExprID) (*ExprMethodData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprMethod {
		return nil, false
	}
	return e.Methods.Get(uint32(expr.Payload)), true
}

// NewFunc creates a closure or named function expression.
func (e *Exprs) NewFunc(span source.Span, data ExprFuncData) ExprID {
	payload := e.Funcs.Allocate(data)
	return e.new(ExprFunc, span, PayloadID(payload))
}

// Func returns the function payload for the given expression ID.
func (e *Exprs) Func(id ExprID) (*ExprFuncData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprFunc {
		return nil, false
	}
	return e.Funcs.Get(uint32(expr.Payload)), true
}

// NewAwait creates an await expression.
func (e *Exprs) NewAwait(span source.Span, inner ExprID) ExprID {
	payload := e.Awaits.Allocate(ExprAwaitData{Inner: inner})
	return e.new(ExprAwait, span, PayloadID(payload))
}

// Await returns the await payload for the given expression ID.
func (e *Exprs) Await(id ExprID) (*ExprAwaitData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprAwait {
		return nil, false
	}
	return e.Awaits.Get(uint32(expr.Payload)), true
}
