package ast

import (
	"ape/internal/source"
)

// Stmts manages allocation of statement nodes and their payloads.
type Stmts struct {
	Arena   *Arena[Stmt]
	Exprs   *Arena[StmtExprData]
	Blocks  *Arena[StmtBlockData]
	Vars    *Arena[StmtVarData]
	Funcs   *Arena[StmtFuncData]
	Ifs     *Arena[StmtIfData]
	Returns *Arena[StmtReturnData]
	Whiles  *Arena[StmtWhileData]
	Loops   *Arena[StmtLoopData]
	Matches *Arena[StmtMatchData]
	Mods    *Arena[StmtModData]
	Uses    *Arena[StmtUseData]
	Structs *Arena[StmtStructData]
	Impls   *Arena[StmtImplData]
	Enums   *Arena[StmtEnumData]
}

// NewStmts creates a Stmts with per-kind arenas preallocated to capHint.
func NewStmts(capHint uint) *Stmts {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Stmts{
		Arena:   NewArena[Stmt](capHint),
		Exprs:   NewArena[StmtExprData](capHint),
		Blocks:  NewArena[StmtBlockData](capHint),
		Vars:    NewArena[StmtVarData](capHint),
		Funcs:   NewArena[StmtFuncData](capHint),
		Ifs:     NewArena[StmtIfData](capHint),
		Returns: NewArena[StmtReturnData](capHint),
		Whiles:  NewArena[StmtWhileData](capHint),
		Loops:   NewArena[StmtLoopData](capHint),
		Matches: NewArena[StmtMatchData](capHint),
		Mods:    NewArena[StmtModData](capHint),
		Uses:    NewArena[StmtUseData](capHint),
		Structs: NewArena[StmtStructData](capHint),
		Impls:   NewArena[StmtImplData](capHint),
		Enums:   NewArena[StmtEnumData](capHint),
	}
}

func (s *Stmts) new(kind StmtKind, span source.Span, payload PayloadID) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the statement header with the given ID.
func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}

// NewExpr creates an expression statement.
func (s *Stmts) NewExpr(span source.Span, expr ExprID) StmtID {
	payload := s.Exprs.Allocate(StmtExprData{Expr: expr})
	return s.new(StmtExpr, span, PayloadID(payload))
}

// Expr returns the expression-statement payload.
func (s *Stmts) Expr(id StmtID) (*StmtExprData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtExpr {
		return nil, false
	}
	return s.Exprs.Get(uint32(stmt.Payload)), true
}

// NewBlock creates a block statement.
func (s *Stmts) NewBlock(span source.Span, stmts []StmtID) StmtID {
	payload := s.Blocks.Allocate(StmtBlockData{Stmts: stmts})
	return s.new(StmtBlock, span, PayloadID(payload))
}

// Block returns the block payload.
func (s *Stmts) Block(id StmtID) (*StmtBlockData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtBlock {
		return nil, false
	}
	return s.Blocks.Get(uint32(stmt.Payload)), true
}

// NewVar creates a variable declaration statement.
func (s *Stmts) NewVar(span source.Span, data StmtVarData) StmtID {
	payload := s.Vars.Allocate(data)
	return s.new(StmtVar, span, PayloadID(payload))
}

// Var returns the variable-declaration payload.
func (s *Stmts) Var(id StmtID) (*StmtVarData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtVar {
		return nil, false
	}
	return s.Vars.Get(uint32(stmt.Payload)), true
}

// NewFunc creates a function declaration statement.
func (s *Stmts) NewFunc(span source.Span, data StmtFuncData) StmtID {
	payload := s.Funcs.Allocate(data)
	return s.new(StmtFunc, span, PayloadID(payload))
}

// Func returns the function-declaration payload.
func (s *Stmts) Func(id StmtID) (*StmtFuncData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtFunc {
		return nil, false
	}
	return s.Funcs.Get(uint32(stmt.Payload)), true
}

// NewIf creates an if statement.
func (s *Stmts) NewIf(span source.Span, data StmtIfData) StmtID {
	payload := s.Ifs.Allocate(data)
	return s.new(StmtIf, span, PayloadID(payload))
}

// If returns the if payload.
func (s *Stmts) If(id StmtID) (*StmtIfData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtIf {
		return nil, false
	}
	return s.Ifs.Get(uint32(stmt.Payload)), true
}

// NewReturn creates a return statement.
func (s *Stmts) NewReturn(span source.Span, expr ExprID) StmtID {
	payload := s.Returns.Allocate(StmtReturnData{Expr: expr})
	return s.new(StmtReturn, span, PayloadID(payload))
}

// Return returns the return payload.
func (s *Stmts) Return(id StmtID) (*StmtReturnData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtReturn {
		return nil, false
	}
	return s.Returns.Get(uint32(stmt.Payload)), true
}

// NewWhile creates a while statement.
func (s *Stmts) NewWhile(span source.Span, cond ExprID, body []StmtID) StmtID {
	payload := s.Whiles.Allocate(StmtWhileData{Cond: cond, Body: body})
	return s.new(StmtWhile, span, PayloadID(payload))
}

// While returns the while payload.
func (s *Stmts) While(id StmtID) (*StmtWhileData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtWhile {
		return nil, false
	}
	return s.Whiles.Get(uint32(stmt.Payload)), true
}

// NewLoop creates a loop statement.
func (s *Stmts) NewLoop(span source.Span, data StmtLoopData) StmtID {
	payload := s.Loops.Allocate(data)
	return s.new(StmtLoop, span, PayloadID(payload))
}

// Loop returns the loop payload.
func (s *Stmts) Loop(id StmtID) (*StmtLoopData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtLoop {
		return nil, false
	}
	return s.Loops.Get(uint32(stmt.Payload)), true
}

// NewBreak creates a break statement. Break has no payload.
func (s *Stmts) NewBreak(span source.Span) StmtID {
	return s.new(StmtBreak, span, NoPayloadID)
}

// NewMatch creates a match statement.
func (s *Stmts) NewMatch(span source.Span, data StmtMatchData) StmtID {
	payload := s.Matches.Allocate(data)
	return s.new(StmtMatch, span, PayloadID(payload))
}

// Match returns the match payload.
func (s *Stmts) Match(id StmtID) (*StmtMatchData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtMatch {
		return nil, false
	}
	return s.Matches.Get(uint32(stmt.Payload)), true
}

// NewMod creates a module declaration statement.
func (s *Stmts) NewMod(span source.Span, src string) StmtID {
	payload := s.Mods.Allocate(StmtModData{Src: src})
	return s.new(StmtMod, span, PayloadID(payload))
}

// Mod returns the module payload.
func (s *Stmts) Mod(id StmtID) (*StmtModData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtMod {
		return nil, false
	}
	return s.Mods.Get(uint32(stmt.Payload)), true
}

// NewUse creates an import statement.
func (s *Stmts) NewUse(span source.Span, src string, names []UseName) StmtID {
	payload := s.Uses.Allocate(StmtUseData{Src: src, Names: names})
	return s.new(StmtUse, span, PayloadID(payload))
}

// Use returns the import payload.
func (s *Stmts) Use(id StmtID) (*StmtUseData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtUse {
		return nil, false
	}
	return s.Uses.Get(uint32(stmt.Payload)), true
}

// NewStruct creates a struct declaration statement.
func (s *Stmts) NewStruct(span source.Span, data StmtStructData) StmtID {
	payload := s.Structs.Allocate(data)
	return s.new(StmtStruct, span, PayloadID(payload))
}

// Struct returns the struct payload.
func (s *Stmts) Struct(id StmtID) (*StmtStructData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtStruct {
		return nil, false
	}
	return s.Structs.Get(uint32(stmt.Payload)), true
}

// NewImpl creates an impl block statement.
func (s *Stmts) NewImpl(span source.Span, data StmtImplData) StmtID {
	payload := s.Impls.Allocate(data)
	return s.new(StmtImpl, span, PayloadID(payload))
}

// Impl returns the impl payload.
func (s *Stmts) Impl(id StmtID) (*StmtImplData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtImpl {
		return nil, false
	}
	return s.Impls.Get(uint32(stmt.Payload)), true
}

// NewEnum creates an enum declaration statement.
func (s *Stmts) NewEnum(span source.Span, data StmtEnumData) StmtID {
	payload := s.Enums.Allocate(data)
	return s.new(StmtEnum, span, PayloadID(payload))
}

// Enum returns the enum payload.
func (s *Stmts) Enum(id StmtID) (*StmtEnumData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtEnum {
		return nil, false
	}
	return s.Enums.Get(uint32(stmt.Payload)), true
}
