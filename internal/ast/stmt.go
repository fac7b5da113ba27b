package ast

import (
	"ape/internal/source"
	"ape/internal/token"
)

// StmtKind enumerates the different kinds of statements.
type StmtKind uint8

const (
	// StmtExpr represents an expression statement.
	StmtExpr StmtKind = iota
	// StmtBlock represents a nested statement block.
	StmtBlock
	// StmtVar represents a variable declaration.
	StmtVar
	// StmtFunc represents a function declaration.
	StmtFunc
	// StmtIf represents an if/else-if/else statement.
	StmtIf
	// StmtReturn represents a return statement.
	StmtReturn
	// StmtWhile represents a while loop.
	StmtWhile
	// StmtLoop represents a bounded or unbounded loop.
	StmtLoop
	// StmtBreak represents a break statement.
	StmtBreak
	// StmtMatch represents a match statement.
	StmtMatch
	// StmtMod represents a module declaration.
	StmtMod
	// StmtUse represents an import statement.
	StmtUse
	// StmtStruct represents a struct declaration.
	StmtStruct
	// StmtImpl represents an impl block.
	StmtImpl
	// StmtEnum represents an enum declaration.
	StmtEnum
)

// Stmt is the header of a statement node.
type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Payload PayloadID
}

// StmtExprData carries the expression of an expression statement.
type StmtExprData struct {
	Expr ExprID
}

// StmtBlockData carries the ordered statements of a block.
type StmtBlockData struct {
	Stmts []StmtID
}

// StmtVarData carries a variable declaration. Type is the declared type
// token (synthesized TyNull for inferred null declarations). PubNames is only
// meaningful when IsPub is set. IsFunc marks an initializer that begins with
// the closure-literal marker '|'.
type StmtVarData struct {
	Names    []token.Token
	Type     token.Token
	Value    ExprID // NoExprID when the declaration has no initializer
	IsMut    bool
	IsPub    bool
	PubNames []token.Token
	IsFunc   bool
}

// StmtFuncData carries a function declaration. IsImpl marks a 'self'
// receiver; IsMut marks a 'mut self' receiver.
type StmtFuncData struct {
	Name    token.Token
	Type    token.Token // declared return type
	Body    FuncBody
	Params  []Param
	IsAsync bool
	IsPub   bool
	IsImpl  bool
	IsMut   bool
}

// ElseIfBranch is one 'else if' arm in source order.
type ElseIfBranch struct {
	Cond ExprID
	Body []StmtID
}

// StmtIfData carries an if statement. HasElse distinguishes an absent else
// branch from an empty one.
type StmtIfData struct {
	Cond    ExprID
	Body    []StmtID
	ElseIf  []ElseIfBranch
	Else    []StmtID
	HasElse bool
}

// StmtReturnData carries the returned expression (a synthesized null value
// expression for a bare 'return;').
type StmtReturnData struct {
	Expr ExprID
}

// StmtWhileData carries a while loop.
type StmtWhileData struct {
	Cond ExprID
	Body []StmtID
}

// StmtLoopData carries a loop. Iter is the bounded iteration count when
// HasIter is set; otherwise the loop is unbounded.
type StmtLoopData struct {
	Iter    uint32
	HasIter bool
	Body    []StmtID
}

// MatchCase is one non-default match arm.
type MatchCase struct {
	Pattern ExprID
	Body    FuncBody
}

// StmtMatchData carries a match statement. The default case is mandatory.
type StmtMatchData struct {
	Cond    ExprID
	Cases   []MatchCase
	Default FuncBody
}

// StmtModData carries the source path of a module declaration.
type StmtModData struct {
	Src string
}

// UseName is one imported name with its optional alias.
type UseName struct {
	Name     token.Token
	Alias    token.Token
	HasAlias bool
}

// StmtUseData carries an import statement.
type StmtUseData struct {
	Src   string
	Names []UseName
}

// StructField is one declared field of a struct.
type StructField struct {
	Name  token.Token
	Type  token.Kind
	IsPub bool
}

// StmtStructData carries a struct declaration. Methods is populated by later
// phases, never by the parser.
type StmtStructData struct {
	Name    token.Token
	Fields  []StructField
	IsPub   bool
	Methods []ExprID
}

// StmtImplData carries an impl block; the body is function declarations.
type StmtImplData struct {
	Name token.Token
	Body []StmtID
}

// StmtEnumData carries an enum declaration.
type StmtEnumData struct {
	Name     token.Token
	Variants []token.Token
	IsPub    bool
}
