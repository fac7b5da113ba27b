package ast

type (
	// StmtID identifies a statement node. 1-based arena index.
	StmtID uint32
	// ExprID identifies an expression node. 1-based arena index, assigned
	// once at construction in a fixed order; the resolver keys per-occurrence
	// scope bindings on it, so ids are dense and reproducible across parses
	// of identical input.
	ExprID uint32
	// PayloadID points into the per-kind payload arena for a node.
	PayloadID uint32
)

const (
	NoStmtID    StmtID    = 0
	NoExprID    ExprID    = 0
	NoPayloadID PayloadID = 0
)

func (id StmtID) IsValid() bool    { return id != NoStmtID }
func (id ExprID) IsValid() bool    { return id != NoExprID }
func (id PayloadID) IsValid() bool { return id != NoPayloadID }
