package ast

// Hints preallocates the arenas.
type Hints struct{ Stmts, Exprs uint }

// Builder owns the arenas for exactly one compilation unit. A fresh Builder
// restarts the expression-id sequence from the same origin, which keeps id
// assignment reproducible across parses of identical input.
type Builder struct {
	Stmts *Stmts
	Exprs *Exprs
	Top   []StmtID // top-level statements in source order
}

// NewBuilder creates a Builder for one compilation unit.
func NewBuilder(hints Hints) *Builder {
	if hints.Stmts == 0 {
		hints.Stmts = 1 << 8
	}
	if hints.Exprs == 0 {
		hints.Exprs = 1 << 8
	}
	return &Builder{
		Stmts: NewStmts(hints.Stmts),
		Exprs: NewExprs(hints.Exprs),
	}
}

// PushTop appends a top-level statement.
func (b *Builder) PushTop(stmt StmtID) {
	b.Top = append(b.Top, stmt)
}
