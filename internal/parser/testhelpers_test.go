package parser_test

import (
	"testing"

	"ape/internal/ast"
	"ape/internal/diag"
	"ape/internal/lexer"
	"ape/internal/parser"
	"ape/internal/source"
)

// parseSource runs the full lexer+parser pipeline over one in-memory file.
func parseSource(t *testing.T, src string) (parser.Result, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.ape", []byte(src))
	file := fs.Get(fileID)

	bag := diag.NewBag(64)
	reporter := &diag.BagReporter{Bag: bag}

	toks := lexer.New(file, lexer.Options{Reporter: reporter}).Lex()
	res := parser.Parse(toks, parser.Options{Reporter: reporter})
	return res, bag
}

// parseClean asserts the source parses without diagnostics.
func parseClean(t *testing.T, src string) parser.Result {
	t.Helper()
	res, bag := parseSource(t, src)
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics for %q:\n%v", src, bagMessages(bag))
	}
	return res
}

func bagMessages(bag *diag.Bag) []string {
	msgs := make([]string, 0, bag.Len())
	for _, d := range bag.Items() {
		msgs = append(msgs, d.Code.ID()+": "+d.Message)
	}
	return msgs
}

// onlyStmt asserts exactly one top-level statement of the wanted kind.
func onlyStmt(t *testing.T, res parser.Result, kind ast.StmtKind) ast.StmtID {
	t.Helper()
	if len(res.Builder.Top) != 1 {
		t.Fatalf("expected 1 top-level statement, got %d", len(res.Builder.Top))
	}
	id := res.Builder.Top[0]
	if got := res.Builder.Stmts.Get(id).Kind; got != kind {
		t.Fatalf("expected statement kind %d, got %d", kind, got)
	}
	return id
}

func hasCode(bag *diag.Bag, code diag.Code) bool {
	for _, d := range bag.Items() {
		if d.Code == code {
			return true
		}
	}
	return false
}

// valueOf asserts an expression is a literal value and returns it.
func valueOf(t *testing.T, res parser.Result, id ast.ExprID) ast.LiteralValue {
	t.Helper()
	data, ok := res.Builder.Exprs.Value(id)
	if !ok {
		t.Fatalf("expression %d is not a value, kind %d", id, res.Builder.Exprs.Get(id).Kind)
	}
	return data.Value
}

func kindOf(res parser.Result, id ast.ExprID) ast.ExprKind {
	return res.Builder.Exprs.Get(id).Kind
}
