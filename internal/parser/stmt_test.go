package parser_test

import (
	"testing"

	"ape/internal/ast"
	"ape/internal/diag"
	"ape/internal/lexer"
	"ape/internal/parser"
	"ape/internal/source"
	"ape/internal/token"
)

func TestVarDecl_Simple(t *testing.T) {
	res := parseClean(t, "let x: number = 1;")
	id := onlyStmt(t, res, ast.StmtVar)
	data, _ := res.Builder.Stmts.Var(id)

	if len(data.Names) != 1 || data.Names[0].Text != "x" {
		t.Errorf("expected single name x, got %+v", data.Names)
	}
	if data.Type.Kind != token.TyNumber {
		t.Errorf("expected declared type number, got %v", data.Type.Kind)
	}
	if v := valueOf(t, res, data.Value); v.Kind != ast.ValueNumber || v.Num != 1 {
		t.Errorf("expected value 1, got %+v", v)
	}
	if data.IsMut || data.IsPub || data.IsFunc {
		t.Errorf("unexpected flags: %+v", data)
	}
}

func TestVarDecl_MutAndMultiNames(t *testing.T) {
	res := parseClean(t, `let mut a, b: string = "s";`)
	id := onlyStmt(t, res, ast.StmtVar)
	data, _ := res.Builder.Stmts.Var(id)

	if !data.IsMut {
		t.Error("expected mut")
	}
	if len(data.Names) != 2 || data.Names[0].Text != "a" || data.Names[1].Text != "b" {
		t.Errorf("expected names a, b, got %+v", data.Names)
	}
}

func TestVarDecl_PubExportList(t *testing.T) {
	res := parseClean(t, "let pub (a, b) a, b: bool = true;")
	id := onlyStmt(t, res, ast.StmtVar)
	data, _ := res.Builder.Stmts.Var(id)

	if !data.IsPub {
		t.Error("expected pub")
	}
	if len(data.PubNames) != 2 || data.PubNames[0].Text != "a" || data.PubNames[1].Text != "b" {
		t.Errorf("expected export list a, b, got %+v", data.PubNames)
	}
}

func TestVarDecl_NullForms(t *testing.T) {
	for _, src := range []string{"let x;", "let x: null;"} {
		t.Run(src, func(t *testing.T) {
			res := parseClean(t, src)
			id := onlyStmt(t, res, ast.StmtVar)
			data, _ := res.Builder.Stmts.Var(id)

			if data.Type.Kind != token.TyNull {
				t.Errorf("expected synthesized null type, got %v", data.Type.Kind)
			}
			if v := valueOf(t, res, data.Value); v.Kind != ast.ValueNull {
				t.Errorf("expected null value, got %+v", v)
			}
		})
	}
}

func TestVarDecl_ClosureInitializer(t *testing.T) {
	res := parseClean(t, "let double: void = |n: number| : n + n;")
	id := onlyStmt(t, res, ast.StmtVar)
	data, _ := res.Builder.Stmts.Var(id)

	if !data.IsFunc {
		t.Error("expected IsFunc for closure initializer")
	}
	fn, ok := res.Builder.Exprs.Func(data.Value)
	if !ok {
		t.Fatalf("expected closure expression, got kind %d", kindOf(res, data.Value))
	}
	if fn.Name.Text != "double" {
		t.Errorf("closure should inherit the declared name, got %q", fn.Name.Text)
	}
	if fn.Type.Kind != token.TyVoid {
		t.Errorf("closure should inherit the declared type, got %v", fn.Type.Kind)
	}
	if len(fn.Params) != 1 || fn.Params[0].Name.Text != "n" || fn.Params[0].Type.Kind != token.TyNumber {
		t.Errorf("unexpected params: %+v", fn.Params)
	}
	if fn.Body.Kind != ast.FuncBodyExpr {
		t.Errorf("expected expression body, got %v", fn.Body.Kind)
	}
}

func TestVarDecl_ClosureNoParams(t *testing.T) {
	res := parseClean(t, "let f: void = |_| { return 1; };")
	id := onlyStmt(t, res, ast.StmtVar)
	data, _ := res.Builder.Stmts.Var(id)

	fn, ok := res.Builder.Exprs.Func(data.Value)
	if !ok {
		t.Fatal("expected closure expression")
	}
	if len(fn.Params) != 0 {
		t.Errorf("expected no params, got %+v", fn.Params)
	}
	if fn.Body.Kind != ast.FuncBodyBlock || len(fn.Body.Stmts) != 1 {
		t.Errorf("expected one-statement block body, got %+v", fn.Body)
	}
}

func TestFunc_BlockBody(t *testing.T) {
	res := parseClean(t, "func add(a: number, b: number) -> number { return a + b; }")
	id := onlyStmt(t, res, ast.StmtFunc)
	data, _ := res.Builder.Stmts.Func(id)

	if data.Name.Text != "add" {
		t.Errorf("expected name add, got %q", data.Name.Text)
	}
	if data.Type.Kind != token.TyNumber {
		t.Errorf("expected return type number, got %v", data.Type.Kind)
	}
	if len(data.Params) != 2 {
		t.Fatalf("expected 2 params, got %+v", data.Params)
	}
	if data.Body.Kind != ast.FuncBodyBlock || len(data.Body.Stmts) != 1 {
		t.Errorf("expected one-statement body, got %+v", data.Body)
	}
}

func TestFunc_ImplicitReturn(t *testing.T) {
	res := parseClean(t, "func answer() -> number = 42;")
	id := onlyStmt(t, res, ast.StmtFunc)
	data, _ := res.Builder.Stmts.Func(id)

	if data.Body.Kind != ast.FuncBodyBlock || len(data.Body.Stmts) != 1 {
		t.Fatalf("expected synthesized single-statement body, got %+v", data.Body)
	}
	ret := data.Body.Stmts[0]
	if res.Builder.Stmts.Get(ret).Kind != ast.StmtReturn {
		t.Fatalf("expected synthesized return, got kind %d", res.Builder.Stmts.Get(ret).Kind)
	}
	retData, _ := res.Builder.Stmts.Return(ret)
	if v := valueOf(t, res, retData.Expr); v.Num != 42 {
		t.Errorf("expected returned 42, got %+v", v)
	}
}

func TestFunc_ModifierOrders(t *testing.T) {
	for _, src := range []string{
		"func pub async go() -> void {}",
		"func async pub go() -> void {}",
	} {
		t.Run(src, func(t *testing.T) {
			res := parseClean(t, src)
			id := onlyStmt(t, res, ast.StmtFunc)
			data, _ := res.Builder.Stmts.Func(id)
			if !data.IsPub || !data.IsAsync {
				t.Errorf("expected pub+async, got %+v", data)
			}
		})
	}
}

func TestFunc_SelfReceivers(t *testing.T) {
	res := parseClean(t, "func area(self) -> number = 0;")
	data, _ := res.Builder.Stmts.Func(onlyStmt(t, res, ast.StmtFunc))
	if !data.IsImpl || data.IsMut {
		t.Errorf("expected impl non-mut receiver, got %+v", data)
	}

	res = parseClean(t, "func grow(mut self, by: number) -> void {}")
	data, _ = res.Builder.Stmts.Func(onlyStmt(t, res, ast.StmtFunc))
	if !data.IsImpl || !data.IsMut {
		t.Errorf("expected mut impl receiver, got %+v", data)
	}
	if len(data.Params) != 1 || data.Params[0].Name.Text != "by" {
		t.Errorf("receiver must not appear in params: %+v", data.Params)
	}
}

func TestIf_ElseIfElse(t *testing.T) {
	res := parseClean(t, `
if a { 1; }
else if b { 2; }
else if c { 3; }
else { 4; }
`)
	id := onlyStmt(t, res, ast.StmtIf)
	data, _ := res.Builder.Stmts.If(id)

	if len(data.Body) != 1 {
		t.Errorf("expected 1 body statement, got %d", len(data.Body))
	}
	if len(data.ElseIf) != 2 {
		t.Errorf("expected 2 else-if branches, got %d", len(data.ElseIf))
	}
	if !data.HasElse || len(data.Else) != 1 {
		t.Errorf("expected else branch, got %+v", data)
	}
}

func TestIf_NoElse(t *testing.T) {
	res := parseClean(t, "if a { 1; }")
	data, _ := res.Builder.Stmts.If(onlyStmt(t, res, ast.StmtIf))
	if data.HasElse || len(data.ElseIf) != 0 {
		t.Errorf("expected bare if, got %+v", data)
	}
}

func TestReturn_Bare(t *testing.T) {
	res := parseClean(t, "return;")
	data, _ := res.Builder.Stmts.Return(onlyStmt(t, res, ast.StmtReturn))
	if v := valueOf(t, res, data.Expr); v.Kind != ast.ValueNull {
		t.Errorf("bare return must carry null, got %+v", v)
	}
}

func TestWhile(t *testing.T) {
	res := parseClean(t, "while x < 10 { x += 1; }")
	data, _ := res.Builder.Stmts.While(onlyStmt(t, res, ast.StmtWhile))
	if kindOf(res, data.Cond) != ast.ExprBinary {
		t.Errorf("expected binary condition, got %d", kindOf(res, data.Cond))
	}
	if len(data.Body) != 1 {
		t.Errorf("expected 1 body statement, got %d", len(data.Body))
	}
}

func TestLoop_Bounded(t *testing.T) {
	res := parseClean(t, "loop 3 { work(); }")
	data, _ := res.Builder.Stmts.Loop(onlyStmt(t, res, ast.StmtLoop))
	if !data.HasIter || data.Iter != 3 {
		t.Errorf("expected bound 3, got %+v", data)
	}
}

func TestLoop_Unbounded(t *testing.T) {
	res := parseClean(t, "loop { work(); break; }")
	data, _ := res.Builder.Stmts.Loop(onlyStmt(t, res, ast.StmtLoop))
	if data.HasIter {
		t.Errorf("expected unbounded loop, got %+v", data)
	}
	if len(data.Body) != 2 {
		t.Errorf("expected 2 body statements, got %d", len(data.Body))
	}
}

func TestMatch_CasesAndDefault(t *testing.T) {
	res := parseClean(t, `
match x {
	1 => { a(); }
	"two" => b(),
	_ => { c(); }
}
`)
	data, _ := res.Builder.Stmts.Match(onlyStmt(t, res, ast.StmtMatch))
	if len(data.Cases) != 2 {
		t.Fatalf("expected 2 cases, got %d", len(data.Cases))
	}
	if data.Cases[0].Body.Kind != ast.FuncBodyBlock {
		t.Errorf("first case should have a block body")
	}
	if data.Cases[1].Body.Kind != ast.FuncBodyExpr {
		t.Errorf("second case should have an expression body")
	}
	if data.Default.Kind != ast.FuncBodyBlock {
		t.Errorf("expected block default, got %+v", data.Default)
	}
}

func TestMatch_DefaultMandatory(t *testing.T) {
	_, bag := parseSource(t, "match x { 1 => a(), }")
	if !hasCode(bag, diag.SynExpectMatchDefault) {
		t.Errorf("expected SynExpectMatchDefault, got %v", bagMessages(bag))
	}
}

func TestMod_StoresUnquotedPath(t *testing.T) {
	res := parseClean(t, `mod "lib/math.ape";`)
	data, _ := res.Builder.Stmts.Mod(onlyStmt(t, res, ast.StmtMod))
	if data.Src != "lib/math.ape" {
		t.Errorf("expected unquoted path, got %q", data.Src)
	}
}

func TestUse_NamesAndAliases(t *testing.T) {
	res := parseClean(t, `use sin, cos as cosine from "math";`)
	data, _ := res.Builder.Stmts.Use(onlyStmt(t, res, ast.StmtUse))

	if data.Src != "math" {
		t.Errorf("expected source math, got %q", data.Src)
	}
	if len(data.Names) != 2 {
		t.Fatalf("expected 2 names, got %+v", data.Names)
	}
	if data.Names[0].HasAlias {
		t.Errorf("sin must have no alias")
	}
	if !data.Names[1].HasAlias || data.Names[1].Alias.Text != "cosine" {
		t.Errorf("expected alias cosine, got %+v", data.Names[1])
	}
}

func TestStruct_Fields(t *testing.T) {
	res := parseClean(t, `
struct pub Point {
	pub x: number,
	y: number,
}
`)
	data, _ := res.Builder.Stmts.Struct(onlyStmt(t, res, ast.StmtStruct))
	if !data.IsPub || data.Name.Text != "Point" {
		t.Errorf("unexpected header: %+v", data)
	}
	if len(data.Fields) != 2 {
		t.Fatalf("expected 2 fields, got %+v", data.Fields)
	}
	if !data.Fields[0].IsPub || data.Fields[0].Name.Text != "x" || data.Fields[0].Type != token.TyNumber {
		t.Errorf("unexpected field: %+v", data.Fields[0])
	}
	if data.Fields[1].IsPub {
		t.Errorf("y must not be pub")
	}
}

func TestStruct_NameMustBeUppercase(t *testing.T) {
	_, bag := parseSource(t, "struct point { x: number }")
	if !hasCode(bag, diag.SynExpectUpperIdent) {
		t.Errorf("expected SynExpectUpperIdent, got %v", bagMessages(bag))
	}
}

func TestImpl_Empty(t *testing.T) {
	res := parseClean(t, "impl Name {}")
	data, _ := res.Builder.Stmts.Impl(onlyStmt(t, res, ast.StmtImpl))
	if data.Name.Text != "Name" || len(data.Body) != 0 {
		t.Errorf("unexpected impl: %+v", data)
	}
}

func TestImpl_WithMethod(t *testing.T) {
	res := parseClean(t, "impl Name { func empty() -> void {} }")
	data, _ := res.Builder.Stmts.Impl(onlyStmt(t, res, ast.StmtImpl))
	if len(data.Body) != 1 {
		t.Fatalf("expected 1 method, got %d", len(data.Body))
	}
	fn, _ := res.Builder.Stmts.Func(data.Body[0])
	if fn.Name.Text != "empty" || fn.Type.Kind != token.TyVoid {
		t.Errorf("unexpected method: %+v", fn)
	}
}

func TestEnum_Variants(t *testing.T) {
	res := parseClean(t, "enum pub Color { Red, Green, Blue }")
	data, _ := res.Builder.Stmts.Enum(onlyStmt(t, res, ast.StmtEnum))
	if !data.IsPub || data.Name.Text != "Color" {
		t.Errorf("unexpected header: %+v", data)
	}
	if len(data.Variants) != 3 || data.Variants[2].Text != "Blue" {
		t.Errorf("unexpected variants: %+v", data.Variants)
	}
}

func TestBlockStmt_Nested(t *testing.T) {
	res := parseClean(t, "{ let x: number = 1; { x; } }")
	id := onlyStmt(t, res, ast.StmtBlock)
	data, _ := res.Builder.Stmts.Block(id)
	if len(data.Stmts) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(data.Stmts))
	}
	if res.Builder.Stmts.Get(data.Stmts[1]).Kind != ast.StmtBlock {
		t.Errorf("expected nested block")
	}
}

func TestResync_KeepsParsing(t *testing.T) {
	res, bag := parseSource(t, `
let : = ;
let ok: number = 1;
`)
	if !bag.HasErrors() {
		t.Fatal("expected diagnostics for the malformed statement")
	}
	if len(res.Builder.Top) != 1 {
		t.Fatalf("expected the good statement to survive, got %d", len(res.Builder.Top))
	}
	data, _ := res.Builder.Stmts.Var(res.Builder.Top[0])
	if data.Names[0].Text != "ok" {
		t.Errorf("wrong surviving statement: %+v", data)
	}
}

func TestMissingSemicolon(t *testing.T) {
	_, bag := parseSource(t, "let x: number = 1")
	if !hasCode(bag, diag.SynExpectSemicolon) {
		t.Errorf("expected SynExpectSemicolon, got %v", bagMessages(bag))
	}
}

func TestMaxErrors_StopsReporting(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.ape", []byte("let ; let ; let ; let ; let ;")))

	bag := diag.NewBag(64)
	reporter := &diag.BagReporter{Bag: bag}
	toks := lexer.New(file, lexer.Options{Reporter: reporter}).Lex()
	parser.Parse(toks, parser.Options{Reporter: reporter, MaxErrors: 2})

	if bag.Len() != 2 {
		t.Errorf("expected exactly 2 reported diagnostics, got %d: %v", bag.Len(), bagMessages(bag))
	}
}

func TestMaxErrors_FirstErrorAlwaysReported(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.ape", []byte("let ;")))

	bag := diag.NewBag(64)
	reporter := &diag.BagReporter{Bag: bag}
	toks := lexer.New(file, lexer.Options{Reporter: reporter}).Lex()
	parser.Parse(toks, parser.Options{Reporter: reporter, MaxErrors: 1})

	// the tightest limit still surfaces the first diagnostic; malformed
	// input must never come back with an empty bag
	if bag.Len() != 1 {
		t.Errorf("expected exactly 1 reported diagnostic, got %d: %v", bag.Len(), bagMessages(bag))
	}
	if !bag.HasErrors() {
		t.Error("malformed input reported no errors")
	}
}
