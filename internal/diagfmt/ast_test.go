package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"ape/internal/diag"
	"ape/internal/lexer"
	"ape/internal/parser"
	"ape/internal/source"
	"ape/internal/token"
)

func parseForDump(t *testing.T, src string) (parser.Result, []token.Token, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("dump.ape", []byte(src))

	bag := diag.NewBag(16)
	reporter := &diag.BagReporter{Bag: bag}
	toks := lexer.New(fs.Get(fileID), lexer.Options{Reporter: reporter}).Lex()
	res := parser.Parse(toks, parser.Options{Reporter: reporter})
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics for %q", src)
	}
	return res, toks, fs
}

func TestFormatASTPretty(t *testing.T) {
	res, _, fs := parseForDump(t, "let total: number = 1 + 2;\nfunc main() -> void { total; }\n")

	var buf bytes.Buffer
	if err := FormatASTPretty(&buf, res.Builder, fs); err != nil {
		t.Fatal(err)
	}
	output := buf.String()

	for _, want := range []string{
		"Stmt[0]: Var",
		"Names: total",
		"Binary \"+\"",
		"Stmt[1]: Func",
		"Name: main",
		"└─",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in tree:\n%s", want, output)
		}
	}
}

func TestFormatASTJSON(t *testing.T) {
	res, _, _ := parseForDump(t, "enum Color { Red, Green }\n")

	var buf bytes.Buffer
	if err := FormatASTJSON(&buf, res.Builder); err != nil {
		t.Fatal(err)
	}

	var root ASTNodeOutput
	if err := json.Unmarshal(buf.Bytes(), &root); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if root.Type != "program" || len(root.Children) != 1 {
		t.Fatalf("expected program with one child, got %+v", root)
	}
	child := root.Children[0]
	if child.Kind != "Enum" || child.Text != "Color" {
		t.Errorf("expected Enum Color, got kind %q text %q", child.Kind, child.Text)
	}
}

func TestFormatTokensPretty(t *testing.T) {
	_, toks, fs := parseForDump(t, "let x: number = 0xff;\n")

	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, toks, fs); err != nil {
		t.Fatal(err)
	}
	output := buf.String()

	for _, want := range []string{"KwLet", "Ident", `"x"`, "NumberLit", "hexadecimal 255", "EOF"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in listing:\n%s", want, output)
		}
	}
}

func TestFormatTokensJSON(t *testing.T) {
	_, toks, _ := parseForDump(t, "x;\n")

	var buf bytes.Buffer
	if err := FormatTokensJSON(&buf, toks); err != nil {
		t.Fatal(err)
	}

	var output []TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(output) != 3 {
		t.Fatalf("expected Ident, Semicolon, EOF, got %d tokens", len(output))
	}
	if output[0].Kind != "Ident" || output[0].Text != "x" {
		t.Errorf("expected Ident x first, got %+v", output[0])
	}
	if output[len(output)-1].Kind != "EOF" {
		t.Errorf("expected trailing EOF, got %+v", output[len(output)-1])
	}
}
