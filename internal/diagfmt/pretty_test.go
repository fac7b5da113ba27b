package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"ape/internal/diag"
	"ape/internal/source"
)

func makeBag(fileID source.FileID, start, end uint32) *diag.Bag {
	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.LexUnterminatedString,
		Message:  "unterminated string literal",
		Primary:  source.Span{File: fileID, Start: start, End: end},
	})
	return bag
}

func TestPretty_PathModes(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("let x = \"unterminated string\n")
	fileID := fs.AddVirtual("/home/user/project/src/test.ape", content)
	fs.SetBaseDir("/home/user/project")

	bag := makeBag(fileID, 8, 28)

	tests := []struct {
		name     string
		mode     PathMode
		contains string
	}{
		{"absolute", PathModeAbsolute, "/home/user/project/src/test.ape"},
		{"relative", PathModeRelative, "src/test.ape"},
		{"basename", PathModeBasename, "test.ape"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{PathMode: tt.mode})
			output := buf.String()

			if !strings.Contains(output, tt.contains) {
				t.Errorf("expected output to contain %q, got:\n%s", tt.contains, output)
			}
			if !strings.Contains(output, "ERROR") {
				t.Error("expected ERROR in output")
			}
			if !strings.Contains(output, "LEX1002") {
				t.Error("expected LEX1002 code in output")
			}
			if !strings.Contains(output, "unterminated string literal") {
				t.Error("expected message in output")
			}
		})
	}
}

func TestPretty_PathModeAuto(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"short path as is", "test.ape", "test.ape"},
		{"long absolute path shortened", "/very/long/absolute/path/to/some/nested/directory/file.ape", "file.ape"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := source.NewFileSet()
			fileID := fs.AddVirtual(tt.path, []byte("let x = 42;\n"))
			bag := makeBag(fileID, 8, 10)

			var buf bytes.Buffer
			Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeAuto})
			output := buf.String()

			if !strings.Contains(output, tt.expected+":1:9") {
				t.Errorf("expected %q position header, got:\n%s", tt.expected, output)
			}
		})
	}
}

func TestPretty_Underline(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.ape", []byte("let count = @@;\n"))
	bag := makeBag(fileID, 12, 14)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	output := buf.String()

	if !strings.Contains(output, "let count = @@;") {
		t.Fatalf("expected source line in output, got:\n%s", output)
	}
	if !strings.Contains(output, "^~") {
		t.Errorf("expected two-column underline, got:\n%s", output)
	}
}

func TestPretty_Context(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.ape", []byte("let a = 1;\nlet b = @;\nlet c = 3;\n"))

	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.LexUnknownChar,
		Message:  "unknown character",
		Primary:  source.Span{File: fileID, Start: 19, End: 20},
	})

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{Context: 1})
	output := buf.String()

	for _, line := range []string{"let a = 1;", "let b = @;", "let c = 3;"} {
		if !strings.Contains(output, line) {
			t.Errorf("expected context line %q, got:\n%s", line, output)
		}
	}
}

func TestPretty_Notes(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.ape", []byte("let x = 1;\n"))

	bag := diag.NewBag(10)
	d := diag.Diagnostic{
		Severity: diag.SevWarning,
		Code:     diag.SynUnexpectedToken,
		Message:  "unexpected token",
		Primary:  source.Span{File: fileID, Start: 4, End: 5},
	}
	d = d.WithNote(source.Span{File: fileID, Start: 8, End: 9}, "value declared here")
	bag.Add(d)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{ShowNotes: true})
	output := buf.String()

	if !strings.Contains(output, "note: ") {
		t.Fatalf("expected note line, got:\n%s", output)
	}
	if !strings.Contains(output, "value declared here") {
		t.Errorf("expected note message, got:\n%s", output)
	}

	buf.Reset()
	Pretty(&buf, bag, fs, PrettyOpts{ShowNotes: false})
	if strings.Contains(buf.String(), "value declared here") {
		t.Error("notes should be omitted when disabled")
	}
}

func TestJSON_Output(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.ape", []byte("let x = \"oops\n"))
	bag := makeBag(fileID, 8, 13)

	output := BuildDiagnosticsOutput(bag, fs, JSONOpts{IncludePositions: true})
	if output.Count != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", output.Count)
	}
	d := output.Diagnostics[0]
	if d.Code != "LEX1002" {
		t.Errorf("expected code LEX1002, got %q", d.Code)
	}
	if d.Severity != "error" {
		t.Errorf("expected severity error, got %q", d.Severity)
	}
	if d.Location.StartLine != 1 || d.Location.StartCol != 9 {
		t.Errorf("expected position 1:9, got %d:%d", d.Location.StartLine, d.Location.StartCol)
	}
}

func TestJSON_Max(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.ape", []byte("@@@\n"))

	bag := diag.NewBag(10)
	for i := uint32(0); i < 3; i++ {
		bag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.LexUnknownChar,
			Message:  "unknown character",
			Primary:  source.Span{File: fileID, Start: i, End: i + 1},
		})
	}

	output := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 2})
	if output.Count != 2 {
		t.Errorf("expected truncation to 2 diagnostics, got %d", output.Count)
	}
	if bag.Len() != 3 {
		t.Errorf("truncation must not touch the bag, got %d", bag.Len())
	}
}
