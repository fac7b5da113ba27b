package diag

import (
	"testing"

	"ape/internal/source"
)

func mkDiag(sev Severity, code Code, start, end uint32) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  code.Title(),
		Primary:  source.Span{File: 0, Start: start, End: end},
	}
}

func TestBag_AddRespectsCap(t *testing.T) {
	bag := NewBag(2)

	if !bag.Add(mkDiag(SevError, LexUnknownChar, 0, 1)) {
		t.Fatal("first Add() rejected")
	}
	if !bag.Add(mkDiag(SevError, LexUnknownChar, 1, 2)) {
		t.Fatal("second Add() rejected")
	}
	if bag.Add(mkDiag(SevError, LexUnknownChar, 2, 3)) {
		t.Fatal("Add() over cap accepted")
	}
	if bag.Len() != 2 {
		t.Errorf("Len() = %d, want 2", bag.Len())
	}
	if bag.Cap() != 2 {
		t.Errorf("Cap() = %d, want 2", bag.Cap())
	}
}

func TestBag_HasErrorsAndWarnings(t *testing.T) {
	bag := NewBag(10)
	if bag.HasErrors() || bag.HasWarnings() {
		t.Fatal("empty bag reports diagnostics")
	}

	bag.Add(mkDiag(SevInfo, LexUnknown, 0, 1))
	if bag.HasErrors() || bag.HasWarnings() {
		t.Fatal("info-only bag reports errors or warnings")
	}

	bag.Add(mkDiag(SevWarning, LexUnknown, 1, 2))
	if bag.HasErrors() {
		t.Fatal("warning counted as error")
	}
	if !bag.HasWarnings() {
		t.Fatal("warning not reported")
	}

	bag.Add(mkDiag(SevError, LexUnknown, 2, 3))
	if !bag.HasErrors() {
		t.Fatal("error not reported")
	}
}

func TestBag_SortIsDeterministic(t *testing.T) {
	bag := NewBag(10)
	bag.Add(mkDiag(SevError, SynUnexpectedToken, 20, 21))
	bag.Add(mkDiag(SevError, LexUnknownChar, 0, 1))
	bag.Add(mkDiag(SevWarning, LexUnknown, 0, 1))

	bag.Sort()
	items := bag.Items()
	if items[0].Primary.Start != 0 || items[0].Severity != SevError {
		t.Errorf("items[0] = %+v, want error at offset 0 first", items[0])
	}
	if items[1].Severity != SevWarning {
		t.Errorf("items[1] = %+v, want the warning at offset 0", items[1])
	}
	if items[2].Primary.Start != 20 {
		t.Errorf("items[2] = %+v, want offset 20 last", items[2])
	}
}

func TestBag_Dedup(t *testing.T) {
	bag := NewBag(10)
	bag.Add(mkDiag(SevError, LexUnknownChar, 5, 6))
	bag.Add(mkDiag(SevError, LexUnknownChar, 5, 6))
	bag.Add(mkDiag(SevError, LexUnknownChar, 7, 8))

	bag.Dedup()
	if bag.Len() != 2 {
		t.Errorf("Len() after Dedup = %d, want 2", bag.Len())
	}
}

func TestBag_MergeGrowsCap(t *testing.T) {
	a := NewBag(1)
	a.Add(mkDiag(SevError, LexUnknown, 0, 1))

	b := NewBag(2)
	b.Add(mkDiag(SevError, LexUnknown, 1, 2))
	b.Add(mkDiag(SevWarning, LexUnknown, 2, 3))

	a.Merge(b)
	if a.Len() != 3 {
		t.Errorf("Len() after Merge = %d, want 3", a.Len())
	}
	if a.Cap() < 3 {
		t.Errorf("Cap() after Merge = %d, want >= 3", a.Cap())
	}
}

func TestCode_ID(t *testing.T) {
	cases := map[Code]string{
		LexUnknownChar:     "LEX1001",
		SynUnexpectedToken: "SYN2001",
		IOLoadFileError:    "IO4000",
		ProjNoSources:      "PRJ5002",
		Code(0):            "E0000",
	}
	for code, want := range cases {
		if got := code.ID(); got != want {
			t.Errorf("Code(%d).ID() = %q, want %q", code, got, want)
		}
	}
}

func TestSeverity_String(t *testing.T) {
	cases := map[Severity]string{
		SevInfo:    "info",
		SevWarning: "warning",
		SevError:   "error",
	}
	for sev, want := range cases {
		if got := sev.String(); got != want {
			t.Errorf("Severity(%d).String() = %q, want %q", sev, got, want)
		}
	}
}

func TestDiagnostic_WithNote(t *testing.T) {
	d := mkDiag(SevError, SynExpectSemicolon, 10, 11)
	d = d.WithNote(source.Span{File: 0, Start: 3, End: 5}, "statement started here")

	if len(d.Notes) != 1 {
		t.Fatalf("len(Notes) = %d, want 1", len(d.Notes))
	}
	if d.Notes[0].Msg != "statement started here" {
		t.Errorf("note message = %q", d.Notes[0].Msg)
	}
}
