package token

import (
	"testing"
)

func TestKind_String(t *testing.T) {
	cases := map[Kind]string{
		KwLet:     "KwLet",
		KwFunc:    "KwFunc",
		Ident:     "Ident",
		NumberLit: "NumberLit",
		StringLit: "StringLit",
		Semicolon: "Semicolon",
		EOF:       "EOF",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}

func TestKind_StringUnknown(t *testing.T) {
	if got := Kind(250).String(); got != "Kind(?)" {
		t.Errorf("unknown kind String() = %q, want %q", got, "Kind(?)")
	}
}

func TestBase_String(t *testing.T) {
	cases := map[Base]string{
		BaseBinary:  "binary",
		BaseOctal:   "octal",
		BaseDecimal: "decimal",
		BaseHex:     "hexadecimal",
	}
	for b, want := range cases {
		if got := b.String(); got != want {
			t.Errorf("Base(%d).String() = %q, want %q", b, got, want)
		}
	}
}

func TestLiteralConstructors(t *testing.T) {
	num := NumberLiteral(BaseHex, 255)
	if num.Kind != LitNumber || num.Base != BaseHex || num.Number != 255 {
		t.Errorf("NumberLiteral() = %+v", num)
	}

	str := StringLiteral("hi")
	if str.Kind != LitString || str.Str != "hi" {
		t.Errorf("StringLiteral() = %+v", str)
	}

	ch := CharLiteral('q')
	if ch.Kind != LitChar || ch.Ch != 'q' {
		t.Errorf("CharLiteral() = %+v", ch)
	}

	b := BoolLiteral(true)
	if b.Kind != LitBool || !b.Bool {
		t.Errorf("BoolLiteral() = %+v", b)
	}

	if n := NullLiteral(); n.Kind != LitNull {
		t.Errorf("NullLiteral() = %+v", n)
	}
}
