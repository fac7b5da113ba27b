package token

// Base is the radix a numeric literal was written in.
type Base uint8

const (
	// BaseBinary is the 0b prefix.
	BaseBinary Base = 2
	// BaseOctal is the 0o prefix.
	BaseOctal Base = 8
	// BaseDecimal is the default radix.
	BaseDecimal Base = 10
	// BaseHex is the 0x prefix.
	BaseHex Base = 16
)

func (b Base) String() string {
	switch b {
	case BaseBinary:
		return "binary"
	case BaseOctal:
		return "octal"
	case BaseDecimal:
		return "decimal"
	case BaseHex:
		return "hexadecimal"
	}
	return "base(?)"
}

// LitKind tags the scanned form of a literal value.
type LitKind uint8

const (
	// LitNumber is a numeric literal with its radix.
	LitNumber LitKind = iota
	// LitString is a string literal.
	LitString
	// LitChar is a character literal.
	LitChar
	// LitBool is a boolean literal.
	LitBool
	// LitNull is the null literal.
	LitNull
)

// Literal is the lexer-level scanned value of a literal token, independent of
// how the parser later interprets it. Exactly one payload field is meaningful
// for a given Kind.
type Literal struct {
	Kind   LitKind
	Base   Base    // LitNumber
	Number float32 // LitNumber
	Str    string  // LitString
	Ch     rune    // LitChar
	Bool   bool    // LitBool
}

// NumberLiteral builds the scanned value of a numeric literal.
func NumberLiteral(base Base, value float32) *Literal {
	return &Literal{Kind: LitNumber, Base: base, Number: value}
}

// StringLiteral builds the scanned value of a string literal.
func StringLiteral(value string) *Literal {
	return &Literal{Kind: LitString, Str: value}
}

// CharLiteral builds the scanned value of a character literal.
func CharLiteral(value rune) *Literal {
	return &Literal{Kind: LitChar, Ch: value}
}

// BoolLiteral builds the scanned value of a boolean literal.
func BoolLiteral(value bool) *Literal {
	return &Literal{Kind: LitBool, Bool: value}
}

// NullLiteral builds the scanned value of the null literal.
func NullLiteral() *Literal {
	return &Literal{Kind: LitNull}
}
