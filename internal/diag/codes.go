package diag

import "fmt"

// Code identifies a diagnostic kind. Ranges are reserved per phase:
// 1000..1999 lexer, 2000..2999 parser, 4000..4999 I/O, 5000..5999 project.
type Code uint16

const (
	LexUnknown Code = iota + 1000
	LexUnknownChar
	LexUnterminatedString
	LexUnterminatedChar
	LexEmptyChar
	LexOverlongChar
	LexBadNumber
	LexBadEscape
	LexUnterminatedBlockComment
)

const (
	SynUnknown Code = iota + 2000
	SynUnexpectedToken
	SynExpectIdentifier
	SynExpectUpperIdent
	SynExpectType
	SynExpectSemicolon
	SynExpectBlock
	SynExpectExpression
	SynExpectMatchDefault
	SynBadArrayElement
	SynBadAssignTarget
	SynTooManyErrors
)

const (
	IOLoadFileError Code = iota + 4000
)

const (
	ProjInvalidManifest Code = iota + 5000
	ProjMissingManifest
	ProjNoSources
)

var codeDescription = map[Code]string{
	Code(0): "Unknown diagnostic",

	LexUnknown:                  "Unknown lexical error",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string literal",
	LexUnterminatedChar:         "Unterminated character literal",
	LexEmptyChar:                "Empty character literal",
	LexOverlongChar:             "Character literal holds more than one character",
	LexBadNumber:                "Malformed number literal",
	LexBadEscape:                "Unknown escape sequence",
	LexUnterminatedBlockComment: "Unterminated block comment",

	SynUnknown:            "Unknown syntax error",
	SynUnexpectedToken:    "Unexpected token",
	SynExpectIdentifier:   "Expected identifier",
	SynExpectUpperIdent:   "Expected capitalized identifier",
	SynExpectType:         "Expected type",
	SynExpectSemicolon:    "Expected ';'",
	SynExpectBlock:        "Expected block",
	SynExpectExpression:   "Expected expression",
	SynExpectMatchDefault: "Match requires a '_' default arm",
	SynBadArrayElement:    "Array literal element must be a literal value",
	SynBadAssignTarget:    "Invalid assignment target",
	SynTooManyErrors:      "Too many errors, giving up",

	IOLoadFileError: "I/O load file error",

	ProjInvalidManifest: "Invalid project manifest",
	ProjMissingManifest: "Project manifest not found",
	ProjNoSources:       "No source files found",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("PRJ%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
