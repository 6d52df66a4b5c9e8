// Package toonerr defines the error taxonomy shared by the encoder and
// decoder. The decoder, path expansion and the wire escape/number helpers
// return *toonerr.Error so callers can branch on its Kind (strict-mode
// violations, shape mismatches, and so on); the encoder, the top-level
// Marshal/Unmarshal wrappers and the fixture loader return plain errors
// built with fmt.Errorf.
package toonerr

import "fmt"

// Kind names one of the abstract error categories a caller may want to
// distinguish. The string values are the names used throughout the design
// documents; they are part of the diagnostic surface but not the Go type
// system.
type Kind int

const (
	_ Kind = iota

	// Memory exhaustion.
	MemoryExhaustion

	// Escape errors.
	InvalidEscape
	UnterminatedString

	// Syntax errors.
	MissingColon
	InvalidArrayHeader
	DelimiterMismatch
	InvalidKey
	UnexpectedCharacter

	// Shape errors.
	ArrayLengthMismatch
	RowWidthMismatch

	// Indentation errors.
	InvalidIndentation
	TabIndentation
	UnexpectedIndent

	// Structural errors.
	BlankLineInArray
	InvalidListItem
	NestingError

	// Expansion errors.
	ExpansionConflict

	// Numeric errors.
	InvalidNumber
	Overflow

	// General.
	InvalidInput
	UnexpectedEndOfInput
)

var names = map[Kind]string{
	MemoryExhaustion:     "MemoryExhaustion",
	InvalidEscape:        "InvalidEscape",
	UnterminatedString:   "UnterminatedString",
	MissingColon:         "MissingColon",
	InvalidArrayHeader:   "InvalidArrayHeader",
	DelimiterMismatch:    "DelimiterMismatch",
	InvalidKey:           "InvalidKey",
	UnexpectedCharacter:  "UnexpectedCharacter",
	ArrayLengthMismatch:  "ArrayLengthMismatch",
	RowWidthMismatch:     "RowWidthMismatch",
	InvalidIndentation:   "InvalidIndentation",
	TabIndentation:       "TabIndentation",
	UnexpectedIndent:     "UnexpectedIndent",
	BlankLineInArray:     "BlankLineInArray",
	InvalidListItem:      "InvalidListItem",
	NestingError:         "NestingError",
	ExpansionConflict:    "ExpansionConflict",
	InvalidNumber:        "InvalidNumber",
	Overflow:             "Overflow",
	InvalidInput:         "InvalidInput",
	UnexpectedEndOfInput: "UnexpectedEndOfInput",
}

func (k Kind) String() string {
	if name, ok := names[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is the concrete error type returned by decode and path expansion
// for failures a caller may want to branch on by Kind. Line and Col are
// 1-based and zero when not applicable (e.g. errors raised before any line
// was consumed).
type Error struct {
	Kind Kind
	Msg  string
	Line int
	Col  int
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s at line %d: %s", e.Kind, e.Line, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// New builds an Error with no position information attached.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// At builds an Error tagged with a 1-based line and column.
func At(kind Kind, line, col int, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Line: line, Col: col}
}

// WithPos returns a copy of err with Line/Col set, unless it already carries
// a non-zero Line. This lets an inner call raise an Error without knowing
// its position, and an outer loop attach the line once, the way parser_test
// style callers attach context at the point where a line was consumed.
func WithPos(err *Error, line, col int) *Error {
	if err.Line != 0 {
		return err
	}
	cp := *err
	cp.Line = line
	cp.Col = col
	return &cp
}
