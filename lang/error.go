package lang

//go:generate go tool stringer --linecomment --type ErrorKind --output errorkind_string.go

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// ErrorKind classifies every failure this package reports.
type ErrorKind int

const (
	ErrorNone                ErrorKind = iota // none
	ErrorOpenFile                             // open file
	ErrorFileTooLarge                         // file too large
	ErrorUnknownToken                         // unknown token
	ErrorUnexpectedToken                      // unexpected token
	ErrorUnterminatedString                   // unterminated string
	ErrorUnterminatedComment                  // unterminated comment
	ErrorRedefinition                         // variable redefinition
	ErrorNotFound                             // variable not found
	ErrorWrongType                            // variable wrong type
	ErrorParse                                // variable parse
	ErrorOutOfRange                           // index out of range
)

// Error is a diagnostic produced by the tokenizer, the parser, or a safe
// accessor. Line and Column are 1-based and zero when no source position
// applies (accessor errors, open failures).
//
// Error implements error, errors.Unwrap, and slog.LogValuer.
type Error struct {
	err    error
	msg    string
	Kind   ErrorKind
	Line   int
	Column int
}

// newError creates a positioned Error. Pass zero line and column for errors
// with no source position.
func newError(
	kind ErrorKind,
	line, column int,
	format string,
	args ...any,
) *Error {
	return &Error{
		Kind:   kind,
		Line:   line,
		Column: column,
		msg:    fmt.Sprintf(format, args...),
	}
}

// wrapError creates an Error wrapping an underlying cause.
func wrapError(kind ErrorKind, err error, format string, args ...any) *Error {
	return &Error{
		Kind: kind,
		err:  err,
		msg:  fmt.Sprintf(format, args...),
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	var sb strings.Builder

	sb.WriteString(e.msg)

	if e.err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.err.Error())
	}

	if e.Line > 0 {
		sb.WriteString(" at line:")
		sb.WriteString(strconv.Itoa(e.Line))
		sb.WriteString(", column:")
		sb.WriteString(strconv.Itoa(e.Column))
	}

	return sb.String()
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Message returns the diagnostic text without position or cause.
func (e *Error) Message() string { return e.msg }

// LogValue implements slog.LogValuer for structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, 4)
	attrs = append(attrs,
		slog.String("kind", e.Kind.String()),
		slog.String("error", e.msg),
	)

	if e.Line > 0 {
		attrs = append(attrs,
			slog.Int("line", e.Line),
			slog.Int("column", e.Column),
		)
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(attrs...)
}

// Annotate renders the error followed by the offending source line with a
// caret marking the error column:
//
//	unexpected token `;` at line:1, column:5
//	  1 | x = ;
//	          ^
//
// It returns Error() unchanged when the error carries no position or the
// position falls outside src.
func (e *Error) Annotate(src string) string {
	lines := strings.Split(src, "\n")

	if e.Line < 1 || e.Line > len(lines) {
		return e.Error()
	}

	text := lines[e.Line-1]
	num := strconv.Itoa(e.Line)

	var sb strings.Builder

	sb.WriteString(e.Error())
	sb.WriteString("\n  ")
	sb.WriteString(num)
	sb.WriteString(" | ")
	sb.WriteString(text)
	sb.WriteByte('\n')

	// 5 = two leading spaces plus " | ".
	pad := len(num) + 5
	if e.Column > 0 {
		pad += e.Column - 1
	}

	sb.WriteString(strings.Repeat(" ", pad))
	sb.WriteByte('^')

	return sb.String()
}
