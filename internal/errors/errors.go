// Package errors formats Brewin compile-time and runtime errors with
// source context and a caret pointing at the offending column.
package errors

import (
	"fmt"
	"strings"

	"github.com/brewinlang/brewin/internal/token"
)

// Kind classifies an error into one of Brewin's four error categories.
type Kind string

const (
	// SyntaxError is a parse failure, or a class, field, method, statement
	// or expression form of the wrong shape found while building classes
	// or evaluating.
	SyntaxError Kind = "SyntaxError"
	// NameError is a reference to an unknown field/parameter/method, or a
	// duplicate field/method name within a class.
	NameError Kind = "NameError"
	// TypeError is an operator applied to incompatible operands, a
	// non-Bool condition, an unknown class, an arity mismatch, or a
	// duplicate class name.
	TypeError Kind = "TypeError"
	// FaultError is dispatch through a Null receiver.
	FaultError Kind = "FaultError"
)

// SourceError is a single error with position and source context, printed
// with a file:line:column header, the offending line, and a caret.
type SourceError struct {
	Kind    Kind
	Message string
	Source  string
	File    string
	Pos     token.Position
}

// New creates a SourceError.
func New(kind Kind, pos token.Position, message, source, file string) *SourceError {
	return &SourceError{Kind: kind, Pos: pos, Message: message, Source: source, File: file}
}

// Error implements the error interface.
func (e *SourceError) Error() string {
	return e.Format(false)
}

// Format renders the error with a header, the source line, and a caret.
// If color is true, ANSI escapes highlight the caret.
func (e *SourceError) Format(color bool) string {
	var sb strings.Builder

	if e.File != "" {
		sb.WriteString(fmt.Sprintf("%s in %s:%d:%d\n", e.Kind, e.File, e.Pos.Line, e.Pos.Column))
	} else {
		sb.WriteString(fmt.Sprintf("%s at line %d:%d\n", e.Kind, e.Pos.Line, e.Pos.Column))
	}

	if line := e.sourceLine(e.Pos.Line); line != "" {
		lineNumStr := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(line)
		sb.WriteString("\n")

		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+e.Pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

// sourceLine extracts a single 1-indexed line from the source text.
func (e *SourceError) sourceLine(lineNum int) string {
	if e.Source == "" || lineNum < 1 {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}
