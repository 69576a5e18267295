package interp

import (
	"fmt"

	interrors "github.com/brewinlang/brewin/internal/errors"
	"github.com/brewinlang/brewin/internal/token"
)

// errorContext carries the source text and filename every runtime error
// needs to render a caret-annotated message.
type errorContext struct {
	source string
	file   string
}

func (c *errorContext) newError(kind interrors.Kind, pos token.Position, format string, args ...interface{}) *interrors.SourceError {
	return interrors.New(kind, pos, fmt.Sprintf(format, args...), c.source, c.file)
}

func (c *errorContext) typeError(pos token.Position, format string, args ...interface{}) error {
	return c.newError(interrors.TypeError, pos, format, args...)
}

func (c *errorContext) nameError(pos token.Position, format string, args ...interface{}) error {
	return c.newError(interrors.NameError, pos, format, args...)
}

func (c *errorContext) faultError(pos token.Position, format string, args ...interface{}) error {
	return c.newError(interrors.FaultError, pos, format, args...)
}

func (c *errorContext) syntaxError(pos token.Position, format string, args ...interface{}) error {
	return c.newError(interrors.SyntaxError, pos, format, args...)
}
