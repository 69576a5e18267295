package interp

import (
	"testing"

	"github.com/brewinlang/brewin/internal/ast"
	"github.com/brewinlang/brewin/internal/host"
	"github.com/brewinlang/brewin/internal/lexer"
	"github.com/brewinlang/brewin/internal/parser"
)

// parseClasses parses source into class forms, failing the test on any
// syntax error.
func parseClasses(t *testing.T, source string) []*ast.List {
	t.Helper()
	l := lexer.New(source)
	p := parser.New(l)
	program := p.ParseProgram()
	if len(p.Errors()) > 0 {
		t.Fatalf("unexpected parse errors: %v", p.Errors())
	}
	return program.Classes
}

// atomFor builds a bare *ast.Atom for unit-testing convertAtom directly,
// without going through the lexer/parser.
func atomFor(lexeme string) *ast.Atom {
	return &ast.Atom{Lexeme: lexeme}
}

// runSource runs a whole Brewin program and returns its stdout lines.
func runSource(t *testing.T, source string, input string) ([]string, error) {
	t.Helper()
	classes := parseClasses(t, source)
	h := host.NewBufferHost(input)
	in, err := New(classes, source, "<test>", h)
	if err != nil {
		return nil, err
	}
	if err := in.Run(); err != nil {
		return h.Lines, err
	}
	return h.Lines, nil
}
