package interp

import (
	"github.com/brewinlang/brewin/internal/ast"
	"github.com/brewinlang/brewin/internal/host"
	"github.com/brewinlang/brewin/internal/token"
)

// TraceFunc is invoked before each statement executes, for the --trace CLI
// flag supplemented from original_source/interpreterv1.py's
// interpret_statement debug hook. It is nil unless the caller opts in.
type TraceFunc func(pos token.Position, head string)

// Interpreter is a single run of the program driver: a class registry,
// the host I/O abstraction, and the live call stack.
type Interpreter struct {
	registry *ClassRegistry
	ctx      *errorContext
	host     host.Host
	scope    scopeStack
	trace    TraceFunc
}

// Option configures an Interpreter at construction time.
type Option func(*Interpreter)

// WithTrace installs a callback invoked before every statement.
func WithTrace(fn TraceFunc) Option {
	return func(in *Interpreter) { in.trace = fn }
}

// New builds an Interpreter over a parsed program's class forms. source
// and file feed error messages; h is the I/O sink/source the program's
// print/inputi/inputs statements use.
func New(classes []*ast.List, source, file string, h host.Host, opts ...Option) (*Interpreter, error) {
	ctx := &errorContext{source: source, file: file}

	registry, err := BuildRegistry(classes, ctx)
	if err != nil {
		return nil, err
	}

	in := &Interpreter{
		registry: registry,
		ctx:      ctx,
		host:     h,
	}
	for _, opt := range opts {
		opt(in)
	}
	return in, nil
}

// Run instantiates the main class and invokes its zero-argument main
// method. It returns the error of the first failure surfaced anywhere in
// evaluation, formatted as a SourceError.
func (in *Interpreter) Run() error {
	mainClass := in.registry.Lookup("main")
	if mainClass == nil {
		return in.ctx.typeError(token.Position{}, "no class named \"main\"")
	}

	instance, err := NewObjectInstance(mainClass, in.registry, in.ctx)
	if err != nil {
		return err
	}

	_, err = in.callMethod(instance, "main", nil, mainClass.Pos)
	return err
}
