package interp

import (
	"strconv"
	"strings"

	"github.com/brewinlang/brewin/internal/ast"
	"github.com/brewinlang/brewin/internal/token"
)

// FieldDecl is a class field's declaration: its name and the raw
// initializer atom, which keeps its line number and lexical form until
// object construction converts it to a Value.
type FieldDecl struct {
	Name string
	Init *ast.Atom
}

// MethodDescriptor is a parsed method: its ordered, unique parameter names
// and its root statement.
type MethodDescriptor struct {
	Name   string
	Params []string
	Body   ast.Node
}

// ClassDescriptor holds a class's field initializers and method table,
// built once when the registry is populated.
type ClassDescriptor struct {
	Name    string
	Fields  []FieldDecl
	Methods map[string]*MethodDescriptor
	Pos     token.Position
}

// LookupMethod returns the method by name, or nil if this class has none
// by that name. Brewin has no inheritance, so this is a single map lookup
// rather than a walk up a class hierarchy.
func (c *ClassDescriptor) LookupMethod(name string) *MethodDescriptor {
	return c.Methods[name]
}

// ClassRegistry maps class name to its descriptor, built once after
// parsing and before any object is instantiated.
type ClassRegistry struct {
	Classes map[string]*ClassDescriptor
}

// NewClassRegistry returns an empty registry.
func NewClassRegistry() *ClassRegistry {
	return &ClassRegistry{Classes: make(map[string]*ClassDescriptor)}
}

// Lookup returns the class descriptor by name, or nil if undeclared.
func (r *ClassRegistry) Lookup(name string) *ClassDescriptor {
	return r.Classes[name]
}

// BuildRegistry walks a parsed program's class forms and populates a
// ClassRegistry. Each class form is (class Name field-or-method-form...).
// Duplicate class names are a TypeError; duplicate field or method names
// within one class are a NameError.
func BuildRegistry(classes []*ast.List, ctx *errorContext) (*ClassRegistry, error) {
	registry := NewClassRegistry()

	for _, form := range classes {
		desc, err := buildClassDescriptor(form, ctx)
		if err != nil {
			return nil, err
		}
		if _, exists := registry.Classes[desc.Name]; exists {
			return nil, ctx.typeError(form.Pos(), "duplicate class name %q", desc.Name)
		}
		registry.Classes[desc.Name] = desc
	}

	return registry, nil
}

func buildClassDescriptor(form *ast.List, ctx *errorContext) (*ClassDescriptor, error) {
	if len(form.Children) < 2 || form.HeadKeyword() != "class" {
		return nil, ctx.syntaxError(form.Pos(), "expected (class Name ...)")
	}
	nameAtom, ok := form.Children[1].(*ast.Atom)
	if !ok {
		return nil, ctx.syntaxError(form.Children[1].Pos(), "expected a class name")
	}

	desc := &ClassDescriptor{
		Name:    nameAtom.Lexeme,
		Methods: make(map[string]*MethodDescriptor),
		Pos:     form.Pos(),
	}
	seenFields := make(map[string]bool)

	for _, member := range form.Children[2:] {
		memberList, ok := member.(*ast.List)
		if !ok {
			return nil, ctx.syntaxError(member.Pos(), "expected a field or method form")
		}

		switch memberList.HeadKeyword() {
		case "field":
			field, err := parseFieldForm(memberList, ctx)
			if err != nil {
				return nil, err
			}
			if seenFields[field.Name] {
				return nil, ctx.nameError(memberList.Pos(), "duplicate field %q in class %q", field.Name, desc.Name)
			}
			seenFields[field.Name] = true
			desc.Fields = append(desc.Fields, field)

		case "method":
			method, err := parseMethodForm(memberList, ctx)
			if err != nil {
				return nil, err
			}
			if _, exists := desc.Methods[method.Name]; exists {
				return nil, ctx.nameError(memberList.Pos(), "duplicate method %q in class %q", method.Name, desc.Name)
			}
			desc.Methods[method.Name] = method

		default:
			return nil, ctx.syntaxError(memberList.Pos(), "expected 'field' or 'method', got %q", memberList.HeadKeyword())
		}
	}

	return desc, nil
}

func parseFieldForm(form *ast.List, ctx *errorContext) (FieldDecl, error) {
	if len(form.Children) != 3 {
		return FieldDecl{}, ctx.syntaxError(form.Pos(), "expected (field name initializer)")
	}
	nameAtom, ok := form.Children[1].(*ast.Atom)
	if !ok {
		return FieldDecl{}, ctx.syntaxError(form.Children[1].Pos(), "expected a field name")
	}
	initAtom, ok := form.Children[2].(*ast.Atom)
	if !ok {
		return FieldDecl{}, ctx.syntaxError(form.Children[2].Pos(), "field initializer must be a literal")
	}
	return FieldDecl{Name: nameAtom.Lexeme, Init: initAtom}, nil
}

func parseMethodForm(form *ast.List, ctx *errorContext) (*MethodDescriptor, error) {
	if len(form.Children) != 4 {
		return nil, ctx.syntaxError(form.Pos(), "expected (method name (params...) body)")
	}
	nameAtom, ok := form.Children[1].(*ast.Atom)
	if !ok {
		return nil, ctx.syntaxError(form.Children[1].Pos(), "expected a method name")
	}
	paramsList, ok := form.Children[2].(*ast.List)
	if !ok {
		return nil, ctx.syntaxError(form.Children[2].Pos(), "expected a parameter list")
	}

	seen := make(map[string]bool)
	params := make([]string, 0, len(paramsList.Children))
	for _, p := range paramsList.Children {
		pAtom, ok := p.(*ast.Atom)
		if !ok {
			return nil, ctx.syntaxError(p.Pos(), "expected a parameter name")
		}
		if seen[pAtom.Lexeme] {
			return nil, ctx.nameError(p.Pos(), "duplicate parameter %q in method %q", pAtom.Lexeme, nameAtom.Lexeme)
		}
		seen[pAtom.Lexeme] = true
		params = append(params, pAtom.Lexeme)
	}

	return &MethodDescriptor{
		Name:   nameAtom.Lexeme,
		Params: params,
		Body:   form.Children[3],
	}, nil
}

// convertAtom converts a raw atom lexeme to a Value based on its lexical
// shape: quoted string, true/false, null, a decimal integer, or a known
// class name. It is the only place literal conversion happens, so it is
// trivially idempotent: anything that is already a Value (rather than an
// *ast.Atom) never passes through it.
func convertAtom(atom *ast.Atom, registry *ClassRegistry, ctx *errorContext) (Value, error) {
	lexeme := atom.Lexeme

	switch {
	case strings.HasPrefix(lexeme, `"`) && strings.HasSuffix(lexeme, `"`) && len(lexeme) >= 2:
		return &StrValue{Value: lexeme}, nil
	case lexeme == "true":
		return &BoolValue{Value: true}, nil
	case lexeme == "false":
		return &BoolValue{Value: false}, nil
	case lexeme == "null":
		return &NullValue{}, nil
	}

	if n, err := strconv.ParseInt(lexeme, 10, 64); err == nil {
		return &IntValue{Value: n}, nil
	}

	if registry != nil && registry.Lookup(lexeme) != nil {
		return &NullValue{ClassName: lexeme}, nil
	}

	return nil, ctx.nameError(atom.Position, "cannot resolve %q", lexeme)
}
