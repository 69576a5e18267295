package interp

import "testing"

func TestBuildRegistrySingleClass(t *testing.T) {
	classes := parseClasses(t, `(class main
		(field x 0)
		(method main () (print x)))`)

	ctx := &errorContext{source: "", file: "<test>"}
	registry, err := BuildRegistry(classes, ctx)
	if err != nil {
		t.Fatalf("BuildRegistry() error = %v", err)
	}

	main := registry.Lookup("main")
	if main == nil {
		t.Fatal("expected class 'main' to be registered")
	}
	if len(main.Fields) != 1 || main.Fields[0].Name != "x" {
		t.Errorf("unexpected fields: %+v", main.Fields)
	}
	if main.LookupMethod("main") == nil {
		t.Error("expected method 'main' to be registered")
	}
	if main.LookupMethod("nope") != nil {
		t.Error("expected unknown method lookup to return nil")
	}
}

func TestBuildRegistryDuplicateClassName(t *testing.T) {
	classes := parseClasses(t, `(class main (method main () (print 1)))
		(class main (method main () (print 2)))`)

	ctx := &errorContext{source: "", file: "<test>"}
	_, err := BuildRegistry(classes, ctx)
	if err == nil {
		t.Fatal("expected duplicate class name to fail")
	}
}

func TestBuildRegistryDuplicateFieldName(t *testing.T) {
	classes := parseClasses(t, `(class main
		(field x 0)
		(field x 1)
		(method main () (print x)))`)

	ctx := &errorContext{source: "", file: "<test>"}
	_, err := BuildRegistry(classes, ctx)
	if err == nil {
		t.Fatal("expected duplicate field name to fail")
	}
}

func TestBuildRegistryDuplicateMethodName(t *testing.T) {
	classes := parseClasses(t, `(class main
		(method main () (print 1))
		(method main () (print 2)))`)

	ctx := &errorContext{source: "", file: "<test>"}
	_, err := BuildRegistry(classes, ctx)
	if err == nil {
		t.Fatal("expected duplicate method name to fail")
	}
}

func TestConvertAtomLiterals(t *testing.T) {
	registry := NewClassRegistry()
	registry.Classes["Foo"] = &ClassDescriptor{Name: "Foo"}
	ctx := &errorContext{}

	classes := parseClasses(t, `(class scratch (field a 0))`)
	_ = classes

	tests := []struct {
		name     string
		lexeme   string
		wantType string
	}{
		{"string", `"hi"`, "Str"},
		{"true", "true", "Bool"},
		{"false", "false", "Bool"},
		{"null", "null", "Null"},
		{"int", "42", "Int"},
		{"negative int", "-7", "Int"},
		{"class name", "Foo", "Null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			atom := atomFor(tt.lexeme)
			v, err := convertAtom(atom, registry, ctx)
			if err != nil {
				t.Fatalf("convertAtom(%q) error = %v", tt.lexeme, err)
			}
			if v.Type() != tt.wantType {
				t.Errorf("convertAtom(%q).Type() = %v, want %v", tt.lexeme, v.Type(), tt.wantType)
			}
		})
	}
}

func TestConvertAtomUnresolvedName(t *testing.T) {
	registry := NewClassRegistry()
	ctx := &errorContext{}
	_, err := convertAtom(atomFor("bogus"), registry, ctx)
	if err == nil {
		t.Fatal("expected unresolved atom to be a name error")
	}
}
