package interp

import "testing"

func TestNewObjectInstanceConvertsFieldInitializers(t *testing.T) {
	classes := parseClasses(t, `(class main
		(field i 5)
		(field s "hi")
		(field b true)
		(field n null)
		(method main () (print i)))`)

	ctx := &errorContext{}
	registry, err := BuildRegistry(classes, ctx)
	if err != nil {
		t.Fatalf("BuildRegistry() error = %v", err)
	}

	instance, err := NewObjectInstance(registry.Lookup("main"), registry, ctx)
	if err != nil {
		t.Fatalf("NewObjectInstance() error = %v", err)
	}

	if instance.Fields["i"].(*IntValue).Value != 5 {
		t.Errorf("field i = %v, want 5", instance.Fields["i"])
	}
	if instance.Fields["s"].Type() != "Str" {
		t.Errorf("field s has type %v, want Str", instance.Fields["s"].Type())
	}
	if instance.Fields["b"].(*BoolValue).Value != true {
		t.Errorf("field b = %v, want true", instance.Fields["b"])
	}
	if instance.Fields["n"].Type() != "Null" {
		t.Errorf("field n has type %v, want Null", instance.Fields["n"].Type())
	}
}

func TestNewObjectInstanceBadInitializerFails(t *testing.T) {
	classes := parseClasses(t, `(class main (field x bogus) (method main () (print x)))`)
	ctx := &errorContext{}
	registry, err := BuildRegistry(classes, ctx)
	if err != nil {
		t.Fatalf("BuildRegistry() error = %v", err)
	}
	if _, err := NewObjectInstance(registry.Lookup("main"), registry, ctx); err == nil {
		t.Fatal("expected an unresolvable field initializer to fail construction")
	}
}
