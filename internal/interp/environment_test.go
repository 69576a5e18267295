package interp

import "testing"

func TestScopeStackResolveParamBeforeField(t *testing.T) {
	receiver := &ObjectInstance{Fields: map[string]Value{"x": &IntValue{Value: 1}}}
	var stack scopeStack
	stack.push(&Frame{Receiver: receiver, Params: map[string]Value{"x": &IntValue{Value: 2}}})

	v, ok := stack.resolve("x")
	if !ok {
		t.Fatal("expected x to resolve")
	}
	if v.(*IntValue).Value != 2 {
		t.Errorf("expected parameter frame to shadow field, got %v", v)
	}
}

func TestScopeStackResolveFallsBackToField(t *testing.T) {
	receiver := &ObjectInstance{Fields: map[string]Value{"y": &IntValue{Value: 9}}}
	var stack scopeStack
	stack.push(&Frame{Receiver: receiver, Params: map[string]Value{}})

	v, ok := stack.resolve("y")
	if !ok || v.(*IntValue).Value != 9 {
		t.Fatalf("expected field fallback, got %v, %v", v, ok)
	}
}

func TestScopeStackResolveUnknownName(t *testing.T) {
	receiver := &ObjectInstance{Fields: map[string]Value{}}
	var stack scopeStack
	stack.push(&Frame{Receiver: receiver, Params: map[string]Value{}})

	if _, ok := stack.resolve("nope"); ok {
		t.Error("expected unknown name to fail resolution")
	}
}

func TestScopeStackResolveEmptyStack(t *testing.T) {
	var stack scopeStack
	if _, ok := stack.resolve("anything"); ok {
		t.Error("expected resolution against an empty stack to fail")
	}
}

func TestScopeStackAssignPrefersParam(t *testing.T) {
	receiver := &ObjectInstance{Fields: map[string]Value{"x": &IntValue{Value: 1}}}
	var stack scopeStack
	stack.push(&Frame{Receiver: receiver, Params: map[string]Value{"x": &IntValue{Value: 2}}})

	if !stack.assign("x", &IntValue{Value: 99}) {
		t.Fatal("expected assign to succeed")
	}
	if receiver.Fields["x"].(*IntValue).Value != 1 {
		t.Error("assign should not have touched the field when a parameter shadows it")
	}
	if stack.top().Params["x"].(*IntValue).Value != 99 {
		t.Error("expected parameter to be updated")
	}
}

func TestScopeStackAssignFallsBackToField(t *testing.T) {
	receiver := &ObjectInstance{Fields: map[string]Value{"z": &IntValue{Value: 1}}}
	var stack scopeStack
	stack.push(&Frame{Receiver: receiver, Params: map[string]Value{}})

	if !stack.assign("z", &IntValue{Value: 5}) {
		t.Fatal("expected assign to succeed")
	}
	if receiver.Fields["z"].(*IntValue).Value != 5 {
		t.Error("expected field to be updated")
	}
}

func TestScopeStackPushPop(t *testing.T) {
	var stack scopeStack
	stack.push(&Frame{Receiver: &ObjectInstance{Fields: map[string]Value{}}, Params: map[string]Value{}})
	stack.push(&Frame{Receiver: &ObjectInstance{Fields: map[string]Value{}}, Params: map[string]Value{}})
	if len(stack) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(stack))
	}
	stack.pop()
	if len(stack) != 1 {
		t.Fatalf("expected 1 frame after pop, got %d", len(stack))
	}
}
