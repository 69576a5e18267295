package interp

import (
	"github.com/brewinlang/brewin/internal/ast"
	"github.com/brewinlang/brewin/internal/token"
)

// evalCall implements `(call target method arg…)` as both an expression
// and a statement. target is the atom `me` for a call on the current
// instance, or an expression evaluating to Obj otherwise.
func (in *Interpreter) evalCall(list *ast.List) (Value, error) {
	args := list.Rest()
	if len(args) < 2 {
		return nil, in.ctx.syntaxError(list.Pos(), "expected (call target method arg…)")
	}
	targetNode, methodNode, argNodes := args[0], args[1], args[2:]

	methodAtom, ok := methodNode.(*ast.Atom)
	if !ok {
		return nil, in.ctx.syntaxError(methodNode.Pos(), "expected a method name")
	}

	argVals := make([]Value, 0, len(argNodes))
	for _, a := range argNodes {
		v, err := in.eval(a)
		if err != nil {
			return nil, err
		}
		argVals = append(argVals, v)
	}

	receiver, err := in.resolveReceiver(targetNode)
	if err != nil {
		return nil, err
	}

	return in.callMethod(receiver, methodAtom.Lexeme, argVals, list.Pos())
}

// resolveReceiver evaluates the call target to the ObjectInstance the
// method dispatches on. `me` refers to the current instance without
// re-evaluating through the scope stack; any other target must evaluate
// to a live object reference.
func (in *Interpreter) resolveReceiver(target ast.Node) (*ObjectInstance, error) {
	if atom, ok := target.(*ast.Atom); ok && atom.Lexeme == "me" {
		frame := in.scope.top()
		if frame == nil {
			return nil, in.ctx.faultError(atom.Position, "'me' used outside a method call")
		}
		return frame.Receiver, nil
	}

	v, err := in.eval(target)
	if err != nil {
		return nil, err
	}

	switch val := v.(type) {
	case *ObjValue:
		return val.Instance, nil
	case *NullValue:
		return nil, in.ctx.faultError(target.Pos(), "null dereference")
	default:
		return nil, in.ctx.typeError(target.Pos(), "cannot dispatch a call through a %s", v.Type())
	}
}

// callMethod looks up method on receiver, binds args to its parameters in
// a fresh frame, executes its body, and returns its result (Null if it
// never returns explicitly). pos is used for arity-mismatch diagnostics.
func (in *Interpreter) callMethod(receiver *ObjectInstance, method string, args []Value, pos token.Position) (Value, error) {
	desc := receiver.Class.LookupMethod(method)
	if desc == nil {
		return nil, in.ctx.nameError(pos, "class %q has no method %q", receiver.Class.Name, method)
	}
	if len(desc.Params) != len(args) {
		return nil, in.ctx.typeError(pos, "method %q expects %d argument(s), got %d", method, len(desc.Params), len(args))
	}

	params := make(map[string]Value, len(args))
	for i, name := range desc.Params {
		params[name] = args[i]
	}

	in.scope.push(&Frame{Receiver: receiver, Params: params})
	defer in.scope.pop()

	result, returned, err := in.exec(desc.Body)
	if err != nil {
		return nil, err
	}
	if !returned {
		return &NullValue{}, nil
	}
	return result, nil
}
