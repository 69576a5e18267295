package interp

import (
	"strings"

	"github.com/brewinlang/brewin/internal/ast"
)

// eval evaluates an expression node to a Value. Atoms resolve through the
// scope stack before falling back to literal conversion; lists dispatch on
// their head keyword.
func (in *Interpreter) eval(node ast.Node) (Value, error) {
	switch n := node.(type) {
	case *ast.Atom:
		return in.evalAtom(n)
	case *ast.List:
		return in.evalList(n)
	default:
		return nil, in.ctx.syntaxError(node.Pos(), "unrecognized expression node")
	}
}

func (in *Interpreter) evalAtom(atom *ast.Atom) (Value, error) {
	if atom.Lexeme == "me" {
		frame := in.scope.top()
		if frame == nil {
			return nil, in.ctx.faultError(atom.Position, "'me' used outside a method call")
		}
		return &ObjValue{Instance: frame.Receiver}, nil
	}
	if v, ok := in.scope.resolve(atom.Lexeme); ok {
		return v, nil
	}
	return convertAtom(atom, in.registry, in.ctx)
}

func (in *Interpreter) evalList(list *ast.List) (Value, error) {
	if len(list.Children) == 0 {
		return nil, in.ctx.syntaxError(list.Pos(), "empty expression")
	}

	switch list.HeadKeyword() {
	case "new":
		return in.evalNew(list)
	case "call":
		return in.evalCall(list)
	case "!":
		return in.evalNot(list)
	case "+", "-", "*", "/", "%":
		return in.evalArith(list)
	case "==", "!=":
		return in.evalEquality(list)
	case "<", "<=", ">", ">=":
		return in.evalOrder(list)
	case "&", "|":
		return in.evalLogical(list)
	default:
		return nil, in.ctx.syntaxError(list.Pos(), "unrecognized expression %q", list.HeadKeyword())
	}
}

func (in *Interpreter) evalNew(list *ast.List) (Value, error) {
	args := list.Rest()
	if len(args) != 1 {
		return nil, in.ctx.syntaxError(list.Pos(), "expected (new ClassName)")
	}
	nameAtom, ok := args[0].(*ast.Atom)
	if !ok {
		return nil, in.ctx.syntaxError(args[0].Pos(), "expected a class name")
	}
	class := in.registry.Lookup(nameAtom.Lexeme)
	if class == nil {
		return nil, in.ctx.typeError(nameAtom.Position, "unknown class %q", nameAtom.Lexeme)
	}
	instance, err := NewObjectInstance(class, in.registry, in.ctx)
	if err != nil {
		return nil, err
	}
	return &ObjValue{Instance: instance}, nil
}

func (in *Interpreter) evalNot(list *ast.List) (Value, error) {
	args := list.Rest()
	if len(args) != 1 {
		return nil, in.ctx.syntaxError(list.Pos(), "expected (! expr)")
	}
	v, err := in.eval(args[0])
	if err != nil {
		return nil, err
	}
	b, ok := v.(*BoolValue)
	if !ok {
		return nil, in.ctx.typeError(list.Pos(), "'!' requires a Bool operand, got %s", v.Type())
	}
	return &BoolValue{Value: !b.Value}, nil
}

func (in *Interpreter) evalOperands(list *ast.List) (Value, Value, error) {
	args := list.Rest()
	if len(args) != 2 {
		return nil, nil, in.ctx.syntaxError(list.Pos(), "expected (%s lhs rhs)", list.HeadKeyword())
	}
	lhs, err := in.eval(args[0])
	if err != nil {
		return nil, nil, err
	}
	rhs, err := in.eval(args[1])
	if err != nil {
		return nil, nil, err
	}
	return lhs, rhs, nil
}

func (in *Interpreter) evalArith(list *ast.List) (Value, error) {
	lhs, rhs, err := in.evalOperands(list)
	if err != nil {
		return nil, err
	}

	op := list.HeadKeyword()

	if op == "+" {
		if ls, ok := lhs.(*StrValue); ok {
			if rs, ok := rhs.(*StrValue); ok {
				return &StrValue{Value: `"` + ls.Unquoted() + rs.Unquoted() + `"`}, nil
			}
		}
	}

	li, lok := lhs.(*IntValue)
	ri, rok := rhs.(*IntValue)
	if !lok || !rok {
		return nil, in.ctx.typeError(list.Pos(), "'%s' requires Int operands, got %s and %s", op, lhs.Type(), rhs.Type())
	}

	switch op {
	case "+":
		return &IntValue{Value: li.Value + ri.Value}, nil
	case "-":
		return &IntValue{Value: li.Value - ri.Value}, nil
	case "*":
		return &IntValue{Value: li.Value * ri.Value}, nil
	case "/":
		if ri.Value == 0 {
			return nil, in.ctx.typeError(list.Pos(), "division by zero")
		}
		return &IntValue{Value: floorDiv(li.Value, ri.Value)}, nil
	case "%":
		if ri.Value == 0 {
			return nil, in.ctx.typeError(list.Pos(), "division by zero")
		}
		return &IntValue{Value: floorMod(li.Value, ri.Value)}, nil
	default:
		return nil, in.ctx.syntaxError(list.Pos(), "unrecognized arithmetic operator %q", op)
	}
}

// floorDiv and floorMod implement division truncating toward negative
// infinity, matching Python's `//` and `%` semantics rather than Go's
// truncating-toward-zero `/` and `%`.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	m := a % b
	if m != 0 && ((a < 0) != (b < 0)) {
		m += b
	}
	return m
}

func (in *Interpreter) evalEquality(list *ast.List) (Value, error) {
	lhs, rhs, err := in.evalOperands(list)
	if err != nil {
		return nil, err
	}

	equal, err := in.valuesEqual(list, lhs, rhs)
	if err != nil {
		return nil, err
	}
	if list.HeadKeyword() == "!=" {
		equal = !equal
	}
	return &BoolValue{Value: equal}, nil
}

// valuesEqual compares two values for equality: Null compares equal only
// to Null, never to a live Obj reference; otherwise both operands must
// share a type.
func (in *Interpreter) valuesEqual(list *ast.List, lhs, rhs Value) (bool, error) {
	_, lNull := lhs.(*NullValue)
	_, rNull := rhs.(*NullValue)
	_, lObjOk := lhs.(*ObjValue)
	_, rObjOk := rhs.(*ObjValue)

	if lNull && rNull {
		return true, nil
	}
	// An ObjValue always wraps a live instance (typed-null placeholders are
	// represented as NullValue, never as an ObjValue with no instance), so
	// Null never actually equals a real Obj reference.
	if (lNull && rObjOk) || (rNull && lObjOk) {
		return false, nil
	}

	if lhs.Type() != rhs.Type() {
		return false, in.ctx.typeError(list.Pos(), "cannot compare %s and %s", lhs.Type(), rhs.Type())
	}

	switch l := lhs.(type) {
	case *IntValue:
		return l.Value == rhs.(*IntValue).Value, nil
	case *StrValue:
		return l.Unquoted() == rhs.(*StrValue).Unquoted(), nil
	case *BoolValue:
		return l.Value == rhs.(*BoolValue).Value, nil
	case *ObjValue:
		return l.Instance == rhs.(*ObjValue).Instance, nil
	default:
		return false, in.ctx.typeError(list.Pos(), "cannot compare %s", lhs.Type())
	}
}

func (in *Interpreter) evalOrder(list *ast.List) (Value, error) {
	lhs, rhs, err := in.evalOperands(list)
	if err != nil {
		return nil, err
	}

	op := list.HeadKeyword()

	if li, ok := lhs.(*IntValue); ok {
		if ri, ok := rhs.(*IntValue); ok {
			return &BoolValue{Value: compareInts(op, li.Value, ri.Value)}, nil
		}
	}
	if ls, ok := lhs.(*StrValue); ok {
		if rs, ok := rhs.(*StrValue); ok {
			return &BoolValue{Value: compareStrings(op, ls.Unquoted(), rs.Unquoted())}, nil
		}
	}

	return nil, in.ctx.typeError(list.Pos(), "'%s' requires two Ints or two Strs, got %s and %s", op, lhs.Type(), rhs.Type())
}

func compareInts(op string, a, b int64) bool {
	switch op {
	case "<":
		return a < b
	case "<=":
		return a <= b
	case ">":
		return a > b
	case ">=":
		return a >= b
	}
	return false
}

func compareStrings(op string, a, b string) bool {
	switch op {
	case "<":
		return strings.Compare(a, b) < 0
	case "<=":
		return strings.Compare(a, b) <= 0
	case ">":
		return strings.Compare(a, b) > 0
	case ">=":
		return strings.Compare(a, b) >= 0
	}
	return false
}

func (in *Interpreter) evalLogical(list *ast.List) (Value, error) {
	lhs, rhs, err := in.evalOperands(list)
	if err != nil {
		return nil, err
	}

	lb, lok := lhs.(*BoolValue)
	rb, rok := rhs.(*BoolValue)
	if !lok || !rok {
		return nil, in.ctx.typeError(list.Pos(), "'%s' requires Bool operands, got %s and %s", list.HeadKeyword(), lhs.Type(), rhs.Type())
	}

	if list.HeadKeyword() == "&" {
		return &BoolValue{Value: lb.Value && rb.Value}, nil
	}
	return &BoolValue{Value: lb.Value || rb.Value}, nil
}
