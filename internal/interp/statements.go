package interp

import (
	"strconv"

	"github.com/brewinlang/brewin/internal/ast"
)

// exec executes a statement, returning (ReturnValue, ReturnFlag, error).
// ReturnFlag true means an enclosing return has fired and every calling
// statement must unwind without running its remaining children.
func (in *Interpreter) exec(node ast.Node) (Value, bool, error) {
	list, ok := node.(*ast.List)
	if !ok {
		return nil, false, in.ctx.syntaxError(node.Pos(), "expected a statement")
	}

	if in.trace != nil {
		in.trace(list.Pos(), list.HeadKeyword())
	}

	switch list.HeadKeyword() {
	case "print":
		return in.execPrint(list)
	case "inputi":
		return in.execInput(list, true)
	case "inputs":
		return in.execInput(list, false)
	case "set":
		return in.execSet(list)
	case "call":
		v, err := in.evalCall(list)
		return v, false, err
	case "while":
		return in.execWhile(list)
	case "if":
		return in.execIf(list)
	case "return":
		return in.execReturn(list)
	case "begin":
		return in.execBegin(list)
	default:
		return nil, false, in.ctx.syntaxError(list.Pos(), "unrecognized statement %q", list.HeadKeyword())
	}
}

func (in *Interpreter) execPrint(list *ast.List) (Value, bool, error) {
	var line string
	for _, arg := range list.Rest() {
		v, err := in.eval(arg)
		if err != nil {
			return nil, false, err
		}
		line += Render(v)
	}
	in.host.Output(line)
	return &NullValue{}, false, nil
}

func (in *Interpreter) execInput(list *ast.List, asInt bool) (Value, bool, error) {
	args := list.Rest()
	if len(args) != 1 {
		return nil, false, in.ctx.syntaxError(list.Pos(), "expected (%s name)", list.HeadKeyword())
	}
	nameAtom, ok := args[0].(*ast.Atom)
	if !ok {
		return nil, false, in.ctx.syntaxError(args[0].Pos(), "expected a name")
	}

	line, err := in.host.GetInput()
	if err != nil {
		return nil, false, in.ctx.faultError(list.Pos(), "input exhausted: %v", err)
	}

	var val Value
	if asInt {
		n, perr := strconv.ParseInt(line, 10, 64)
		if perr != nil {
			return nil, false, in.ctx.typeError(list.Pos(), "expected an integer from input, got %q", line)
		}
		val = &IntValue{Value: n}
	} else {
		val = &StrValue{Value: `"` + line + `"`}
	}

	if !in.scope.assign(nameAtom.Lexeme, val) {
		return nil, false, in.ctx.nameError(nameAtom.Position, "cannot resolve %q", nameAtom.Lexeme)
	}
	return &NullValue{}, false, nil
}

func (in *Interpreter) execSet(list *ast.List) (Value, bool, error) {
	args := list.Rest()
	if len(args) != 2 {
		return nil, false, in.ctx.syntaxError(list.Pos(), "expected (set name expr)")
	}
	nameAtom, ok := args[0].(*ast.Atom)
	if !ok {
		return nil, false, in.ctx.syntaxError(args[0].Pos(), "expected a name")
	}
	val, err := in.eval(args[1])
	if err != nil {
		return nil, false, err
	}
	if !in.scope.assign(nameAtom.Lexeme, val) {
		return nil, false, in.ctx.nameError(nameAtom.Position, "cannot resolve %q", nameAtom.Lexeme)
	}
	return &NullValue{}, false, nil
}

func (in *Interpreter) execWhile(list *ast.List) (Value, bool, error) {
	args := list.Rest()
	if len(args) != 2 {
		return nil, false, in.ctx.syntaxError(list.Pos(), "expected (while cond body)")
	}
	cond, body := args[0], args[1]

	for {
		cv, err := in.eval(cond)
		if err != nil {
			return nil, false, err
		}
		b, ok := cv.(*BoolValue)
		if !ok {
			return nil, false, in.ctx.typeError(cond.Pos(), "'while' condition must be Bool, got %s", cv.Type())
		}
		if !b.Value {
			return &NullValue{}, false, nil
		}
		v, returned, err := in.exec(body)
		if err != nil || returned {
			return v, returned, err
		}
	}
}

func (in *Interpreter) execIf(list *ast.List) (Value, bool, error) {
	args := list.Rest()
	if len(args) != 2 && len(args) != 3 {
		return nil, false, in.ctx.syntaxError(list.Pos(), "expected (if cond then) or (if cond then else)")
	}

	cv, err := in.eval(args[0])
	if err != nil {
		return nil, false, err
	}
	b, ok := cv.(*BoolValue)
	if !ok {
		return nil, false, in.ctx.typeError(args[0].Pos(), "'if' condition must be Bool, got %s", cv.Type())
	}

	if b.Value {
		return in.exec(args[1])
	}
	if len(args) == 3 {
		return in.exec(args[2])
	}
	return &NullValue{}, false, nil
}

func (in *Interpreter) execReturn(list *ast.List) (Value, bool, error) {
	args := list.Rest()
	if len(args) == 0 {
		return &NullValue{}, true, nil
	}
	if len(args) != 1 {
		return nil, false, in.ctx.syntaxError(list.Pos(), "expected (return) or (return expr)")
	}
	v, err := in.eval(args[0])
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

func (in *Interpreter) execBegin(list *ast.List) (Value, bool, error) {
	for _, stmt := range list.Rest() {
		v, returned, err := in.exec(stmt)
		if err != nil || returned {
			return v, returned, err
		}
	}
	return &NullValue{}, false, nil
}
