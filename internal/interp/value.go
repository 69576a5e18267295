// Package interp implements the Brewin interpreter: the value model, class
// registry, object instances, scope stack, expression evaluator, statement
// executor, and program driver.
package interp

import (
	"strconv"
	"strings"
)

// Value represents a runtime value: Int, Str, Bool, Null, or an object
// reference, each implementing the interface directly rather than hiding
// behind interface{}.
type Value interface {
	// Type returns the kind name, one of "Int", "Str", "Bool", "Obj", "Null".
	Type() string
	// String returns the internal representation, not the printed form
	// (string values still carry their quotes). Use Render for print output.
	String() string
}

// IntValue is a Brewin integer.
type IntValue struct {
	Value int64
}

func (i *IntValue) Type() string   { return "Int" }
func (i *IntValue) String() string { return strconv.FormatInt(i.Value, 10) }

// StrValue is a Brewin string. Value keeps its surrounding double quotes
// exactly as lexed; Render strips them for printing.
type StrValue struct {
	Value string
}

func (s *StrValue) Type() string   { return "Str" }
func (s *StrValue) String() string { return s.Value }

// Unquoted returns the string's content without its surrounding quotes.
func (s *StrValue) Unquoted() string {
	v := s.Value
	if len(v) >= 2 && strings.HasPrefix(v, `"`) && strings.HasSuffix(v, `"`) {
		return v[1 : len(v)-1]
	}
	return v
}

// BoolValue is a Brewin boolean.
type BoolValue struct {
	Value bool
}

func (b *BoolValue) Type() string { return "Bool" }
func (b *BoolValue) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// NullValue is the distinguished "nothing" value. ClassName is empty for
// an explicit `null` literal and set to the declared class name for a
// typed-null placeholder. Both compare equal to any other NullValue, and
// to each other, regardless of ClassName.
type NullValue struct {
	ClassName string
}

func (n *NullValue) Type() string   { return "Null" }
func (n *NullValue) String() string { return "null" }

// ObjValue is a reference to a live ObjectInstance.
type ObjValue struct {
	Instance *ObjectInstance
}

func (o *ObjValue) Type() string   { return "Obj" }
func (o *ObjValue) String() string { return o.Instance.Class.Name + " instance" }

// Render produces the printed form of a value: integers in decimal,
// booleans as the lexemes true/false, strings with their quotes stripped,
// null as the lexeme null.
func Render(v Value) string {
	switch val := v.(type) {
	case *StrValue:
		return val.Unquoted()
	case *NullValue:
		return "null"
	default:
		return v.String()
	}
}
