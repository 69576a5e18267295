// Package ast defines the tree shape a parsed Brewin program is delivered
// in: nested sequences whose atoms carry source line numbers. There is no
// typed node per statement/expression kind, because the evaluator itself
// dispatches on head keywords rather than on Go types.
package ast

import (
	"strings"

	"github.com/brewinlang/brewin/internal/token"
)

// Node is either an Atom or a List. The evaluator never type-switches on
// Node beyond the two cases below; everything else is decided by the head
// keyword of a List.
type Node interface {
	Pos() token.Position
	String() string
	node()
}

// Atom is a single lexical token: an identifier, keyword, string literal,
// integer literal, or operator symbol. Lexeme preserves the source text
// exactly, including the surrounding quotes on a string literal.
type Atom struct {
	Lexeme   string
	Position token.Position
}

func (a *Atom) Pos() token.Position { return a.Position }
func (a *Atom) String() string      { return a.Lexeme }
func (a *Atom) node()               {}

// List is a parenthesized sequence of child nodes: a class form, a method
// form, a statement, or a compound expression. Position is the position of
// the opening parenthesis.
type List struct {
	Children []Node
	Position token.Position
}

func (l *List) Pos() token.Position { return l.Position }
func (l *List) node()               {}

func (l *List) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, c := range l.Children {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(c.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// Head returns the first child of the list, or nil if the list is empty.
// Statement and expression dispatch both key off this node.
func (l *List) Head() Node {
	if len(l.Children) == 0 {
		return nil
	}
	return l.Children[0]
}

// HeadKeyword returns the lexeme of the list's head atom, or "" if the
// list is empty or the head is itself a list.
func (l *List) HeadKeyword() string {
	head := l.Head()
	if head == nil {
		return ""
	}
	if atom, ok := head.(*Atom); ok {
		return atom.Lexeme
	}
	return ""
}

// Rest returns every child after the head.
func (l *List) Rest() []Node {
	if len(l.Children) <= 1 {
		return nil
	}
	return l.Children[1:]
}

// Program is the parsed form of a whole Brewin source file: a sequence of
// class forms in source order.
type Program struct {
	Classes []*List
}
