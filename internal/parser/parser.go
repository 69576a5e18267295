// Package parser builds an internal/ast tree from a token stream: a tree
// of nested sequences whose atoms carry line numbers, which the evaluator
// consumes directly.
//
// Brewin's grammar is uniform S-expressions, so there is no Pratt-style
// precedence climbing to do: every list is parsed the same way regardless
// of whether it turns out to be a class form, a statement, or an
// expression. The evaluator is what gives a parsed List its meaning.
package parser

import (
	"fmt"

	"github.com/brewinlang/brewin/internal/ast"
	"github.com/brewinlang/brewin/internal/lexer"
	"github.com/brewinlang/brewin/internal/token"
)

// ParseError is a single syntax error encountered while parsing.
type ParseError struct {
	Message string
	Pos     token.Position
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%s at %s", e.Message, e.Pos)
}

// Parser consumes tokens from a Lexer and assembles an ast.Program.
type Parser struct {
	l      *lexer.Lexer
	errors []ParseError

	curToken  lexer.Token
	peekToken lexer.Token
}

// New creates a Parser reading from l.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	p.next()
	p.next()
	return p
}

// Errors returns every syntax error encountered during ParseProgram.
func (p *Parser) Errors() []ParseError {
	errs := make([]ParseError, 0, len(p.errors)+len(p.l.Errors()))
	for _, le := range p.l.Errors() {
		errs = append(errs, ParseError{Message: le.Message, Pos: le.Pos})
	}
	errs = append(errs, p.errors...)
	return errs
}

func (p *Parser) next() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) errorf(pos token.Position, format string, args ...interface{}) {
	p.errors = append(p.errors, ParseError{Message: fmt.Sprintf(format, args...), Pos: pos})
}

// ParseProgram parses the whole source as a sequence of class forms.
// On any syntax error, errors are recorded via Errors() and the returned
// program may be partial; callers should check Errors() before using it.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}

	for p.curToken.Type != lexer.EOF {
		if p.curToken.Type != lexer.LPAREN {
			p.errorf(p.curToken.Pos, "expected '(' to start a class definition, got %q", p.curToken.Literal)
			p.next()
			continue
		}
		node := p.parseList()
		if list, ok := node.(*ast.List); ok {
			program.Classes = append(program.Classes, list)
		}
	}

	return program
}

// parseNode parses a single Atom or List starting at the current token.
func (p *Parser) parseNode() ast.Node {
	switch p.curToken.Type {
	case lexer.LPAREN:
		return p.parseList()
	case lexer.ATOM, lexer.STRING:
		atom := &ast.Atom{Lexeme: p.curToken.Literal, Position: p.curToken.Pos}
		p.next()
		return atom
	default:
		p.errorf(p.curToken.Pos, "unexpected token %q", p.curToken.Literal)
		p.next()
		return nil
	}
}

// parseList parses a '(' ... ')' form. curToken must be LPAREN on entry.
func (p *Parser) parseList() ast.Node {
	list := &ast.List{Position: p.curToken.Pos}
	p.next() // consume '('

	for p.curToken.Type != lexer.RPAREN {
		if p.curToken.Type == lexer.EOF {
			p.errorf(list.Position, "unterminated list starting here")
			return list
		}
		if child := p.parseNode(); child != nil {
			list.Children = append(list.Children, child)
		}
	}
	p.next() // consume ')'

	return list
}
