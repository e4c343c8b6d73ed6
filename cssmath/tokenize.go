/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package cssmath

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Kind is the lexical class of a Token.
type Kind int

const (
	Number Kind = iota
	Unit
	Variable
	Operator
	LeftParen
	RightParen
	Whitespace
)

var kindNames = [...]string{
	Number:     "Number",
	Unit:       "Unit",
	Variable:   "Variable",
	Operator:   "Operator",
	LeftParen:  "LeftParen",
	RightParen: "RightParen",
	Whitespace: "Whitespace",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is one lexeme of a calc body.
type Token struct {
	Kind Kind
	Text string
	// Pos is the byte offset of the token in the input.
	Pos int
}

func (t Token) String() string {
	switch t.Kind {
	case Whitespace, LeftParen, RightParen:
		return t.Kind.String()
	}
	return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
}

// Tokenize splits a calc body into tokens. It does not judge ordering;
// that is the job of Validate.
func Tokenize(input string) ([]Token, error) {
	l := &lexer{input: input}
	var tokens []Token
	for l.pos < len(l.input) {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

type lexer struct {
	input string
	pos   int
}

func (l *lexer) peek(offset int) byte {
	if l.pos+offset < len(l.input) {
		return l.input[l.pos+offset]
	}
	return 0
}

func (l *lexer) next() (Token, error) {
	c := l.peek(0)
	switch {
	case isDigit(c) || c == '.':
		return l.number(l.pos), nil
	case c == '-':
		return l.minus()
	case isUnitChar(c):
		return l.unit()
	case c == '+' || c == '*' || c == '/':
		l.pos++
		return Token{Kind: Operator, Text: string(c), Pos: l.pos - 1}, nil
	case c == '(':
		l.pos++
		return Token{Kind: LeftParen, Text: "(", Pos: l.pos - 1}, nil
	case c == ')':
		l.pos++
		return Token{Kind: RightParen, Text: ")", Pos: l.pos - 1}, nil
	case c == ' ':
		l.pos++
		return Token{Kind: Whitespace, Text: " ", Pos: l.pos - 1}, nil
	}
	_, size := utf8.DecodeRuneInString(l.input[l.pos:])
	return Token{}, &TokenizeError{Kind: UnrecognizedCharacter, Text: l.input[l.pos : l.pos+size], Pos: l.pos}
}

// number scans digits and dots starting at l.pos. A trailing dot is kept
// and reported by the validator.
func (l *lexer) number(start int) Token {
	for isDigit(l.peek(0)) || l.peek(0) == '.' {
		l.pos++
	}
	return Token{Kind: Number, Text: l.input[start:l.pos], Pos: start}
}

// minus is a sign when a digit follows directly, an operator otherwise.
func (l *lexer) minus() (Token, error) {
	start := l.pos
	next := l.peek(1)
	switch {
	case isDigit(next):
		l.pos++
		return l.number(start), nil
	case next == '-' || next == '+' || next == '*' || next == '/':
		return Token{}, &TokenizeError{Kind: InvalidNegativeOperator, Text: l.input[start : start+2], Pos: start}
	}
	l.pos++
	return Token{Kind: Operator, Text: "-", Pos: start}, nil
}

func (l *lexer) unit() (Token, error) {
	start := l.pos
	for isUnitChar(l.peek(0)) {
		l.pos++
	}
	text := l.input[start:l.pos]
	if strings.HasPrefix(text, "var") {
		return l.variable(start)
	}
	if c := l.peek(0); isDigit(c) || c == '.' {
		for isDigit(l.peek(0)) || l.peek(0) == '.' || isUnitChar(l.peek(0)) {
			l.pos++
		}
		return Token{}, &TokenizeError{Kind: UnrecognizedToken, Text: l.input[start:l.pos], Pos: start}
	}
	return Token{Kind: Unit, Text: text, Pos: start}, nil
}

// variable scans var(--name) where start points at "var". The name is one or
// more "--"-prefixed segments of letters, digits, hyphens and underscores.
func (l *lexer) variable(start int) (Token, error) {
	invalid := func() (Token, error) {
		// consume up to the closing paren so the error shows the whole call
		for l.pos < len(l.input) && l.input[l.pos] != ')' && l.input[l.pos] != ' ' {
			l.pos++
		}
		if l.peek(0) == ')' {
			l.pos++
		}
		return Token{}, &TokenizeError{Kind: InvalidVariable, Text: l.input[start:l.pos], Pos: start}
	}

	if l.input[start:l.pos] != "var" || l.peek(0) != '(' {
		return invalid()
	}
	l.pos++
	if l.peek(0) != '-' || l.peek(1) != '-' {
		return invalid()
	}
	l.pos += 2
	nameStart := l.pos
	for isNameChar(l.peek(0)) {
		l.pos++
	}
	if l.pos == nameStart || l.peek(0) != ')' {
		return invalid()
	}
	l.pos++
	return Token{Kind: Variable, Text: l.input[start:l.pos], Pos: start}, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isUnitChar(c byte) bool {
	return c == '%' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNameChar(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '-' || c == '_'
}
