/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package cssmath

import (
	"strconv"
	"strings"
)

// scope tracks one parenthesis nesting level.
type scope struct {
	// op is the most recent operator in this scope.
	op string
	// unitSeen is set once an operand of the current multiplicative chain
	// carried a unit. Additive operators reset it.
	unitSeen bool
	last     Kind
	empty    bool
}

func newScope() *scope { return &scope{empty: true} }

// expectsOperand reports whether a number, variable or "(" may come next.
func (s *scope) expectsOperand() bool {
	return s.empty || s.last == Operator
}

// Validate checks a token stream against the calc subset grammar.
// It returns nil or a *ValidationError.
func Validate(tokens []Token) error {
	stack := []*scope{newScope()}
	var prev, lastSignificant *Token
	operators := 0

	for i := range tokens {
		tok := &tokens[i]
		cur := stack[len(stack)-1]

		if prev != nil && prev.Kind == Operator && tok.Kind != Whitespace {
			return &ValidationError{Kind: InvalidSyntax, Token: *prev, Detail: "operator must be followed by a space"}
		}

		switch tok.Kind {
		case Whitespace:
			if prev != nil && prev.Kind == Whitespace {
				return &ValidationError{Kind: InvalidSyntax, Token: *tok, Detail: "consecutive spaces"}
			}
			prev = tok
			continue

		case LeftParen:
			if !cur.expectsOperand() {
				return &ValidationError{Kind: InvalidSyntax, Token: *tok, Detail: "missing operator before parenthesis"}
			}
			cur.last, cur.empty = LeftParen, false
			stack = append(stack, newScope())

		case RightParen:
			if len(stack) == 1 {
				return &ValidationError{Kind: MismatchedParentheses, Token: *tok}
			}
			if cur.expectsOperand() {
				return &ValidationError{Kind: IncompleteExpression, Token: *tok}
			}
			stack = stack[:len(stack)-1]
			stack[len(stack)-1].last = RightParen

		case Number:
			if !cur.expectsOperand() {
				return &ValidationError{Kind: InvalidSyntax, Token: *tok, Detail: "missing operator before number"}
			}
			if strings.HasSuffix(tok.Text, ".") {
				return &ValidationError{Kind: InvalidNumber, Token: *tok}
			}
			n, err := strconv.ParseFloat(tok.Text, 64)
			if err != nil {
				return &ValidationError{Kind: InvalidNumber, Token: *tok}
			}
			if cur.op == "/" && n == 0 {
				return &ValidationError{Kind: DivisionByZero, Token: *tok}
			}
			cur.last, cur.empty = Number, false

		case Variable:
			if !cur.expectsOperand() {
				return &ValidationError{Kind: InvalidSyntax, Token: *tok, Detail: "missing operator before variable"}
			}
			cur.last, cur.empty = Variable, false

		case Unit:
			if prev == nil || prev.Kind != Number || cur.last != Number {
				return &ValidationError{Kind: InvalidSyntax, Token: *tok, Detail: "unit must directly follow a number"}
			}
			switch {
			case cur.op == "/":
				return &ValidationError{Kind: InvalidDivisionRHS, Token: *tok}
			case cur.op == "*" && cur.unitSeen:
				return &ValidationError{Kind: MultiplicationWithUnits, Token: *tok}
			}
			cur.unitSeen = true
			cur.last = Unit

		case Operator:
			if cur.expectsOperand() {
				return &ValidationError{Kind: InvalidSyntax, Token: *tok, Detail: "operator without left operand"}
			}
			if prev == nil || prev.Kind != Whitespace {
				return &ValidationError{Kind: InvalidSyntax, Token: *tok, Detail: "operator must be preceded by a space"}
			}
			cur.op = tok.Text
			if tok.Text == "+" || tok.Text == "-" {
				cur.unitSeen = false
			}
			cur.last = Operator
			operators++
		}

		prev = tok
		lastSignificant = tok
	}

	if len(stack) != 1 {
		var at Token
		if lastSignificant != nil {
			at = *lastSignificant
		}
		return &ValidationError{Kind: MismatchedParentheses, Token: at}
	}
	if lastSignificant != nil && lastSignificant.Kind == Operator {
		return &ValidationError{Kind: IncompleteExpression, Token: *lastSignificant}
	}
	if operators == 0 {
		return &ValidationError{Kind: NoOperators}
	}
	return nil
}
