/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package cssmath

import "fmt"

// TokenizeErrorKind classifies tokenizer failures.
type TokenizeErrorKind int

const (
	UnrecognizedCharacter TokenizeErrorKind = iota
	UnrecognizedToken
	InvalidVariable
	InvalidNegativeOperator
)

func (k TokenizeErrorKind) String() string {
	switch k {
	case UnrecognizedCharacter:
		return "unrecognized character"
	case UnrecognizedToken:
		return "unrecognized token"
	case InvalidVariable:
		return "invalid variable"
	case InvalidNegativeOperator:
		return "invalid negative operator"
	}
	return fmt.Sprintf("TokenizeErrorKind(%d)", int(k))
}

// TokenizeError reports input that cannot be split into tokens.
type TokenizeError struct {
	Kind TokenizeErrorKind
	// Text is the offending substring.
	Text string
	Pos  int
}

func (e *TokenizeError) Error() string {
	return fmt.Sprintf("%s %q at offset %d", e.Kind, e.Text, e.Pos)
}

// ValidationErrorKind classifies validator failures.
type ValidationErrorKind int

const (
	MismatchedParentheses ValidationErrorKind = iota
	NoOperators
	InvalidSyntax
	InvalidNumber
	InvalidDivisionRHS
	DivisionByZero
	MultiplicationWithUnits
	IncompleteExpression
)

func (k ValidationErrorKind) String() string {
	switch k {
	case MismatchedParentheses:
		return "mismatched parentheses"
	case NoOperators:
		return "no operators"
	case InvalidSyntax:
		return "invalid syntax"
	case InvalidNumber:
		return "invalid number"
	case InvalidDivisionRHS:
		return "right side of division must be unitless"
	case DivisionByZero:
		return "division by zero"
	case MultiplicationWithUnits:
		return "multiplication of two values with units"
	case IncompleteExpression:
		return "incomplete expression"
	}
	return fmt.Sprintf("ValidationErrorKind(%d)", int(k))
}

// ValidationError reports a token stream that is not a valid calc body.
type ValidationError struct {
	Kind ValidationErrorKind
	// Token is the offending token. It is the zero Token for
	// whole-stream failures such as NoOperators.
	Token Token
	// Detail optionally narrows down InvalidSyntax.
	Detail string
}

func (e *ValidationError) Error() string {
	msg := e.Kind.String()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Token.Text != "" {
		msg += fmt.Sprintf(" at %q (offset %d)", e.Token.Text, e.Token.Pos)
	}
	return msg
}
